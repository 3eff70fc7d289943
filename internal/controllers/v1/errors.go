package v1

import (
	"errors"
	"net/http"

	"github.com/gs866812/kustia-mosque-backend/internal/ledger"
	"github.com/gs866812/kustia-mosque-backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no donation matching your query"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, ledger.ErrInvalidFilter) {
		return http.StatusBadRequest
	}

	return http.StatusBadRequest
}

// Filter errors
var (
	errInvalidDate = errors.New("dates must be in DD.MMM.YYYY, YYYY-MM-DD or RFC3339 format")
)

// Donor errors
var (
	errDonorNumberInvalid = errors.New("the donor number must be a positive integer")
)

// Lookup errors
var (
	errLookupKindInvalid = errors.New("the specified lookup kind is invalid")
)

// Hadith errors
var (
	errHadithTooLong = errors.New("the hadith text must not be longer than 150 characters")
	errHadithEmpty   = errors.New("the hadith text must not be empty")
)

// Auth errors
var (
	errLoginInvalid = errors.New("the email or password is incorrect")
)
