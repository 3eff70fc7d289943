package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNegative      = errors.New("the amount must not be negative")
	ErrQuantityNegative    = errors.New("the quantity must not be negative")
	ErrDonorNumberNotUnique = errors.New("this donor number is already in use")
	ErrLookupValueNotUnique = errors.New("this value already exists in the list")
	ErrUserEmailNotUnique   = errors.New("this email address is already registered")
)
