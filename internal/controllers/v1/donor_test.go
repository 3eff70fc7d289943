package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/gs866812/kustia-mosque-backend/internal/controllers/v1"
	"github.com/gs866812/kustia-mosque-backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestDonorsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/donors", nil, asModerator(suite.T()))
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestDonorCreate() {
	response := createTestDonor(suite.T(), v1.DonorEditable{
		Number:  112,
		Name:    "Abdul Karim",
		Address: "Mollateg",
		Contact: "01712345678",
	})

	data := response.Data
	assert.Equal(suite.T(), uint64(112), data.Number)
	assert.Equal(suite.T(), "Abdul Karim", data.Name)
}

func (suite *TestSuiteStandard) TestDonorCreateAssignsNumber() {
	createTestDonor(suite.T(), v1.DonorEditable{Number: 7, Name: "Abdul Karim"})

	// A zero number gets the next free one
	response := createTestDonor(suite.T(), v1.DonorEditable{Name: "Rahima Khatun"})
	assert.Equal(suite.T(), uint64(8), response.Data.Number)
}

func (suite *TestSuiteStandard) TestDonorCreateDuplicateNumber() {
	createTestDonor(suite.T(), v1.DonorEditable{Number: 42, Name: "Abdul Karim"})

	response := createTestDonor(suite.T(), v1.DonorEditable{Number: 42, Name: "Rahima Khatun"}, http.StatusBadRequest)
	assert.Equal(suite.T(), "this donor number is already in use", *response.Error)
}

func (suite *TestSuiteStandard) TestDonorGetByNumber() {
	created := createTestDonor(suite.T(), v1.DonorEditable{Number: 112, Name: "Abdul Karim", Address: "Mollateg"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/donors/number/112", nil, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DonorResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), created.Data.ID, response.Data.ID)
	assert.Equal(suite.T(), "Mollateg", response.Data.Address)
}

func (suite *TestSuiteStandard) TestDonorGetByNumberNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/donors/number/999", nil, asModerator(suite.T()))
	assert.Equal(suite.T(), http.StatusNotFound, r.Code)
}

func (suite *TestSuiteStandard) TestDonorGetByNumberInvalid() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/donors/number/abc", nil, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.DonorResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "the donor number must be a positive integer", *response.Error)
}

func (suite *TestSuiteStandard) TestDonorsListSearch() {
	createTestDonor(suite.T(), v1.DonorEditable{Number: 3, Name: "Abdul Karim"})
	createTestDonor(suite.T(), v1.DonorEditable{Number: 1, Name: "Rahima Khatun"})
	createTestDonor(suite.T(), v1.DonorEditable{Number: 2, Name: "Karima Begum"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/donors?search=karim", nil, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DonorListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Ordered by number, not by creation time
	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Karima Begum", response.Data[0].Name)
	assert.Equal(suite.T(), "Abdul Karim", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestDonorsListPagination() {
	for i := 1; i <= 5; i++ {
		createTestDonor(suite.T(), v1.DonorEditable{Number: uint64(i), Name: fmt.Sprintf("Donor %d", i)})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/donors?page=2&limit=2", nil, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DonorListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), uint64(3), response.Data[0].Number)
	assert.Equal(suite.T(), int64(5), response.Pagination.Total)
	assert.Equal(suite.T(), 2, response.Pagination.Page)
}

func (suite *TestSuiteStandard) TestDonorUpdate() {
	created := createTestDonor(suite.T(), v1.DonorEditable{Number: 112, Name: "Abdul Karim", Address: "Mollateg"})

	r := test.Request(suite.T(), http.MethodPatch, created.Data.Links.Self, map[string]any{
		"contact": "01811111111",
	}, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DonorResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "01811111111", response.Data.Contact)
	assert.Equal(suite.T(), "Abdul Karim", response.Data.Name)
}

func (suite *TestSuiteStandard) TestDonorDelete() {
	created := createTestDonor(suite.T(), v1.DonorEditable{Number: 112, Name: "Abdul Karim"})

	r := test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, nil, asModerator(suite.T()))
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)

	r = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, nil, asModerator(suite.T()))
	assert.Equal(suite.T(), http.StatusNotFound, r.Code)
}

func (suite *TestSuiteStandard) TestDonorsUnauthorized() {
	// The donor registry is not public
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/donors", nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, r.Code)
}
