package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/gs866812/kustia-mosque-backend/internal/controllers/v1"
	"github.com/gs866812/kustia-mosque-backend/internal/models"
	"github.com/gs866812/kustia-mosque-backend/test"
	"github.com/stretchr/testify/assert"
)

// createTestLookup creates a value in a lookup list via the v1 API.
func createTestLookup(suite *TestSuiteStandard, kind models.LookupKind, value string, expectedStatus ...int) v1.LookupResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/lookups/%s", kind), v1.LookupEditable{Value: value}, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response v1.LookupResponse
	test.DecodeResponse(suite.T(), &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestLookupKinds() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/lookups", nil, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LookupKindsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.LookupKinds, response.Data)
}

func (suite *TestSuiteStandard) TestLookupKindInvalid() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/lookups/colors", nil, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.LookupListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "the specified lookup kind is invalid", *response.Error)
}

func (suite *TestSuiteStandard) TestLookupCreate() {
	response := createTestLookup(suite, models.KindIncomeCategories, "General donations")

	assert.Equal(suite.T(), models.KindIncomeCategories, response.Data.Kind)
	assert.Equal(suite.T(), "General donations", response.Data.Value)
}

func (suite *TestSuiteStandard) TestLookupCreateDuplicate() {
	createTestLookup(suite, models.KindUnits, "kg")

	response := createTestLookup(suite, models.KindUnits, "kg", http.StatusBadRequest)
	assert.Equal(suite.T(), "this value already exists in the list", *response.Error)
}

func (suite *TestSuiteStandard) TestLookupValueSharedAcrossKinds() {
	// The same value may exist in different lists
	createTestLookup(suite, models.KindUnits, "kg")
	createTestLookup(suite, models.KindExpenseUnits, "kg")
}

func (suite *TestSuiteStandard) TestLookupsListOrdered() {
	createTestLookup(suite, models.KindAddresses, "Mollateg")
	createTestLookup(suite, models.KindAddresses, "Kustia Sadar")
	createTestLookup(suite, models.KindIncomeCategories, "Zakat")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/lookups/addresses", nil, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LookupListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Kustia Sadar", response.Data[0].Value)
	assert.Equal(suite.T(), "Mollateg", response.Data[1].Value)
}

func (suite *TestSuiteStandard) TestLookupsSearchSubstring() {
	createTestLookup(suite, models.KindIncomeCategories, "General donations")
	createTestLookup(suite, models.KindIncomeCategories, "Zakat")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/lookups/income-categories?search=dona", nil, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LookupListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "General donations", response.Data[0].Value)
}

func (suite *TestSuiteStandard) TestLookupsSearchGlob() {
	createTestLookup(suite, models.KindReferences, "Friday collection")
	createTestLookup(suite, models.KindReferences, "Friday iftar")
	createTestLookup(suite, models.KindReferences, "Eid collection")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/lookups/references?search=Friday*", nil, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LookupListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)
	for _, value := range response.Data {
		assert.Contains(suite.T(), value.Value, "Friday")
	}
}

func (suite *TestSuiteStandard) TestLookupDelete() {
	created := createTestLookup(suite, models.KindUnits, "kg")

	r := test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, nil, asModerator(suite.T()))
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/lookups/units", nil, asModerator(suite.T()))
	var response v1.LookupListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestLookupDeleteOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/lookups/units/4b7f29af-2a1c-4a02-ae9b-c18f4e1524c2", nil, asModerator(suite.T()))
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestLookupsUnauthorized() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/lookups", nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, r.Code)
}
