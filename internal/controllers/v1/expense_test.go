package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/gs866812/kustia-mosque-backend/internal/controllers/v1"
	"github.com/gs866812/kustia-mosque-backend/internal/types"
	"github.com/gs866812/kustia-mosque-backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpenseCreate() {
	response := createTestExpense(suite.T(), v1.ExpenseEditable{
		Date:        types.NewDate(2025, time.August, 12),
		Description: "Imam honorarium",
		Category:    "Salaries",
		Amount:      decimal.NewFromInt(8000),
	})

	data := response.Data
	assert.Equal(suite.T(), "Imam honorarium", data.Description)
	assert.Equal(suite.T(), "August", data.Month)
	assert.Equal(suite.T(), "2025", data.Year)
}

func (suite *TestSuiteStandard) TestExpenseCreateNegativeAmount() {
	createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Imam honorarium",
		Amount:      decimal.NewFromInt(-1),
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseDescriptionKey() {
	// The legacy clients send the description under the key "expense"
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", `{"expense": "Electricity bill", "amount": "1200"}`, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Electricity bill", response.Data.Description)
}

func (suite *TestSuiteStandard) TestExpensesListSearchDescription() {
	createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Imam honorarium", Amount: decimal.NewFromInt(8000)})
	createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Electricity bill", Amount: decimal.NewFromInt(1200)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?search=bill", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Electricity bill", response.Data[0].Description)
}

func (suite *TestSuiteStandard) TestExpensesListCategoryExact() {
	createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Fan repair", Category: "Maintenance", Amount: decimal.NewFromInt(700)})
	createTestExpense(suite.T(), v1.ExpenseEditable{Description: "New fans", Category: "Maintenance supplies", Amount: decimal.NewFromInt(4200)})

	// Category filtering never matches substrings
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?category=Maintenance", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Fan repair", response.Data[0].Description)
}

func (suite *TestSuiteStandard) TestExpenseUpdateDelete() {
	created := createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Imam honorarium",
		Amount:      decimal.NewFromInt(8000),
	})

	r := test.Request(suite.T(), http.MethodPatch, created.Data.Links.Self, map[string]any{
		"amount": "8500",
	}, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(8500)), response.Data.Amount)

	r = test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, nil, asModerator(suite.T()))
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
}

func (suite *TestSuiteStandard) TestExpenseMutationsUnauthorized() {
	created := createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Imam honorarium",
		Amount:      decimal.NewFromInt(8000),
	})

	tests := []struct {
		method string
		url    string
	}{
		{http.MethodPost, "http://example.com/v1/expenses"},
		{http.MethodPatch, created.Data.Links.Self},
		{http.MethodDelete, created.Data.Links.Self},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), tt.method, tt.url, `{"expense": "x"}`)
		assert.Equal(suite.T(), http.StatusUnauthorized, r.Code, "%s %s", tt.method, tt.url)
	}
}
