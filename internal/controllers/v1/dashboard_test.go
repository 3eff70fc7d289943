package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	v1 "github.com/gs866812/kustia-mosque-backend/internal/controllers/v1"
	"github.com/gs866812/kustia-mosque-backend/internal/ledger"
	"github.com/gs866812/kustia-mosque-backend/internal/models"
	"github.com/gs866812/kustia-mosque-backend/internal/router"
	"github.com/gs866812/kustia-mosque-backend/internal/types"
	"github.com/gs866812/kustia-mosque-backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reportingDates returns a date in the current month and one in the
// month before it.
func reportingDates() (current, prior types.Date) {
	now := time.Now().In(time.UTC)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastOfPrior := firstOfMonth.AddDate(0, 0, -1)

	return types.DateOf(firstOfMonth), types.DateOf(lastOfPrior)
}

func (suite *TestSuiteStandard) TestDashboard() {
	current, prior := reportingDates()

	createTestDonation(suite.T(), v1.DonationEditable{DonorName: "Abdul Karim", Amount: decimal.NewFromInt(500), Date: prior})
	createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Electricity bill", Amount: decimal.NewFromInt(200), Date: prior})
	createTestDonation(suite.T(), v1.DonationEditable{DonorName: "Rahima Khatun", Amount: decimal.NewFromInt(200), Date: current})
	createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Imam honorarium", Amount: decimal.NewFromInt(100), Date: current})

	createTestHadith(suite.T(), v1.HadithEditable{Text: "The best among you are those who have the best manners."})

	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/payment-info", v1.PaymentInfoEditable{Bkash: "01712345678"}, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// The dashboard is public
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	balances := response.Balances
	require.NotNil(suite.T(), balances)
	assert.True(suite.T(), balances.PreviousBalance.Equal(decimal.NewFromInt(300)), balances.PreviousBalance)
	assert.True(suite.T(), balances.CurrentDonations.Equal(decimal.NewFromInt(200)), balances.CurrentDonations)
	assert.True(suite.T(), balances.CurrentExpenses.Equal(decimal.NewFromInt(100)), balances.CurrentExpenses)
	assert.True(suite.T(), balances.CurrentNet.Equal(decimal.NewFromInt(100)), balances.CurrentNet)
	assert.True(suite.T(), balances.TotalBalance.Equal(decimal.NewFromInt(400)), balances.TotalBalance)

	assert.Equal(suite.T(), "৩০০৳", balances.Display.PreviousBalance)
	assert.Equal(suite.T(), "৪০০৳", balances.Display.TotalBalance)

	// Previews only contain records of the reporting month
	require.Len(suite.T(), response.Donations, 1)
	assert.Equal(suite.T(), "Rahima Khatun", response.Donations[0].DonorName)
	require.Len(suite.T(), response.Expenses, 1)
	assert.Equal(suite.T(), "Imam honorarium", response.Expenses[0].Description)

	require.Len(suite.T(), response.Hadith, 1)
	assert.Equal(suite.T(), "01712345678", response.PaymentInfo.Bkash)
}

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Balances)
	assert.True(suite.T(), response.Balances.TotalBalance.IsZero())
	assert.Equal(suite.T(), "০৳", response.Balances.Display.TotalBalance)
	assert.Empty(suite.T(), response.Donations)
	assert.Empty(suite.T(), response.Expenses)
}

func (suite *TestSuiteStandard) TestDashboardPreviewCapped() {
	current, _ := reportingDates()

	for i := 0; i < previewOverflow; i++ {
		createTestDonation(suite.T(), v1.DonationEditable{DonorName: "Abdul Karim", Amount: decimal.NewFromInt(10), Date: current})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Donations, 5)
	assert.True(suite.T(), response.Balances.CurrentDonations.Equal(decimal.NewFromInt(10*previewOverflow)))
}

// previewOverflow is more records than the dashboard preview shows.
const previewOverflow = 7

func (suite *TestSuiteStandard) TestDashboardMonthRollover() {
	now := time.Now().In(time.UTC)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastOfPrior := firstOfMonth.AddDate(0, 0, -1)

	require.Nil(suite.T(), models.DB.Create(&models.Donation{
		DonorName: "Abdul Karim",
		Amount:    decimal.NewFromInt(111),
		Date:      types.DateOf(lastOfPrior),
	}).Error)
	require.Nil(suite.T(), models.DB.Create(&models.Donation{
		DonorName: "Rahima Khatun",
		Amount:    decimal.NewFromInt(222),
		Date:      types.DateOf(firstOfMonth),
	}).Error)

	baseURL, err := url.Parse("http://example.com")
	require.Nil(suite.T(), err)

	tracker := ledger.NewTracker(time.Millisecond)
	defer tracker.Stop()

	r, err := router.Router(baseURL, tracker, test.TokenService())
	require.Nil(suite.T(), err)

	// Publish a snapshot as of an instant in the previous month, as if
	// no record had been written since before the month rolled over
	_, err = tracker.Refresh(context.Background(), lastOfPrior)
	require.Nil(suite.T(), err)

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "http://example.com/v1/dashboard", nil)
	r.ServeHTTP(recorder, req)
	require.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), recorder, &response)

	balances := response.Balances
	require.NotNil(suite.T(), balances)
	assert.True(suite.T(), balances.Month.Equal(types.MonthOf(now)), balances.Month)
	assert.True(suite.T(), balances.PreviousBalance.Equal(decimal.NewFromInt(111)), balances.PreviousBalance)
	assert.True(suite.T(), balances.CurrentDonations.Equal(decimal.NewFromInt(222)), balances.CurrentDonations)
	assert.True(suite.T(), balances.TotalBalance.Equal(decimal.NewFromInt(333)), balances.TotalBalance)

	require.Len(suite.T(), response.Donations, 1)
	assert.Equal(suite.T(), "Rahima Khatun", response.Donations[0].DonorName)
}

func (suite *TestSuiteStandard) TestDashboardOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/dashboard", nil)
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}
