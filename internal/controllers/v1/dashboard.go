package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gs866812/kustia-mosque-backend/internal/bangla"
	"github.com/gs866812/kustia-mosque-backend/internal/httputil"
	"github.com/gs866812/kustia-mosque-backend/internal/ledger"
	"github.com/gs866812/kustia-mosque-backend/internal/models"
	"github.com/gs866812/kustia-mosque-backend/internal/types"
)

// previewLimit is the number of records shown in the dashboard preview
// lists. The full lists live on the donation and expense endpoints.
const previewLimit = 5

// BalanceDisplay are the headline numbers formatted for the public
// dashboard: Bengali digits, English grouping, Taka sign.
type BalanceDisplay struct {
	PreviousBalance  string `json:"previousBalance" example:"৩০০৳"`
	CurrentDonations string `json:"currentDonations" example:"৫০০৳"`
	CurrentExpenses  string `json:"currentExpenses" example:"২০০৳"`
	CurrentNet       string `json:"currentNet" example:"৩০০৳"`
	TotalBalance     string `json:"totalBalance" example:"৬০০৳"`
}

// DashboardBalances are the headline balances plus their display form.
type DashboardBalances struct {
	ledger.Balances
	Display BalanceDisplay `json:"display"`
}

func newDashboardBalances(balances ledger.Balances) DashboardBalances {
	return DashboardBalances{
		Balances: balances,
		Display: BalanceDisplay{
			PreviousBalance:  bangla.Taka(balances.PreviousBalance, 0),
			CurrentDonations: bangla.Taka(balances.CurrentDonations, 0),
			CurrentExpenses:  bangla.Taka(balances.CurrentExpenses, 0),
			CurrentNet:       bangla.Taka(balances.CurrentNet, 0),
			TotalBalance:     bangla.Taka(balances.TotalBalance, 0),
		},
	}
}

type DashboardResponse struct {
	Balances    *DashboardBalances `json:"balances"`    // The headline balances of the reporting month
	Donations   []Donation         `json:"donations"`   // The most recent donations of the reporting month
	Expenses    []Expense          `json:"expenses"`    // The most recent expenses of the reporting month
	Hadith      []HadithRecord     `json:"hadith"`      // All hadith for the ticker rotation
	PaymentInfo *PaymentInfoRecord `json:"paymentInfo"` // Payment details for donors
	Error       *string            `json:"error" example:"an error on our side occurred. Please try again"` // The error, if any occurred
}

// RegisterDashboardRoutes registers the routes for the public dashboard
// with the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns everything the public dashboard shows: the headline balances of the current month, capped preview lists of recent donations and expenses, the hadith rotation and the payment details
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	now := time.Now().In(time.UTC)

	// A cached snapshot only stays valid within its own reporting
	// month. Mutations invalidate the tracker, a month rollover does
	// not, so the month has to be checked on every read.
	balances, ok := tracker.Latest()
	if !ok || !balances.Month.Equal(types.MonthOf(now)) {
		var err error
		balances, err = tracker.Refresh(ctx, now)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), DashboardResponse{
				Error: &e,
			})
			return
		}
	}

	preview := ledger.Filter{
		Window: ledger.CurrentPeriod(balances.Month),
		Limit:  previewLimit,
	}

	donations, _, err := ledger.Donations(ctx, preview)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	expenses, _, err := ledger.Expenses(ctx, preview)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	var hadith []models.Hadith
	err = models.DB.WithContext(ctx).Order("datetime(date) DESC, datetime(created_at) DESC").Find(&hadith).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	var info models.PaymentInfo
	err = models.DB.WithContext(ctx).First(&info).Error
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	donationData := make([]Donation, 0, len(donations))
	for _, donation := range donations {
		donationData = append(donationData, newDonation(c, donation))
	}

	expenseData := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		expenseData = append(expenseData, newExpense(c, expense))
	}

	hadithData := make([]HadithRecord, 0, len(hadith))
	for _, h := range hadith {
		hadithData = append(hadithData, newHadith(c, h))
	}

	headline := newDashboardBalances(balances)
	paymentInfo := newPaymentInfo(info)

	c.JSON(http.StatusOK, DashboardResponse{
		Balances:    &headline,
		Donations:   donationData,
		Expenses:    expenseData,
		Hadith:      hadithData,
		PaymentInfo: &paymentInfo,
	})
}
