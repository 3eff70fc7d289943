package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gs866812/kustia-mosque-backend/internal/models"
	"github.com/gs866812/kustia-mosque-backend/internal/types"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	Date types.Date `json:"date" example:"12.Aug.2025"` // Date of the expense. Defaults to today

	// The legacy clients submit the description under the key "expense".
	Description string `json:"expense" example:"Imam honorarium"`

	Category string `json:"expenseCategory" example:"Salaries"` // Expense category
	Unit     string `json:"unit" example:"" default:""`         // Unit for in-kind expenses

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Quantity decimal.Decimal `json:"quantity" example:"0" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // In-kind quantity
	Amount   decimal.Decimal `json:"amount" example:"8000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"`            // The spent amount

	Reference string `json:"reference" example:"" default:""` // Who authorized or handled the expense
	Note      string `json:"note" example:"" default:""`      // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Date:        editable.Date,
		Description: editable.Description,
		Category:    editable.Category,
		Unit:        editable.Unit,
		Quantity:    editable.Quantity,
		Amount:      editable.Amount,
		Reference:   editable.Reference,
		Note:        editable.Note,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/5a3d2b09-7d63-4e5a-9c11-9f0d3a043b1d"` // The expense itself
}

// Expense is the representation of an expense in API v1.
type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Month string       `json:"month" example:"August"` // Derived from the date
	Year  string       `json:"year" example:"2025"`    // Derived from the date
	Links ExpenseLinks `json:"links"`
}

// newExpense returns the API v1 representation of the resource
func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Date:        model.Date,
			Description: model.Description,
			Category:    model.Category,
			Unit:        model.Unit,
			Quantity:    model.Quantity,
			Amount:      model.Amount,
			Reference:   model.Reference,
			Note:        model.Note,
		},
		Month: model.Month,
		Year:  model.Year,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data          []Expense       `json:"data"`                                                          // List of expenses
	TotalAmount   decimal.Decimal `json:"totalAmount" example:"9700"`                                    // Sum of the amounts of all matched expenses, not just this page
	TotalQuantity decimal.Decimal `json:"totalQuantity" example:"0"`                                     // Sum of the quantities of all matched expenses, not just this page
	Error         *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination    *Pagination     `json:"pagination"`                                                    // Pagination information
}

type ExpenseResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Expense `json:"data"`                                                          // The expense data, if the request was successful
}
