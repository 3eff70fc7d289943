package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gs866812/kustia-mosque-backend/internal/models"
	"github.com/gs866812/kustia-mosque-backend/internal/types"
	"github.com/shopspring/decimal"
)

type DonationEditable struct {
	Date types.Date `json:"date" example:"07.Aug.2025"` // Date of the donation. Defaults to today

	DonorNumber uint64 `json:"donorId" example:"112" default:"0"`            // Number of the registered donor, 0 for anonymous donations
	DonorName   string `json:"donorName" example:"Abdul Karim"`              // Name of the donor
	Address     string `json:"address" example:"Mollateg"`                   // Address of the donor
	Phone       string `json:"phone" example:"01712345678" default:""`       // Contact number of the donor
	Category    string `json:"incomeCategory" example:"General donations"`   // Income category
	Unit        string `json:"unit" example:"Taka" default:""`               // Unit for in-kind donations

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Quantity decimal.Decimal `json:"quantity" example:"2" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // In-kind quantity
	Amount   decimal.Decimal `json:"amount" example:"500" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"`             // The donated amount

	Reference string `json:"reference" example:"Friday collection" default:""` // Who collected or referred the donation
	Note      string `json:"note" example:"" default:""`                       // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable DonationEditable) model() models.Donation {
	return models.Donation{
		Date:        editable.Date,
		DonorNumber: editable.DonorNumber,
		DonorName:   editable.DonorName,
		Address:     editable.Address,
		Phone:       editable.Phone,
		Category:    editable.Category,
		Unit:        editable.Unit,
		Quantity:    editable.Quantity,
		Amount:      editable.Amount,
		Reference:   editable.Reference,
		Note:        editable.Note,
	}
}

type DonationLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/donations/d430d7c3-d14c-4712-9336-ee56965a6673"` // The donation itself
}

// Donation is the representation of a donation in API v1.
type Donation struct {
	models.DefaultModel
	DonationEditable
	Month string        `json:"month" example:"August"` // Derived from the date
	Year  string        `json:"year" example:"2025"`    // Derived from the date
	Links DonationLinks `json:"links"`
}

// newDonation returns the API v1 representation of the resource
func newDonation(c *gin.Context, model models.Donation) Donation {
	url := c.GetString(string(models.DBContextURL))

	return Donation{
		DefaultModel: model.DefaultModel,
		DonationEditable: DonationEditable{
			Date:        model.Date,
			DonorNumber: model.DonorNumber,
			DonorName:   model.DonorName,
			Address:     model.Address,
			Phone:       model.Phone,
			Category:    model.Category,
			Unit:        model.Unit,
			Quantity:    model.Quantity,
			Amount:      model.Amount,
			Reference:   model.Reference,
			Note:        model.Note,
		},
		Month: model.Month,
		Year:  model.Year,
		Links: DonationLinks{
			Self: fmt.Sprintf("%s/v1/donations/%s", url, model.ID),
		},
	}
}

type DonationListResponse struct {
	Data          []Donation      `json:"data"`                                                          // List of donations
	TotalAmount   decimal.Decimal `json:"totalAmount" example:"10500"`                                   // Sum of the amounts of all matched donations, not just this page
	TotalQuantity decimal.Decimal `json:"totalQuantity" example:"12"`                                    // Sum of the quantities of all matched donations, not just this page
	Error         *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination    *Pagination     `json:"pagination"`                                                    // Pagination information
}

type DonationResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Donation `json:"data"`                                                          // The donation data, if the request was successful
}
