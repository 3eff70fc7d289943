package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gs866812/kustia-mosque-backend/internal/httputil"
	"github.com/gs866812/kustia-mosque-backend/internal/models"
)

type PaymentInfoEditable struct {
	Bkash   string `json:"bkash" example:"01712345678" default:""`          // bKash number
	Nagad   string `json:"nagad" example:"01812345678" default:""`          // Nagad number
	Bank    string `json:"bank" example:"IBBL, Kustia branch" default:""`   // Bank account details
	Address string `json:"address" example:"Kustia Jame Masjid" default:""` // Postal address for donations
}

// PaymentInfoRecord is the representation of the payment details in API v1.
type PaymentInfoRecord struct {
	models.DefaultModel
	PaymentInfoEditable
}

func newPaymentInfo(model models.PaymentInfo) PaymentInfoRecord {
	return PaymentInfoRecord{
		DefaultModel: model.DefaultModel,
		PaymentInfoEditable: PaymentInfoEditable{
			Bkash:   model.Bkash,
			Nagad:   model.Nagad,
			Bank:    model.Bank,
			Address: model.Address,
		},
	}
}

type PaymentInfoResponse struct {
	Error *string            `json:"error" example:"there is no payment info matching your query"` // The error, if any occurred
	Data  *PaymentInfoRecord `json:"data"`                                                         // The payment details, if the request was successful
}

// RegisterPaymentInfoRoutes registers the routes for the payment
// details. Reading is public, updating requires authentication.
func RegisterPaymentInfoRoutes(public, admin *gin.RouterGroup) {
	public.OPTIONS("", OptionsPaymentInfo)
	public.GET("", GetPaymentInfo)
	admin.PUT("", UpdatePaymentInfo)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PaymentInfo
// @Success		204
// @Router			/v1/payment-info [options]
func OptionsPaymentInfo(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get payment details
// @Description	Returns the payment details shown on the public dashboard
// @Tags			PaymentInfo
// @Produce		json
// @Success		200	{object}	PaymentInfoResponse
// @Failure		500	{object}	PaymentInfoResponse
// @Router			/v1/payment-info [get]
func GetPaymentInfo(c *gin.Context) {
	var info models.PaymentInfo
	err := models.DB.First(&info).Error

	// Before the first update there is nothing to show, which is
	// not an error
	if err != nil && errors.Is(err, models.ErrResourceNotFound) {
		c.JSON(http.StatusOK, PaymentInfoResponse{Data: &PaymentInfoRecord{}})
		return
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentInfoResponse{
			Error: &e,
		})
		return
	}

	data := newPaymentInfo(info)
	c.JSON(http.StatusOK, PaymentInfoResponse{Data: &data})
}

// @Summary		Update payment details
// @Description	Replaces the payment details shown on the public dashboard
// @Tags			PaymentInfo
// @Accept			json
// @Produce		json
// @Success		200			{object}	PaymentInfoResponse
// @Failure		400			{object}	PaymentInfoResponse
// @Failure		500			{object}	PaymentInfoResponse
// @Param			paymentInfo	body		PaymentInfoEditable	true	"Payment details"
// @Router			/v1/payment-info [put]
func UpdatePaymentInfo(c *gin.Context) {
	var editable PaymentInfoEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentInfoResponse{
			Error: &e,
		})
		return
	}

	// There is a single row that updates replace
	var info models.PaymentInfo
	err := models.DB.First(&info).Error
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
		e := err.Error()
		c.JSON(status(err), PaymentInfoResponse{
			Error: &e,
		})
		return
	}

	info.Bkash = editable.Bkash
	info.Nagad = editable.Nagad
	info.Bank = editable.Bank
	info.Address = editable.Address

	if err := models.DB.Save(&info).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentInfoResponse{
			Error: &e,
		})
		return
	}

	data := newPaymentInfo(info)
	c.JSON(http.StatusOK, PaymentInfoResponse{Data: &data})
}
