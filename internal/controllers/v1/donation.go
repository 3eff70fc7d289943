package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gs866812/kustia-mosque-backend/internal/httputil"
	"github.com/gs866812/kustia-mosque-backend/internal/ledger"
	"github.com/gs866812/kustia-mosque-backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterDonationRoutes registers the routes for donations. The list
// is public so the dashboard can read it, everything that writes and the
// export live behind authentication.
func RegisterDonationRoutes(public, admin *gin.RouterGroup) {
	// Root group
	{
		public.OPTIONS("", OptionsDonations)
		public.GET("", GetDonations)
		admin.POST("", CreateDonation)
	}

	// Export
	{
		admin.OPTIONS("/export", httputil.OptionsGet)
		admin.GET("/export", GetDonationsExport)
	}

	// Donation with ID
	{
		admin.OPTIONS("/:id", OptionsDonationDetail)
		admin.GET("/:id", GetDonation)
		admin.PATCH("/:id", UpdateDonation)
		admin.DELETE("/:id", DeleteDonation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Donations
// @Success		204
// @Router			/v1/donations [options]
func OptionsDonations(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Donations
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/donations/{id} [options]
func OptionsDonationDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get donation
// @Description	Returns a specific donation
// @Tags			Donations
// @Produce		json
// @Success		200	{object}	DonationResponse
// @Failure		400	{object}	DonationResponse
// @Failure		404	{object}	DonationResponse
// @Failure		500	{object}	DonationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/donations/{id} [get]
func GetDonation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &e,
		})
		return
	}

	var donation models.Donation
	err = models.DB.First(&donation, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &e,
		})
		return
	}

	data := newDonation(c, donation)
	c.JSON(http.StatusOK, DonationResponse{Data: &data})
}

// @Summary		Get donations
// @Description	Returns a list of donations together with the amount and quantity totals over the full matched set
// @Tags			Donations
// @Produce		json
// @Success		200	{object}	DonationListResponse
// @Failure		400	{object}	DonationListResponse
// @Failure		500	{object}	DonationListResponse
// @Router			/v1/donations [get]
// @Param			startDate	query	string	false	"Donations at and after this date. Accepts DD.MMM.YYYY, YYYY-MM-DD and RFC3339"
// @Param			endDate		query	string	false	"Donations before and at this date. Accepts DD.MMM.YYYY, YYYY-MM-DD and RFC3339"
// @Param			search		query	string	false	"Case-insensitive substring match on the donor name"
// @Param			category	query	string	false	"Exact match on the income category"
// @Param			page		query	int		false	"The 1-based page of donations returned. Defaults to 1"
// @Param			limit		query	int		false	"Maximum number of donations to return. Defaults to 50"
func GetDonations(c *gin.Context) {
	listDonations(c, 0)
}

// @Summary		Export donations
// @Description	Returns the full matched set of donations without pagination
// @Tags			Donations
// @Produce		json
// @Success		200	{object}	DonationListResponse
// @Failure		400	{object}	DonationListResponse
// @Failure		500	{object}	DonationListResponse
// @Router			/v1/donations/export [get]
// @Param			startDate	query	string	false	"Donations at and after this date. Accepts DD.MMM.YYYY, YYYY-MM-DD and RFC3339"
// @Param			endDate		query	string	false	"Donations before and at this date. Accepts DD.MMM.YYYY, YYYY-MM-DD and RFC3339"
// @Param			search		query	string	false	"Case-insensitive substring match on the donor name"
// @Param			category	query	string	false	"Exact match on the income category"
func GetDonationsExport(c *gin.Context) {
	listDonations(c, ledger.Unpaginated)
}

// listDonations answers both the paginated list and the export. A forced
// limit of ledger.Unpaginated overrides the query parameters.
func listDonations(c *gin.Context, forceLimit int) {
	var params ListQueryFilter
	if err := c.Bind(&params); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DonationListResponse{
			Error: &e,
		})
		return
	}

	filter, err := params.filter()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonationListResponse{
			Error: &e,
		})
		return
	}

	if forceLimit != 0 {
		filter.Limit = forceLimit
		filter.Page = 0
	}

	donations, sums, err := ledger.Donations(c.Request.Context(), filter)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonationListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Donation, 0, len(donations))
	for _, donation := range donations {
		data = append(data, newDonation(c, donation))
	}

	c.JSON(http.StatusOK, DonationListResponse{
		Data:          data,
		TotalAmount:   sums.TotalAmount,
		TotalQuantity: sums.TotalQuantity,
		Pagination:    pagination(filter, len(data), sums.TotalCount),
	})
}

// @Summary		Create donation
// @Description	Creates a new donation
// @Tags			Donations
// @Accept			json
// @Produce		json
// @Success		201			{object}	DonationResponse
// @Failure		400			{object}	DonationResponse
// @Failure		500			{object}	DonationResponse
// @Param			donation	body		DonationEditable	true	"Donation"
// @Router			/v1/donations [post]
func CreateDonation(c *gin.Context) {
	var editable DonationEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &e,
		})
		return
	}

	donation := editable.model()
	if err := models.DB.Create(&donation).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &e,
		})
		return
	}

	tracker.Invalidate()

	data := newDonation(c, donation)
	c.JSON(http.StatusCreated, DonationResponse{Data: &data})
}

// @Summary		Update donation
// @Description	Updates an existing donation. Only values to be updated need to be specified.
// @Tags			Donations
// @Accept			json
// @Produce		json
// @Success		200			{object}	DonationResponse
// @Failure		400			{object}	DonationResponse
// @Failure		404			{object}	DonationResponse
// @Failure		500			{object}	DonationResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			donation	body		DonationEditable	true	"Donation"
// @Router			/v1/donations/{id} [patch]
func UpdateDonation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &e,
		})
		return
	}

	var donation models.Donation
	err = models.DB.First(&donation, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, DonationEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &e,
		})
		return
	}

	var update DonationEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &e,
		})
		return
	}

	// Keep the stored date when the update does not change it so that
	// the derived month and year are recomputed from the right date
	if !slices.Contains(updateFields, any("Date")) {
		update.Date = donation.Date
	}

	// The derived month and year columns follow the date on every write
	updateFields = append(updateFields, "Month", "Year")

	err = models.DB.Model(&donation).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &e,
		})
		return
	}

	tracker.Invalidate()

	data := newDonation(c, donation)
	c.JSON(http.StatusOK, DonationResponse{Data: &data})
}

// @Summary		Delete donation
// @Description	Deletes a donation
// @Tags			Donations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/donations/{id} [delete]
func DeleteDonation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var donation models.Donation
	err = models.DB.First(&donation, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&donation).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	tracker.Invalidate()

	c.JSON(http.StatusNoContent, nil)
}
