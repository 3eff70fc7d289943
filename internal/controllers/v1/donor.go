package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gs866812/kustia-mosque-backend/internal/httputil"
	"github.com/gs866812/kustia-mosque-backend/internal/ledger"
	"github.com/gs866812/kustia-mosque-backend/internal/models"
)

type DonorEditable struct {
	Number  uint64 `json:"donorId" example:"112" default:"0"`      // Short number donors quote on the submission form. 0 assigns the next free one
	Name    string `json:"name" example:"Abdul Karim"`             // Name of the donor
	Address string `json:"address" example:"Mollateg"`             // Address of the donor
	Contact string `json:"contact" example:"01712345678" default:""` // Contact number
}

// model returns the database resource for the API representation of the editable fields
func (editable DonorEditable) model() models.Donor {
	return models.Donor{
		Number:  editable.Number,
		Name:    editable.Name,
		Address: editable.Address,
		Contact: editable.Contact,
	}
}

type DonorLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/donors/af892e10-7e0a-4fb8-b1bc-4b6d88d5506e"` // The donor itself
}

// DonorRecord is the representation of a donor in API v1.
type DonorRecord struct {
	models.DefaultModel
	DonorEditable
	Links DonorLinks `json:"links"`
}

// newDonor returns the API v1 representation of the resource
func newDonor(c *gin.Context, model models.Donor) DonorRecord {
	url := c.GetString(string(models.DBContextURL))

	return DonorRecord{
		DefaultModel: model.DefaultModel,
		DonorEditable: DonorEditable{
			Number:  model.Number,
			Name:    model.Name,
			Address: model.Address,
			Contact: model.Contact,
		},
		Links: DonorLinks{
			Self: fmt.Sprintf("%s/v1/donors/%s", url, model.ID),
		},
	}
}

type DonorListResponse struct {
	Data       []DonorRecord `json:"data"`                                                          // List of donors
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type DonorResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *DonorRecord `json:"data"`                                                          // The donor data, if the request was successful
}

type DonorQueryFilter struct {
	Search string `form:"search"` // Case-insensitive substring match on the name
	Page   int    `form:"page"`   // 1-based page. Defaults to 1
	Limit  int    `form:"limit"`  // Maximum number of donors to return. Defaults to 50
}

// RegisterDonorRoutes registers the routes for donors with the
// RouterGroup that is passed.
func RegisterDonorRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDonors)
		r.GET("", GetDonors)
		r.POST("", CreateDonor)
	}

	// Lookup by donor number, used to autofill the submission form
	{
		r.OPTIONS("/number/:number", httputil.OptionsGet)
		r.GET("/number/:number", GetDonorByNumber)
	}

	// Donor with ID
	{
		r.OPTIONS("/:id", OptionsDonorDetail)
		r.GET("/:id", GetDonor)
		r.PATCH("/:id", UpdateDonor)
		r.DELETE("/:id", DeleteDonor)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Donors
// @Success		204
// @Router			/v1/donors [options]
func OptionsDonors(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Donors
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/donors/{id} [options]
func OptionsDonorDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get donors
// @Description	Returns a list of donors
// @Tags			Donors
// @Produce		json
// @Success		200	{object}	DonorListResponse
// @Failure		400	{object}	DonorListResponse
// @Failure		500	{object}	DonorListResponse
// @Router			/v1/donors [get]
// @Param			search	query	string	false	"Case-insensitive substring match on the name"
// @Param			page	query	int		false	"The 1-based page of donors returned. Defaults to 1"
// @Param			limit	query	int		false	"Maximum number of donors to return. Defaults to 50"
func GetDonors(c *gin.Context) {
	var filter DonorQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DonorListResponse{
			Error: &e,
		})
		return
	}

	q := models.DB.Model(&models.Donor{}).Order("number ASC")
	if filter.Search != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), DonorListResponse{
			Error: &e,
		})
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit == 0 {
		limit = ledger.DefaultLimit
	}

	var donors []models.Donor
	err := q.Offset((page - 1) * limit).Limit(limit).Find(&donors).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorListResponse{
			Error: &e,
		})
		return
	}

	data := make([]DonorRecord, 0, len(donors))
	for _, donor := range donors {
		data = append(data, newDonor(c, donor))
	}

	c.JSON(http.StatusOK, DonorListResponse{
		Data: data,
		Pagination: &Pagination{
			Count: len(data),
			Page:  page,
			Limit: limit,
			Total: count,
		},
	})
}

// @Summary		Get donor
// @Description	Returns a specific donor
// @Tags			Donors
// @Produce		json
// @Success		200	{object}	DonorResponse
// @Failure		400	{object}	DonorResponse
// @Failure		404	{object}	DonorResponse
// @Failure		500	{object}	DonorResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/donors/{id} [get]
func GetDonor(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorResponse{
			Error: &e,
		})
		return
	}

	var donor models.Donor
	err = models.DB.First(&donor, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorResponse{
			Error: &e,
		})
		return
	}

	data := newDonor(c, donor)
	c.JSON(http.StatusOK, DonorResponse{Data: &data})
}

// @Summary		Get donor by number
// @Description	Returns the donor with the given number. Used to autofill the donation submission form
// @Tags			Donors
// @Produce		json
// @Success		200		{object}	DonorResponse
// @Failure		400		{object}	DonorResponse
// @Failure		404		{object}	DonorResponse
// @Failure		500		{object}	DonorResponse
// @Param			number	path		int	true	"Number of the donor"
// @Router			/v1/donors/number/{number} [get]
func GetDonorByNumber(c *gin.Context) {
	number, err := strconv.ParseUint(c.Param("number"), 10, 64)
	if err != nil {
		e := errDonorNumberInvalid.Error()
		c.JSON(http.StatusBadRequest, DonorResponse{
			Error: &e,
		})
		return
	}

	var donor models.Donor
	err = models.DB.Where(&models.Donor{Number: number}).First(&donor).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorResponse{
			Error: &e,
		})
		return
	}

	data := newDonor(c, donor)
	c.JSON(http.StatusOK, DonorResponse{Data: &data})
}

// @Summary		Create donor
// @Description	Creates a new donor. A donor number of 0 assigns the next free number
// @Tags			Donors
// @Accept			json
// @Produce		json
// @Success		201		{object}	DonorResponse
// @Failure		400		{object}	DonorResponse
// @Failure		500		{object}	DonorResponse
// @Param			donor	body		DonorEditable	true	"Donor"
// @Router			/v1/donors [post]
func CreateDonor(c *gin.Context) {
	var editable DonorEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), DonorResponse{
			Error: &e,
		})
		return
	}

	donor := editable.model()
	if err := models.DB.Create(&donor).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), DonorResponse{
			Error: &e,
		})
		return
	}

	data := newDonor(c, donor)
	c.JSON(http.StatusCreated, DonorResponse{Data: &data})
}

// @Summary		Update donor
// @Description	Updates an existing donor. Only values to be updated need to be specified.
// @Tags			Donors
// @Accept			json
// @Produce		json
// @Success		200		{object}	DonorResponse
// @Failure		400		{object}	DonorResponse
// @Failure		404		{object}	DonorResponse
// @Failure		500		{object}	DonorResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			donor	body		DonorEditable	true	"Donor"
// @Router			/v1/donors/{id} [patch]
func UpdateDonor(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorResponse{
			Error: &e,
		})
		return
	}

	var donor models.Donor
	err = models.DB.First(&donor, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DonorEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorResponse{
			Error: &e,
		})
		return
	}

	var update DonorEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&donor).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorResponse{
			Error: &e,
		})
		return
	}

	data := newDonor(c, donor)
	c.JSON(http.StatusOK, DonorResponse{Data: &data})
}

// @Summary		Delete donor
// @Description	Deletes a donor. Donations referencing the donor keep their copied donor details
// @Tags			Donors
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/donors/{id} [delete]
func DeleteDonor(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var donor models.Donor
	err = models.DB.First(&donor, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&donor).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
