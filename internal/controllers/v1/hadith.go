package v1

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/gs866812/kustia-mosque-backend/internal/httputil"
	"github.com/gs866812/kustia-mosque-backend/internal/models"
	"github.com/gs866812/kustia-mosque-backend/internal/types"
	"golang.org/x/exp/slices"
)

// hadithMaxLength is the maximum length of a hadith text in runes. The
// dashboard ticker cannot display more.
const hadithMaxLength = 150

type HadithEditable struct {
	Text string     `json:"text" example:"The best among you are those who have the best manners."` // The hadith text, at most 150 characters
	Date types.Date `json:"date" example:"01.Aug.2025"`                                            // Date the hadith was added. Defaults to today
}

// model returns the database resource for the API representation of the editable fields
func (editable HadithEditable) model() models.Hadith {
	return models.Hadith{
		Text: editable.Text,
		Date: editable.Date,
	}
}

// validate enforces the display constraints of the dashboard ticker
func (editable HadithEditable) validate() error {
	if editable.Text == "" {
		return errHadithEmpty
	}

	if utf8.RuneCountInString(editable.Text) > hadithMaxLength {
		return errHadithTooLong
	}

	return nil
}

type HadithLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/hadith/0bb58a1b-4f90-4c5e-bb29-3e2f5599ef30"` // The hadith itself
}

// HadithRecord is the representation of a hadith in API v1.
type HadithRecord struct {
	models.DefaultModel
	HadithEditable
	Links HadithLinks `json:"links"`
}

// newHadith returns the API v1 representation of the resource
func newHadith(c *gin.Context, model models.Hadith) HadithRecord {
	url := c.GetString(string(models.DBContextURL))

	return HadithRecord{
		DefaultModel: model.DefaultModel,
		HadithEditable: HadithEditable{
			Text: model.Text,
			Date: model.Date,
		},
		Links: HadithLinks{
			Self: fmt.Sprintf("%s/v1/hadith/%s", url, model.ID),
		},
	}
}

type HadithListResponse struct {
	Data  []HadithRecord `json:"data"`                                                          // List of hadith
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type HadithResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *HadithRecord `json:"data"`                                                          // The hadith data, if the request was successful
}

// RegisterHadithRoutes registers the routes for hadith with the
// RouterGroup that is passed.
func RegisterHadithRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsHadith)
		r.GET("", GetHadithList)
		r.POST("", CreateHadith)
	}

	// Hadith with ID
	{
		r.OPTIONS("/:id", OptionsHadithDetail)
		r.GET("/:id", GetHadith)
		r.PATCH("/:id", UpdateHadith)
		r.DELETE("/:id", DeleteHadith)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Hadith
// @Success		204
// @Router			/v1/hadith [options]
func OptionsHadith(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Hadith
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/hadith/{id} [options]
func OptionsHadithDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get hadith list
// @Description	Returns all hadith, newest first
// @Tags			Hadith
// @Produce		json
// @Success		200	{object}	HadithListResponse
// @Failure		500	{object}	HadithListResponse
// @Router			/v1/hadith [get]
func GetHadithList(c *gin.Context) {
	var hadith []models.Hadith
	err := models.DB.Order("datetime(date) DESC, datetime(created_at) DESC").Find(&hadith).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HadithListResponse{
			Error: &e,
		})
		return
	}

	data := make([]HadithRecord, 0, len(hadith))
	for _, h := range hadith {
		data = append(data, newHadith(c, h))
	}

	c.JSON(http.StatusOK, HadithListResponse{Data: data})
}

// @Summary		Get hadith
// @Description	Returns a specific hadith
// @Tags			Hadith
// @Produce		json
// @Success		200	{object}	HadithResponse
// @Failure		400	{object}	HadithResponse
// @Failure		404	{object}	HadithResponse
// @Failure		500	{object}	HadithResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/hadith/{id} [get]
func GetHadith(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HadithResponse{
			Error: &e,
		})
		return
	}

	var hadith models.Hadith
	err = models.DB.First(&hadith, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HadithResponse{
			Error: &e,
		})
		return
	}

	data := newHadith(c, hadith)
	c.JSON(http.StatusOK, HadithResponse{Data: &data})
}

// @Summary		Create hadith
// @Description	Creates a new hadith with at most 150 characters of text
// @Tags			Hadith
// @Accept			json
// @Produce		json
// @Success		201		{object}	HadithResponse
// @Failure		400		{object}	HadithResponse
// @Failure		500		{object}	HadithResponse
// @Param			hadith	body		HadithEditable	true	"Hadith"
// @Router			/v1/hadith [post]
func CreateHadith(c *gin.Context) {
	var editable HadithEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), HadithResponse{
			Error: &e,
		})
		return
	}

	if err := editable.validate(); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, HadithResponse{
			Error: &e,
		})
		return
	}

	hadith := editable.model()
	if err := models.DB.Create(&hadith).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), HadithResponse{
			Error: &e,
		})
		return
	}

	data := newHadith(c, hadith)
	c.JSON(http.StatusCreated, HadithResponse{Data: &data})
}

// @Summary		Update hadith
// @Description	Updates an existing hadith. Only values to be updated need to be specified.
// @Tags			Hadith
// @Accept			json
// @Produce		json
// @Success		200		{object}	HadithResponse
// @Failure		400		{object}	HadithResponse
// @Failure		404		{object}	HadithResponse
// @Failure		500		{object}	HadithResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			hadith	body		HadithEditable	true	"Hadith"
// @Router			/v1/hadith/{id} [patch]
func UpdateHadith(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HadithResponse{
			Error: &e,
		})
		return
	}

	var hadith models.Hadith
	err = models.DB.First(&hadith, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HadithResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, HadithEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HadithResponse{
			Error: &e,
		})
		return
	}

	var update HadithEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HadithResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, any("Text")) {
		if err := update.validate(); err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, HadithResponse{
				Error: &e,
			})
			return
		}
	}

	err = models.DB.Model(&hadith).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HadithResponse{
			Error: &e,
		})
		return
	}

	data := newHadith(c, hadith)
	c.JSON(http.StatusOK, HadithResponse{Data: &data})
}

// @Summary		Delete hadith
// @Description	Deletes a hadith
// @Tags			Hadith
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/hadith/{id} [delete]
func DeleteHadith(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var hadith models.Hadith
	err = models.DB.First(&hadith, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&hadith).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
