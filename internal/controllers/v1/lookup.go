package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gs866812/kustia-mosque-backend/internal/httputil"
	"github.com/gs866812/kustia-mosque-backend/internal/models"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

type LookupEditable struct {
	Value string `json:"value" example:"General donations"` // The lookup value
}

type LookupLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/lookups/income-categories/4b7f29af-2a1c-4a02-ae9b-c18f4e1524c2"` // The lookup value itself
}

// LookupValue is the representation of a lookup value in API v1.
type LookupValue struct {
	models.DefaultModel
	Kind  models.LookupKind `json:"kind" example:"income-categories"` // The list this value belongs to
	Value string            `json:"value" example:"General donations"`
	Links LookupLinks       `json:"links"`
}

// newLookup returns the API v1 representation of the resource
func newLookup(c *gin.Context, model models.Lookup) LookupValue {
	url := c.GetString(string(models.DBContextURL))

	return LookupValue{
		DefaultModel: model.DefaultModel,
		Kind:         model.Kind,
		Value:        model.Value,
		Links: LookupLinks{
			Self: fmt.Sprintf("%s/v1/lookups/%s/%s", url, model.Kind, model.ID),
		},
	}
}

type LookupKindsResponse struct {
	Data []models.LookupKind `json:"data"` // The available lookup kinds
}

type LookupListResponse struct {
	Data  []LookupValue `json:"data"`                                              // List of lookup values
	Error *string       `json:"error" example:"the specified lookup kind is invalid"` // The error, if any occurred
}

type LookupResponse struct {
	Error *string      `json:"error" example:"the specified lookup kind is invalid"` // The error, if any occurred
	Data  *LookupValue `json:"data"`                                                 // The lookup value, if the request was successful
}

// RegisterLookupRoutes registers the routes for the lookup lists with
// the RouterGroup that is passed.
func RegisterLookupRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", GetLookupKinds)
	}

	// Values of one list
	{
		r.OPTIONS("/:kind", OptionsLookupKind)
		r.GET("/:kind", GetLookups)
		r.POST("/:kind", CreateLookup)
	}

	// Value with ID
	{
		r.OPTIONS("/:kind/:id", OptionsLookupDetail)
		r.DELETE("/:kind/:id", DeleteLookup)
	}
}

// bindKind validates the kind URI parameter
func bindKind(c *gin.Context) (models.LookupKind, error) {
	kind := models.LookupKind(c.Param("kind"))
	if !slices.Contains(models.LookupKinds, kind) {
		return "", errLookupKindInvalid
	}

	return kind, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Lookups
// @Success		204
// @Param			kind	path	string	true	"The lookup kind"
// @Router			/v1/lookups/{kind} [options]
func OptionsLookupKind(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Lookups
// @Success		204
// @Param			kind	path	string	true	"The lookup kind"
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/lookups/{kind}/{id} [options]
func OptionsLookupDetail(c *gin.Context) {
	c.Header("allow", "DELETE")
	c.Status(http.StatusNoContent)
}

// @Summary		Get lookup kinds
// @Description	Returns the names of all lookup lists
// @Tags			Lookups
// @Produce		json
// @Success		200	{object}	LookupKindsResponse
// @Router			/v1/lookups [get]
func GetLookupKinds(c *gin.Context) {
	c.JSON(http.StatusOK, LookupKindsResponse{Data: models.LookupKinds})
}

// @Summary		Get lookup values
// @Description	Returns the values of one lookup list. A search pattern containing "*" is matched as a glob, anything else as a substring
// @Tags			Lookups
// @Produce		json
// @Success		200		{object}	LookupListResponse
// @Failure		400		{object}	LookupListResponse
// @Failure		500		{object}	LookupListResponse
// @Param			kind	path		string	true	"The lookup kind"
// @Param			search	query		string	false	"Search pattern"
// @Router			/v1/lookups/{kind} [get]
func GetLookups(c *gin.Context) {
	kind, err := bindKind(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, LookupListResponse{
			Error: &e,
		})
		return
	}

	search := c.Query("search")

	q := models.DB.Where(&models.Lookup{Kind: kind}).Order("value ASC")

	// Globs are matched in memory since SQLite LIKE cannot express them
	isGlob := strings.Contains(search, glob.GLOB)
	if search != "" && !isGlob {
		q = q.Where("value LIKE ?", fmt.Sprintf("%%%s%%", search))
	}

	var lookups []models.Lookup
	err = q.Find(&lookups).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LookupListResponse{
			Error: &e,
		})
		return
	}

	data := make([]LookupValue, 0, len(lookups))
	for _, lookup := range lookups {
		if isGlob && !glob.Glob(search, lookup.Value) {
			continue
		}
		data = append(data, newLookup(c, lookup))
	}

	c.JSON(http.StatusOK, LookupListResponse{Data: data})
}

// @Summary		Create lookup value
// @Description	Adds a value to one lookup list
// @Tags			Lookups
// @Accept			json
// @Produce		json
// @Success		201		{object}	LookupResponse
// @Failure		400		{object}	LookupResponse
// @Failure		500		{object}	LookupResponse
// @Param			kind	path		string			true	"The lookup kind"
// @Param			value	body		LookupEditable	true	"Lookup value"
// @Router			/v1/lookups/{kind} [post]
func CreateLookup(c *gin.Context) {
	kind, err := bindKind(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, LookupResponse{
			Error: &e,
		})
		return
	}

	var editable LookupEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), LookupResponse{
			Error: &e,
		})
		return
	}

	lookup := models.Lookup{
		Kind:  kind,
		Value: editable.Value,
	}
	if err := models.DB.Create(&lookup).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), LookupResponse{
			Error: &e,
		})
		return
	}

	data := newLookup(c, lookup)
	c.JSON(http.StatusCreated, LookupResponse{Data: &data})
}

// @Summary		Delete lookup value
// @Description	Removes a value from one lookup list
// @Tags			Lookups
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			kind	path		string	true	"The lookup kind"
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/lookups/{kind}/{id} [delete]
func DeleteLookup(c *gin.Context) {
	kind, err := bindKind(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var lookup models.Lookup
	err = models.DB.Where(&models.Lookup{Kind: kind}).First(&lookup, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&lookup).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
