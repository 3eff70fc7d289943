package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gs866812/kustia-mosque-backend/internal/httputil"
	"github.com/gs866812/kustia-mosque-backend/internal/ledger"
	"github.com/gs866812/kustia-mosque-backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterExpenseRoutes registers the routes for expenses. The list is
// public, everything that writes and the export live behind
// authentication.
func RegisterExpenseRoutes(public, admin *gin.RouterGroup) {
	// Root group
	{
		public.OPTIONS("", OptionsExpenses)
		public.GET("", GetExpenses)
		admin.POST("", CreateExpense)
	}

	// Export
	{
		admin.OPTIONS("/export", httputil.OptionsGet)
		admin.GET("/export", GetExpensesExport)
	}

	// Expense with ID
	{
		admin.OPTIONS("/:id", OptionsExpenseDetail)
		admin.GET("/:id", GetExpense)
		admin.PATCH("/:id", UpdateExpense)
		admin.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Get expenses
// @Description	Returns a list of expenses together with the amount and quantity totals over the full matched set
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			startDate	query	string	false	"Expenses at and after this date. Accepts DD.MMM.YYYY, YYYY-MM-DD and RFC3339"
// @Param			endDate		query	string	false	"Expenses before and at this date. Accepts DD.MMM.YYYY, YYYY-MM-DD and RFC3339"
// @Param			search		query	string	false	"Case-insensitive substring match on the description"
// @Param			category	query	string	false	"Exact match on the expense category"
// @Param			page		query	int		false	"The 1-based page of expenses returned. Defaults to 1"
// @Param			limit		query	int		false	"Maximum number of expenses to return. Defaults to 50"
func GetExpenses(c *gin.Context) {
	listExpenses(c, 0)
}

// @Summary		Export expenses
// @Description	Returns the full matched set of expenses without pagination
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Router			/v1/expenses/export [get]
// @Param			startDate	query	string	false	"Expenses at and after this date. Accepts DD.MMM.YYYY, YYYY-MM-DD and RFC3339"
// @Param			endDate		query	string	false	"Expenses before and at this date. Accepts DD.MMM.YYYY, YYYY-MM-DD and RFC3339"
// @Param			search		query	string	false	"Case-insensitive substring match on the description"
// @Param			category	query	string	false	"Exact match on the expense category"
func GetExpensesExport(c *gin.Context) {
	listExpenses(c, ledger.Unpaginated)
}

func listExpenses(c *gin.Context, forceLimit int) {
	var params ListQueryFilter
	if err := c.Bind(&params); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &e,
		})
		return
	}

	filter, err := params.filter()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &e,
		})
		return
	}

	if forceLimit != 0 {
		filter.Limit = forceLimit
		filter.Page = 0
	}

	expenses, sums, err := ledger.Expenses(c.Request.Context(), filter)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data:          data,
		TotalAmount:   sums.TotalAmount,
		TotalQuantity: sums.TotalQuantity,
		Pagination:    pagination(filter, len(data), sums.TotalCount),
	})
}

// @Summary		Create expense
// @Description	Creates a new expense
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	expense := editable.model()
	if err := models.DB.Create(&expense).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	tracker.Invalidate()

	data := newExpense(c, expense)
	c.JSON(http.StatusCreated, ExpenseResponse{Data: &data})
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var update ExpenseEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	// Keep the stored date when the update does not change it so that
	// the derived month and year are recomputed from the right date
	if !slices.Contains(updateFields, any("Date")) {
		update.Date = expense.Date
	}

	// The derived month and year columns follow the date on every write
	updateFields = append(updateFields, "Month", "Year")

	err = models.DB.Model(&expense).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	tracker.Invalidate()

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	tracker.Invalidate()

	c.JSON(http.StatusNoContent, nil)
}
