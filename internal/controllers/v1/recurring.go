package v1

import (
	"net/http"
	"time"

	"github.com/findash/backend/internal/httputil"
	"github.com/findash/backend/internal/models"
	"github.com/findash/backend/internal/recurring"
	"github.com/gin-gonic/gin"
)

// RegisterRecurringExpenseRoutes registers the routes for recurring
// expenses with the RouterGroup that is passed.
func RegisterRecurringExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecurringExpenseList)
		r.GET("", GetRecurringExpenses)
		r.POST("", CreateRecurringExpenses)
	}

	// Processing
	{
		r.OPTIONS("/process", OptionsRecurringProcess)
		r.POST("/process", ProcessRecurringExpenses)
	}

	// Recurring expense with ID
	{
		r.OPTIONS("/:id", OptionsRecurringExpenseDetail)
		r.GET("/:id", GetRecurringExpense)
		r.PATCH("/:id", UpdateRecurringExpense)
		r.DELETE("/:id", DeleteRecurringExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringExpenses
// @Success		204
// @Router			/v1/recurring-expenses [options]
func OptionsRecurringExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringExpenses
// @Success		204
// @Router			/v1/recurring-expenses/process [options]
func OptionsRecurringProcess(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringExpenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id} [options]
func OptionsRecurringExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.RecurringExpense{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create recurring expenses
// @Description	Creates new recurring expenses
// @Tags			RecurringExpenses
// @Produce		json
// @Success		201			{object}	RecurringExpenseCreateResponse
// @Failure		400			{object}	RecurringExpenseCreateResponse
// @Failure		500			{object}	RecurringExpenseCreateResponse
// @Param			expenses	body		[]RecurringExpenseEditable	true	"Recurring expenses"
// @Router			/v1/recurring-expenses [post]
func CreateRecurringExpenses(c *gin.Context) {
	var editables []RecurringExpenseEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	responseStatus := http.StatusCreated
	r := RecurringExpenseCreateResponse{}

	for _, editable := range editables {
		expense := editable.model()

		// The account must exist for bookings to work later
		err = models.DB.First(&models.Account{}, expense.AccountID).Error
		if err != nil {
			responseStatus = r.appendError(err, responseStatus)
			continue
		}

		err = models.DB.Create(&expense).Error
		if err != nil {
			responseStatus = r.appendError(err, responseStatus)
			continue
		}

		data := newRecurringExpense(c, expense)
		r.Data = append(r.Data, RecurringExpenseResponse{Data: &data})
	}

	c.JSON(responseStatus, r)
}

// @Summary		Get recurring expenses
// @Description	Returns a list of recurring expenses
// @Tags			RecurringExpenses
// @Produce		json
// @Success		200	{object}	RecurringExpenseListResponse
// @Failure		500	{object}	RecurringExpenseListResponse
// @Router			/v1/recurring-expenses [get]
// @Param			status	query	string	false	"Filter by status"
// @Param			kind	query	string	false	"Filter by kind"
func GetRecurringExpenses(c *gin.Context) {
	var filter struct {
		Status string `form:"status"`
		Kind   string `form:"kind"`
	}
	_ = c.Bind(&filter)

	q := models.DB.Order("next_payment_date ASC")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}

	var expenses []models.RecurringExpense
	err := q.Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseListResponse{
			Error: &s,
		})
		return
	}

	data := make([]RecurringExpense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newRecurringExpense(c, expense))
	}

	c.JSON(http.StatusOK, RecurringExpenseListResponse{Data: data})
}

// @Summary		Get recurring expense
// @Description	Returns a specific recurring expense
// @Tags			RecurringExpenses
// @Produce		json
// @Success		200	{object}	RecurringExpenseResponse
// @Failure		400	{object}	RecurringExpenseResponse
// @Failure		404	{object}	RecurringExpenseResponse
// @Failure		500	{object}	RecurringExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id} [get]
func GetRecurringExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	var expense models.RecurringExpense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newRecurringExpense(c, expense)
	c.JSON(http.StatusOK, RecurringExpenseResponse{Data: &data})
}

// @Summary		Update recurring expense
// @Description	Updates an existing recurring expense. Only values to be updated need to be specified.
// @Tags			RecurringExpenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	RecurringExpenseResponse
// @Failure		400		{object}	RecurringExpenseResponse
// @Failure		404		{object}	RecurringExpenseResponse
// @Failure		500		{object}	RecurringExpenseResponse
// @Param			id		path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		RecurringExpenseEditable	true	"Recurring expense"
// @Router			/v1/recurring-expenses/{id} [patch]
func UpdateRecurringExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	var expense models.RecurringExpense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RecurringExpenseEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	var data RecurringExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&expense).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	r := newRecurringExpense(c, expense)
	c.JSON(http.StatusOK, RecurringExpenseResponse{Data: &r})
}

// @Summary		Delete recurring expense
// @Description	Deletes a recurring expense. Transactions already booked are kept.
// @Tags			RecurringExpenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id} [delete]
func DeleteRecurringExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var expense models.RecurringExpense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Process recurring expenses
// @Description	Books all recurring expenses that are due as transactions and advances their schedules
// @Tags			RecurringExpenses
// @Produce		json
// @Success		201	{object}	RecurringProcessResponse
// @Failure		500	{object}	RecurringProcessResponse
// @Router			/v1/recurring-expenses/process [post]
func ProcessRecurringExpenses(c *gin.Context) {
	booked, err := recurring.Process(models.DB, time.Now().In(time.UTC))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringProcessResponse{
			Error: &s,
		})
		return
	}

	data := make([]Transaction, 0, len(booked))
	for _, transaction := range booked {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusCreated, RecurringProcessResponse{Data: data})
}
