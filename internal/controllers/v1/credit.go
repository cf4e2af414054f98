package v1

import (
	"net/http"

	"github.com/findash/backend/internal/httputil"
	"github.com/findash/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCreditRoutes registers the routes for credits and their
// payments with the RouterGroup that is passed.
func RegisterCreditRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCreditList)
		r.GET("", GetCredits)
		r.POST("", CreateCredits)
	}

	// Credit with ID
	{
		r.OPTIONS("/:id", OptionsCreditDetail)
		r.GET("/:id", GetCredit)
		r.PATCH("/:id", UpdateCredit)
		r.DELETE("/:id", DeleteCredit)
	}

	// Payments for a credit
	{
		r.OPTIONS("/:id/payments", OptionsCreditPayments)
		r.GET("/:id/payments", GetCreditPayments)
		r.POST("/:id/payments", CreateCreditPayments)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credits
// @Success		204
// @Router			/v1/credits [options]
func OptionsCreditList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/credits/{id} [options]
func OptionsCreditDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Credit{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/credits/{id}/payments [options]
func OptionsCreditPayments(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Credit{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Create credits
// @Description	Creates new credits
// @Tags			Credits
// @Produce		json
// @Success		201		{object}	CreditCreateResponse
// @Failure		400		{object}	CreditCreateResponse
// @Failure		500		{object}	CreditCreateResponse
// @Param			credits	body		[]CreditEditable	true	"Credits"
// @Router			/v1/credits [post]
func CreateCredits(c *gin.Context) {
	var editables []CreditEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	responseStatus := http.StatusCreated
	r := CreditCreateResponse{}

	for _, editable := range editables {
		credit := editable.model()

		err = models.DB.Create(&credit).Error
		if err != nil {
			responseStatus = r.appendError(err, responseStatus)
			continue
		}

		data, err := newCredit(c, models.DB, credit)
		if err != nil {
			responseStatus = r.appendError(err, responseStatus)
			continue
		}
		r.Data = append(r.Data, CreditResponse{Data: &data})
	}

	c.JSON(responseStatus, r)
}

// @Summary		Get credits
// @Description	Returns a list of credits with their derived repayment state
// @Tags			Credits
// @Produce		json
// @Success		200	{object}	CreditListResponse
// @Failure		500	{object}	CreditListResponse
// @Router			/v1/credits [get]
func GetCredits(c *gin.Context) {
	var credits []models.Credit
	err := models.DB.Order("name ASC").Find(&credits).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Credit, 0, len(credits))
	for _, credit := range credits {
		apiResource, err := newCredit(c, models.DB, credit)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CreditListResponse{
				Error: &s,
			})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, CreditListResponse{Data: data})
}

// @Summary		Get credit
// @Description	Returns a specific credit with its derived repayment state
// @Tags			Credits
// @Produce		json
// @Success		200	{object}	CreditResponse
// @Failure		400	{object}	CreditResponse
// @Failure		404	{object}	CreditResponse
// @Failure		500	{object}	CreditResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/credits/{id} [get]
func GetCredit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditResponse{
			Error: &s,
		})
		return
	}

	var credit models.Credit
	err = models.DB.First(&credit, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditResponse{
			Error: &s,
		})
		return
	}

	data, err := newCredit(c, models.DB, credit)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CreditResponse{Data: &data})
}

// @Summary		Update credit
// @Description	Updates an existing credit. Only values to be updated need to be specified.
// @Tags			Credits
// @Accept			json
// @Produce		json
// @Success		200		{object}	CreditResponse
// @Failure		400		{object}	CreditResponse
// @Failure		404		{object}	CreditResponse
// @Failure		500		{object}	CreditResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			credit	body		CreditEditable	true	"Credit"
// @Router			/v1/credits/{id} [patch]
func UpdateCredit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditResponse{
			Error: &s,
		})
		return
	}

	var credit models.Credit
	err = models.DB.First(&credit, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CreditEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditResponse{
			Error: &s,
		})
		return
	}

	var data CreditEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&credit).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditResponse{
			Error: &s,
		})
		return
	}

	r, err := newCredit(c, models.DB, credit)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CreditResponse{Data: &r})
}

// @Summary		Delete credit
// @Description	Deletes a credit together with its payments
// @Tags			Credits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/credits/{id} [delete]
func DeleteCredit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var credit models.Credit
	err = models.DB.First(&credit, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.
		Where("credit_id = ?", credit.ID).
		Delete(&models.CreditPayment{}).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&credit).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get credit payments
// @Description	Returns all payments of a credit
// @Tags			Credits
// @Produce		json
// @Success		200	{object}	CreditPaymentListResponse
// @Failure		400	{object}	CreditPaymentListResponse
// @Failure		404	{object}	CreditPaymentListResponse
// @Failure		500	{object}	CreditPaymentListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/credits/{id}/payments [get]
func GetCreditPayments(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditPaymentListResponse{
			Error: &s,
		})
		return
	}

	var credit models.Credit
	err = models.DB.First(&credit, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditPaymentListResponse{
			Error: &s,
		})
		return
	}

	var payments []models.CreditPayment
	err = models.DB.
		Where("credit_id = ?", credit.ID).
		Order("payment_date ASC").
		Find(&payments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditPaymentListResponse{
			Error: &s,
		})
		return
	}

	data := make([]CreditPayment, 0, len(payments))
	for _, payment := range payments {
		data = append(data, newCreditPayment(payment))
	}

	c.JSON(http.StatusOK, CreditPaymentListResponse{Data: data})
}

// @Summary		Create credit payments
// @Description	Creates new payments for a credit
// @Tags			Credits
// @Produce		json
// @Success		201			{object}	CreditPaymentListResponse
// @Failure		400			{object}	CreditPaymentListResponse
// @Failure		404			{object}	CreditPaymentListResponse
// @Failure		500			{object}	CreditPaymentListResponse
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payments	body		[]CreditPaymentEditable	true	"Payments"
// @Router			/v1/credits/{id}/payments [post]
func CreateCreditPayments(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditPaymentListResponse{
			Error: &s,
		})
		return
	}

	var credit models.Credit
	err = models.DB.First(&credit, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditPaymentListResponse{
			Error: &s,
		})
		return
	}

	var editables []CreditPaymentEditable
	err = httputil.BindData(c, &editables)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditPaymentListResponse{
			Error: &s,
		})
		return
	}

	data := make([]CreditPayment, 0, len(editables))
	for _, editable := range editables {
		payment := editable.model(credit.ID)

		err = models.DB.Create(&payment).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CreditPaymentListResponse{
				Error: &s,
			})
			return
		}

		data = append(data, newCreditPayment(payment))
	}

	c.JSON(http.StatusCreated, CreditPaymentListResponse{Data: data})
}
