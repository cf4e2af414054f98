package v1

import (
	"net/http"

	"github.com/findash/backend/internal/httputil"
	"github.com/findash/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCurrencyRoutes registers the routes for currencies with
// the RouterGroup that is passed.
func RegisterCurrencyRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCurrencyList)
		r.GET("", GetCurrencies)
		r.POST("", CreateCurrencies)
	}

	// Currency with ID
	{
		r.OPTIONS("/:id", OptionsCurrencyDetail)
		r.GET("/:id", GetCurrency)
		r.PATCH("/:id", UpdateCurrency)
		r.DELETE("/:id", DeleteCurrency)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Currencies
// @Success		204
// @Router			/v1/currencies [options]
func OptionsCurrencyList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Currencies
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/currencies/{id} [options]
func OptionsCurrencyDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Currency{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create currencies
// @Description	Creates new currencies
// @Tags			Currencies
// @Produce		json
// @Success		201			{object}	CurrencyCreateResponse
// @Failure		400			{object}	CurrencyCreateResponse
// @Failure		500			{object}	CurrencyCreateResponse
// @Param			currencies	body		[]CurrencyEditable	true	"Currencies"
// @Router			/v1/currencies [post]
func CreateCurrencies(c *gin.Context) {
	var editables []CurrencyEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CurrencyCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	responseStatus := http.StatusCreated
	r := CurrencyCreateResponse{}

	for _, editable := range editables {
		currency := editable.model()

		err = models.DB.Create(&currency).Error
		if err != nil {
			responseStatus = r.appendError(err, responseStatus)
			continue
		}

		data := newCurrency(c, currency)
		r.Data = append(r.Data, CurrencyResponse{Data: &data})
	}

	c.JSON(responseStatus, r)
}

// @Summary		Get currencies
// @Description	Returns a list of currencies
// @Tags			Currencies
// @Produce		json
// @Success		200	{object}	CurrencyListResponse
// @Failure		500	{object}	CurrencyListResponse
// @Router			/v1/currencies [get]
func GetCurrencies(c *gin.Context) {
	var currencies []models.Currency
	err := models.DB.Order("code ASC").Find(&currencies).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CurrencyListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Currency, 0, len(currencies))
	for _, currency := range currencies {
		data = append(data, newCurrency(c, currency))
	}

	c.JSON(http.StatusOK, CurrencyListResponse{Data: data})
}

// @Summary		Get currency
// @Description	Returns a specific currency
// @Tags			Currencies
// @Produce		json
// @Success		200	{object}	CurrencyResponse
// @Failure		400	{object}	CurrencyResponse
// @Failure		404	{object}	CurrencyResponse
// @Failure		500	{object}	CurrencyResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/currencies/{id} [get]
func GetCurrency(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CurrencyResponse{
			Error: &s,
		})
		return
	}

	var currency models.Currency
	err = models.DB.First(&currency, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CurrencyResponse{
			Error: &s,
		})
		return
	}

	data := newCurrency(c, currency)
	c.JSON(http.StatusOK, CurrencyResponse{Data: &data})
}

// @Summary		Update currency
// @Description	Updates an existing currency. Only values to be updated need to be specified.
// @Tags			Currencies
// @Accept			json
// @Produce		json
// @Success		200			{object}	CurrencyResponse
// @Failure		400			{object}	CurrencyResponse
// @Failure		404			{object}	CurrencyResponse
// @Failure		500			{object}	CurrencyResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			currency	body		CurrencyEditable	true	"Currency"
// @Router			/v1/currencies/{id} [patch]
func UpdateCurrency(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CurrencyResponse{
			Error: &s,
		})
		return
	}

	var currency models.Currency
	err = models.DB.First(&currency, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CurrencyResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CurrencyEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CurrencyResponse{
			Error: &s,
		})
		return
	}

	var data CurrencyEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CurrencyResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&currency).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CurrencyResponse{
			Error: &s,
		})
		return
	}

	r := newCurrency(c, currency)
	c.JSON(http.StatusOK, CurrencyResponse{Data: &r})
}

// @Summary		Delete currency
// @Description	Deletes a currency
// @Tags			Currencies
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/currencies/{id} [delete]
func DeleteCurrency(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var currency models.Currency
	err = models.DB.First(&currency, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&currency).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
