package v1

import (
	"net/http"

	"github.com/findash/backend/internal/httputil"
	"github.com/findash/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterTransactionCategoryRoutes registers the routes for transaction
// categories with the RouterGroup that is passed.
func RegisterTransactionCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionCategoryList)
		r.GET("", GetTransactionCategories)
		r.POST("", CreateTransactionCategories)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsTransactionCategoryDetail)
		r.GET("/:id", GetTransactionCategory)
		r.PATCH("/:id", UpdateTransactionCategory)
		r.DELETE("/:id", DeleteTransactionCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			TransactionCategories
// @Success		204
// @Router			/v1/transaction-categories [options]
func OptionsTransactionCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			TransactionCategories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transaction-categories/{id} [options]
func OptionsTransactionCategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.TransactionCategory{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create transaction categories
// @Description	Creates new transaction categories
// @Tags			TransactionCategories
// @Produce		json
// @Success		201			{object}	TransactionCategoryCreateResponse
// @Failure		400			{object}	TransactionCategoryCreateResponse
// @Failure		500			{object}	TransactionCategoryCreateResponse
// @Param			categories	body		[]TransactionCategoryEditable	true	"Categories"
// @Router			/v1/transaction-categories [post]
func CreateTransactionCategories(c *gin.Context) {
	var editables []TransactionCategoryEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCategoryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	responseStatus := http.StatusCreated
	r := TransactionCategoryCreateResponse{}

	for _, editable := range editables {
		category := editable.model()

		err = models.DB.Create(&category).Error
		if err != nil {
			responseStatus = r.appendError(err, responseStatus)
			continue
		}

		data := newTransactionCategory(c, category)
		r.Data = append(r.Data, TransactionCategoryResponse{Data: &data})
	}

	c.JSON(responseStatus, r)
}

// @Summary		Get transaction categories
// @Description	Returns a list of transaction categories
// @Tags			TransactionCategories
// @Produce		json
// @Success		200	{object}	TransactionCategoryListResponse
// @Failure		500	{object}	TransactionCategoryListResponse
// @Router			/v1/transaction-categories [get]
// @Param			name	query	string	false	"Filter by name"
func GetTransactionCategories(c *gin.Context) {
	var filter TransactionCategoryQueryFilter
	_ = c.Bind(&filter)

	q := models.DB.Order("name ASC")

	if filter.Name != "" {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	}

	var categories []models.TransactionCategory
	err := q.Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionCategoryListResponse{
			Error: &s,
		})
		return
	}

	data := make([]TransactionCategory, 0, len(categories))
	for _, category := range categories {
		data = append(data, newTransactionCategory(c, category))
	}

	c.JSON(http.StatusOK, TransactionCategoryListResponse{Data: data})
}

// @Summary		Get transaction category
// @Description	Returns a specific transaction category
// @Tags			TransactionCategories
// @Produce		json
// @Success		200	{object}	TransactionCategoryResponse
// @Failure		400	{object}	TransactionCategoryResponse
// @Failure		404	{object}	TransactionCategoryResponse
// @Failure		500	{object}	TransactionCategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transaction-categories/{id} [get]
func GetTransactionCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionCategoryResponse{
			Error: &s,
		})
		return
	}

	var category models.TransactionCategory
	err = models.DB.First(&category, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionCategoryResponse{
			Error: &s,
		})
		return
	}

	data := newTransactionCategory(c, category)
	c.JSON(http.StatusOK, TransactionCategoryResponse{Data: &data})
}

// @Summary		Update transaction category
// @Description	Updates an existing transaction category. Only values to be updated need to be specified.
// @Tags			TransactionCategories
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionCategoryResponse
// @Failure		400			{object}	TransactionCategoryResponse
// @Failure		404			{object}	TransactionCategoryResponse
// @Failure		500			{object}	TransactionCategoryResponse
// @Param			id			path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		TransactionCategoryEditable	true	"Category"
// @Router			/v1/transaction-categories/{id} [patch]
func UpdateTransactionCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionCategoryResponse{
			Error: &s,
		})
		return
	}

	var category models.TransactionCategory
	err = models.DB.First(&category, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionCategoryResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TransactionCategoryEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionCategoryResponse{
			Error: &s,
		})
		return
	}

	var data TransactionCategoryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionCategoryResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&category).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionCategoryResponse{
			Error: &s,
		})
		return
	}

	r := newTransactionCategory(c, category)
	c.JSON(http.StatusOK, TransactionCategoryResponse{Data: &r})
}

// @Summary		Delete transaction category
// @Description	Deletes a transaction category. Transactions in the category keep existing without a category.
// @Tags			TransactionCategories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transaction-categories/{id} [delete]
func DeleteTransactionCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var category models.TransactionCategory
	err = models.DB.First(&category, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Detach transactions before the category disappears
	err = models.DB.Model(&models.Transaction{}).
		Where("category_id = ?", category.ID).
		Update("category_id", nil).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
