package v1

import (
	"net/http"

	"github.com/findash/backend/internal/httputil"
	"github.com/findash/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetCategoryRoutes registers the routes for budget categories
// with the RouterGroup that is passed.
func RegisterBudgetCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetCategoryList)
		r.GET("", GetBudgetCategories)
		r.POST("", CreateBudgetCategories)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsBudgetCategoryDetail)
		r.GET("/:id", GetBudgetCategory)
		r.PATCH("/:id", UpdateBudgetCategory)
		r.DELETE("/:id", DeleteBudgetCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetCategories
// @Success		204
// @Router			/v1/budget-categories [options]
func OptionsBudgetCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetCategories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-categories/{id} [options]
func OptionsBudgetCategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.BudgetCategory{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create budget categories
// @Description	Creates new budget categories
// @Tags			BudgetCategories
// @Produce		json
// @Success		201			{object}	BudgetCategoryCreateResponse
// @Failure		400			{object}	BudgetCategoryCreateResponse
// @Failure		500			{object}	BudgetCategoryCreateResponse
// @Param			categories	body		[]BudgetCategoryEditable	true	"Categories"
// @Router			/v1/budget-categories [post]
func CreateBudgetCategories(c *gin.Context) {
	var editables []BudgetCategoryEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCategoryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	responseStatus := http.StatusCreated
	r := BudgetCategoryCreateResponse{}

	for _, editable := range editables {
		category := editable.model()

		err = models.DB.Create(&category).Error
		if err != nil {
			responseStatus = r.appendError(err, responseStatus)
			continue
		}

		data := newBudgetCategory(c, category)
		r.Data = append(r.Data, BudgetCategoryResponse{Data: &data})
	}

	c.JSON(responseStatus, r)
}

// @Summary		Get budget categories
// @Description	Returns a list of budget categories
// @Tags			BudgetCategories
// @Produce		json
// @Success		200	{object}	BudgetCategoryListResponse
// @Failure		500	{object}	BudgetCategoryListResponse
// @Router			/v1/budget-categories [get]
// @Param			name	query	string	false	"Filter by name"
func GetBudgetCategories(c *gin.Context) {
	var filter BudgetCategoryQueryFilter
	_ = c.Bind(&filter)

	q := models.DB.Order("name ASC")

	if filter.Name != "" {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	}

	var categories []models.BudgetCategory
	err := q.Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetCategoryListResponse{
			Error: &s,
		})
		return
	}

	data := make([]BudgetCategory, 0, len(categories))
	for _, category := range categories {
		data = append(data, newBudgetCategory(c, category))
	}

	c.JSON(http.StatusOK, BudgetCategoryListResponse{Data: data})
}

// @Summary		Get budget category
// @Description	Returns a specific budget category
// @Tags			BudgetCategories
// @Produce		json
// @Success		200	{object}	BudgetCategoryResponse
// @Failure		400	{object}	BudgetCategoryResponse
// @Failure		404	{object}	BudgetCategoryResponse
// @Failure		500	{object}	BudgetCategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-categories/{id} [get]
func GetBudgetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetCategoryResponse{
			Error: &s,
		})
		return
	}

	var category models.BudgetCategory
	err = models.DB.First(&category, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetCategoryResponse{
			Error: &s,
		})
		return
	}

	data := newBudgetCategory(c, category)
	c.JSON(http.StatusOK, BudgetCategoryResponse{Data: &data})
}

// @Summary		Update budget category
// @Description	Updates an existing budget category. Only values to be updated need to be specified.
// @Tags			BudgetCategories
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetCategoryResponse
// @Failure		400			{object}	BudgetCategoryResponse
// @Failure		404			{object}	BudgetCategoryResponse
// @Failure		500			{object}	BudgetCategoryResponse
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		BudgetCategoryEditable	true	"Category"
// @Router			/v1/budget-categories/{id} [patch]
func UpdateBudgetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetCategoryResponse{
			Error: &s,
		})
		return
	}

	var category models.BudgetCategory
	err = models.DB.First(&category, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetCategoryResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetCategoryEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetCategoryResponse{
			Error: &s,
		})
		return
	}

	var data BudgetCategoryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetCategoryResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&category).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetCategoryResponse{
			Error: &s,
		})
		return
	}

	r := newBudgetCategory(c, category)
	c.JSON(http.StatusOK, BudgetCategoryResponse{Data: &r})
}

// @Summary		Delete budget category
// @Description	Deletes a budget category together with its allocation rules
// @Tags			BudgetCategories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-categories/{id} [delete]
func DeleteBudgetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var category models.BudgetCategory
	err = models.DB.First(&category, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Rules without their category would dangle, remove them first
	err = models.DB.
		Where("budget_category_id = ?", category.ID).
		Delete(&models.BudgetAllocationRule{}).Error
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
