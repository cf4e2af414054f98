package v1

import (
	"net/http"

	"github.com/findash/backend/internal/httputil"
	"github.com/findash/backend/internal/models"
	"github.com/findash/backend/internal/types"
	findash_uuid "github.com/findash/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// RegisterAllocationRuleRoutes registers the routes for allocation rules
// with the RouterGroup that is passed.
func RegisterAllocationRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAllocationRuleList)
		r.GET("", GetAllocationRules)
		r.POST("", CreateAllocationRules)
	}

	// Allocation rule with ID
	{
		r.OPTIONS("/:id", OptionsAllocationRuleDetail)
		r.GET("/:id", GetAllocationRule)
		r.PATCH("/:id", UpdateAllocationRule)
		r.DELETE("/:id", DeleteAllocationRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			AllocationRules
// @Success		204
// @Router			/v1/allocation-rules [options]
func OptionsAllocationRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			AllocationRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-rules/{id} [options]
func OptionsAllocationRuleDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.BudgetAllocationRule{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create allocation rules
// @Description	Creates new allocation rules. Only one rule per category and month can exist.
// @Tags			AllocationRules
// @Produce		json
// @Success		201		{object}	AllocationRuleCreateResponse
// @Failure		400		{object}	AllocationRuleCreateResponse
// @Failure		404		{object}	AllocationRuleCreateResponse
// @Failure		500		{object}	AllocationRuleCreateResponse
// @Param			rules	body		[]AllocationRuleEditable	true	"Allocation rules"
// @Router			/v1/allocation-rules [post]
func CreateAllocationRules(c *gin.Context) {
	var editables []AllocationRuleEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	responseStatus := http.StatusCreated
	r := AllocationRuleCreateResponse{}

	for _, editable := range editables {
		rule := editable.model()

		// The budget category must exist for the rule to make sense
		err = models.DB.First(&models.BudgetCategory{}, rule.BudgetCategoryID).Error
		if err != nil {
			responseStatus = r.appendError(err, responseStatus)
			continue
		}

		err = models.DB.Create(&rule).Error
		if err != nil {
			responseStatus = r.appendError(err, responseStatus)
			continue
		}

		data := newAllocationRule(c, rule)
		r.Data = append(r.Data, AllocationRuleResponse{Data: &data})
	}

	c.JSON(responseStatus, r)
}

// @Summary		Get allocation rules
// @Description	Returns a list of allocation rules
// @Tags			AllocationRules
// @Produce		json
// @Success		200	{object}	AllocationRuleListResponse
// @Failure		400	{object}	AllocationRuleListResponse
// @Failure		500	{object}	AllocationRuleListResponse
// @Router			/v1/allocation-rules [get]
// @Param			category	query	string	false	"Filter by budget category ID"
// @Param			month		query	string	false	"Only rules for this month. Format: YYYY-MM"
func GetAllocationRules(c *gin.Context) {
	var filter AllocationRuleQueryFilter

	err := c.Bind(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationRuleListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.Order("month ASC")

	if filter.Category != findash_uuid.Nil {
		q = q.Where("budget_category_id = ?", filter.Category.UUID)
	}

	if !filter.Month.IsZero() {
		q = q.Where(&models.BudgetAllocationRule{Month: types.MonthOf(filter.Month)})
	}

	var rules []models.BudgetAllocationRule
	err = q.Find(&rules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationRuleListResponse{
			Error: &s,
		})
		return
	}

	data := make([]AllocationRule, 0, len(rules))
	for _, rule := range rules {
		data = append(data, newAllocationRule(c, rule))
	}

	c.JSON(http.StatusOK, AllocationRuleListResponse{Data: data})
}

// @Summary		Get allocation rule
// @Description	Returns a specific allocation rule
// @Tags			AllocationRules
// @Produce		json
// @Success		200	{object}	AllocationRuleResponse
// @Failure		400	{object}	AllocationRuleResponse
// @Failure		404	{object}	AllocationRuleResponse
// @Failure		500	{object}	AllocationRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-rules/{id} [get]
func GetAllocationRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationRuleResponse{
			Error: &s,
		})
		return
	}

	var rule models.BudgetAllocationRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationRuleResponse{
			Error: &s,
		})
		return
	}

	data := newAllocationRule(c, rule)
	c.JSON(http.StatusOK, AllocationRuleResponse{Data: &data})
}

// @Summary		Update allocation rule
// @Description	Updates an existing allocation rule. Only values to be updated need to be specified.
// @Tags			AllocationRules
// @Accept			json
// @Produce		json
// @Success		200		{object}	AllocationRuleResponse
// @Failure		400		{object}	AllocationRuleResponse
// @Failure		404		{object}	AllocationRuleResponse
// @Failure		500		{object}	AllocationRuleResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body		AllocationRuleEditable	true	"Allocation rule"
// @Router			/v1/allocation-rules/{id} [patch]
func UpdateAllocationRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationRuleResponse{
			Error: &s,
		})
		return
	}

	var rule models.BudgetAllocationRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationRuleResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AllocationRuleEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationRuleResponse{
			Error: &s,
		})
		return
	}

	var data AllocationRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationRuleResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&rule).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationRuleResponse{
			Error: &s,
		})
		return
	}

	r := newAllocationRule(c, rule)
	c.JSON(http.StatusOK, AllocationRuleResponse{Data: &r})
}

// @Summary		Delete allocation rule
// @Description	Deletes an allocation rule
// @Tags			AllocationRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-rules/{id} [delete]
func DeleteAllocationRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var rule models.BudgetAllocationRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
