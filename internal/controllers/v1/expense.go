package v1

import (
	"net/http"

	"github.com/family-ledger/backend/internal/httputil"
	"github.com/family-ledger/backend/internal/models"
	ledger_uuid "github.com/family-ledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExpenses)
	r.GET("", GetExpenses)
	r.POST("", CreateExpense)
	r.DELETE("", DeleteExpense)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenses(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

type ExpenseQueryFilter struct {
	FamilyID ledger_uuid.UUID `form:"familyId"` // ID of the owning family
	Category string           `form:"category"` // Filter by category. "All" disables the filter.
}

// @Summary		List expenses
// @Description	Returns all expenses of the family, newest first
// @Tags			Expenses
// @Produce		json
// @Success		200			{array}		models.Expense
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Param			familyId	query		string	true	"ID of the family"
// @Param			category	query		string	false	"Filter by category"
// @Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	identity, ok := authenticate(c)
	if !ok {
		return
	}

	var filter ExpenseQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		c.JSON(status(httputil.ErrInvalidUUID), httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	if filter.FamilyID.UUID == uuid.Nil {
		c.JSON(http.StatusBadRequest, httpError{Error: errFamilyIDRequired.Error()})
		return
	}

	if _, ok := requireMember(c, filter.FamilyID.UUID, identity); !ok {
		return
	}

	expenses, ok := listFamilyResources[models.Expense](c, filter.FamilyID.UUID, func(q *gorm.DB) *gorm.DB {
		if filter.Category != "" && filter.Category != "All" {
			return q.Where("category = ?", filter.Category)
		}
		return q
	})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, expenses)
}

type ExpenseEditable struct {
	FamilyID    uuid.UUID       `json:"familyId" example:"d1b8b0c9-4b50-4a26-b2c5-2d875d1c4c23"`
	Amount      decimal.Decimal `json:"amount" example:"42.5" minimum:"0.01"`
	Description string          `json:"description" example:"Groceries" default:""`
	Category    string          `json:"category" example:"Food & Dining" default:""`
	AddedBy     string          `json:"addedBy" example:"Alice" default:""`
}

// model returns the database resource for the API representation of the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		FamilyID:    editable.FamilyID,
		Amount:      editable.Amount,
		Description: editable.Description,
		Category:    editable.Category,
		AddedBy:     editable.AddedBy,
	}
}

type ExpenseCreateResponse struct {
	Success bool           `json:"success" example:"true"`
	Expense models.Expense `json:"expense"`
}

// @Summary		Create expense
// @Description	Creates a new expense for the family
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseCreateResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	identity, ok := authenticate(c)
	if !ok {
		return
	}

	var editable ExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if editable.FamilyID == uuid.Nil {
		c.JSON(http.StatusBadRequest, httpError{Error: errFamilyIDRequired.Error()})
		return
	}

	if err := amountPositive(editable.Amount); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if _, ok := requireMember(c, editable.FamilyID, identity); !ok {
		return
	}

	expense := editable.model()
	if !createResource(c, &expense) {
		return
	}

	c.JSON(http.StatusCreated, ExpenseCreateResponse{Success: true, Expense: expense})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	successResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	query		string	true	"ID of the expense"
// @Router			/v1/expenses [delete]
func DeleteExpense(c *gin.Context) {
	deleteFamilyResource[models.Expense](c)
}
