package v1

import (
	"net/http"
	"time"

	"github.com/family-ledger/backend/internal/httputil"
	"github.com/family-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterDebtRoutes registers the routes for debts with
// the RouterGroup that is passed.
func RegisterDebtRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDebts)
	r.GET("", GetDebts)
	r.POST("", CreateDebt)
	r.DELETE("", DeleteDebt)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Router			/v1/debts [options]
func OptionsDebts(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// Debt is the API representation of a debt. Overdue is computed at
// display time, the stored status is never mutated by it.
type Debt struct {
	models.Debt
	Overdue bool `json:"overdue" example:"false"`
}

func newDebt(model models.Debt) Debt {
	return Debt{
		Debt:    model,
		Overdue: model.IsOverdue(),
	}
}

// @Summary		List debts
// @Description	Returns all debts of the family, newest first
// @Tags			Debts
// @Produce		json
// @Success		200			{array}		Debt
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Param			familyId	query		string	true	"ID of the family"
// @Router			/v1/debts [get]
func GetDebts(c *gin.Context) {
	identity, ok := authenticate(c)
	if !ok {
		return
	}

	familyID, err := familyIDQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if _, ok := requireMember(c, familyID, identity); !ok {
		return
	}

	debts, ok := listFamilyResources[models.Debt](c, familyID)
	if !ok {
		return
	}

	data := make([]Debt, 0, len(debts))
	for _, debt := range debts {
		data = append(data, newDebt(debt))
	}

	c.JSON(http.StatusOK, data)
}

type DebtEditable struct {
	FamilyID    uuid.UUID         `json:"familyId" example:"d1b8b0c9-4b50-4a26-b2c5-2d875d1c4c23"`
	Amount      decimal.Decimal   `json:"amount" example:"1200" minimum:"0.01"`
	Description string            `json:"description" example:"Car repair" default:""`
	Creditor    string            `json:"creditor" example:"Garage Miller" default:""`
	DueDate     *time.Time        `json:"dueDate" example:"2026-10-01T00:00:00Z"`
	Status      models.DebtStatus `json:"status" example:"pending" enums:"pending,paid,overdue" default:"pending"`
	AddedBy     string            `json:"addedBy" example:"Alice" default:""`
}

// model returns the database resource for the API representation of the editable fields
func (editable DebtEditable) model() models.Debt {
	return models.Debt{
		FamilyID:    editable.FamilyID,
		Amount:      editable.Amount,
		Description: editable.Description,
		Creditor:    editable.Creditor,
		DueDate:     editable.DueDate,
		Status:      editable.Status,
		AddedBy:     editable.AddedBy,
	}
}

type DebtCreateResponse struct {
	Success bool `json:"success" example:"true"`
	Debt    Debt `json:"debt"`
}

// @Summary		Create debt
// @Description	Creates a new debt for the family. The status defaults to "pending".
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		201		{object}	DebtCreateResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Param			debt	body		DebtEditable	true	"Debt"
// @Router			/v1/debts [post]
func CreateDebt(c *gin.Context) {
	identity, ok := authenticate(c)
	if !ok {
		return
	}

	var editable DebtEditable
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

	if editable.Status != "" && !editable.Status.Valid() {
		c.JSON(http.StatusBadRequest, httpError{Error: errDebtStatusInvalid.Error()})
		return
	}

	if _, ok := requireMember(c, editable.FamilyID, identity); !ok {
		return
	}

	debt := editable.model()
	if !createResource(c, &debt) {
		return
	}

	c.JSON(http.StatusCreated, DebtCreateResponse{Success: true, Debt: newDebt(debt)})
}

// @Summary		Delete debt
// @Description	Deletes a debt
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	successResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	query		string	true	"ID of the debt"
// @Router			/v1/debts [delete]
func DeleteDebt(c *gin.Context) {
	deleteFamilyResource[models.Debt](c)
}
