package v1

import (
	"net/http"

	"github.com/family-ledger/backend/internal/httputil"
	"github.com/family-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterSavingRoutes registers the routes for savings with
// the RouterGroup that is passed.
func RegisterSavingRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSavings)
	r.GET("", GetSavings)
	r.POST("", CreateSaving)
	r.DELETE("", DeleteSaving)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Router			/v1/savings [options]
func OptionsSavings(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		List savings
// @Description	Returns all savings of the family, newest first
// @Tags			Savings
// @Produce		json
// @Success		200			{array}		models.Saving
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Param			familyId	query		string	true	"ID of the family"
// @Router			/v1/savings [get]
func GetSavings(c *gin.Context) {
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

	savings, ok := listFamilyResources[models.Saving](c, familyID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, savings)
}

type SavingEditable struct {
	FamilyID    uuid.UUID           `json:"familyId" example:"d1b8b0c9-4b50-4a26-b2c5-2d875d1c4c23"`
	Amount      decimal.Decimal     `json:"amount" example:"100" minimum:"0.01"`
	Goal        decimal.NullDecimal `json:"goal" example:"5000"` // Optional target amount
	Description string              `json:"description" example:"Vacation fund" default:""`
	AddedBy     string              `json:"addedBy" example:"Alice" default:""`
}

// model returns the database resource for the API representation of the editable fields
func (editable SavingEditable) model() models.Saving {
	return models.Saving{
		FamilyID:    editable.FamilyID,
		Amount:      editable.Amount,
		Goal:        editable.Goal,
		Description: editable.Description,
		AddedBy:     editable.AddedBy,
	}
}

type SavingCreateResponse struct {
	Success bool          `json:"success" example:"true"`
	Saving  models.Saving `json:"saving"`
}

// @Summary		Create saving
// @Description	Creates a new saving entry for the family
// @Tags			Savings
// @Accept			json
// @Produce		json
// @Success		201		{object}	SavingCreateResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Param			saving	body		SavingEditable	true	"Saving"
// @Router			/v1/savings [post]
func CreateSaving(c *gin.Context) {
	identity, ok := authenticate(c)
	if !ok {
		return
	}

	var editable SavingEditable
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

	if editable.Goal.Valid {
		if err := amountPositive(editable.Goal.Decimal); err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}
	}

	if _, ok := requireMember(c, editable.FamilyID, identity); !ok {
		return
	}

	saving := editable.model()
	if !createResource(c, &saving) {
		return
	}

	c.JSON(http.StatusCreated, SavingCreateResponse{Success: true, Saving: saving})
}

// @Summary		Delete saving
// @Description	Deletes a saving entry
// @Tags			Savings
// @Produce		json
// @Success		200	{object}	successResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	query		string	true	"ID of the saving"
// @Router			/v1/savings [delete]
func DeleteSaving(c *gin.Context) {
	deleteFamilyResource[models.Saving](c)
}
