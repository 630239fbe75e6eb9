package v1

import (
	"net/http"

	"github.com/family-ledger/backend/internal/httputil"
	"github.com/family-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterCurrentRoutes registers the routes for current account entries
// with the RouterGroup that is passed.
func RegisterCurrentRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCurrents)
	r.GET("", GetCurrents)
	r.POST("", CreateCurrent)
	r.DELETE("", DeleteCurrent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Currents
// @Success		204
// @Router			/v1/currents [options]
func OptionsCurrents(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		List current account entries
// @Description	Returns all current account entries of the family, newest first
// @Tags			Currents
// @Produce		json
// @Success		200			{array}		models.Current
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Param			familyId	query		string	true	"ID of the family"
// @Router			/v1/currents [get]
func GetCurrents(c *gin.Context) {
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

	currents, ok := listFamilyResources[models.Current](c, familyID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, currents)
}

type CurrentEditable struct {
	FamilyID    uuid.UUID          `json:"familyId" example:"d1b8b0c9-4b50-4a26-b2c5-2d875d1c4c23"`
	Amount      decimal.Decimal    `json:"amount" example:"250" minimum:"0.01"`
	Type        models.CurrentType `json:"type" example:"credit" enums:"credit,debit"`
	Description string             `json:"description" example:"Salary" default:""`
	AddedBy     string             `json:"addedBy" example:"Alice" default:""`
}

// model returns the database resource for the API representation of the editable fields
func (editable CurrentEditable) model() models.Current {
	return models.Current{
		FamilyID:    editable.FamilyID,
		Amount:      editable.Amount,
		Type:        editable.Type,
		Description: editable.Description,
		AddedBy:     editable.AddedBy,
	}
}

type CurrentCreateResponse struct {
	Success bool           `json:"success" example:"true"`
	Current models.Current `json:"current"`
}

// @Summary		Create current account entry
// @Description	Creates a new current account entry for the family
// @Tags			Currents
// @Accept			json
// @Produce		json
// @Success		201		{object}	CurrentCreateResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Param			current	body		CurrentEditable	true	"Current account entry"
// @Router			/v1/currents [post]
func CreateCurrent(c *gin.Context) {
	identity, ok := authenticate(c)
	if !ok {
		return
	}

	var editable CurrentEditable
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

	if !editable.Type.Valid() {
		c.JSON(http.StatusBadRequest, httpError{Error: errCurrentTypeInvalid.Error()})
		return
	}

	if _, ok := requireMember(c, editable.FamilyID, identity); !ok {
		return
	}

	current := editable.model()
	if !createResource(c, &current) {
		return
	}

	c.JSON(http.StatusCreated, CurrentCreateResponse{Success: true, Current: current})
}

// @Summary		Delete current account entry
// @Description	Deletes a current account entry
// @Tags			Currents
// @Produce		json
// @Success		200	{object}	successResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	query		string	true	"ID of the entry"
// @Router			/v1/currents [delete]
func DeleteCurrent(c *gin.Context) {
	deleteFamilyResource[models.Current](c)
}
