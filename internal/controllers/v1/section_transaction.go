package v1

import (
	"net/http"

	"github.com/family-ledger/backend/internal/httputil"
	"github.com/family-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CustomSections
// @Success		204
// @Router			/v1/custom-sections/transactions [options]
func OptionsSectionTransactions(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		List section transactions
// @Description	Returns all transactions of the custom section, newest first
// @Tags			CustomSections
// @Produce		json
// @Success		200			{array}		models.CustomSectionTransaction
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		404			{object}	httpError
// @Param			sectionId	query		string	true	"ID of the section"
// @Router			/v1/custom-sections/transactions [get]
func GetSectionTransactions(c *gin.Context) {
	identity, ok := authenticate(c)
	if !ok {
		return
	}

	sectionID, err := sectionIDQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if _, ok := requireMemberBySection(c, sectionID, identity); !ok {
		return
	}

	transactions, err := models.SectionTransactions(sectionID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

type SectionTransactionEditable struct {
	SectionID   uuid.UUID       `json:"sectionId" example:"a3e89d27-4f27-47b6-9493-3c4e1b5d9c5e"`
	Amount      decimal.Decimal `json:"amount" example:"10" minimum:"0.01"`
	Description string          `json:"description" example:"First deposit" default:""`
	AddedBy     string          `json:"addedBy" example:"Alice" default:""`
}

// model returns the database resource for the API representation of the editable fields
func (editable SectionTransactionEditable) model() models.CustomSectionTransaction {
	return models.CustomSectionTransaction{
		SectionID:   editable.SectionID,
		Amount:      editable.Amount,
		Description: editable.Description,
		AddedBy:     editable.AddedBy,
	}
}

type SectionTransactionCreateResponse struct {
	Success     bool                            `json:"success" example:"true"`
	Transaction models.CustomSectionTransaction `json:"transaction"`
}

// @Summary		Create section transaction
// @Description	Creates a new transaction in the custom section
// @Tags			CustomSections
// @Accept			json
// @Produce		json
// @Success		201			{object}	SectionTransactionCreateResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		404			{object}	httpError
// @Param			transaction	body		SectionTransactionEditable	true	"Transaction"
// @Router			/v1/custom-sections/transactions [post]
func CreateSectionTransaction(c *gin.Context) {
	identity, ok := authenticate(c)
	if !ok {
		return
	}

	var editable SectionTransactionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if editable.SectionID == uuid.Nil {
		c.JSON(http.StatusBadRequest, httpError{Error: errSectionIDRequired.Error()})
		return
	}

	if err := amountPositive(editable.Amount); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if _, ok := requireMemberBySection(c, editable.SectionID, identity); !ok {
		return
	}

	transaction := editable.model()
	if !createResource(c, &transaction) {
		return
	}

	c.JSON(http.StatusCreated, SectionTransactionCreateResponse{Success: true, Transaction: transaction})
}

// @Summary		Delete section transaction
// @Description	Deletes a transaction from a custom section
// @Tags			CustomSections
// @Produce		json
// @Success		200	{object}	successResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	query		string	true	"ID of the transaction"
// @Router			/v1/custom-sections/transactions [delete]
func DeleteSectionTransaction(c *gin.Context) {
	identity, ok := authenticate(c)
	if !ok {
		return
	}

	id, err := idQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var transaction models.CustomSectionTransaction
	err = models.DB.First(&transaction, "id = ?", id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// The family is resolved through the owning section
	if _, ok := requireMemberBySection(c, transaction.SectionID, identity); !ok {
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, successResponse{Success: true})
}
