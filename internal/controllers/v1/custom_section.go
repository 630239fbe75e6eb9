package v1

import (
	"net/http"

	"github.com/family-ledger/backend/internal/httputil"
	"github.com/family-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterCustomSectionRoutes registers the routes for custom sections with
// the RouterGroup that is passed.
func RegisterCustomSectionRoutes(r *gin.RouterGroup) {
	// Sections
	{
		r.OPTIONS("", OptionsCustomSections)
		r.GET("", GetCustomSections)
		r.POST("", CreateCustomSection)
		r.DELETE("", DeleteCustomSection)
	}

	// Transactions nested in sections
	{
		r.OPTIONS("/transactions", OptionsSectionTransactions)
		r.GET("/transactions", GetSectionTransactions)
		r.POST("/transactions", CreateSectionTransaction)
		r.DELETE("/transactions", DeleteSectionTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CustomSections
// @Success		204
// @Router			/v1/custom-sections [options]
func OptionsCustomSections(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// Section is the API representation of a custom section: the section
// itself plus its transactions and their aggregate.
type Section struct {
	models.CustomSection
	Transactions     []models.CustomSectionTransaction `json:"transactions"`
	TransactionCount int                               `json:"transactionCount" example:"2"`
	Total            decimal.Decimal                   `json:"total" example:"25"`
}

func newSection(model models.CustomSection) (Section, error) {
	transactions, err := models.SectionTransactions(model.ID)
	if err != nil {
		return Section{}, err
	}

	return Section{
		CustomSection:    model,
		Transactions:     transactions,
		TransactionCount: len(transactions),
		Total:            models.TransactionsTotal(transactions),
	}, nil
}

// @Summary		List custom sections
// @Description	Returns all custom sections of the family with their transactions, newest first
// @Tags			CustomSections
// @Produce		json
// @Success		200			{array}		Section
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Param			familyId	query		string	true	"ID of the family"
// @Router			/v1/custom-sections [get]
func GetCustomSections(c *gin.Context) {
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

	sections, ok := listFamilyResources[models.CustomSection](c, familyID)
	if !ok {
		return
	}

	data := make([]Section, 0, len(sections))
	for _, section := range sections {
		apiResource, err := newSection(section)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, data)
}

type SectionEditable struct {
	FamilyID uuid.UUID          `json:"familyId" example:"d1b8b0c9-4b50-4a26-b2c5-2d875d1c4c23"`
	Name     string             `json:"name" example:"Holiday fund"`
	Type     models.SectionType `json:"type" example:"saving" enums:"expense,saving"`
}

// model returns the database resource for the API representation of the editable fields
func (editable SectionEditable) model() models.CustomSection {
	return models.CustomSection{
		FamilyID: editable.FamilyID,
		Name:     editable.Name,
		Type:     editable.Type,
	}
}

type SectionCreateResponse struct {
	Success bool    `json:"success" example:"true"`
	Section Section `json:"section"`
}

// @Summary		Create custom section
// @Description	Creates a new custom section for the family
// @Tags			CustomSections
// @Accept			json
// @Produce		json
// @Success		201		{object}	SectionCreateResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Param			section	body		SectionEditable	true	"Custom section"
// @Router			/v1/custom-sections [post]
func CreateCustomSection(c *gin.Context) {
	identity, ok := authenticate(c)
	if !ok {
		return
	}

	var editable SectionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if editable.FamilyID == uuid.Nil {
		c.JSON(http.StatusBadRequest, httpError{Error: errFamilyIDRequired.Error()})
		return
	}

	if editable.Name == "" {
		c.JSON(http.StatusBadRequest, httpError{Error: errSectionNameRequired.Error()})
		return
	}

	if !editable.Type.Valid() {
		c.JSON(http.StatusBadRequest, httpError{Error: errSectionTypeInvalid.Error()})
		return
	}

	if _, ok := requireMember(c, editable.FamilyID, identity); !ok {
		return
	}

	section := editable.model()
	if !createResource(c, &section) {
		return
	}

	c.JSON(http.StatusCreated, SectionCreateResponse{
		Success: true,
		Section: Section{
			CustomSection:    section,
			Transactions:     make([]models.CustomSectionTransaction, 0),
			TransactionCount: 0,
			Total:            decimal.Zero,
		},
	})
}

// @Summary		Delete custom section
// @Description	Deletes a custom section and all its transactions
// @Tags			CustomSections
// @Produce		json
// @Success		200	{object}	successResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	query		string	true	"ID of the section"
// @Router			/v1/custom-sections [delete]
func DeleteCustomSection(c *gin.Context) {
	deleteFamilyResource[models.CustomSection](c)
}
