package v1

import (
	"net/http"

	"github.com/family-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// familyResource are the entity kinds that are owned directly by a family.
// Section transactions are not in this set, they resolve their family
// through the owning section.
type familyResource interface {
	models.Expense | models.Saving | models.Current | models.Debt | models.CustomSection

	OwnerFamily() uuid.UUID
}

// listFamilyResources returns all rows owned by the family, newest first.
// There is no pagination, data volumes are household scale.
func listFamilyResources[R familyResource](c *gin.Context, familyID uuid.UUID, scopes ...func(*gorm.DB) *gorm.DB) ([]R, bool) {
	resources := make([]R, 0)

	err := models.DB.
		Where("family_id = ?", familyID).
		Scopes(scopes...).
		Order("created_at DESC").
		Find(&resources).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return nil, false
	}

	return resources, true
}

// createResource persists the resource and writes the error response on
// failure.
func createResource(c *gin.Context, resource any) bool {
	err := models.DB.Create(resource).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return false
	}

	return true
}

// deleteFamilyResource implements DELETE ?id= for every family-owned
// entity kind: the owning family is re-derived from the stored row and the
// gate re-runs against it before the row is deleted. The id alone is never
// sufficient authorization context. Deleting a parent cascades to its
// children at the storage layer.
func deleteFamilyResource[R familyResource](c *gin.Context) {
	identity, ok := authenticate(c)
	if !ok {
		return
	}

	id, err := idQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var resource R
	err = models.DB.First(&resource, "id = ?", id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if _, ok := requireMember(c, resource.OwnerFamily(), identity); !ok {
		return
	}

	err = models.DB.Delete(&resource).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, successResponse{Success: true})
}

// amountPositive validates the amount of an amount-bearing entity. This
// runs server-side for every create, clients cannot be trusted to do it.
func amountPositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return models.ErrAmountNotPositive
	}

	return nil
}
