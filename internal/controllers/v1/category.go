package v1

import (
	"net/http"

	"github.com/family-ledger/backend/internal/httputil"
	"github.com/family-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategories)
	r.GET("", GetCategories)
	r.POST("", CreateCategory)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		List categories
// @Description	Returns the category names of the family, sorted alphabetically
// @Tags			Categories
// @Produce		json
// @Success		200			{array}		string
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Param			familyId	query		string	true	"ID of the family"
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
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

	names, err := models.CategoryNames(familyID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, names)
}

type CategoryEditable struct {
	FamilyID uuid.UUID `json:"familyId" example:"d1b8b0c9-4b50-4a26-b2c5-2d875d1c4c23"`
	Name     string    `json:"name" example:"Subscriptions"`
}

// @Summary		Create category
// @Description	Creates a new category for the family. Creating a name that already exists is a no-op.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	successResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	identity, ok := authenticate(c)
	if !ok {
		return
	}

	var editable CategoryEditable
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
		c.JSON(http.StatusBadRequest, httpError{Error: errCategoryNameRequired.Error()})
		return
	}

	if _, ok := requireMember(c, editable.FamilyID, identity); !ok {
		return
	}

	err = models.CreateCategory(editable.FamilyID, editable.Name)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, successResponse{Success: true})
}
