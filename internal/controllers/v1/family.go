package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/family-ledger/backend/internal/httputil"
	"github.com/family-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterFamilyRoutes registers the routes for families with
// the RouterGroup that is passed.
func RegisterFamilyRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsFamily)
	r.GET("", GetFamily)
	r.POST("", CreateFamily)

	r.OPTIONS("/members", OptionsFamilyMembers)
	r.POST("/members", AddFamilyMember)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Families
// @Success		204
// @Router			/v1/families [options]
func OptionsFamily(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Families
// @Success		204
// @Router			/v1/families/members [options]
func OptionsFamilyMembers(c *gin.Context) {
	httputil.OptionsPost(c)
}

// FamilyResponse is the API representation of the caller's family.
type FamilyResponse struct {
	ID         uuid.UUID             `json:"id" example:"d1b8b0c9-4b50-4a26-b2c5-2d875d1c4c23"`
	FamilyName string                `json:"familyName" example:"Doe"`
	Members    []models.FamilyMember `json:"members"`
	CreatedAt  time.Time             `json:"createdAt" example:"2026-02-10T10:11:12.691Z"`
}

// @Summary		Get family
// @Description	Returns the family the authenticated caller belongs to, with all members
// @Tags			Families
// @Produce		json
// @Success		200	{object}	FamilyResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError	"Family not found"
// @Failure		500	{object}	httpError
// @Router			/v1/families [get]
func GetFamily(c *gin.Context) {
	identity, ok := authenticate(c)
	if !ok {
		return
	}

	family, members, err := models.FamilyForMember(identity.Email)
	if err != nil {
		// "Family not found" tells the client to offer the creation flow
		if errors.Is(err, models.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, httpError{Error: errFamilyNotFound.Error()})
			return
		}

		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, FamilyResponse{
		ID:         family.ID,
		FamilyName: family.Name,
		Members:    members,
		CreatedAt:  family.CreatedAt,
	})
}

type FamilyEditable struct {
	FamilyName string `json:"familyName" example:"Doe"`
	MemberName string `json:"memberName" example:"Alice"`
}

type FamilyCreateResponse struct {
	Success  bool      `json:"success" example:"true"`
	FamilyID uuid.UUID `json:"familyId" example:"d1b8b0c9-4b50-4a26-b2c5-2d875d1c4c23"`
	Message  string    `json:"message" example:"Family created successfully"`
}

// @Summary		Create family
// @Description	Creates a new family with the caller as its first, administrating member and seeds the default categories
// @Tags			Families
// @Accept			json
// @Produce		json
// @Success		201		{object}	FamilyCreateResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			family	body		FamilyEditable	true	"Family"
// @Router			/v1/families [post]
func CreateFamily(c *gin.Context) {
	identity, ok := authenticate(c)
	if !ok {
		return
	}

	var editable FamilyEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if editable.FamilyName == "" || editable.MemberName == "" {
		c.JSON(http.StatusBadRequest, httpError{Error: errFamilyFieldsRequired.Error()})
		return
	}

	family, err := models.CreateFamily(editable.FamilyName, editable.MemberName, identity.Email)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, FamilyCreateResponse{
		Success:  true,
		FamilyID: family.ID,
		Message:  "Family created successfully",
	})
}

type MemberEditable struct {
	FamilyID uuid.UUID `json:"familyId" example:"d1b8b0c9-4b50-4a26-b2c5-2d875d1c4c23"`
	Email    string    `json:"email" example:"bob@example.com"`
	Name     string    `json:"name" example:"Bob"`
}

// model returns the database resource for the API representation of the
// editable fields. Invited members never start out with admin rights, the
// request cannot grant them.
func (editable MemberEditable) model() models.FamilyMember {
	return models.FamilyMember{
		FamilyID: editable.FamilyID,
		Email:    editable.Email,
		Name:     editable.Name,
	}
}

type MemberCreateResponse struct {
	Success bool                `json:"success" example:"true"`
	Member  models.FamilyMember `json:"member"`
}

// @Summary		Add family member
// @Description	Adds a member to the family. Only family admins can add members.
// @Tags			Families
// @Accept			json
// @Produce		json
// @Success		201		{object}	MemberCreateResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Param			member	body		MemberEditable	true	"Member"
// @Router			/v1/families/members [post]
func AddFamilyMember(c *gin.Context) {
	identity, ok := authenticate(c)
	if !ok {
		return
	}

	var editable MemberEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if editable.FamilyID == uuid.Nil || editable.Email == "" || editable.Name == "" {
		c.JSON(http.StatusBadRequest, httpError{Error: errMemberFieldsRequired.Error()})
		return
	}

	if _, ok := requireAdmin(c, editable.FamilyID, identity); !ok {
		return
	}

	member := editable.model()
	if !createResource(c, &member) {
		return
	}

	c.JSON(http.StatusCreated, MemberCreateResponse{Success: true, Member: member})
}
