package v1

import (
	"github.com/family-ledger/backend/internal/auth"
	"github.com/family-ledger/backend/internal/httputil"
	"github.com/family-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Every handler runs the same gate, in the same order: authenticate the
// session credential, shape-validate the request, then authorize the
// identity against the owning family. Only after all three succeed may a
// handler touch family data. The gate runs per request, results are never
// carried over from earlier requests of the same session.
//
// Each helper writes the error response itself and reports success through
// its second return value, so handlers read as a straight line of
// "x, ok := ...; if !ok { return }" steps.

// authenticate resolves the caller's verified identity. Failure is always
// an HTTP 401, before anything else happens.
func authenticate(c *gin.Context) (auth.Identity, bool) {
	identity, err := auth.Authenticate(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return auth.Identity{}, false
	}

	return identity, true
}

// requireMember checks that the identity is a member of the family.
func requireMember(c *gin.Context, familyID uuid.UUID, identity auth.Identity) (models.FamilyMember, bool) {
	member, err := models.VerifyMember(familyID, identity.Email)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return models.FamilyMember{}, false
	}

	return member, true
}

// requireAdmin checks that the identity is an admin member of the family.
func requireAdmin(c *gin.Context, familyID uuid.UUID, identity auth.Identity) (models.FamilyMember, bool) {
	member, err := models.VerifyAdmin(familyID, identity.Email)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return models.FamilyMember{}, false
	}

	return member, true
}

// requireMemberBySection resolves the owning family through the section
// first. A missing section is an HTTP 404, not a 403.
func requireMemberBySection(c *gin.Context, sectionID uuid.UUID, identity auth.Identity) (models.FamilyMember, bool) {
	member, err := models.VerifyMemberBySection(sectionID, identity.Email)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return models.FamilyMember{}, false
	}

	return member, true
}

// familyIDQuery binds and validates the familyId query parameter.
func familyIDQuery(c *gin.Context) (uuid.UUID, error) {
	var query QueryFamily

	err := c.ShouldBindQuery(&query)
	if err != nil {
		return uuid.Nil, httputil.ErrInvalidUUID
	}

	if query.FamilyID.UUID == uuid.Nil {
		return uuid.Nil, errFamilyIDRequired
	}

	return query.FamilyID.UUID, nil
}

// sectionIDQuery binds and validates the sectionId query parameter.
func sectionIDQuery(c *gin.Context) (uuid.UUID, error) {
	var query QuerySection

	err := c.ShouldBindQuery(&query)
	if err != nil {
		return uuid.Nil, httputil.ErrInvalidUUID
	}

	if query.SectionID.UUID == uuid.Nil {
		return uuid.Nil, errSectionIDRequired
	}

	return query.SectionID.UUID, nil
}

// idQuery binds and validates the id query parameter.
func idQuery(c *gin.Context) (uuid.UUID, error) {
	var query QueryID

	err := c.ShouldBindQuery(&query)
	if err != nil {
		return uuid.Nil, httputil.ErrInvalidUUID
	}

	if query.ID.UUID == uuid.Nil {
		return uuid.Nil, errIDRequired
	}

	return query.ID.UUID, nil
}
