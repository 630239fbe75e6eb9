package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Family is the tenancy boundary.
//
// All financial data belongs to exactly one family, all other resources
// reference it directly or transitively. Deleting a family cascades to
// everything it owns.
type Family struct {
	DefaultModel
	Name string `json:"familyName"`
}

func (f *Family) BeforeSave(_ *gorm.DB) error {
	f.Name = strings.TrimSpace(f.Name)
	return nil
}

// FamilyMember grants an email address access to one family's data.
//
// The email is the caller's identity key. It is stored lowercased and is
// unique per family, not globally.
type FamilyMember struct {
	ID       uuid.UUID `json:"id"`
	FamilyID uuid.UUID `json:"familyId" gorm:"uniqueIndex:family_member_email"`
	Family   Family    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Email    string    `json:"email" gorm:"uniqueIndex:family_member_email"`
	Name     string    `json:"name"`
	IsAdmin  bool      `json:"isAdmin"`
	JoinedAt time.Time `json:"joinedAt" gorm:"autoCreateTime"`
}

func (m *FamilyMember) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

func (m *FamilyMember) BeforeSave(_ *gorm.DB) error {
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	m.Name = strings.TrimSpace(m.Name)

	return nil
}

func (m *FamilyMember) AfterFind(_ *gorm.DB) error {
	m.JoinedAt = m.JoinedAt.In(time.UTC)
	return nil
}

// VerifyMember returns the membership for the email in the family.
//
// The email comparison is case-insensitive: normalization happens here,
// exactly once, and members are stored lowercased. When no membership
// exists, ErrNoMembership is returned, regardless of whether the family
// itself exists.
func VerifyMember(familyID uuid.UUID, email string) (FamilyMember, error) {
	var member FamilyMember

	err := DB.First(&member, "family_id = ? AND email = ?", familyID, strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return FamilyMember{}, ErrNoMembership
		}
		return FamilyMember{}, err
	}

	return member, nil
}

// VerifyAdmin returns the membership for the email in the family and
// additionally requires it to be an admin membership.
func VerifyAdmin(familyID uuid.UUID, email string) (FamilyMember, error) {
	member, err := VerifyMember(familyID, email)
	if err != nil {
		return FamilyMember{}, err
	}

	if !member.IsAdmin {
		return FamilyMember{}, ErrNotAdmin
	}

	return member, nil
}

// VerifyMemberBySection resolves the family owning the section, then checks
// the membership. A missing section is a "not found", not a denial, so that
// clients can distinguish a stale section id from missing access.
func VerifyMemberBySection(sectionID uuid.UUID, email string) (FamilyMember, error) {
	var section CustomSection

	err := DB.First(&section, "id = ?", sectionID).Error
	if err != nil {
		return FamilyMember{}, err
	}

	return VerifyMember(section.FamilyID, email)
}

// DefaultCategories are seeded for every new family.
var DefaultCategories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Bills & Utilities",
	"Entertainment",
	"Healthcare",
	"Education",
	"Other",
}

// CreateFamily creates the family, adds the caller as its first member with
// admin rights and seeds the default categories.
//
// Seeding is best effort: if a category cannot be created, the family and
// its admin membership are retained and the error is only logged.
func CreateFamily(name, memberName, email string) (Family, error) {
	family := Family{Name: name}
	if err := DB.Create(&family).Error; err != nil {
		return Family{}, err
	}

	member := FamilyMember{
		FamilyID: family.ID,
		Email:    email,
		Name:     memberName,
		IsAdmin:  true,
	}
	if err := DB.Create(&member).Error; err != nil {
		return Family{}, err
	}

	for _, category := range DefaultCategories {
		err := DB.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&Category{FamilyID: family.ID, Name: category}).Error
		if err != nil {
			log.Error().Err(err).Str("category", category).Msg("could not seed default category")
		}
	}

	return family, nil
}

// FamilyForMember returns the family the email belongs to, together with all
// its members, ordered by join time.
//
// A wrapped ErrResourceNotFound signals "no family yet" and routes the
// client into the family creation flow.
func FamilyForMember(email string) (Family, []FamilyMember, error) {
	var member FamilyMember

	err := DB.First(&member, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return Family{}, nil, err
	}

	var family Family
	err = DB.First(&family, "id = ?", member.FamilyID).Error
	if err != nil {
		return Family{}, nil, err
	}

	var members []FamilyMember
	err = DB.Where("family_id = ?", family.ID).Order("joined_at ASC").Find(&members).Error
	if err != nil {
		return Family{}, nil, err
	}

	return family, members, nil
}
