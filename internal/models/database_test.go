package models_test

import (
	"time"

	"github.com/family-ledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	var expense models.Expense
	err := models.DB.First(&expense, "id = ?", uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no expense matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestResourceNotFoundSingularizesY() {
	var family models.Family
	err := models.DB.First(&family, "id = ?", uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no family matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestClosedDBIsGeneralError() {
	suite.CloseDB()

	var family models.Family
	err := models.DB.First(&family, "id = ?", uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestTimestampsAreUTC() {
	created := suite.createTestFamily(models.Family{})

	var family models.Family
	require.Nil(suite.T(), models.DB.First(&family, "id = ?", created.ID).Error)

	assert.Equal(suite.T(), time.UTC, family.CreatedAt.Location())
}

func (suite *TestSuiteStandard) TestIDGeneratedOnCreate() {
	family := models.Family{Name: "Doe"}
	require.Nil(suite.T(), models.DB.Create(&family).Error)
	assert.NotEqual(suite.T(), uuid.Nil, family.ID)
}
