package models_test

import (
	"time"

	"github.com/encircleuk/civicrm.extendedreport/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMembershipSaveTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, tz)

	membership := models.Membership{StartDate: &start}
	err := membership.BeforeSave(models.DB)
	if err != nil {
		assert.Fail(suite.T(), "membership.BeforeSave failed")
	}

	assert.Equal(suite.T(), time.UTC, membership.StartDate.Location(), "Timezone for start date is not UTC")
	assert.Nil(suite.T(), membership.EndDate)
}

func (suite *TestSuiteStandard) TestMembershipWithoutContact() {
	m := suite.createTestMembership(models.Membership{MembershipTypeID: 1, StatusID: 2})

	var found models.Membership
	require.Nil(suite.T(), models.DB.First(&found, m.ID).Error)
	assert.Nil(suite.T(), found.ContactID)
}

func (suite *TestSuiteStandard) TestMembershipContactForeignKey() {
	contactID := uint(999)
	err := models.DB.Create(&models.Membership{ContactID: &contactID}).Error
	assert.NotNil(suite.T(), err, "Membership with non-existing contact must not be saved")
}

func (suite *TestSuiteStandard) TestLineItemTrimsEntityTable() {
	contact := suite.createTestContact(models.Contact{DisplayName: "Jane Doe"})
	m := suite.createTestMembership(models.Membership{ContactID: &contact.ID})
	option := suite.createTestPriceFieldValue(models.PriceFieldValue{Label: "Gold"})

	item := suite.createTestLineItem(models.LineItem{
		EntityTable:       " civicrm_membership ",
		EntityID:          m.ID,
		PriceFieldValueID: option.ID,
		LineTotal:         decimal.NewFromFloat(12.5),
	})

	var found models.LineItem
	require.Nil(suite.T(), models.DB.First(&found, item.ID).Error)
	assert.Equal(suite.T(), models.TableMembership, found.EntityTable)
	assert.True(suite.T(), decimal.NewFromFloat(12.5).Equal(found.LineTotal), "Line total is %s", found.LineTotal)
}
