package models

import (
	"time"

	"gorm.io/gorm"
)

// Membership is a membership of a contact.
type Membership struct {
	ID               uint       `json:"id" example:"17"`
	ContactID        *uint      `json:"contactId" example:"42"` // Memberships imported without a contact have no contact ID
	Contact          *Contact   `json:"-"`
	MembershipTypeID uint       `json:"membershipTypeId" example:"1"`
	StatusID         uint       `json:"statusId" example:"2"`
	StartDate        *time.Time `json:"startDate" gorm:"type:date" example:"2024-01-01T00:00:00Z"`
	EndDate          *time.Time `json:"endDate" gorm:"type:date" example:"2024-12-31T00:00:00Z"`
}

func (Membership) TableName() string {
	return TableMembership
}

// BeforeSave enforces the dates to be in UTC.
func (m *Membership) BeforeSave(_ *gorm.DB) (err error) {
	if m.StartDate != nil {
		t := m.StartDate.In(time.UTC)
		m.StartDate = &t
	}

	if m.EndDate != nil {
		t := m.EndDate.In(time.UTC)
		m.EndDate = &t
	}

	return nil
}
