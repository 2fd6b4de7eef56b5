package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LineItem links an amount for a price field option to an entity, e.g. a membership.
type LineItem struct {
	ID                uint            `json:"id" example:"1004"`
	EntityTable       string          `json:"entityTable" gorm:"index:line_item_entity" example:"civicrm_membership"` // Table of the entity the line item belongs to
	EntityID          uint            `json:"entityId" gorm:"index:line_item_entity" example:"17"`
	PriceFieldValueID uint            `json:"priceFieldValueId" example:"7"`
	PriceFieldValue   PriceFieldValue `json:"-"`
	LineTotal         decimal.Decimal `json:"lineTotal" gorm:"type:DECIMAL(20,2)" example:"100"`
}

func (LineItem) TableName() string {
	return TableLineItem
}

// BeforeSave trims whitespace from the entity table.
func (l *LineItem) BeforeSave(_ *gorm.DB) (err error) {
	l.EntityTable = strings.TrimSpace(l.EntityTable)
	return nil
}
