package models

// PriceFieldValue is an option of a price field, e.g. a membership tier or an add-on.
type PriceFieldValue struct {
	ID    uint   `json:"id" example:"7"`
	Label string `json:"label" example:"Gold"`
	Name  string `json:"name" example:"gold"` // Short name of the option
}

func (PriceFieldValue) TableName() string {
	return TablePriceFieldValue
}
