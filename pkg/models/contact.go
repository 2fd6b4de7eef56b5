package models

// Contact is a person or organisation in the CRM.
type Contact struct {
	ID          uint   `json:"id" example:"42"`
	DisplayName string `json:"displayName" example:"Jane Doe"`
}

func (Contact) TableName() string {
	return TableContact
}
