package models

// Table names of the CRM schema the reports read from.
const (
	TableContact         = "civicrm_contact"
	TableMembership      = "civicrm_membership"
	TablePriceFieldValue = "civicrm_price_field_value"
	TableLineItem        = "civicrm_line_item"
)
