package pivot

import (
	"fmt"

	"github.com/encircleuk/civicrm.extendedreport/pkg/models"
)

// FixedColumn is a column that every row of a report has, independent
// of the discovered options.
type FixedColumn struct {
	Column
	Expr string // SQL expression selected for the column
}

// Definition describes a pivot report for one entity type.
type Definition struct {
	Name        string
	Label       string
	Description string
	Component   string

	EntityTable string        // Table of the entity, also the line item discriminator
	Fixed       []FixedColumn // The first fixed column must be the entity identity
}

// entityID is the SQL expression of the entity identity.
func (d Definition) entityID() string {
	return fmt.Sprintf("%s.id", d.EntityTable)
}

// FixedColumns returns the descriptors of all fixed columns.
func (d Definition) FixedColumns() []Column {
	columns := make([]Column, 0, len(d.Fixed))
	for _, f := range d.Fixed {
		columns = append(columns, f.Column)
	}

	return columns
}

// MembershipPricePivot shows the summed amount per price field option for each membership.
func MembershipPricePivot() Definition {
	m := models.TableMembership
	c := models.TableContact

	return Definition{
		Name:        "membership-price-pivot",
		Label:       "Extended Report - Membership Price Pivot",
		Description: "Pivot report showing membership line items (price field options) as columns with amounts",
		Component:   "CiviMember",
		EntityTable: m,
		Fixed: []FixedColumn{
			{Column{ID: "membership_id", Label: "Membership ID", Type: TypeInteger, Visible: true, Export: true}, m + ".id"},
			{Column{ID: "contact_display_name", Label: "Contact", Type: TypeString, Visible: true, Export: true}, c + ".display_name"},
			{Column{ID: "contact_id", Label: "Contact ID", Type: TypeInteger, Export: true}, m + ".contact_id"},
			{Column{ID: "membership_type_id", Label: "Membership Type", Type: TypeInteger, Export: true}, m + ".membership_type_id"},
			{Column{ID: "membership_status_id", Label: "Membership Status", Type: TypeInteger, Export: true}, m + ".status_id"},
			{Column{ID: "membership_start_date", Label: "Start Date", Type: TypeDate, Export: true}, m + ".start_date"},
			{Column{ID: "membership_end_date", Label: "End Date", Type: TypeDate, Export: true}, m + ".end_date"},
		},
	}
}

// Definitions returns all available pivot reports.
func Definitions() []Definition {
	return []Definition{
		MembershipPricePivot(),
	}
}

// Lookup returns the report definition with the given name.
func Lookup(name string) (Definition, error) {
	for _, d := range Definitions() {
		if d.Name == name {
			return d, nil
		}
	}

	return Definition{}, fmt.Errorf("%w: '%s'", ErrUnknownReport, name)
}
