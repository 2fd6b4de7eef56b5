package pivot_test

import (
	"strings"
	"testing"

	"github.com/encircleuk/civicrm.extendedreport/pkg/pivot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAggregateQuery(t *testing.T) {
	def := pivot.MembershipPricePivot()
	columns := append(def.FixedColumns(), pivot.SynthesizeColumns([]pivot.Category{{ID: 3, Label: "Gold"}, {ID: 7}})...)

	q, err := pivot.BuildAggregateQuery(def, columns, nil)
	require.Nil(t, err)

	assert.Contains(t, q.SQL, "COALESCE(SUM(CASE WHEN line_items.price_field_value_id = 3 THEN line_items.line_total ELSE 0 END), 0) AS price_opt_3")
	assert.Contains(t, q.SQL, "COALESCE(SUM(CASE WHEN line_items.price_field_value_id = 7 THEN line_items.line_total ELSE 0 END), 0) AS price_opt_7")
	assert.Contains(t, q.SQL, "civicrm_contact.display_name AS contact_display_name")
	assert.Contains(t, q.SQL, "LEFT JOIN civicrm_contact ON civicrm_contact.id = civicrm_membership.contact_id")
	assert.Contains(t, q.SQL, "INNER JOIN civicrm_price_field_value ON civicrm_price_field_value.id = civicrm_line_item.price_field_value_id")
	assert.Contains(t, q.SQL, "GROUP BY civicrm_membership.id,")
	assert.True(t, strings.HasSuffix(q.SQL, "ORDER BY civicrm_membership.id ASC"))
	assert.NotContains(t, q.SQL, "WHERE civicrm_membership")
	assert.Equal(t, []any{"civicrm_membership"}, q.Args)
}

func TestBuildAggregateQueryNoColumns(t *testing.T) {
	def := pivot.MembershipPricePivot()

	q, err := pivot.BuildAggregateQuery(def, def.FixedColumns(), nil)
	require.Nil(t, err)
	assert.NotContains(t, q.SQL, "COALESCE")
}

func TestBuildAggregateQueryFilters(t *testing.T) {
	def := pivot.MembershipPricePivot()
	filters := []pivot.Filter{
		pivot.Where("civicrm_membership.status_id IN ?", []uint{1, 2}),
		pivot.Where("civicrm_membership.membership_type_id = ?", 4),
	}

	q, err := pivot.BuildAggregateQuery(def, def.FixedColumns(), filters)
	require.Nil(t, err)

	assert.Contains(t, q.SQL, "WHERE (civicrm_membership.status_id IN ?) AND (civicrm_membership.membership_type_id = ?)\nGROUP BY")
	assert.Equal(t, []any{"civicrm_membership", []uint{1, 2}, 4}, q.Args)
}

func TestBuildAggregateQueryInvalid(t *testing.T) {
	def := pivot.MembershipPricePivot()

	tests := []struct {
		name    string
		def     pivot.Definition
		columns []pivot.Column
		filters []pivot.Filter
		err     error
	}{
		{
			"Injected column ID",
			def,
			[]pivot.Column{{ID: "price_opt_1; DROP TABLE civicrm_contact", Dynamic: true, CategoryID: 1}},
			nil,
			pivot.ErrInvalidColumn,
		},
		{
			"ID does not match option",
			def,
			[]pivot.Column{{ID: "price_opt_2", Dynamic: true, CategoryID: 1}},
			nil,
			pivot.ErrInvalidColumn,
		},
		{
			"Option ID zero",
			def,
			[]pivot.Column{{ID: "price_opt_0", Dynamic: true}},
			nil,
			pivot.ErrInvalidColumn,
		},
		{
			"Invalid fixed column ID",
			pivot.Definition{Name: "broken", EntityTable: "civicrm_membership", Fixed: []pivot.FixedColumn{{Column: pivot.Column{ID: "id, 1"}, Expr: "civicrm_membership.id"}}},
			nil,
			nil,
			pivot.ErrInvalidColumn,
		},
		{
			"No fixed columns",
			pivot.Definition{Name: "empty", EntityTable: "civicrm_membership"},
			nil,
			nil,
			pivot.ErrInvalidColumn,
		},
		{
			"Empty filter",
			def,
			nil,
			[]pivot.Filter{pivot.Where("  ")},
			pivot.ErrInvalidFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pivot.BuildAggregateQuery(tt.def, tt.columns, tt.filters)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDiscoveryQuery(t *testing.T) {
	def := pivot.MembershipPricePivot()

	q, err := pivot.DiscoveryQuery(def, nil)
	require.Nil(t, err)
	assert.Contains(t, q.SQL, "SELECT DISTINCT civicrm_price_field_value.id AS id")
	assert.Contains(t, q.SQL, "WHERE civicrm_line_item.entity_table = ?")
	assert.NotContains(t, q.SQL, "JOIN civicrm_membership")
	assert.Equal(t, []any{"civicrm_membership"}, q.Args)

	q, err = pivot.DiscoveryQuery(def, []pivot.Filter{pivot.Where("civicrm_membership.status_id = ?", 1)})
	require.Nil(t, err)
	assert.Contains(t, q.SQL, "INNER JOIN civicrm_membership ON civicrm_membership.id = civicrm_line_item.entity_id")
	assert.Contains(t, q.SQL, "AND (civicrm_membership.status_id = ?)")
	assert.Equal(t, []any{"civicrm_membership", 1}, q.Args)
}
