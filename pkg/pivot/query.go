package pivot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/encircleuk/civicrm.extendedreport/pkg/models"
)

var fixedColumnID = regexp.MustCompile("^[a-z_][a-z0-9_]*$")

// lineItems is the alias of the line items joined with their price field option.
const lineItems = "line_items"

// Filter is a predicate on the report rows. Values must be passed as
// arguments for the placeholders in the clause, never in the clause itself.
type Filter struct {
	Clause string
	Args   []any
}

// Where returns a Filter for the clause and its arguments.
func Where(clause string, args ...any) Filter {
	return Filter{Clause: clause, Args: args}
}

// Query is an SQL statement with its arguments.
type Query struct {
	SQL  string
	Args []any
}

// conjunction combines all filters with AND.
func conjunction(filters []Filter) (string, []any, error) {
	clauses := make([]string, 0, len(filters))
	var args []any

	for _, f := range filters {
		if strings.TrimSpace(f.Clause) == "" {
			return "", nil, ErrInvalidFilter
		}

		clauses = append(clauses, "("+f.Clause+")")
		args = append(args, f.Args...)
	}

	return strings.Join(clauses, " AND "), args, nil
}

// BuildAggregateQuery returns the query for all report rows. It selects the fixed
// columns and the sum of the line totals for every synthesized column, grouped
// by the entity.
//
// Entities without contact or without line items are part of the result. Line
// items without an existing price field option are ignored.
func BuildAggregateQuery(def Definition, columns []Column, filters []Filter) (Query, error) {
	if len(def.Fixed) == 0 {
		return Query{}, fmt.Errorf("%w: report %s has no fixed columns", ErrInvalidColumn, def.Name)
	}

	pfv := models.TablePriceFieldValue
	li := models.TableLineItem
	entity := def.EntityTable

	selects := make([]string, 0, len(def.Fixed)+len(columns))
	groups := make([]string, 0, len(def.Fixed))

	for _, f := range def.Fixed {
		if !fixedColumnID.MatchString(f.ID) {
			return Query{}, fmt.Errorf("%w: '%s'", ErrInvalidColumn, f.ID)
		}

		selects = append(selects, fmt.Sprintf("%s AS %s", f.Expr, f.ID))
		groups = append(groups, f.Expr)
	}

	for _, c := range dynamic(columns) {
		err := c.validate()
		if err != nil {
			return Query{}, err
		}

		selects = append(selects, fmt.Sprintf(
			"COALESCE(SUM(CASE WHEN %[1]s.price_field_value_id = %[2]s THEN %[1]s.line_total ELSE 0 END), 0) AS %[3]s",
			lineItems, strconv.FormatUint(c.CategoryID, 10), c.ID,
		))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s\n", strings.Join(selects, ",\n  "))
	fmt.Fprintf(&b, "FROM %s\n", entity)
	fmt.Fprintf(&b, "LEFT JOIN %[1]s ON %[1]s.id = %[2]s.contact_id\n", models.TableContact, entity)
	fmt.Fprintf(&b, "LEFT JOIN (\n  SELECT %[1]s.entity_id, %[1]s.line_total, %[2]s.id AS price_field_value_id\n", li, pfv)
	fmt.Fprintf(&b, "  FROM %[1]s INNER JOIN %[2]s ON %[2]s.id = %[1]s.price_field_value_id\n", li, pfv)
	fmt.Fprintf(&b, "  WHERE %s.entity_table = ?\n", li)
	fmt.Fprintf(&b, ") AS %[1]s ON %[1]s.entity_id = %[2]s\n", lineItems, def.entityID())
	args := []any{entity}

	where, whereArgs, err := conjunction(filters)
	if err != nil {
		return Query{}, err
	}
	if where != "" {
		fmt.Fprintf(&b, "WHERE %s\n", where)
		args = append(args, whereArgs...)
	}

	// All other fixed columns depend on the entity, so every group is one entity
	fmt.Fprintf(&b, "GROUP BY %s\n", strings.Join(groups, ", "))
	fmt.Fprintf(&b, "ORDER BY %s ASC", def.entityID())

	return Query{SQL: b.String(), Args: args}, nil
}
