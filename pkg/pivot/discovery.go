package pivot

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/encircleuk/civicrm.extendedreport/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DiscoveryQuery returns the query for all price field options that have at least
// one line item for the entity table.
//
// If filters are passed, only line items of entities matching all filters
// are considered.
func DiscoveryQuery(def Definition, filters []Filter) (Query, error) {
	pfv := models.TablePriceFieldValue
	li := models.TableLineItem

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT DISTINCT %[1]s.id AS id, %[1]s.label AS label, %[1]s.name AS name\n", pfv)
	fmt.Fprintf(&b, "FROM %s\n", pfv)
	fmt.Fprintf(&b, "INNER JOIN %s ON %s.price_field_value_id = %s.id\n", li, li, pfv)

	if len(filters) > 0 {
		fmt.Fprintf(&b, "INNER JOIN %s ON %s = %s.entity_id\n", def.EntityTable, def.entityID(), li)
		fmt.Fprintf(&b, "LEFT JOIN %[1]s ON %[1]s.id = %[2]s.contact_id\n", models.TableContact, def.EntityTable)
	}

	fmt.Fprintf(&b, "WHERE %s.entity_table = ?", li)
	args := []any{def.EntityTable}

	where, whereArgs, err := conjunction(filters)
	if err != nil {
		return Query{}, err
	}
	if where != "" {
		fmt.Fprintf(&b, " AND %s", where)
		args = append(args, whereArgs...)
	}

	fmt.Fprintf(&b, "\nORDER BY %s.id", pfv)

	return Query{SQL: b.String(), Args: args}, nil
}

// DiscoverCategories returns the price field options used by line items of the
// entity type, ordered by their display label.
func DiscoverCategories(ctx context.Context, accessor Accessor, def Definition, filters []Filter) ([]Category, error) {
	q, err := DiscoveryQuery(def, filters)
	if err != nil {
		return nil, err
	}

	rows, err := accessor.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, 0, len(rows))
	for _, row := range rows {
		id, err := toID(row["id"])
		if err != nil {
			return nil, err
		}

		categories = append(categories, Category{
			ID:    id,
			Label: toString(row["label"]),
			Name:  toString(row["name"]),
		})
	}

	// Root collation without case, like the CRM's unicode_ci columns
	collator := collate.New(language.Und, collate.IgnoreCase)
	slices.SortStableFunc(categories, func(a, b Category) int {
		if c := collator.CompareString(a.DisplayLabel(), b.DisplayLabel()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return categories, nil
}

// toID converts a value from the database to a positive integer ID.
func toID(v any) (uint64, error) {
	var id int64

	switch t := v.(type) {
	case int64:
		id = t
	case int32:
		id = int64(t)
	case int:
		id = int64(t)
	case uint64:
		if t > math.MaxInt64 {
			return 0, fmt.Errorf("%w, got %d", ErrInvalidCategory, t)
		}
		id = int64(t)
	case uint32:
		id = int64(t)
	case uint:
		id = int64(t)
	case float64:
		if t != math.Trunc(t) {
			return 0, fmt.Errorf("%w, got %v", ErrInvalidCategory, t)
		}
		id = int64(t)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w, got '%s'", ErrInvalidCategory, t)
		}
		id = parsed
	case decimal.Decimal:
		if !t.IsInteger() {
			return 0, fmt.Errorf("%w, got %s", ErrInvalidCategory, t)
		}
		id = t.IntPart()
	default:
		return 0, fmt.Errorf("%w, got %v of type %T", ErrInvalidCategory, v, v)
	}

	if id <= 0 {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidCategory, id)
	}

	return uint64(id), nil
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}
