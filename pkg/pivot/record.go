package pivot

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places of line totals.
// Sums are rounded to it, SQLite sums DECIMAL columns as REAL.
const AmountScale = 2

// Record is one row of a report, one per entity.
type Record struct {
	Fixed   map[string]any             // Values of the fixed columns, as returned by the database
	Amounts map[string]decimal.Decimal // Summed amount for every synthesized column
	Display map[string]string          // Formatted amounts, set by Formatter.Format

	invalid map[string]string // Values that could not be read as amounts
}

// MarshalJSON flattens the record into one object keyed by column ID.
// Synthesized columns contain the formatted amount if the record has been
// formatted, the amount as a JSON number otherwise.
func (r Record) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Fixed)+len(r.Amounts))
	for k, v := range r.Fixed {
		m[k] = v
	}

	for k, v := range r.Amounts {
		if s, ok := r.Display[k]; ok {
			m[k] = s
			continue
		}
		m[k] = json.Number(v.String())
	}

	return json.Marshal(m)
}

// Materialize executes the aggregate query and returns one record per result
// row, in the order of the result.
func Materialize(ctx context.Context, accessor Accessor, q Query, columns []Column) ([]Record, error) {
	rows, err := accessor.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		r := Record{
			Fixed:   make(map[string]any),
			Amounts: make(map[string]decimal.Decimal),
		}

		for _, c := range columns {
			if !c.Dynamic {
				r.Fixed[c.ID] = row[c.ID]
				continue
			}

			amount, err := toDecimal(row[c.ID])
			if err != nil {
				log.Warn().Str("column", c.ID).Err(err).Msg("Materialize")

				if r.invalid == nil {
					r.invalid = make(map[string]string)
				}
				r.invalid[c.ID] = toString(row[c.ID])
				amount = decimal.Zero
			}
			r.Amounts[c.ID] = amount.Round(AmountScale)
		}

		records = append(records, r)
	}

	return records, nil
}

// toDecimal converts a value returned by the database into a decimal.
// NULL is converted to zero.
func toDecimal(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case nil:
		return decimal.Zero, nil
	case decimal.Decimal:
		return t, nil
	case int64:
		return decimal.NewFromInt(t), nil
	case int32:
		return decimal.NewFromInt32(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case uint64:
		return decimal.NewFromUint64(t), nil
	case float64:
		return decimal.NewFromFloat(t), nil
	case float32:
		return decimal.NewFromFloat32(t), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(t))
	case []byte:
		return decimal.NewFromString(strings.TrimSpace(string(t)))
	}

	return decimal.Zero, fmt.Errorf("cannot read %v of type %T as amount", v, v)
}
