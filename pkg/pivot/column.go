package pivot

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/ryanuber/go-glob"
)

// ColumnPrefix is the prefix of the identifiers of synthesized columns.
const ColumnPrefix = "price_opt_"

var synthesizedColumnID = regexp.MustCompile("^" + ColumnPrefix + "[0-9]+$")

// Type is the data type of a column.
type Type string

const (
	TypeInteger Type = "integer"
	TypeString  Type = "string"
	TypeDate    Type = "date"
	TypeMoney   Type = "money"
)

// Category is a price field option used by at least one line item.
type Category struct {
	ID    uint64
	Label string
	Name  string // Short name, may be empty
}

// DisplayLabel returns the label, or "Option {id}" if the label is empty.
func (c Category) DisplayLabel() string {
	if c.Label != "" {
		return c.Label
	}

	return fmt.Sprintf("Option %d", c.ID)
}

// Column describes a column of a report.
type Column struct {
	ID         string `json:"id" example:"price_opt_7"`         // Identifier of the column, used as key in the rows
	Label      string `json:"label" example:"Gold"`             // Title of the column
	Type       Type   `json:"type" example:"money"`             // Data type of the column values
	Visible    bool   `json:"visible" example:"true"`           // Is the column displayed?
	Export     bool   `json:"export" example:"true"`            // Is the column included in exports?
	Dynamic    bool   `json:"dynamic" example:"true"`           // Is the column synthesized from a price field option?
	CategoryID uint64 `json:"categoryId,omitempty" example:"7"` // The price field option of a synthesized column
}

// SynthesizeColumns returns one money column per category, in the order
// of the categories.
func SynthesizeColumns(categories []Category) []Column {
	columns := make([]Column, 0, len(categories))
	for _, c := range categories {
		columns = append(columns, Column{
			ID:         ColumnPrefix + strconv.FormatUint(c.ID, 10),
			Label:      c.DisplayLabel(),
			Type:       TypeMoney,
			Visible:    true,
			Export:     true,
			Dynamic:    true,
			CategoryID: c.ID,
		})
	}

	return columns
}

// validate verifies that the identifier of a synthesized column is derived from its option ID.
func (c Column) validate() error {
	if c.CategoryID == 0 || !synthesizedColumnID.MatchString(c.ID) || c.ID != ColumnPrefix+strconv.FormatUint(c.CategoryID, 10) {
		return fmt.Errorf("%w: '%s' for price field option %d", ErrInvalidColumn, c.ID, c.CategoryID)
	}

	return nil
}

// HideColumns marks all columns whose identifier matches one of the
// glob patterns as not visible. They are still exported.
func HideColumns(columns []Column, patterns []string) []Column {
	for i := range columns {
		for _, p := range patterns {
			if glob.Glob(p, columns[i].ID) {
				columns[i].Visible = false
				break
			}
		}
	}

	return columns
}

// dynamic returns the synthesized columns.
func dynamic(columns []Column) []Column {
	var d []Column
	for _, c := range columns {
		if c.Dynamic {
			d = append(d, c)
		}
	}

	return d
}
