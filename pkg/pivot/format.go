package pivot

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultPattern places the currency symbol after the amount.
const DefaultPattern = "%a %s"

// Formatter formats amounts for display.
//
// The pattern supports the verbs %a for the amount, %s for the currency
// symbol and %C for the ISO 4217 code of the currency.
type Formatter struct {
	Pattern  string
	Currency currency.Unit
	Language language.Tag
	Symbol   string // Overrides the symbol of the currency for the language if set
}

// NewFormatter returns a Formatter for the ISO 4217 currency code and the BCP 47 locale.
func NewFormatter(code, locale, pattern string) (Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid currency '%s': %w", code, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid locale '%s': %w", locale, err)
	}

	if pattern == "" {
		pattern = DefaultPattern
	}

	return Formatter{
		Pattern:  pattern,
		Currency: unit,
		Language: tag,
	}, nil
}

// maxFloatDigits is the number of significant decimal digits a float64
// holds without loss.
const maxFloatDigits = 15

// Amount returns the amount, rounded to the scale of the currency and
// formatted according to the pattern.
func (f Formatter) Amount(d decimal.Decimal) string {
	p := message.NewPrinter(f.Language)
	scale, _ := currency.Standard.Rounding(f.Currency)
	rounded := d.Round(int32(scale))

	var amount string
	if rounded.Abs().LessThan(decimal.New(1, int32(maxFloatDigits-scale))) {
		amount = p.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(scale)))
	} else {
		amount = exact(p, rounded, scale)
	}

	symbol := f.Symbol
	if symbol == "" {
		symbol = p.Sprint(currency.Symbol(f.Currency))
	}

	return strings.NewReplacer("%a", amount, "%s", symbol, "%C", f.Currency.String()).Replace(f.Pattern)
}

// exact formats amounts too large for a float64 from their decimal digits,
// with the separators of the printer's language.
//
// Languages that do not use ASCII digits or group by thousands fall back to
// the printer, losing precision beyond maxFloatDigits.
func exact(p *message.Printer, d decimal.Decimal, scale int) string {
	group, point, ok := separators(p)
	if !ok {
		return p.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(scale)))
	}

	digits := d.Abs().StringFixed(int32(scale))
	integer, fraction, _ := strings.Cut(digits, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteString("-")
	}

	for i, r := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteString(group)
		}
		b.WriteRune(r)
	}

	if fraction != "" {
		b.WriteString(point)
		b.WriteString(fraction)
	}

	return b.String()
}

// separators returns the grouping and decimal separators of the printer's
// language, read from a formatted sample.
func separators(p *message.Printer) (group, point string, ok bool) {
	sample := p.Sprint(number.Decimal(1234567.5, number.Scale(1)))

	rest, found := strings.CutPrefix(sample, "1")
	if !found {
		return "", "", false
	}

	group, rest, found = strings.Cut(rest, "234")
	if !found || group == "" || !strings.HasPrefix(rest, group+"567") {
		return "", "", false
	}

	point, found = strings.CutSuffix(strings.TrimPrefix(rest, group+"567"), "5")
	if !found || point == "" {
		return "", "", false
	}

	return group, point, true
}

// Format sets the formatted value of every synthesized column for all
// records. Fixed columns are not modified.
//
// Values that could not be read as amounts are displayed as returned
// by the database.
func (f Formatter) Format(records []Record, columns []Column) {
	if len(records) == 0 {
		return
	}

	d := dynamic(columns)
	for i := range records {
		if records[i].Display == nil {
			records[i].Display = make(map[string]string, len(d))
		}

		for _, c := range d {
			if raw, ok := records[i].invalid[c.ID]; ok {
				records[i].Display[c.ID] = raw
				continue
			}

			records[i].Display[c.ID] = f.Amount(records[i].Amounts[c.ID])
		}
	}
}
