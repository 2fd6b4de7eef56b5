package pivot

import (
	"context"
	"time"

	"github.com/encircleuk/civicrm.extendedreport/pkg/metrics"
	"github.com/rs/zerolog/log"
)

// Options configure a report build.
type Options struct {
	Filters        []Filter // Predicates on the entities, combined with AND
	ScopeDiscovery bool     // Only synthesize columns for options used by entities matching the filters
	Raw            bool     // Do not format the amounts
	HiddenColumns  []string // Glob patterns of column IDs that are not displayed
}

// Report is the result of a build.
type Report struct {
	Name      string
	Columns   []Column // Fixed columns followed by the synthesized columns
	Records   []Record
	SQL       string // The aggregate query
	Formatted bool   // Are the amounts formatted?
}

// Engine builds pivot reports.
type Engine struct {
	accessor   Accessor
	definition Definition
	formatter  Formatter
}

// NewEngine returns an Engine that builds the report defined by def.
func NewEngine(accessor Accessor, def Definition, formatter Formatter) *Engine {
	return &Engine{
		accessor:   accessor,
		definition: def,
		formatter:  formatter,
	}
}

// Build discovers the price field options, queries the summed amounts and
// formats them.
//
// If a query fails, a *BuildError is returned and no records.
func (e *Engine) Build(ctx context.Context, opts Options) (report *Report, err error) {
	start := time.Now()
	defer func() {
		var columnCount, recordCount int
		if report != nil {
			columnCount = len(dynamic(report.Columns))
			recordCount = len(report.Records)
		}
		metrics.RecordBuild(e.definition.Name, err, time.Since(start), columnCount, recordCount)
	}()

	var discoveryFilters []Filter
	if opts.ScopeDiscovery {
		discoveryFilters = opts.Filters
	}

	categories, err := DiscoverCategories(ctx, e.accessor, e.definition, discoveryFilters)
	if err != nil {
		return nil, &BuildError{Stage: StageDiscovery, Err: err}
	}

	columns := append(e.definition.FixedColumns(), SynthesizeColumns(categories)...)
	columns = HideColumns(columns, opts.HiddenColumns)

	q, err := BuildAggregateQuery(e.definition, columns, opts.Filters)
	if err != nil {
		return nil, &BuildError{Stage: StageAggregate, Err: err}
	}

	records, err := Materialize(ctx, e.accessor, q, columns)
	if err != nil {
		return nil, &BuildError{Stage: StageAggregate, Err: err}
	}

	if !opts.Raw {
		e.formatter.Format(records, columns)
	}

	log.Debug().
		Str("report", e.definition.Name).
		Int("columns", len(categories)).
		Int("records", len(records)).
		Dur("duration", time.Since(start)).
		Msg("Build")

	return &Report{
		Name:      e.definition.Name,
		Columns:   columns,
		Records:   records,
		SQL:       q.SQL,
		Formatted: !opts.Raw,
	}, nil
}
