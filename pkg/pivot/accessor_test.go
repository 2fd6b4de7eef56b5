package pivot_test

import (
	"context"

	"github.com/encircleuk/civicrm.extendedreport/pkg/pivot"
)

// fakeAccessor returns the results in the order of the queries.
type fakeAccessor struct {
	results [][]pivot.Row
	errs    []error
	queries []pivot.Query
}

func (f *fakeAccessor) Query(_ context.Context, query string, args ...any) ([]pivot.Row, error) {
	i := len(f.queries)
	f.queries = append(f.queries, pivot.Query{SQL: query, Args: args})

	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}

	if i < len(f.results) {
		return f.results[i], nil
	}

	return []pivot.Row{}, nil
}
