package v1

import (
	"time"

	"github.com/encircleuk/civicrm.extendedreport/pkg/models"
	"github.com/encircleuk/civicrm.extendedreport/pkg/pivot"
	"golang.org/x/exp/slices"
)

type ReportListResponse struct {
	Data  []ReportDefinition `json:"data"`  // List of available reports
	Error *string            `json:"error"` // The error, if any occurred
}

type ReportDefinition struct {
	Name        string      `json:"name" example:"membership-price-pivot"`                                                    // Name of the report, used in its URL
	Label       string      `json:"label" example:"Extended Report - Membership Price Pivot"`                                 // Title of the report
	Description string      `json:"description" example:"Pivot report showing membership line items (price field options)"` // Description of the report
	Component   string      `json:"component" example:"CiviMember"`                                                           // The CRM component the report belongs to
	Links       ReportLinks `json:"links"`
}

type ReportLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/reports/membership-price-pivot"` // The report itself
}

type ReportResponse struct {
	Data  *Report `json:"data"`  // Data for the report
	Error *string `json:"error"` // The error, if any occurred
}

type Report struct {
	Name    string         `json:"name" example:"membership-price-pivot"`                     // Name of the report
	Label   string         `json:"label" example:"Extended Report - Membership Price Pivot"` // Title of the report
	Columns []pivot.Column `json:"columns"`                                                   // Fixed columns, followed by one column per price field option
	Rows    []pivot.Record `json:"rows" swaggertype:"array,object"`                           // One object per membership, keyed by column ID
	SQL     string         `json:"sql,omitempty"`                                             // The aggregate query, only set if requested
}

type ReportQueryFilter struct {
	Status         []uint    `form:"status" example:"1"`                                                     // Only include memberships with one of these status IDs
	MembershipType []uint    `form:"membershipType" example:"2"`                                             // Only include memberships with one of these type IDs
	Contact        []uint    `form:"contact" example:"42"`                                                   // Only include memberships of these contacts
	StartFrom      time.Time `form:"startFrom" time_format:"2006-01-02" time_utc:"1" example:"2024-01-01"` // Only include memberships starting on or after this date
	StartTo        time.Time `form:"startTo" time_format:"2006-01-02" time_utc:"1" example:"2024-12-31"`   // Only include memberships starting on or before this date
	ScopeColumns   bool      `form:"scopeColumns"`                                                           // Only create columns for price field options used by the included memberships
	Raw            bool      `form:"raw"`                                                                    // Return amounts as numbers instead of formatted strings
	SQL            bool      `form:"sql"`                                                                    // Include the aggregate query in the response
}

// options returns the build options for the filter.
func (f ReportQueryFilter) options(hidden []string) (pivot.Options, error) {
	if !f.StartFrom.IsZero() && !f.StartTo.IsZero() && f.StartFrom.After(f.StartTo) {
		return pivot.Options{}, errStartRange
	}

	m := models.TableMembership
	var filters []pivot.Filter

	if len(f.Status) > 0 {
		filters = append(filters, pivot.Where(m+".status_id IN ?", ids(f.Status)))
	}

	if len(f.MembershipType) > 0 {
		filters = append(filters, pivot.Where(m+".membership_type_id IN ?", ids(f.MembershipType)))
	}

	if len(f.Contact) > 0 {
		filters = append(filters, pivot.Where(m+".contact_id IN ?", ids(f.Contact)))
	}

	if !f.StartFrom.IsZero() {
		filters = append(filters, pivot.Where(m+".start_date >= ?", f.StartFrom))
	}

	if !f.StartTo.IsZero() {
		filters = append(filters, pivot.Where(m+".start_date <= ?", f.StartTo))
	}

	return pivot.Options{
		Filters:        filters,
		ScopeDiscovery: f.ScopeColumns,
		Raw:            f.Raw,
		HiddenColumns:  hidden,
	}, nil
}

// ids returns the sorted IDs without duplicates.
func ids(values []uint) []uint {
	s := slices.Clone(values)
	slices.Sort(s)
	return slices.Compact(s)
}
