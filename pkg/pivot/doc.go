// Package pivot builds reports that pivot price field options into columns.
//
// A build discovers the options used by line items of an entity type, turns
// every option into a money column and sums the line totals per entity and
// option with one aggregate query. Columns are computed for every build and
// never stored.
//
// The discovery query and the aggregate query run one after the other
// without a transaction. An option that gets its first line item between
// the two queries is missing from that build. Reports are read-only, so
// running the build again picks it up.
package pivot
