// Package shape adapts collection views to consistency.Oracle and provides an
// in-memory view used by the CLI, the HTTP API and tests.
//
// Two widget families are supported: tables, which count rows, and grids, which
// count items and may not report a section count from their data source. The
// adapters only translate accessors; validation lives in package consistency.
package shape
