// Package diagnostic provides structured errors, warnings and notes
// produced while loading and generating nullable types.
//
// Key capabilities:
//   - Rejection of unsupported declaration shapes (non-structs, embedded fields)
//   - Accessor names that would clash with a field
//   - Missing requested types
//   - Drift reports for generated files that are stale or absent
package diagnostic
