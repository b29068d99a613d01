// Package diagnostic provides structured errors, warnings, and notes
// collected while loading, resolving, and persisting header mappings.
//
// Key capabilities:
//   - Mapping source load failure reports
//   - Mapping write-back failure reports
//   - Severity-tagged messages with a stable code per condition
//   - Aggregation across pipeline phases via Merge
package diagnostic
