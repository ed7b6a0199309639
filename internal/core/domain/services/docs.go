// Package services provides domain services that work across the aggregates
// of the sample pipeline. It implements logic that does not naturally belong
// to a single aggregate root.
//
// The package includes:
//   - ProgressCalculator: derives an entry's effective progress from the
//     stored workflow status and the per-trip delivery state
package services
