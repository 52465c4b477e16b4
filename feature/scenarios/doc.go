// Package scenarios runs scenario files stored in object storage.
//
//   - GET /scenarios?prefix=: names of the stored scenarios.
//   - POST /scenarios/run {"name", "fallback"}: runs one scenario and returns its result.
package scenarios
