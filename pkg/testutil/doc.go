// Package testutil provides fixtures for testing templateer components.
//
// Key components:
//   - Project: a temporary project root with template, model and output
//     directories and a Config bound to it
//   - MemoryFS: an in-memory filesystem.FS with error injection, for tests
//     that must observe or block writes
//   - Assertions on files in either
//
// All test data should be defined inline, not in external files.
package testutil
