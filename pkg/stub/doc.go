// Package stub writes the typed binding stub for a template.
//
// A stub is a Go file in the model directory declaring a struct with one
// field per template variable, plus a constructor registered with the
// binding package from init. Stubs are starting points for user code: once
// a stub exists it is never read, rewritten or replaced.
package stub
