// Package generator drives the two templateer passes.
//
// Autogen discovers template modules, extracts their variables and writes
// a stub for every template that lacks one. Generate runs Autogen, then
// renders every binding registered for a stub in the model directory and
// writes its artifact.
//
// Both passes isolate failures per item: a template that fails to load or
// parse, or a binding that fails to render, is recorded in the result and
// the pass moves on. Only failing to list a directory aborts a pass.
//
// Stubs are Go source. A stub created by Autogen is registered only once
// the program importing the model package is rebuilt, so Generate reports
// it as having no binding until then.
package generator
