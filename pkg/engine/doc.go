// Package engine wraps text/template with the settings templateer relies
// on: strict handling of missing variables, configurable delimiters and a
// shared function map available to every template.
package engine
