// Package ui formats command output.
//
// Output is styled only when writing to a color-capable terminal; piped
// output, NO_COLOR, and ASCII-only terminals get plain text. Styles have
// semantic names (Success, Error, Path, ...) and are loaded from an
// embedded YAML file into lipgloss styles.
package ui
