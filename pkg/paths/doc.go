// Package paths provides project root discovery and path resolution for
// templateer.
//
// The project root is determined in this order:
//
//   - TEMPLATEER_PROJECT_ROOT, when set
//   - the enclosing git repository (git rev-parse --show-toplevel)
//   - the current working directory (flagged through UsedFallback)
//
// Configured directories (template source, model, output) are relative to
// the project root unless they are absolute or start with ~.
package paths
