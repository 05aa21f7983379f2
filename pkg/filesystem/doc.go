// Package filesystem provides the filesystem abstraction used by templateer.
//
// Stub writing, template discovery and artifact output all go through the
// FS interface so that the generation passes can be exercised against
// temporary directories in tests.
package filesystem
