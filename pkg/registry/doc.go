// Package registry provides a generic, type-safe registry keyed by stable
// names. Template bindings and in-process template texts are registered
// into it from init() functions of generated model packages.
package registry
