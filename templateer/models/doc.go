// Package models holds the bindings for the templates in .templateer.
//
// Each *_model.go file started life as a stub written by templateer
// autogen and was then given values in its constructor. Importing the
// package registers every binding with the default registry.
package models
