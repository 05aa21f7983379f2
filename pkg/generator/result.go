package generator

import (
	"github.com/bullish-design/templateer/pkg/stub"
)

// Failure records an item that failed during a pass
type Failure struct {
	// Item is the template file or stub stem that failed
	Item string
	Err  error
}

// AutogenResult summarizes a discovery pass
type AutogenResult struct {
	// Stubs holds one result per template, created or kept
	Stubs []stub.Result
	// Skipped lists modules that declare no template
	Skipped  []string
	Failures []Failure
}

// Created returns the number of stubs written by this pass
func (r *AutogenResult) Created() int {
	n := 0
	for _, s := range r.Stubs {
		if s.Created {
			n++
		}
	}
	return n
}

func (r *AutogenResult) fail(item string, err error) {
	r.Failures = append(r.Failures, Failure{Item: item, Err: err})
}

// Artifact is one rendered binding
type Artifact struct {
	Stub    string
	Binding string
	// Path is where the artifact is (or would be) written
	Path    string
	Written bool
	Text    string
}

// GenerateResult summarizes a generation pass
type GenerateResult struct {
	Autogen   *AutogenResult
	Artifacts []Artifact
	Failures  []Failure
}

func (r *GenerateResult) fail(item string, err error) {
	r.Failures = append(r.Failures, Failure{Item: item, Err: err})
}
