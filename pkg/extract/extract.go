package extract

import (
	"sort"
	"text/template"
	"text/template/parse"

	"github.com/bullish-design/templateer/pkg/engine"
)

// Set is an unordered set of variable names
type Set map[string]struct{}

// Add inserts name into the set
func (s Set) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name is in the set
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in lexicographic order
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extractor finds the free variables of template text
type Extractor struct {
	engine *engine.Engine
}

// New creates an Extractor that parses with the engine's delimiters and functions
func New(e *engine.Engine) *Extractor {
	return &Extractor{engine: e}
}

// Extract parses text and returns the variables it references but never
// defines. A parse failure is returned as is.
func (x *Extractor) Extract(text string) (Set, error) {
	t, err := x.engine.Compile("extract", text)
	if err != nil {
		return nil, err
	}

	w := &walker{
		tmpl:     t,
		vars:     Set{},
		visiting: map[string]bool{},
	}
	if t.Tree != nil {
		w.node(t.Tree.Root, true)
	}
	return w.vars, nil
}

// walker tracks whether dot still refers to the template's data. Inside
// range and with bodies dot is rebound, so field references there do not
// name template variables.
type walker struct {
	tmpl     *template.Template
	vars     Set
	visiting map[string]bool
}

func (w *walker) node(n parse.Node, rootDot bool) {
	switch n := n.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, child := range n.Nodes {
			w.node(child, rootDot)
		}
	case *parse.ActionNode:
		w.pipe(n.Pipe, rootDot)
	case *parse.IfNode:
		w.pipe(n.Pipe, rootDot)
		w.node(n.List, rootDot)
		w.node(n.ElseList, rootDot)
	case *parse.RangeNode:
		w.pipe(n.Pipe, rootDot)
		w.node(n.List, false)
		w.node(n.ElseList, rootDot)
	case *parse.WithNode:
		w.pipe(n.Pipe, rootDot)
		w.node(n.List, false)
		w.node(n.ElseList, rootDot)
	case *parse.TemplateNode:
		w.pipe(n.Pipe, rootDot)
		if passesRoot(n.Pipe, rootDot) {
			w.define(n.Name)
		}
	}
}

// define walks a named template invoked with the root data
func (w *walker) define(name string) {
	if w.visiting[name] {
		return
	}
	t := w.tmpl.Lookup(name)
	if t == nil || t.Tree == nil {
		return
	}
	w.visiting[name] = true
	w.node(t.Tree.Root, true)
	w.visiting[name] = false
}

func (w *walker) pipe(p *parse.PipeNode, rootDot bool) {
	if p == nil {
		return
	}
	for _, cmd := range p.Cmds {
		for _, arg := range cmd.Args {
			w.arg(arg, rootDot)
		}
	}
}

func (w *walker) arg(n parse.Node, rootDot bool) {
	switch n := n.(type) {
	case *parse.FieldNode:
		if rootDot && len(n.Ident) > 0 {
			w.vars.Add(n.Ident[0])
		}
	case *parse.VariableNode:
		// $ is always the data passed to Execute
		if len(n.Ident) > 1 && n.Ident[0] == "$" {
			w.vars.Add(n.Ident[1])
		}
	case *parse.ChainNode:
		w.arg(n.Node, rootDot)
	case *parse.PipeNode:
		w.pipe(n, rootDot)
	}
}

// passesRoot reports whether a {{template}} call hands the root data to the
// named template, either as . (while dot is still the root) or as $
func passesRoot(p *parse.PipeNode, rootDot bool) bool {
	if p == nil || len(p.Cmds) != 1 || len(p.Cmds[0].Args) != 1 {
		return false
	}
	switch a := p.Cmds[0].Args[0].(type) {
	case *parse.DotNode:
		return rootDot
	case *parse.VariableNode:
		return len(a.Ident) == 1 && a.Ident[0] == "$"
	}
	return false
}
