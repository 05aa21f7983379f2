package source

import (
	stderrors "errors"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bullish-design/templateer/pkg/errors"
	"github.com/bullish-design/templateer/pkg/filesystem"
)

// ErrNoTemplate is reported for a module that does not declare the
// template attribute. Discovery skips such files.
var ErrNoTemplate = stderrors.New("module declares no template")

// Definition is a loaded template
type Definition struct {
	// Stem is the module file name without extension
	Stem string
	// Attr is the declaration holding the template text
	Attr string
	// Ref is the reference key, Stem + "." + Attr
	Ref string
	// Path is the module file, empty for in-process templates
	Path string
	// Text is the raw template text
	Text string
}

// Ref builds the reference key for a module stem and attribute
func Ref(stem, attr string) string {
	return stem + "." + attr
}

// SplitRef splits a reference key at its last dot
func SplitRef(ref string) (stem, attr string, err error) {
	i := strings.LastIndex(ref, ".")
	if i <= 0 || i == len(ref)-1 {
		return "", "", errors.Newf(errors.ErrLookup, "invalid template reference %q, want <module>.<attribute>", ref).
			WithDetail("ref", ref)
	}
	return ref[:i], ref[i+1:], nil
}

// Stem returns the module stem of a template file path
func Stem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".go")
}

// Discover lists the template modules in dir matching glob, sorted by path.
// Test files are never templates.
func Discover(fsys filesystem.FS, dir, glob string) ([]string, error) {
	matches, err := fsys.Glob(dir, glob)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list templates in %s", dir).
			WithDetail("dir", dir)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if strings.HasSuffix(m, "_test.go") || filepath.Ext(m) != ".go" {
			continue
		}
		files = append(files, m)
	}
	return files, nil
}

// Load reads the module at path and extracts the template declared as attr
func Load(fsys filesystem.FS, path, attr string) (*Definition, error) {
	src, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLookup, "failed to read template module %s", path).
			WithDetail("path", path)
	}
	return Parse(path, src, attr)
}

// Parse extracts the template declared as attr from Go source
func Parse(path string, src []byte, attr string) (*Definition, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLookup, "template module %s is not valid Go", path).
			WithDetail("path", path)
	}

	expr := findDecl(file, attr)
	if expr == nil {
		return nil, errors.Wrapf(ErrNoTemplate, errors.ErrLookup, "%s has no %s declaration", path, attr).
			WithDetail("path", path)
	}

	text, ok := stringValue(expr)
	if !ok {
		return nil, errors.Newf(errors.ErrLookup, "%s in %s is not a string literal", attr, path).
			WithDetail("path", path)
	}

	stem := Stem(path)
	return &Definition{
		Stem: stem,
		Attr: attr,
		Ref:  Ref(stem, attr),
		Path: path,
		Text: text,
	}, nil
}

// findDecl returns the value of the package-level const or var named attr
func findDecl(file *ast.File, attr string) ast.Expr {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || (gen.Tok != token.CONST && gen.Tok != token.VAR) {
			continue
		}
		for _, spec := range gen.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for i, name := range vs.Names {
				if name.Name == attr && i < len(vs.Values) {
					return vs.Values[i]
				}
			}
		}
	}
	return nil
}

// stringValue evaluates a string literal or a concatenation of them
func stringValue(expr ast.Expr) (string, bool) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind != token.STRING {
			return "", false
		}
		s, err := strconv.Unquote(e.Value)
		return s, err == nil
	case *ast.ParenExpr:
		return stringValue(e.X)
	case *ast.BinaryExpr:
		if e.Op != token.ADD {
			return "", false
		}
		left, ok := stringValue(e.X)
		if !ok {
			return "", false
		}
		right, ok := stringValue(e.Y)
		if !ok {
			return "", false
		}
		return left + right, true
	}
	return "", false
}
