package gen

import (
	"go/types"
	"sort"
	"strconv"
	"strings"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string // Set only when Name differs from the package name
	Name  string // Identifier used to refer to the package in the file
	Path  string
}

// importSet tracks the imports of one generated file and hands out
// collision-free package identifiers.
type importSet struct {
	byPath map[string]*importSpec
	taken  map[string]bool
}

func newImportSet(reserved ...string) *importSet {
	s := &importSet{
		byPath: make(map[string]*importSpec),
		taken:  make(map[string]bool),
	}

	for _, name := range reserved {
		s.taken[name] = true
	}

	return s
}

// reserve marks names that packages must not be imported as.
func (s *importSet) reserve(names ...string) {
	for _, name := range names {
		s.taken[name] = true
	}
}

// add registers pkgPath under its package name, or a numbered alias when
// the name is taken, and returns the identifier to qualify with.
func (s *importSet) add(pkgPath, name string) string {
	if spec, ok := s.byPath[pkgPath]; ok {
		return spec.Name
	}

	ident := name
	for i := 2; s.taken[ident]; i++ {
		ident = name + strconv.Itoa(i)
	}

	s.taken[ident] = true

	spec := &importSpec{Name: ident, Path: pkgPath}
	if ident != name {
		spec.Alias = ident
	}

	s.byPath[pkgPath] = spec

	return ident
}

// names returns the identifiers of all imported packages.
func (s *importSet) names() []string {
	names := make([]string, 0, len(s.byPath))
	for _, spec := range s.byPath {
		names = append(names, spec.Name)
	}

	return names
}

// sorted returns the imports ordered by path.
func (s *importSet) sorted() []importSpec {
	specs := make([]importSpec, 0, len(s.byPath))
	for _, spec := range s.byPath {
		specs = append(specs, *spec)
	}

	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Path < specs[j].Path
	})

	return specs
}

// typeFormatter renders go/types expressions as seen from the package the
// generated file lives in, recording every foreign package it references.
type typeFormatter struct {
	pkgPath string
	imports *importSet
}

func (f *typeFormatter) qualifier(p *types.Package) string {
	if p == nil || p.Path() == f.pkgPath {
		return ""
	}

	return f.imports.add(p.Path(), p.Name())
}

// typeString renders t for use in the generated file.
func (f *typeFormatter) typeString(t types.Type) string {
	if t == nil {
		return "any"
	}

	return types.TypeString(t, f.qualifier)
}

// constraintString renders a type parameter constraint. Implicit interfaces
// such as ~int | ~string are written without their interface wrapper.
func (f *typeFormatter) constraintString(t types.Type) string {
	if iface, ok := t.(*types.Interface); ok && iface.IsImplicit() && iface.NumEmbeddeds() == 1 {
		return f.typeString(iface.EmbeddedType(0))
	}

	return f.typeString(t)
}

// ambiguousConstraint reports whether a lone type parameter with this
// constraint needs a trailing comma to parse as a type parameter list.
func ambiguousConstraint(constraint string) bool {
	return strings.HasPrefix(constraint, "*") || strings.HasPrefix(constraint, "(")
}

// qualify prefixes name with the package identifier, if any.
func qualify(pkg, name string) string {
	if pkg == "" {
		return name
	}

	return pkg + "." + name
}

// joinParams renders "[A, B]" or "" for an empty list.
func joinParams(parts []string) string {
	if len(parts) == 0 {
		return ""
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
