package analyze

import (
	"go/types"
	"slices"
	"strings"
)

// TypePath builds a readable path string for a field.
// Examples:
//   - "Order" for a declaration
//   - "Order.Items" for a field
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(slices.Clone(p.parts), name),
	}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// TypeStringer renders types for listings and diagnostics.
type TypeStringer struct{}

// NewTypeStringer creates a new TypeStringer.
func NewTypeStringer() *TypeStringer {
	return &TypeStringer{}
}

// TypeString renders t relative to pkgPath: types declared in that package
// are unqualified, other named types use their package name.
func (s *TypeStringer) TypeString(t types.Type, pkgPath string) string {
	if t == nil {
		return "<nil>"
	}

	return types.TypeString(t, func(p *types.Package) string {
		if p.Path() == pkgPath {
			return ""
		}

		return p.Name()
	})
}

// Signature renders a declaration as "Name[T any]".
func (s *TypeStringer) Signature(t *TypeInfo) string {
	if len(t.TypeParams) == 0 {
		return t.ID.Name
	}

	params := make([]string, 0, len(t.TypeParams))
	for _, tp := range t.TypeParams {
		params = append(params, tp.Name+" "+s.TypeString(tp.Constraint, t.ID.PkgPath))
	}

	return t.ID.Name + "[" + strings.Join(params, ", ") + "]"
}

// FieldPath returns a path string for a field within a type.
// Example: Order, Items -> "Order.Items"
func (s *TypeStringer) FieldPath(typeName string, fieldNames ...string) string {
	path := NewTypePath(typeName)
	for _, fn := range fieldNames {
		path = path.Field(fn)
	}

	return path.String()
}
