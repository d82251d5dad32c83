package analyze

import (
	"fmt"
	"go/types"

	"nullable-generator/internal/diagnostic"
	"nullable-generator/internal/match"
)

// Select returns the declarations to generate for. When names is empty every
// annotated declaration is returned; otherwise each name must match a
// declaration in at least one loaded package.
func (g *TypeGraph) Select(names []string) ([]*TypeInfo, diagnostic.Diagnostics) {
	var (
		selected []*TypeInfo
		diags    diagnostic.Diagnostics
	)

	diags.Merge(g.Diagnostics)

	if len(names) == 0 {
		g.eachType(func(t *TypeInfo) {
			if t.Annotated {
				selected = append(selected, t)
			}
		})

		if len(selected) == 0 {
			diags.AddWarning(diagnostic.CodeNoTargets,
				"no declarations marked with "+Directive, "", "")
		}

		return selected, diags
	}

	for _, name := range names {
		found := false

		g.eachType(func(t *TypeInfo) {
			if t.ID.Name == name {
				selected = append(selected, t)
				found = true
			}
		})

		if !found {
			msg := fmt.Sprintf("type %s not found in loaded packages", name)
			if hint, ok := match.Suggest(name, g.names()); ok {
				msg += fmt.Sprintf(" (did you mean %s?)", hint)
			}

			diags.AddError(diagnostic.CodeTypeNotFound, msg, name, "")
		}
	}

	return selected, diags
}

// All returns every declaration package by package in declaration order.
func (g *TypeGraph) All() []*TypeInfo {
	var all []*TypeInfo

	g.eachType(func(t *TypeInfo) {
		all = append(all, t)
	})

	return all
}

// names lists declaration names in visiting order.
func (g *TypeGraph) names() []string {
	var names []string

	g.eachType(func(t *TypeInfo) {
		names = append(names, t.ID.Name)
	})

	return names
}

// eachType visits types package by package in declaration order.
func (g *TypeGraph) eachType(fn func(*TypeInfo)) {
	for _, path := range g.packagePaths() {
		for _, id := range g.Packages[path].Types {
			fn(g.Types[id])
		}
	}
}

// Validate rejects declarations that are not plain named-field structs.
func Validate(t *TypeInfo) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	typeName := t.ID.String()

	if !t.IsStruct() {
		diags.AddError(diagnostic.CodeNotStruct,
			fmt.Sprintf("only struct types can be made nullable, %s is %s", t.ID.Name, describeKind(t.Kind)),
			typeName, "")

		return diags
	}

	stringer := NewTypeStringer()

	for _, f := range t.Fields {
		switch {
		case f.Embedded:
			diags.AddError(diagnostic.CodeEmbeddedField,
				"embedded fields have no declared name and are not supported",
				typeName, stringer.FieldPath(t.ID.Name, f.Name))
		case f.IsBlank():
			diags.AddError(diagnostic.CodeBlankField,
				"blank fields are not supported",
				typeName, stringer.FieldPath(t.ID.Name, fmt.Sprintf("_#%d", f.Index)))
		case hasInvalid(f.Type):
			diags.AddError(diagnostic.CodeInvalidType,
				"field type does not type-check (a generated type cannot be used as a field type)",
				typeName, stringer.FieldPath(t.ID.Name, f.Name))
		}
	}

	return diags
}

func describeKind(k TypeKind) string {
	switch k {
	case TypeKindAlias:
		return "an alias"
	case TypeKindInterface:
		return "an interface"
	case TypeKindUnknown:
		return "of unknown kind"
	default:
		return "a " + k.String()
	}
}

// hasInvalid reports whether t mentions a type the checker could not resolve.
func hasInvalid(t types.Type) bool {
	switch t := t.(type) {
	case nil:
		return true
	case *types.Basic:
		return t.Kind() == types.Invalid
	case *types.Pointer:
		return hasInvalid(t.Elem())
	case *types.Slice:
		return hasInvalid(t.Elem())
	case *types.Array:
		return hasInvalid(t.Elem())
	case *types.Chan:
		return hasInvalid(t.Elem())
	case *types.Map:
		return hasInvalid(t.Key()) || hasInvalid(t.Elem())
	case *types.Named:
		args := t.TypeArgs()
		for i := range args.Len() {
			if hasInvalid(args.At(i)) {
				return true
			}
		}

		return false
	default:
		return false
	}
}
