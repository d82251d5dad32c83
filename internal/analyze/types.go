package analyze

import (
	"go/types"
	"reflect"
	"sort"

	"nullable-generator/internal/common"
	"nullable-generator/internal/diagnostic"
)

// Directive marks a type declaration for generation when it appears as a
// line of the declaration's doc comment.
const Directive = "//nullablegen:generate"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "nullable-generator/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a declared type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindMap                // map type
	TypeKindInterface          // interface type
	TypeKindFunc               // function type
	TypeKindChan               // channel type
	TypeKindAlias              // alias declaration (type A = B)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindInterface:
		return "interface"
	case TypeKindFunc:
		return "func"
	case TypeKindChan:
		return "chan"
	case TypeKindAlias:
		return "alias"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a package-level named type.
type TypeInfo struct {
	ID         TypeID      // Unique identifier
	PkgName    string      // Declaring package name
	Kind       TypeKind    // Kind of the declared type
	Fields     []FieldInfo // For structs, every field in declaration order
	TypeParams []TypeParam // Type parameters of a generic declaration
	GoType     types.Type  // The original go/types.Type
	File       string      // File holding the declaration
	PkgFiles   []string    // Go files of the declaring package
	Dir        string      // Directory of the declaring package
	Annotated  bool        // True if the declaration carries Directive
}

// IsStruct returns true if the declared type is a struct.
func (t *TypeInfo) IsStruct() bool {
	return t.Kind == TypeKindStruct
}

// TypeParam is a type parameter of a generic declaration.
type TypeParam struct {
	Name       string
	Constraint types.Type
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     types.Type        // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// IsBlank returns true for "_" padding fields.
func (f *FieldInfo) IsBlank() bool {
	return f.Name == "_"
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all package-level named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
	// Diagnostics holds problems found while loading that did not stop it.
	Diagnostics diagnostic.Diagnostics
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory holding the package sources
	Types []TypeID // Named types defined in this package, in declaration order
}

// packagePaths returns loaded package paths in sorted order.
func (g *TypeGraph) packagePaths() []string {
	paths := make([]string, 0, len(g.Packages))
	for path := range g.Packages {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	return paths
}
