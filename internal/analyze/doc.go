// Package analyze provides package loading and declaration discovery.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to find struct declarations marked for nullable generation.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes a package-level named type, its kind and fields
//   - FieldInfo: describes field name, type, tag and embedding
//
// A declaration is marked by a line in its doc comment:
//
//	//nullablegen:generate
//	type Order struct { ... }
package analyze
