package gen

import (
	"go/parser"
	"go/token"
	"go/types"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"nullable-generator/internal/analyze"
)

const (
	shopPath = "example.com/shop"
	shopDir  = "/src/shop"
)

var (
	shopPkg = types.NewPackage(shopPath, "shop")
	timePkg = types.NewPackage("time", "time")

	timeType = types.NewNamed(types.NewTypeName(token.NoPos, timePkg, "Time", nil), types.NewStruct(nil, nil), nil)
)

// field builds an exported field description.
func field(name string, typ types.Type, tag string) analyze.FieldInfo {
	return analyze.FieldInfo{
		Name:     name,
		Exported: token.IsExported(name),
		Type:     typ,
		Tag:      reflect.StructTag(tag),
	}
}

// structType builds a struct declaration in the shop package.
func structType(name string, fields ...analyze.FieldInfo) *analyze.TypeInfo {
	vars := make([]*types.Var, 0, len(fields))
	for i := range fields {
		fields[i].Index = i
		vars = append(vars, types.NewField(token.NoPos, shopPkg, fields[i].Name, fields[i].Type, fields[i].Embedded))
	}

	obj := types.NewTypeName(token.NoPos, shopPkg, name, nil)

	return &analyze.TypeInfo{
		ID:      analyze.TypeID{PkgPath: shopPath, Name: name},
		PkgName: "shop",
		Kind:    analyze.TypeKindStruct,
		Fields:  fields,
		GoType:  types.NewNamed(obj, types.NewStruct(vars, nil), nil),
		Dir:     shopDir,
	}
}

// generateOne runs the generator for a single type and returns the source.
func generateOne(t *testing.T, cfg GeneratorConfig, ti *analyze.TypeInfo) string {
	t.Helper()

	files, err := NewGenerator(cfg).Generate([]*analyze.TypeInfo{ti})
	require.NoError(t, err)
	require.Len(t, files, 1)

	_, err = parser.ParseFile(token.NewFileSet(), files[0].Filename, files[0].Content, parser.ParseComments)
	require.NoError(t, err, "generated code must parse:\n%s", files[0].Content)

	return string(files[0].Content)
}

func myStruct() *analyze.TypeInfo {
	return structType("MyStruct",
		field("Field1", types.Typ[types.Int32], ""),
		field("Field2", types.Typ[types.String], ""),
	)
}
