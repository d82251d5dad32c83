package gen

import (
	"go/types"

	"nullable-generator/internal/analyze"
	"nullable-generator/internal/common"
)

// templateData holds everything the file template needs.
type templateData struct {
	PackageName    string
	SourceName     string
	TypeName       string // e.g. "NullablePage"
	TypeParamsDecl string // e.g. "[T any, K comparable]"
	TypeRef        string // e.g. "NullablePage[T, K]"
	Imports        []importSpec
	StructDef      string
	Fields         []fieldData
	Pointer        bool
	Comments       bool

	// Local identifiers used inside generated functions.
	Recv string
	Arg  string
	Zero string
}

// fieldData describes one field of the generated type.
type fieldData struct {
	Name        string // Field name, unchanged
	Stem        string // Accessor stem, e.g. "Notes"
	Type        string // Source field type
	StorageType string // optional.Value[T] or *T
	Tag         string // Raw struct tag
	Param       string // Constructor parameter name
	PresentExpr string // Stores Param as present
	DefaultExpr string // Present zero value
	SetExpr     string // Stores the setter argument as present
}

// buildTemplateData resolves names, types and imports for t.
func (g *Generator) buildTemplateData(t *analyze.TypeInfo) *templateData {
	data := &templateData{
		PackageName: t.PkgName,
		SourceName:  t.ID.Name,
		TypeName:    TypePrefix + t.ID.Name,
		Pointer:     g.config.Container == ContainerPointer,
		Comments:    g.config.GenerateComments,
	}

	imports := newImportSet()
	imports.reserve(packageScopeNames(t)...)

	typeParamNames := make([]string, 0, len(t.TypeParams))
	for _, tp := range t.TypeParams {
		typeParamNames = append(typeParamNames, tp.Name)
	}

	imports.reserve(typeParamNames...)
	imports.reserve(data.TypeName)

	formatter := &typeFormatter{pkgPath: t.ID.PkgPath, imports: imports}

	// The container package is registered first so it keeps its own name.
	optPkg := ""
	if !data.Pointer && len(t.Fields) > 0 && g.config.OptionalImport != t.ID.PkgPath {
		optPkg = imports.add(g.config.OptionalImport, common.PkgAlias(g.config.OptionalImport))
	}

	decl := make([]string, 0, len(t.TypeParams))
	for _, tp := range t.TypeParams {
		decl = append(decl, tp.Name+" "+formatter.constraintString(tp.Constraint))
	}

	data.TypeParamsDecl = joinParams(decl)
	if len(t.TypeParams) == 1 && ambiguousConstraint(formatter.constraintString(t.TypeParams[0].Constraint)) {
		// [P *C] would parse as an array length expression.
		data.TypeParamsDecl = "[" + decl[0] + ",]"
	}
	data.TypeRef = data.TypeName + joinParams(typeParamNames)

	fieldTypes := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		fieldTypes = append(fieldTypes, formatter.typeString(f.Type))
	}

	// Identifiers a local name must not shadow inside generated bodies.
	taken := make(map[string]bool)
	for _, name := range imports.names() {
		taken[name] = true
	}

	for _, name := range typeParamNames {
		taken[name] = true
	}

	taken[data.TypeName] = true

	locals := make(map[string]bool, len(taken))
	for name := range taken {
		locals[name] = true
	}

	for _, name := range packageScopeNames(t) {
		locals[name] = true
	}

	data.Recv = localName("n", locals)
	locals[data.Recv] = true
	data.Arg = localName("v", locals)
	locals[data.Arg] = true
	data.Zero = localName("zero", locals)

	for i, f := range t.Fields {
		typ := fieldTypes[i]
		param := localName(paramName(f.Name), taken)
		taken[param] = true

		fd := fieldData{
			Name:  f.Name,
			Stem:  accessorStem(f.Name),
			Type:  typ,
			Tag:   string(f.Tag),
			Param: param,
		}

		if data.Pointer {
			fd.StorageType = "*" + typ
			fd.PresentExpr = "&" + param
			fd.DefaultExpr = "new(" + typ + ")"
			fd.SetExpr = "&" + data.Arg
		} else {
			fd.StorageType = qualify(optPkg, "Value["+typ+"]")
			fd.PresentExpr = qualify(optPkg, "Some("+param+")")
			fd.DefaultExpr = qualify(optPkg, "SomeZero["+typ+"]()")
			fd.SetExpr = qualify(optPkg, "Some("+data.Arg+")")
		}

		data.Fields = append(data.Fields, fd)
	}

	data.Imports = imports.sorted()
	data.StructDef = generateStruct(data)

	return data
}

// packageScopeNames lists the package-level identifiers of t's package.
func packageScopeNames(t *analyze.TypeInfo) []string {
	named, ok := t.GoType.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return nil
	}

	return named.Obj().Pkg().Scope().Names()
}
