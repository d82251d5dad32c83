package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"

	"nullable-generator/internal/diagnostic"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph *TypeGraph
	// Dir is the working directory for package resolution; empty means the
	// current directory.
	Dir string
	// BuildTags are passed to the build system as -tags.
	BuildTags []string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewTypeGraph(),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., ".", "nullable-generator/store").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}
	if len(a.BuildTags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(a.BuildTags, ",")}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var diags diagnostic.Diagnostics
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			// Type errors leave declarations intact. They show up when code in the
			// package uses a generated type whose file is excluded by a build tag.
			if e.Kind == packages.TypeError {
				a.graph.Diagnostics.AddWarning(diagnostic.CodeTypeCheck, e.Error(), pkg.PkgPath, "")
				continue
			}

			diags.AddError(diagnostic.CodePackageError, e.Error(), pkg.PkgPath, "")
		}
	}

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// processPackage extracts package-level type declarations in source order.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	if pkg.Types == nil || pkg.TypesInfo == nil {
		return errors.New("missing type information")
	}

	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}
	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				typeName, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}

				info := a.analyzeTypeName(typeName)
				info.PkgName = pkg.Name
				info.Dir = pkgInfo.Dir
				info.File = pkg.Fset.Position(ts.Pos()).Filename
				info.PkgFiles = pkg.GoFiles
				info.Annotated = hasDirective(ts.Doc) || (gd.Lparen == token.NoPos && hasDirective(gd.Doc))

				a.graph.Types[info.ID] = info
				pkgInfo.Types = append(pkgInfo.Types, info.ID)
			}
		}
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	return nil
}

// hasDirective reports whether a doc comment carries Directive on its own line.
func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		if strings.TrimRight(c.Text, " \t") == Directive {
			return true
		}
	}

	return false
}

// analyzeTypeName describes a declared type.
func (a *Analyzer) analyzeTypeName(obj *types.TypeName) *TypeInfo {
	info := &TypeInfo{
		ID: TypeID{
			PkgPath: obj.Pkg().Path(),
			Name:    obj.Name(),
		},
		GoType: obj.Type(),
	}

	if obj.IsAlias() {
		info.Kind = TypeKindAlias
		return info
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		info.Kind = TypeKindUnknown
		return info
	}

	if tparams := named.TypeParams(); tparams != nil {
		for i := range tparams.Len() {
			tp := tparams.At(i)
			info.TypeParams = append(info.TypeParams, TypeParam{
				Name:       tp.Obj().Name(),
				Constraint: tp.Constraint(),
			})
		}
	}

	info.Kind = kindOf(named.Underlying())
	if st, ok := named.Underlying().(*types.Struct); ok {
		info.Fields = analyzeStructFields(st)
	}

	return info
}

// kindOf classifies an underlying type.
func kindOf(t types.Type) TypeKind {
	switch t.(type) {
	case *types.Basic:
		return TypeKindBasic
	case *types.Struct:
		return TypeKindStruct
	case *types.Pointer:
		return TypeKindPointer
	case *types.Slice:
		return TypeKindSlice
	case *types.Array:
		return TypeKindArray
	case *types.Map:
		return TypeKindMap
	case *types.Interface:
		return TypeKindInterface
	case *types.Signature:
		return TypeKindFunc
	case *types.Chan:
		return TypeKindChan
	default:
		return TypeKindUnknown
	}
}

// analyzeStructFields extracts every field of a struct type, exported or not.
func analyzeStructFields(st *types.Struct) []FieldInfo {
	fields := make([]FieldInfo, 0, st.NumFields())

	for i := range st.NumFields() {
		field := st.Field(i)

		fields = append(fields, FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     field.Type(),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		})
	}

	return fields
}
