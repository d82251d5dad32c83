package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/afero"

	"nullable-generator/internal/analyze"
	"nullable-generator/internal/common"
	"nullable-generator/internal/diagnostic"
)

// BuildTag excludes generated files while their source package is being
// analyzed, so a stale nullable file never blocks its own regeneration.
const BuildTag = "nullablegen"

// ContainerKind selects how generated fields track presence.
type ContainerKind string

const (
	// ContainerOptional stores fields as optional.Value[T].
	ContainerOptional ContainerKind = "optional"
	// ContainerPointer stores fields as *T.
	ContainerPointer ContainerKind = "pointer"
)

// ParseContainer converts a configuration string to a ContainerKind.
func ParseContainer(s string) (ContainerKind, error) {
	switch ContainerKind(s) {
	case ContainerOptional, "":
		return ContainerOptional, nil
	case ContainerPointer:
		return ContainerPointer, nil
	default:
		return "", fmt.Errorf("unknown container %q (want %q or %q)", s, ContainerOptional, ContainerPointer)
	}
}

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Container selects the field representation.
	Container ContainerKind
	// OptionalImport is the import path of the optional package.
	OptionalImport string
	// Suffix is appended to the lower-cased type name to form file names.
	Suffix string
	// Output overrides the file path when exactly one type is generated.
	// A relative path is resolved against the package directory.
	Output string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// DebugFs receives .unformatted.go sidecars when formatting fails.
	// Nil disables them.
	DebugFs afero.Fs
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Container:        ContainerOptional,
		OptionalImport:   "nullable-generator/optional",
		Suffix:           "_nullable.go",
		GenerateComments: true,
	}
}

// Generator generates nullable companions for struct declarations.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// TypeName is the source declaration the file was generated from.
	TypeName string
	// Dir is the directory the file belongs in.
	Dir string
	// Filename is the name of the file (e.g., "product_nullable.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the full path of the file.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate validates every target and then renders one file per target.
// When any target is rejected no file is produced.
func (g *Generator) Generate(targets []*analyze.TypeInfo) ([]GeneratedFile, error) {
	if g.config.Output != "" && !common.IsSingle(targets) {
		return nil, fmt.Errorf("output file can only be set when generating exactly one type, got %d", len(targets))
	}

	var diags diagnostic.Diagnostics
	for _, t := range targets {
		diags.Merge(Validate(t))
	}

	if err := diags.Error(); err != nil {
		return nil, err
	}

	files := make([]GeneratedFile, 0, len(targets))
	seen := make(map[string]string, len(targets))

	for _, t := range targets {
		file, err := g.generateType(t)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", t.ID, err)
		}

		if prev, ok := seen[file.Path()]; ok {
			return nil, fmt.Errorf("%s and %s both generate %s", prev, t.ID, file.Path())
		}

		seen[file.Path()] = t.ID.String()
		files = append(files, *file)
	}

	return files, nil
}

// Validate extends analyze.Validate with checks on the generated method set.
func Validate(t *analyze.TypeInfo) diagnostic.Diagnostics {
	diags := analyze.Validate(t)
	if diags.HasErrors() {
		return diags
	}

	owners := make(map[string]string, len(t.Fields)*4)
	for _, f := range t.Fields {
		owners[f.Name] = "field " + f.Name
	}

	for _, f := range t.Fields {
		stem := accessorStem(f.Name)
		for _, method := range []string{getPrefix + stem, lookupPrefix + stem, setPrefix + stem} {
			if owner, ok := owners[method]; ok {
				diags.AddError(diagnostic.CodeAccessorClash,
					fmt.Sprintf("accessor %s for field %s clashes with %s", method, f.Name, owner),
					t.ID.String(), t.ID.Name+"."+f.Name)

				continue
			}

			owners[method] = "accessor of field " + f.Name
		}
	}

	return diags
}

func (g *Generator) generateType(t *analyze.TypeInfo) (*GeneratedFile, error) {
	dir, filename, err := g.outputPath(t)
	if err != nil {
		return nil, err
	}

	data := g.buildTemplateData(t)

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugFs != nil {
			_ = writeDebugUnformatted(g.config.DebugFs, dir, filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		TypeName: t.ID.Name,
		Dir:      dir,
		Filename: filename,
		Content:  formatted,
	}, nil
}

// outputPath resolves where the file for t is written. The result never
// names a source file of the package, which would be overwritten.
func (g *Generator) outputPath(t *analyze.TypeInfo) (string, string, error) {
	out := filepath.Join(t.Dir, outputFilename(t.ID.Name, g.config.Suffix))

	if g.config.Output != "" {
		out = g.config.Output
		if !filepath.IsAbs(out) {
			out = filepath.Join(t.Dir, out)
		}

		if filepath.Clean(filepath.Dir(out)) != filepath.Clean(t.Dir) {
			return "", "", errors.New("output file must be in the package directory " + t.Dir)
		}
	}

	if isSourceFile(t, out) {
		return "", "", fmt.Errorf("output file %s is a source file of package %s", out, t.PkgName)
	}

	return filepath.Dir(out), filepath.Base(out), nil
}

// isSourceFile reports whether path is a hand-written file of t's package.
// Generated files are excluded from loading by BuildTag, so they never match.
func isSourceFile(t *analyze.TypeInfo, path string) bool {
	path = filepath.Clean(path)
	if strings.HasSuffix(path, "_test.go") || path == filepath.Clean(t.File) {
		return true
	}

	for _, f := range t.PkgFiles {
		if path == filepath.Clean(f) {
			return true
		}
	}

	return false
}

var fileTmpl = template.Must(template.New("file").Parse(`// Code generated by nullable-generator. DO NOT EDIT.

//go:build !` + BuildTag + `

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{if .Comments}}// {{.TypeName}} mirrors {{.SourceName}} with every field able to be absent.
// The zero value has every field absent.
{{end}}{{.StructDef}}
{{if .Comments}}// New{{.TypeName}} returns a {{.TypeName}} with every field present.
{{end}}func New{{.TypeName}}{{.TypeParamsDecl}}({{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Param}} {{$f.Type}}{{end}}) *{{.TypeRef}} {
	return &{{.TypeRef}}{
{{range .Fields}}		{{.Name}}: {{.PresentExpr}},
{{end}}	}
}

{{if .Comments}}// New{{.TypeName}}Default returns a {{.TypeName}} with every field present
// and holding the zero value of its type.
{{end}}func New{{.TypeName}}Default{{.TypeParamsDecl}}() *{{.TypeRef}} {
	return &{{.TypeRef}}{
{{range .Fields}}		{{.Name}}: {{.DefaultExpr}},
{{end}}	}
}
{{range .Fields}}
{{if $.Comments}}// Get{{.Stem}} returns {{.Name}}, or the zero value of its type when absent.
{{end}}func ({{$.Recv}} *{{$.TypeRef}}) Get{{.Stem}}() {{.Type}} {
{{- if $.Pointer}}
	if {{$.Recv}} == nil || {{$.Recv}}.{{.Name}} == nil {
		var {{$.Zero}} {{.Type}}
		return {{$.Zero}}
	}

	return *{{$.Recv}}.{{.Name}}
{{- else}}
	if {{$.Recv}} == nil {
		var {{$.Zero}} {{.Type}}
		return {{$.Zero}}
	}

	return {{$.Recv}}.{{.Name}}.OrZero()
{{- end}}
}

{{if $.Comments}}// Lookup{{.Stem}} returns {{.Name}} and whether it is present.
{{end}}func ({{$.Recv}} *{{$.TypeRef}}) Lookup{{.Stem}}() ({{.Type}}, bool) {
{{- if $.Pointer}}
	if {{$.Recv}} == nil || {{$.Recv}}.{{.Name}} == nil {
		var {{$.Zero}} {{.Type}}
		return {{$.Zero}}, false
	}

	return *{{$.Recv}}.{{.Name}}, true
{{- else}}
	if {{$.Recv}} == nil {
		var {{$.Zero}} {{.Type}}
		return {{$.Zero}}, false
	}

	return {{$.Recv}}.{{.Name}}.Get()
{{- end}}
}

{{if $.Comments}}// Set{{.Stem}} stores {{$.Arg}} as the present value of {{.Name}}.
{{end}}func ({{$.Recv}} *{{$.TypeRef}}) Set{{.Stem}}({{$.Arg}} {{.Type}}) {
	{{$.Recv}}.{{.Name}} = {{.SetExpr}}
}
{{end}}`))
