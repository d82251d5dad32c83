package gen

import (
	"fmt"
	"go/token"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TypePrefix is prepended to the source type name to name the generated type.
const TypePrefix = "Nullable"

// Accessor method prefixes.
const (
	getPrefix    = "Get"
	lookupPrefix = "Lookup"
	setPrefix    = "Set"
)

var titleCaser = cases.Title(language.Und, cases.NoLower)

// generateStruct renders the declaration of the generated type.
func generateStruct(data *templateData) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("type %s%s struct {\n", data.TypeName, data.TypeParamsDecl))

	for _, f := range data.Fields {
		sb.WriteString(fmt.Sprintf("\t%s %s", f.Name, f.StorageType))

		if f.Tag != "" {
			sb.WriteString(" " + tagLiteral(f.Tag))
		}

		sb.WriteString("\n")
	}

	sb.WriteString("}\n")

	return sb.String()
}

// tagLiteral quotes a struct tag, preferring a raw string literal.
func tagLiteral(tag string) string {
	if strings.Contains(tag, "`") {
		return strconv.Quote(tag)
	}

	return "`" + tag + "`"
}

// accessorStem returns the field name with its first letter title-cased,
// e.g. "notes" -> "Notes", "ID" -> "ID".
func accessorStem(fieldName string) string {
	r, size := utf8.DecodeRuneInString(fieldName)
	if r == utf8.RuneError {
		return fieldName
	}

	return titleCaser.String(string(r)) + fieldName[size:]
}

// paramName derives a constructor parameter name from a field name by
// lower-casing its leading initialism: "ID" -> "id", "URLPath" -> "urlPath",
// "Field1" -> "field1".
func paramName(fieldName string) string {
	runes := []rune(fieldName)

	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}

	switch {
	case upper == 0:
		return fieldName
	case upper == 1 || upper == len(runes):
	default:
		// Keep the last capital when it starts the next word.
		if unicode.IsLetter(runes[upper]) {
			upper--
		}
	}

	for i := range upper {
		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

// localName returns want, suffixed with "Val" until it is a usable
// identifier that is not in taken.
func localName(want string, taken map[string]bool) string {
	name := want
	if token.IsKeyword(name) || name == "_" || taken[name] {
		name += "Val"
	}

	base := name
	for i := 2; taken[name]; i++ {
		name = base + strconv.Itoa(i)
	}

	return name
}

// outputFilename returns the default file name for a source type.
func outputFilename(typeName, suffix string) string {
	return strings.ToLower(typeName) + suffix
}
