package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessorStem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Field1", "Field1"},
		{"notes", "Notes"},
		{"ID", "ID"},
		{"urlPath", "UrlPath"},
		{"émoji", "Émoji"},
		{"x", "X"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, accessorStem(tt.in))
		})
	}
}

func TestParamName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Field1", "field1"},
		{"ID", "id"},
		{"ID2", "id2"},
		{"URLPath", "urlPath"},
		{"SKU", "sku"},
		{"notes", "notes"},
		{"X", "x"},
		{"PriceCents", "priceCents"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, paramName(tt.in))
		})
	}
}

func TestLocalName(t *testing.T) {
	taken := map[string]bool{"time": true, "n": true, "nVal": true}

	assert.Equal(t, "id", localName("id", taken))
	assert.Equal(t, "typeVal", localName("type", taken))
	assert.Equal(t, "rangeVal", localName("range", taken))
	assert.Equal(t, "_Val", localName("_", taken))
	assert.Equal(t, "timeVal", localName("time", taken))
	assert.Equal(t, "nVal2", localName("n", taken))
}

func TestTagLiteral(t *testing.T) {
	assert.Equal(t, "`json:\"id\"`", tagLiteral(`json:"id"`))
	assert.Equal(t, `"a:\"`+"`b`"+`\""`, tagLiteral("a:\"`b`\""))
}

func TestOutputFilename(t *testing.T) {
	assert.Equal(t, "mystruct_nullable.go", outputFilename("MyStruct", "_nullable.go"))
	assert.Equal(t, "page.gen.go", outputFilename("Page", ".gen.go"))
}

func TestImportSet(t *testing.T) {
	s := newImportSet("optional")

	assert.Equal(t, "time", s.add("time", "time"))
	assert.Equal(t, "time", s.add("time", "time"))
	assert.Equal(t, "time2", s.add("example.com/time", "time"))
	assert.Equal(t, "optional2", s.add("example.com/optional", "optional"))

	assert.Equal(t, []importSpec{
		{Alias: "optional2", Name: "optional2", Path: "example.com/optional"},
		{Alias: "time2", Name: "time2", Path: "example.com/time"},
		{Name: "time", Path: "time"},
	}, s.sorted())
}
