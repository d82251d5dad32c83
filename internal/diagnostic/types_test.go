package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	require.NoError(t, d.Error())

	d.AddWarning(CodeNoTargets, "nothing to do", "", "")
	require.NoError(t, d.Error())
	assert.False(t, d.HasErrors())

	d.AddError(CodeNotStruct, "Status is not a struct", "example/pkg.Status", "")
	d.AddError(CodeEmbeddedField, "embedded fields are not supported", "example/pkg.Order", "Base")

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[example/pkg.Status]: [not-struct] Status is not a struct; "+
			"[example/pkg.Order] Base: [embedded-field] embedded fields are not supported",
		err.Error())
}

func TestDiagnostics_MergeAndAll(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo(CodeGenerated, "wrote file", "T", "")
	b.AddError(CodeTypeNotFound, "missing", "U", "")
	b.AddWarning(CodeNoTargets, "none", "", "")

	a.Merge(b)

	all := a.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticWarning, all[1].Severity)
	assert.Equal(t, DiagnosticInfo, all[2].Severity)
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}

func TestDiagnostic_StringWithoutPrefix(t *testing.T) {
	d := Diagnostic{Message: "plain"}
	assert.Equal(t, "plain", d.String())
}
