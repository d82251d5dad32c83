package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Defaults(t *testing.T) {
	cfg, err := NewLoader(afero.NewMemMapFs()).Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoader_DefaultFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, DefaultFile, []byte(`
container: pointer
comments: false
log:
  level: debug
`), 0o644))

	cfg, err := NewLoader(fsys).Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, ContainerPointer, cfg.Container)
	assert.False(t, cfg.Comments)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "_nullable.go", cfg.Suffix, "keys absent from the file keep their defaults")
}

func TestLoader_WithDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/work/pkg/"+DefaultFile, []byte("suffix: .gen.go\n"), 0o644))

	cfg, err := NewLoader(fsys).WithDir("/work/pkg").Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, ".gen.go", cfg.Suffix)

	cfg, err = NewLoader(fsys).Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "_nullable.go", cfg.Suffix)
}

func TestLoader_WithDir_ExplicitRelativePath(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/work/pkg/custom.yaml", []byte("suffix: .custom.go\n"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/etc/abs.yaml", []byte("suffix: .abs.go\n"), 0o644))

	cfg, err := NewLoader(fsys).WithDir("/work/pkg").Load("custom.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, ".custom.go", cfg.Suffix)

	cfg, err = NewLoader(fsys).WithDir("/work/pkg").Load("/etc/abs.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, ".abs.go", cfg.Suffix)
}

func TestLoader_ExplicitFileMissing(t *testing.T) {
	_, err := NewLoader(afero.NewMemMapFs()).Load("custom.yaml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "custom.yaml")
}

func TestLoader_InvalidYAML(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "bad.yaml", []byte("container: [unterminated"), 0o644))

	_, err := NewLoader(fsys).Load("bad.yaml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoader_Precedence(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "gen.yaml", []byte(`
container: pointer
suffix: _file.go
`), 0o644))

	t.Setenv("NULLABLEGEN_SUFFIX", "_env.go")
	t.Setenv("NULLABLEGEN_LOG_JSON", "true")
	t.Setenv("NULLABLEGEN_UNKNOWN", "ignored")

	cfg, err := NewLoader(fsys).Load("gen.yaml", map[string]any{
		"container": ContainerOptional,
	})
	require.NoError(t, err)

	assert.Equal(t, ContainerOptional, cfg.Container, "overrides beat the file")
	assert.Equal(t, "_env.go", cfg.Suffix, "environment beats the file")
	assert.True(t, cfg.Log.JSON)
}

func TestLoader_Validation(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		wantErr   string
	}{
		{"bad container", map[string]any{"container": "box"}, "Container"},
		{"suffix without .go", map[string]any{"suffix": "_nullable.txt"}, "Suffix"},
		{"empty import", map[string]any{"optional_import": ""}, "OptionalImport"},
		{"bad log level", map[string]any{"log.level": "trace"}, "Level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(afero.NewMemMapFs()).Load("", tt.overrides)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
