// internal/dialect/loader_test.go
package dialect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"escpos-service/pkg/escpos"
)

func writeDialectFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoaderLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeDialectFile(t, dir, "custom.yaml", `
name: custom
commands:
  INITIALIZE: "1B 40"
  CUT_FULL: "1B 69"
  TEXT_NORMAL: "1B 21 00"
`)

	registry := NewRegistry(zap.NewNop())
	loader := NewLoader(registry, zap.NewNop())

	require.NoError(t, loader.LoadFile(path))

	d, err := registry.Get("custom")
	require.NoError(t, err)
	assert.Equal(t, "custom", d.Name())
	assert.Equal(t, 3, d.Len())

	cut, err := d.Lookup(escpos.SymbolCutFull)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1B, 0x69}, cut)
}

func TestLoaderLoadFileWithBase(t *testing.T) {
	dir := t.TempDir()
	path := writeDialectFile(t, dir, "star.yaml", `
name: star-line
base: escpos
commands:
  CUT_FULL: "1B 64 02"
  CUT_PARTIAL: "1B 64 03"
`)

	registry := NewRegistry(zap.NewNop())
	loader := NewLoader(registry, zap.NewNop())

	require.NoError(t, loader.LoadFile(path))

	d, err := registry.Get("star-line")
	require.NoError(t, err)

	// Overridden entries take the file's sequences.
	cut, err := d.Lookup(escpos.SymbolCutFull)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1B, 0x64, 0x02}, cut)

	// Everything else is inherited from the base table.
	center, err := d.Lookup(escpos.SymbolAlignCenter)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1B, 0x61, 0x01}, center)
	assert.Equal(t, escpos.Default().Len(), d.Len())
}

func TestLoaderUppercasesSymbolNames(t *testing.T) {
	// Viper lowercases map keys while reading, the loader has to restore
	// the canonical form.
	dir := t.TempDir()
	path := writeDialectFile(t, dir, "lower.yaml", `
name: lower
commands:
  cut_full: "1B 69"
`)

	registry := NewRegistry(zap.NewNop())
	loader := NewLoader(registry, zap.NewNop())

	require.NoError(t, loader.LoadFile(path))

	d, err := registry.Get("lower")
	require.NoError(t, err)
	assert.True(t, d.Has(escpos.SymbolCutFull))
}

func TestLoaderUnknownBaseFails(t *testing.T) {
	dir := t.TempDir()
	path := writeDialectFile(t, dir, "orphan.yaml", `
name: orphan
base: missing
commands:
  CUT_FULL: "1B 69"
`)

	registry := NewRegistry(zap.NewNop())
	loader := NewLoader(registry, zap.NewNop())

	err := loader.LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
	assert.False(t, registry.Has("orphan"))
}

func TestLoaderMissingNameFails(t *testing.T) {
	dir := t.TempDir()
	path := writeDialectFile(t, dir, "noname.yaml", `
commands:
  CUT_FULL: "1B 69"
`)

	registry := NewRegistry(zap.NewNop())
	loader := NewLoader(registry, zap.NewNop())

	err := loader.LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing a name")
}

func TestLoaderInvalidHexFails(t *testing.T) {
	dir := t.TempDir()
	path := writeDialectFile(t, dir, "badhex.yaml", `
name: badhex
commands:
  CUT_FULL: "1B ZZ"
`)

	registry := NewRegistry(zap.NewNop())
	loader := NewLoader(registry, zap.NewNop())

	err := loader.LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid hex byte")
}

func TestLoaderDuplicateNameFails(t *testing.T) {
	dir := t.TempDir()
	path := writeDialectFile(t, dir, "dup.yaml", `
name: escpos
commands:
  CUT_FULL: "1B 69"
`)

	registry := NewRegistry(zap.NewNop())
	loader := NewLoader(registry, zap.NewNop())

	err := loader.LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLoaderLoadPaths(t *testing.T) {
	dir := t.TempDir()
	writeDialectFile(t, dir, "one.yaml", `
name: one
commands:
  CUT_FULL: "1B 69"
`)
	writeDialectFile(t, dir, "two.yml", `
name: two
commands:
  CUT_FULL: "1D 56 00"
`)
	writeDialectFile(t, dir, "notes.txt", "not a dialect")

	registry := NewRegistry(zap.NewNop())
	loader := NewLoader(registry, zap.NewNop())

	loaded, err := loader.LoadPaths([]string{dir, filepath.Join(dir, "does-not-exist")})
	require.NoError(t, err)
	assert.Equal(t, 2, loaded)
	assert.True(t, registry.Has("one"))
	assert.True(t, registry.Has("two"))
}

func TestParseHexSequence(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{name: "single byte", input: "1B", want: []byte{0x1B}},
		{name: "multiple bytes", input: "1D 56 00", want: []byte{0x1D, 0x56, 0x00}},
		{name: "lowercase hex", input: "1b 69", want: []byte{0x1B, 0x69}},
		{name: "extra whitespace", input: "  1B   40  ", want: []byte{0x1B, 0x40}},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "not hex", input: "GG", wantErr: true},
		{name: "too wide", input: "1FF", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexSequence(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatHexSequence(t *testing.T) {
	assert.Equal(t, "1D 56 00", FormatHexSequence([]byte{0x1D, 0x56, 0x00}))

	// Round trip through the parser.
	parsed, err := ParseHexSequence(FormatHexSequence([]byte{0x1B, 0x40}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1B, 0x40}, parsed)
}
