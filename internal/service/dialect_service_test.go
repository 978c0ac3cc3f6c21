// internal/service/dialect_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"escpos-service/internal/dialect"
	"escpos-service/pkg/escpos"
)

func newTestDialectService(t *testing.T) (*DialectService, *dialect.Registry) {
	t.Helper()
	registry := dialect.NewRegistry(zap.NewNop())
	return NewDialectService(registry, zap.NewNop()), registry
}

func TestListDialects(t *testing.T) {
	svc, _ := newTestDialectService(t)

	infos := svc.ListDialects()
	require.Len(t, infos, 1)
	assert.Equal(t, escpos.DefaultDialectName, infos[0].Name)
	assert.True(t, infos[0].Builtin)
	assert.Equal(t, escpos.Default().Len(), infos[0].Symbols)
}

func TestGetDialect(t *testing.T) {
	svc, _ := newTestDialectService(t)

	detail, err := svc.GetDialect(escpos.DefaultDialectName)
	require.NoError(t, err)

	assert.Equal(t, escpos.DefaultDialectName, detail.Name)
	assert.True(t, detail.Builtin)
	assert.Equal(t, "1B 40", detail.Commands["INITIALIZE"])
	assert.Equal(t, "1D 56 00", detail.Commands["CUT_FULL"])

	_, err = svc.GetDialect("citizen")
	require.Error(t, err)
}

func TestGetSymbols(t *testing.T) {
	svc, _ := newTestDialectService(t)

	symbols, err := svc.GetSymbols(escpos.DefaultDialectName)
	require.NoError(t, err)

	assert.Len(t, symbols, escpos.Default().Len())
	assert.Contains(t, symbols, "INITIALIZE")
	assert.Contains(t, symbols, "BARCODE_EAN13")
	assert.IsIncreasing(t, symbols)
}

func TestRegisterDialect(t *testing.T) {
	svc, registry := newTestDialectService(t)

	info, err := svc.RegisterDialect(&RegisterDialectRequest{
		Name: "star-line",
		Base: escpos.DefaultDialectName,
		Commands: map[string]string{
			"CUT_FULL":    "1B 64 02",
			"cut_partial": "1B 64 03",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "star-line", info.Name)
	assert.False(t, info.Builtin)
	assert.Equal(t, escpos.Default().Len(), info.Symbols)

	table, err := registry.Get("star-line")
	require.NoError(t, err)

	cut, err := table.Lookup(escpos.SymbolCutFull)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1B, 0x64, 0x02}, cut)

	// Lower case symbol names are accepted and canonicalized.
	partial, err := table.Lookup(escpos.SymbolCutPartial)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1B, 0x64, 0x03}, partial)
}

func TestRegisterDialectStandalone(t *testing.T) {
	svc, registry := newTestDialectService(t)

	info, err := svc.RegisterDialect(&RegisterDialectRequest{
		Name: "minimal",
		Commands: map[string]string{
			"CUT_FULL": "1B 69",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, info.Symbols)

	table, err := registry.Get("minimal")
	require.NoError(t, err)
	assert.False(t, table.Has(escpos.SymbolInitialize))
}

func TestRegisterDialectFailures(t *testing.T) {
	svc, _ := newTestDialectService(t)

	tests := []struct {
		name string
		req  *RegisterDialectRequest
	}{
		{
			name: "duplicate name",
			req: &RegisterDialectRequest{
				Name:     escpos.DefaultDialectName,
				Commands: map[string]string{"CUT_FULL": "1B 69"},
			},
		},
		{
			name: "unknown base",
			req: &RegisterDialectRequest{
				Name:     "orphan",
				Base:     "missing",
				Commands: map[string]string{"CUT_FULL": "1B 69"},
			},
		},
		{
			name: "invalid hex",
			req: &RegisterDialectRequest{
				Name:     "badhex",
				Commands: map[string]string{"CUT_FULL": "1B ZZ"},
			},
		},
		{
			name: "empty commands",
			req: &RegisterDialectRequest{
				Name:     "empty",
				Commands: map[string]string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterDialect(tt.req)
			require.Error(t, err)
		})
	}
}
