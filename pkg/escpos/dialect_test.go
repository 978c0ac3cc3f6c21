// pkg/escpos/dialect_test.go
package escpos

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDialectValidation(t *testing.T) {
	tests := []struct {
		name     string
		dialect  string
		commands map[Symbol][]byte
		wantErr  bool
	}{
		{"valid", "test", map[Symbol][]byte{SymbolCutFull: {0x1D, 0x56, 0x00}}, false},
		{"missing name", "", map[Symbol][]byte{SymbolCutFull: {0x1D, 0x56, 0x00}}, true},
		{"nil commands", "test", nil, true},
		{"empty commands", "test", map[Symbol][]byte{}, true},
		{"empty symbol", "test", map[Symbol][]byte{Symbol(""): {0x1B}}, true},
		{"empty sequence", "test", map[Symbol][]byte{SymbolCutFull: {}}, true},
		{"nil sequence", "test", map[Symbol][]byte{SymbolCutFull: nil}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialect, err := NewDialect(tt.dialect, tt.commands)
			if tt.wantErr {
				var argErr *InvalidArgumentError
				require.ErrorAs(t, err, &argErr)
				assert.Nil(t, dialect)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.dialect, dialect.Name())
		})
	}
}

func TestMustNewDialectPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNewDialect("", nil)
	})
}

func TestDialectLookup(t *testing.T) {
	dialect := Default()

	sequence, err := dialect.Lookup(SymbolCutFull)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1D, 0x56, 0x00}, sequence)

	missing, err := dialect.Lookup(Symbol("NO_SUCH_COMMAND"))
	assert.Nil(t, missing)
	var opErr *UnknownOpcodeError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, DefaultDialectName, opErr.Dialect)
	assert.Equal(t, Symbol("NO_SUCH_COMMAND"), opErr.Symbol)
}

func TestDialectLookupReturnsCopies(t *testing.T) {
	dialect := Default()

	first, err := dialect.Lookup(SymbolAlignCenter)
	require.NoError(t, err)
	first[2] = 0x7F

	second, err := dialect.Lookup(SymbolAlignCenter)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1B, 0x61, 0x01}, second)
}

func TestDialectCopiesSourceMap(t *testing.T) {
	source := map[Symbol][]byte{
		SymbolCutFull: {0x1D, 0x56, 0x00},
	}
	dialect, err := NewDialect("isolated", source)
	require.NoError(t, err)

	source[SymbolCutFull][0] = 0x00
	source[SymbolCutPartial] = []byte{0x1D, 0x56, 0x01}

	sequence, err := dialect.Lookup(SymbolCutFull)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1D, 0x56, 0x00}, sequence)
	assert.False(t, dialect.Has(SymbolCutPartial))
}

func TestDialectSymbols(t *testing.T) {
	dialect := Default()
	symbols := dialect.Symbols()

	assert.True(t, sort.SliceIsSorted(symbols, func(i, j int) bool { return symbols[i] < symbols[j] }))
	assert.Contains(t, symbols, SymbolTextNormal)
	assert.Contains(t, symbols, SymbolCutPartial)
	assert.Contains(t, symbols, Symbol("BARCODE_EAN13"))
	assert.Contains(t, symbols, Symbol("CODEPAGE_PC858"))
}

func TestDialectCommandsReturnsCopy(t *testing.T) {
	dialect := Default()
	commands := dialect.Commands()
	commands[SymbolCutFull][0] = 0x00
	delete(commands, SymbolCutPartial)

	sequence, err := dialect.Lookup(SymbolCutFull)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1D, 0x56, 0x00}, sequence)
	assert.True(t, dialect.Has(SymbolCutPartial))
}

func TestDialectExtend(t *testing.T) {
	base := Default()
	derived, err := base.Extend("star-line", map[Symbol][]byte{
		SymbolCutFull: {0x1B, 0x64, 0x02},
		"STAR_EJECT":  {0x1B, 0x0C},
	})
	require.NoError(t, err)
	assert.Equal(t, "star-line", derived.Name())

	overridden, err := derived.Lookup(SymbolCutFull)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1B, 0x64, 0x02}, overridden)

	added, err := derived.Lookup(Symbol("STAR_EJECT"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1B, 0x0C}, added)

	// Inherited entries and the base itself stay untouched.
	inherited, err := derived.Lookup(SymbolAlignLeft)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1B, 0x61, 0x00}, inherited)

	original, err := base.Lookup(SymbolCutFull)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1D, 0x56, 0x00}, original)
	assert.False(t, base.Has(Symbol("STAR_EJECT")))
}

func TestDialectExtendRejectsEmptySequence(t *testing.T) {
	_, err := Default().Extend("broken", map[Symbol][]byte{
		SymbolCutFull: {},
	})
	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
}

func TestDefaultDialect(t *testing.T) {
	dialect := Default()
	assert.Equal(t, DefaultDialectName, dialect.Name())
	assert.Same(t, dialect, Default())

	required := []Symbol{
		SymbolInitialize,
		SymbolTextNormal,
		SymbolTextDoubleHeight,
		SymbolTextDoubleWidth,
		SymbolTextQuad,
		SymbolTextUnderlineOn,
		SymbolTextUnderline2On,
		SymbolTextBoldOn,
		SymbolTextInvertOn,
		SymbolAlignLeft,
		SymbolAlignCenter,
		SymbolAlignRight,
		SymbolColorBlack,
		SymbolColorRed,
		SymbolBarcodeTextOff,
		SymbolBarcodeTextAbove,
		SymbolBarcodeTextBelow,
		SymbolBarcodeTextBoth,
		SymbolBarcodeWidth,
		SymbolBarcodeHeight,
		SymbolCodePageSelect,
		SymbolFeedLines,
		SymbolCutFull,
		SymbolCutPartial,
		SymbolDrawerKickPin2,
		SymbolDrawerKickPin5,
	}
	for _, symbol := range required {
		assert.True(t, dialect.Has(symbol), "missing %s", symbol)
	}

	formats := []BarcodeFormat{BarcodeUPCA, BarcodeUPCE, BarcodeEAN13, BarcodeEAN8, BarcodeCODE39, BarcodeITF, BarcodeNW7}
	for _, format := range formats {
		assert.True(t, dialect.Has(barcodeSymbol(format)), "missing barcode format %s", format)
	}

	pages := []CodePage{PagePC437, PageKatakana, PagePC850, PagePC860, PagePC863, PagePC865, PageWPC1252, PagePC866, PagePC852, PagePC858}
	for _, page := range pages {
		assert.True(t, dialect.Has(codePageSymbol(page)), "missing code page %s", page)
	}
}
