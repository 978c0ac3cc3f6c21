// pkg/escpos/encoder_test.go
package escpos

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var styleSequenceTests = []struct {
	name  string
	style Style
	want  string
}{
	{"normal", StyleNormal, "\x1b!\x00HELLO\x1b!\x00"},
	{"double height", StyleDoubleHeight, "\x1b!\x10HELLO\x1b!\x00"},
	{"double width", StyleDoubleWidth, "\x1b!\x20HELLO\x1b!\x00"},
	{"quad", StyleQuad, "\x1b!\x30HELLO\x1b!\x00"},
	{"underline", StyleUnderline, "\x1b-\x01HELLO\x1b!\x00"},
	{"underline2", StyleUnderline2, "\x1b-\x02HELLO\x1b!\x00"},
	{"bold", StyleBold, "\x1bE\x01HELLO\x1b!\x00"},
	{"inverted", StyleInverted, "\x1dB\x01HELLO\x1b!\x00"},
}

func TestEncoderFormatText(t *testing.T) {
	enc := NewEncoder(nil, nil)
	for _, tt := range styleSequenceTests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := enc.FormatText("HELLO", tt.style)
			require.NoError(t, err)
			assert.Equal(t, []byte(tt.want), got)
		})
	}
}

func TestEncoderFormatTextUnknownStyle(t *testing.T) {
	enc := NewEncoder(nil, nil)
	got, err := enc.FormatText("HELLO", Style("SPARKLE"))
	assert.Nil(t, got)

	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "style", argErr.Field)
}

func TestEncoderStyleHelpers(t *testing.T) {
	enc := NewEncoder(nil, nil)
	helpers := []struct {
		name  string
		style Style
		call  func(*Encoder, string) ([]byte, error)
	}{
		{"Text", StyleNormal, (*Encoder).Text},
		{"DoubleHeight", StyleDoubleHeight, (*Encoder).DoubleHeight},
		{"DoubleWidth", StyleDoubleWidth, (*Encoder).DoubleWidth},
		{"QuadText", StyleQuad, (*Encoder).QuadText},
		{"Underline", StyleUnderline, (*Encoder).Underline},
		{"Underline2", StyleUnderline2, (*Encoder).Underline2},
		{"Bold", StyleBold, (*Encoder).Bold},
		{"Inverted", StyleInverted, (*Encoder).Inverted},
	}
	for _, tt := range helpers {
		t.Run(tt.name, func(t *testing.T) {
			want, err := enc.FormatText("receipt", tt.style)
			require.NoError(t, err)
			got, err := tt.call(enc, "receipt")
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEncoderAlignText(t *testing.T) {
	enc := NewEncoder(nil, nil)
	tests := []struct {
		name      string
		alignment Alignment
		payload   string
		want      string
	}{
		{"left", AlignLeft, "a", "\x1ba\x00a\x1ba\x00"},
		{"center", AlignCenter, "a", "\x1ba\x01a\x1ba\x00"},
		{"right", AlignRight, "a", "\x1ba\x02a\x1ba\x00"},
		{"empty payload", AlignCenter, "", "\x1ba\x01\x1ba\x00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := enc.AlignText(tt.payload, tt.alignment)
			require.NoError(t, err)
			assert.Equal(t, []byte(tt.want), got)
		})
	}

	_, err := enc.AlignText("a", Alignment("DIAGONAL"))
	var argErr *InvalidArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func TestEncoderAlignHelpers(t *testing.T) {
	enc := NewEncoder(nil, nil)

	left, err := enc.Left("x")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1ba\x00x\x1ba\x00"), left)

	center, err := enc.Center("x")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1ba\x01x\x1ba\x00"), center)

	right, err := enc.Right("x")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1ba\x02x\x1ba\x00"), right)
}

func TestEncoderColorText(t *testing.T) {
	enc := NewEncoder(nil, nil)

	red, err := enc.ColorText("TOTAL", ColorRed)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1br\x01TOTAL\x1br\x00"), red)

	black, err := enc.ColorText("TOTAL", ColorBlack)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1br\x00TOTAL\x1br\x00"), black)

	viaHelper, err := enc.Red("TOTAL")
	require.NoError(t, err)
	assert.Equal(t, red, viaHelper)

	viaBlack, err := enc.Black("TOTAL")
	require.NoError(t, err)
	assert.Equal(t, black, viaBlack)

	_, err = enc.ColorText("TOTAL", Color("BLUE"))
	var argErr *InvalidArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func TestEncoderBarcode(t *testing.T) {
	enc := NewEncoder(nil, nil)

	got, err := enc.Barcode("4006381333931", BarcodeEAN13, BarcodeOptions{
		Height:       50,
		Width:        3,
		TextPosition: TextPositionBelow,
	})
	require.NoError(t, err)
	want := "\x1dH\x02" + "\x1dw\x03" + "\x1dh\x32" + "\x1dk\x02" + "4006381333931"
	assert.Equal(t, []byte(want), got)
}

func TestEncoderBarcodeArgumentRanges(t *testing.T) {
	enc := NewEncoder(nil, nil)
	tests := []struct {
		name    string
		opts    BarcodeOptions
		wantErr bool
	}{
		{"height lower bound", BarcodeOptions{Height: 1, Width: 3, TextPosition: TextPositionOff}, false},
		{"height upper bound", BarcodeOptions{Height: 255, Width: 3, TextPosition: TextPositionOff}, false},
		{"height below range", BarcodeOptions{Height: 0, Width: 3, TextPosition: TextPositionOff}, true},
		{"height above range", BarcodeOptions{Height: 256, Width: 3, TextPosition: TextPositionOff}, true},
		{"width lower bound", BarcodeOptions{Height: 50, Width: 2, TextPosition: TextPositionOff}, false},
		{"width upper bound", BarcodeOptions{Height: 50, Width: 6, TextPosition: TextPositionOff}, false},
		{"width below range", BarcodeOptions{Height: 50, Width: 1, TextPosition: TextPositionOff}, true},
		{"width above range", BarcodeOptions{Height: 50, Width: 7, TextPosition: TextPositionOff}, true},
		{"missing text position", BarcodeOptions{Height: 50, Width: 3}, true},
		{"bad text position", BarcodeOptions{Height: 50, Width: 3, TextPosition: TextPosition("SIDEWAYS")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := enc.Barcode("12345678", BarcodeCODE39, tt.opts)
			if tt.wantErr {
				var argErr *InvalidArgumentError
				require.ErrorAs(t, err, &argErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got)
		})
	}
}

func TestEncoderBarcodeBoundaryBytes(t *testing.T) {
	enc := NewEncoder(nil, nil)

	low, err := enc.Barcode("123", BarcodeITF, BarcodeOptions{Height: 1, Width: 2, TextPosition: TextPositionOff})
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1dH\x00\x1dw\x02\x1dh\x01\x1dk\x05123"), low)

	high, err := enc.Barcode("123", BarcodeITF, BarcodeOptions{Height: 255, Width: 6, TextPosition: TextPositionBoth})
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1dH\x03\x1dw\x06\x1dh\xff\x1dk\x05123"), high)
}

func TestEncoderBarcodeUnknownFormat(t *testing.T) {
	enc := NewEncoder(nil, nil)
	got, err := enc.Barcode("12345678", BarcodeFormat("MAXICODE"), DefaultBarcodeOptions())
	assert.Nil(t, got)

	var opErr *UnknownOpcodeError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, Symbol("BARCODE_MAXICODE"), opErr.Symbol)
	assert.Equal(t, DefaultDialectName, opErr.Dialect)

	var argErr *InvalidArgumentError
	assert.False(t, errors.As(err, &argErr))
}

func TestEncoderBarcodeEmptyData(t *testing.T) {
	enc := NewEncoder(nil, nil)
	_, err := enc.Barcode("", BarcodeEAN8, DefaultBarcodeOptions())
	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "data", argErr.Field)
}

func TestEncoderCuts(t *testing.T) {
	enc := NewEncoder(nil, nil)

	full, err := enc.Cut()
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1dV\x00"), full)

	partial, err := enc.PartialCut()
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1dV\x01"), partial)

	assert.NotEmpty(t, full)
	assert.NotEmpty(t, partial)
	assert.NotEqual(t, full, partial)
}

func TestEncoderInitialize(t *testing.T) {
	enc := NewEncoder(nil, nil)
	got, err := enc.Initialize()
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1b@"), got)
}

func TestEncoderFeed(t *testing.T) {
	enc := NewEncoder(nil, nil)

	got, err := enc.Feed(1)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1bd\x01"), got)

	got, err = enc.Feed(255)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1bd\xff"), got)

	for _, lines := range []int{0, -1, 256} {
		_, err := enc.Feed(lines)
		var argErr *InvalidArgumentError
		assert.ErrorAs(t, err, &argErr, "lines=%d", lines)
	}
}

func TestEncoderOpenDrawer(t *testing.T) {
	enc := NewEncoder(nil, nil)

	pin2, err := enc.OpenDrawer(DrawerPin2)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1bp\x00\x19\x19"), pin2)

	pin5, err := enc.OpenDrawer(DrawerPin5)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1bp\x01\x19\x19"), pin5)

	_, err = enc.OpenDrawer(DrawerPin(3))
	var argErr *InvalidArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func TestEncoderSelectCodePage(t *testing.T) {
	enc := NewEncoder(nil, nil)
	tests := []struct {
		page CodePage
		want string
	}{
		{PagePC437, "\x1bt\x00"},
		{PageKatakana, "\x1bt\x01"},
		{PagePC850, "\x1bt\x02"},
		{PageWPC1252, "\x1bt\x10"},
		{PagePC852, "\x1bt\x12"},
		{PagePC858, "\x1bt\x13"},
	}
	for _, tt := range tests {
		t.Run(string(tt.page), func(t *testing.T) {
			got, err := enc.SelectCodePage(tt.page)
			require.NoError(t, err)
			assert.Equal(t, []byte(tt.want), got)
		})
	}
}

func TestEncoderSelectCodePageUnknown(t *testing.T) {
	enc := NewEncoder(nil, nil)
	got, err := enc.SelectCodePage(CodePage("PC999"))
	assert.Nil(t, got)

	var opErr *UnknownOpcodeError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, Symbol("CODEPAGE_PC999"), opErr.Symbol)
}

func TestEncoderDeterminism(t *testing.T) {
	enc := NewEncoder(nil, nil)

	first, err := enc.Bold("same input")
	require.NoError(t, err)
	second, err := enc.Bold("same input")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Mutating a returned sequence must not leak into later calls.
	first[0] = 0x00
	third, err := enc.Bold("same input")
	require.NoError(t, err)
	assert.Equal(t, second, third)
}

func TestEncoderCustomDialect(t *testing.T) {
	// A table without TEXT_NORMAL cannot frame any styled payload.
	partial := MustNewDialect("partial", map[Symbol][]byte{
		SymbolTextBoldOn: {0x1B, 0x45, 0x01},
	})
	enc := NewEncoder(partial, nil)

	got, err := enc.Bold("x")
	assert.Nil(t, got)
	var opErr *UnknownOpcodeError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, SymbolTextNormal, opErr.Symbol)
	assert.Equal(t, "partial", opErr.Dialect)

	// Overridden opcodes flow through unchanged.
	custom, err := Default().Extend("custom-cut", map[Symbol][]byte{
		SymbolCutFull: {0x1B, 0x69},
	})
	require.NoError(t, err)
	cut, err := NewEncoder(custom, nil).Cut()
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1bi"), cut)
}

type stubCodec struct {
	text    string
	charset CodePage
	opts    EncodeOptions
	result  []byte
	err     error
}

func (s *stubCodec) Reencode(text string, charset CodePage, opts EncodeOptions) ([]byte, error) {
	s.text = text
	s.charset = charset
	s.opts = opts
	return s.result, s.err
}

func TestEncoderEncodeDelegation(t *testing.T) {
	stub := &stubCodec{result: []byte{0x48, 0x82}}
	enc := NewEncoder(nil, stub)

	opts := EncodeOptions{UndefinedPolicy: PolicyReplace}
	got, err := enc.Encode("Hé", PagePC437, opts)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x48, 0x82}, got)
	assert.Equal(t, "Hé", stub.text)
	assert.Equal(t, PagePC437, stub.charset)
	assert.Equal(t, opts, stub.opts)
}

func TestEncoderEncodeCodecFailure(t *testing.T) {
	stub := &stubCodec{err: &EncodingError{Charset: PagePC437, Reason: "character \"€\" has no PC437 encoding"}}
	enc := NewEncoder(nil, stub)

	got, err := enc.Encode("€", PagePC437, EncodeOptions{})
	assert.Nil(t, got)
	var encErr *EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, PagePC437, encErr.Charset)
}

func TestEncoderEncodeWithoutCodec(t *testing.T) {
	enc := NewEncoder(nil, nil)
	_, err := enc.Encode("x", PagePC437, EncodeOptions{})
	var encErr *EncodingError
	require.ErrorAs(t, err, &encErr)
}
