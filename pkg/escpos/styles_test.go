// pkg/escpos/styles_test.go
package escpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in   string
		want Style
	}{
		{"normal", StyleNormal},
		{"NORMAL", StyleNormal},
		{"double_height", StyleDoubleHeight},
		{"double-height", StyleDoubleHeight},
		{"Double-Width", StyleDoubleWidth},
		{"quad", StyleQuad},
		{"big", StyleQuad},
		{"title", StyleQuad},
		{"header", StyleQuad},
		{"underline", StyleUnderline},
		{"u", StyleUnderline},
		{"underline2", StyleUnderline2},
		{"u2", StyleUnderline2},
		{"bold", StyleBold},
		{"b", StyleBold},
		{"  bold  ", StyleBold},
		{"inverted", StyleInverted},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStyleUnknown(t *testing.T) {
	for _, in := range []string{"", "shiny", "bold2", "quadd"} {
		_, err := ParseStyle(in)
		var argErr *InvalidArgumentError
		require.ErrorAs(t, err, &argErr, "input %q", in)
		assert.Equal(t, "style", argErr.Field)
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		in   string
		want Alignment
	}{
		{"left", AlignLeft},
		{"LEFT", AlignLeft},
		{"center", AlignCenter},
		{"right", AlignRight},
	}
	for _, tt := range tests {
		got, err := ParseAlignment(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseAlignment("justified")
	var argErr *InvalidArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"black", ColorBlack},
		{"default", ColorBlack},
		{"color_black", ColorBlack},
		{"red", ColorRed},
		{"alt", ColorRed},
		{"alt_color", ColorRed},
		{"color_red", ColorRed},
		{"RED", ColorRed},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseColor("blue")
	var argErr *InvalidArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func TestParseTextPosition(t *testing.T) {
	tests := []struct {
		in   string
		want TextPosition
	}{
		{"off", TextPositionOff},
		{"above", TextPositionAbove},
		{"below", TextPositionBelow},
		{"both", TextPositionBoth},
		{"BELOW", TextPositionBelow},
	}
	for _, tt := range tests {
		got, err := ParseTextPosition(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseTextPosition("under")
	var argErr *InvalidArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func TestParseBarcodeFormat(t *testing.T) {
	// Formats are open identifiers: parsing normalizes, never validates.
	assert.Equal(t, BarcodeEAN13, ParseBarcodeFormat("ean13"))
	assert.Equal(t, BarcodeUPCA, ParseBarcodeFormat("upc-a"))
	assert.Equal(t, BarcodeCODE39, ParseBarcodeFormat(" code39 "))
	assert.Equal(t, BarcodeFormat("MAXICODE"), ParseBarcodeFormat("MaxiCode"))
}

func TestParseCodePage(t *testing.T) {
	assert.Equal(t, PagePC850, ParseCodePage("pc850"))
	assert.Equal(t, PageWPC1252, ParseCodePage(" wpc1252 "))
	assert.Equal(t, CodePage("PC999"), ParseCodePage("pc999"))
}

func TestParseDrawerPin(t *testing.T) {
	pin, err := ParseDrawerPin(2)
	require.NoError(t, err)
	assert.Equal(t, DrawerPin2, pin)

	pin, err = ParseDrawerPin(5)
	require.NoError(t, err)
	assert.Equal(t, DrawerPin5, pin)

	_, err = ParseDrawerPin(3)
	var argErr *InvalidArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want Policy
	}{
		{"fail", PolicyFail},
		{"replace", PolicyReplace},
		{"ignore", PolicyIgnore},
		{"IGNORE", PolicyIgnore},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParsePolicy("skip")
	var argErr *InvalidArgumentError
	assert.ErrorAs(t, err, &argErr)
}
