// pkg/escpos/styles.go
package escpos

import (
	"strings"
)

// Style selects a text style
type Style string

// Supported text styles
const (
	StyleNormal       Style = "NORMAL"
	StyleDoubleHeight Style = "DOUBLE_HEIGHT"
	StyleDoubleWidth  Style = "DOUBLE_WIDTH"
	StyleQuad         Style = "QUAD"
	StyleUnderline    Style = "UNDERLINE"
	StyleUnderline2   Style = "UNDERLINE2"
	StyleBold         Style = "BOLD"
	StyleInverted     Style = "INVERTED"
)

// Alignment selects horizontal text alignment
type Alignment string

// Supported alignments
const (
	AlignLeft   Alignment = "LEFT"
	AlignCenter Alignment = "CENTER"
	AlignRight  Alignment = "RIGHT"
)

// Color selects the print color
type Color string

// Supported print colors
const (
	ColorBlack Color = "BLACK"
	ColorRed   Color = "RED"
)

// TextPosition selects where human readable text prints relative to a barcode
type TextPosition string

// Supported barcode text positions
const (
	TextPositionOff   TextPosition = "OFF"
	TextPositionAbove TextPosition = "ABOVE"
	TextPositionBelow TextPosition = "BELOW"
	TextPositionBoth  TextPosition = "BOTH"
)

// BarcodeFormat identifies a barcode symbology. Formats are open: whether a
// format is usable depends solely on the dialect table carrying an entry
// for it, so new symbologies can arrive via configuration.
type BarcodeFormat string

// Barcode formats of the standard table
const (
	BarcodeUPCA   BarcodeFormat = "UPC_A"
	BarcodeUPCE   BarcodeFormat = "UPC_E"
	BarcodeEAN13  BarcodeFormat = "EAN13"
	BarcodeEAN8   BarcodeFormat = "EAN8"
	BarcodeCODE39 BarcodeFormat = "CODE39"
	BarcodeITF    BarcodeFormat = "ITF"
	BarcodeNW7    BarcodeFormat = "NW7"
)

// CodePage identifies a printer code page. Like barcode formats, code pages
// are open identifiers resolved through the dialect table.
type CodePage string

// Code pages of the standard table
const (
	PagePC437    CodePage = "PC437"
	PageKatakana CodePage = "KATAKANA"
	PagePC850    CodePage = "PC850"
	PagePC860    CodePage = "PC860"
	PagePC863    CodePage = "PC863"
	PagePC865    CodePage = "PC865"
	PageWPC1252  CodePage = "WPC1252"
	PagePC866    CodePage = "PC866"
	PagePC852    CodePage = "PC852"
	PagePC858    CodePage = "PC858"
)

// DrawerPin selects the cash drawer kick pin
type DrawerPin int

// Supported drawer pins
const (
	DrawerPin2 DrawerPin = 2
	DrawerPin5 DrawerPin = 5
)

// Policy controls how the codec handles characters it cannot carry over
type Policy string

// Supported re-encoding policies
const (
	PolicyFail    Policy = "FAIL"
	PolicyReplace Policy = "REPLACE"
	PolicyIgnore  Policy = "IGNORE"
)

// styleSymbols maps each style to its turn-on table symbol
var styleSymbols = map[Style]Symbol{
	StyleNormal:       SymbolTextNormal,
	StyleDoubleHeight: SymbolTextDoubleHeight,
	StyleDoubleWidth:  SymbolTextDoubleWidth,
	StyleQuad:         SymbolTextQuad,
	StyleUnderline:    SymbolTextUnderlineOn,
	StyleUnderline2:   SymbolTextUnderline2On,
	StyleBold:         SymbolTextBoldOn,
	StyleInverted:     SymbolTextInvertOn,
}

// alignmentSymbols maps each alignment to its table symbol
var alignmentSymbols = map[Alignment]Symbol{
	AlignLeft:   SymbolAlignLeft,
	AlignCenter: SymbolAlignCenter,
	AlignRight:  SymbolAlignRight,
}

// colorSymbols maps each color to its table symbol
var colorSymbols = map[Color]Symbol{
	ColorBlack: SymbolColorBlack,
	ColorRed:   SymbolColorRed,
}

// textPositionSymbols maps each barcode text position to its table symbol
var textPositionSymbols = map[TextPosition]Symbol{
	TextPositionOff:   SymbolBarcodeTextOff,
	TextPositionAbove: SymbolBarcodeTextAbove,
	TextPositionBelow: SymbolBarcodeTextBelow,
	TextPositionBoth:  SymbolBarcodeTextBoth,
}

// normalizeName lowercases a request-level name and unifies separators
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "-", "_")
}

// ParseStyle resolves a request-level style name, including the historic
// aliases, to its canonical Style. Aliases exist only here; past this
// point a style is exactly one of the Style constants.
func ParseStyle(name string) (Style, error) {
	switch normalizeName(name) {
	case "normal":
		return StyleNormal, nil
	case "double_height":
		return StyleDoubleHeight, nil
	case "double_width":
		return StyleDoubleWidth, nil
	case "quad", "big", "title", "header":
		return StyleQuad, nil
	case "underline", "u":
		return StyleUnderline, nil
	case "underline2", "u2":
		return StyleUnderline2, nil
	case "bold", "b":
		return StyleBold, nil
	case "inverted":
		return StyleInverted, nil
	default:
		return "", invalidArgument("style", "unknown style %q", name)
	}
}

// ParseAlignment resolves a request-level alignment name
func ParseAlignment(name string) (Alignment, error) {
	switch normalizeName(name) {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return "", invalidArgument("alignment", "unknown alignment %q", name)
	}
}

// ParseColor resolves a request-level color name. The alternate names all
// collapse onto the two colors the protocol knows.
func ParseColor(name string) (Color, error) {
	switch normalizeName(name) {
	case "black", "default", "color_black":
		return ColorBlack, nil
	case "red", "alt", "alt_color", "color_red":
		return ColorRed, nil
	default:
		return "", invalidArgument("color", "unknown color %q", name)
	}
}

// ParseTextPosition resolves a request-level barcode text position name
func ParseTextPosition(name string) (TextPosition, error) {
	switch normalizeName(name) {
	case "off":
		return TextPositionOff, nil
	case "above":
		return TextPositionAbove, nil
	case "below":
		return TextPositionBelow, nil
	case "both":
		return TextPositionBoth, nil
	default:
		return "", invalidArgument("text_position", "unknown text position %q", name)
	}
}

// ParseBarcodeFormat normalizes a request-level format name. It performs no
// validation: formats are open identifiers and unknown ones surface as a
// table lookup failure, not an argument error.
func ParseBarcodeFormat(name string) BarcodeFormat {
	return BarcodeFormat(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(name)), "-", "_"))
}

// ParseCodePage normalizes a request-level code page name. Open identifier,
// same contract as ParseBarcodeFormat.
func ParseCodePage(name string) CodePage {
	return CodePage(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(name)), "-", "_"))
}

// ParseDrawerPin resolves a drawer kick pin number
func ParseDrawerPin(pin int) (DrawerPin, error) {
	switch pin {
	case 2:
		return DrawerPin2, nil
	case 5:
		return DrawerPin5, nil
	default:
		return 0, invalidArgument("pin", "unsupported drawer pin %d, must be 2 or 5", pin)
	}
}

// ParsePolicy resolves a request-level re-encoding policy name
func ParsePolicy(name string) (Policy, error) {
	switch normalizeName(name) {
	case "fail":
		return PolicyFail, nil
	case "replace":
		return PolicyReplace, nil
	case "ignore":
		return PolicyIgnore, nil
	default:
		return "", invalidArgument("policy", "unknown policy %q", name)
	}
}
