// pkg/escpos/commands.go
package escpos

// Symbol identifies a command in a dialect table
type Symbol string

// Symbols of the standard ESC/POS command set
const (
	// Basic commands
	SymbolInitialize Symbol = "INITIALIZE"

	// Text styles
	SymbolTextNormal       Symbol = "TEXT_NORMAL"
	SymbolTextDoubleHeight Symbol = "TEXT_DOUBLE_HEIGHT"
	SymbolTextDoubleWidth  Symbol = "TEXT_DOUBLE_WIDTH"
	SymbolTextQuad         Symbol = "TEXT_QUAD"
	SymbolTextUnderlineOn  Symbol = "TEXT_UNDERLINE_ON"
	SymbolTextUnderline2On Symbol = "TEXT_UNDERLINE2_ON"
	SymbolTextBoldOn       Symbol = "TEXT_BOLD_ON"
	SymbolTextInvertOn     Symbol = "TEXT_INVERT_ON"

	// Text alignment
	SymbolAlignLeft   Symbol = "ALIGN_LEFT"
	SymbolAlignCenter Symbol = "ALIGN_CENTER"
	SymbolAlignRight  Symbol = "ALIGN_RIGHT"

	// Print color
	SymbolColorBlack Symbol = "COLOR_BLACK"
	SymbolColorRed   Symbol = "COLOR_RED"

	// Barcodes
	SymbolBarcodeTextOff   Symbol = "BARCODE_TEXT_OFF"
	SymbolBarcodeTextAbove Symbol = "BARCODE_TEXT_ABOVE"
	SymbolBarcodeTextBelow Symbol = "BARCODE_TEXT_BELOW"
	SymbolBarcodeTextBoth  Symbol = "BARCODE_TEXT_BOTH"
	SymbolBarcodeWidth     Symbol = "BARCODE_WIDTH"
	SymbolBarcodeHeight    Symbol = "BARCODE_HEIGHT"

	// Code pages
	SymbolCodePageSelect Symbol = "CODEPAGE_SELECT"

	// Paper handling
	SymbolFeedLines  Symbol = "FEED_LINES"
	SymbolCutFull    Symbol = "CUT_FULL"
	SymbolCutPartial Symbol = "CUT_PARTIAL"

	// Cash drawer
	SymbolDrawerKickPin2 Symbol = "DRAWER_KICK_PIN2"
	SymbolDrawerKickPin5 Symbol = "DRAWER_KICK_PIN5"
)

// barcodeSymbol builds the table symbol for a barcode format, e.g. BARCODE_EAN13
func barcodeSymbol(format BarcodeFormat) Symbol {
	return Symbol("BARCODE_" + string(format))
}

// codePageSymbol builds the table symbol for a code page identifier, e.g. CODEPAGE_PC850
func codePageSymbol(page CodePage) Symbol {
	return Symbol("CODEPAGE_" + string(page))
}

// DefaultDialectName is the name of the built-in command table
const DefaultDialectName = "escpos"

// defaultCommands contains the standard ESC/POS command definitions
var defaultCommands = map[Symbol][]byte{
	// Basic commands
	SymbolInitialize: {0x1B, 0x40}, // ESC @

	// Text styles. TEXT_NORMAL doubles as the style reset.
	SymbolTextNormal:       {0x1B, 0x21, 0x00}, // ESC ! 0
	SymbolTextDoubleHeight: {0x1B, 0x21, 0x10}, // ESC ! 16
	SymbolTextDoubleWidth:  {0x1B, 0x21, 0x20}, // ESC ! 32
	SymbolTextQuad:         {0x1B, 0x21, 0x30}, // ESC ! 48
	SymbolTextUnderlineOn:  {0x1B, 0x2D, 0x01}, // ESC - 1
	SymbolTextUnderline2On: {0x1B, 0x2D, 0x02}, // ESC - 2
	SymbolTextBoldOn:       {0x1B, 0x45, 0x01}, // ESC E 1
	SymbolTextInvertOn:     {0x1D, 0x42, 0x01}, // GS B 1

	// Text alignment
	SymbolAlignLeft:   {0x1B, 0x61, 0x00}, // ESC a 0
	SymbolAlignCenter: {0x1B, 0x61, 0x01}, // ESC a 1
	SymbolAlignRight:  {0x1B, 0x61, 0x02}, // ESC a 2

	// Print color
	SymbolColorBlack: {0x1B, 0x72, 0x00}, // ESC r 0
	SymbolColorRed:   {0x1B, 0x72, 0x01}, // ESC r 1

	// Barcodes
	SymbolBarcodeTextOff:   {0x1D, 0x48, 0x00}, // GS H 0
	SymbolBarcodeTextAbove: {0x1D, 0x48, 0x01}, // GS H 1
	SymbolBarcodeTextBelow: {0x1D, 0x48, 0x02}, // GS H 2
	SymbolBarcodeTextBoth:  {0x1D, 0x48, 0x03}, // GS H 3
	SymbolBarcodeWidth:     {0x1D, 0x77},       // GS w + width byte
	SymbolBarcodeHeight:    {0x1D, 0x68},       // GS h + height byte

	// Barcode formats
	barcodeSymbol(BarcodeUPCA):   {0x1D, 0x6B, 0x00}, // GS k 0
	barcodeSymbol(BarcodeUPCE):   {0x1D, 0x6B, 0x01}, // GS k 1
	barcodeSymbol(BarcodeEAN13):  {0x1D, 0x6B, 0x02}, // GS k 2
	barcodeSymbol(BarcodeEAN8):   {0x1D, 0x6B, 0x03}, // GS k 3
	barcodeSymbol(BarcodeCODE39): {0x1D, 0x6B, 0x04}, // GS k 4
	barcodeSymbol(BarcodeITF):    {0x1D, 0x6B, 0x05}, // GS k 5
	barcodeSymbol(BarcodeNW7):    {0x1D, 0x6B, 0x06}, // GS k 6

	// Code pages. CODEPAGE_SELECT is the prefix, the per-page entries
	// are the single identifier byte the printer expects after it.
	SymbolCodePageSelect:          {0x1B, 0x74}, // ESC t + page byte
	codePageSymbol(PagePC437):     {0x00},
	codePageSymbol(PageKatakana):  {0x01},
	codePageSymbol(PagePC850):     {0x02},
	codePageSymbol(PagePC860):     {0x03},
	codePageSymbol(PagePC863):     {0x04},
	codePageSymbol(PagePC865):     {0x05},
	codePageSymbol(PageWPC1252):   {0x10},
	codePageSymbol(PagePC866):     {0x11},
	codePageSymbol(PagePC852):     {0x12},
	codePageSymbol(PagePC858):     {0x13},

	// Paper handling
	SymbolFeedLines:  {0x1B, 0x64},       // ESC d + line count byte
	SymbolCutFull:    {0x1D, 0x56, 0x00}, // GS V 0
	SymbolCutPartial: {0x1D, 0x56, 0x01}, // GS V 1

	// Cash drawer
	SymbolDrawerKickPin2: {0x1B, 0x70, 0x00, 0x19, 0x19}, // ESC p 0 25 25
	SymbolDrawerKickPin5: {0x1B, 0x70, 0x01, 0x19, 0x19}, // ESC p 1 25 25
}

var defaultDialect = MustNewDialect(DefaultDialectName, defaultCommands)

// Default returns the built-in ESC/POS command table
func Default() *Dialect {
	return defaultDialect
}
