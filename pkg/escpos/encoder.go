// pkg/escpos/encoder.go
package escpos

// Codec re-encodes UTF-8 text into a target code page byte stream.
// Implementations live outside this package; the encoder only routes to one.
type Codec interface {
	Reencode(text string, charset CodePage, opts EncodeOptions) ([]byte, error)
}

// EncodeOptions selects the per-character policies for Encoder.Encode. The
// zero value fails on the first character that cannot be carried over.
type EncodeOptions struct {
	// InvalidPolicy handles input bytes that are not valid UTF-8
	InvalidPolicy Policy
	// UndefinedPolicy handles runes the target code page has no byte for
	UndefinedPolicy Policy
}

// BarcodeOptions carries the numeric and layout arguments of a barcode
type BarcodeOptions struct {
	Height       int
	Width        int
	TextPosition TextPosition
}

// DefaultBarcodeOptions returns the barcode arguments used when a caller
// does not specify any
func DefaultBarcodeOptions() BarcodeOptions {
	return BarcodeOptions{Height: 50, Width: 3, TextPosition: TextPositionOff}
}

// Encoder turns semantic print requests into ESC/POS byte sequences using
// one dialect table and one codec. It holds no other state: every method
// is a pure function of its arguments and the immutable table, so an
// Encoder is safe for concurrent use.
type Encoder struct {
	dialect *Dialect
	codec   Codec
}

// NewEncoder builds an encoder over a dialect. A nil dialect selects the
// built-in table. The codec may be nil when Encode is never used.
func NewEncoder(dialect *Dialect, codec Codec) *Encoder {
	if dialect == nil {
		dialect = Default()
	}
	return &Encoder{dialect: dialect, codec: codec}
}

// Dialect returns the table this encoder reads from
func (e *Encoder) Dialect() *Dialect {
	return e.dialect
}

// wrap assembles turn-on opcode + payload + reset opcode
func (e *Encoder) wrap(on Symbol, payload string, reset Symbol) ([]byte, error) {
	onSeq, err := e.dialect.Lookup(on)
	if err != nil {
		return nil, err
	}
	resetSeq, err := e.dialect.Lookup(reset)
	if err != nil {
		return nil, err
	}
	sequence := make([]byte, 0, len(onSeq)+len(payload)+len(resetSeq))
	sequence = append(sequence, onSeq...)
	sequence = append(sequence, payload...)
	sequence = append(sequence, resetSeq...)
	return sequence, nil
}

// FormatText renders a payload in a style: style opcode, payload bytes,
// unconditional TEXT_NORMAL trailer. The trailer resets every style, so
// nesting FormatText outputs does not compose styles; each fragment is
// self-contained.
func (e *Encoder) FormatText(payload string, style Style) ([]byte, error) {
	symbol, ok := styleSymbols[style]
	if !ok {
		return nil, invalidArgument("style", "unknown style %q", style)
	}
	return e.wrap(symbol, payload, SymbolTextNormal)
}

// Text renders a payload with normal styling on both sides
func (e *Encoder) Text(payload string) ([]byte, error) {
	return e.FormatText(payload, StyleNormal)
}

// DoubleHeight renders a payload in double height
func (e *Encoder) DoubleHeight(payload string) ([]byte, error) {
	return e.FormatText(payload, StyleDoubleHeight)
}

// DoubleWidth renders a payload in double width
func (e *Encoder) DoubleWidth(payload string) ([]byte, error) {
	return e.FormatText(payload, StyleDoubleWidth)
}

// QuadText renders a payload in quadruple size
func (e *Encoder) QuadText(payload string) ([]byte, error) {
	return e.FormatText(payload, StyleQuad)
}

// Underline renders a payload underlined
func (e *Encoder) Underline(payload string) ([]byte, error) {
	return e.FormatText(payload, StyleUnderline)
}

// Underline2 renders a payload with a double underline
func (e *Encoder) Underline2(payload string) ([]byte, error) {
	return e.FormatText(payload, StyleUnderline2)
}

// Bold renders a payload emphasized
func (e *Encoder) Bold(payload string) ([]byte, error) {
	return e.FormatText(payload, StyleBold)
}

// Inverted renders a payload white on black
func (e *Encoder) Inverted(payload string) ([]byte, error) {
	return e.FormatText(payload, StyleInverted)
}

// AlignText renders a payload under an alignment and resets back to left.
// An empty payload is valid: the sequence then moves the alignment for
// subsequent output and immediately restores it.
func (e *Encoder) AlignText(payload string, alignment Alignment) ([]byte, error) {
	symbol, ok := alignmentSymbols[alignment]
	if !ok {
		return nil, invalidArgument("alignment", "unknown alignment %q", alignment)
	}
	return e.wrap(symbol, payload, SymbolAlignLeft)
}

// Left renders a payload left-aligned
func (e *Encoder) Left(payload string) ([]byte, error) {
	return e.AlignText(payload, AlignLeft)
}

// Center renders a payload centered
func (e *Encoder) Center(payload string) ([]byte, error) {
	return e.AlignText(payload, AlignCenter)
}

// Right renders a payload right-aligned
func (e *Encoder) Right(payload string) ([]byte, error) {
	return e.AlignText(payload, AlignRight)
}

// ColorText renders a payload in a print color and resets back to black
func (e *Encoder) ColorText(payload string, color Color) ([]byte, error) {
	symbol, ok := colorSymbols[color]
	if !ok {
		return nil, invalidArgument("color", "unknown color %q", color)
	}
	return e.wrap(symbol, payload, SymbolColorBlack)
}

// Black renders a payload in black
func (e *Encoder) Black(payload string) ([]byte, error) {
	return e.ColorText(payload, ColorBlack)
}

// Red renders a payload in red
func (e *Encoder) Red(payload string) ([]byte, error) {
	return e.ColorText(payload, ColorRed)
}

// Barcode renders barcode data under the given format and options. Numeric
// arguments and the text position are validated here; the format is
// checked only through the table lookup, so an unknown format surfaces as
// UnknownOpcodeError rather than InvalidArgumentError.
func (e *Encoder) Barcode(data string, format BarcodeFormat, opts BarcodeOptions) ([]byte, error) {
	if data == "" {
		return nil, invalidArgument("data", "barcode data is required")
	}
	if opts.Height < 1 || opts.Height > 255 {
		return nil, invalidArgument("height", "height %d out of range 1..255", opts.Height)
	}
	if opts.Width < 2 || opts.Width > 6 {
		return nil, invalidArgument("width", "width %d out of range 2..6", opts.Width)
	}
	positionSymbol, ok := textPositionSymbols[opts.TextPosition]
	if !ok {
		return nil, invalidArgument("text_position", "unknown text position %q", opts.TextPosition)
	}
	position, err := e.dialect.Lookup(positionSymbol)
	if err != nil {
		return nil, err
	}
	widthPrefix, err := e.dialect.Lookup(SymbolBarcodeWidth)
	if err != nil {
		return nil, err
	}
	heightPrefix, err := e.dialect.Lookup(SymbolBarcodeHeight)
	if err != nil {
		return nil, err
	}
	formatSeq, err := e.dialect.Lookup(barcodeSymbol(format))
	if err != nil {
		return nil, err
	}
	sequence := make([]byte, 0, len(position)+len(widthPrefix)+len(heightPrefix)+len(formatSeq)+len(data)+2)
	sequence = append(sequence, position...)
	sequence = append(sequence, widthPrefix...)
	sequence = append(sequence, byte(opts.Width))
	sequence = append(sequence, heightPrefix...)
	sequence = append(sequence, byte(opts.Height))
	sequence = append(sequence, formatSeq...)
	sequence = append(sequence, data...)
	return sequence, nil
}

// Cut encodes a full paper cut
func (e *Encoder) Cut() ([]byte, error) {
	return e.dialect.Lookup(SymbolCutFull)
}

// PartialCut encodes a partial paper cut
func (e *Encoder) PartialCut() ([]byte, error) {
	return e.dialect.Lookup(SymbolCutPartial)
}

// Initialize encodes the printer hardware reset
func (e *Encoder) Initialize() ([]byte, error) {
	return e.dialect.Lookup(SymbolInitialize)
}

// Feed encodes a paper feed of the given number of lines
func (e *Encoder) Feed(lines int) ([]byte, error) {
	if lines < 1 || lines > 255 {
		return nil, invalidArgument("lines", "line count %d out of range 1..255", lines)
	}
	prefix, err := e.dialect.Lookup(SymbolFeedLines)
	if err != nil {
		return nil, err
	}
	return append(prefix, byte(lines)), nil
}

// OpenDrawer encodes a cash drawer kick on the given pin
func (e *Encoder) OpenDrawer(pin DrawerPin) ([]byte, error) {
	switch pin {
	case DrawerPin2:
		return e.dialect.Lookup(SymbolDrawerKickPin2)
	case DrawerPin5:
		return e.dialect.Lookup(SymbolDrawerKickPin5)
	default:
		return nil, invalidArgument("pin", "unsupported drawer pin %d, must be 2 or 5", int(pin))
	}
}

// SelectCodePage encodes a printer code page switch: the CODEPAGE_SELECT
// prefix followed by the page identifier byte from the table. Whether the
// printer actually supports the page is the printer's concern; an unknown
// identifier fails only because the table has no entry for it.
func (e *Encoder) SelectCodePage(page CodePage) ([]byte, error) {
	prefix, err := e.dialect.Lookup(SymbolCodePageSelect)
	if err != nil {
		return nil, err
	}
	id, err := e.dialect.Lookup(codePageSymbol(page))
	if err != nil {
		return nil, err
	}
	return append(prefix, id...), nil
}

// Encode re-encodes UTF-8 text into the target code page through the
// configured codec. Codec failures surface as EncodingError. Encode
// produces payload bytes only; it never emits opcodes.
func (e *Encoder) Encode(text string, charset CodePage, opts EncodeOptions) ([]byte, error) {
	if e.codec == nil {
		return nil, &EncodingError{Charset: charset, Reason: "no codec configured"}
	}
	return e.codec.Reencode(text, charset, opts)
}
