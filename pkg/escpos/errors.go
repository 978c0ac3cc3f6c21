// pkg/escpos/errors.go
package escpos

import "fmt"

// InvalidArgumentError reports a caller-supplied argument the encoder rejects
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

// invalidArgument builds an InvalidArgumentError with a formatted reason
func invalidArgument(field, format string, args ...interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// UnknownOpcodeError reports a symbol the dialect table has no entry for.
// It marks a configuration or protocol mismatch, not bad caller input.
type UnknownOpcodeError struct {
	Dialect string
	Symbol  Symbol
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("dialect %q has no opcode for symbol %q", e.Dialect, e.Symbol)
}

// EncodingError reports a codec failure while re-encoding text into a
// target code page
type EncodingError struct {
	Charset CodePage
	Reason  string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot encode to %s: %s", e.Charset, e.Reason)
}
