// pkg/escpos/dialect.go
package escpos

import (
	"fmt"
	"sort"
)

// Dialect is an immutable command table mapping symbols to opcode byte
// sequences. A dialect never changes after construction, so one instance
// is safe for concurrent use by any number of encoders.
type Dialect struct {
	name     string
	commands map[Symbol][]byte
}

// NewDialect builds a dialect from a command map. The map and its byte
// sequences are copied; later changes to them do not reach the dialect.
func NewDialect(name string, commands map[Symbol][]byte) (*Dialect, error) {
	if name == "" {
		return nil, invalidArgument("name", "dialect name is required")
	}
	if len(commands) == 0 {
		return nil, invalidArgument("commands", "dialect %q has no commands", name)
	}
	table := make(map[Symbol][]byte, len(commands))
	for symbol, sequence := range commands {
		if symbol == "" {
			return nil, invalidArgument("commands", "dialect %q contains an empty symbol", name)
		}
		if len(sequence) == 0 {
			return nil, invalidArgument("commands", "symbol %q of dialect %q has an empty sequence", symbol, name)
		}
		table[symbol] = append([]byte(nil), sequence...)
	}
	return &Dialect{name: name, commands: table}, nil
}

// MustNewDialect is NewDialect for tables known to be valid; it panics on error
func MustNewDialect(name string, commands map[Symbol][]byte) *Dialect {
	dialect, err := NewDialect(name, commands)
	if err != nil {
		panic(fmt.Sprintf("escpos: invalid dialect: %v", err))
	}
	return dialect
}

// Name returns the dialect name
func (d *Dialect) Name() string {
	return d.name
}

// Len returns the number of symbols in the table
func (d *Dialect) Len() int {
	return len(d.commands)
}

// Has reports whether the table carries an entry for the symbol
func (d *Dialect) Has(symbol Symbol) bool {
	_, ok := d.commands[symbol]
	return ok
}

// Lookup returns a copy of the opcode sequence for a symbol. A missing
// entry is an UnknownOpcodeError.
func (d *Dialect) Lookup(symbol Symbol) ([]byte, error) {
	sequence, ok := d.commands[symbol]
	if !ok {
		return nil, &UnknownOpcodeError{Dialect: d.name, Symbol: symbol}
	}
	return append([]byte(nil), sequence...), nil
}

// Symbols returns the table's symbols in sorted order
func (d *Dialect) Symbols() []Symbol {
	symbols := make([]Symbol, 0, len(d.commands))
	for symbol := range d.commands {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}

// Commands returns a copy of the full table
func (d *Dialect) Commands() map[Symbol][]byte {
	commands := make(map[Symbol][]byte, len(d.commands))
	for symbol, sequence := range d.commands {
		commands[symbol] = append([]byte(nil), sequence...)
	}
	return commands
}

// Extend derives a new dialect from this one: the base table plus the
// given overrides and additions. The receiver is left untouched.
func (d *Dialect) Extend(name string, overrides map[Symbol][]byte) (*Dialect, error) {
	merged := make(map[Symbol][]byte, len(d.commands)+len(overrides))
	for symbol, sequence := range d.commands {
		merged[symbol] = sequence
	}
	for symbol, sequence := range overrides {
		merged[symbol] = sequence
	}
	return NewDialect(name, merged)
}
