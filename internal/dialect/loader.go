// internal/dialect/loader.go
package dialect

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"escpos-service/pkg/escpos"
)

// DialectFile represents one dialect definition file. Commands map symbol
// names to space-separated hex byte sequences, e.g. CUT_FULL: "1B 69".
// When a base dialect is named, its table is inherited and the file's
// commands override or extend it.
type DialectFile struct {
	Name     string            `mapstructure:"name"`
	Base     string            `mapstructure:"base"`
	Commands map[string]string `mapstructure:"commands"`
}

// Loader loads dialect definition files into a registry
type Loader struct {
	registry *Registry
	logger   *zap.Logger
}

// NewLoader creates a dialect file loader
func NewLoader(registry *Registry, logger *zap.Logger) *Loader {
	return &Loader{
		registry: registry,
		logger:   logger,
	}
}

// LoadPaths loads every dialect file under the given directories. Missing
// directories are skipped; a broken file fails the load.
func (l *Loader) LoadPaths(paths []string) (int, error) {
	loaded := 0
	for _, dir := range paths {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				l.logger.Debug("Dialect path does not exist, skipping", zap.String("path", dir))
				continue
			}
			return loaded, fmt.Errorf("failed to read dialect path %s: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := filepath.Ext(entry.Name())
			if ext != ".yaml" && ext != ".yml" {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			if err := l.LoadFile(path); err != nil {
				return loaded, fmt.Errorf("failed to load dialect file %s: %w", path, err)
			}
			loaded++
		}
	}
	return loaded, nil
}

// LoadFile loads a single dialect definition file and registers the result
func (l *Loader) LoadFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading dialect file: %w", err)
	}

	var file DialectFile
	if err := v.Unmarshal(&file); err != nil {
		return fmt.Errorf("unable to decode dialect file: %w", err)
	}

	dialect, err := l.build(&file)
	if err != nil {
		return err
	}

	if err := l.registry.Register(dialect); err != nil {
		return err
	}

	l.logger.Info("Dialect file loaded",
		zap.String("path", path),
		zap.String("dialect", dialect.Name()),
		zap.Int("symbols", dialect.Len()),
	)
	return nil
}

// build constructs the dialect, resolving the base table when one is named
func (l *Loader) build(file *DialectFile) (*escpos.Dialect, error) {
	if file.Name == "" {
		return nil, fmt.Errorf("dialect file is missing a name")
	}

	// Viper lowercases map keys, symbols are canonically upper case.
	commands := make(map[escpos.Symbol][]byte, len(file.Commands))
	for symbol, hex := range file.Commands {
		sequence, err := ParseHexSequence(hex)
		if err != nil {
			return nil, fmt.Errorf("symbol %s: %w", strings.ToUpper(symbol), err)
		}
		commands[escpos.Symbol(strings.ToUpper(symbol))] = sequence
	}

	if file.Base == "" {
		return escpos.NewDialect(file.Name, commands)
	}

	base, err := l.registry.Get(file.Base)
	if err != nil {
		return nil, fmt.Errorf("base dialect: %w", err)
	}
	return base.Extend(file.Name, commands)
}

// ParseHexSequence parses space-separated hex bytes like "1D 56 00"
func ParseHexSequence(s string) ([]byte, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty byte sequence")
	}

	sequence := make([]byte, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseUint(field, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex byte %q", field)
		}
		sequence = append(sequence, byte(value))
	}
	return sequence, nil
}

// FormatHexSequence renders a byte sequence in the same space-separated hex
// form ParseHexSequence reads
func FormatHexSequence(sequence []byte) string {
	return fmt.Sprintf("% X", sequence)
}
