// internal/service/dialect_service.go
package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"escpos-service/internal/dialect"
	"escpos-service/internal/utils"
	"escpos-service/pkg/escpos"
)

// DialectService manages the command table registry
type DialectService struct {
	registry    *dialect.Registry
	logger      *utils.ServiceLogger
	auditLogger *utils.AuditLogger
}

// NewDialectService creates a new dialect service instance
func NewDialectService(registry *dialect.Registry, logger *zap.Logger) *DialectService {
	return &DialectService{
		registry:    registry,
		logger:      utils.NewServiceLogger(logger, "dialect-service"),
		auditLogger: utils.NewAuditLogger(logger),
	}
}

// ListDialects lists every registered dialect
func (ds *DialectService) ListDialects() []*DialectInfo {
	names := ds.registry.List()
	infos := make([]*DialectInfo, 0, len(names))

	for _, name := range names {
		table, err := ds.registry.Get(name)
		if err != nil {
			continue
		}
		infos = append(infos, newDialectInfo(table))
	}

	return infos
}

// GetDialect retrieves one dialect with its full command table
func (ds *DialectService) GetDialect(name string) (*DialectDetail, error) {
	table, err := ds.registry.Get(name)
	if err != nil {
		return nil, err
	}

	commands := make(map[string]string, table.Len())
	for symbol, sequence := range table.Commands() {
		commands[string(symbol)] = dialect.FormatHexSequence(sequence)
	}

	return &DialectDetail{
		Name:     table.Name(),
		Builtin:  table.Name() == escpos.DefaultDialectName,
		Commands: commands,
	}, nil
}

// GetSymbols retrieves the sorted symbol inventory of one dialect
func (ds *DialectService) GetSymbols(name string) ([]string, error) {
	table, err := ds.registry.Get(name)
	if err != nil {
		return nil, err
	}

	symbols := table.Symbols()
	names := make([]string, len(symbols))
	for i, symbol := range symbols {
		names[i] = string(symbol)
	}

	return names, nil
}

// RegisterDialect builds a dialect from an API request and registers it
func (ds *DialectService) RegisterDialect(req *RegisterDialectRequest) (*DialectInfo, error) {
	commands := make(map[escpos.Symbol][]byte, len(req.Commands))
	for symbol, hex := range req.Commands {
		sequence, err := dialect.ParseHexSequence(hex)
		if err != nil {
			ds.auditLogger.LogDialectRegistration(req.Name, "api", 0, false)
			return nil, fmt.Errorf("symbol %s: %w", strings.ToUpper(symbol), err)
		}
		commands[escpos.Symbol(strings.ToUpper(symbol))] = sequence
	}

	var table *escpos.Dialect
	var err error

	if req.Base == "" {
		table, err = escpos.NewDialect(req.Name, commands)
	} else {
		var base *escpos.Dialect
		base, err = ds.registry.Get(req.Base)
		if err == nil {
			table, err = base.Extend(req.Name, commands)
		}
	}
	if err != nil {
		ds.auditLogger.LogDialectRegistration(req.Name, "api", 0, false)
		return nil, err
	}

	if err := ds.registry.Register(table); err != nil {
		ds.auditLogger.LogDialectRegistration(req.Name, "api", table.Len(), false)
		return nil, err
	}

	ds.auditLogger.LogDialectRegistration(table.Name(), "api", table.Len(), true)

	return newDialectInfo(table), nil
}

// DTOs for Dialect Service

// DialectInfo summarizes one registered dialect
type DialectInfo struct {
	Name    string `json:"name"`
	Builtin bool   `json:"builtin"`
	Symbols int    `json:"symbols"`
}

func newDialectInfo(table *escpos.Dialect) *DialectInfo {
	return &DialectInfo{
		Name:    table.Name(),
		Builtin: table.Name() == escpos.DefaultDialectName,
		Symbols: table.Len(),
	}
}

// DialectDetail carries one dialect's full command table with the byte
// sequences rendered as space-separated hex
type DialectDetail struct {
	Name     string            `json:"name"`
	Builtin  bool              `json:"builtin"`
	Commands map[string]string `json:"commands"`
}

// RegisterDialectRequest represents a runtime dialect registration
type RegisterDialectRequest struct {
	Name     string            `json:"name" binding:"required"`
	Base     string            `json:"base,omitempty"`
	Commands map[string]string `json:"commands" binding:"required"`
}
