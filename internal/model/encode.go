// internal/model/encode.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EncodeKind represents the kind of encode request
type EncodeKind string

const (
	EncodeKindFormatText EncodeKind = "FORMAT_TEXT"
	EncodeKindAlign      EncodeKind = "ALIGN"
	EncodeKindColor      EncodeKind = "COLOR"
	EncodeKindBarcode    EncodeKind = "BARCODE"
	EncodeKindCut        EncodeKind = "CUT"
	EncodeKindCharset    EncodeKind = "CHARSET"
	EncodeKindReencode   EncodeKind = "REENCODE"
	EncodeKindInitialize EncodeKind = "INITIALIZE"
	EncodeKindFeed       EncodeKind = "FEED"
	EncodeKindOpenDrawer EncodeKind = "OPEN_DRAWER"
	EncodeKindDocument   EncodeKind = "DOCUMENT"
)

// IsValid checks if the kind is one of the supported encode kinds
func (k EncodeKind) IsValid() bool {
	switch k {
	case EncodeKindFormatText, EncodeKindAlign, EncodeKindColor, EncodeKindBarcode,
		EncodeKindCut, EncodeKindCharset, EncodeKindReencode, EncodeKindInitialize,
		EncodeKindFeed, EncodeKindOpenDrawer, EncodeKindDocument:
		return true
	}
	return false
}

// OperationStatus represents the outcome of an encode operation
type OperationStatus string

const (
	OperationStatusSuccess OperationStatus = "SUCCESS"
	OperationStatusFailed  OperationStatus = "FAILED"
)

// JSONObject type for PostgreSQL JSONB objects
type JSONObject map[string]interface{}

func (j *JSONObject) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, j)
}

func (j JSONObject) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// EncodeOperation represents one audited encode call
type EncodeOperation struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	Kind           EncodeKind      `json:"kind" db:"kind"`
	Dialect        string          `json:"dialect" db:"dialect"`
	RequestData    JSONObject      `json:"request_data" db:"request_data"`
	Status         OperationStatus `json:"status" db:"status"`
	SequenceLength *int            `json:"sequence_length" db:"sequence_length"`
	DurationMs     *int            `json:"duration_ms" db:"duration_ms"`
	ErrorMessage   *string         `json:"error_message" db:"error_message"`
	CorrelationID  *uuid.UUID      `json:"correlation_id" db:"correlation_id"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

// Succeeded checks if the operation produced a sequence
func (op *EncodeOperation) Succeeded() bool {
	return op.Status == OperationStatusSuccess
}

// EncodeRequest represents a semantic encode request passed to the encode service
type EncodeRequest struct {
	Kind          EncodeKind `json:"kind"`
	Dialect       string     `json:"dialect,omitempty"`
	Data          JSONObject `json:"data"`
	CorrelationID *uuid.UUID `json:"correlation_id,omitempty"`
}

// EncodeResult represents the encoded command sequence returned to the caller.
// Sequence marshals as base64 in JSON responses.
type EncodeResult struct {
	OperationID   *uuid.UUID `json:"operation_id,omitempty"`
	Kind          EncodeKind `json:"kind"`
	Dialect       string     `json:"dialect"`
	Sequence      []byte     `json:"sequence"`
	Length        int        `json:"length"`
	CorrelationID *uuid.UUID `json:"correlation_id,omitempty"`
}

// DocumentStep represents one step of a document encode request. A document
// is nothing more than its steps' sequences concatenated in order.
type DocumentStep struct {
	Kind EncodeKind `json:"kind"`
	Data JSONObject `json:"data"`
}
