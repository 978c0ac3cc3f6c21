// internal/repository/interfaces.go
package repository

import (
	"context"
	"time"

	"escpos-service/internal/model"

	"github.com/google/uuid"
)

// OperationRepository defines encode audit log data access operations
type OperationRepository interface {
	// CRUD operations
	Create(ctx context.Context, operation *model.EncodeOperation) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.EncodeOperation, error)

	// Listing and filtering
	List(ctx context.Context, filter *OperationFilter) ([]*model.EncodeOperation, int, error)

	// Cleanup
	DeleteOldOperations(ctx context.Context, olderThan time.Time) (int64, error)
}

// OperationFilter represents encode operation listing filters
type OperationFilter struct {
	Kind          *model.EncodeKind      `json:"kind,omitempty"`
	Dialect       *string                `json:"dialect,omitempty"`
	Status        *model.OperationStatus `json:"status,omitempty"`
	CorrelationID *uuid.UUID             `json:"correlation_id,omitempty"`
	StartDate     *time.Time             `json:"start_date,omitempty"`
	EndDate       *time.Time             `json:"end_date,omitempty"`
	Page          int                    `json:"page"`
	PerPage       int                    `json:"per_page"`
	SortBy        string                 `json:"sort_by"`
	SortOrder     string                 `json:"sort_order"`
}
