// internal/service/operation_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"escpos-service/internal/config"
	"escpos-service/internal/model"
	"escpos-service/internal/repository"
	"escpos-service/internal/utils"
)

// OperationService serves the encode audit trail and owns its retention
type OperationService struct {
	operationRepo repository.OperationRepository
	config        *config.Config
	logger        *utils.ServiceLogger
	auditLogger   *utils.AuditLogger
}

// NewOperationService creates a new operation service instance
func NewOperationService(
	operationRepo repository.OperationRepository,
	config *config.Config,
	logger *zap.Logger,
) *OperationService {
	return &OperationService{
		operationRepo: operationRepo,
		config:        config,
		logger:        utils.NewServiceLogger(logger, "operation-service"),
		auditLogger:   utils.NewAuditLogger(logger),
	}
}

// GetOperation retrieves one audit record
func (os *OperationService) GetOperation(ctx context.Context, operationID uuid.UUID) (*model.EncodeOperation, error) {
	operation, err := os.operationRepo.GetByID(ctx, operationID)
	if err != nil {
		return nil, fmt.Errorf("operation not found: %w", err)
	}
	return operation, nil
}

// ListOperations lists audit records with filtering
func (os *OperationService) ListOperations(ctx context.Context, filter *OperationFilter) ([]*model.EncodeOperation, *PaginationResult, error) {
	operations, total, err := os.operationRepo.List(ctx, filter.toRepoFilter())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list operations: %w", err)
	}

	pagination := &PaginationResult{
		Total:      total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
		TotalPages: (total + filter.PerPage - 1) / filter.PerPage,
	}

	return operations, pagination, nil
}

// StartCleanupLoop starts the background retention loop. It runs until the
// context is cancelled.
func (os *OperationService) StartCleanupLoop(ctx context.Context) {
	if !os.config.Audit.Enabled {
		os.logger.Info("Audit trail disabled, cleanup loop not started")
		return
	}

	interval := os.config.Audit.CleanupInterval
	if interval <= 0 {
		interval = time.Hour
	}

	os.logger.Info("Audit cleanup loop started",
		zap.Duration("interval", interval),
		zap.Int("retention_days", os.config.Audit.RetentionDays),
	)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				os.logger.Info("Audit cleanup loop stopped")
				return
			case <-ticker.C:
				os.runCleanup(ctx)
			}
		}
	}()
}

// runCleanup deletes audit records older than the configured retention
func (os *OperationService) runCleanup(ctx context.Context) {
	retentionDays := os.config.Audit.RetentionDays
	olderThan := time.Now().AddDate(0, 0, -retentionDays)

	deleted, err := os.operationRepo.DeleteOldOperations(ctx, olderThan)
	if err != nil {
		os.logger.Error("Audit cleanup failed", zap.Error(err))
		return
	}

	os.auditLogger.LogAuditCleanup(deleted, retentionDays)
}

// DTOs for Operation Service

// OperationFilter represents audit listing filters
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

// toRepoFilter converts to repository filter
func (of *OperationFilter) toRepoFilter() *repository.OperationFilter {
	return &repository.OperationFilter{
		Kind:          of.Kind,
		Dialect:       of.Dialect,
		Status:        of.Status,
		CorrelationID: of.CorrelationID,
		StartDate:     of.StartDate,
		EndDate:       of.EndDate,
		Page:          of.Page,
		PerPage:       of.PerPage,
		SortBy:        of.SortBy,
		SortOrder:     of.SortOrder,
	}
}

// PaginationResult represents pagination information
type PaginationResult struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}
