// internal/repository/operation_repository.go
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"escpos-service/internal/database"
	"escpos-service/internal/model"
)

// sortColumns lists the columns List accepts for ordering
var sortColumns = map[string]bool{
	"kind":            true,
	"dialect":         true,
	"status":          true,
	"sequence_length": true,
	"duration_ms":     true,
	"created_at":      true,
}

// operationRepository implements OperationRepository interface
type operationRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewOperationRepository creates a new operation repository
func NewOperationRepository(db *database.DB, logger *zap.Logger) OperationRepository {
	return &operationRepository{
		db:     db,
		logger: logger,
	}
}

// Create creates a new encode operation record
func (r *operationRepository) Create(ctx context.Context, operation *model.EncodeOperation) error {
	query := `
		INSERT INTO encode_operations (
			id, kind, dialect, request_data, status,
			sequence_length, duration_ms, error_message, correlation_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		operation.ID, operation.Kind, operation.Dialect,
		operation.RequestData, operation.Status, operation.SequenceLength,
		operation.DurationMs, operation.ErrorMessage, operation.CorrelationID,
		operation.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to create encode operation", zap.Error(err))
		return fmt.Errorf("failed to create encode operation: %w", err)
	}

	return nil
}

// GetByID retrieves an encode operation by ID
func (r *operationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.EncodeOperation, error) {
	query := `
		SELECT id, kind, dialect, request_data, status,
			   sequence_length, duration_ms, error_message, correlation_id, created_at
		FROM encode_operations WHERE id = $1
	`

	operation := &model.EncodeOperation{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&operation.ID, &operation.Kind, &operation.Dialect,
		&operation.RequestData, &operation.Status, &operation.SequenceLength,
		&operation.DurationMs, &operation.ErrorMessage, &operation.CorrelationID,
		&operation.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("operation not found with id: %s", id)
		}
		return nil, fmt.Errorf("failed to get encode operation: %w", err)
	}

	return operation, nil
}

// List retrieves encode operations with filtering and pagination
func (r *operationRepository) List(ctx context.Context, filter *OperationFilter) ([]*model.EncodeOperation, int, error) {
	// Build WHERE clause
	whereConditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.Kind != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("kind = $%d", argIndex))
		args = append(args, *filter.Kind)
		argIndex++
	}

	if filter.Dialect != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("dialect = $%d", argIndex))
		args = append(args, *filter.Dialect)
		argIndex++
	}

	if filter.Status != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *filter.Status)
		argIndex++
	}

	if filter.CorrelationID != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("correlation_id = $%d", argIndex))
		args = append(args, *filter.CorrelationID)
		argIndex++
	}

	if filter.StartDate != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("created_at >= $%d", argIndex))
		args = append(args, *filter.StartDate)
		argIndex++
	}

	if filter.EndDate != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("created_at <= $%d", argIndex))
		args = append(args, *filter.EndDate)
		argIndex++
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = "WHERE " + strings.Join(whereConditions, " AND ")
	}

	// Count total records
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM encode_operations %s", whereClause)
	var total int
	err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count encode operations: %w", err)
	}

	// Build ORDER BY clause
	orderBy := "created_at DESC"
	if sortColumns[filter.SortBy] {
		order := "ASC"
		if filter.SortOrder == "desc" {
			order = "DESC"
		}
		orderBy = fmt.Sprintf("%s %s", filter.SortBy, order)
	}

	// Build main query with pagination
	offset := (filter.Page - 1) * filter.PerPage
	query := fmt.Sprintf(`
		SELECT id, kind, dialect, request_data, status,
			   sequence_length, duration_ms, error_message, correlation_id, created_at
		FROM encode_operations %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, whereClause, orderBy, argIndex, argIndex+1)

	args = append(args, filter.PerPage, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list encode operations: %w", err)
	}
	defer rows.Close()

	operations := []*model.EncodeOperation{}
	for rows.Next() {
		operation := &model.EncodeOperation{}
		err := rows.Scan(
			&operation.ID, &operation.Kind, &operation.Dialect,
			&operation.RequestData, &operation.Status, &operation.SequenceLength,
			&operation.DurationMs, &operation.ErrorMessage, &operation.CorrelationID,
			&operation.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan encode operation row", zap.Error(err))
			continue
		}
		operations = append(operations, operation)
	}

	return operations, total, nil
}

// DeleteOldOperations removes audit records older than the given cutoff
func (r *operationRepository) DeleteOldOperations(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `DELETE FROM encode_operations WHERE created_at < $1`

	result, err := r.db.ExecContext(ctx, query, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old encode operations: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	r.logger.Info("Deleted old encode operations",
		zap.Int64("rows_deleted", rowsAffected),
		zap.Time("older_than", olderThan),
	)

	return rowsAffected, nil
}
