package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

// OperationLogRepository defines the interface for data access of
// OperationLog entries
type OperationLogRepository interface {
	Create(ctx context.Context, entry *model.OperationLog) error
	List(ctx context.Context, page, limit int) ([]model.OperationLog, int64, error)
}

type operationLogRepository struct {
	db *gorm.DB
}

// NewOperationLogRepository returns a new instance of OperationLogRepository
func NewOperationLogRepository(db *gorm.DB) OperationLogRepository {
	return &operationLogRepository{db: db}
}

func (r *operationLogRepository) Create(ctx context.Context, entry *model.OperationLog) error {
	return GetDB(ctx, r.db).Create(entry).Error
}

func (r *operationLogRepository) List(ctx context.Context, page, limit int) ([]model.OperationLog, int64, error) {
	var entries []model.OperationLog
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.OperationLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Preload("User").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
