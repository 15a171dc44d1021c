package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

// VersionRecordRepository defines the interface for data access of
// VersionRecord entities
type VersionRecordRepository interface {
	Create(ctx context.Context, record *model.VersionRecord) error
	Update(ctx context.Context, record *model.VersionRecord) error
	FindByID(ctx context.Context, id string) (*model.VersionRecord, error)
	List(ctx context.Context, page, limit int) ([]model.VersionRecord, int64, error)
}

type versionRecordRepository struct {
	db *gorm.DB
}

// NewVersionRecordRepository returns a new instance of VersionRecordRepository
func NewVersionRecordRepository(db *gorm.DB) VersionRecordRepository {
	return &versionRecordRepository{db: db}
}

func (r *versionRecordRepository) Create(ctx context.Context, record *model.VersionRecord) error {
	return GetDB(ctx, r.db).Create(record).Error
}

func (r *versionRecordRepository) Update(ctx context.Context, record *model.VersionRecord) error {
	return GetDB(ctx, r.db).Save(record).Error
}

func (r *versionRecordRepository) FindByID(ctx context.Context, id string) (*model.VersionRecord, error) {
	var record model.VersionRecord
	if err := GetDB(ctx, r.db).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *versionRecordRepository) List(ctx context.Context, page, limit int) ([]model.VersionRecord, int64, error) {
	var records []model.VersionRecord
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.VersionRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
