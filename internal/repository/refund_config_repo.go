package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

// RefundConfigRepository maintains the refund rate table. Only one
// generation of rows is active at a time; replacement happens through
// DeactivateAll + CreateBatch inside a single transaction (see the
// refund config service).
type RefundConfigRepository interface {
	GetActive(ctx context.Context) ([]model.TaxRefundConfig, error)
	List(ctx context.Context) ([]model.TaxRefundConfig, error)
	DeactivateAll(ctx context.Context) error
	CreateBatch(ctx context.Context, configs []model.TaxRefundConfig) error
}

type refundConfigRepository struct {
	db *gorm.DB
}

// NewRefundConfigRepository returns a new instance of RefundConfigRepository
func NewRefundConfigRepository(db *gorm.DB) RefundConfigRepository {
	return &refundConfigRepository{db: db}
}

func (r *refundConfigRepository) GetActive(ctx context.Context) ([]model.TaxRefundConfig, error) {
	var configs []model.TaxRefundConfig
	if err := GetDB(ctx, r.db).Where("is_active = ?", true).Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

func (r *refundConfigRepository) List(ctx context.Context) ([]model.TaxRefundConfig, error) {
	var configs []model.TaxRefundConfig
	if err := GetDB(ctx, r.db).Order("updated_at DESC").Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

func (r *refundConfigRepository) DeactivateAll(ctx context.Context) error {
	return GetDB(ctx, r.db).Model(&model.TaxRefundConfig{}).
		Where("is_active = ?", true).
		Update("is_active", false).Error
}

func (r *refundConfigRepository) CreateBatch(ctx context.Context, configs []model.TaxRefundConfig) error {
	return GetDB(ctx, r.db).Create(&configs).Error
}
