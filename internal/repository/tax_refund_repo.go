package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

// TaxRefundListQuery holds the filter parameters for listing refunds
type TaxRefundListQuery struct {
	StartPeriod    string // inclusive "YYYY-MM" lower bound
	EndPeriod      string // inclusive "YYYY-MM" upper bound
	EnterpriseName string
	Status         string
}

// TaxRefundRepository defines the interface for data access of TaxRefund
// entities
type TaxRefundRepository interface {
	Create(ctx context.Context, refund *model.TaxRefund) error
	FindByID(ctx context.Context, id string) (*model.TaxRefund, error)
	List(ctx context.Context, query TaxRefundListQuery) ([]model.TaxRefund, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type taxRefundRepository struct {
	db *gorm.DB
}

// NewTaxRefundRepository returns a new instance of TaxRefundRepository
func NewTaxRefundRepository(db *gorm.DB) TaxRefundRepository {
	return &taxRefundRepository{db: db}
}

func (r *taxRefundRepository) Create(ctx context.Context, refund *model.TaxRefund) error {
	return GetDB(ctx, r.db).Create(refund).Error
}

func (r *taxRefundRepository) FindByID(ctx context.Context, id string) (*model.TaxRefund, error) {
	var refund model.TaxRefund
	if err := GetDB(ctx, r.db).Preload("Enterprise").First(&refund, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &refund, nil
}

func (r *taxRefundRepository) List(ctx context.Context, query TaxRefundListQuery) ([]model.TaxRefund, error) {
	db := GetDB(ctx, r.db).Model(&model.TaxRefund{})

	if query.StartPeriod != "" {
		db = db.Where("tax_period >= ?", query.StartPeriod)
	}
	if query.EndPeriod != "" {
		db = db.Where("tax_period <= ?", query.EndPeriod)
	}
	if query.EnterpriseName != "" {
		db = db.Joins("JOIN enterprises ON enterprises.id = tax_refunds.enterprise_id").
			Where("enterprises.name LIKE ?", "%"+query.EnterpriseName+"%")
	}
	if query.Status != "" {
		db = db.Where("tax_refunds.status = ?", query.Status)
	}

	var refunds []model.TaxRefund
	if err := db.Preload("Enterprise").Order("tax_period DESC").Find(&refunds).Error; err != nil {
		return nil, err
	}
	return refunds, nil
}

func (r *taxRefundRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res := GetDB(ctx, r.db).Model(&model.TaxRefund{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
