package repository

import (
	"context"

	"backend/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SocialRecordStats aggregates the contribution totals shown on the
// social-insurance dashboard
type SocialRecordStats struct {
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	EmployeeCount int64           `json:"employee_count"`
}

// SocialRecordRepository defines the interface for data access of
// SocialRecord entities
type SocialRecordRepository interface {
	Create(ctx context.Context, record *model.SocialRecord) error
	Update(ctx context.Context, record *model.SocialRecord) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.SocialRecord, error)
	List(ctx context.Context, page, limit int) ([]model.SocialRecord, int64, error)
	Stats(ctx context.Context) (*SocialRecordStats, error)
}

type socialRecordRepository struct {
	db *gorm.DB
}

// NewSocialRecordRepository returns a new instance of SocialRecordRepository
func NewSocialRecordRepository(db *gorm.DB) SocialRecordRepository {
	return &socialRecordRepository{db: db}
}

func (r *socialRecordRepository) Create(ctx context.Context, record *model.SocialRecord) error {
	return GetDB(ctx, r.db).Create(record).Error
}

func (r *socialRecordRepository) Update(ctx context.Context, record *model.SocialRecord) error {
	return GetDB(ctx, r.db).Save(record).Error
}

func (r *socialRecordRepository) Delete(ctx context.Context, id string) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.SocialRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *socialRecordRepository) FindByID(ctx context.Context, id string) (*model.SocialRecord, error) {
	var record model.SocialRecord
	if err := GetDB(ctx, r.db).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *socialRecordRepository) List(ctx context.Context, page, limit int) ([]model.SocialRecord, int64, error) {
	var records []model.SocialRecord
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.SocialRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Preload("Enterprise").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *socialRecordRepository) Stats(ctx context.Context) (*SocialRecordStats, error) {
	db := GetDB(ctx, r.db)
	stats := &SocialRecordStats{}

	var totalAmount, paidAmount decimal.NullDecimal
	if err := db.Model(&model.SocialRecord{}).
		Select("SUM(total_amount)").
		Scan(&totalAmount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.SocialRecord{}).
		Where("payment_status = ?", model.PaymentStatusPaid).
		Select("SUM(total_amount)").
		Scan(&paidAmount).Error; err != nil {
		return nil, err
	}

	// Distinct (name, id number) pairs: one employee may hold several
	// insurance-type rows.
	if err := db.Raw(
		"SELECT COUNT(*) FROM (SELECT DISTINCT employee_name, id_number FROM social_records WHERE deleted_at IS NULL) AS employees",
	).Scan(&stats.EmployeeCount).Error; err != nil {
		return nil, err
	}

	if totalAmount.Valid {
		stats.TotalAmount = totalAmount.Decimal
	}
	if paidAmount.Valid {
		stats.PaidAmount = paidAmount.Decimal
	}

	return stats, nil
}
