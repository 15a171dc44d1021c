package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaxRecordRepository defines the interface for data access of TaxRecord
// entities, scoped per enterprise. Deletion is a soft delete and every
// read excludes deleted rows unless explicitly bypassed.
type TaxRecordRepository interface {
	Create(ctx context.Context, record *model.TaxRecord) error
	Update(ctx context.Context, record *model.TaxRecord) error
	SoftDelete(ctx context.Context, enterpriseID, recordID string) (*model.TaxRecord, error)
	FindByID(ctx context.Context, enterpriseID, recordID string) (*model.TaxRecord, error)
	// FindByIDAny bypasses the deleted-row filter; used for refund
	// linkage history lookups only.
	FindByIDAny(ctx context.Context, recordID string) (*model.TaxRecord, error)
	ListByEnterprise(ctx context.Context, enterpriseID string) ([]model.TaxRecord, error)
	// ListUnprocessed returns paid, not-yet-refunded records across all
	// enterprises, oldest payment first.
	ListUnprocessed(ctx context.Context) ([]model.TaxRecord, error)
	// LinkToRefund stamps the refund back-reference on consumed records.
	LinkToRefund(ctx context.Context, recordIDs []uuid.UUID, refundID uuid.UUID) error
}

type taxRecordRepository struct {
	db *gorm.DB
}

// NewTaxRecordRepository returns a new instance of TaxRecordRepository
func NewTaxRecordRepository(db *gorm.DB) TaxRecordRepository {
	return &taxRecordRepository{db: db}
}

func (r *taxRecordRepository) Create(ctx context.Context, record *model.TaxRecord) error {
	return GetDB(ctx, r.db).Create(record).Error
}

func (r *taxRecordRepository) Update(ctx context.Context, record *model.TaxRecord) error {
	return GetDB(ctx, r.db).Save(record).Error
}

func (r *taxRecordRepository) SoftDelete(ctx context.Context, enterpriseID, recordID string) (*model.TaxRecord, error) {
	record, err := r.FindByID(ctx, enterpriseID, recordID)
	if err != nil {
		return nil, err
	}
	// Rewritten to UPDATE deleted_at = now(); the refund back-reference
	// is left untouched.
	if err := GetDB(ctx, r.db).Delete(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *taxRecordRepository) FindByID(ctx context.Context, enterpriseID, recordID string) (*model.TaxRecord, error) {
	var record model.TaxRecord
	if err := GetDB(ctx, r.db).
		First(&record, "id = ? AND enterprise_id = ?", recordID, enterpriseID).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *taxRecordRepository) FindByIDAny(ctx context.Context, recordID string) (*model.TaxRecord, error) {
	var record model.TaxRecord
	if err := GetDB(ctx, r.db).Unscoped().First(&record, "id = ?", recordID).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *taxRecordRepository) ListByEnterprise(ctx context.Context, enterpriseID string) ([]model.TaxRecord, error) {
	var records []model.TaxRecord
	if err := GetDB(ctx, r.db).
		Where("enterprise_id = ?", enterpriseID).
		Order("year DESC, month DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *taxRecordRepository) ListUnprocessed(ctx context.Context) ([]model.TaxRecord, error) {
	var records []model.TaxRecord
	if err := GetDB(ctx, r.db).
		Where("payment_status = ? AND tax_refund_id IS NULL", model.PaymentStatusPaid).
		Preload("Enterprise").
		Order("payment_date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *taxRecordRepository) LinkToRefund(ctx context.Context, recordIDs []uuid.UUID, refundID uuid.UUID) error {
	if len(recordIDs) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).Model(&model.TaxRecord{}).
		Where("id IN ?", recordIDs).
		Update("tax_refund_id", refundID).Error
}
