package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentStatus enum constants
const (
	PaymentStatusUnpaid  = "未缴纳"
	PaymentStatusPartial = "部分缴纳"
	PaymentStatusPaid    = "已缴纳"
)

// TaxType enum constants. The refund calculator buckets anything outside
// the four named categories into 其他税费.
const (
	TaxTypePersonalIncome  = "个人所得税"
	TaxTypeCorporateIncome = "企业所得税"
	TaxTypeLandUse         = "土地使用税"
	TaxTypeProperty        = "房产税"
	TaxTypeOther           = "其他税费"
	TaxTypeVAT             = "增值税"
	TaxTypeUrbanUpkeep     = "城市维护建设税"
)

// TaxRecord is one period's tax obligation/payment entry for an enterprise
type TaxRecord struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	EnterpriseID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"enterprise_id"`
	Enterprise    *Enterprise     `gorm:"foreignKey:EnterpriseID" json:"enterprise,omitempty"`
	Year          int             `gorm:"not null;index" json:"year"`
	Month         int             `gorm:"not null" json:"month"` // 1-12
	TaxableIncome decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"taxable_income"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"tax_amount"`
	PaidAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"paid_amount"`
	TaxType       string          `gorm:"type:varchar(30);not null" json:"tax_type"`
	PaymentStatus string          `gorm:"type:varchar(20);not null;index" json:"payment_status"`
	DueDate       time.Time       `gorm:"not null" json:"due_date"`
	PaymentDate   *time.Time      `json:"payment_date"`
	Remarks       *string         `gorm:"type:text" json:"remarks"`
	TaxRefundID   *uuid.UUID      `gorm:"type:uuid;index" json:"tax_refund_id"` // Set once the record is consumed by a refund calculation
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"` // GORM soft delete
}

func (t *TaxRecord) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
