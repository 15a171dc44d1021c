package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RefundStatus enum constants. Transitions 未处理 → 处理中 → 已处理 are
// triggered manually by operators, not by the calculator.
const (
	RefundStatusPending    = "未处理"
	RefundStatusProcessing = "处理中"
	RefundStatusDone       = "已处理"
)

// Refund config names. Exactly these six rows make up one active
// configuration generation; 总计 is the headline rate stamped onto
// each computed refund.
const (
	ConfigNameCorporate = "企业所得税"
	ConfigNamePersonal  = "个人所得税"
	ConfigNameLandUse   = "土地使用税"
	ConfigNameProperty  = "房产税"
	ConfigNameOther     = "其他税费"
	ConfigNameTotal     = "总计"
)

// TaxRefundConfig is a named refund rate. Only one generation of rows is
// active at a time; replaced generations are kept inactive for audit.
type TaxRefundConfig struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(30);not null;index" json:"name"`
	Rate      decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"rate"` // percentage, 0-100
	IsActive  bool            `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *TaxRefundConfig) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TaxRefund aggregates a batch of paid tax records for one enterprise and
// period into a computed refund. One row per (enterprise, period).
type TaxRefund struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	EnterpriseID   uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_refund_enterprise_period" json:"enterprise_id"`
	Enterprise     *Enterprise     `gorm:"foreignKey:EnterpriseID" json:"enterprise,omitempty"`
	TaxNumber      string          `gorm:"type:varchar(30)" json:"tax_number"`
	TaxPeriod      string          `gorm:"type:varchar(7);not null;index;uniqueIndex:idx_refund_enterprise_period" json:"tax_period"` // "YYYY-MM"
	TaxAmount      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"tax_amount"`   // sum of base tax amounts
	BaseAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"base_amount"`  // sum of taxable incomes
	RefundRate     decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"refund_rate"`  // the 总计 rate at calculation time
	RefundAmount   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"refund_amount"`
	PersonalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"personal_amount"`
	CompanyAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"company_amount"`
	LandAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"land_amount"`
	PropertyAmount decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"property_amount"`
	OtherAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"other_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_amount"`
	Status         string          `gorm:"type:varchar(20);not null;default:'未处理';index" json:"status"`
	TaxRecords     []TaxRecord     `gorm:"foreignKey:TaxRefundID" json:"tax_records,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *TaxRefund) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
