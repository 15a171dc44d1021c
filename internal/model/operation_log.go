package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Operation log actions
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
	ActionReview = "REVIEW"
)

// Operation log modules
const (
	ModuleEnterprise      = "ENTERPRISE"
	ModuleTaxRecord       = "TAX_RECORD"
	ModuleTaxRefund       = "TAX_REFUND"
	ModuleRefundConfig    = "TAX_REFUND_CONFIG"
	ModuleSocialRecord    = "SOCIAL_RECORD"
	ModuleFinancialReport = "FINANCIAL_REPORT"
	ModuleVersionRecord   = "VERSION_RECORD"
	ModuleUser            = "USER"
)

// OperationLog tracks who did what for critical system changes
type OperationLog struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Nullable for unattributed/system operations
	User        *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Action      string     `gorm:"type:varchar(20);not null;index" json:"action"`
	Module      string     `gorm:"type:varchar(30);not null;index" json:"module"`
	Description string     `gorm:"type:text" json:"description"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

func (o *OperationLog) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
