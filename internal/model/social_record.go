package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InsuranceType enum constants
const (
	InsurancePension   = "养老保险"
	InsuranceMedical   = "医疗保险"
	InsuranceUnemploy  = "失业保险"
	InsuranceInjury    = "工伤保险"
	InsuranceMaternity = "生育保险"
)

// SocialRecord is one employee's social-insurance contribution entry for
// an enterprise
type SocialRecord struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	EnterpriseID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"enterprise_id"`
	Enterprise     *Enterprise     `gorm:"foreignKey:EnterpriseID" json:"enterprise,omitempty"`
	EmployeeName   string          `gorm:"type:varchar(100);not null" json:"employee_name"`
	IDNumber       string          `gorm:"type:varchar(18);not null;index" json:"id_number"`
	InsuranceType  string          `gorm:"type:varchar(20);not null" json:"insurance_type"`
	BaseAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"base_amount"`
	PersonalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"personal_amount"`
	CompanyAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"company_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_amount"`
	PaymentStatus  string          `gorm:"type:varchar(20);not null;default:'未缴纳';index" json:"payment_status"`
	PaymentDate    *time.Time      `json:"payment_date"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (s *SocialRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
