package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EnterpriseStatus enum constants
const (
	EnterpriseStatusNormal    = "在业"
	EnterpriseStatusCancelled = "注销"
	EnterpriseStatusRevoked   = "吊销"
	EnterpriseStatusMoving    = "迁出"
)

// DataSource enum constants
const (
	DataSourceManual  = "manual"
	DataSourceCrawler = "crawler"
)

// Enterprise represents a registered business entity tracked by the system
type Enterprise struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string          `gorm:"type:varchar(255);not null;index" json:"name"`
	UnifiedSocialCode string          `gorm:"type:varchar(18);uniqueIndex;not null" json:"unified_social_code"`
	LegalPerson       string          `gorm:"type:varchar(100);not null" json:"legal_person"`
	RegisteredCapital decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"registered_capital"`
	FoundingDate      *time.Time      `gorm:"type:date" json:"founding_date"`
	BusinessScope     string          `gorm:"type:text" json:"business_scope"`
	Industry          string          `gorm:"type:varchar(100)" json:"industry"`
	District          string          `gorm:"type:varchar(100)" json:"district"`
	Address           string          `gorm:"type:varchar(255)" json:"address"`
	ContactNumber     string          `gorm:"type:varchar(30)" json:"contact_number"`
	Email             string          `gorm:"type:varchar(255)" json:"email"`
	Status            string          `gorm:"type:varchar(20);not null;default:'在业';index" json:"status"`
	DataSource        string          `gorm:"type:varchar(20);not null;default:'manual'" json:"data_source"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"-"` // GORM soft delete
}

func (e *Enterprise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
