package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProcessStatus enum constants shared by report-style records
const (
	ProcessStatusPending = "待处理"
	ProcessStatusDoing   = "处理中"
	ProcessStatusDone    = "已处理"
)

// ReportType enum constants
const (
	ReportTypeMonthly = "月报"
	ReportTypeQuarter = "季报"
	ReportTypeAnnual  = "年报"
)

// FinancialReport is an uploaded financial statement entry. Only the file
// metadata is tracked here; storage of the file itself lives elsewhere.
type FinancialReport struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	EnterpriseID  uuid.UUID   `gorm:"type:uuid;not null;index" json:"enterprise_id"`
	Enterprise    *Enterprise `gorm:"foreignKey:EnterpriseID" json:"enterprise,omitempty"`
	ReportType    string      `gorm:"type:varchar(20);not null;index" json:"report_type"`
	ReportPeriod  string      `gorm:"type:varchar(10);not null" json:"report_period"` // e.g. "2024-Q2", "2024-06"
	FileName      string      `gorm:"type:varchar(255)" json:"file_name"`
	UploadTime    time.Time   `gorm:"not null;index" json:"upload_time"`
	ProcessStatus string      `gorm:"type:varchar(20);not null;default:'待处理';index" json:"process_status"`
	Remarks       *string     `gorm:"type:text" json:"remarks"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (f *FinancialReport) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
