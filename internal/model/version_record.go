package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VersionStatus enum constants
const (
	VersionStatusPending  = "待审核"
	VersionStatusApproved = "已通过"
	VersionStatusRejected = "已拒绝"
)

// VersionRecord tracks an uploaded data/document version awaiting review
type VersionRecord struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Version     string     `gorm:"type:varchar(50);not null" json:"version"`
	Description string     `gorm:"type:text" json:"description"`
	FileName    string     `gorm:"type:varchar(255)" json:"file_name"`
	Status      string     `gorm:"type:varchar(20);not null;default:'待审核';index" json:"status"`
	UploadedBy  *uuid.UUID `gorm:"type:uuid" json:"uploaded_by"`
	ReviewedBy  *uuid.UUID `gorm:"type:uuid" json:"reviewed_by"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (v *VersionRecord) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
