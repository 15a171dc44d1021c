package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User account statuses
const (
	UserStatusActive   = "ACTIVE"
	UserStatusDisabled = "DISABLED"
)

// User represents a dashboard account
type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(100);not null" json:"name"`
	Email       string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"type:varchar(255);not null" json:"-"` // Omit password hash from JSON responses
	Role        string     `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	Status      string     `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
