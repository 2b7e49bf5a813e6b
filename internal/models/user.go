package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName       string    `gorm:"size:255;index" json:"full_name"`
	Email          string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	HashedPassword string    `gorm:"not null" json:"-"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	IsSuperuser    bool      `gorm:"not null;default:false" json:"is_superuser"`
	Address        string    `gorm:"size:255" json:"address"`
	City           string    `gorm:"size:100" json:"city"`
	Country        string    `gorm:"size:100" json:"country"`
	Telephone      string    `gorm:"size:50" json:"telephone"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (User) TableName() string { return "users" }

func (User) PrimaryKeyColumn() string { return "id" }
