package models

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Score     int       `gorm:"not null;check:score >= 0 AND score <= 5" json:"score"`
	Comment   string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Rating) TableName() string { return "ratings" }

func (Rating) PrimaryKeyColumn() string { return "id" }
