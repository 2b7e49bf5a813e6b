package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Status     string    `gorm:"not null;size:50;default:'pending'" json:"status"`
	TotalPrice float64   `gorm:"type:numeric(12,2);not null;default:0" json:"total_price"`
	FullName   string    `gorm:"size:255" json:"full_name"`
	Email      string    `gorm:"not null;size:255;index" json:"email"`
	Address    string    `gorm:"size:255" json:"address"`
	City       string    `gorm:"size:100" json:"city"`
	Country    string    `gorm:"size:100" json:"country"`
	Telephone  string    `gorm:"size:50" json:"telephone"`
	CreatedAt  time.Time `json:"created_at"`

	User  *User       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Order) TableName() string { return "orders" }

func (Order) PrimaryKeyColumn() string { return "id" }

// OrderItem snapshots price and quantity at order time. The price is
// decoupled from the live product price and never changes after creation.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	ColorID   *uint   `json:"color_id,omitempty"`
	SizeID    *uint   `json:"size_id,omitempty"`
	Price     float64 `gorm:"type:numeric(12,2);not null" json:"price"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`

	Product *Product `gorm:"constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

func (OrderItem) TableName() string { return "order_items" }

func (OrderItem) PrimaryKeyColumn() string { return "id" }
