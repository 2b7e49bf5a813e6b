package models

import (
	"time"

	"gorm.io/datatypes"
)

// Product holds plain foreign-key ids; the relation fields below exist only
// for eager-loaded reads and are never stored as back-pointers.
type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null;size:255;uniqueIndex" json:"name"`
	BasePrice   float64        `gorm:"type:numeric(12,2);not null;default:1" json:"base_price"`
	SalePrice   *float64       `gorm:"type:numeric(12,2)" json:"sale_price,omitempty"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	InStock     bool           `gorm:"not null;default:true" json:"in_stock"`
	Quantity    int            `gorm:"not null;default:0" json:"quantity"`
	Attributes  datatypes.JSON `gorm:"type:jsonb" json:"attributes,omitempty"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	BrandID     *uint          `gorm:"index" json:"brand_id,omitempty"`
	ColorID     *uint          `gorm:"index" json:"color_id,omitempty"`
	SizeID      *uint          `gorm:"index" json:"size_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`

	Category *Category `json:"category,omitempty"`
	Brand    *Brand    `json:"brand,omitempty"`
	Color    *Color    `json:"color,omitempty"`
	Size     *Size     `json:"size,omitempty"`
	Ratings  []Rating  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"ratings,omitempty"`
}

func (Product) TableName() string { return "products" }

func (Product) PrimaryKeyColumn() string { return "id" }

// EffectivePrice is the price an order item snapshots at order time: the
// sale price when one is set, the base price otherwise.
func (p *Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.BasePrice
}
