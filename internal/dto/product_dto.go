package dto

import (
	"gorm.io/datatypes"

	"github.com/storefrontlabs/catalog-backend/internal/models"
)

type ProductCreateRequest struct {
	Name        string         `json:"name"`
	BasePrice   float64        `json:"base_price"`
	SalePrice   *float64       `json:"sale_price"`
	Description string         `json:"description"`
	InStock     *bool          `json:"in_stock"`
	Quantity    int            `json:"quantity"`
	Attributes  datatypes.JSON `json:"attributes"`
	CategoryID  uint           `json:"category_id"`
	BrandID     *uint          `json:"brand_id"`
	ColorID     *uint          `json:"color_id"`
	SizeID      *uint          `json:"size_id"`
}

func (r *ProductCreateRequest) Model() *models.Product {
	p := &models.Product{
		Name:        r.Name,
		BasePrice:   r.BasePrice,
		SalePrice:   r.SalePrice,
		Description: r.Description,
		InStock:     true,
		Quantity:    r.Quantity,
		Attributes:  r.Attributes,
		CategoryID:  r.CategoryID,
		BrandID:     r.BrandID,
		ColorID:     r.ColorID,
		SizeID:      r.SizeID,
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	return p
}

type ProductUpdateRequest struct {
	Name        *string         `json:"name"`
	BasePrice   *float64        `json:"base_price"`
	SalePrice   *float64        `json:"sale_price"`
	Description *string         `json:"description"`
	InStock     *bool           `json:"in_stock"`
	Quantity    *int            `json:"quantity"`
	Attributes  *datatypes.JSON `json:"attributes"`
	CategoryID  *uint           `json:"category_id"`
	BrandID     *uint           `json:"brand_id"`
	ColorID     *uint           `json:"color_id"`
	SizeID      *uint           `json:"size_id"`
}

func (r *ProductUpdateRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.BasePrice != nil {
		fields["base_price"] = *r.BasePrice
	}
	if r.SalePrice != nil {
		fields["sale_price"] = *r.SalePrice
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.InStock != nil {
		fields["in_stock"] = *r.InStock
	}
	if r.Quantity != nil {
		fields["quantity"] = *r.Quantity
	}
	if r.Attributes != nil {
		fields["attributes"] = *r.Attributes
	}
	if r.CategoryID != nil {
		fields["category_id"] = *r.CategoryID
	}
	if r.BrandID != nil {
		fields["brand_id"] = *r.BrandID
	}
	if r.ColorID != nil {
		fields["color_id"] = *r.ColorID
	}
	if r.SizeID != nil {
		fields["size_id"] = *r.SizeID
	}
	return fields
}
