package repository

import (
	"context"

	"github.com/storefrontlabs/catalog-backend/internal/database"
	"github.com/storefrontlabs/catalog-backend/internal/models"
)

// productRelations are eager-loaded on every detail read so a creation
// response always matches the shape of a detail response.
var productRelations = []string{"Category", "Brand", "Color", "Size", "Ratings"}

type ProductRepository struct {
	base *Repository[models.Product]
}

func NewProductRepository(mgr *database.Manager) *ProductRepository {
	return &ProductRepository{base: NewRepository[models.Product](mgr)}
}

// Create inserts the product and re-fetches it with eager-loaded relations.
// Name uniqueness is left to the store's unique constraint; there is no
// pre-check, a duplicate surfaces as a constraint violation.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	created, err := r.base.Insert(ctx, nil, product)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, created.ID)
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	return r.base.DetailOne(ctx, nil, "id", id, productRelations...)
}

func (r *ProductRepository) GetByName(ctx context.Context, name string) (*models.Product, error) {
	return r.base.DetailOne(ctx, nil, "name", name, productRelations...)
}

// Update applies a partial field set, then re-fetches the detail shape.
func (r *ProductRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Product, error) {
	updated, err := r.base.Update(ctx, nil, ByID(id), fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	return r.GetByID(ctx, updated.ID)
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) (*models.Product, error) {
	return r.base.Delete(ctx, nil, ByID(id))
}

func (r *ProductRepository) List(ctx context.Context, offset, limit int) ([]models.Product, error) {
	return r.base.DetailList(ctx, nil, offset, limit, productRelations...)
}
