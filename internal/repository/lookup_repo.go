package repository

import (
	"context"

	"github.com/storefrontlabs/catalog-backend/internal/database"
	"github.com/storefrontlabs/catalog-backend/internal/models"
)

// lookupProductRelations hang each product's own relations off the parent's
// product collection. This is the relation-heaviest read in the system.
var lookupProductRelations = []string{
	"Products",
	"Products.Color",
	"Products.Size",
	"Products.Ratings",
}

// LookupRepository serves the name-keyed lookup entities (category, brand,
// color, size): plain CRUD plus the eager-loaded "with products" reads.
type LookupRepository[T Entity] struct {
	base *Repository[T]
}

func NewLookupRepository[T Entity](mgr *database.Manager) *LookupRepository[T] {
	return &LookupRepository[T]{base: NewRepository[T](mgr)}
}

func (r *LookupRepository[T]) Create(ctx context.Context, entity *T) (*T, error) {
	return r.base.Insert(ctx, nil, entity)
}

func (r *LookupRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	return r.base.SelectOne(ctx, nil, ByID(id))
}

func (r *LookupRepository[T]) GetByName(ctx context.Context, name string) (*T, error) {
	return r.base.SelectOne(ctx, nil, Where("name = ?", name))
}

func (r *LookupRepository[T]) Update(ctx context.Context, id uint, fields map[string]interface{}) (*T, error) {
	return r.base.Update(ctx, nil, ByID(id), fields)
}

func (r *LookupRepository[T]) Delete(ctx context.Context, id uint) (*T, error) {
	return r.base.Delete(ctx, nil, ByID(id))
}

func (r *LookupRepository[T]) List(ctx context.Context, offset, limit int) ([]T, error) {
	return r.base.Paginate(ctx, nil, offset, limit)
}

// GetWithProducts reads one lookup row together with its products and each
// product's color, size, and ratings in a single logical read.
func (r *LookupRepository[T]) GetWithProducts(ctx context.Context, id uint) (*T, error) {
	return r.base.DetailOne(ctx, nil, "id", id, lookupProductRelations...)
}

// ListWithProducts is the paginated form of GetWithProducts.
func (r *LookupRepository[T]) ListWithProducts(ctx context.Context, offset, limit int) ([]T, error) {
	return r.base.DetailList(ctx, nil, offset, limit, lookupProductRelations...)
}

// Concrete lookup repositories, one descriptor each.
type (
	CategoryRepository = LookupRepository[models.Category]
	BrandRepository    = LookupRepository[models.Brand]
	ColorRepository    = LookupRepository[models.Color]
	SizeRepository     = LookupRepository[models.Size]
)

func NewCategoryRepository(mgr *database.Manager) *CategoryRepository {
	return NewLookupRepository[models.Category](mgr)
}

func NewBrandRepository(mgr *database.Manager) *BrandRepository {
	return NewLookupRepository[models.Brand](mgr)
}

func NewColorRepository(mgr *database.Manager) *ColorRepository {
	return NewLookupRepository[models.Color](mgr)
}

func NewSizeRepository(mgr *database.Manager) *SizeRepository {
	return NewLookupRepository[models.Size](mgr)
}
