package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/storefrontlabs/catalog-backend/internal/database"
	"github.com/storefrontlabs/catalog-backend/internal/models"
)

// ErrScoreOutOfRange rejects scores outside [0,5] at the boundary. Scores
// are never silently clamped.
var ErrScoreOutOfRange = errors.New("rating score must be between 0 and 5")

type RatingRepository struct {
	base *Repository[models.Rating]
}

func NewRatingRepository(mgr *database.Manager) *RatingRepository {
	return &RatingRepository{base: NewRepository[models.Rating](mgr)}
}

func validScore(score int) bool {
	return score >= 0 && score <= 5
}

func (r *RatingRepository) Create(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	if !validScore(rating.Score) {
		return nil, ErrScoreOutOfRange
	}
	return r.base.Insert(ctx, nil, rating)
}

func (r *RatingRepository) GetByID(ctx context.Context, id uint) (*models.Rating, error) {
	return r.base.SelectOne(ctx, nil, ByID(id))
}

func (r *RatingRepository) ListByProduct(ctx context.Context, productID uint) ([]models.Rating, error) {
	return r.base.SelectAll(ctx, nil, Where("product_id = ?", productID))
}

func (r *RatingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Rating, error) {
	return r.base.SelectAll(ctx, nil, Where("user_id = ?", userID))
}

// Update applies a partial field set. Ownership (creator or superuser) is
// checked at the handler boundary, not here.
func (r *RatingRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Rating, error) {
	if score, ok := fields["score"].(int); ok && !validScore(score) {
		return nil, ErrScoreOutOfRange
	}
	return r.base.Update(ctx, nil, ByID(id), fields)
}

func (r *RatingRepository) Delete(ctx context.Context, id uint) (*models.Rating, error) {
	return r.base.Delete(ctx, nil, ByID(id))
}

func (r *RatingRepository) List(ctx context.Context, offset, limit int) ([]models.Rating, error) {
	return r.base.Paginate(ctx, nil, offset, limit)
}
