package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefrontlabs/catalog-backend/internal/database"
	"github.com/storefrontlabs/catalog-backend/internal/models"
)

var (
	ErrEmptyOrder     = errors.New("order must contain at least one item")
	ErrUnknownProduct = errors.New("order references an unknown product")
	ErrBadQuantity    = errors.New("item quantity must be at least 1")
)

// OrderItemInput describes one requested line before prices are snapshotted.
type OrderItemInput struct {
	ProductID uint
	Quantity  int
	ColorID   *uint
	SizeID    *uint
}

type OrderRepository struct {
	orders   *Repository[models.Order]
	items    *Repository[models.OrderItem]
	products *Repository[models.Product]
}

func NewOrderRepository(mgr *database.Manager) *OrderRepository {
	return &OrderRepository{
		orders:   NewRepository[models.Order](mgr),
		items:    NewRepository[models.OrderItem](mgr),
		products: NewRepository[models.Product](mgr),
	}
}

// Create inserts the order and its items inside one unit of work. Each item
// snapshots the product's effective price at order time; the snapshot is
// immutable and independent of later product price changes.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order, inputs []OrderItemInput) (*models.Order, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyOrder
	}

	err := r.orders.Manager().Transaction(ctx, func(tx *gorm.DB) error {
		if _, err := r.orders.Insert(ctx, tx, order); err != nil {
			return err
		}

		total := 0.0
		for _, in := range inputs {
			if in.Quantity < 1 {
				return ErrBadQuantity
			}
			product, err := r.products.SelectOne(ctx, tx, ByID(in.ProductID))
			if err != nil {
				return err
			}
			if product == nil {
				return ErrUnknownProduct
			}

			price := product.EffectivePrice()
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				ColorID:   in.ColorID,
				SizeID:    in.SizeID,
				Price:     price,
				Quantity:  in.Quantity,
			}
			if _, err := r.items.Insert(ctx, tx, &item); err != nil {
				return err
			}
			total += price * float64(in.Quantity)
		}

		_, err := r.orders.Update(ctx, tx, ByID(order.ID), map[string]interface{}{"total_price": total})
		return err
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, order.ID)
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	return r.orders.DetailOne(ctx, nil, "id", id, "Items", "Items.Product")
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.Order, error) {
	var rows []models.Order
	db := r.orders.conn(ctx, nil).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("id ASC").
		Offset(normalizeOffset(offset)).
		Limit(normalizeLimit(limit))
	if err := db.Find(&rows).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return rows, nil
}

func (r *OrderRepository) List(ctx context.Context, offset, limit int) ([]models.Order, error) {
	return r.orders.DetailList(ctx, nil, offset, limit, "Items")
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	return r.orders.Update(ctx, nil, ByID(id), map[string]interface{}{"status": status})
}

func (r *OrderRepository) Delete(ctx context.Context, id uint) (*models.Order, error) {
	return r.orders.Delete(ctx, nil, ByID(id))
}
