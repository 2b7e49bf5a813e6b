package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/storefrontlabs/catalog-backend/internal/models"
)

func TestOrderCreateSnapshotsPrices(t *testing.T) {
	mgr := newTestManager(t)
	orders := NewOrderRepository(mgr)
	products := NewProductRepository(mgr)

	category := seedCategory(t, mgr, "electronics")
	product := seedProduct(t, mgr, "headphones", category.ID, 120.00)
	user := seedUser(t, mgr, "buyer@example.com")

	order, err := orders.Create(context.Background(), &models.Order{
		UserID: user.ID,
		Status: models.OrderStatusPending,
		Email:  user.Email,
	}, []OrderItemInput{{ProductID: product.ID, Quantity: 2}})
	if err != nil {
		t.Fatalf("order create failed: %v", err)
	}

	if len(order.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(order.Items))
	}
	if order.Items[0].Price != 120.00 {
		t.Fatalf("expected snapshot price 120.00, got %v", order.Items[0].Price)
	}
	if order.TotalPrice != 240.00 {
		t.Fatalf("expected total 240.00, got %v", order.TotalPrice)
	}

	// A later product price change must not touch the snapshot.
	if _, err := products.Update(context.Background(), product.ID, map[string]interface{}{"base_price": 999.00}); err != nil {
		t.Fatalf("product update failed: %v", err)
	}

	reloaded, err := orders.GetByID(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("order reload failed: %v", err)
	}
	if reloaded.Items[0].Price != 120.00 {
		t.Fatalf("snapshot price changed to %v after product update", reloaded.Items[0].Price)
	}
	if reloaded.TotalPrice != 240.00 {
		t.Fatalf("order total changed to %v after product update", reloaded.TotalPrice)
	}
}

func TestOrderCreateUsesSalePriceWhenSet(t *testing.T) {
	mgr := newTestManager(t)
	orders := NewOrderRepository(mgr)
	products := NewProductRepository(mgr)

	category := seedCategory(t, mgr, "books")
	product := seedProduct(t, mgr, "novel", category.ID, 20.00)
	if _, err := products.Update(context.Background(), product.ID, map[string]interface{}{"sale_price": 15.00}); err != nil {
		t.Fatalf("product update failed: %v", err)
	}
	user := seedUser(t, mgr, "reader@example.com")

	order, err := orders.Create(context.Background(), &models.Order{
		UserID: user.ID,
		Email:  user.Email,
	}, []OrderItemInput{{ProductID: product.ID, Quantity: 1}})
	if err != nil {
		t.Fatalf("order create failed: %v", err)
	}
	if order.Items[0].Price != 15.00 {
		t.Fatalf("expected sale price 15.00, got %v", order.Items[0].Price)
	}
}

func TestOrderCreateRejectsEmptyAndUnknown(t *testing.T) {
	mgr := newTestManager(t)
	orders := NewOrderRepository(mgr)
	user := seedUser(t, mgr, "empty@example.com")

	_, err := orders.Create(context.Background(), &models.Order{UserID: user.ID, Email: user.Email}, nil)
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}

	_, err = orders.Create(context.Background(), &models.Order{UserID: user.ID, Email: user.Email},
		[]OrderItemInput{{ProductID: 4242, Quantity: 1}})
	if !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}

	// The failed order must have rolled back with its unit of work.
	remaining, listErr := orders.List(context.Background(), 0, 50)
	if listErr != nil {
		t.Fatalf("order list failed: %v", listErr)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected rollback to leave no orders, got %d", len(remaining))
	}
}

func TestOrderCreateRollsBackOnBadQuantity(t *testing.T) {
	mgr := newTestManager(t)
	orders := NewOrderRepository(mgr)

	category := seedCategory(t, mgr, "garden")
	product := seedProduct(t, mgr, "spade", category.ID, 12.00)
	user := seedUser(t, mgr, "digger@example.com")

	_, err := orders.Create(context.Background(), &models.Order{UserID: user.ID, Email: user.Email},
		[]OrderItemInput{
			{ProductID: product.ID, Quantity: 1},
			{ProductID: product.ID, Quantity: 0},
		})
	if !errors.Is(err, ErrBadQuantity) {
		t.Fatalf("expected ErrBadQuantity, got %v", err)
	}

	remaining, listErr := orders.List(context.Background(), 0, 50)
	if listErr != nil {
		t.Fatalf("order list failed: %v", listErr)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected rollback to leave no orders, got %d", len(remaining))
	}
}
