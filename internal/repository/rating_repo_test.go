package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/storefrontlabs/catalog-backend/internal/models"
)

func TestRatingScoreBounds(t *testing.T) {
	mgr := newTestManager(t)
	ratings := NewRatingRepository(mgr)

	category := seedCategory(t, mgr, "audio")
	product := seedProduct(t, mgr, "speaker", category.ID, 80.00)
	user := seedUser(t, mgr, "critic@example.com")

	for _, score := range []int{-1, 6, 100} {
		_, err := ratings.Create(context.Background(), &models.Rating{
			UserID:    user.ID,
			ProductID: product.ID,
			Score:     score,
		})
		if !errors.Is(err, ErrScoreOutOfRange) {
			t.Fatalf("score %d: expected ErrScoreOutOfRange, got %v", score, err)
		}
	}

	for _, score := range []int{0, 5} {
		created, err := ratings.Create(context.Background(), &models.Rating{
			UserID:    user.ID,
			ProductID: product.ID,
			Score:     score,
		})
		if err != nil {
			t.Fatalf("score %d: create failed: %v", score, err)
		}
		if created.Score != score {
			t.Fatalf("score %d was altered to %d", score, created.Score)
		}
	}
}

func TestRatingUpdateRejectsOutOfRangeScore(t *testing.T) {
	mgr := newTestManager(t)
	ratings := NewRatingRepository(mgr)

	category := seedCategory(t, mgr, "video")
	product := seedProduct(t, mgr, "projector", category.ID, 300.00)
	user := seedUser(t, mgr, "viewer@example.com")

	created, err := ratings.Create(context.Background(), &models.Rating{
		UserID:    user.ID,
		ProductID: product.ID,
		Score:     3,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = ratings.Update(context.Background(), created.ID, map[string]interface{}{"score": 9})
	if !errors.Is(err, ErrScoreOutOfRange) {
		t.Fatalf("expected ErrScoreOutOfRange, got %v", err)
	}

	reloaded, err := ratings.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Score != 3 {
		t.Fatalf("score was clamped or changed to %d", reloaded.Score)
	}
}
