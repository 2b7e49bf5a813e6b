package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/storefrontlabs/catalog-backend/internal/config"
	"github.com/storefrontlabs/catalog-backend/internal/database"
	"github.com/storefrontlabs/catalog-backend/internal/middleware"
	"github.com/storefrontlabs/catalog-backend/internal/models"
	"github.com/storefrontlabs/catalog-backend/internal/repository"
	"github.com/storefrontlabs/catalog-backend/internal/services"
)

type ratingEnv struct {
	app     *fiber.App
	auth    *services.AuthService
	users   *repository.UserRepository
	ratings *repository.RatingRepository
	mgr     *database.Manager
	product *models.Product
}

func newRatingEnv(t *testing.T) *ratingEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	mgr := database.NewManager(db)
	cfg := &config.Config{
		JWTSecret:    "test-secret-key",
		JWTAlgorithm: "HS256",
		JWTExpiry:    time.Hour,
	}

	hasher := services.NewBcryptHasher()
	users := repository.NewUserRepository(mgr, hasher)
	ratings := repository.NewRatingRepository(mgr)
	auth := services.NewAuthService(users, hasher, cfg)

	categories := repository.NewCategoryRepository(mgr)
	category, err := categories.Create(context.Background(), &models.Category{Name: "shoes"})
	if err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	products := repository.NewProductRepository(mgr)
	product, err := products.Create(context.Background(), &models.Product{
		Name:       "runner",
		BasePrice:  50,
		InStock:    true,
		CategoryID: category.ID,
	})
	if err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}

	handler := NewRatingHandler(ratings)

	app := fiber.New()
	authenticated := []fiber.Handler{
		middleware.JWTProtected(cfg),
		middleware.LoadCurrentUser(users),
	}
	adminOnly := []fiber.Handler{
		middleware.JWTProtected(cfg),
		middleware.AdminRequired(auth),
	}
	app.Get("/ratings", append(adminOnly, handler.List)...)
	app.Get("/ratings/mine", append(authenticated, handler.ListMine)...)
	app.Post("/ratings", append(authenticated, handler.Create)...)
	app.Put("/ratings/:id", append(authenticated, handler.Update)...)
	app.Delete("/ratings/:id", append(authenticated, handler.Delete)...)

	return &ratingEnv{app: app, auth: auth, users: users, ratings: ratings, mgr: mgr, product: product}
}

func (e *ratingEnv) token(t *testing.T, email string, superuser bool) string {
	t.Helper()
	user, err := e.users.Create(context.Background(), &models.User{
		Email:       email,
		IsActive:    true,
		IsSuperuser: superuser,
	}, "password-123")
	if err != nil {
		t.Fatalf("failed to seed user %q: %v", email, err)
	}
	token, err := e.auth.IssueToken(user)
	if err != nil {
		t.Fatalf("failed to issue token for %q: %v", email, err)
	}
	return token
}

func (e *ratingEnv) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

func TestRatingMutationRequiresToken(t *testing.T) {
	env := newRatingEnv(t)

	resp := env.request(t, http.MethodPost, "/ratings", "", map[string]interface{}{
		"product_id": env.product.ID, "score": 4,
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
}

func TestRatingOwnershipGate(t *testing.T) {
	env := newRatingEnv(t)

	owner := env.token(t, "owner@example.com", false)
	stranger := env.token(t, "stranger@example.com", false)
	admin := env.token(t, "admin@example.com", true)

	resp := env.request(t, http.MethodPost, "/ratings", owner, map[string]interface{}{
		"product_id": env.product.ID, "score": 4, "comment": "solid",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 on create, got %d", resp.StatusCode)
	}
	var created models.Rating
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode created rating: %v", err)
	}
	path := fmt.Sprintf("/ratings/%d", created.ID)

	// A different non-superuser may not touch it.
	resp = env.request(t, http.MethodPut, path, stranger, map[string]interface{}{"score": 1})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner update, got %d", resp.StatusCode)
	}
	resp = env.request(t, http.MethodDelete, path, stranger, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner delete, got %d", resp.StatusCode)
	}

	// The creator may.
	resp = env.request(t, http.MethodPut, path, owner, map[string]interface{}{"score": 5})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for owner update, got %d", resp.StatusCode)
	}
	var updated models.Rating
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("failed to decode updated rating: %v", err)
	}
	if updated.Score != 5 {
		t.Fatalf("expected score 5 after owner update, got %d", updated.Score)
	}

	// So may a superuser who is not the creator.
	resp = env.request(t, http.MethodDelete, path, admin, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for superuser delete, got %d", resp.StatusCode)
	}

	gone, err := env.ratings.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if gone != nil {
		t.Fatalf("expected rating to be gone, got %+v", gone)
	}
}

func TestRatingListingRoutes(t *testing.T) {
	env := newRatingEnv(t)

	owner := env.token(t, "lister@example.com", false)
	other := env.token(t, "other@example.com", false)
	admin := env.token(t, "listadmin@example.com", true)

	resp := env.request(t, http.MethodPost, "/ratings", owner, map[string]interface{}{
		"product_id": env.product.ID, "score": 3,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 on create, got %d", resp.StatusCode)
	}

	// The full listing is admin-only, gated by the superuser check.
	resp = env.request(t, http.MethodGet, "/ratings", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
	resp = env.request(t, http.MethodGet, "/ratings", other, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-superuser, got %d", resp.StatusCode)
	}
	resp = env.request(t, http.MethodGet, "/ratings", admin, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for superuser, got %d", resp.StatusCode)
	}
	var all []models.Rating
	if err := json.NewDecoder(resp.Body).Decode(&all); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 rating in full listing, got %d", len(all))
	}

	// /mine is scoped to the caller.
	resp = env.request(t, http.MethodGet, "/ratings/mine", owner, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for own listing, got %d", resp.StatusCode)
	}
	var mine []models.Rating
	if err := json.NewDecoder(resp.Body).Decode(&mine); err != nil {
		t.Fatalf("failed to decode own listing: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 own rating, got %d", len(mine))
	}

	resp = env.request(t, http.MethodGet, "/ratings/mine", other, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for empty own listing, got %d", resp.StatusCode)
	}
	var none []models.Rating
	if err := json.NewDecoder(resp.Body).Decode(&none); err != nil {
		t.Fatalf("failed to decode empty listing: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no ratings for the other user, got %d", len(none))
	}
}

func TestRatingCreateRejectsOutOfRangeScore(t *testing.T) {
	env := newRatingEnv(t)
	owner := env.token(t, "bounds@example.com", false)

	resp := env.request(t, http.MethodPost, "/ratings", owner, map[string]interface{}{
		"product_id": env.product.ID, "score": 6,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for score 6, got %d", resp.StatusCode)
	}
}
