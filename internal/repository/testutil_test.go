package repository

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/storefrontlabs/catalog-backend/internal/database"
	"github.com/storefrontlabs/catalog-backend/internal/models"
)

// newTestManager opens a fresh in-memory store with foreign keys enforced.
// Max one open connection, otherwise each pooled connection would get its
// own private :memory: database.
func newTestManager(t *testing.T) *database.Manager {
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

	return database.NewManager(db)
}

// plainHasher avoids bcrypt cost in tests that don't verify hashing itself.
type plainHasher struct{}

func (plainHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }

func (plainHasher) Verify(plaintext, hash string) bool { return "hashed:"+plaintext == hash }

func seedCategory(t *testing.T, mgr *database.Manager, name string) *models.Category {
	t.Helper()
	repo := NewCategoryRepository(mgr)
	category, err := repo.Create(context.Background(), &models.Category{Name: name})
	if err != nil {
		t.Fatalf("failed to seed category %q: %v", name, err)
	}
	return category
}

func seedProduct(t *testing.T, mgr *database.Manager, name string, categoryID uint, price float64) *models.Product {
	t.Helper()
	repo := NewProductRepository(mgr)
	product, err := repo.Create(context.Background(), &models.Product{
		Name:       name,
		BasePrice:  price,
		InStock:    true,
		Quantity:   10,
		CategoryID: categoryID,
	})
	if err != nil {
		t.Fatalf("failed to seed product %q: %v", name, err)
	}
	return product
}

func seedUser(t *testing.T, mgr *database.Manager, email string) *models.User {
	t.Helper()
	repo := NewUserRepository(mgr, plainHasher{})
	user, err := repo.Create(context.Background(), &models.User{Email: email, IsActive: true}, "secret-password")
	if err != nil {
		t.Fatalf("failed to seed user %q: %v", email, err)
	}
	return user
}
