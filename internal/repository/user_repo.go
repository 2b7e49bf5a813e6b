package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/storefrontlabs/catalog-backend/internal/database"
	"github.com/storefrontlabs/catalog-backend/internal/models"
)

// PasswordHasher is the hashing collaborator. The repository only ever sees
// its interface; the algorithm lives with the auth service.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

type UserRepository struct {
	base   *Repository[models.User]
	hasher PasswordHasher
}

func NewUserRepository(mgr *database.Manager, hasher PasswordHasher) *UserRepository {
	return &UserRepository{base: NewRepository[models.User](mgr), hasher: hasher}
}

// Create hashes the plaintext password before insert; the plaintext is
// discarded and never persisted.
func (r *UserRepository) Create(ctx context.Context, user *models.User, plaintext string) (*models.User, error) {
	hash, err := r.hasher.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hash
	return r.base.Insert(ctx, nil, user)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.base.SelectOne(ctx, nil, ByID(id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.base.SelectOne(ctx, nil, Where("email = ?", email))
}

func (r *UserRepository) GetByName(ctx context.Context, fullName string) (*models.User, error) {
	return r.base.SelectOne(ctx, nil, Where("full_name = ?", fullName))
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.base.Exists(ctx, nil, Where("email = ?", email))
}

// Update applies a partial field set by primary key. A password change must
// go through Create-style hashing, so "hashed_password" is never accepted
// here directly; callers pass "password" and it is re-hashed.
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.User, error) {
	if plaintext, ok := fields["password"].(string); ok {
		hash, err := r.hasher.Hash(plaintext)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		delete(fields, "password")
		fields["hashed_password"] = hash
	}
	return r.base.Update(ctx, nil, ByID(id), fields)
}

// SetSuperuser flips the superuser flag. The admin-only authorization gate
// lives at the middleware boundary, not here.
func (r *UserRepository) SetSuperuser(ctx context.Context, id uuid.UUID, superuser bool) (*models.User, error) {
	return r.base.Update(ctx, nil, ByID(id), map[string]interface{}{"is_superuser": superuser})
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.base.Delete(ctx, nil, ByID(id))
}

func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]models.User, error) {
	return r.base.Paginate(ctx, nil, offset, limit)
}
