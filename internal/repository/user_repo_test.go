package repository

import (
	"context"
	"testing"

	"github.com/storefrontlabs/catalog-backend/internal/models"
)

func TestUserCreateHashesPassword(t *testing.T) {
	mgr := newTestManager(t)
	hasher := plainHasher{}
	repo := NewUserRepository(mgr, hasher)

	created, err := repo.Create(context.Background(), &models.User{Email: "new@example.com", IsActive: true}, "plaintext-pw")
	if err != nil {
		t.Fatalf("user create failed: %v", err)
	}

	if created.HashedPassword == "plaintext-pw" {
		t.Fatalf("plaintext password was persisted")
	}
	if !hasher.Verify("plaintext-pw", created.HashedPassword) {
		t.Fatalf("stored hash does not verify against the plaintext")
	}
}

func TestUserUpdateRehashesPasswordField(t *testing.T) {
	mgr := newTestManager(t)
	hasher := plainHasher{}
	repo := NewUserRepository(mgr, hasher)

	created, err := repo.Create(context.Background(), &models.User{Email: "change@example.com", IsActive: true}, "old-pw")
	if err != nil {
		t.Fatalf("user create failed: %v", err)
	}

	updated, err := repo.Update(context.Background(), created.ID, map[string]interface{}{"password": "new-pw"})
	if err != nil {
		t.Fatalf("user update failed: %v", err)
	}
	if updated.HashedPassword == "new-pw" {
		t.Fatalf("plaintext password was persisted on update")
	}
	if !hasher.Verify("new-pw", updated.HashedPassword) {
		t.Fatalf("updated hash does not verify against the new plaintext")
	}
}

func TestUserGetByName(t *testing.T) {
	mgr := newTestManager(t)
	repo := NewUserRepository(mgr, plainHasher{})

	created, err := repo.Create(context.Background(), &models.User{
		Email:    "named@example.com",
		FullName: "Ada Lovelace",
		IsActive: true,
	}, "secret-password")
	if err != nil {
		t.Fatalf("user create failed: %v", err)
	}

	got, err := repo.GetByName(context.Background(), "Ada Lovelace")
	if err != nil {
		t.Fatalf("get by name failed: %v", err)
	}
	if got == nil || got.ID != created.ID {
		t.Fatalf("expected user %s back, got %+v", created.ID, got)
	}

	absent, err := repo.GetByName(context.Background(), "Charles Babbage")
	if err != nil {
		t.Fatalf("get by name failed: %v", err)
	}
	if absent != nil {
		t.Fatalf("expected absence for unknown name, got %+v", absent)
	}
}

func TestEmailExists(t *testing.T) {
	mgr := newTestManager(t)
	repo := NewUserRepository(mgr, plainHasher{})

	seedUser(t, mgr, "taken@example.com")

	exists, err := repo.EmailExists(context.Background(), "taken@example.com")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if !exists {
		t.Fatalf("expected taken@example.com to exist")
	}

	exists, err = repo.EmailExists(context.Background(), "free@example.com")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if exists {
		t.Fatalf("expected free@example.com to be absent")
	}
}

func TestSetSuperuserRoundTrips(t *testing.T) {
	mgr := newTestManager(t)
	repo := NewUserRepository(mgr, plainHasher{})

	user := seedUser(t, mgr, "admin@example.com")
	if user.IsSuperuser {
		t.Fatalf("new user should not be superuser")
	}

	granted, err := repo.SetSuperuser(context.Background(), user.ID, true)
	if err != nil {
		t.Fatalf("grant failed: %v", err)
	}
	if !granted.IsSuperuser {
		t.Fatalf("expected superuser flag set after grant")
	}

	revoked, err := repo.SetSuperuser(context.Background(), user.ID, false)
	if err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if revoked.IsSuperuser {
		t.Fatalf("expected superuser flag cleared after revoke")
	}
}
