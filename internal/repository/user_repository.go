package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Abeke05/Aristotel/internal/models"
	"github.com/Abeke05/Aristotel/pkg/storage"
)

const usersCollection = "users"

// UserRepository provides collection access for user accounts. Lookups
// are linear scans over the stored sequence; writes rewrite the whole
// collection.
type UserRepository struct {
	store *storage.Store
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(store *storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

// All returns every stored user in insertion order.
func (r *UserRepository) All(ctx context.Context) []models.User {
	return storage.LoadAll[models.User](r.store, usersCollection)
}

// FindByEmail returns the first user with an exactly matching email, or
// nil if none exists. The match is case-sensitive.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) *models.User {
	for _, user := range r.All(ctx) {
		if user.Email == email {
			u := user
			return &u
		}
	}
	return nil
}

// FindByID returns a user by identifier, or nil on a miss.
func (r *UserRepository) FindByID(ctx context.Context, id string) *models.User {
	for _, user := range r.All(ctx) {
		if user.ID == id {
			u := user
			return &u
		}
	}
	return nil
}

// ListByRole returns all users holding the given role, in insertion order.
func (r *UserRepository) ListByRole(ctx context.Context, role models.Role) []models.User {
	var result []models.User
	for _, user := range r.All(ctx) {
		if user.Role == role {
			result = append(result, user)
		}
	}
	return result
}

// Append adds a new user at the tail of the collection and persists it.
// A fresh identifier and creation timestamp are assigned when unset.
func (r *UserRepository) Append(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	users := r.All(ctx)
	users = append(users, *user)
	if err := storage.SaveAll(r.store, usersCollection, users); err != nil {
		return fmt.Errorf("append user: %w", err)
	}
	return nil
}
