package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Nic0aranda/PokeShop-sub000/client"
	"github.com/Nic0aranda/PokeShop-sub000/models"
)

// UserRepository exposes the /usuarios resource family.
type UserRepository struct {
	client client.Doer
	log    *zap.Logger
}

func NewUserRepository(c client.Doer, log *zap.Logger) *UserRepository {
	return &UserRepository{client: c, log: log}
}

// List returns every user, or an empty slice when the backend is unreachable.
func (r *UserRepository) List(ctx context.Context) []models.User {
	return guard(ctx, r.log, "users.list", []models.User{}, func() ([]models.User, error) {
		var users []models.User
		if err := client.GetJSON(ctx, r.client, "/usuarios", nil, &users); err != nil {
			return nil, err
		}
		return users, nil
	})
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (models.User, bool) {
	return guardFound(ctx, r.log, "users.getById", func() (models.User, error) {
		var user models.User
		err := client.GetJSON(ctx, r.client, fmt.Sprintf("/usuarios/%d", id), nil, &user)
		return user, err
	})
}

// GetByEmail fetches the full user collection and scans for an exact,
// case-sensitive match. Login correctness depends on these semantics, so
// the linear scan is deliberate.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (models.User, bool) {
	for _, u := range r.List(ctx) {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// Create persists a new user and returns its id, or -1 on failure.
func (r *UserRepository) Create(ctx context.Context, user models.User) int {
	return guardID(ctx, r.log, "users.create", func() (int, error) {
		var created models.User
		if err := client.PostJSON(ctx, r.client, "/usuarios", user, &created); err != nil {
			return 0, err
		}
		return created.ID, nil
	})
}

// Update persists changes to an existing user. Failures are logged and
// swallowed; the caller gets no signal.
func (r *UserRepository) Update(ctx context.Context, user models.User) {
	guardSilent(ctx, r.log, "users.update", func() error {
		return client.PutJSON(ctx, r.client, fmt.Sprintf("/usuarios/%d", user.ID), user)
	})
}

// UpdateStatus flips a user's active flag. Fire-and-forget like Update.
func (r *UserRepository) UpdateStatus(ctx context.Context, id int, active bool) {
	guardSilent(ctx, r.log, "users.updateStatus", func() error {
		body := map[string]bool{"activo": active}
		return client.PutJSON(ctx, r.client, fmt.Sprintf("/usuarios/%d/estado", id), body)
	})
}

// Delete removes a user. Deleting an already-deleted id reports false, it
// never raises.
func (r *UserRepository) Delete(ctx context.Context, id int) bool {
	return guardOK(ctx, r.log, "users.delete", func() error {
		return client.Delete(ctx, r.client, fmt.Sprintf("/usuarios/%d", id))
	})
}
