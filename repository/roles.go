package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Nic0aranda/PokeShop-sub000/client"
	"github.com/Nic0aranda/PokeShop-sub000/models"
)

// RoleRepository exposes the /roles resource family.
type RoleRepository struct {
	client client.Doer
	log    *zap.Logger
}

func NewRoleRepository(c client.Doer, log *zap.Logger) *RoleRepository {
	return &RoleRepository{client: c, log: log}
}

func (r *RoleRepository) List(ctx context.Context) []models.Role {
	return guard(ctx, r.log, "roles.list", []models.Role{}, func() ([]models.Role, error) {
		var roles []models.Role
		if err := client.GetJSON(ctx, r.client, "/roles", nil, &roles); err != nil {
			return nil, err
		}
		return roles, nil
	})
}

func (r *RoleRepository) GetByID(ctx context.Context, id int) (models.Role, bool) {
	return guardFound(ctx, r.log, "roles.getById", func() (models.Role, error) {
		var role models.Role
		err := client.GetJSON(ctx, r.client, fmt.Sprintf("/roles/%d", id), nil, &role)
		return role, err
	})
}

// Create persists a new role and returns its id, or -1 on failure.
func (r *RoleRepository) Create(ctx context.Context, role models.Role) int {
	return guardID(ctx, r.log, "roles.create", func() (int, error) {
		var created models.Role
		if err := client.PostJSON(ctx, r.client, "/roles", role, &created); err != nil {
			return 0, err
		}
		return created.ID, nil
	})
}

// Update persists changes to a role. Fire-and-forget.
func (r *RoleRepository) Update(ctx context.Context, role models.Role) {
	guardSilent(ctx, r.log, "roles.update", func() error {
		return client.PutJSON(ctx, r.client, fmt.Sprintf("/roles/%d", role.ID), role)
	})
}

// Delete removes a role. Fire-and-forget.
func (r *RoleRepository) Delete(ctx context.Context, id int) {
	guardSilent(ctx, r.log, "roles.delete", func() error {
		return client.Delete(ctx, r.client, fmt.Sprintf("/roles/%d", id))
	})
}
