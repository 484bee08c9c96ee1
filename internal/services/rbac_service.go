package services

import (
	"context"
	"time"

	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/db/repositories"
	"dare/enterprisehub/internal/logging"
	"dare/enterprisehub/internal/metrics"
	"dare/enterprisehub/internal/models/dtos/requests"
	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

// RBACService answers permission checks and manages role grants. Permission
// sets are cached per role.
type RBACService struct {
	db      *gorm.DB
	repo    *repositories.RBACRepository
	cache   common.CacheInterface
	ttl     time.Duration
	metrics *metrics.MetricsRegistry
}

func NewRBACService(db *gorm.DB, cache common.CacheInterface, ttl time.Duration, m *metrics.MetricsRegistry) *RBACService {
	return &RBACService{
		db:      db,
		repo:    repositories.NewRBACRepository(db),
		cache:   cache,
		ttl:     ttl,
		metrics: m,
	}
}

func permissionKey(resource, action string) string {
	return resource + ":" + action
}

func roleCacheKey(role string) string {
	return string(constants.CachePrefixPermissions) + role
}

// allPermissionKeys is what an admin effectively holds.
func allPermissionKeys() []string {
	keys := make([]string, 0, len(constants.AllResources)*len(constants.AllActions))
	for _, res := range constants.AllResources {
		for _, act := range constants.AllActions {
			keys = append(keys, permissionKey(res, act))
		}
	}
	return keys
}

// PermissionsFor lists the "resource:action" keys granted to a role.
func (s *RBACService) PermissionsFor(ctx context.Context, role constants.UserRole) ([]string, error) {
	if role == constants.RoleAdmin {
		return allPermissionKeys(), nil
	}

	keys, hit, err := common.CachedJSON(s.cache, roleCacheKey(string(role)), s.ttl, func() ([]string, error) {
		return s.repo.PermissionKeys(ctx, string(role))
	})
	s.metrics.ObserveCache(string(constants.CachePrefixPermissions), hit)
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// HasPermission reports whether role may perform action on resource.
func (s *RBACService) HasPermission(ctx context.Context, role constants.UserRole, resource, action string) (bool, error) {
	if role == constants.RoleAdmin {
		return true, nil
	}
	keys, err := s.PermissionsFor(ctx, role)
	if err != nil {
		return false, err
	}
	want := permissionKey(resource, action)
	for _, k := range keys {
		if k == want {
			return true, nil
		}
	}
	return false, nil
}

func (s *RBACService) invalidate(roleNames ...string) {
	if s.cache == nil {
		return
	}
	keys := make([]string, len(roleNames))
	for i, name := range roleNames {
		keys[i] = roleCacheKey(name)
	}
	s.cache.Delete(keys...)
}

// SeedDefaults creates every role, the full permission catalogue and the
// default grants. Safe to run repeatedly.
func (s *RBACService) SeedDefaults(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		perms := make(map[string]uint)
		for _, res := range constants.AllResources {
			for _, act := range constants.AllActions {
				p, err := repo.EnsurePermission(ctx, res, act)
				if err != nil {
					return err
				}
				perms[permissionKey(res, act)] = p.ID
			}
		}

		for _, role := range constants.UserRoles {
			r, err := repo.EnsureRole(ctx, string(role), "")
			if err != nil {
				return err
			}
			for res, actions := range constants.DefaultGrants[role] {
				for _, act := range actions {
					if err := repo.Grant(ctx, r.ID, perms[permissionKey(res, act)]); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	names := make([]string, len(constants.UserRoles))
	for i, role := range constants.UserRoles {
		names[i] = string(role)
	}
	s.invalidate(names...)
	logging.Info("RBAC defaults seeded", "roles", len(constants.UserRoles))
	return nil
}

func (s *RBACService) ListRoles(ctx context.Context) ([]gormModels.Role, error) {
	return s.repo.ListRoles(ctx)
}

func (s *RBACService) GetRole(ctx context.Context, id uint) (*gormModels.Role, error) {
	return s.repo.GetRole(ctx, id)
}

func (s *RBACService) CreateRole(ctx context.Context, req *requests.CreateRoleRequest) (*gormModels.Role, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	role := &gormModels.Role{Name: req.Name, Description: req.Description}
	if err := s.repo.CreateRole(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RBACService) ListPermissions(ctx context.Context) ([]gormModels.Permission, error) {
	return s.repo.ListPermissions(ctx)
}

// Grant attaches resource:action to the role, creating the permission row
// when it is new.
func (s *RBACService) Grant(ctx context.Context, roleID uint, req *requests.GrantPermissionRequest) (*gormModels.Role, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	role, err := s.repo.GetRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	perm, err := s.repo.EnsurePermission(ctx, req.Resource, req.Action)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Grant(ctx, role.ID, perm.ID); err != nil {
		return nil, err
	}
	s.invalidate(role.Name)
	logging.Info("Permission granted", "role", role.Name, "permission", permissionKey(req.Resource, req.Action))
	return s.repo.GetRole(ctx, roleID)
}

// Revoke removes the grant. Revoking a grant that does not exist is a no-op.
func (s *RBACService) Revoke(ctx context.Context, roleID uint, req *requests.GrantPermissionRequest) (*gormModels.Role, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	role, err := s.repo.GetRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	perm, err := s.repo.GetPermission(ctx, req.Resource, req.Action)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Revoke(ctx, role.ID, perm.ID); err != nil {
		return nil, err
	}
	s.invalidate(role.Name)
	logging.Info("Permission revoked", "role", role.Name, "permission", permissionKey(req.Resource, req.Action))
	return s.repo.GetRole(ctx, roleID)
}

