package repositories

import (
	"context"
	"errors"

	"dare/enterprisehub/internal/apperr"
	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RBACRepository struct {
	db *gorm.DB
}

func NewRBACRepository(db *gorm.DB) *RBACRepository {
	return &RBACRepository{db: db}
}

func (r *RBACRepository) WithTx(tx *gorm.DB) *RBACRepository {
	return &RBACRepository{db: tx}
}

func (r *RBACRepository) CreateRole(ctx context.Context, role *gormModels.Role) error {
	err := r.db.WithContext(ctx).Create(role).Error
	return translate("create role", "role", role.Name, err)
}

func (r *RBACRepository) GetRoleByName(ctx context.Context, name string) (*gormModels.Role, error) {
	var role gormModels.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, translate("get role", "role", name, err)
	}
	return &role, nil
}

func (r *RBACRepository) GetRole(ctx context.Context, id uint) (*gormModels.Role, error) {
	var role gormModels.Role
	if err := r.db.WithContext(ctx).First(&role, id).Error; err != nil {
		return nil, translate("get role", "role", id, err)
	}
	perms, err := r.PermissionsOfRole(ctx, role.ID)
	if err != nil {
		return nil, err
	}
	role.Permissions = perms
	return &role, nil
}

func (r *RBACRepository) ListRoles(ctx context.Context) ([]gormModels.Role, error) {
	var roles []gormModels.Role
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&roles).Error; err != nil {
		return nil, translate("list roles", "role", nil, err)
	}
	return roles, nil
}

func (r *RBACRepository) ListPermissions(ctx context.Context) ([]gormModels.Permission, error) {
	var perms []gormModels.Permission
	if err := r.db.WithContext(ctx).Order("resource ASC, action ASC").Find(&perms).Error; err != nil {
		return nil, translate("list permissions", "permission", nil, err)
	}
	return perms, nil
}

// EnsureRole returns the named role, creating it when missing.
func (r *RBACRepository) EnsureRole(ctx context.Context, name, description string) (*gormModels.Role, error) {
	role := gormModels.Role{Name: name, Description: description}
	err := r.db.WithContext(ctx).
		Where(gormModels.Role{Name: name}).
		Attrs(gormModels.Role{Description: description}).
		FirstOrCreate(&role).Error
	if err != nil {
		return nil, translate("ensure role", "role", name, err)
	}
	return &role, nil
}

// EnsurePermission returns the (resource, action) permission, creating it when missing.
func (r *RBACRepository) EnsurePermission(ctx context.Context, resource, action string) (*gormModels.Permission, error) {
	var perm gormModels.Permission
	err := r.db.WithContext(ctx).
		Where(gormModels.Permission{Resource: resource, Action: action}).
		FirstOrCreate(&perm).Error
	if err != nil {
		return nil, translate("ensure permission", "permission", resource+":"+action, err)
	}
	return &perm, nil
}

// Grant links a permission to a role; granting twice is a no-op.
func (r *RBACRepository) Grant(ctx context.Context, roleID, permissionID uint) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&gormModels.RolePermission{RoleID: roleID, PermissionID: permissionID}).Error
	return translate("grant permission", "role permission", permissionID, err)
}

func (r *RBACRepository) Revoke(ctx context.Context, roleID, permissionID uint) error {
	err := r.db.WithContext(ctx).
		Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		Delete(&gormModels.RolePermission{}).Error
	return translate("revoke permission", "role permission", permissionID, err)
}

func (r *RBACRepository) GetPermission(ctx context.Context, resource, action string) (*gormModels.Permission, error) {
	var perm gormModels.Permission
	err := r.db.WithContext(ctx).
		Where("resource = ? AND action = ?", resource, action).
		First(&perm).Error
	if err != nil {
		return nil, translate("get permission", "permission", resource+":"+action, err)
	}
	return &perm, nil
}

func (r *RBACRepository) PermissionsOfRole(ctx context.Context, roleID uint) ([]gormModels.Permission, error) {
	var perms []gormModels.Permission
	err := r.db.WithContext(ctx).
		Joins("JOIN role_permissions rp ON rp.permission_id = permissions.id").
		Where("rp.role_id = ?", roleID).
		Order("permissions.resource ASC, permissions.action ASC").
		Find(&perms).Error
	if err != nil {
		return nil, translate("list role permissions", "permission", roleID, err)
	}
	return perms, nil
}

// PermissionKeys returns "resource:action" strings granted to the named role.
// An unknown role has no permissions.
func (r *RBACRepository) PermissionKeys(ctx context.Context, roleName string) ([]string, error) {
	role, err := r.GetRoleByName(ctx, roleName)
	if err != nil {
		var nf *apperr.NotFoundError
		if errors.As(err, &nf) {
			return []string{}, nil
		}
		return nil, err
	}
	perms, err := r.PermissionsOfRole(ctx, role.ID)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(perms))
	for _, p := range perms {
		keys = append(keys, p.Resource+":"+p.Action)
	}
	return keys, nil
}
