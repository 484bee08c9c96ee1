package repositories

import (
	"context"
	"time"

	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *gormModels.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	return translate("create user", "user", user.Username, err)
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*gormModels.User, error) {
	var user gormModels.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, translate("get user", "user", id, err)
	}
	return &user, nil
}

// GetByUsername retrieves a user for login, active or not.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*gormModels.User, error) {
	var user gormModels.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, translate("get user by username", "user", username, err)
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, includeInactive bool, limit, offset int) ([]gormModels.User, int64, error) {
	limit, offset = clampPage(limit, offset)

	q := r.db.WithContext(ctx).Model(&gormModels.User{})
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate("count users", "user", nil, err)
	}

	var users []gormModels.User
	err := q.Order("username ASC").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, translate("list users", "user", nil, err)
	}
	return users, total, nil
}

func (r *UserRepository) Save(ctx context.Context, user *gormModels.User) error {
	err := r.db.WithContext(ctx).Save(user).Error
	return translate("update user", "user", user.ID, err)
}

func (r *UserRepository) TouchLogin(ctx context.Context, id uint, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.User{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
	return translate("touch login", "user", id, err)
}
