package repositories

import (
	"context"
	"strings"

	"dare/enterprisehub/internal/models/dtos/requests"
	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

type BusinessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) WithTx(tx *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: tx}
}

func (r *BusinessRepository) Create(ctx context.Context, business *gormModels.BusinessProfile) error {
	err := r.db.WithContext(ctx).Omit("YouthRelationships").Create(business).Error
	return translate("create business", "business", business.BusinessName, err)
}

// GetByID loads a non-deleted business. lock takes a row lock, used to
// serialize relationship changes for the same business.
func (r *BusinessRepository) GetByID(ctx context.Context, id uint, lock bool) (*gormModels.BusinessProfile, error) {
	var business gormModels.BusinessProfile
	err := forUpdate(r.db.WithContext(ctx), lock).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&business).Error
	if err != nil {
		return nil, translate("get business", "business", id, err)
	}
	return &business, nil
}

// GetWithYouth loads a business with its active youth relationships.
func (r *BusinessRepository) GetWithYouth(ctx context.Context, id uint) (*gormModels.BusinessProfile, error) {
	var business gormModels.BusinessProfile
	err := r.db.WithContext(ctx).
		Preload("YouthRelationships", "is_active = ?", true).
		Preload("YouthRelationships.Youth").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&business).Error
	if err != nil {
		return nil, translate("get business", "business", id, err)
	}
	return &business, nil
}

func (r *BusinessRepository) List(ctx context.Context, f requests.BusinessFilter) ([]gormModels.BusinessProfile, int64, error) {
	limit, offset := clampPage(f.Limit, f.Offset)

	q := r.db.WithContext(ctx).Model(&gormModels.BusinessProfile{}).Where("is_deleted = ?", false)
	if f.District != "" {
		q = q.Where("district = ?", f.District)
	}
	if f.Sector != "" {
		q = q.Where("sector = ?", f.Sector)
	}
	if f.DareModel != "" {
		q = q.Where("dare_model = ?", f.DareModel)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		q = q.Where("LOWER(business_name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate("count businesses", "business", nil, err)
	}

	var businesses []gormModels.BusinessProfile
	err := q.Order("business_name ASC").Limit(limit).Offset(offset).Find(&businesses).Error
	if err != nil {
		return nil, 0, translate("list businesses", "business", nil, err)
	}
	return businesses, total, nil
}

func (r *BusinessRepository) SaveVersioned(ctx context.Context, business *gormModels.BusinessProfile, prevVersion int) error {
	err := saveVersioned(r.db.WithContext(ctx), business, prevVersion)
	return translate("update business", "business", business.ID, err)
}

func (r *BusinessRepository) SoftDelete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.BusinessProfile{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_deleted": true, "version": gorm.Expr("version + 1")}).Error
	return translate("delete business", "business", id, err)
}

// Exists reports NotFound only for ids that were never created.
func (r *BusinessRepository) Exists(ctx context.Context, id uint) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.BusinessProfile{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return translate("check business", "business", id, err)
	}
	if count == 0 {
		return translate("check business", "business", id, gorm.ErrRecordNotFound)
	}
	return nil
}
