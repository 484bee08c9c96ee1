package repositories

import (
	"context"
	"strings"

	"dare/enterprisehub/internal/models/dtos/requests"
	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

type YouthRepository struct {
	db *gorm.DB
}

func NewYouthRepository(db *gorm.DB) *YouthRepository {
	return &YouthRepository{db: db}
}

// WithTx returns a copy bound to tx.
func (r *YouthRepository) WithTx(tx *gorm.DB) *YouthRepository {
	return &YouthRepository{db: tx}
}

func (r *YouthRepository) Create(ctx context.Context, youth *gormModels.YouthProfile) error {
	err := r.db.WithContext(ctx).Create(youth).Error
	return translate("create youth", "youth profile", youth.ID, err)
}

// GetByID returns a youth profile that has not been soft-deleted.
func (r *YouthRepository) GetByID(ctx context.Context, id uint, lock bool) (*gormModels.YouthProfile, error) {
	var youth gormModels.YouthProfile
	err := forUpdate(r.db.WithContext(ctx), lock).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&youth).Error
	if err != nil {
		return nil, translate("get youth", "youth profile", id, err)
	}
	return &youth, nil
}

func (r *YouthRepository) List(ctx context.Context, f requests.YouthFilter) ([]gormModels.YouthProfile, int64, error) {
	limit, offset := clampPage(f.Limit, f.Offset)

	q := r.db.WithContext(ctx).Model(&gormModels.YouthProfile{}).Where("is_deleted = ?", false)
	if f.District != "" {
		q = q.Where("district = ?", f.District)
	}
	if f.DareModel != "" {
		q = q.Where("dare_model = ?", f.DareModel)
	}
	if f.TrainingStatus != "" {
		q = q.Where("training_status = ?", f.TrainingStatus)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate("count youth", "youth profile", nil, err)
	}

	var youth []gormModels.YouthProfile
	err := q.Order("last_name ASC, first_name ASC").Limit(limit).Offset(offset).Find(&youth).Error
	if err != nil {
		return nil, 0, translate("list youth", "youth profile", nil, err)
	}
	return youth, total, nil
}

func (r *YouthRepository) SaveVersioned(ctx context.Context, youth *gormModels.YouthProfile, prevVersion int) error {
	err := saveVersioned(r.db.WithContext(ctx), youth, prevVersion)
	return translate("update youth", "youth profile", youth.ID, err)
}

// SoftDelete flags the profile; it is idempotent.
func (r *YouthRepository) SoftDelete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.YouthProfile{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_deleted": true, "version": gorm.Expr("version + 1")}).Error
	return translate("delete youth", "youth profile", id, err)
}

// ExistingIDs returns which of ids belong to non-deleted profiles.
func (r *YouthRepository) ExistingIDs(ctx context.Context, ids []uint) (map[uint]bool, error) {
	found := make(map[uint]bool, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	var existing []uint
	err := r.db.WithContext(ctx).
		Model(&gormModels.YouthProfile{}).
		Where("id IN ? AND is_deleted = ?", ids, false).
		Pluck("id", &existing).Error
	if err != nil {
		return nil, translate("check youth ids", "youth profile", ids, err)
	}
	for _, id := range existing {
		found[id] = true
	}
	return found, nil
}

// Exists reports NotFound only for ids that were never created; soft-deleted
// profiles still exist.
func (r *YouthRepository) Exists(ctx context.Context, id uint) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.YouthProfile{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return translate("check youth", "youth profile", id, err)
	}
	if count == 0 {
		return translate("check youth", "youth profile", id, gorm.ErrRecordNotFound)
	}
	return nil
}
