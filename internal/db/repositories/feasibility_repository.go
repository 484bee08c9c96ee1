package repositories

import (
	"context"

	"dare/enterprisehub/internal/constants"
	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

type FeasibilityRepository struct {
	db *gorm.DB
}

func NewFeasibilityRepository(db *gorm.DB) *FeasibilityRepository {
	return &FeasibilityRepository{db: db}
}

func (r *FeasibilityRepository) WithTx(tx *gorm.DB) *FeasibilityRepository {
	return &FeasibilityRepository{db: tx}
}

func (r *FeasibilityRepository) Create(ctx context.Context, a *gormModels.FeasibilityAssessment) error {
	err := r.db.WithContext(ctx).Create(a).Error
	return translate("create assessment", "feasibility assessment", a.BusinessID, err)
}

func (r *FeasibilityRepository) GetByID(ctx context.Context, id uint, lock bool) (*gormModels.FeasibilityAssessment, error) {
	var a gormModels.FeasibilityAssessment
	if err := forUpdate(r.db.WithContext(ctx), lock).First(&a, id).Error; err != nil {
		return nil, translate("get assessment", "feasibility assessment", id, err)
	}
	return &a, nil
}

func (r *FeasibilityRepository) List(ctx context.Context, businessID uint, status constants.FeasibilityStatus, limit, offset int) ([]gormModels.FeasibilityAssessment, int64, error) {
	limit, offset = clampPage(limit, offset)
	q := r.db.WithContext(ctx).Model(&gormModels.FeasibilityAssessment{})
	if businessID != 0 {
		q = q.Where("business_id = ?", businessID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate("count assessments", "feasibility assessment", nil, err)
	}

	var out []gormModels.FeasibilityAssessment
	err := q.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&out).Error
	if err != nil {
		return nil, 0, translate("list assessments", "feasibility assessment", nil, err)
	}
	return out, total, nil
}

func (r *FeasibilityRepository) SaveVersioned(ctx context.Context, a *gormModels.FeasibilityAssessment, prevVersion int) error {
	err := saveVersioned(r.db.WithContext(ctx), a, prevVersion)
	return translate("update assessment", "feasibility assessment", a.ID, err)
}
