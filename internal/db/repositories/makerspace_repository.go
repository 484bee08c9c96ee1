package repositories

import (
	"context"

	"dare/enterprisehub/internal/constants"
	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

type MakerspaceRepository struct {
	db *gorm.DB
}

func NewMakerspaceRepository(db *gorm.DB) *MakerspaceRepository {
	return &MakerspaceRepository{db: db}
}

func (r *MakerspaceRepository) WithTx(tx *gorm.DB) *MakerspaceRepository {
	return &MakerspaceRepository{db: tx}
}

func (r *MakerspaceRepository) Create(ctx context.Context, ms *gormModels.Makerspace) error {
	err := r.db.WithContext(ctx).Create(ms).Error
	return translate("create makerspace", "makerspace", ms.Name, err)
}

func (r *MakerspaceRepository) GetByID(ctx context.Context, id uint) (*gormModels.Makerspace, error) {
	var ms gormModels.Makerspace
	if err := r.db.WithContext(ctx).First(&ms, id).Error; err != nil {
		return nil, translate("get makerspace", "makerspace", id, err)
	}
	return &ms, nil
}

func (r *MakerspaceRepository) List(ctx context.Context, district constants.District, includeInactive bool) ([]gormModels.Makerspace, error) {
	q := r.db.WithContext(ctx)
	if district != "" {
		q = q.Where("district = ?", district)
	}
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	var out []gormModels.Makerspace
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, translate("list makerspaces", "makerspace", nil, err)
	}
	return out, nil
}

func (r *MakerspaceRepository) Save(ctx context.Context, ms *gormModels.Makerspace) error {
	err := r.db.WithContext(ctx).Save(ms).Error
	return translate("update makerspace", "makerspace", ms.ID, err)
}
