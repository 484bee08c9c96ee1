package repositories

import (
	"context"

	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

// ResourceRepository stores inventory items of one owner kind (makerspace or
// business) together with their cost history.
type ResourceRepository[R any, C any] struct {
	db          *gorm.DB
	ownerColumn string
	entity      string
}

type (
	MakerspaceResourceRepository = ResourceRepository[gormModels.MakerspaceResource, gormModels.MakerspaceResourceCost]
	BusinessResourceRepository   = ResourceRepository[gormModels.BusinessResource, gormModels.BusinessResourceCost]
)

func NewMakerspaceResourceRepository(db *gorm.DB) *MakerspaceResourceRepository {
	return &MakerspaceResourceRepository{db: db, ownerColumn: "makerspace_id", entity: "makerspace resource"}
}

func NewBusinessResourceRepository(db *gorm.DB) *BusinessResourceRepository {
	return &BusinessResourceRepository{db: db, ownerColumn: "business_id", entity: "business resource"}
}

func (r *ResourceRepository[R, C]) WithTx(tx *gorm.DB) *ResourceRepository[R, C] {
	return &ResourceRepository[R, C]{db: tx, ownerColumn: r.ownerColumn, entity: r.entity}
}

func (r *ResourceRepository[R, C]) Create(ctx context.Context, resource *R) error {
	err := r.db.WithContext(ctx).Omit("Costs").Create(resource).Error
	return translate("create resource", r.entity, nil, err)
}

// Get loads a resource owned by ownerID, with its cost history.
func (r *ResourceRepository[R, C]) Get(ctx context.Context, ownerID, id uint) (*R, error) {
	var resource R
	err := r.db.WithContext(ctx).
		Preload("Costs", func(db *gorm.DB) *gorm.DB { return db.Order("cost_date ASC, id ASC") }).
		Where(r.ownerColumn+" = ? AND id = ?", ownerID, id).
		First(&resource).Error
	if err != nil {
		return nil, translate("get resource", r.entity, id, err)
	}
	return &resource, nil
}

func (r *ResourceRepository[R, C]) List(ctx context.Context, ownerID uint) ([]R, error) {
	var out []R
	err := r.db.WithContext(ctx).
		Where(r.ownerColumn+" = ?", ownerID).
		Order("name ASC").
		Find(&out).Error
	if err != nil {
		return nil, translate("list resources", r.entity, ownerID, err)
	}
	return out, nil
}

func (r *ResourceRepository[R, C]) Save(ctx context.Context, resource *R) error {
	err := r.db.WithContext(ctx).Omit("Costs").Save(resource).Error
	return translate("update resource", r.entity, nil, err)
}

// Delete removes the resource and its cost entries.
func (r *ResourceRepository[R, C]) Delete(ctx context.Context, ownerID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(new(R)).Where(r.ownerColumn+" = ? AND id = ?", ownerID, id).Count(&count).Error; err != nil {
			return translate("check resource", r.entity, id, err)
		}
		if count == 0 {
			return translate("delete resource", r.entity, id, gorm.ErrRecordNotFound)
		}
		if err := tx.Where("resource_id = ?", id).Delete(new(C)).Error; err != nil {
			return translate("delete resource costs", r.entity, id, err)
		}
		if err := tx.Where("id = ?", id).Delete(new(R)).Error; err != nil {
			return translate("delete resource", r.entity, id, err)
		}
		return nil
	})
}

func (r *ResourceRepository[R, C]) AddCost(ctx context.Context, cost *C) error {
	err := r.db.WithContext(ctx).Create(cost).Error
	return translate("add resource cost", r.entity, nil, err)
}

type costTotals struct {
	Total   float64
	Entries int
}

// CostTotals sums the cost history of one resource.
func (r *ResourceRepository[R, C]) CostTotals(ctx context.Context, resourceID uint) (float64, int, error) {
	var agg costTotals
	err := r.db.WithContext(ctx).
		Model(new(C)).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS entries").
		Where("resource_id = ?", resourceID).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, translate("sum resource costs", r.entity, resourceID, err)
	}
	return agg.Total, agg.Entries, nil
}
