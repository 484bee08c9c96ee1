package repositories

import (
	"context"
	"errors"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/constants"
	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

type TrackingRepository struct {
	db *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) *TrackingRepository {
	return &TrackingRepository{db: db}
}

func (r *TrackingRepository) WithTx(tx *gorm.DB) *TrackingRepository {
	return &TrackingRepository{db: tx}
}

// Create inserts a record; a second record for the same business, period and
// period start is reported as a conflict.
func (r *TrackingRepository) Create(ctx context.Context, rec *gormModels.BusinessTracking) error {
	err := r.db.WithContext(ctx).Create(rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict(constants.MsgDuplicateTracking)
	}
	return translate("record tracking", "tracking record", rec.BusinessID, err)
}

func (r *TrackingRepository) GetByID(ctx context.Context, id uint, lock bool) (*gormModels.BusinessTracking, error) {
	var rec gormModels.BusinessTracking
	if err := forUpdate(r.db.WithContext(ctx), lock).First(&rec, id).Error; err != nil {
		return nil, translate("get tracking", "tracking record", id, err)
	}
	return &rec, nil
}

// ListByBusiness returns records most recent period first.
func (r *TrackingRepository) ListByBusiness(ctx context.Context, businessID uint, limit, offset int) ([]gormModels.BusinessTracking, int64, error) {
	limit, offset = clampPage(limit, offset)
	q := r.db.WithContext(ctx).Model(&gormModels.BusinessTracking{}).Where("business_id = ?", businessID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate("count tracking", "tracking record", businessID, err)
	}

	var recs []gormModels.BusinessTracking
	err := q.Order("period_start DESC, id DESC").Limit(limit).Offset(offset).Find(&recs).Error
	if err != nil {
		return nil, 0, translate("list tracking", "tracking record", businessID, err)
	}
	return recs, total, nil
}

func (r *TrackingRepository) SaveVersioned(ctx context.Context, rec *gormModels.BusinessTracking, prevVersion int) error {
	err := saveVersioned(r.db.WithContext(ctx), rec, prevVersion)
	return translate("update tracking", "tracking record", rec.ID, err)
}

type TrackingTotals struct {
	Records          int64
	Verified         int64
	TotalRevenue     float64
	TotalExpenditure float64
	TotalProfit      float64
}

func (r *TrackingRepository) Totals(ctx context.Context, businessID uint) (*TrackingTotals, error) {
	var t TrackingTotals
	err := r.db.WithContext(ctx).
		Model(&gormModels.BusinessTracking{}).
		Select(`COUNT(*) AS records,
			COALESCE(SUM(CASE WHEN is_verified THEN 1 ELSE 0 END), 0) AS verified,
			COALESCE(SUM(actual_revenue), 0) AS total_revenue,
			COALESCE(SUM(actual_expenditure), 0) AS total_expenditure,
			COALESCE(SUM(actual_profit), 0) AS total_profit`).
		Where("business_id = ?", businessID).
		Scan(&t).Error
	if err != nil {
		return nil, translate("sum tracking", "tracking record", businessID, err)
	}
	return &t, nil
}

// Latest returns the most recent record of a business, or nil.
func (r *TrackingRepository) Latest(ctx context.Context, businessID uint) (*gormModels.BusinessTracking, error) {
	var rec gormModels.BusinessTracking
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("period_start DESC, id DESC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("latest tracking", "tracking record", businessID, err)
	}
	return &rec, nil
}
