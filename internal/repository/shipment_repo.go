package repository

import (
	"context"
	"errors"
	"fmt"

	"backend/internal/model"

	"gorm.io/gorm"
)

// ShipmentFilter narrows shipment listings. Zero-valued fields are ignored.
type ShipmentFilter struct {
	Category  string
	Exporter  string
	Consignee string
	HsPrefix  string
	MonthYear string
	BatchTag  string
}

type ShipmentRepository interface {
	// Insert persists one record, returning model.ErrDuplicateShipment when
	// the deduplication index rejects it.
	Insert(ctx context.Context, rec *model.ShipmentRecord) error
	List(ctx context.Context, f ShipmentFilter, page, limit int) ([]model.ShipmentRecord, int64, error)
}

type shipmentRepository struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) ShipmentRepository {
	return &shipmentRepository{db: db}
}

func (r *shipmentRepository) Insert(ctx context.Context, rec *model.ShipmentRecord) error {
	if err := dbFrom(ctx, r.db).Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", model.ErrDuplicateShipment, rec.IdentityKey)
		}
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

func (r *shipmentRepository) List(ctx context.Context, f ShipmentFilter, page, limit int) ([]model.ShipmentRecord, int64, error) {
	var records []model.ShipmentRecord
	var total int64

	db := applyShipmentFilter(dbFrom(ctx, r.db).Model(&model.ShipmentRecord{}), f)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("shipment_date desc NULLS LAST, created_at desc").
		Offset(offset).Limit(limit).Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func applyShipmentFilter(db *gorm.DB, f ShipmentFilter) *gorm.DB {
	if f.Category != "" {
		db = db.Where("category = ?", f.Category)
	}
	if f.Exporter != "" {
		db = db.Where("exporter_name ILIKE ?", "%"+f.Exporter+"%")
	}
	if f.Consignee != "" {
		db = db.Where("consignee_name ILIKE ?", "%"+f.Consignee+"%")
	}
	if f.HsPrefix != "" {
		db = db.Where("hs_code LIKE ?", f.HsPrefix+"%")
	}
	if f.MonthYear != "" {
		db = db.Where("month_year = ?", f.MonthYear)
	}
	if f.BatchTag != "" {
		db = db.Where("batch_tag = ?", f.BatchTag)
	}
	return db
}
