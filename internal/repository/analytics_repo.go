package repository

import (
	"context"
	"fmt"

	"backend/internal/model"

	"gorm.io/gorm"
)

// AggregateFilter bounds the dashboard aggregations. Zero-valued fields are
// ignored; FromMonth/ToMonth are inclusive "YYYY-MM" bounds.
type AggregateFilter struct {
	Category  string
	HsPrefix  string
	FromMonth string
	ToMonth   string
}

type AnalyticsRepository interface {
	TopExporters(ctx context.Context, f AggregateFilter, limit int) ([]model.CompetitorRanking, error)
	TopConsignees(ctx context.Context, f AggregateFilter, limit int) ([]model.ClientRanking, error)
	MonthlyTrends(ctx context.Context, f AggregateFilter) ([]model.MonthlyTrend, error)
	BuyerProducts(ctx context.Context, consignee, category string) ([]model.ProductBreakdown, error)
	UntappedProducts(ctx context.Context, consignee, category string, limit int) ([]model.ProductBreakdown, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) TopExporters(ctx context.Context, f AggregateFilter, limit int) ([]model.CompetitorRanking, error) {
	var rankings []model.CompetitorRanking
	err := applyAggregateFilter(dbFrom(ctx, r.db).Table("shipment_records"), f).
		Select("exporter_name, COUNT(*) as shipments, COALESCE(SUM(quantity), 0) as total_quantity, COALESCE(SUM(fob_value), 0) as total_fob, COUNT(DISTINCT country_of_destination) as destinations").
		Where("exporter_name <> ''").
		Group("exporter_name").
		Order("total_fob DESC").
		Limit(limit).
		Scan(&rankings).Error
	if err != nil {
		return nil, fmt.Errorf("query top exporters: %w", err)
	}
	return rankings, nil
}

func (r *analyticsRepository) TopConsignees(ctx context.Context, f AggregateFilter, limit int) ([]model.ClientRanking, error) {
	var rankings []model.ClientRanking
	err := applyAggregateFilter(dbFrom(ctx, r.db).Table("shipment_records"), f).
		Select("consignee_name, COUNT(*) as shipments, COALESCE(SUM(quantity), 0) as total_quantity, COALESCE(SUM(fob_value), 0) as total_fob, COUNT(DISTINCT exporter_name) as suppliers").
		Where("consignee_name <> ''").
		Group("consignee_name").
		Order("total_fob DESC").
		Limit(limit).
		Scan(&rankings).Error
	if err != nil {
		return nil, fmt.Errorf("query top consignees: %w", err)
	}
	return rankings, nil
}

func (r *analyticsRepository) MonthlyTrends(ctx context.Context, f AggregateFilter) ([]model.MonthlyTrend, error) {
	var trends []model.MonthlyTrend
	err := applyAggregateFilter(dbFrom(ctx, r.db).Table("shipment_records"), f).
		Select("month_year, COUNT(*) as shipments, COALESCE(SUM(quantity), 0) as total_quantity, COALESCE(SUM(fob_value), 0) as total_fob").
		Where("month_year IS NOT NULL").
		Group("month_year").
		Order("month_year ASC").
		Scan(&trends).Error
	if err != nil {
		return nil, fmt.Errorf("query monthly trends: %w", err)
	}
	return trends, nil
}

func (r *analyticsRepository) BuyerProducts(ctx context.Context, consignee, category string) ([]model.ProductBreakdown, error) {
	var products []model.ProductBreakdown
	err := dbFrom(ctx, r.db).Table("shipment_records").
		Select("hs_code, MIN(product_description) as product_description, COUNT(*) as shipments, COALESCE(SUM(quantity), 0) as total_quantity, COALESCE(SUM(fob_value), 0) as total_fob").
		Where("consignee_name = ? AND category = ?", consignee, category).
		Group("hs_code").
		Order("total_fob DESC").
		Scan(&products).Error
	if err != nil {
		return nil, fmt.Errorf("query buyer products: %w", err)
	}
	return products, nil
}

func (r *analyticsRepository) UntappedProducts(ctx context.Context, consignee, category string, limit int) ([]model.ProductBreakdown, error) {
	var products []model.ProductBreakdown
	sub := dbFrom(ctx, r.db).Table("shipment_records").
		Select("DISTINCT hs_code").
		Where("consignee_name = ? AND category = ?", consignee, category)

	err := dbFrom(ctx, r.db).Table("shipment_records").
		Select("hs_code, MIN(product_description) as product_description, COUNT(*) as shipments, COALESCE(SUM(quantity), 0) as total_quantity, COALESCE(SUM(fob_value), 0) as total_fob").
		Where("category = ? AND hs_code <> ''", category).
		Where("hs_code NOT IN (?)", sub).
		Group("hs_code").
		Order("total_fob DESC").
		Limit(limit).
		Scan(&products).Error
	if err != nil {
		return nil, fmt.Errorf("query untapped products: %w", err)
	}
	return products, nil
}

func applyAggregateFilter(db *gorm.DB, f AggregateFilter) *gorm.DB {
	if f.Category != "" {
		db = db.Where("category = ?", f.Category)
	}
	if f.HsPrefix != "" {
		db = db.Where("hs_code LIKE ?", f.HsPrefix+"%")
	}
	if f.FromMonth != "" {
		db = db.Where("month_year >= ?", f.FromMonth)
	}
	if f.ToMonth != "" {
		db = db.Where("month_year <= ?", f.ToMonth)
	}
	return db
}
