package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
)

// AnalyticsFilter is the handler-facing filter for dashboard aggregations.
type AnalyticsFilter struct {
	Category  string
	HsPrefix  string
	FromMonth string // "YYYY-MM", inclusive
	ToMonth   string // "YYYY-MM", inclusive
	Limit     int
}

type AnalyticsService interface {
	Competitors(ctx context.Context, f AnalyticsFilter) ([]model.CompetitorRanking, error)
	Clients(ctx context.Context, f AnalyticsFilter) ([]model.ClientRanking, error)
	Monthly(ctx context.Context, f AnalyticsFilter) ([]model.MonthlyTrend, error)
	CrossSell(ctx context.Context, consignee, category string, limit int) (*model.CrossSellReport, error)
}

type analyticsService struct {
	repo repository.AnalyticsRepository
}

func NewAnalyticsService(repo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

const defaultRankingLimit = 10

// defaultFilter fills missing bounds: the last 12 months ending this month.
func defaultFilter(f AnalyticsFilter) (repository.AggregateFilter, int) {
	now := time.Now()
	from := f.FromMonth
	to := f.ToMonth
	if to == "" {
		to = now.Format("2006-01")
	}
	if from == "" {
		from = now.AddDate(-1, 1, 0).Format("2006-01")
	}
	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultRankingLimit
	}
	return repository.AggregateFilter{
		Category:  f.Category,
		HsPrefix:  f.HsPrefix,
		FromMonth: from,
		ToMonth:   to,
	}, limit
}

func (s *analyticsService) Competitors(ctx context.Context, f AnalyticsFilter) ([]model.CompetitorRanking, error) {
	agg, limit := defaultFilter(f)
	return s.repo.TopExporters(ctx, agg, limit)
}

func (s *analyticsService) Clients(ctx context.Context, f AnalyticsFilter) ([]model.ClientRanking, error) {
	agg, limit := defaultFilter(f)
	return s.repo.TopConsignees(ctx, agg, limit)
}

func (s *analyticsService) Monthly(ctx context.Context, f AnalyticsFilter) ([]model.MonthlyTrend, error) {
	agg, _ := defaultFilter(f)
	return s.repo.MonthlyTrends(ctx, agg)
}

func (s *analyticsService) CrossSell(ctx context.Context, consignee, category string, limit int) (*model.CrossSellReport, error) {
	consignee = strings.ToUpper(strings.TrimSpace(consignee))
	if consignee == "" {
		return nil, errors.New("consignee is required")
	}
	if !model.ValidCategory(category) {
		return nil, errors.New("unknown category: " + category)
	}
	if limit <= 0 || limit > 100 {
		limit = defaultRankingLimit
	}

	buying, err := s.repo.BuyerProducts(ctx, consignee, category)
	if err != nil {
		return nil, err
	}
	untapped, err := s.repo.UntappedProducts(ctx, consignee, category, limit)
	if err != nil {
		return nil, err
	}

	return &model.CrossSellReport{
		ConsigneeName: consignee,
		Category:      category,
		Buying:        buying,
		Untapped:      untapped,
	}, nil
}
