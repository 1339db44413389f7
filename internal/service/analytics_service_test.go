package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/internal/model"
	"backend/internal/repository"
)

type fakeAnalyticsRepo struct {
	lastFilter    repository.AggregateFilter
	lastLimit     int
	lastConsignee string
	buying        []model.ProductBreakdown
	untapped      []model.ProductBreakdown
}

func (r *fakeAnalyticsRepo) TopExporters(_ context.Context, f repository.AggregateFilter, limit int) ([]model.CompetitorRanking, error) {
	r.lastFilter, r.lastLimit = f, limit
	return nil, nil
}

func (r *fakeAnalyticsRepo) TopConsignees(_ context.Context, f repository.AggregateFilter, limit int) ([]model.ClientRanking, error) {
	r.lastFilter, r.lastLimit = f, limit
	return nil, nil
}

func (r *fakeAnalyticsRepo) MonthlyTrends(_ context.Context, f repository.AggregateFilter) ([]model.MonthlyTrend, error) {
	r.lastFilter = f
	return nil, nil
}

func (r *fakeAnalyticsRepo) BuyerProducts(_ context.Context, consignee, _ string) ([]model.ProductBreakdown, error) {
	r.lastConsignee = consignee
	return r.buying, nil
}

func (r *fakeAnalyticsRepo) UntappedProducts(_ context.Context, consignee, _ string, limit int) ([]model.ProductBreakdown, error) {
	r.lastConsignee, r.lastLimit = consignee, limit
	return r.untapped, nil
}

func TestCompetitors_DefaultWindow(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo)

	_, err := svc.Competitors(context.Background(), AnalyticsFilter{})
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, now.Format("2006-01"), repo.lastFilter.ToMonth)
	assert.Equal(t, now.AddDate(-1, 1, 0).Format("2006-01"), repo.lastFilter.FromMonth)
	assert.Equal(t, 10, repo.lastLimit)
}

func TestCompetitors_ExplicitFilterPassedThrough(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo)

	_, err := svc.Competitors(context.Background(), AnalyticsFilter{
		Category:  model.CategorySpices,
		HsPrefix:  "0904",
		FromMonth: "2023-04",
		ToMonth:   "2023-09",
		Limit:     25,
	})
	require.NoError(t, err)
	assert.Equal(t, model.CategorySpices, repo.lastFilter.Category)
	assert.Equal(t, "0904", repo.lastFilter.HsPrefix)
	assert.Equal(t, "2023-04", repo.lastFilter.FromMonth)
	assert.Equal(t, "2023-09", repo.lastFilter.ToMonth)
	assert.Equal(t, 25, repo.lastLimit)
}

func TestClients_LimitClamped(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo)

	_, err := svc.Clients(context.Background(), AnalyticsFilter{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastLimit, "out-of-range limits fall back to the default")
}

func TestCrossSell(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		buying:   []model.ProductBreakdown{{HsCode: "08041020"}},
		untapped: []model.ProductBreakdown{{HsCode: "08045010"}},
	}
	svc := NewAnalyticsService(repo)

	report, err := svc.CrossSell(context.Background(), "  fresh foods bv ", model.CategoryFruits, 0)
	require.NoError(t, err)
	assert.Equal(t, "FRESH FOODS BV", report.ConsigneeName)
	assert.Equal(t, "FRESH FOODS BV", repo.lastConsignee)
	assert.Equal(t, model.CategoryFruits, report.Category)
	require.Len(t, report.Buying, 1)
	require.Len(t, report.Untapped, 1)
	assert.Equal(t, "08045010", report.Untapped[0].HsCode)
}

func TestCrossSell_Validation(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{})

	_, err := svc.CrossSell(context.Background(), "   ", model.CategoryFruits, 10)
	assert.Error(t, err)

	_, err = svc.CrossSell(context.Background(), "FRESH FOODS BV", "furniture", 10)
	assert.Error(t, err)
}
