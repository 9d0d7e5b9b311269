package dashboard

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerview/backend/internal/domain/billing"
	"github.com/ledgerview/backend/internal/domain/fiscal"
	"github.com/ledgerview/backend/internal/infrastructure/cache"
	"go.uber.org/zap"
)

// DefaultCacheTTL bounds how stale a cached dashboard payload may get.
// Classification depends on the reference date, so the TTL stays short.
const DefaultCacheTTL = 5 * time.Minute

// MetricsService computes the dashboard metrics for a fiscal year.
// The reference time is always an explicit argument; the service holds
// no ambient clock state.
type MetricsService struct {
	invoiceRepo billing.InvoiceRepository
	cache       cache.MetricsCache
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewMetricsService creates a new MetricsService
func NewMetricsService(invoiceRepo billing.InvoiceRepository, metricsCache cache.MetricsCache, logger *zap.Logger) *MetricsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetricsService{
		invoiceRepo: invoiceRepo,
		cache:       metricsCache,
		cacheTTL:    DefaultCacheTTL,
		logger:      logger,
	}
}

// SetCacheTTL overrides the default cache TTL. Non-positive values are ignored.
func (s *MetricsService) SetCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		s.cacheTTL = ttl
	}
}

// resolveWindow turns an optional fiscal-year label into a window.
// An empty label means the fiscal year containing ref.
func resolveWindow(label string, ref time.Time) (fiscal.Window, error) {
	if label == "" {
		return fiscal.WindowForDate(ref), nil
	}
	return fiscal.WindowForLabel(label)
}

// GetMetrics returns the summary cards for the requested fiscal year.
// Results are cached per tenant and label; a cache failure degrades to
// recomputation, never to a request failure.
func (s *MetricsService) GetMetrics(ctx context.Context, tenantID uuid.UUID, fyLabel string, ref time.Time) (*MetricsResponse, error) {
	w, err := resolveWindow(fyLabel, ref)
	if err != nil {
		return nil, err
	}

	key := cache.MetricsKey(tenantID, w.Label, ref)
	if cached := s.readCached(ctx, key); cached != nil {
		var resp MetricsResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
		s.logger.Warn("discarding undecodable cached metrics payload", zap.String("key", key))
	}

	invoices, err := s.invoiceRepo.FindByIssueDateRange(ctx, tenantID, w.Start, w.End)
	if err != nil {
		return nil, err
	}

	summary, err := billing.Summarize(invoices, ref)
	if err != nil {
		return nil, err
	}

	resp := &MetricsResponse{
		FiscalYear:            w.Label,
		PeriodStart:           w.Start,
		PeriodEnd:             w.End,
		AsOf:                  ref,
		TotalSales:            summary.TotalSales,
		TotalPaymentsReceived: summary.TotalPaymentsReceived,
		PendingAmount:         summary.PendingAmount,
		OutstandingAmount:     summary.OutstandingAmount,
		InvoiceCount:          summary.InvoiceCount,
	}
	s.writeCached(ctx, key, resp)
	return resp, nil
}

// GetMonthlySeries returns the twelve-month sales and collections series
// for the requested fiscal year, April through March, zero-filled.
func (s *MetricsService) GetMonthlySeries(ctx context.Context, tenantID uuid.UUID, fyLabel string, ref time.Time) (*MonthlySeriesResponse, error) {
	w, err := resolveWindow(fyLabel, ref)
	if err != nil {
		return nil, err
	}

	key := cache.SeriesKey(tenantID, w.Label)
	if cached := s.readCached(ctx, key); cached != nil {
		var resp MonthlySeriesResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
		s.logger.Warn("discarding undecodable cached series payload", zap.String("key", key))
	}

	invoices, err := s.invoiceRepo.FindByIssueDateRange(ctx, tenantID, w.Start, w.End)
	if err != nil {
		return nil, err
	}

	buckets := billing.BucketByMonth(invoices, w)
	months := make([]MonthlyPoint, 0, len(buckets))
	for _, b := range buckets {
		months = append(months, MonthlyPoint{
			MonthLabel:       b.MonthLabel,
			Year:             b.Year,
			Sales:            b.Sales,
			PaymentsReceived: b.PaymentsReceived,
		})
	}

	resp := &MonthlySeriesResponse{FiscalYear: w.Label, Months: months}
	s.writeCached(ctx, key, resp)
	return resp, nil
}

// ListFiscalYears returns the fiscal-year labels with invoice data,
// newest first. The current fiscal year is always present so the
// dashboard has a default selection even before the first invoice.
func (s *MetricsService) ListFiscalYears(ctx context.Context, tenantID uuid.UUID, ref time.Time) (*FiscalYearsResponse, error) {
	labels, err := s.invoiceRepo.DistinctFiscalYears(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	current := fiscal.CurrentLabel(ref)
	seen := map[string]bool{current: true}
	years := []string{current}
	for _, label := range labels {
		if !seen[label] {
			seen[label] = true
			years = append(years, label)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))

	return &FiscalYearsResponse{Current: current, Years: years}, nil
}

// InvalidateFiscalYear drops cached payloads for a tenant's fiscal year.
// Called after invoice or payment writes so the dashboard converges
// faster than the TTL alone allows.
func (s *MetricsService) InvalidateFiscalYear(ctx context.Context, tenantID uuid.UUID, label string, ref time.Time) {
	if s.cache == nil {
		return
	}
	for _, key := range []string{cache.MetricsKey(tenantID, label, ref), cache.SeriesKey(tenantID, label)} {
		if err := s.cache.Invalidate(ctx, key); err != nil {
			s.logger.Warn("failed to invalidate dashboard cache", zap.String("key", key), zap.Error(err))
		}
	}
}

func (s *MetricsService) readCached(ctx context.Context, key string) []byte {
	if s.cache == nil {
		return nil
	}
	payload, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("dashboard cache read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	if !hit {
		return nil
	}
	return payload
}

func (s *MetricsService) writeCached(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
	}
}
