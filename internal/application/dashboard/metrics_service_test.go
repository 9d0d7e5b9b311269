package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerview/backend/internal/domain/billing"
	"github.com/ledgerview/backend/internal/domain/partner"
	"github.com/ledgerview/backend/internal/domain/shared"
	"github.com/ledgerview/backend/internal/domain/shared/valueobject"
	"github.com/ledgerview/backend/internal/infrastructure/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvoiceRepo struct {
	invoices    []*billing.Invoice
	fiscalYears []string
	rangeCalls  int
}

func (f *fakeInvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (f *fakeInvoiceRepo) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*billing.Invoice, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeInvoiceRepo) FindByNumber(ctx context.Context, tenantID uuid.UUID, number string) (*billing.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.InvoiceNumber == number {
			return inv, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (f *fakeInvoiceRepo) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter billing.InvoiceFilter) ([]*billing.Invoice, error) {
	return f.invoices, nil
}

func (f *fakeInvoiceRepo) FindByIssueDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*billing.Invoice, error) {
	f.rangeCalls++
	var out []*billing.Invoice
	for _, inv := range f.invoices {
		if !inv.IssueDate.Before(from) && !inv.IssueDate.After(to) {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]*billing.Invoice, error) {
	var out []*billing.Invoice
	for _, inv := range f.invoices {
		if inv.CustomerID == customerID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) DistinctFiscalYears(ctx context.Context, tenantID uuid.UUID) ([]string, error) {
	return f.fiscalYears, nil
}

func (f *fakeInvoiceRepo) Save(ctx context.Context, invoice *billing.Invoice) error {
	f.invoices = append(f.invoices, invoice)
	return nil
}

func (f *fakeInvoiceRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error { return nil }

func (f *fakeInvoiceRepo) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter billing.InvoiceFilter) (int64, error) {
	return int64(len(f.invoices)), nil
}

func (f *fakeInvoiceRepo) ExistsByNumber(ctx context.Context, tenantID uuid.UUID, number string) (bool, error) {
	_, err := f.FindByNumber(ctx, tenantID, number)
	return err == nil, nil
}

var _ billing.InvoiceRepository = (*fakeInvoiceRepo)(nil)

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*partner.Customer
}

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	if c, ok := f.customers[id]; ok {
		return c, nil
	}
	return nil, shared.ErrNotFound
}

func (f *fakeCustomerRepo) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Customer, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeCustomerRepo) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*partner.Customer, error) {
	return nil, shared.ErrNotFound
}

func (f *fakeCustomerRepo) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) FindActive(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) Save(ctx context.Context, customer *partner.Customer) error {
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error { return nil }

func (f *fakeCustomerRepo) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	return int64(len(f.customers)), nil
}

func (f *fakeCustomerRepo) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	return false, nil
}

var _ partner.CustomerRepository = (*fakeCustomerRepo)(nil)

func inr(t *testing.T, s string) valueobject.Money {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return valueobject.NewMoneyINR(d)
}

func seedInvoice(t *testing.T, tenantID, customerID uuid.UUID, number string, issue time.Time, total string) *billing.Invoice {
	t.Helper()
	inv, err := billing.NewInvoice(tenantID, number, customerID, "Patel Distributors",
		issue, issue.AddDate(0, 1, 0), inr(t, total), inr(t, "0"))
	require.NoError(t, err)
	return inv
}

func TestMetricsService_GetMetrics(t *testing.T) {
	tenantID := uuid.New()
	customerID := uuid.New()
	ref := time.Date(2024, time.October, 10, 0, 0, 0, 0, time.UTC)

	juneInvoice := seedInvoice(t, tenantID, customerID, "INV-001",
		time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC), "1000")
	_, err := juneInvoice.RecordPayment("PAY-001", inr(t, "400"),
		time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC), billing.PaymentMethodUPI)
	require.NoError(t, err)

	priorYearInvoice := seedInvoice(t, tenantID, customerID, "INV-OLD",
		time.Date(2023, time.August, 1, 0, 0, 0, 0, time.UTC), "5000")

	repo := &fakeInvoiceRepo{invoices: []*billing.Invoice{juneInvoice, priorYearInvoice}}
	svc := NewMetricsService(repo, nil, nil)

	t.Run("defaults to the fiscal year containing the reference date", func(t *testing.T) {
		resp, err := svc.GetMetrics(context.Background(), tenantID, "", ref)
		require.NoError(t, err)
		assert.Equal(t, "2024-2025", resp.FiscalYear)
		assert.Equal(t, 1, resp.InvoiceCount)
		assert.True(t, resp.TotalSales.Equal(decimal.NewFromInt(1000)))
		assert.True(t, resp.TotalPaymentsReceived.Equal(decimal.NewFromInt(400)))
	})

	t.Run("resolves an explicit fiscal year label", func(t *testing.T) {
		resp, err := svc.GetMetrics(context.Background(), tenantID, "2023-2024", ref)
		require.NoError(t, err)
		assert.Equal(t, "2023-2024", resp.FiscalYear)
		assert.Equal(t, 1, resp.InvoiceCount)
		assert.True(t, resp.TotalSales.Equal(decimal.NewFromInt(5000)))
		assert.True(t, resp.OutstandingAmount.Equal(decimal.NewFromInt(5000)))
	})

	t.Run("rejects a malformed label", func(t *testing.T) {
		_, err := svc.GetMetrics(context.Background(), tenantID, "2024", ref)
		require.Error(t, err)
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_FISCAL_YEAR", de.Code)
	})

	t.Run("serves repeat requests from cache", func(t *testing.T) {
		memCache := cache.NewInMemoryMetricsCache()
		defer memCache.Close()

		cachedRepo := &fakeInvoiceRepo{invoices: []*billing.Invoice{juneInvoice}}
		cachedSvc := NewMetricsService(cachedRepo, memCache, nil)

		first, err := cachedSvc.GetMetrics(context.Background(), tenantID, "2024-2025", ref)
		require.NoError(t, err)
		second, err := cachedSvc.GetMetrics(context.Background(), tenantID, "2024-2025", ref)
		require.NoError(t, err)

		assert.Equal(t, 1, cachedRepo.rangeCalls)
		assert.True(t, first.TotalSales.Equal(second.TotalSales))
	})

	t.Run("a new reference day is never served the previous day's payload", func(t *testing.T) {
		memCache := cache.NewInMemoryMetricsCache()
		defer memCache.Close()

		cachedRepo := &fakeInvoiceRepo{invoices: []*billing.Invoice{juneInvoice}}
		cachedSvc := NewMetricsService(cachedRepo, memCache, nil)

		beforeDue := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
		first, err := cachedSvc.GetMetrics(context.Background(), tenantID, "2024-2025", beforeDue)
		require.NoError(t, err)
		second, err := cachedSvc.GetMetrics(context.Background(), tenantID, "2024-2025", ref)
		require.NoError(t, err)

		assert.Equal(t, 2, cachedRepo.rangeCalls)
		assert.True(t, first.AsOf.Equal(beforeDue))
		assert.True(t, second.AsOf.Equal(ref))
		assert.True(t, first.PendingAmount.Equal(decimal.NewFromInt(600)))
		assert.True(t, second.OutstandingAmount.Equal(decimal.NewFromInt(600)))
	})
}

func TestMetricsService_GetMonthlySeries(t *testing.T) {
	tenantID := uuid.New()
	customerID := uuid.New()
	ref := time.Date(2024, time.October, 10, 0, 0, 0, 0, time.UTC)

	inv := seedInvoice(t, tenantID, customerID, "INV-010",
		time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC), "2400")
	_, err := inv.RecordPayment("PAY-010", inr(t, "2400"),
		time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC), billing.PaymentMethodBank)
	require.NoError(t, err)

	repo := &fakeInvoiceRepo{invoices: []*billing.Invoice{inv}}
	svc := NewMetricsService(repo, nil, nil)

	resp, err := svc.GetMonthlySeries(context.Background(), tenantID, "", ref)
	require.NoError(t, err)
	require.Len(t, resp.Months, 12)
	assert.Equal(t, "Apr 2024", resp.Months[0].MonthLabel)
	assert.Equal(t, "Mar 2025", resp.Months[11].MonthLabel)
	assert.True(t, resp.Months[1].Sales.Equal(decimal.NewFromInt(2400)))
	assert.True(t, resp.Months[4].PaymentsReceived.Equal(decimal.NewFromInt(2400)))
	assert.True(t, resp.Months[0].Sales.IsZero())
}

func TestMetricsService_ListFiscalYears(t *testing.T) {
	tenantID := uuid.New()
	ref := time.Date(2024, time.October, 10, 0, 0, 0, 0, time.UTC)

	t.Run("returns labels newest first including the current year", func(t *testing.T) {
		repo := &fakeInvoiceRepo{fiscalYears: []string{"2022-2023", "2023-2024"}}
		svc := NewMetricsService(repo, nil, nil)

		resp, err := svc.ListFiscalYears(context.Background(), tenantID, ref)
		require.NoError(t, err)
		assert.Equal(t, "2024-2025", resp.Current)
		assert.Equal(t, []string{"2024-2025", "2023-2024", "2022-2023"}, resp.Years)
	})

	t.Run("deduplicates the current year", func(t *testing.T) {
		repo := &fakeInvoiceRepo{fiscalYears: []string{"2024-2025"}}
		svc := NewMetricsService(repo, nil, nil)

		resp, err := svc.ListFiscalYears(context.Background(), tenantID, ref)
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-2025"}, resp.Years)
	})
}
