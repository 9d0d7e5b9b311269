package handler

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledgerview/backend/internal/domain/billing"
	"github.com/ledgerview/backend/internal/domain/partner"
	"github.com/ledgerview/backend/internal/domain/shared"
	"github.com/ledgerview/backend/internal/domain/shared/valueobject"
	"github.com/ledgerview/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// fakeInvoiceRepo is an in-memory invoice repository for handler tests
type fakeInvoiceRepo struct {
	invoices []*billing.Invoice
}

func (r *fakeInvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeInvoiceRepo) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*billing.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id && inv.TenantID == tenantID {
			return inv, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeInvoiceRepo) FindByNumber(ctx context.Context, tenantID uuid.UUID, number string) (*billing.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.TenantID == tenantID && inv.InvoiceNumber == number {
			return inv, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeInvoiceRepo) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter billing.InvoiceFilter) ([]*billing.Invoice, error) {
	var out []*billing.Invoice
	for _, inv := range r.invoices {
		if inv.TenantID == tenantID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) FindByIssueDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*billing.Invoice, error) {
	var out []*billing.Invoice
	for _, inv := range r.invoices {
		if inv.TenantID == tenantID && !inv.IssueDate.Before(from) && !inv.IssueDate.After(to) {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]*billing.Invoice, error) {
	var out []*billing.Invoice
	for _, inv := range r.invoices {
		if inv.TenantID == tenantID && inv.CustomerID == customerID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) DistinctFiscalYears(ctx context.Context, tenantID uuid.UUID) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, inv := range r.invoices {
		if inv.TenantID == tenantID && !seen[inv.FiscalYear] {
			seen[inv.FiscalYear] = true
			out = append(out, inv.FiscalYear)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Save(ctx context.Context, invoice *billing.Invoice) error {
	r.invoices = append(r.invoices, invoice)
	return nil
}

func (r *fakeInvoiceRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return nil
}

func (r *fakeInvoiceRepo) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter billing.InvoiceFilter) (int64, error) {
	return int64(len(r.invoices)), nil
}

func (r *fakeInvoiceRepo) ExistsByNumber(ctx context.Context, tenantID uuid.UUID, number string) (bool, error) {
	_, err := r.FindByNumber(ctx, tenantID, number)
	return err == nil, nil
}

var _ billing.InvoiceRepository = (*fakeInvoiceRepo)(nil)

// fakeCustomerRepo is an in-memory customer repository for handler tests
type fakeCustomerRepo struct {
	customers []*partner.Customer
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCustomerRepo) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id && c.TenantID == tenantID {
			return c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCustomerRepo) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*partner.Customer, error) {
	for _, c := range r.customers {
		if c.TenantID == tenantID && c.Code == code {
			return c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCustomerRepo) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	var out []partner.Customer
	for _, c := range r.customers {
		if c.TenantID == tenantID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) FindActive(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	var out []partner.Customer
	for _, c := range r.customers {
		if c.TenantID == tenantID && c.IsActive() {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) Save(ctx context.Context, customer *partner.Customer) error {
	r.customers = append(r.customers, customer)
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return nil
}

func (r *fakeCustomerRepo) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	return int64(len(r.customers)), nil
}

func (r *fakeCustomerRepo) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	_, err := r.FindByCode(ctx, tenantID, code)
	return err == nil, nil
}

var _ partner.CustomerRepository = (*fakeCustomerRepo)(nil)

func seedInvoice(t *testing.T, repo *fakeInvoiceRepo, tenantID, customerID uuid.UUID, number string, issue time.Time, total string) *billing.Invoice {
	t.Helper()
	amount, err := valueobject.NewMoneyINRFromString(total)
	require.NoError(t, err)
	inv, err := billing.NewInvoice(tenantID, number, customerID, "Test Customer", issue, issue.AddDate(0, 0, 30), amount, valueobject.ZeroINR())
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), inv))
	return inv
}
