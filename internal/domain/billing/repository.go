package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerview/backend/internal/domain/shared"
)

// InvoiceFilter defines filtering options for invoice queries
type InvoiceFilter struct {
	shared.Filter
	CustomerID *uuid.UUID // Filter by customer
	FiscalYear *string    // Filter by fiscal year label
	IssuedFrom *time.Time // Filter by issue date range start
	IssuedTo   *time.Time // Filter by issue date range end
}

// InvoiceRepository defines the interface for invoice persistence.
// Read paths always load invoices with their payments attached.
type InvoiceRepository interface {
	// FindByID finds an invoice by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByIDForTenant finds an invoice by ID for a specific tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Invoice, error)

	// FindByNumber finds an invoice by invoice number for a tenant
	FindByNumber(ctx context.Context, tenantID uuid.UUID, number string) (*Invoice, error)

	// FindAllForTenant finds all invoices for a tenant with filtering
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter InvoiceFilter) ([]*Invoice, error)

	// FindByIssueDateRange finds invoices issued within [from, to] for a tenant
	FindByIssueDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*Invoice, error)

	// FindByCustomer finds all invoices for a customer, payments included
	FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]*Invoice, error)

	// DistinctFiscalYears lists the fiscal year labels with at least one invoice
	DistinctFiscalYears(ctx context.Context, tenantID uuid.UUID) ([]string, error)

	// Save creates or updates an invoice together with its payments
	Save(ctx context.Context, invoice *Invoice) error

	// Delete soft deletes an invoice
	Delete(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts invoices for a tenant with optional filters
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter InvoiceFilter) (int64, error)

	// ExistsByNumber checks if an invoice number exists for a tenant
	ExistsByNumber(ctx context.Context, tenantID uuid.UUID, number string) (bool, error)
}
