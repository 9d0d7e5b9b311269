package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerview/backend/internal/domain/billing"
	"github.com/ledgerview/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LedgerService assembles customer statements for presentation and
// export collaborators.
type LedgerService struct {
	invoiceRepo  billing.InvoiceRepository
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(invoiceRepo billing.InvoiceRepository, customerRepo partner.CustomerRepository, logger *zap.Logger) *LedgerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// GetCustomerLedger returns the customer's full statement, every invoice
// debit and payment credit in deterministic order with a running balance.
func (s *LedgerService) GetCustomerLedger(ctx context.Context, tenantID, customerID uuid.UUID) (*LedgerResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.FindByCustomer(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	entries, err := billing.BuildLedger(customerID, invoices)
	if err != nil {
		s.logger.Error("customer ledger build failed",
			zap.String("customer_id", customerID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	rows := make([]LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, toLedgerEntryResponse(e))
	}

	closing := decimal.Zero
	if len(entries) > 0 {
		closing = entries[len(entries)-1].Balance
	}

	return &LedgerResponse{
		CustomerID:            customer.ID,
		CustomerName:          customer.Name,
		Entries:               rows,
		ClosingBalance:        closing,
		ClosingBalanceDisplay: closing.StringFixed(2),
		GeneratedAt:           time.Now().UTC(),
	}, nil
}
