package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerview/backend/internal/domain/fiscal"
	"github.com/ledgerview/backend/internal/domain/shared"
	"github.com/ledgerview/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Invoice is the root record of the receivables engine. Totals include
// GST; TaxAmount is the pre-computed GST portion passed through from the
// invoicing flow, never recalculated here.
type Invoice struct {
	shared.TenantEntity
	InvoiceNumber string          `json:"invoice_number"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	IssueDate     time.Time       `json:"issue_date"`
	DueDate       time.Time       `json:"due_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	FiscalYear    string          `json:"fiscal_year"`
	Payments      []PaymentEvent  `json:"payments"`
	Remark        string          `json:"remark,omitempty"`
}

// NewInvoice creates a validated invoice. The fiscal-year label is derived
// from the issue date so it can never disagree with the window math.
func NewInvoice(
	tenantID uuid.UUID,
	invoiceNumber string,
	customerID uuid.UUID,
	customerName string,
	issueDate time.Time,
	dueDate time.Time,
	totalAmount valueobject.Money,
	taxAmount valueobject.Money,
) (*Invoice, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if issueDate.IsZero() {
		return nil, shared.NewDomainError("MALFORMED_LEDGER_ENTRY",
			fmt.Sprintf("Invoice %s has no issue date", invoiceNumber))
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError("MALFORMED_LEDGER_ENTRY",
			fmt.Sprintf("Invoice %s has no due date", invoiceNumber))
	}
	if dueDate.Before(issueDate) {
		return nil, shared.NewDomainError("INVALID_DUE_DATE",
			fmt.Sprintf("Invoice %s due date precedes its issue date", invoiceNumber))
	}
	if totalAmount.IsNegative() {
		return nil, shared.NewDomainError("NEGATIVE_AMOUNT",
			fmt.Sprintf("Invoice %s total must not be negative, got %s", invoiceNumber, totalAmount.StringFixed(2)))
	}
	if taxAmount.IsNegative() {
		return nil, shared.NewDomainError("NEGATIVE_AMOUNT",
			fmt.Sprintf("Invoice %s tax amount must not be negative, got %s", invoiceNumber, taxAmount.StringFixed(2)))
	}

	return &Invoice{
		TenantEntity:  shared.NewTenantEntity(tenantID),
		InvoiceNumber: invoiceNumber,
		CustomerID:    customerID,
		CustomerName:  customerName,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		TotalAmount:   totalAmount.Amount(),
		TaxAmount:     taxAmount.Amount(),
		FiscalYear:    fiscal.LabelFor(issueDate),
		Payments:      []PaymentEvent{},
	}, nil
}

// RecordPayment appends a validated payment event to the invoice.
// Overpayment is allowed: a duplicate collection drives the balance
// negative and must be surfaced by reporting, not rejected here.
func (inv *Invoice) RecordPayment(reference string, amount valueobject.Money, paidOn time.Time, method PaymentMethod) (*PaymentEvent, error) {
	event, err := NewPaymentEvent(inv.ID, reference, amount, paidOn, method)
	if err != nil {
		return nil, err
	}
	inv.Payments = append(inv.Payments, *event)
	inv.UpdatedAt = time.Now()
	return event, nil
}

// PaymentsTotal returns the sum of all payment events on the invoice.
func (inv *Invoice) PaymentsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range inv.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// BalanceRemaining returns total minus payments received. Negative values
// (overpayment) are legitimate output and are never clamped.
func (inv *Invoice) BalanceRemaining() decimal.Decimal {
	return inv.TotalAmount.Sub(inv.PaymentsTotal())
}

// TotalAmountMoney returns the invoice total as Money
func (inv *Invoice) TotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyINR(inv.TotalAmount)
}

// BalanceRemainingMoney returns the open balance as Money
func (inv *Invoice) BalanceRemainingMoney() valueobject.Money {
	return valueobject.NewMoneyINR(inv.BalanceRemaining())
}
