package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerview/backend/internal/domain/shared"
	"github.com/ledgerview/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a payment was collected
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodUPI      PaymentMethod = "UPI"
	PaymentMethodBank     PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCheque   PaymentMethod = "CHEQUE"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodAdjusted PaymentMethod = "ADJUSTMENT"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodUPI, PaymentMethodBank,
		PaymentMethodCheque, PaymentMethodCard, PaymentMethodAdjusted:
		return true
	}
	return false
}

// PaymentEvent is a single customer payment applied against an invoice.
// The engine treats it as an immutable value; it is never mutated after
// it enters the core.
type PaymentEvent struct {
	ID        uuid.UUID       `json:"id"`
	InvoiceID uuid.UUID       `json:"invoice_id"`
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	PaidOn    time.Time       `json:"paid_on"`
	Method    PaymentMethod   `json:"method"`
	Remark    string          `json:"remark,omitempty"`
}

// NewPaymentEvent creates a validated payment event. Amounts must be
// strictly positive: a negative payment would silently corrupt every
// downstream total, so it is rejected here at the boundary.
func NewPaymentEvent(invoiceID uuid.UUID, reference string, amount valueobject.Money, paidOn time.Time, method PaymentMethod) (*PaymentEvent, error) {
	if invoiceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVOICE_ID", "Payment must reference an invoice")
	}
	if reference == "" {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Payment reference cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("NEGATIVE_AMOUNT",
			fmt.Sprintf("Payment %s amount must be positive, got %s", reference, amount.StringFixed(2)))
	}
	if paidOn.IsZero() {
		return nil, shared.NewDomainError("MALFORMED_LEDGER_ENTRY",
			fmt.Sprintf("Payment %s has no payment date", reference))
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD",
			fmt.Sprintf("Payment method %q is not recognised", method))
	}
	return &PaymentEvent{
		ID:        uuid.New(),
		InvoiceID: invoiceID,
		Reference: reference,
		Amount:    amount.Amount(),
		PaidOn:    paidOn,
		Method:    method,
	}, nil
}

// AmountMoney returns the payment amount as a Money value object
func (p *PaymentEvent) AmountMoney() valueobject.Money {
	return valueobject.NewMoneyINR(p.Amount)
}
