package billing

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerview/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var de *shared.DomainError
	require.True(t, errors.As(err, &de), "expected a DomainError, got %v", err)
	return de.Code
}

func TestNewInvoice(t *testing.T) {
	tenantID := uuid.New()
	customerID := uuid.New()
	issue := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates invoice and derives fiscal year from issue date", func(t *testing.T) {
		inv, err := NewInvoice(tenantID, "INV-100", customerID, "Gupta Textiles", issue, due, inr(t, "11800"), inr(t, "1800"))
		require.NoError(t, err)
		assert.Equal(t, "2024-2025", inv.FiscalYear)
		assert.True(t, inv.TotalAmount.Equal(decimal.NewFromInt(11800)))
		assert.True(t, inv.TaxAmount.Equal(decimal.NewFromInt(1800)))
		assert.Empty(t, inv.Payments)
	})

	t.Run("january issue date lands in the previous fiscal year", func(t *testing.T) {
		janIssue := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
		inv, err := NewInvoice(tenantID, "INV-101", customerID, "Gupta Textiles", janIssue, janIssue.AddDate(0, 1, 0), inr(t, "500"), inr(t, "0"))
		require.NoError(t, err)
		assert.Equal(t, "2023-2024", inv.FiscalYear)
	})

	t.Run("rejects negative total", func(t *testing.T) {
		neg := inr(t, "100").Negate()
		_, err := NewInvoice(tenantID, "INV-102", customerID, "Gupta Textiles", issue, due, neg, inr(t, "0"))
		require.Error(t, err)
		assert.Equal(t, "NEGATIVE_AMOUNT", domainCode(t, err))
	})

	t.Run("rejects zero issue date", func(t *testing.T) {
		_, err := NewInvoice(tenantID, "INV-103", customerID, "Gupta Textiles", time.Time{}, due, inr(t, "100"), inr(t, "0"))
		require.Error(t, err)
		assert.Equal(t, "MALFORMED_LEDGER_ENTRY", domainCode(t, err))
	})

	t.Run("rejects due date before issue date", func(t *testing.T) {
		_, err := NewInvoice(tenantID, "INV-104", customerID, "Gupta Textiles", issue, issue.AddDate(0, 0, -1), inr(t, "100"), inr(t, "0"))
		require.Error(t, err)
		assert.Equal(t, "INVALID_DUE_DATE", domainCode(t, err))
	})

	t.Run("rejects empty invoice number", func(t *testing.T) {
		_, err := NewInvoice(tenantID, "", customerID, "Gupta Textiles", issue, due, inr(t, "100"), inr(t, "0"))
		require.Error(t, err)
	})
}

func TestInvoice_RecordPayment(t *testing.T) {
	issue := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	due := issue.AddDate(0, 1, 0)

	t.Run("accumulates payments and balance", func(t *testing.T) {
		inv := newTestInvoice(t, "INV-200", issue, due, "1000")
		pay(t, inv, "PAY-1", "400", issue.AddDate(0, 0, 5))
		pay(t, inv, "PAY-2", "250.50", issue.AddDate(0, 0, 9))
		assert.True(t, inv.PaymentsTotal().Equal(decimal.RequireFromString("650.50")))
		assert.True(t, inv.BalanceRemaining().Equal(decimal.RequireFromString("349.50")))
	})

	t.Run("allows overpayment and keeps the negative balance", func(t *testing.T) {
		inv := newTestInvoice(t, "INV-201", issue, due, "1000")
		pay(t, inv, "PAY-3", "1000", issue)
		pay(t, inv, "PAY-3-DUP", "500", issue)
		assert.True(t, inv.BalanceRemaining().Equal(decimal.NewFromInt(-500)))
	})

	t.Run("rejects non-positive payment amount", func(t *testing.T) {
		inv := newTestInvoice(t, "INV-202", issue, due, "1000")
		_, err := inv.RecordPayment("PAY-4", inr(t, "0"), issue, PaymentMethodCash)
		require.Error(t, err)
		assert.Equal(t, "NEGATIVE_AMOUNT", domainCode(t, err))
		assert.Empty(t, inv.Payments)
	})

	t.Run("rejects zero payment date", func(t *testing.T) {
		inv := newTestInvoice(t, "INV-203", issue, due, "1000")
		_, err := inv.RecordPayment("PAY-5", inr(t, "100"), time.Time{}, PaymentMethodCash)
		require.Error(t, err)
		assert.Equal(t, "MALFORMED_LEDGER_ENTRY", domainCode(t, err))
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		inv := newTestInvoice(t, "INV-204", issue, due, "1000")
		_, err := inv.RecordPayment("PAY-6", inr(t, "100"), issue, PaymentMethod("BARTER"))
		require.Error(t, err)
		assert.Equal(t, "INVALID_PAYMENT_METHOD", domainCode(t, err))
	})
}
