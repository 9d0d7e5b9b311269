package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the settlement classification of an invoice relative
// to a reference date.
type InvoiceStatus string

const (
	// StatusSettled means the balance is fully collected (or overpaid).
	StatusSettled InvoiceStatus = "SETTLED"
	// StatusPending means an open balance that is not yet past due.
	StatusPending InvoiceStatus = "PENDING"
	// StatusOutstanding means an open balance past its due date.
	StatusOutstanding InvoiceStatus = "OUTSTANDING"
)

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case StatusSettled, StatusPending, StatusOutstanding:
		return true
	}
	return false
}

// Classify is the single source of truth for pending-versus-outstanding.
// Every summary, chart series and ledger view consumes this; due-date
// comparisons are never re-derived elsewhere.
//
// Rules, compared at calendar-day granularity:
//   - balance <= 0               -> Settled (overpayment included)
//   - balance > 0, due >= ref    -> Pending (due exactly on the reference
//     date counts toward the debtor)
//   - balance > 0, due < ref     -> Outstanding
func Classify(inv *Invoice, ref time.Time) InvoiceStatus {
	balance := inv.BalanceRemaining()
	if balance.LessThanOrEqual(decimal.Zero) {
		return StatusSettled
	}
	due := truncateToDay(inv.DueDate)
	refDay := truncateToDay(ref)
	if due.Before(refDay) {
		return StatusOutstanding
	}
	return StatusPending
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
