package billing

import (
	"fmt"
	"time"

	"github.com/ledgerview/backend/internal/domain/fiscal"
	"github.com/ledgerview/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MetricsSummary holds the dashboard card totals for a set of invoices.
// All amounts are exact decimals; JSON encodes them as decimal strings.
type MetricsSummary struct {
	TotalSales            decimal.Decimal `json:"total_sales"`
	TotalPaymentsReceived decimal.Decimal `json:"total_payments_received"`
	PendingAmount         decimal.Decimal `json:"pending_amount"`
	OutstandingAmount     decimal.Decimal `json:"outstanding_amount"`
	InvoiceCount          int             `json:"invoice_count"`
}

// Add returns the field-wise sum of two summaries. Summaries over
// disjoint invoice sets compose exactly.
func (s MetricsSummary) Add(other MetricsSummary) MetricsSummary {
	return MetricsSummary{
		TotalSales:            s.TotalSales.Add(other.TotalSales),
		TotalPaymentsReceived: s.TotalPaymentsReceived.Add(other.TotalPaymentsReceived),
		PendingAmount:         s.PendingAmount.Add(other.PendingAmount),
		OutstandingAmount:     s.OutstandingAmount.Add(other.OutstandingAmount),
		InvoiceCount:          s.InvoiceCount + other.InvoiceCount,
	}
}

// ZeroSummary returns a summary with all fields at zero.
func ZeroSummary() MetricsSummary {
	return MetricsSummary{
		TotalSales:            decimal.Zero,
		TotalPaymentsReceived: decimal.Zero,
		PendingAmount:         decimal.Zero,
		OutstandingAmount:     decimal.Zero,
	}
}

// Summarize aggregates the supplied invoices into dashboard totals.
// The window filter belongs to the caller: the aggregator trusts its
// input set and never drops rows, so an upstream filter bug shows up in
// the numbers instead of being masked here.
//
// A negative invoice total or payment amount is rejected with a
// NEGATIVE_AMOUNT error rather than summed. A negative *balance*
// (overpayment) is legitimate: the invoice classifies Settled and is
// excluded from pending/outstanding.
func Summarize(invoices []*Invoice, ref time.Time) (MetricsSummary, error) {
	summary := ZeroSummary()
	for _, inv := range invoices {
		if inv.TotalAmount.IsNegative() {
			return MetricsSummary{}, shared.NewDomainError("NEGATIVE_AMOUNT",
				fmt.Sprintf("Invoice %s carries a negative total", inv.InvoiceNumber))
		}
		summary.TotalSales = summary.TotalSales.Add(inv.TotalAmount)
		summary.InvoiceCount++

		for _, p := range inv.Payments {
			if p.Amount.IsNegative() {
				return MetricsSummary{}, shared.NewDomainError("NEGATIVE_AMOUNT",
					fmt.Sprintf("Payment %s on invoice %s carries a negative amount", p.Reference, inv.InvoiceNumber))
			}
			summary.TotalPaymentsReceived = summary.TotalPaymentsReceived.Add(p.Amount)
		}

		switch Classify(inv, ref) {
		case StatusPending:
			summary.PendingAmount = summary.PendingAmount.Add(inv.BalanceRemaining())
		case StatusOutstanding:
			summary.OutstandingAmount = summary.OutstandingAmount.Add(inv.BalanceRemaining())
		case StatusSettled:
			// fully collected, contributes to sales and payments only
		}
	}
	return summary, nil
}

// MonthlyBucket is one calendar month's slice of the fiscal-year series.
type MonthlyBucket struct {
	MonthLabel       string          `json:"month_label"`
	Month            time.Month      `json:"-"`
	Year             int             `json:"year"`
	Sales            decimal.Decimal `json:"sales"`
	PaymentsReceived decimal.Decimal `json:"payments_received"`
}

// BucketByMonth distributes invoice sales and payment receipts across the
// twelve months of the fiscal window, April through March, zero-filled.
// Invoice sales key on the issue date; each payment keys on its own
// payment date, so collections that cross month or year boundaries are
// attributed to when the money actually arrived. Dates outside the window
// are silently excluded from the series.
func BucketByMonth(invoices []*Invoice, w fiscal.Window) [12]MonthlyBucket {
	var buckets [12]MonthlyBucket
	for i, month := range w.Months() {
		year := w.Start.Year()
		if month < time.April {
			year = w.End.Year()
		}
		buckets[i] = MonthlyBucket{
			MonthLabel:       fmt.Sprintf("%s %d", month.String()[:3], year),
			Month:            month,
			Year:             year,
			Sales:            decimal.Zero,
			PaymentsReceived: decimal.Zero,
		}
	}

	for _, inv := range invoices {
		if idx := w.MonthIndex(inv.IssueDate); idx >= 0 {
			buckets[idx].Sales = buckets[idx].Sales.Add(inv.TotalAmount)
		}
		for _, p := range inv.Payments {
			if idx := w.MonthIndex(p.PaidOn); idx >= 0 {
				buckets[idx].PaymentsReceived = buckets[idx].PaymentsReceived.Add(p.Amount)
			}
		}
	}
	return buckets
}
