package billing

import (
	"testing"
	"time"

	"github.com/ledgerview/backend/internal/domain/fiscal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	ref := time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)

	t.Run("empty input yields an all-zero summary", func(t *testing.T) {
		summary, err := Summarize(nil, ref)
		require.NoError(t, err)
		assert.True(t, summary.TotalSales.IsZero())
		assert.True(t, summary.TotalPaymentsReceived.IsZero())
		assert.True(t, summary.PendingAmount.IsZero())
		assert.True(t, summary.OutstandingAmount.IsZero())
		assert.Zero(t, summary.InvoiceCount)
	})

	t.Run("partitions open balances by classification", func(t *testing.T) {
		june := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

		pending := newTestInvoice(t, "INV-P", june, ref.AddDate(0, 1, 0), "1000")
		pay(t, pending, "PAY-P", "400", june.AddDate(0, 0, 5))

		overdue := newTestInvoice(t, "INV-O", june, june.AddDate(0, 0, 30), "2000")

		settled := newTestInvoice(t, "INV-S", june, june.AddDate(0, 0, 30), "500")
		pay(t, settled, "PAY-S", "500", june.AddDate(0, 0, 2))

		summary, err := Summarize([]*Invoice{pending, overdue, settled}, ref)
		require.NoError(t, err)

		assert.True(t, summary.TotalSales.Equal(decimal.NewFromInt(3500)))
		assert.True(t, summary.TotalPaymentsReceived.Equal(decimal.NewFromInt(900)))
		assert.True(t, summary.PendingAmount.Equal(decimal.NewFromInt(600)))
		assert.True(t, summary.OutstandingAmount.Equal(decimal.NewFromInt(2000)))
		assert.Equal(t, 3, summary.InvoiceCount)
	})

	t.Run("overpaid invoice contributes payments but no open balance", func(t *testing.T) {
		june := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		inv := newTestInvoice(t, "INV-OVER", june, june.AddDate(0, 0, 10), "1000")
		pay(t, inv, "PAY-A", "1000", june)
		pay(t, inv, "PAY-A-DUP", "500", june)

		summary, err := Summarize([]*Invoice{inv}, ref)
		require.NoError(t, err)
		assert.True(t, summary.TotalPaymentsReceived.Equal(decimal.NewFromInt(1500)))
		assert.True(t, summary.PendingAmount.IsZero())
		assert.True(t, summary.OutstandingAmount.IsZero())
	})

	t.Run("rejects a negative invoice total", func(t *testing.T) {
		june := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		inv := newTestInvoice(t, "INV-NEG", june, june.AddDate(0, 0, 10), "100")
		inv.TotalAmount = decimal.NewFromInt(-100)

		_, err := Summarize([]*Invoice{inv}, ref)
		require.Error(t, err)
		assert.Equal(t, "NEGATIVE_AMOUNT", domainCode(t, err))
	})

	t.Run("rejects a negative payment amount", func(t *testing.T) {
		june := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		inv := newTestInvoice(t, "INV-NEGP", june, june.AddDate(0, 0, 10), "100")
		pay(t, inv, "PAY-X", "50", june)
		inv.Payments[0].Amount = decimal.NewFromInt(-50)

		_, err := Summarize([]*Invoice{inv}, ref)
		require.Error(t, err)
		assert.Equal(t, "NEGATIVE_AMOUNT", domainCode(t, err))
	})

	t.Run("summaries over disjoint sets add up to the combined summary", func(t *testing.T) {
		june := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
		july := time.Date(2024, time.July, 8, 0, 0, 0, 0, time.UTC)

		a := newTestInvoice(t, "INV-A", june, june.AddDate(0, 0, 15), "1234.56")
		pay(t, a, "PAY-A", "234.56", june.AddDate(0, 0, 4))
		b := newTestInvoice(t, "INV-B", july, july.AddDate(0, 0, 15), "789.01")
		c := newTestInvoice(t, "INV-C", july, ref.AddDate(0, 2, 0), "450")

		combined, err := Summarize([]*Invoice{a, b, c}, ref)
		require.NoError(t, err)
		first, err := Summarize([]*Invoice{a, b}, ref)
		require.NoError(t, err)
		second, err := Summarize([]*Invoice{c}, ref)
		require.NoError(t, err)

		sum := first.Add(second)
		assert.True(t, combined.TotalSales.Equal(sum.TotalSales))
		assert.True(t, combined.TotalPaymentsReceived.Equal(sum.TotalPaymentsReceived))
		assert.True(t, combined.PendingAmount.Equal(sum.PendingAmount))
		assert.True(t, combined.OutstandingAmount.Equal(sum.OutstandingAmount))
		assert.Equal(t, combined.InvoiceCount, sum.InvoiceCount)
	})

	t.Run("decimal amounts sum without drift", func(t *testing.T) {
		june := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		invoices := make([]*Invoice, 0, 100)
		for i := range 100 {
			inv := newTestInvoice(t, "INV-D", june.AddDate(0, 0, i%28), ref.AddDate(0, 1, 0), "0.01")
			invoices = append(invoices, inv)
		}
		summary, err := Summarize(invoices, ref)
		require.NoError(t, err)
		assert.Equal(t, "1.00", summary.TotalSales.StringFixed(2))
		assert.Equal(t, "1.00", summary.PendingAmount.StringFixed(2))
	})
}

func TestBucketByMonth(t *testing.T) {
	w, err := fiscal.WindowForLabel("2024-2025")
	require.NoError(t, err)

	t.Run("returns twelve zero-filled buckets from April to March", func(t *testing.T) {
		buckets := BucketByMonth(nil, w)
		require.Len(t, buckets, 12)
		assert.Equal(t, time.April, buckets[0].Month)
		assert.Equal(t, 2024, buckets[0].Year)
		assert.Equal(t, time.December, buckets[8].Month)
		assert.Equal(t, time.January, buckets[9].Month)
		assert.Equal(t, 2025, buckets[9].Year)
		assert.Equal(t, time.March, buckets[11].Month)
		assert.Equal(t, 2025, buckets[11].Year)
		for _, b := range buckets {
			assert.True(t, b.Sales.IsZero())
			assert.True(t, b.PaymentsReceived.IsZero())
		}
	})

	t.Run("attributes sales to issue month and payments to payment month", func(t *testing.T) {
		issue := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)
		inv := newTestInvoice(t, "INV-M", issue, issue.AddDate(0, 1, 0), "1000")
		pay(t, inv, "PAY-M1", "400", time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC))
		pay(t, inv, "PAY-M2", "600", time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC))

		buckets := BucketByMonth([]*Invoice{inv}, w)
		assert.Equal(t, "1000", buckets[1].Sales.String())
		assert.True(t, buckets[1].PaymentsReceived.IsZero())
		assert.Equal(t, "400", buckets[2].PaymentsReceived.String())
		assert.Equal(t, "600", buckets[9].PaymentsReceived.String())
	})

	t.Run("silently excludes dates outside the window", func(t *testing.T) {
		inside := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
		inv := newTestInvoice(t, "INV-W", inside, inside.AddDate(0, 1, 0), "300")
		pay(t, inv, "PAY-W", "300", time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC))

		outside := newTestInvoice(t, "INV-X",
			time.Date(2023, time.November, 5, 0, 0, 0, 0, time.UTC),
			time.Date(2023, time.December, 5, 0, 0, 0, 0, time.UTC), "999")

		buckets := BucketByMonth([]*Invoice{inv, outside}, w)
		assert.Equal(t, "300", buckets[0].Sales.String())
		for _, b := range buckets {
			assert.True(t, b.PaymentsReceived.IsZero())
			assert.NotEqual(t, "999", b.Sales.String())
		}
	})

	t.Run("bucket totals reconcile with the summary over the same window", func(t *testing.T) {
		mk := func(num string, issue time.Time, total string) *Invoice {
			return newTestInvoice(t, num, issue, issue.AddDate(0, 1, 0), total)
		}
		invoices := []*Invoice{
			mk("INV-R1", time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC), "1500"),
			mk("INV-R2", time.Date(2024, time.August, 19, 0, 0, 0, 0, time.UTC), "2750.25"),
			mk("INV-R3", time.Date(2025, time.February, 7, 0, 0, 0, 0, time.UTC), "640"),
		}
		pay(t, invoices[0], "PAY-R1", "1500", time.Date(2024, time.April, 28, 0, 0, 0, 0, time.UTC))
		pay(t, invoices[1], "PAY-R2", "1000", time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC))

		summary, err := Summarize(invoices, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		buckets := BucketByMonth(invoices, w)

		sales := decimal.Zero
		payments := decimal.Zero
		for _, b := range buckets {
			sales = sales.Add(b.Sales)
			payments = payments.Add(b.PaymentsReceived)
		}
		assert.True(t, sales.Equal(summary.TotalSales))
		assert.True(t, payments.Equal(summary.TotalPaymentsReceived))
	})

	t.Run("month labels carry the month and calendar year", func(t *testing.T) {
		buckets := BucketByMonth(nil, w)
		assert.Equal(t, "Apr 2024", buckets[0].MonthLabel)
		assert.Equal(t, "Jan 2025", buckets[9].MonthLabel)
		assert.Equal(t, "Mar 2025", buckets[11].MonthLabel)
	})
}
