package billing

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerview/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EntryKind distinguishes the two sides of a customer ledger.
type EntryKind string

const (
	EntryDebit  EntryKind = "DEBIT"  // invoice issued, balance owed grows
	EntryCredit EntryKind = "CREDIT" // payment received, balance owed shrinks
)

// LedgerEntry is one row of a customer statement. Display fields are
// pre-rendered so every consumer shows identical formatting.
type LedgerEntry struct {
	Date           time.Time       `json:"date"`
	DateDisplay    string          `json:"date_display"`
	Kind           EntryKind       `json:"kind"`
	Reference      string          `json:"reference"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	AmountDisplay  string          `json:"amount_display"`
	Balance        decimal.Decimal `json:"balance"`
	BalanceDisplay string          `json:"balance_display"`
}

const ledgerDateLayout = "02/01/2006"

// ledgerRow is the pre-sort form of an entry, before the running
// balance is assigned.
type ledgerRow struct {
	date      time.Time
	kind      EntryKind
	reference string
	desc      string
	amount    decimal.Decimal
	id        uuid.UUID
}

// BuildLedger folds a customer's invoices and their payments into a
// chronological statement with a running balance. Output is
// deterministic for any input order: rows sort by date, then reference,
// then kind (debits before credits on a tie), then entity ID. References
// are free-form and may repeat across invoices, so the ID keeps the
// order total.
//
// Every invoice must belong to customerID and every payment must point
// at one of the supplied invoices; a violation returns a
// MALFORMED_LEDGER_ENTRY error rather than a silently wrong statement.
func BuildLedger(customerID uuid.UUID, invoices []*Invoice) ([]LedgerEntry, error) {
	rows := make([]ledgerRow, 0, len(invoices)*2)
	for _, inv := range invoices {
		if inv.CustomerID != customerID {
			return nil, shared.NewDomainError("MALFORMED_LEDGER_ENTRY",
				fmt.Sprintf("Invoice %s belongs to a different customer", inv.InvoiceNumber))
		}
		if inv.IssueDate.IsZero() {
			return nil, shared.NewDomainError("MALFORMED_LEDGER_ENTRY",
				fmt.Sprintf("Invoice %s has no issue date", inv.InvoiceNumber))
		}
		rows = append(rows, ledgerRow{
			date:      inv.IssueDate,
			kind:      EntryDebit,
			reference: inv.InvoiceNumber,
			desc:      fmt.Sprintf("Invoice %s issued", inv.InvoiceNumber),
			amount:    inv.TotalAmount,
			id:        inv.ID,
		})
		for _, p := range inv.Payments {
			if p.InvoiceID != inv.ID {
				return nil, shared.NewDomainError("MALFORMED_LEDGER_ENTRY",
					fmt.Sprintf("Payment %s does not belong to invoice %s", p.Reference, inv.InvoiceNumber))
			}
			if p.PaidOn.IsZero() {
				return nil, shared.NewDomainError("MALFORMED_LEDGER_ENTRY",
					fmt.Sprintf("Payment %s has no payment date", p.Reference))
			}
			rows = append(rows, ledgerRow{
				date:      p.PaidOn,
				kind:      EntryCredit,
				reference: p.Reference,
				desc:      fmt.Sprintf("Payment %s against invoice %s", p.Reference, inv.InvoiceNumber),
				amount:    p.Amount,
				id:        p.ID,
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].date.Equal(rows[j].date) {
			return rows[i].date.Before(rows[j].date)
		}
		if rows[i].reference != rows[j].reference {
			return rows[i].reference < rows[j].reference
		}
		if rows[i].kind != rows[j].kind {
			return rows[i].kind == EntryDebit
		}
		return rows[i].id.String() < rows[j].id.String()
	})

	entries := make([]LedgerEntry, 0, len(rows))
	balance := decimal.Zero
	for _, r := range rows {
		if r.kind == EntryDebit {
			balance = balance.Add(r.amount)
		} else {
			balance = balance.Sub(r.amount)
		}
		entries = append(entries, LedgerEntry{
			Date:           r.date,
			DateDisplay:    r.date.Format(ledgerDateLayout),
			Kind:           r.kind,
			Reference:      r.reference,
			Description:    r.desc,
			Amount:         r.amount,
			AmountDisplay:  r.amount.StringFixed(2),
			Balance:        balance,
			BalanceDisplay: balance.StringFixed(2),
		})
	}
	return entries, nil
}
