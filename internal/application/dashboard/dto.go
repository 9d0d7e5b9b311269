package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/ledgerview/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// MetricsResponse is the dashboard card payload for one fiscal year
type MetricsResponse struct {
	FiscalYear            string          `json:"fiscal_year"`
	PeriodStart           time.Time       `json:"period_start"`
	PeriodEnd             time.Time       `json:"period_end"`
	AsOf                  time.Time       `json:"as_of"`
	TotalSales            decimal.Decimal `json:"total_sales"`
	TotalPaymentsReceived decimal.Decimal `json:"total_payments_received"`
	PendingAmount         decimal.Decimal `json:"pending_amount"`
	OutstandingAmount     decimal.Decimal `json:"outstanding_amount"`
	InvoiceCount          int             `json:"invoice_count"`
}

// MonthlyPoint is one month of the fiscal-year chart series
type MonthlyPoint struct {
	MonthLabel       string          `json:"month_label"`
	Year             int             `json:"year"`
	Sales            decimal.Decimal `json:"sales"`
	PaymentsReceived decimal.Decimal `json:"payments_received"`
}

// MonthlySeriesResponse is the twelve-month chart payload, April to March
type MonthlySeriesResponse struct {
	FiscalYear string         `json:"fiscal_year"`
	Months     []MonthlyPoint `json:"months"`
}

// FiscalYearsResponse lists the fiscal years selectable on the dashboard
type FiscalYearsResponse struct {
	Current string   `json:"current"`
	Years   []string `json:"years"`
}

// LedgerEntryResponse is one row of a customer statement
type LedgerEntryResponse struct {
	Date           time.Time       `json:"date"`
	DateDisplay    string          `json:"date_display"`
	Kind           string          `json:"kind"`
	Reference      string          `json:"reference"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	AmountDisplay  string          `json:"amount_display"`
	Balance        decimal.Decimal `json:"balance"`
	BalanceDisplay string          `json:"balance_display"`
}

// LedgerResponse is a customer's full statement
type LedgerResponse struct {
	CustomerID            uuid.UUID             `json:"customer_id"`
	CustomerName          string                `json:"customer_name"`
	Entries               []LedgerEntryResponse `json:"entries"`
	ClosingBalance        decimal.Decimal       `json:"closing_balance"`
	ClosingBalanceDisplay string                `json:"closing_balance_display"`
	GeneratedAt           time.Time             `json:"generated_at"`
}

// CustomerSummary is one row of the customer directory listing
type CustomerSummary struct {
	ID     uuid.UUID `json:"id"`
	Code   string    `json:"code"`
	Name   string    `json:"name"`
	Status string    `json:"status"`
	Phone  string    `json:"phone,omitempty"`
	Email  string    `json:"email,omitempty"`
	GSTIN  string    `json:"gstin,omitempty"`
}

// CustomerDetail is a customer's full directory entry
type CustomerDetail struct {
	CustomerSummary
	ContactName string    `json:"contact_name,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	PostalCode  string    `json:"postal_code,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toLedgerEntryResponse(e billing.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		Date:           e.Date,
		DateDisplay:    e.DateDisplay,
		Kind:           string(e.Kind),
		Reference:      e.Reference,
		Description:    e.Description,
		Amount:         e.Amount,
		AmountDisplay:  e.AmountDisplay,
		Balance:        e.Balance,
		BalanceDisplay: e.BalanceDisplay,
	}
}
