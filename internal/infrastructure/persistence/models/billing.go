package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/ledgerview/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for the Invoice aggregate.
type InvoiceModel struct {
	TenantModel
	InvoiceNumber string              `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoice_tenant_number,priority:2"`
	CustomerID    uuid.UUID           `gorm:"type:uuid;not null;index"`
	CustomerName  string              `gorm:"type:varchar(200);not null"`
	IssueDate     time.Time           `gorm:"type:date;not null;index"`
	DueDate       time.Time           `gorm:"type:date;not null;index"`
	TotalAmount   decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	TaxAmount     decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	FiscalYear    string              `gorm:"type:varchar(9);not null;index"`
	Remark        string              `gorm:"type:text"`
	Payments      []PaymentEventModel `gorm:"foreignKey:InvoiceID"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice aggregate.
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	payments := make([]billing.PaymentEvent, len(m.Payments))
	for i := range m.Payments {
		payments[i] = *m.Payments[i].ToDomain()
	}
	return &billing.Invoice{
		TenantEntity:  m.ToDomainTenantEntity(),
		InvoiceNumber: m.InvoiceNumber,
		CustomerID:    m.CustomerID,
		CustomerName:  m.CustomerName,
		IssueDate:     m.IssueDate,
		DueDate:       m.DueDate,
		TotalAmount:   m.TotalAmount,
		TaxAmount:     m.TaxAmount,
		FiscalYear:    m.FiscalYear,
		Payments:      payments,
		Remark:        m.Remark,
	}
}

// FromDomain populates the persistence model from a domain Invoice aggregate.
func (m *InvoiceModel) FromDomain(inv *billing.Invoice) {
	m.FromDomainTenantEntity(inv.TenantEntity)
	m.InvoiceNumber = inv.InvoiceNumber
	m.CustomerID = inv.CustomerID
	m.CustomerName = inv.CustomerName
	m.IssueDate = inv.IssueDate
	m.DueDate = inv.DueDate
	m.TotalAmount = inv.TotalAmount
	m.TaxAmount = inv.TaxAmount
	m.FiscalYear = inv.FiscalYear
	m.Remark = inv.Remark
	m.Payments = make([]PaymentEventModel, len(inv.Payments))
	for i := range inv.Payments {
		m.Payments[i].FromDomain(&inv.Payments[i])
	}
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice.
func InvoiceModelFromDomain(inv *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}

// PaymentEventModel is the persistence model for the PaymentEvent value object.
type PaymentEventModel struct {
	ID        uuid.UUID             `gorm:"type:uuid;primary_key"`
	InvoiceID uuid.UUID             `gorm:"type:uuid;not null;index"`
	Reference string                `gorm:"type:varchar(50);not null"`
	Amount    decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	PaidOn    time.Time             `gorm:"type:date;not null;index"`
	Method    billing.PaymentMethod `gorm:"type:varchar(20);not null"`
	Remark    string                `gorm:"type:text"`
	CreatedAt time.Time             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PaymentEventModel) TableName() string {
	return "payment_events"
}

// ToDomain converts the persistence model to a domain PaymentEvent.
func (m *PaymentEventModel) ToDomain() *billing.PaymentEvent {
	return &billing.PaymentEvent{
		ID:        m.ID,
		InvoiceID: m.InvoiceID,
		Reference: m.Reference,
		Amount:    m.Amount,
		PaidOn:    m.PaidOn,
		Method:    m.Method,
		Remark:    m.Remark,
	}
}

// FromDomain populates the persistence model from a domain PaymentEvent.
func (m *PaymentEventModel) FromDomain(p *billing.PaymentEvent) {
	m.ID = p.ID
	m.InvoiceID = p.InvoiceID
	m.Reference = p.Reference
	m.Amount = p.Amount
	m.PaidOn = p.PaidOn
	m.Method = p.Method
	m.Remark = p.Remark
}
