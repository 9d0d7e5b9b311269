package models

import (
	"github.com/ledgerview/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	TenantModel
	Code        string                 `gorm:"type:varchar(50);not null;uniqueIndex:idx_customer_tenant_code,priority:2"`
	Name        string                 `gorm:"type:varchar(200);not null"`
	Status      partner.CustomerStatus `gorm:"type:varchar(20);not null;default:'active'"`
	ContactName string                 `gorm:"type:varchar(100)"`
	Phone       string                 `gorm:"type:varchar(50);index"`
	Email       string                 `gorm:"type:varchar(200);index"`
	Address     string                 `gorm:"type:text"`
	City        string                 `gorm:"type:varchar(100)"`
	State       string                 `gorm:"type:varchar(100)"`
	PostalCode  string                 `gorm:"type:varchar(20)"`
	GSTIN       string                 `gorm:"type:varchar(15);index"`
	Notes       string                 `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		TenantEntity: m.ToDomainTenantEntity(),
		Code:         m.Code,
		Name:         m.Name,
		Status:       m.Status,
		ContactName:  m.ContactName,
		Phone:        m.Phone,
		Email:        m.Email,
		Address:      m.Address,
		City:         m.City,
		State:        m.State,
		PostalCode:   m.PostalCode,
		GSTIN:        m.GSTIN,
		Notes:        m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainTenantEntity(c.TenantEntity)
	m.Code = c.Code
	m.Name = c.Name
	m.Status = c.Status
	m.ContactName = c.ContactName
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
	m.City = c.City
	m.State = c.State
	m.PostalCode = c.PostalCode
	m.GSTIN = c.GSTIN
	m.Notes = c.Notes
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
