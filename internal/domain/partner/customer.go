package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerview/backend/internal/domain/shared"
)

// CustomerStatus represents the status of a customer
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// Customer represents a billed party in the partner context
type Customer struct {
	shared.TenantEntity
	Code        string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_customer_tenant_code,priority:2"`
	Name        string         `gorm:"type:varchar(200);not null"`
	Status      CustomerStatus `gorm:"type:varchar(20);not null;default:'active'"`
	ContactName string         `gorm:"type:varchar(100)"`
	Phone       string         `gorm:"type:varchar(50);index"`
	Email       string         `gorm:"type:varchar(200);index"`
	Address     string         `gorm:"type:text"`
	City        string         `gorm:"type:varchar(100)"`
	State       string         `gorm:"type:varchar(100)"`
	PostalCode  string         `gorm:"type:varchar(20)"`
	GSTIN       string         `gorm:"type:varchar(15);index"` // GST identification number
	Notes       string         `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

var (
	customerCodeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,50}$`)
	emailRegex        = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	gstinRegex        = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z]Z[0-9A-Z]$`)
)

// NewCustomer creates a new customer with required fields
func NewCustomer(tenantID uuid.UUID, code, name string) (*Customer, error) {
	if err := validateCustomerCode(code); err != nil {
		return nil, err
	}
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}

	return &Customer{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Code:         strings.ToUpper(code),
		Name:         name,
		Status:       CustomerStatusActive,
	}, nil
}

// Update updates the customer's basic information
func (c *Customer) Update(name string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}

// SetContact sets the customer's contact information
func (c *Customer) SetContact(contactName, phone, email string) error {
	if contactName != "" && len(contactName) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot exceed 100 characters")
	}
	if email != "" && !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}
	c.ContactName = contactName
	c.Phone = phone
	c.Email = email
	c.UpdatedAt = time.Now()
	return nil
}

// SetAddress sets the customer's address information
func (c *Customer) SetAddress(address, city, state, postalCode string) error {
	if address != "" && len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}
	c.Address = address
	c.City = city
	c.State = state
	c.PostalCode = postalCode
	c.UpdatedAt = time.Now()
	return nil
}

// SetGSTIN records the customer's GST identification number
func (c *Customer) SetGSTIN(gstin string) error {
	gstin = strings.ToUpper(strings.TrimSpace(gstin))
	if gstin != "" && !gstinRegex.MatchString(gstin) {
		return shared.NewDomainError("INVALID_GSTIN", "GSTIN format is not valid")
	}
	c.GSTIN = gstin
	c.UpdatedAt = time.Now()
	return nil
}

// Deactivate marks the customer as inactive
func (c *Customer) Deactivate() {
	c.Status = CustomerStatusInactive
	c.UpdatedAt = time.Now()
}

// Activate marks the customer as active
func (c *Customer) Activate() {
	c.Status = CustomerStatusActive
	c.UpdatedAt = time.Now()
}

// IsActive reports whether the customer can be billed
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

func validateCustomerCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CUSTOMER_CODE", "Customer code cannot be empty")
	}
	if !customerCodeRegex.MatchString(code) {
		return shared.NewDomainError("INVALID_CUSTOMER_CODE", "Customer code may only contain letters, digits, hyphens and underscores")
	}
	return nil
}

func validateCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot exceed 200 characters")
	}
	return nil
}
