package dashboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/ledgerview/backend/internal/domain/partner"
	"github.com/ledgerview/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CustomerService serves the customer directory backing the dashboard's
// customer picker and the statement screens.
type CustomerService struct {
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, logger *zap.Logger) *CustomerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// ListCustomers returns one page of the tenant's customer directory.
func (s *CustomerService) ListCustomers(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[CustomerSummary], error) {
	def := shared.DefaultFilter()
	if filter.Page < 1 {
		filter.Page = def.Page
	}
	if filter.PageSize < 1 {
		filter.PageSize = def.PageSize
	}

	customers, err := s.customerRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[CustomerSummary]{}, err
	}

	total, err := s.customerRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[CustomerSummary]{}, err
	}

	items := make([]CustomerSummary, 0, len(customers))
	for i := range customers {
		items = append(items, toCustomerSummary(&customers[i]))
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// GetCustomer returns a single customer's directory entry.
func (s *CustomerService) GetCustomer(ctx context.Context, tenantID, id uuid.UUID) (*CustomerDetail, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	detail := toCustomerDetail(customer)
	return &detail, nil
}

func toCustomerSummary(c *partner.Customer) CustomerSummary {
	return CustomerSummary{
		ID:     c.ID,
		Code:   c.Code,
		Name:   c.Name,
		Status: string(c.Status),
		Phone:  c.Phone,
		Email:  c.Email,
		GSTIN:  c.GSTIN,
	}
}

func toCustomerDetail(c *partner.Customer) CustomerDetail {
	return CustomerDetail{
		CustomerSummary: toCustomerSummary(c),
		ContactName:     c.ContactName,
		Address:         c.Address,
		City:            c.City,
		State:           c.State,
		PostalCode:      c.PostalCode,
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
	}
}
