package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledgerview/backend/internal/application/dashboard"
)

// LedgerHandler handles customer statement API endpoints
type LedgerHandler struct {
	BaseHandler
	ledgerService *dashboard.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledgerService *dashboard.LedgerService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// GetCustomerLedger returns the customer's full statement with a running balance
func (h *LedgerHandler) GetCustomerLedger(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	ledger, err := h.ledgerService.GetCustomerLedger(c.Request.Context(), tenantID, customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ledger)
}

// RegisterRoutes registers all ledger routes
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.GET("/:id/ledger", h.GetCustomerLedger)
	}
}
