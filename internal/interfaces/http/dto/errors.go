package dto

import "net/http"

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInvalidJSON is used when request body parsing fails
	ErrCodeInvalidJSON = "INVALID_JSON"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
)

// Domain validation error codes, shared with the domain layer
const (
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeInvalidFiscalYear is used when a fiscal-year label is malformed or inconsistent
	ErrCodeInvalidFiscalYear = "INVALID_FISCAL_YEAR"
	// ErrCodeNegativeAmount is used when a monetary amount is negative
	ErrCodeNegativeAmount = "NEGATIVE_AMOUNT"
	// ErrCodeMalformedLedgerEntry is used when a ledger source record is unusable
	ErrCodeMalformedLedgerEntry = "MALFORMED_LEDGER_ENTRY"
	// ErrCodeInvalidDueDate is used when a due date precedes the issue date
	ErrCodeInvalidDueDate = "INVALID_DUE_DATE"
	// ErrCodeInvalidPaymentMethod is used when a payment method is not recognised
	ErrCodeInvalidPaymentMethod = "INVALID_PAYMENT_METHOD"
	// ErrCodeInvalidGSTIN is used when a GSTIN fails format validation
	ErrCodeInvalidGSTIN = "INVALID_GSTIN"
	// ErrCodeInvalidInvoiceID is used when a payment does not reference an invoice
	ErrCodeInvalidInvoiceID = "INVALID_INVOICE_ID"
	// ErrCodeInvalidReference is used when a payment reference is empty
	ErrCodeInvalidReference = "INVALID_REFERENCE"
	// ErrCodeInvalidInvoiceNumber is used when an invoice number is empty
	ErrCodeInvalidInvoiceNumber = "INVALID_INVOICE_NUMBER"
	// ErrCodeInvalidCustomer is used when an invoice lacks a customer
	ErrCodeInvalidCustomer = "INVALID_CUSTOMER"
	// ErrCodeInvalidCustomerName is used when a customer name fails validation
	ErrCodeInvalidCustomerName = "INVALID_CUSTOMER_NAME"
	// ErrCodeInvalidCustomerCode is used when a customer code fails validation
	ErrCodeInvalidCustomerCode = "INVALID_CUSTOMER_CODE"
	// ErrCodeInvalidContactName is used when a contact name is too long
	ErrCodeInvalidContactName = "INVALID_CONTACT_NAME"
	// ErrCodeInvalidEmail is used when an email address fails validation
	ErrCodeInvalidEmail = "INVALID_EMAIL"
	// ErrCodeInvalidAddress is used when an address is too long
	ErrCodeInvalidAddress = "INVALID_ADDRESS"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:    http.StatusInternalServerError,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,

	ErrCodeInvalidInput:         http.StatusBadRequest,
	ErrCodeInvalidFiscalYear:    http.StatusBadRequest,
	ErrCodeNegativeAmount:       http.StatusBadRequest,
	ErrCodeMalformedLedgerEntry: http.StatusBadRequest,
	ErrCodeInvalidDueDate:       http.StatusBadRequest,
	ErrCodeInvalidPaymentMethod: http.StatusBadRequest,
	ErrCodeInvalidGSTIN:         http.StatusBadRequest,
	ErrCodeInvalidInvoiceID:     http.StatusBadRequest,
	ErrCodeInvalidReference:     http.StatusBadRequest,
	ErrCodeInvalidInvoiceNumber: http.StatusBadRequest,
	ErrCodeInvalidCustomer:      http.StatusBadRequest,
	ErrCodeInvalidCustomerName:  http.StatusBadRequest,
	ErrCodeInvalidCustomerCode:  http.StatusBadRequest,
	ErrCodeInvalidContactName:   http.StatusBadRequest,
	ErrCodeInvalidEmail:         http.StatusBadRequest,
	ErrCodeInvalidAddress:       http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
