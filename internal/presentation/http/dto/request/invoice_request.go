package request

import "github.com/shopspring/decimal"

// BillingAddressRequest is the structured invoice address
type BillingAddressRequest struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

// InvoiceLineRequest is one billed position. The derived amounts are
// computed server-side and must not be sent.
type InvoiceLineRequest struct {
	Description      string          `json:"description" binding:"required"`
	Quantity         decimal.Decimal `json:"quantity" binding:"required"`
	UnitPriceExclVAT decimal.Decimal `json:"unit_price_excl_vat"`
	VATRate          decimal.Decimal `json:"vat_rate"`
}

// CreateInvoiceRequest is the payload for creating a draft invoice
type CreateInvoiceRequest struct {
	InvoiceType    string                `json:"invoice_type" binding:"required"`
	CustomerID     *string               `json:"customer_id"`
	SupplierName   string                `json:"supplier_name"`
	InvoiceDate    string                `json:"invoice_date" binding:"required"`
	DueDate        string                `json:"due_date" binding:"required"`
	BillingAddress BillingAddressRequest `json:"billing_address"`
	OrderReference string                `json:"order_reference"`
	Notes          string                `json:"notes"`
	Lines          []InvoiceLineRequest  `json:"lines" binding:"required,min=1,dive"`
}

// RecordPaymentRequest is the payload for applying a payment to an invoice
type RecordPaymentRequest struct {
	PaymentDate   string          `json:"payment_date" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Reference     string          `json:"reference"`
	Notes         string          `json:"notes"`
}
