package handler

import (
	"time"

	"github.com/belcompta/belcompta-api/internal/application/service"
	"github.com/belcompta/belcompta-api/internal/domain/entity"
	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/belcompta/belcompta-api/internal/domain/repository"
	"github.com/belcompta/belcompta-api/internal/presentation/http/dto/request"
	"github.com/belcompta/belcompta-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	paymentService *service.PaymentService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, paymentService *service.PaymentService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		paymentService: paymentService,
	}
}

// Create handles creating a draft invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoiceType, err := enum.ParseInvoiceType(req.InvoiceType)
	if err != nil {
		response.BadRequest(c, "Invalid invoice type")
		return
	}

	var customerID *uuid.UUID
	if req.CustomerID != nil {
		id, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		customerID = &id
	}

	invoiceDate, err := parseDate(req.InvoiceDate)
	if err != nil {
		response.BadRequest(c, "Invalid invoice date, expected YYYY-MM-DD")
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		response.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
		return
	}

	lines := make([]service.InvoiceLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, service.InvoiceLineInput{
			Description:      line.Description,
			Quantity:         line.Quantity,
			UnitPriceExclVAT: line.UnitPriceExclVAT,
			VATRate:          line.VATRate,
		})
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		InvoiceType:  invoiceType,
		CustomerID:   customerID,
		SupplierName: req.SupplierName,
		InvoiceDate:  invoiceDate,
		DueDate:      dueDate,
		BillingAddress: entity.BillingAddress{
			Street:     req.BillingAddress.Street,
			Number:     req.BillingAddress.Number,
			PostalCode: req.BillingAddress.PostalCode,
			City:       req.BillingAddress.City,
			Country:    req.BillingAddress.Country,
		},
		OrderReference: req.OrderReference,
		Notes:          req.Notes,
		Lines:          lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Get handles getting a single invoice with lines and payments
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// List handles listing invoices filtered by type, status, customer and date range
func (h *InvoiceHandler) List(c *gin.Context) {
	params := &repository.InvoiceFilterParams{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
	}

	if s := c.Query("invoice_type"); s != "" {
		invoiceType, err := enum.ParseInvoiceType(s)
		if err != nil {
			response.BadRequest(c, "Invalid invoice type")
			return
		}
		params.InvoiceType = &invoiceType
	}
	if s := c.Query("status"); s != "" {
		status, err := enum.ParseInvoiceStatus(s)
		if err != nil {
			response.BadRequest(c, "Invalid invoice status")
			return
		}
		params.Status = &status
	}

	customerID, err := parseUUIDQuery(c, "customer_id")
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}
	params.CustomerID = customerID

	if params.DateFrom, err = parseDateQuery(c, "date_from"); err != nil {
		response.BadRequest(c, "Invalid date_from, expected YYYY-MM-DD")
		return
	}
	if params.DateTo, err = parseDateQuery(c, "date_to"); err != nil {
		response.BadRequest(c, "Invalid date_to, expected YYYY-MM-DD")
		return
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// UpdateStatus handles moving an invoice into a lifecycle state
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, err := enum.ParseInvoiceStatus(req.Status)
	if err != nil {
		response.BadRequest(c, "Invalid invoice status")
		return
	}

	invoice, err := h.invoiceService.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice status updated successfully", invoice)
}

// MarkPaid handles the manual paid override
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.MarkPaid(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice marked as paid", invoice)
}

// BalanceDue handles reporting the open amount on an invoice
func (h *InvoiceHandler) BalanceDue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	balance, err := h.invoiceService.BalanceDue(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Balance due computed successfully", gin.H{
		"invoice_id":  id,
		"balance_due": balance,
	})
}

// ListOverdue handles listing sent invoices past their due date
func (h *InvoiceHandler) ListOverdue(c *gin.Context) {
	invoices, err := h.invoiceService.ListOverdue(c.Request.Context(), time.Now().UTC())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Overdue invoices retrieved successfully", invoices)
}

// PostToLedger handles posting a sale invoice to the sales journal
func (h *InvoiceHandler) PostToLedger(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	entry, err := h.invoiceService.PostToLedger(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice posted to the ledger", entry)
}

// RecordPayment handles applying a payment to an invoice
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		response.BadRequest(c, "Invalid payment date, expected YYYY-MM-DD")
		return
	}
	paymentMethod, err := enum.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		response.BadRequest(c, "Invalid payment method")
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		InvoiceID:     id,
		PaymentDate:   paymentDate,
		Amount:        req.Amount,
		PaymentMethod: paymentMethod,
		Reference:     req.Reference,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded successfully", payment)
}

// ListPayments handles listing the payments applied to an invoice
func (h *InvoiceHandler) ListPayments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", payments)
}
