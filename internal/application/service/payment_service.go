package service

import (
	"context"
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/belcompta/belcompta-api/internal/domain/repository"
	"github.com/belcompta/belcompta-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentService records settlements against invoices
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	invoiceRepo repository.InvoiceRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	invoiceRepo repository.InvoiceRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
	}
}

// RecordPaymentInput represents the record payment input
type RecordPaymentInput struct {
	InvoiceID     uuid.UUID
	PaymentDate   time.Time
	Amount        decimal.Decimal
	PaymentMethod enum.PaymentMethod
	Reference     string
	Notes         string
}

// RecordPayment applies a payment to an invoice. Recording a payment does
// not change the invoice status; marking an invoice paid stays a separate
// manual action.
func (s *PaymentService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Payment, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.Status == enum.InvoiceStatusCancelled {
		return nil, apperror.NewBadRequestError("Cannot record a payment on a cancelled invoice")
	}

	if !input.Amount.IsPositive() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "amount", Message: "Amount must be positive"},
		})
	}

	payment := &entity.Payment{
		InvoiceID:     input.InvoiceID,
		PaymentDate:   input.PaymentDate,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Reference:     input.Reference,
		Notes:         input.Notes,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// ListPayments returns the payments applied to an invoice
func (s *PaymentService) ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	return s.paymentRepo.ListByInvoice(ctx, invoiceID)
}
