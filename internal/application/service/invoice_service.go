package service

import (
	"context"
	"errors"
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/belcompta/belcompta-api/internal/domain/repository"
	"github.com/belcompta/belcompta-api/pkg/apperror"
	"github.com/belcompta/belcompta-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// The VAT rates applicable in Belgium.
var belgianVATRates = []decimal.Decimal{
	decimal.NewFromInt(0),
	decimal.NewFromInt(6),
	decimal.NewFromInt(12),
	decimal.NewFromInt(21),
}

var oneHundred = decimal.NewFromInt(100)

// ComputeLineTotals derives the three line amounts from quantity, unit price
// and VAT rate. All amounts are rounded half-even to 2 decimal places (the
// euro minor unit): total excluding VAT first, then the VAT amount on the
// rounded base, so total_incl is always the exact sum of the two.
func ComputeLineTotals(quantity, unitPriceExclVAT, vatRate decimal.Decimal) (totalExclVAT, vatAmount, totalInclVAT decimal.Decimal) {
	totalExclVAT = quantity.Mul(unitPriceExclVAT).RoundBank(2)
	vatAmount = totalExclVAT.Mul(vatRate).Div(oneHundred).RoundBank(2)
	totalInclVAT = totalExclVAT.Add(vatAmount)
	return totalExclVAT, vatAmount, totalInclVAT
}

// InvoiceService handles invoice computation and settlement tracking
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	paymentRepo  repository.PaymentRepository
	customerRepo repository.CustomerRepository
	entryService *EntryService
	accountRepo  repository.AccountRepository
	journalRepo  repository.JournalRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	customerRepo repository.CustomerRepository,
	entryService *EntryService,
	accountRepo repository.AccountRepository,
	journalRepo repository.JournalRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
		entryService: entryService,
		accountRepo:  accountRepo,
		journalRepo:  journalRepo,
	}
}

// InvoiceLineInput represents one line of an invoice being created
type InvoiceLineInput struct {
	Description      string
	Quantity         decimal.Decimal
	UnitPriceExclVAT decimal.Decimal
	VATRate          decimal.Decimal
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	InvoiceType    enum.InvoiceType
	CustomerID     *uuid.UUID
	SupplierName   string
	InvoiceDate    time.Time
	DueDate        time.Time
	BillingAddress entity.BillingAddress
	OrderReference string
	Notes          string
	Lines          []InvoiceLineInput
}

// CreateInvoice creates a draft invoice. Line and invoice amounts are
// recomputed server-side from quantity, unit price and rate; aggregate
// fields supplied by the caller are ignored.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	switch input.InvoiceType {
	case enum.InvoiceTypeSale, enum.InvoiceTypeCreditNote:
		if input.CustomerID == nil {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "customer_id", Message: "Customer is required for sale invoices and credit notes"},
			})
		}
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	case enum.InvoiceTypePurchase:
		if input.SupplierName == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "supplier_name", Message: "Supplier name is required for purchase invoices"},
			})
		}
	}

	if input.DueDate.Before(input.InvoiceDate) {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "due_date", Message: "Due date must not precede the invoice date"},
		})
	}

	if len(input.Lines) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "lines", Message: "At least one line is required"},
		})
	}

	subtotal := decimal.Zero
	vatTotal := decimal.Zero
	lines := make([]entity.InvoiceLine, 0, len(input.Lines))

	for _, line := range input.Lines {
		if !line.Quantity.IsPositive() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "quantity", Message: "Quantity must be positive"},
			})
		}
		if line.UnitPriceExclVAT.IsNegative() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "unit_price_excl_vat", Message: "Unit price must not be negative"},
			})
		}
		if !isBelgianVATRate(line.VATRate) {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "vat_rate", Message: "VAT rate must be one of 0, 6, 12 or 21"},
			})
		}

		totalExcl, vatAmount, totalIncl := ComputeLineTotals(line.Quantity, line.UnitPriceExclVAT, line.VATRate)
		subtotal = subtotal.Add(totalExcl)
		vatTotal = vatTotal.Add(vatAmount)

		lines = append(lines, entity.InvoiceLine{
			Description:      line.Description,
			Quantity:         line.Quantity,
			UnitPriceExclVAT: line.UnitPriceExclVAT,
			VATRate:          line.VATRate,
			TotalExclVAT:     totalExcl,
			VATAmount:        vatAmount,
			TotalInclVAT:     totalIncl,
		})
	}

	invoice := &entity.Invoice{
		InvoiceType:     input.InvoiceType,
		CustomerID:      input.CustomerID,
		SupplierName:    input.SupplierName,
		InvoiceDate:     input.InvoiceDate,
		DueDate:         input.DueDate,
		Status:          enum.InvoiceStatusDraft,
		SubtotalExclVAT: subtotal,
		VATAmount:       vatTotal,
		TotalInclVAT:    subtotal.Add(vatTotal),
		BillingAddress:  input.BillingAddress,
		OrderReference:  input.OrderReference,
		Notes:           input.Notes,
		Lines:           lines,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Invoice number already exists")
		}
		return nil, err
	}

	return invoice, nil
}

func isBelgianVATRate(rate decimal.Decimal) bool {
	for _, r := range belgianVATRates {
		if rate.Equal(r) {
			return true
		}
	}
	return false
}

// GetInvoice returns an invoice with lines, payments and customer
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices returns invoices matching the given filters
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(invoices,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// UpdateStatus moves an invoice into the given lifecycle state
func (s *InvoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	invoice.Status = status
	return invoice, nil
}

// MarkPaid sets the invoice status to paid. This is a manual override: the
// sum of recorded payments is deliberately not checked against the total.
func (s *InvoiceService) MarkPaid(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return s.UpdateStatus(ctx, id, enum.InvoiceStatusPaid)
}

// BalanceDue returns the invoice total minus the sum of its payments
func (s *InvoiceService) BalanceDue(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	if invoice == nil {
		return decimal.Zero, apperror.NewNotFoundError("Invoice")
	}

	paid, err := s.paymentRepo.SumByInvoice(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	return invoice.TotalInclVAT.Sub(paid), nil
}

// ListOverdue returns sent invoices whose due date has passed. Draft, paid
// and cancelled invoices are excluded.
func (s *InvoiceService) ListOverdue(ctx context.Context, today time.Time) ([]entity.Invoice, error) {
	return s.invoiceRepo.ListOverdue(ctx, today)
}

// PostToLedger posts a sale invoice to the sales journal as a balanced
// entry: debit 400 (Clients) for the total including VAT, credit 700 (sales)
// for the subtotal, credit 451 (VAT payable) for the VAT amount. The created
// entry is linked back to the invoice.
func (s *InvoiceService) PostToLedger(ctx context.Context, id uuid.UUID) (*entity.AccountingEntry, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.InvoiceType != enum.InvoiceTypeSale {
		return nil, apperror.NewBadRequestError("Only sale invoices can be posted to the ledger")
	}
	if invoice.AccountingEntryID != nil {
		return nil, apperror.NewConflictError("Invoice is already posted to the ledger")
	}

	journal, err := s.journalRepo.GetByCode(ctx, "VTE")
	if err != nil {
		return nil, err
	}
	if journal == nil {
		return nil, apperror.NewNotFoundError("Sales journal")
	}

	receivable, err := s.accountRepo.GetByNumber(ctx, "400")
	if err != nil {
		return nil, err
	}
	sales, err := s.accountRepo.GetByNumber(ctx, "700")
	if err != nil {
		return nil, err
	}
	vatPayable, err := s.accountRepo.GetByNumber(ctx, "451")
	if err != nil {
		return nil, err
	}
	if receivable == nil || sales == nil || vatPayable == nil {
		return nil, apperror.NewBadRequestError("Chart of accounts is missing the posting accounts (400, 700, 451)")
	}

	lines := []EntryLineInput{
		{AccountID: receivable.ID, Description: "Client " + invoice.InvoiceNumber, DebitAmount: invoice.TotalInclVAT},
		{AccountID: sales.ID, Description: "Vente " + invoice.InvoiceNumber, CreditAmount: invoice.SubtotalExclVAT},
	}
	if invoice.VATAmount.IsPositive() {
		lines = append(lines, EntryLineInput{
			AccountID:    vatPayable.ID,
			Description:  "TVA " + invoice.InvoiceNumber,
			CreditAmount: invoice.VATAmount,
			VATAmount:    invoice.VATAmount,
		})
	}

	entry, err := s.entryService.CreateEntry(ctx, &CreateEntryInput{
		JournalID:   journal.ID,
		EntryDate:   invoice.InvoiceDate,
		Description: "Facture " + invoice.InvoiceNumber,
		Reference:   invoice.InvoiceNumber,
		Lines:       lines,
	})
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.SetAccountingEntry(ctx, invoice.ID, entry.ID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Invoice is already posted to the ledger")
		}
		return nil, err
	}

	return entry, nil
}
