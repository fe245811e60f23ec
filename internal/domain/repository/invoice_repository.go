package repository

import (
	"context"
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/belcompta/belcompta-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceFilterParams holds the filters accepted by the invoice listing
type InvoiceFilterParams struct {
	Pagination  *pagination.PaginationParams
	InvoiceType *enum.InvoiceType
	Status      *enum.InvoiceStatus
	CustomerID  *uuid.UUID
	Search      string
	DateFrom    *time.Time
	DateTo      *time.Time
}

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	// Create persists the invoice and its lines in one transaction and
	// assigns the invoice number from the per-year sequence, locking the
	// sequence row for the duration of the transaction.
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByNumber(ctx context.Context, invoiceNumber string) (*entity.Invoice, error)
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error
	// SetAccountingEntry links the invoice to its ledger entry. The link is
	// claimed only while unset; losing the claim to a concurrent request
	// surfaces as gorm.ErrDuplicatedKey.
	SetAccountingEntry(ctx context.Context, id uuid.UUID, entryID uuid.UUID) error
	// ListOverdue returns sent invoices whose due date is before the given day.
	ListOverdue(ctx context.Context, today time.Time) ([]entity.Invoice, error)
	// SumLineTotalsByVATRate sums total_excl_vat over the lines of sale
	// invoices with status sent or paid dated inside [from, to], for one
	// VAT rate. Used by the VAT declaration generator.
	SumLineTotalsByVATRate(ctx context.Context, from, to time.Time, vatRate decimal.Decimal) (decimal.Decimal, error)
}
