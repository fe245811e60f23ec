package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	"github.com/belcompta/belcompta-api/internal/domain/enum"
	domainRepo "github.com/belcompta/belcompta-api/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

// nextInvoiceNumber increments and returns the per-year invoice counter,
// locking the counter row for the duration of the transaction.
func nextInvoiceNumber(tx *gorm.DB, year int) (int, error) {
	seed := entity.InvoiceSequence{Year: year, LastNumber: 0}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return 0, err
	}

	var seq entity.InvoiceSequence
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&seq, "year = ?", year).Error; err != nil {
		return 0, err
	}

	seq.LastNumber++
	if err := tx.Model(&entity.InvoiceSequence{}).
		Where("year = ?", year).
		Update("last_number", seq.LastNumber).Error; err != nil {
		return 0, err
	}

	return seq.LastNumber, nil
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		year := invoice.InvoiceDate.Year()
		seq, err := nextInvoiceNumber(tx, year)
		if err != nil {
			return err
		}
		invoice.InvoiceNumber = fmt.Sprintf("FAC%d%04d", year, seq)

		return tx.Create(invoice).Error
	})
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Lines").
		Preload("Payments").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetByNumber(ctx context.Context, invoiceNumber string) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&invoice, "invoice_number = ?", invoiceNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{})

	if params.InvoiceType != nil {
		query = query.Where("invoice_type = ?", *params.InvoiceType)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.Search != "" {
		query = query.Where("invoice_number ILIKE ?", "%"+params.Search+"%")
	}

	if params.DateFrom != nil {
		query = query.Where("invoice_date >= ?", *params.DateFrom)
	}

	if params.DateTo != nil {
		query = query.Where("invoice_date <= ?", *params.DateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order("invoice_date DESC").
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *invoiceRepository) SetAccountingEntry(ctx context.Context, id uuid.UUID, entryID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("id = ? AND accounting_entry_id IS NULL", id).
		Update("accounting_entry_id", entryID)
	if result.Error != nil {
		return result.Error
	}
	// Zero rows means another request claimed the link first.
	if result.RowsAffected == 0 {
		return gorm.ErrDuplicatedKey
	}
	return nil
}

func (r *invoiceRepository) ListOverdue(ctx context.Context, today time.Time) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).
		Where("due_date < ? AND status = ?", today, enum.InvoiceStatusSent).
		Preload("Customer").
		Order("due_date ASC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) SumLineTotalsByVATRate(ctx context.Context, from, to time.Time, vatRate decimal.Decimal) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Table("invoice_lines AS l").
		Select("COALESCE(SUM(l.total_excl_vat), 0) AS total").
		Joins("JOIN invoices i ON i.id = l.invoice_id").
		Where("i.invoice_type = ?", enum.InvoiceTypeSale).
		Where("i.status IN ?", []enum.InvoiceStatus{enum.InvoiceStatusSent, enum.InvoiceStatusPaid}).
		Where("i.invoice_date >= ? AND i.invoice_date <= ?", from, to).
		Where("l.vat_rate = ?", vatRate).
		Scan(&result).Error

	return result.Total, err
}
