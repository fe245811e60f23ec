package service

import (
	"context"
	"errors"
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/belcompta/belcompta-api/internal/domain/repository"
	"github.com/belcompta/belcompta-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	vatRate6  = decimal.NewFromInt(6)
	vatRate21 = decimal.NewFromInt(21)
)

// VATService generates and manages periodic Belgian VAT declarations
type VATService struct {
	declarationRepo repository.VATDeclarationRepository
	invoiceRepo     repository.InvoiceRepository
}

// NewVATService creates a new VAT declaration service
func NewVATService(
	declarationRepo repository.VATDeclarationRepository,
	invoiceRepo repository.InvoiceRepository,
) *VATService {
	return &VATService{
		declarationRepo: declarationRepo,
		invoiceRepo:     invoiceRepo,
	}
}

// PeriodDateRange returns the first and last day of a declaration period:
// the calendar month for monthly declarations, three consecutive months
// starting at (period-1)*3+1 for quarterly ones.
func PeriodDateRange(periodType enum.PeriodType, year, period int) (time.Time, time.Time) {
	startMonth := period
	months := 1
	if periodType == enum.PeriodTypeQuarterly {
		startMonth = (period-1)*3 + 1
		months = 3
	}

	start := time.Date(year, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, months, 0).AddDate(0, 0, -1)
	return start, end
}

// GenerateDeclaration aggregates the period's sent and paid sale invoices
// into the statutory grids. Operations are summed per VAT rate (0, 6, 21)
// into grids 00/01/03 and the VAT due per rate into grids 54/56; grid 71 is
// the total VAT to pay. The 12% grids and deductible VAT (grids 02, 55, 59,
// 72) are left at zero: deductible-input aggregation is not implemented.
func (s *VATService) GenerateDeclaration(ctx context.Context, periodType enum.PeriodType, year, period int) (*entity.VATDeclaration, error) {
	if year < 2000 || year > 2100 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "year", Message: "Year is out of range"},
		})
	}
	if period < 1 || period > periodType.MaxPeriod() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "period", Message: "Period is out of range for the declaration cadence"},
		})
	}

	existing, err := s.declarationRepo.GetByPeriod(ctx, periodType, year, period)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A declaration already exists for this period")
	}

	start, end := PeriodDateRange(periodType, year, period)

	operations0, err := s.invoiceRepo.SumLineTotalsByVATRate(ctx, start, end, decimal.Zero)
	if err != nil {
		return nil, err
	}
	operations6, err := s.invoiceRepo.SumLineTotalsByVATRate(ctx, start, end, vatRate6)
	if err != nil {
		return nil, err
	}
	operations21, err := s.invoiceRepo.SumLineTotalsByVATRate(ctx, start, end, vatRate21)
	if err != nil {
		return nil, err
	}

	vat6 := operations6.Mul(vatRate6).Div(oneHundred).RoundBank(2)
	vat21 := operations21.Mul(vatRate21).Div(oneHundred).RoundBank(2)

	declaration := &entity.VATDeclaration{
		PeriodType:               periodType,
		Year:                     year,
		Period:                   period,
		Grid00OperationsExempted: operations0,
		Grid01Operations6Pct:     operations6,
		Grid03Operations21Pct:    operations21,
		Grid54VAT6Pct:            vat6,
		Grid56VAT21Pct:           vat21,
		Grid71VATToPay:           vat6.Add(vat21),
	}

	if err := s.declarationRepo.Create(ctx, declaration); err != nil {
		// The unique index still guards against a concurrent generator that
		// slipped past the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("A declaration already exists for this period")
		}
		return nil, err
	}

	return declaration, nil
}

// GetDeclaration returns one declaration by id
func (s *VATService) GetDeclaration(ctx context.Context, id uuid.UUID) (*entity.VATDeclaration, error) {
	declaration, err := s.declarationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if declaration == nil {
		return nil, apperror.NewNotFoundError("VAT declaration")
	}
	return declaration, nil
}

// ListDeclarations returns declarations, optionally filtered by year
func (s *VATService) ListDeclarations(ctx context.Context, year *int) ([]entity.VATDeclaration, error) {
	return s.declarationRepo.List(ctx, year)
}

// SubmitDeclaration marks a declaration as submitted with the given time
func (s *VATService) SubmitDeclaration(ctx context.Context, id uuid.UUID, submittedAt time.Time) (*entity.VATDeclaration, error) {
	declaration, err := s.declarationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if declaration == nil {
		return nil, apperror.NewNotFoundError("VAT declaration")
	}
	if declaration.IsSubmitted {
		return nil, apperror.NewConflictError("Declaration is already submitted")
	}

	if err := s.declarationRepo.MarkSubmitted(ctx, id, submittedAt); err != nil {
		return nil, err
	}

	declaration.IsSubmitted = true
	declaration.SubmissionDate = &submittedAt
	return declaration, nil
}
