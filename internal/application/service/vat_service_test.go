package service

import (
	"context"
	"testing"
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/belcompta/belcompta-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodDateRange(t *testing.T) {
	tests := []struct {
		name       string
		periodType enum.PeriodType
		year       int
		period     int
		wantStart  time.Time
		wantEnd    time.Time
	}{
		{"march", enum.PeriodTypeMonthly, 2024, 3,
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)},
		{"february leap year", enum.PeriodTypeMonthly, 2024, 2,
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"december", enum.PeriodTypeMonthly, 2024, 12,
			time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"first quarter", enum.PeriodTypeQuarterly, 2024, 1,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)},
		{"fourth quarter", enum.PeriodTypeQuarterly, 2024, 4,
			time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PeriodDateRange(tt.periodType, tt.year, tt.period)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestGenerateDeclaration_Grids(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	invoiceRepo.sumsByRate["0"] = decimal.RequireFromString("500.00")
	invoiceRepo.sumsByRate["6"] = decimal.RequireFromString("200.00")
	invoiceRepo.sumsByRate["21"] = decimal.RequireFromString("1000.00")

	svc := NewVATService(newFakeVATDeclarationRepo(), invoiceRepo)

	declaration, err := svc.GenerateDeclaration(context.Background(), enum.PeriodTypeMonthly, 2024, 3)
	require.NoError(t, err)

	assert.True(t, declaration.Grid00OperationsExempted.Equal(decimal.RequireFromString("500.00")))
	assert.True(t, declaration.Grid01Operations6Pct.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, declaration.Grid03Operations21Pct.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, declaration.Grid54VAT6Pct.Equal(decimal.RequireFromString("12.00")))
	assert.True(t, declaration.Grid56VAT21Pct.Equal(decimal.RequireFromString("210.00")))
	assert.True(t, declaration.Grid71VATToPay.Equal(decimal.RequireFromString("222.00")))

	// Deductible-input grids stay zero; the generator only covers output VAT.
	assert.True(t, declaration.Grid59VATDeductible.IsZero())
	assert.True(t, declaration.Grid72VATToRecover.IsZero())
	assert.False(t, declaration.IsSubmitted)
}

func TestGenerateDeclaration_DuplicatePeriod(t *testing.T) {
	svc := NewVATService(newFakeVATDeclarationRepo(), newFakeInvoiceRepo())

	_, err := svc.GenerateDeclaration(context.Background(), enum.PeriodTypeQuarterly, 2024, 1)
	require.NoError(t, err)

	_, err = svc.GenerateDeclaration(context.Background(), enum.PeriodTypeQuarterly, 2024, 1)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	// Same period index under the other cadence is a different declaration.
	_, err = svc.GenerateDeclaration(context.Background(), enum.PeriodTypeMonthly, 2024, 1)
	require.NoError(t, err)
}

func TestGenerateDeclaration_PeriodValidation(t *testing.T) {
	svc := NewVATService(newFakeVATDeclarationRepo(), newFakeInvoiceRepo())

	tests := []struct {
		name       string
		periodType enum.PeriodType
		year       int
		period     int
	}{
		{"month zero", enum.PeriodTypeMonthly, 2024, 0},
		{"month thirteen", enum.PeriodTypeMonthly, 2024, 13},
		{"quarter five", enum.PeriodTypeQuarterly, 2024, 5},
		{"year too small", enum.PeriodTypeMonthly, 1999, 1},
		{"year too large", enum.PeriodTypeMonthly, 2101, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GenerateDeclaration(context.Background(), tt.periodType, tt.year, tt.period)
			require.Error(t, err)
			assert.Equal(t, 422, apperror.GetAppError(err).Code)
		})
	}
}

func TestSubmitDeclaration(t *testing.T) {
	declarationRepo := newFakeVATDeclarationRepo()
	svc := NewVATService(declarationRepo, newFakeInvoiceRepo())

	declaration, err := svc.GenerateDeclaration(context.Background(), enum.PeriodTypeMonthly, 2024, 3)
	require.NoError(t, err)

	submittedAt := time.Date(2024, 4, 20, 10, 0, 0, 0, time.UTC)
	submitted, err := svc.SubmitDeclaration(context.Background(), declaration.ID, submittedAt)
	require.NoError(t, err)
	assert.True(t, submitted.IsSubmitted)
	require.NotNil(t, submitted.SubmissionDate)
	assert.Equal(t, submittedAt, *submitted.SubmissionDate)

	// Submitting twice is a conflict.
	_, err = svc.SubmitDeclaration(context.Background(), declaration.ID, submittedAt)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}
