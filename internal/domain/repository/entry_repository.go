package repository

import (
	"context"
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	"github.com/belcompta/belcompta-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryFilterParams holds the filters accepted by the entry listing
type EntryFilterParams struct {
	Pagination *pagination.PaginationParams
	JournalID  *uuid.UUID
	DateFrom   *time.Time
	DateTo     *time.Time
}

// TrialBalanceRow is the per-account debit/credit aggregate reported by the
// trial balance. Only balanced entries contribute.
type TrialBalanceRow struct {
	AccountNumber string          `json:"account_number"`
	AccountName   string          `json:"account_name"`
	TotalDebit    decimal.Decimal `json:"debit"`
	TotalCredit   decimal.Decimal `json:"credit"`
}

// EntryRepository defines the interface for accounting entry data operations
type EntryRepository interface {
	// Create persists the entry and its lines in one transaction and assigns
	// the entry number from the journal's per-year sequence. The sequence row
	// is locked for the duration of the transaction, so two concurrent
	// creators on the same journal serialize instead of racing to a
	// duplicate number.
	Create(ctx context.Context, entry *entity.AccountingEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AccountingEntry, error)
	List(ctx context.Context, params *EntryFilterParams) ([]entity.AccountingEntry, int64, error)
	// TrialBalance sums debit and credit per account over the lines of all
	// balanced entries in the optional date range.
	TrialBalance(ctx context.Context, dateFrom, dateTo *time.Time) ([]TrialBalanceRow, error)
}
