package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	"github.com/belcompta/belcompta-api/internal/domain/repository"
	"github.com/belcompta/belcompta-api/pkg/apperror"
	"github.com/belcompta/belcompta-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EntryService handles double-entry bookkeeping operations
type EntryService struct {
	entryRepo   repository.EntryRepository
	journalRepo repository.JournalRepository
	accountRepo repository.AccountRepository
}

// NewEntryService creates a new entry service
func NewEntryService(
	entryRepo repository.EntryRepository,
	journalRepo repository.JournalRepository,
	accountRepo repository.AccountRepository,
) *EntryService {
	return &EntryService{
		entryRepo:   entryRepo,
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

// EntryLineInput represents one line of an entry being created
type EntryLineInput struct {
	AccountID    uuid.UUID
	Description  string
	DebitAmount  decimal.Decimal
	CreditAmount decimal.Decimal
	VATCode      string
	VATAmount    decimal.Decimal
}

// CreateEntryInput represents the create entry input
type CreateEntryInput struct {
	JournalID   uuid.UUID
	EntryDate   time.Time
	Description string
	Reference   string
	Lines       []EntryLineInput
}

// CreateEntry posts a new entry to a journal. Totals and the balanced flag
// are computed here, never taken from the caller. An entry whose debits and
// credits do not match is persisted with IsBalanced=false rather than
// rejected; the caller decides whether to reverse it.
func (s *EntryService) CreateEntry(ctx context.Context, input *CreateEntryInput) (*entity.AccountingEntry, error) {
	journal, err := s.journalRepo.GetByID(ctx, input.JournalID)
	if err != nil {
		return nil, err
	}
	if journal == nil {
		return nil, apperror.NewNotFoundError("Journal")
	}
	if !journal.IsActive {
		return nil, apperror.NewBadRequestError("Journal is inactive")
	}

	if len(input.Lines) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "lines", Message: "At least one line is required"},
		})
	}

	accountIDs := make([]uuid.UUID, len(input.Lines))
	for i, line := range input.Lines {
		accountIDs[i] = line.AccountID
	}
	accounts, err := s.accountRepo.GetByIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}
	accountMap := make(map[uuid.UUID]*entity.Account, len(accounts))
	for i := range accounts {
		accountMap[accounts[i].ID] = &accounts[i]
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	lines := make([]entity.EntryLine, 0, len(input.Lines))

	for i, line := range input.Lines {
		if fieldErrs := validateEntryLine(i, &line, accountMap); fieldErrs != nil {
			return nil, apperror.NewValidationError(fieldErrs)
		}

		totalDebit = totalDebit.Add(line.DebitAmount)
		totalCredit = totalCredit.Add(line.CreditAmount)

		lines = append(lines, entity.EntryLine{
			AccountID:    line.AccountID,
			Description:  line.Description,
			DebitAmount:  line.DebitAmount,
			CreditAmount: line.CreditAmount,
			VATCode:      line.VATCode,
			VATAmount:    line.VATAmount,
		})
	}

	entry := &entity.AccountingEntry{
		JournalID:   input.JournalID,
		EntryDate:   input.EntryDate,
		Description: input.Description,
		Reference:   input.Reference,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		IsBalanced:  totalDebit.Equal(totalCredit),
		Lines:       lines,
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Entry number already exists for this journal")
		}
		return nil, err
	}

	return entry, nil
}

// validateEntryLine checks a single line: the account must exist and be
// active, amounts must be non-negative, and the line must carry a debit or
// a credit but not both.
func validateEntryLine(index int, line *EntryLineInput, accounts map[uuid.UUID]*entity.Account) []apperror.FieldError {
	field := func(name string) string {
		return fmt.Sprintf("lines[%d].%s", index, name)
	}

	account, exists := accounts[line.AccountID]
	if !exists {
		return []apperror.FieldError{{Field: field("account_id"), Message: "Account not found"}}
	}
	if !account.IsActive {
		return []apperror.FieldError{{Field: field("account_id"), Message: "Account is inactive"}}
	}

	if line.DebitAmount.IsNegative() || line.CreditAmount.IsNegative() {
		return []apperror.FieldError{{Field: field("debit_amount"), Message: "Amounts must not be negative"}}
	}

	debit := line.DebitAmount.IsPositive()
	credit := line.CreditAmount.IsPositive()
	if debit && credit {
		return []apperror.FieldError{{Field: field("debit_amount"), Message: "A line carries either a debit or a credit, not both"}}
	}
	if !debit && !credit {
		return []apperror.FieldError{{Field: field("debit_amount"), Message: "A line must carry a debit or a credit amount"}}
	}

	return nil
}

// GetEntry returns an entry with its lines and accounts
func (s *EntryService) GetEntry(ctx context.Context, id uuid.UUID) (*entity.AccountingEntry, error) {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NewNotFoundError("Entry")
	}
	return entry, nil
}

// ListEntries returns entries matching the given filters
func (s *EntryService) ListEntries(ctx context.Context, params *repository.EntryFilterParams) (*pagination.PaginatedResult[entity.AccountingEntry], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	entries, total, err := s.entryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(entries,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// TrialBalance sums debits and credits per account over balanced entries in
// the optional date range. Unbalanced entries never contribute.
func (s *EntryService) TrialBalance(ctx context.Context, dateFrom, dateTo *time.Time) (map[string]repository.TrialBalanceRow, error) {
	rows, err := s.entryRepo.TrialBalance(ctx, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	balance := make(map[string]repository.TrialBalanceRow, len(rows))
	for _, row := range rows {
		balance[row.AccountNumber] = row
	}
	return balance, nil
}
