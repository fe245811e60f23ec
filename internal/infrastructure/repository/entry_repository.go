package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	domainRepo "github.com/belcompta/belcompta-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new accounting entry repository
func NewEntryRepository(db *gorm.DB) domainRepo.EntryRepository {
	return &entryRepository{db: db}
}

// nextSequenceNumber increments and returns the per-journal-per-year counter.
// The counter row is created on first use and locked FOR UPDATE so concurrent
// entry creations on the same journal serialize on number assignment.
func nextSequenceNumber(tx *gorm.DB, journalID uuid.UUID, year int) (int, error) {
	seed := entity.JournalSequence{JournalID: journalID, Year: year, LastNumber: 0}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return 0, err
	}

	var seq entity.JournalSequence
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&seq, "journal_id = ? AND year = ?", journalID, year).Error; err != nil {
		return 0, err
	}

	seq.LastNumber++
	if err := tx.Model(&entity.JournalSequence{}).
		Where("journal_id = ? AND year = ?", journalID, year).
		Update("last_number", seq.LastNumber).Error; err != nil {
		return 0, err
	}

	return seq.LastNumber, nil
}

func (r *entryRepository) Create(ctx context.Context, entry *entity.AccountingEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		year := entry.EntryDate.Year()
		seq, err := nextSequenceNumber(tx, entry.JournalID, year)
		if err != nil {
			return err
		}
		entry.EntryNumber = fmt.Sprintf("%d-%06d", year, seq)

		// Lines are created through the association in the same transaction.
		return tx.Create(entry).Error
	})
}

func (r *entryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AccountingEntry, error) {
	var entry entity.AccountingEntry
	err := r.db.WithContext(ctx).
		Preload("Journal").
		Preload("Lines").
		Preload("Lines.Account").
		First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &entry, err
}

func (r *entryRepository) List(ctx context.Context, params *domainRepo.EntryFilterParams) ([]entity.AccountingEntry, int64, error) {
	var entries []entity.AccountingEntry
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.AccountingEntry{})

	if params.JournalID != nil {
		query = query.Where("journal_id = ?", *params.JournalID)
	}

	if params.DateFrom != nil {
		query = query.Where("entry_date >= ?", *params.DateFrom)
	}

	if params.DateTo != nil {
		query = query.Where("entry_date <= ?", *params.DateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Journal").
		Preload("Lines").
		Order("entry_date DESC, created_at DESC").
		Find(&entries).Error

	return entries, total, err
}

func (r *entryRepository) TrialBalance(ctx context.Context, dateFrom, dateTo *time.Time) ([]domainRepo.TrialBalanceRow, error) {
	var rows []domainRepo.TrialBalanceRow

	query := r.db.WithContext(ctx).
		Table("accounting_entry_lines AS l").
		Select(`a.account_number,
			a.account_name,
			COALESCE(SUM(l.debit_amount), 0) AS total_debit,
			COALESCE(SUM(l.credit_amount), 0) AS total_credit`).
		Joins("JOIN accounting_entries e ON e.id = l.entry_id").
		Joins("JOIN accounts a ON a.id = l.account_id").
		Where("e.is_balanced = ?", true)

	if dateFrom != nil {
		query = query.Where("e.entry_date >= ?", *dateFrom)
	}
	if dateTo != nil {
		query = query.Where("e.entry_date <= ?", *dateTo)
	}

	err := query.
		Group("a.account_number, a.account_name").
		Order("a.account_number ASC").
		Scan(&rows).Error

	return rows, err
}
