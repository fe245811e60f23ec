package service

import (
	"context"
	"testing"
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/belcompta/belcompta-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntryServiceFixture() (*EntryService, *fakeEntryRepo, *fakeJournalRepo, *fakeAccountRepo) {
	journalRepo := newFakeJournalRepo()
	accountRepo := newFakeAccountRepo()
	entryRepo := newFakeEntryRepo(accountRepo)
	return NewEntryService(entryRepo, journalRepo, accountRepo), entryRepo, journalRepo, accountRepo
}

func TestCreateEntry_Balanced(t *testing.T) {
	svc, _, journalRepo, accountRepo := newEntryServiceFixture()

	journal := journalRepo.add(&entity.Journal{Code: "VTE", Name: "Ventes", JournalType: enum.JournalTypeSales, IsActive: true})
	bank := accountRepo.add(&entity.Account{AccountNumber: "550000", AccountName: "Banque", AccountClass: 5, IsActive: true})
	sales := accountRepo.add(&entity.Account{AccountNumber: "700000", AccountName: "Ventes", AccountClass: 7, IsActive: true})

	entry, err := svc.CreateEntry(context.Background(), &CreateEntryInput{
		JournalID:   journal.ID,
		EntryDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "Vente comptant",
		Lines: []EntryLineInput{
			{AccountID: bank.ID, DebitAmount: decimal.NewFromFloat(121.00)},
			{AccountID: sales.ID, CreditAmount: decimal.NewFromFloat(121.00)},
		},
	})
	require.NoError(t, err)

	assert.True(t, entry.IsBalanced)
	assert.Equal(t, "2024-000001", entry.EntryNumber)
	assert.True(t, entry.TotalDebit.Equal(decimal.NewFromFloat(121.00)))
	assert.True(t, entry.TotalCredit.Equal(decimal.NewFromFloat(121.00)))
	assert.Len(t, entry.Lines, 2)
}

func TestCreateEntry_UnbalancedIsPersisted(t *testing.T) {
	svc, entryRepo, journalRepo, accountRepo := newEntryServiceFixture()

	journal := journalRepo.add(&entity.Journal{Code: "OD", Name: "Divers", JournalType: enum.JournalTypeGeneral, IsActive: true})
	a := accountRepo.add(&entity.Account{AccountNumber: "610000", AccountName: "Loyers", AccountClass: 6, IsActive: true})
	b := accountRepo.add(&entity.Account{AccountNumber: "550000", AccountName: "Banque", AccountClass: 5, IsActive: true})

	entry, err := svc.CreateEntry(context.Background(), &CreateEntryInput{
		JournalID:   journal.ID,
		EntryDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "Ecriture bancale",
		Lines: []EntryLineInput{
			{AccountID: a.ID, DebitAmount: decimal.NewFromFloat(100.00)},
			{AccountID: b.ID, CreditAmount: decimal.NewFromFloat(90.00)},
		},
	})
	require.NoError(t, err)

	// An unbalanced entry is stored, flagged, and left for the caller to reverse.
	assert.False(t, entry.IsBalanced)
	stored, _ := entryRepo.GetByID(context.Background(), entry.ID)
	require.NotNil(t, stored)
	assert.False(t, stored.IsBalanced)
}

func TestCreateEntry_SequentialNumbersPerYear(t *testing.T) {
	svc, _, journalRepo, accountRepo := newEntryServiceFixture()

	journal := journalRepo.add(&entity.Journal{Code: "BNQ", Name: "Banque", JournalType: enum.JournalTypeBank, IsActive: true})
	a := accountRepo.add(&entity.Account{AccountNumber: "550000", AccountName: "Banque", AccountClass: 5, IsActive: true})
	b := accountRepo.add(&entity.Account{AccountNumber: "700000", AccountName: "Ventes", AccountClass: 7, IsActive: true})

	lines := []EntryLineInput{
		{AccountID: a.ID, DebitAmount: decimal.NewFromInt(10)},
		{AccountID: b.ID, CreditAmount: decimal.NewFromInt(10)},
	}

	first, err := svc.CreateEntry(context.Background(), &CreateEntryInput{
		JournalID: journal.ID, EntryDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Description: "n1", Lines: lines,
	})
	require.NoError(t, err)
	second, err := svc.CreateEntry(context.Background(), &CreateEntryInput{
		JournalID: journal.ID, EntryDate: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), Description: "n2", Lines: lines,
	})
	require.NoError(t, err)
	nextYear, err := svc.CreateEntry(context.Background(), &CreateEntryInput{
		JournalID: journal.ID, EntryDate: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), Description: "n3", Lines: lines,
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-000001", first.EntryNumber)
	assert.Equal(t, "2024-000002", second.EntryNumber)
	// The counter restarts every year.
	assert.Equal(t, "2025-000001", nextYear.EntryNumber)
}

func TestCreateEntry_LineValidation(t *testing.T) {
	svc, _, journalRepo, accountRepo := newEntryServiceFixture()

	journal := journalRepo.add(&entity.Journal{Code: "OD", Name: "Divers", JournalType: enum.JournalTypeGeneral, IsActive: true})
	active := accountRepo.add(&entity.Account{AccountNumber: "550000", AccountName: "Banque", AccountClass: 5, IsActive: true})
	inactive := accountRepo.add(&entity.Account{AccountNumber: "551000", AccountName: "Ancien compte", AccountClass: 5, IsActive: false})

	tests := []struct {
		name string
		line EntryLineInput
	}{
		{"both debit and credit", EntryLineInput{AccountID: active.ID, DebitAmount: decimal.NewFromInt(5), CreditAmount: decimal.NewFromInt(5)}},
		{"neither debit nor credit", EntryLineInput{AccountID: active.ID}},
		{"negative amount", EntryLineInput{AccountID: active.ID, DebitAmount: decimal.NewFromInt(-5)}},
		{"inactive account", EntryLineInput{AccountID: inactive.ID, DebitAmount: decimal.NewFromInt(5)}},
		{"unknown account", EntryLineInput{AccountID: uuid.New(), DebitAmount: decimal.NewFromInt(5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEntry(context.Background(), &CreateEntryInput{
				JournalID:   journal.ID,
				EntryDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				Description: "test",
				Lines:       []EntryLineInput{tt.line},
			})
			require.Error(t, err)
			assert.Equal(t, 422, apperror.GetAppError(err).Code)
		})
	}
}

func TestCreateEntry_JournalChecks(t *testing.T) {
	svc, _, journalRepo, accountRepo := newEntryServiceFixture()

	account := accountRepo.add(&entity.Account{AccountNumber: "550000", AccountName: "Banque", AccountClass: 5, IsActive: true})
	lines := []EntryLineInput{{AccountID: account.ID, DebitAmount: decimal.NewFromInt(5)}}

	_, err := svc.CreateEntry(context.Background(), &CreateEntryInput{
		JournalID: uuid.New(), EntryDate: time.Now(), Description: "x", Lines: lines,
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	inactive := journalRepo.add(&entity.Journal{Code: "CLO", Name: "Cloture", JournalType: enum.JournalTypeClosing, IsActive: false})
	_, err = svc.CreateEntry(context.Background(), &CreateEntryInput{
		JournalID: inactive.ID, EntryDate: time.Now(), Description: "x", Lines: lines,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	active := journalRepo.add(&entity.Journal{Code: "OD", Name: "Divers", JournalType: enum.JournalTypeGeneral, IsActive: true})
	_, err = svc.CreateEntry(context.Background(), &CreateEntryInput{
		JournalID: active.ID, EntryDate: time.Now(), Description: "x", Lines: nil,
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestTrialBalance_KeyedByAccountNumber(t *testing.T) {
	svc, _, journalRepo, accountRepo := newEntryServiceFixture()

	journal := journalRepo.add(&entity.Journal{Code: "VTE", Name: "Ventes", JournalType: enum.JournalTypeSales, IsActive: true})
	bank := accountRepo.add(&entity.Account{AccountNumber: "550000", AccountName: "Banque", AccountClass: 5, IsActive: true})
	sales := accountRepo.add(&entity.Account{AccountNumber: "700000", AccountName: "Ventes", AccountClass: 7, IsActive: true})

	_, err := svc.CreateEntry(context.Background(), &CreateEntryInput{
		JournalID:   journal.ID,
		EntryDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "Vente comptant",
		Lines: []EntryLineInput{
			{AccountID: bank.ID, DebitAmount: decimal.NewFromInt(121)},
			{AccountID: sales.ID, CreditAmount: decimal.NewFromInt(121)},
		},
	})
	require.NoError(t, err)

	balance, err := svc.TrialBalance(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, balance, 2)
	assert.True(t, balance["550000"].TotalDebit.Equal(decimal.NewFromInt(121)))
	assert.True(t, balance["700000"].TotalCredit.Equal(decimal.NewFromInt(121)))
}

func TestTrialBalance_ExcludesUnbalancedEntries(t *testing.T) {
	svc, _, journalRepo, accountRepo := newEntryServiceFixture()

	journal := journalRepo.add(&entity.Journal{Code: "OD", Name: "Divers", JournalType: enum.JournalTypeGeneral, IsActive: true})
	bank := accountRepo.add(&entity.Account{AccountNumber: "550000", AccountName: "Banque", AccountClass: 5, IsActive: true})
	sales := accountRepo.add(&entity.Account{AccountNumber: "700000", AccountName: "Ventes", AccountClass: 7, IsActive: true})

	_, err := svc.CreateEntry(context.Background(), &CreateEntryInput{
		JournalID:   journal.ID,
		EntryDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "Ecriture equilibree",
		Lines: []EntryLineInput{
			{AccountID: bank.ID, DebitAmount: decimal.NewFromInt(100)},
			{AccountID: sales.ID, CreditAmount: decimal.NewFromInt(100)},
		},
	})
	require.NoError(t, err)

	unbalanced, err := svc.CreateEntry(context.Background(), &CreateEntryInput{
		JournalID:   journal.ID,
		EntryDate:   time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
		Description: "Ecriture bancale",
		Lines: []EntryLineInput{
			{AccountID: bank.ID, DebitAmount: decimal.NewFromInt(50)},
			{AccountID: sales.ID, CreditAmount: decimal.NewFromInt(40)},
		},
	})
	require.NoError(t, err)
	require.False(t, unbalanced.IsBalanced)

	balance, err := svc.TrialBalance(context.Background(), nil, nil)
	require.NoError(t, err)

	// Only the balanced entry contributes.
	require.Len(t, balance, 2)
	assert.True(t, balance["550000"].TotalDebit.Equal(decimal.NewFromInt(100)), "got %s", balance["550000"].TotalDebit)
	assert.True(t, balance["700000"].TotalCredit.Equal(decimal.NewFromInt(100)), "got %s", balance["700000"].TotalCredit)
}

func TestTrialBalance_DateRange(t *testing.T) {
	svc, _, journalRepo, accountRepo := newEntryServiceFixture()

	journal := journalRepo.add(&entity.Journal{Code: "BNQ", Name: "Banque", JournalType: enum.JournalTypeBank, IsActive: true})
	bank := accountRepo.add(&entity.Account{AccountNumber: "550000", AccountName: "Banque", AccountClass: 5, IsActive: true})
	sales := accountRepo.add(&entity.Account{AccountNumber: "700000", AccountName: "Ventes", AccountClass: 7, IsActive: true})

	post := func(day int, amount int64) {
		_, err := svc.CreateEntry(context.Background(), &CreateEntryInput{
			JournalID:   journal.ID,
			EntryDate:   time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
			Description: "Encaissement",
			Lines: []EntryLineInput{
				{AccountID: bank.ID, DebitAmount: decimal.NewFromInt(amount)},
				{AccountID: sales.ID, CreditAmount: decimal.NewFromInt(amount)},
			},
		})
		require.NoError(t, err)
	}
	post(5, 100)
	post(20, 30)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	balance, err := svc.TrialBalance(context.Background(), &from, &to)
	require.NoError(t, err)

	require.Len(t, balance, 2)
	assert.True(t, balance["550000"].TotalDebit.Equal(decimal.NewFromInt(100)), "got %s", balance["550000"].TotalDebit)
}
