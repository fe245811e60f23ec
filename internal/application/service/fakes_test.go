package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/belcompta/belcompta-api/internal/domain/repository"
	"github.com/belcompta/belcompta-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository fakes. They reproduce the contracts the GORM
// implementations provide: not-found is (nil, nil), duplicates surface as
// gorm.ErrDuplicatedKey, and number assignment happens inside Create.

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
}

func (r *fakeAccountRepo) add(account *entity.Account) *entity.Account {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	r.accounts[account.ID] = account
	return account
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	for _, existing := range r.accounts {
		if existing.AccountNumber == account.AccountNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	r.add(account)
	return nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return r.accounts[id], nil
}

func (r *fakeAccountRepo) GetByNumber(ctx context.Context, accountNumber string) (*entity.Account, error) {
	for _, account := range r.accounts {
		if account.AccountNumber == accountNumber {
			return account, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Account, error) {
	var out []entity.Account
	for _, id := range ids {
		if account, ok := r.accounts[id]; ok {
			out = append(out, *account)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	if account, ok := r.accounts[id]; ok {
		account.IsActive = false
	}
	return nil
}

func (r *fakeAccountRepo) List(ctx context.Context, params *repository.AccountFilterParams) ([]entity.Account, int64, error) {
	var out []entity.Account
	for _, account := range r.accounts {
		if params.ActiveOnly && !account.IsActive {
			continue
		}
		if params.AccountClass != nil && account.AccountClass != *params.AccountClass {
			continue
		}
		if params.Search != "" && !strings.Contains(account.AccountName, params.Search) &&
			!strings.HasPrefix(account.AccountNumber, params.Search) {
			continue
		}
		out = append(out, *account)
	}
	return out, int64(len(out)), nil
}

type fakeJournalRepo struct {
	journals map[uuid.UUID]*entity.Journal
}

func newFakeJournalRepo() *fakeJournalRepo {
	return &fakeJournalRepo{journals: make(map[uuid.UUID]*entity.Journal)}
}

func (r *fakeJournalRepo) add(journal *entity.Journal) *entity.Journal {
	if journal.ID == uuid.Nil {
		journal.ID = uuid.New()
	}
	r.journals[journal.ID] = journal
	return journal
}

func (r *fakeJournalRepo) Create(ctx context.Context, journal *entity.Journal) error {
	for _, existing := range r.journals {
		if existing.Code == journal.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	r.add(journal)
	return nil
}

func (r *fakeJournalRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Journal, error) {
	return r.journals[id], nil
}

func (r *fakeJournalRepo) GetByCode(ctx context.Context, code string) (*entity.Journal, error) {
	for _, journal := range r.journals {
		if journal.Code == code {
			return journal, nil
		}
	}
	return nil, nil
}

func (r *fakeJournalRepo) Update(ctx context.Context, journal *entity.Journal) error {
	r.journals[journal.ID] = journal
	return nil
}

func (r *fakeJournalRepo) List(ctx context.Context, activeOnly bool) ([]entity.Journal, error) {
	var out []entity.Journal
	for _, journal := range r.journals {
		if activeOnly && !journal.IsActive {
			continue
		}
		out = append(out, *journal)
	}
	return out, nil
}

type fakeEntryRepo struct {
	entries   map[uuid.UUID]*entity.AccountingEntry
	sequences map[string]int
	accounts  *fakeAccountRepo
}

func newFakeEntryRepo(accounts *fakeAccountRepo) *fakeEntryRepo {
	return &fakeEntryRepo{
		entries:   make(map[uuid.UUID]*entity.AccountingEntry),
		sequences: make(map[string]int),
		accounts:  accounts,
	}
}

func (r *fakeEntryRepo) Create(ctx context.Context, entry *entity.AccountingEntry) error {
	year := entry.EntryDate.Year()
	key := fmt.Sprintf("%s/%d", entry.JournalID, year)
	r.sequences[key]++
	entry.EntryNumber = fmt.Sprintf("%d-%06d", year, r.sequences[key])
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeEntryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.AccountingEntry, error) {
	return r.entries[id], nil
}

func (r *fakeEntryRepo) List(ctx context.Context, params *repository.EntryFilterParams) ([]entity.AccountingEntry, int64, error) {
	var out []entity.AccountingEntry
	for _, entry := range r.entries {
		if params.JournalID != nil && entry.JournalID != *params.JournalID {
			continue
		}
		out = append(out, *entry)
	}
	return out, int64(len(out)), nil
}

// TrialBalance aggregates the stored entry lines per account, skipping
// unbalanced entries and entries outside the date range like the SQL
// implementation does.
func (r *fakeEntryRepo) TrialBalance(ctx context.Context, dateFrom, dateTo *time.Time) ([]repository.TrialBalanceRow, error) {
	totals := make(map[string]*repository.TrialBalanceRow)
	for _, entry := range r.entries {
		if !entry.IsBalanced {
			continue
		}
		if dateFrom != nil && entry.EntryDate.Before(*dateFrom) {
			continue
		}
		if dateTo != nil && entry.EntryDate.After(*dateTo) {
			continue
		}
		for _, line := range entry.Lines {
			account := r.accounts.accounts[line.AccountID]
			row, ok := totals[account.AccountNumber]
			if !ok {
				row = &repository.TrialBalanceRow{
					AccountNumber: account.AccountNumber,
					AccountName:   account.AccountName,
					TotalDebit:    decimal.Zero,
					TotalCredit:   decimal.Zero,
				}
				totals[account.AccountNumber] = row
			}
			row.TotalDebit = row.TotalDebit.Add(line.DebitAmount)
			row.TotalCredit = row.TotalCredit.Add(line.CreditAmount)
		}
	}

	rows := make([]repository.TrialBalanceRow, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, *row)
	}
	return rows, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) add(customer *entity.Customer) *entity.Customer {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.customers[customer.ID] = customer
	return customer
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	r.add(customer)
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, customer := range r.customers {
		if search != "" && !strings.Contains(customer.Name, search) {
			continue
		}
		out = append(out, *customer)
	}
	return out, int64(len(out)), nil
}

type fakeInvoiceRepo struct {
	invoices   map[uuid.UUID]*entity.Invoice
	sequences  map[int]int
	sumsByRate map[string]decimal.Decimal

	// afterGet runs on the stored record after GetByID has taken its
	// snapshot. Tests use it to mutate state between a read and a
	// subsequent write, the way a concurrent request would.
	afterGet func(*entity.Invoice)
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices:   make(map[uuid.UUID]*entity.Invoice),
		sequences:  make(map[int]int),
		sumsByRate: make(map[string]decimal.Decimal),
	}
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	year := invoice.InvoiceDate.Year()
	r.sequences[year]++
	invoice.InvoiceNumber = fmt.Sprintf("FAC%d%04d", year, r.sequences[year])
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	r.invoices[invoice.ID] = invoice
	return nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	snapshot := *invoice
	if r.afterGet != nil {
		r.afterGet(invoice)
	}
	return &snapshot, nil
}

func (r *fakeInvoiceRepo) GetByNumber(ctx context.Context, invoiceNumber string) (*entity.Invoice, error) {
	for _, invoice := range r.invoices {
		if invoice.InvoiceNumber == invoiceNumber {
			return invoice, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) List(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var out []entity.Invoice
	for _, invoice := range r.invoices {
		if params.InvoiceType != nil && invoice.InvoiceType != *params.InvoiceType {
			continue
		}
		if params.Status != nil && invoice.Status != *params.Status {
			continue
		}
		out = append(out, *invoice)
	}
	return out, int64(len(out)), nil
}

func (r *fakeInvoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	if invoice, ok := r.invoices[id]; ok {
		invoice.Status = status
	}
	return nil
}

func (r *fakeInvoiceRepo) SetAccountingEntry(ctx context.Context, id uuid.UUID, entryID uuid.UUID) error {
	invoice, ok := r.invoices[id]
	if !ok || invoice.AccountingEntryID != nil {
		return gorm.ErrDuplicatedKey
	}
	invoice.AccountingEntryID = &entryID
	return nil
}

func (r *fakeInvoiceRepo) ListOverdue(ctx context.Context, today time.Time) ([]entity.Invoice, error) {
	var out []entity.Invoice
	for _, invoice := range r.invoices {
		if invoice.Status == enum.InvoiceStatusSent && invoice.DueDate.Before(today) {
			out = append(out, *invoice)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) SumLineTotalsByVATRate(ctx context.Context, from, to time.Time, vatRate decimal.Decimal) (decimal.Decimal, error) {
	if sum, ok := r.sumsByRate[vatRate.String()]; ok {
		return sum, nil
	}
	return decimal.Zero, nil
}

type fakePaymentRepo struct {
	payments []entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{}
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	r.payments = append(r.payments, *payment)
	return nil
}

func (r *fakePaymentRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error) {
	var out []entity.Payment
	for _, payment := range r.payments {
		if payment.InvoiceID == invoiceID {
			out = append(out, payment)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) SumByInvoice(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, payment := range r.payments {
		if payment.InvoiceID == invoiceID {
			sum = sum.Add(payment.Amount)
		}
	}
	return sum, nil
}

type fakeVATDeclarationRepo struct {
	declarations map[uuid.UUID]*entity.VATDeclaration
}

func newFakeVATDeclarationRepo() *fakeVATDeclarationRepo {
	return &fakeVATDeclarationRepo{declarations: make(map[uuid.UUID]*entity.VATDeclaration)}
}

func (r *fakeVATDeclarationRepo) Create(ctx context.Context, declaration *entity.VATDeclaration) error {
	for _, existing := range r.declarations {
		if existing.PeriodType == declaration.PeriodType &&
			existing.Year == declaration.Year && existing.Period == declaration.Period {
			return gorm.ErrDuplicatedKey
		}
	}
	if declaration.ID == uuid.Nil {
		declaration.ID = uuid.New()
	}
	r.declarations[declaration.ID] = declaration
	return nil
}

func (r *fakeVATDeclarationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.VATDeclaration, error) {
	return r.declarations[id], nil
}

func (r *fakeVATDeclarationRepo) GetByPeriod(ctx context.Context, periodType enum.PeriodType, year, period int) (*entity.VATDeclaration, error) {
	for _, declaration := range r.declarations {
		if declaration.PeriodType == periodType && declaration.Year == year && declaration.Period == period {
			return declaration, nil
		}
	}
	return nil, nil
}

func (r *fakeVATDeclarationRepo) List(ctx context.Context, year *int) ([]entity.VATDeclaration, error) {
	var out []entity.VATDeclaration
	for _, declaration := range r.declarations {
		if year != nil && declaration.Year != *year {
			continue
		}
		out = append(out, *declaration)
	}
	return out, nil
}

func (r *fakeVATDeclarationRepo) MarkSubmitted(ctx context.Context, id uuid.UUID, submittedAt time.Time) error {
	if declaration, ok := r.declarations[id]; ok {
		declaration.IsSubmitted = true
		declaration.SubmissionDate = &submittedAt
	}
	return nil
}
