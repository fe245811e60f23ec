package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountingEntry is a double-entry transaction posted to a journal. Entries
// whose debit and credit totals differ are persisted anyway with
// IsBalanced=false; callers are expected to inspect the flag and correct
// with a reversing entry.
type AccountingEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	JournalID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_journal_entry_number" json:"journal_id"`
	EntryNumber string          `gorm:"size:20;not null;uniqueIndex:idx_journal_entry_number" json:"entry_number"`
	EntryDate   time.Time       `gorm:"type:date;not null;index" json:"entry_date"`
	Description string          `gorm:"size:200;not null" json:"description"`
	Reference   string          `gorm:"size:50" json:"reference,omitempty"`
	TotalDebit  decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"total_debit"`
	TotalCredit decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"total_credit"`
	IsBalanced  bool            `gorm:"not null;default:false" json:"is_balanced"`
	CreatedAt   time.Time       `json:"created_at"`

	// Relationships
	Journal Journal     `gorm:"foreignKey:JournalID" json:"journal,omitempty"`
	Lines   []EntryLine `gorm:"foreignKey:EntryID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new entry
func (e *AccountingEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AccountingEntry model
func (AccountingEntry) TableName() string {
	return "accounting_entries"
}

// EntryLine is a single debit or credit movement within an accounting entry.
// A line carries either a debit or a credit amount, never both.
type EntryLine struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	EntryID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"entry_id"`
	AccountID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Description  string          `gorm:"size:200" json:"description"`
	DebitAmount  decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"debit_amount"`
	CreditAmount decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"credit_amount"`
	VATCode      string          `gorm:"size:10" json:"vat_code,omitempty"`
	VATAmount    decimal.Decimal `gorm:"type:numeric(15,2)" json:"vat_amount"`

	// Relationships
	Entry   AccountingEntry `gorm:"foreignKey:EntryID" json:"-"`
	Account Account         `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}

// BeforeCreate generates a UUID before creating a new entry line
func (l *EntryLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the EntryLine model
func (EntryLine) TableName() string {
	return "accounting_entry_lines"
}
