package entity

import (
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Journal is a named ledger stream that accounting entries are posted into
// (sales, purchases, cash, bank, general, opening, closing).
type Journal struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Code        string           `gorm:"size:10;unique;not null" json:"code"`
	Name        string           `gorm:"size:100;not null" json:"name"`
	JournalType enum.JournalType `gorm:"not null" json:"journal_type"`
	IsActive    bool             `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new journal
func (j *Journal) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Journal model
func (Journal) TableName() string {
	return "journals"
}

// JournalSequence is the per-journal-per-year counter backing entry number
// assignment. The row is locked FOR UPDATE inside the entry creation
// transaction so concurrent creators cannot allocate the same number.
type JournalSequence struct {
	JournalID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"journal_id"`
	Year       int       `gorm:"primaryKey" json:"year"`
	LastNumber int       `gorm:"not null;default:0" json:"last_number"`
}

// TableName returns the table name for the JournalSequence model
func (JournalSequence) TableName() string {
	return "journal_sequences"
}
