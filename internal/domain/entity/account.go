package entity

import (
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is one account of the Belgian minimum chart of accounts (PCMN).
// The account class is always the leading digit of the account number.
type Account struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	AccountNumber string            `gorm:"size:10;unique;not null;index" json:"account_number"`
	AccountName   string            `gorm:"size:200;not null" json:"account_name"`
	AccountClass  enum.AccountClass `gorm:"not null" json:"account_class"`
	ParentID      *uuid.UUID        `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	IsActive      bool              `gorm:"default:true" json:"is_active"`
	Description   string            `gorm:"type:text" json:"description,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`

	// Relationships
	Parent *Account `gorm:"foreignKey:ParentID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
