package entity

import (
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is one settlement applied against an invoice. Several payments may
// be applied to the same invoice; the running balance due is the invoice
// total minus the sum of its payments.
type Payment struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"invoice_id"`
	PaymentDate   time.Time          `gorm:"type:date;not null" json:"payment_date"`
	Amount        decimal.Decimal    `gorm:"type:numeric(15,2);not null" json:"amount"`
	PaymentMethod enum.PaymentMethod `gorm:"not null" json:"payment_method"`
	Reference     string             `gorm:"size:100" json:"reference,omitempty"`
	Notes         string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
