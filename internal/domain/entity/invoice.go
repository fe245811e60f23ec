package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BillingAddress is the structured invoice address, stored as JSONB.
type BillingAddress struct {
	Street     string `json:"street"`
	Number     string `json:"number,omitempty"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

func (a BillingAddress) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *BillingAddress) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = BillingAddress{}
		return nil
	default:
		return fmt.Errorf("unsupported billing address column type %T", value)
	}
}

// Invoice is a sale invoice, purchase invoice or credit note. Invoice-level
// amounts are always recomputed from the lines server-side; caller-supplied
// aggregates are never trusted.
type Invoice struct {
	ID                uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber     string             `gorm:"size:20;unique;not null" json:"invoice_number"`
	InvoiceType       enum.InvoiceType   `gorm:"not null;index" json:"invoice_type"`
	CustomerID        *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	SupplierName      string             `gorm:"size:200" json:"supplier_name,omitempty"`
	InvoiceDate       time.Time          `gorm:"type:date;not null;index" json:"invoice_date"`
	DueDate           time.Time          `gorm:"type:date;not null" json:"due_date"`
	Status            enum.InvoiceStatus `gorm:"not null;default:0;index" json:"status"`
	SubtotalExclVAT   decimal.Decimal    `gorm:"type:numeric(15,2);not null" json:"subtotal_excl_vat"`
	VATAmount         decimal.Decimal    `gorm:"type:numeric(15,2);not null" json:"vat_amount"`
	TotalInclVAT      decimal.Decimal    `gorm:"type:numeric(15,2);not null" json:"total_incl_vat"`
	BillingAddress    BillingAddress     `gorm:"type:jsonb" json:"billing_address"`
	OrderReference    string             `gorm:"size:100" json:"order_reference,omitempty"`
	AccountingEntryID *uuid.UUID         `gorm:"type:uuid" json:"accounting_entry_id,omitempty"`
	Notes             string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`

	// Relationships
	Customer        *Customer        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	AccountingEntry *AccountingEntry `gorm:"foreignKey:AccountingEntryID" json:"-"`
	Lines           []InvoiceLine    `gorm:"foreignKey:InvoiceID" json:"lines,omitempty"`
	Payments        []Payment        `gorm:"foreignKey:InvoiceID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceLine is one billed position. The three derived amounts are computed
// from quantity, unit price and VAT rate at creation time and never accepted
// from the caller.
type InvoiceLine struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Description      string          `gorm:"size:200;not null" json:"description"`
	Quantity         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"quantity"`
	UnitPriceExclVAT decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price_excl_vat"`
	VATRate          decimal.Decimal `gorm:"type:numeric(4,2);not null" json:"vat_rate"`
	TotalExclVAT     decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"total_excl_vat"`
	VATAmount        decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"vat_amount"`
	TotalInclVAT     decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"total_incl_vat"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice line
func (l *InvoiceLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceLine model
func (InvoiceLine) TableName() string {
	return "invoice_lines"
}

// InvoiceSequence is the per-year counter backing invoice number assignment
// (FAC{year}{seq:04d}).
type InvoiceSequence struct {
	Year       int `gorm:"primaryKey" json:"year"`
	LastNumber int `gorm:"not null;default:0" json:"last_number"`
}

// TableName returns the table name for the InvoiceSequence model
func (InvoiceSequence) TableName() string {
	return "invoice_sequences"
}
