package entity

import (
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VATDeclaration is one periodic Belgian VAT declaration. The grid columns
// mirror the statutory declaration form boxes. Grids 02, 55, 59 and 72
// (12% operations, 12% VAT, deductible VAT, VAT to recover) exist in the
// schema but are not filled by the generator; deductible-input aggregation
// is not implemented.
type VATDeclaration struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PeriodType enum.PeriodType `gorm:"not null;uniqueIndex:idx_vat_period" json:"period_type"`
	Year       int             `gorm:"not null;uniqueIndex:idx_vat_period" json:"year"`
	Period     int             `gorm:"not null;uniqueIndex:idx_vat_period" json:"period"`

	// Taxable operations per rate
	Grid00OperationsExempted decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"grid_00_operations_exempted"`
	Grid01Operations6Pct     decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"grid_01_operations_6_percent"`
	Grid02Operations12Pct    decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"grid_02_operations_12_percent"`
	Grid03Operations21Pct    decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"grid_03_operations_21_percent"`

	// VAT due per rate
	Grid54VAT6Pct  decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"grid_54_vat_6_percent"`
	Grid55VAT12Pct decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"grid_55_vat_12_percent"`
	Grid56VAT21Pct decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"grid_56_vat_21_percent"`

	// Deductible VAT and balance
	Grid59VATDeductible decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"grid_59_vat_deductible"`
	Grid71VATToPay      decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"grid_71_vat_to_pay"`
	Grid72VATToRecover  decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"grid_72_vat_to_recover"`

	IsSubmitted    bool       `gorm:"not null;default:false" json:"is_submitted"`
	SubmissionDate *time.Time `json:"submission_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new declaration
func (d *VATDeclaration) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VATDeclaration model
func (VATDeclaration) TableName() string {
	return "vat_declarations"
}
