package request

import "github.com/shopspring/decimal"

// EntryLineRequest is one line of an entry creation request. A line carries
// either a debit or a credit amount.
type EntryLineRequest struct {
	AccountID    string          `json:"account_id" binding:"required,uuid"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debit_amount"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
	VATCode      string          `json:"vat_code"`
	VATAmount    decimal.Decimal `json:"vat_amount"`
}

// CreateEntryRequest is the payload for posting a new accounting entry.
// Totals and the balanced flag are computed server-side and must not be sent.
type CreateEntryRequest struct {
	JournalID   string             `json:"journal_id" binding:"required,uuid"`
	EntryDate   string             `json:"entry_date" binding:"required"`
	Description string             `json:"description" binding:"required"`
	Reference   string             `json:"reference"`
	Lines       []EntryLineRequest `json:"lines" binding:"required,min=1,dive"`
}
