package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// InvoiceType distinguishes sales invoices, purchase invoices and credit notes
type InvoiceType int

const (
	InvoiceTypeSale InvoiceType = iota
	InvoiceTypePurchase
	InvoiceTypeCreditNote
)

var invoiceTypeNames = [...]string{"sale", "purchase", "credit_note"}

func (t InvoiceType) String() string {
	if int(t) < 0 || int(t) >= len(invoiceTypeNames) {
		return "sale"
	}
	return invoiceTypeNames[t]
}

// ParseInvoiceType converts a string value into an InvoiceType
func ParseInvoiceType(s string) (InvoiceType, error) {
	for i, name := range invoiceTypeNames {
		if name == s {
			return InvoiceType(i), nil
		}
	}
	return InvoiceTypeSale, fmt.Errorf("unknown invoice type %q", s)
}

func (t InvoiceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *InvoiceType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = InvoiceType(i)
		return nil
	}
	parsed, err := ParseInvoiceType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t InvoiceType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *InvoiceType) Scan(value interface{}) error {
	if value == nil {
		*t = InvoiceTypeSale
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = InvoiceType(v)
	case int:
		*t = InvoiceType(v)
	}
	return nil
}
