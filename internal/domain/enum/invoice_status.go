package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus int

const (
	InvoiceStatusDraft InvoiceStatus = iota
	InvoiceStatusSent
	InvoiceStatusPaid
	InvoiceStatusOverdue
	InvoiceStatusCancelled
)

var invoiceStatusNames = [...]string{"draft", "sent", "paid", "overdue", "cancelled"}

func (s InvoiceStatus) String() string {
	if int(s) < 0 || int(s) >= len(invoiceStatusNames) {
		return "draft"
	}
	return invoiceStatusNames[s]
}

// ParseInvoiceStatus converts a string value into an InvoiceStatus
func ParseInvoiceStatus(str string) (InvoiceStatus, error) {
	for i, name := range invoiceStatusNames {
		if name == str {
			return InvoiceStatus(i), nil
		}
	}
	return InvoiceStatusDraft, fmt.Errorf("unknown invoice status %q", str)
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InvoiceStatus(i)
		return nil
	}
	parsed, err := ParseInvoiceStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s InvoiceStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *InvoiceStatus) Scan(value interface{}) error {
	if value == nil {
		*s = InvoiceStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = InvoiceStatus(v)
	case int:
		*s = InvoiceStatus(v)
	}
	return nil
}
