package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JournalType represents the kind of ledger stream a journal records
type JournalType int

const (
	JournalTypeSales JournalType = iota
	JournalTypePurchases
	JournalTypeCash
	JournalTypeBank
	JournalTypeGeneral
	JournalTypeOpening
	JournalTypeClosing
)

var journalTypeNames = [...]string{"sales", "purchases", "cash", "bank", "general", "opening", "closing"}

func (t JournalType) String() string {
	if int(t) < 0 || int(t) >= len(journalTypeNames) {
		return "general"
	}
	return journalTypeNames[t]
}

// ParseJournalType converts a string value into a JournalType
func ParseJournalType(s string) (JournalType, error) {
	for i, name := range journalTypeNames {
		if name == s {
			return JournalType(i), nil
		}
	}
	return JournalTypeGeneral, fmt.Errorf("unknown journal type %q", s)
}

func (t JournalType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *JournalType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = JournalType(i)
		return nil
	}
	parsed, err := ParseJournalType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t JournalType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *JournalType) Scan(value interface{}) error {
	if value == nil {
		*t = JournalTypeGeneral
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = JournalType(v)
	case int:
		*t = JournalType(v)
	}
	return nil
}
