package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PeriodType represents the VAT declaration cadence
type PeriodType int

const (
	PeriodTypeMonthly PeriodType = iota
	PeriodTypeQuarterly
)

var periodTypeNames = [...]string{"monthly", "quarterly"}

func (p PeriodType) String() string {
	if int(p) < 0 || int(p) >= len(periodTypeNames) {
		return "monthly"
	}
	return periodTypeNames[p]
}

// ParsePeriodType converts a string value into a PeriodType
func ParsePeriodType(s string) (PeriodType, error) {
	for i, name := range periodTypeNames {
		if name == s {
			return PeriodType(i), nil
		}
	}
	return PeriodTypeMonthly, fmt.Errorf("unknown period type %q", s)
}

// MaxPeriod returns the highest valid period index for the cadence:
// 12 for monthly, 4 for quarterly.
func (p PeriodType) MaxPeriod() int {
	if p == PeriodTypeQuarterly {
		return 4
	}
	return 12
}

func (p PeriodType) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PeriodType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = PeriodType(i)
		return nil
	}
	parsed, err := ParsePeriodType(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p PeriodType) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *PeriodType) Scan(value interface{}) error {
	if value == nil {
		*p = PeriodTypeMonthly
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = PeriodType(v)
	case int:
		*p = PeriodType(v)
	}
	return nil
}
