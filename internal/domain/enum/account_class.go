package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AccountClass is one of the seven PCMN account classes. The class of an
// account is always the leading digit of its account number.
type AccountClass int

const (
	AccountClassEquityAndDebt     AccountClass = 1 // equity, provisions, long-term debt
	AccountClassFixedAssets       AccountClass = 2
	AccountClassInventory         AccountClass = 3
	AccountClassReceivablePayable AccountClass = 4
	AccountClassTreasury          AccountClass = 5
	AccountClassExpenses          AccountClass = 6
	AccountClassRevenue           AccountClass = 7
)

var accountClassDescriptions = map[AccountClass]string{
	AccountClassEquityAndDebt:     "Equity, provisions and debt due in more than one year",
	AccountClassFixedAssets:       "Formation expenses, fixed assets and long-term receivables",
	AccountClassInventory:         "Inventory and contracts in progress",
	AccountClassReceivablePayable: "Receivables and payables due within one year",
	AccountClassTreasury:          "Short-term investments and cash at hand",
	AccountClassExpenses:          "Expenses",
	AccountClassRevenue:           "Revenue",
}

// IsValid reports whether the class is one of the seven PCMN classes.
func (c AccountClass) IsValid() bool {
	return c >= AccountClassEquityAndDebt && c <= AccountClassRevenue
}

// Description returns the PCMN heading for the class.
func (c AccountClass) Description() string {
	return accountClassDescriptions[c]
}

// AccountClassFromNumber derives the class from the leading digit of an
// account number, e.g. "600000" belongs to class 6.
func AccountClassFromNumber(accountNumber string) (AccountClass, error) {
	if accountNumber == "" {
		return 0, fmt.Errorf("empty account number")
	}
	d := accountNumber[0]
	if d < '1' || d > '7' {
		return 0, fmt.Errorf("account number %q must start with a digit between 1 and 7", accountNumber)
	}
	return AccountClass(d - '0'), nil
}

func (c AccountClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(c))
}

func (c *AccountClass) UnmarshalJSON(data []byte) error {
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return err
	}
	*c = AccountClass(i)
	return nil
}

func (c AccountClass) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *AccountClass) Scan(value interface{}) error {
	if value == nil {
		*c = 0
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = AccountClass(v)
	case int:
		*c = AccountClass(v)
	}
	return nil
}
