// README: Common money value object used across modules.
package types

import "fmt"

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func USD(amount int64) Money {
	return Money{Amount: amount, Currency: "USD"}
}

// Mul returns the price for n units (e.g. nights) of m.
func (m Money) Mul(n int64) Money {
	return Money{Amount: m.Amount * n, Currency: m.Currency}
}

// Display renders the catalog-style price tag, e.g. "$199".
func (m Money) Display() string {
	return fmt.Sprintf("$%d", m.Amount)
}
