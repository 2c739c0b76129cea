package models

import (
	"fmt"
	"strconv"
	"strings"
)

const CurrencyUSD = "USD"

var currencySymbols = map[string]string{
	CurrencyUSD: "$",
	"EUR":       "€",
	"GBP":       "£",
}

// Money is an amount in minor units of a currency.
type Money struct {
	Amount   int64  `json:"amount" bson:"amount"`
	Currency string `json:"currency" bson:"currency"`
}

func USD(cents int64) Money {
	return Money{Amount: cents, Currency: CurrencyUSD}
}

func (m Money) IsZero() bool {
	return m.Amount == 0
}

func (m Money) Mul(qty int) Money {
	return Money{Amount: m.Amount * int64(qty), Currency: m.Currency}
}

// Add fails on a currency mismatch. A zero value without currency adopts
// the other operand's currency.
func (m Money) Add(o Money) (Money, error) {
	switch {
	case m.Currency == "":
		return Money{Amount: m.Amount + o.Amount, Currency: o.Currency}, nil
	case o.Currency == "" || o.Currency == m.Currency:
		return Money{Amount: m.Amount + o.Amount, Currency: m.Currency}, nil
	default:
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.Currency, o.Currency)
	}
}

// String renders the amount for display, e.g. "$10,000.00".
func (m Money) String() string {
	amount := m.Amount
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	whole := groupThousands(strconv.FormatInt(amount/100, 10))
	formatted := fmt.Sprintf("%s.%02d", whole, amount%100)

	if symbol, ok := currencySymbols[m.Currency]; ok {
		return sign + symbol + formatted
	}
	if m.Currency == "" {
		return sign + formatted
	}
	return sign + formatted + " " + m.Currency
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	for i, digit := range digits {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String()
}
