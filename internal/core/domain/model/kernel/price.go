package kernel

import (
	"eats/internal/pkg/errs"
)

// Price is a value object representing a monetary amount in the smallest
// currency unit. It replaces raw integers in the domain model so that
// negative amounts can never enter an aggregate.
//
// The zero value is a valid price of zero. Price is immutable; arithmetic
// returns new values.
//
// Example usage:
//
//	base, _ := kernel.NewPrice(1500)
//	extra, _ := kernel.NewPrice(100)
//	total := base.Add(extra)
//	fmt.Println(total.Amount()) // 1600
type Price struct {
	amount int64
}

// NewPrice creates a Price from an amount in the smallest currency unit.
// Returns an error if the amount is negative.
func NewPrice(amount int64) (Price, error) {
	if amount < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			errs.NewValueIsOutOfRangeError("amount", amount, 0, "+inf"))
	}
	return Price{amount: amount}, nil
}

// Amount returns the amount in the smallest currency unit.
func (p Price) Amount() int64 {
	return p.amount
}

// Add returns the sum of two prices. Since both operands are non-negative,
// the result is always a valid Price.
func (p Price) Add(other Price) Price {
	return Price{amount: p.amount + other.amount}
}

// IsZero reports whether the price is exactly zero.
func (p Price) IsZero() bool {
	return p.amount == 0
}

// IsEqual compares two prices for equality by amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}
