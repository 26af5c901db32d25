package valueobjects

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNegativeMoney   = errors.New("money amount must not be negative")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrEmptyName       = errors.New("name must not be empty")
)

// Money is a non-negative monetary amount. Zero value is R$ 0,00.
//
// Monetary representation follows the billing-service convention (float64
// prices); the constructor is the only place negativity is rejected, so a
// Money obtained from arithmetic over valid values is always valid.
type Money struct {
	amount float64
}

func NewMoney(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, fmt.Errorf("%w: %.2f", ErrNegativeMoney, amount)
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() float64 {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

func (m Money) MultiplyBy(q Quantity) Money {
	return Money{amount: m.amount * float64(q.value)}
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

// Quantity is a strictly positive item count.
type Quantity struct {
	value int
}

func NewQuantity(value int) (Quantity, error) {
	if value <= 0 {
		return Quantity{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, value)
	}
	return Quantity{value: value}, nil
}

func (q Quantity) Value() int {
	return q.value
}

func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value + other.value}
}

// Name is a non-empty, trimmed display name for services and stock items.
type Name struct {
	value string
}

func NewName(value string) (Name, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: value}, nil
}

func (n Name) String() string {
	return n.value
}
