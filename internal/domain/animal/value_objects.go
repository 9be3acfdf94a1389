package animal

import (
	"errors"
	"fmt"
)

var ErrNegativeMoney = errors.New("money cannot be negative")

// Money is a fixed-point currency amount in cents. Totals are integer sums,
// so they never pick up floating-point drift.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// String renders the amount with exactly two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

type Plate struct {
	value string
}

func NewPlate(v string) (Plate, error) {
	if v == "" {
		return Plate{}, ErrEmptyPlate
	}
	if len(v) > MaxPlateLength {
		return Plate{}, ErrPlateTooLong
	}
	return Plate{value: v}, nil
}

func (p Plate) String() string {
	return p.value
}
