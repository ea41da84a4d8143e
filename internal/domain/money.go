package domain

import (
	"bytes"
	"database/sql/driver"
	"strconv"

	"github.com/shopspring/decimal"
)

// Money is a decimal amount with two fractional digits on the wire ("289.90").
// It decodes from either a JSON string or a JSON number.
type Money struct {
	decimal.Decimal
}

func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// MustMoney is NewMoney for literals; it panics on malformed input.
func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) String() string { return m.StringFixed(2) }

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.StringFixed(2))), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	return m.Decimal.UnmarshalJSON(b)
}

func (m Money) Value() (driver.Value, error) {
	return m.StringFixed(2), nil
}

// NullMoney is a Money that may be absent (SQL NULL / JSON null).
type NullMoney struct {
	Money Money
	Valid bool
}

func SomeMoney(m Money) NullMoney { return NullMoney{Money: m, Valid: true} }

func (n *NullMoney) Scan(src any) error {
	if src == nil {
		n.Money, n.Valid = Money{}, false
		return nil
	}
	var m Money
	if err := m.Scan(src); err != nil {
		return err
	}
	*n = SomeMoney(m)
	return nil
}

func (n NullMoney) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Money.Value()
}

func (n NullMoney) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Money.MarshalJSON()
}

func (n *NullMoney) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Money, n.Valid = Money{}, false
		return nil
	}
	var m Money
	if err := m.UnmarshalJSON(b); err != nil {
		return err
	}
	*n = SomeMoney(m)
	return nil
}
