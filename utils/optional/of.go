package optional

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Of null許容の値
//
// Vが最初のフィールドであることに依存してgormがカラム型を推論するため、フィールド順を変えないこと
type Of[T any] struct {
	V     T
	Valid bool
}

// New Validを指定してOfを生成します
func New[T any](v T, valid bool) Of[T] {
	return Of[T]{V: v, Valid: valid}
}

// From 有効な値を持つOfを生成します
func From[T any](v T) Of[T] {
	return New(v, true)
}

// FromPtr ポインタからOfを生成します。nilの場合は無効な値になります
func FromPtr[T any](v *T) Of[T] {
	if v == nil {
		return Of[T]{}
	}
	return From(*v)
}

// ValueOrZero 有効な場合は値を、そうでない場合はゼロ値を返します
func (o Of[T]) ValueOrZero() T {
	if !o.Valid {
		var zero T
		return zero
	}
	return o.V
}

// Ptr 有効な場合は値へのポインタを、そうでない場合はnilを返します
func (o Of[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.V
	return &v
}

// MarshalJSON implements json.Marshaler interface.
func (o Of[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.V)
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (o *Of[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		var zero T
		o.V, o.Valid = zero, false
		return nil
	}
	if err := json.Unmarshal(data, &o.V); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalText implements encoding.TextMarshaler interface.
func (o Of[T]) MarshalText() ([]byte, error) {
	if !o.Valid {
		return []byte{}, nil
	}
	if m, ok := any(o.V).(encoding.TextMarshaler); ok {
		return m.MarshalText()
	}
	return []byte(fmt.Sprint(o.V)), nil
}

// Scan implements sql.Scanner interface.
func (o *Of[T]) Scan(src any) error {
	var n sql.Null[T]
	if err := n.Scan(src); err != nil {
		return err
	}
	o.V, o.Valid = n.V, n.Valid
	return nil
}

// Value implements driver.Valuer interface.
func (o Of[T]) Value() (driver.Value, error) {
	if !o.Valid {
		return nil, nil
	}
	if v, ok := any(o.V).(driver.Valuer); ok {
		return v.Value()
	}
	return driver.DefaultParameterConverter.ConvertValue(o.V)
}
