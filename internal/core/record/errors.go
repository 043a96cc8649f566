package record

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("record: validation failed")
	ErrUnknownTable  = errors.New("record: unknown table")
	ErrUnknownColumn = errors.New("record: unknown column")
	ErrFieldCount    = errors.New("record: field count mismatch")
	ErrRequired      = errors.New("record: required field is empty")
	ErrInvalidEnum   = errors.New("record: value not allowed")
	ErrInvalidDate   = errors.New("record: invalid date, expected YYYY-MM-DD")
	ErrInvalidTime   = errors.New("record: invalid time, expected HH:MM")
	ErrInvalidAmount = errors.New("record: invalid amount")
	ErrInvalidBool   = errors.New("record: invalid boolean")
)

// ValidationError は追記時の入力検証エラーです。errors.Is で ErrValidation と原因の両方に一致します。
type ValidationError struct {
	Table  Table
	Column string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: %v", e.Table, e.Err)
	}
	return fmt.Sprintf("%s.%s: %v", e.Table, e.Column, e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}

func invalid(table Table, column string, err error) error {
	return &ValidationError{Table: table, Column: column, Err: err}
}
