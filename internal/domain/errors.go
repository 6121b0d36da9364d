package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange    = errors.New("invalid range")
	ErrUnsupportedKind = errors.New("unsupported kind")
	ErrInvalidAmount   = errors.New("invalid amount")
)

// InvalidRangeError indica um período customizado sem limites ou com limites invertidos
type InvalidRangeError struct {
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidRange, e.Reason)
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// UnsupportedKindError indica um registro cuja combinação kind/status não é conhecida
type UnsupportedKindError struct {
	RecordID string
	Kind     Kind
	Status   Status
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("%s: record %q has kind %q with status %q", ErrUnsupportedKind, e.RecordID, e.Kind, e.Status)
}

func (e *UnsupportedKindError) Is(target error) bool {
	return target == ErrUnsupportedKind
}

// InvalidAmountError indica um valor monetário negativo vindo da persistência
type InvalidAmountError struct {
	RecordID string
	Field    string
	Amount   Money
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("%s: record %q has negative %s %s", ErrInvalidAmount, e.RecordID, e.Field, e.Amount)
}

func (e *InvalidAmountError) Is(target error) bool {
	return target == ErrInvalidAmount
}

// RecordAnomaly registra um registro descartado durante a agregação
type RecordAnomaly struct {
	RecordID string `json:"record_id"`
	Kind     Kind   `json:"kind"`
	Status   Status `json:"status"`
	Reason   string `json:"reason"`
}
