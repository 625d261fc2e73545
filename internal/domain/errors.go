package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrPayrollConflict  = errors.New("payroll for this employee was finalized concurrently")
)

// ValidationError - ошибка валидации входных данных
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// NewValidationError создаёт ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StoreError оборачивает сбой хранилища. Причина пишется в лог и не уходит
// клиенту
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// WrapStore помечает err как сбой хранилища в op. Доменные ошибки
// проходят без изменений
func WrapStore(op string, err error) error {
	if err == nil || errors.Is(err, ErrEmployeeNotFound) || errors.Is(err, ErrPayrollConflict) {
		return err
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
