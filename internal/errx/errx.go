// Package errx описывает виды прикладных ошибок.
// Сервисы оборачивают сбои именем операции и видом; транспортный слой
// превращает вид в GraphQL-ошибку или HTTP-статус.
package errx

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	Unknown Kind = iota
	Unauthenticated
	Unauthorized
	NotFound
	Invalid
	Internal
)

type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func E(op string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{
		Op:   op,
		Kind: kind,
		Err:  err,
	}
}

// String возвращает строковое представление вида ошибки.
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case Unauthenticated:
		return "Unauthenticated"
	case Unauthorized:
		return "Unauthorized"
	case NotFound:
		return "NotFound"
	case Invalid:
		return "Invalid"
	case Internal:
		return "Internal"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Message возвращает текст вложенной ошибки — его можно показать клиенту.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Err != nil {
		return e.Err.Error()
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
