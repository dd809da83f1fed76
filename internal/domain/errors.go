package domain

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	KindNotFound Kind = iota + 1
	KindOutOfStock
	KindBackend
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindOutOfStock:
		return "out_of_stock"
	case KindBackend:
		return "backend"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is; any *Error of the same kind matches.
var (
	ErrNotFound   = &Error{Kind: KindNotFound, Message: "Item not found."}
	ErrOutOfStock = &Error{Kind: KindOutOfStock, Message: "The item is out of stock."}
	ErrBackend    = &Error{Kind: KindBackend, Message: "backend error"}
	ErrTransport  = &Error{Kind: KindTransport, Message: "transport error"}

	ErrEmptyInput = errors.New("input is empty")
)

// Error is the single error shape surfaced by the clients and the purchase flow.
// Status is set for backend errors only.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindBackend && e.Status != 0:
		return fmt.Sprintf("%d: %s", e.Status, e.Message)
	case e.Err != nil && e.Message != "":
		return e.Message + ": " + e.Err.Error()
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func NotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "Item not found."}
}

func OutOfStock() *Error {
	return &Error{Kind: KindOutOfStock, Message: "The item is out of stock."}
}

func Backend(status int, body string) *Error {
	return &Error{Kind: KindBackend, Status: status, Message: body}
}

func Transport(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}

// KindOf reports the kind of err, or 0 when err is not a domain error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
