package usecase

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindConflict
	KindAuthentication
	KindNotFound
	KindPersistence
	KindInfrastructure
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindPersistence:
		return "persistence"
	case KindInfrastructure:
		return "infrastructure"
	default:
		return "unknown"
	}
}

// AppError carries a client-safe Message. Err is for logs only and must
// never be written to a response.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func newError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func validationError(message string) error {
	return newError(KindValidation, message, nil)
}

// KindOf returns the kind of the first AppError in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}
