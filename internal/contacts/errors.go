package contacts

import (
	"errors"
	"fmt"
)

// Kind classifies domain errors so the interpreter can render each class
// distinctly without string matching.
type Kind uint8

const (
	// KindValidation marks malformed input (phone, date, name).
	KindValidation Kind = iota + 1
	// KindNotFound marks lookups for absent contacts or phones.
	KindNotFound
	// KindDuplicate marks insertions that would collide with existing data.
	KindDuplicate
)

// String returns the kind label used in logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Error is a domain error raised by Record and AddressBook operations.
// The message is user-facing and shown verbatim by the interpreter.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func validationf(format string, args ...any) *Error {
	return newError(KindValidation, format, args...)
}

func notFoundf(format string, args ...any) *Error {
	return newError(KindNotFound, format, args...)
}

func duplicatef(format string, args ...any) *Error {
	return newError(KindDuplicate, format, args...)
}

func isKind(err error, kind Kind) bool {
	var domainErr *Error
	return errors.As(err, &domainErr) && domainErr.Kind == kind
}

// IsValidation reports whether err is a domain validation error.
func IsValidation(err error) bool {
	return isKind(err, KindValidation)
}

// IsNotFound reports whether err is a domain not-found error.
func IsNotFound(err error) bool {
	return isKind(err, KindNotFound)
}

// IsDuplicate reports whether err is a domain duplicate error.
func IsDuplicate(err error) bool {
	return isKind(err, KindDuplicate)
}
