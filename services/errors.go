package services

import (
	"errors"
	"fmt"
)

// Kind classifies a registration failure so handlers can pick a status code
// without string-matching messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindDuplicateKey
	KindUploadFailed
	KindStoreWriteFailed
	KindNotFound
	KindStoreUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDuplicateKey:
		return "duplicate key"
	case KindUploadFailed:
		return "upload failed"
	case KindStoreWriteFailed:
		return "store write failed"
	case KindNotFound:
		return "not found"
	case KindStoreUnavailable:
		return "store unavailable"
	}
	return "unknown"
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind carried by err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

func errf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}
