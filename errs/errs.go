package errs

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Kind classifies an error so transport layers can map it to a status code.
type Kind int

const (
	Other Kind = iota
	Invalid
	Unauthorized
	Conflict
	NotFound
	Gateway
	Internal
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Unauthorized:
		return "unauthorized"
	case Conflict:
		return "conflict"
	case NotFound:
		return "not found"
	case Gateway:
		return "gateway"
	case Internal:
		return "internal"
	default:
		return "other"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E wraps err with a kind and a message. err may be nil.
func E(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or Other for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	for err != nil {
		var ok bool
		if e, ok = err.(*Error); ok {
			return e.Kind
		}

		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}

		err = u.Unwrap()
	}

	return Other
}

// HTTPStatus maps an error kind to the status code returned to the caller.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Invalid:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Conflict:
		return http.StatusConflict
	case NotFound:
		return http.StatusNotFound
	case Gateway, Internal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// FieldErrors accumulates per-field validation failures.
type FieldErrors struct {
	fields map[string]string
}

func ValidationErrs() *FieldErrors {
	return &FieldErrors{fields: make(map[string]string)}
}

func (fe *FieldErrors) Add(field, message string) {
	if _, ok := fe.fields[field]; !ok {
		fe.fields[field] = message
	}
}

// Err returns nil when no field errors were added.
func (fe *FieldErrors) Err() error {
	if len(fe.fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fe.fields))
	for k := range fe.fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, fe.fields[k]))
	}

	return fmt.Errorf("%s", strings.Join(parts, "; "))
}
