package errs

import (
	"errors"

	cr "github.com/cockroachdb/errors"
)

type EntityKind string

const (
	KindBook        EntityKind = "Book"
	KindUser        EntityKind = "User"
	KindTransaction EntityKind = "Transaction"
)

var (
	// ErrNotFound matches every NotFoundError regardless of kind
	ErrNotFound    = errors.New("not found")
	ErrQueryFailed = errors.New("query failed")
)

var (
	ErrBookNotFound        = NotFoundError{Kind: KindBook}
	ErrUserNotFound        = NotFoundError{Kind: KindUser}
	ErrTransactionNotFound = NotFoundError{Kind: KindTransaction}
)

// NotFoundError is comparable, so errors.Is(err, ErrBookNotFound) matches by kind.
type NotFoundError struct {
	Kind EntityKind
}

func (e NotFoundError) Error() string {
	return string(e.Kind) + " not found"
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func NotFound(kind EntityKind) error {
	return NotFoundError{Kind: kind}
}

// NotFoundKind reports which entity lookup produced err.
func NotFoundKind(err error) (EntityKind, bool) {
	var nf NotFoundError
	if errors.As(err, &nf) {
		return nf.Kind, true
	}
	return "", false
}

type queryFailedError struct {
	cause error
}

func (e *queryFailedError) Error() string        { return cr.UnwrapAll(e.cause).Error() }
func (e *queryFailedError) Unwrap() error        { return e.cause }
func (e *queryFailedError) Is(target error) bool { return target == ErrQueryFailed }

// QueryFailed tags a storage error. Its message is the message of the
// innermost cause, so wrapping added on the way up is not shown to clients.
func QueryFailed(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrQueryFailed) {
		return err
	}
	return &queryFailedError{cause: err}
}
