package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrForbidden will throw if the caller does not own the requested item
	ErrForbidden = errors.New("you are not allowed to access this item")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrMissingProperty will throw if a creation payload lacks a required field
	ErrMissingProperty = errors.New("required property is missing")
	// ErrInvalidType will throw if a creation payload field has the wrong type
	ErrInvalidType = errors.New("property has an invalid type")
	// ErrInvariant will throw if the stored like state disagrees with the requested transition
	ErrInvariant = errors.New("like state invariant violated")
	// ErrCacheMiss will throw if the key is absent from the cache
	ErrCacheMiss = errors.New("cache miss")
	// ErrBloomNotLoaded will throw if the bloom filter key is absent, so no answer can be trusted
	ErrBloomNotLoaded = errors.New("bloom filter not loaded")
)

// Error carries a user facing message while still matching one of the kind
// sentinels above through errors.Is.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

var (
	ErrThreadNotFound  = newError(ErrNotFound, "thread tidak ditemukan")
	ErrCommentNotFound = newError(ErrNotFound, "comment tidak ditemukan")
	ErrReplyNotFound   = newError(ErrNotFound, "reply tidak ditemukan")

	ErrCommentForbidden = newError(ErrForbidden, "owner tidak berhak untuk mengakses comment")
	ErrReplyForbidden   = newError(ErrForbidden, "owner tidak berhak untuk mengakses reply")

	ErrLikeExists  = newError(ErrInvariant, "like sudah ada")
	ErrLikeMissing = newError(ErrInvariant, "like tidak ditemukan")
)
