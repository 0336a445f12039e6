package note

import "errors"

var (
	ErrMissingAuthor = errors.New("missing parameter: author")
	ErrInvalidAuthor = errors.New("invalid parameter: author")
	ErrUnauthorized  = errors.New("not authenticated")
	ErrForbidden     = errors.New("not allowed")
	ErrNotFound      = errors.New("note not found")
	ErrInvalidNote   = errors.New("invalid note")
)
