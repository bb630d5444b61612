package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrEmptyCategory    = errors.New("category is required")
	ErrEmptyPrompt      = errors.New("prompt is required")
	ErrInvalidLevel     = errors.New("invalid difficulty level")
	ErrEmptyTag         = errors.New("tags cannot contain empty values")
	ErrEmptyPatch       = errors.New("at least one field must be provided for update")
	ErrEmptyCommandID   = errors.New("command id is required")

	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")
)
