package adapter

import "errors"

// The closed error set the stores in internal/client branch on. Everything
// the transport can fail with is either one of these or a wrapped
// passthrough.
var (
	ErrUnauthorized         = errors.New("client unauthorized")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrDuplicate            = errors.New("duplicate resource")
	ErrMissingRequiredField = errors.New("required field is missing")
	ErrNotFound             = errors.New("resource not found")
)
