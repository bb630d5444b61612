package client

import "errors"

// ErrUnauthenticated is raised synchronously, before any network call, when
// an operation requires a signed-in identity and none is present.
var ErrUnauthenticated = errors.New("not signed in")
