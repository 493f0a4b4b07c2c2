// Package common defines sentinel errors shared by the server and client layers
// of the user service. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Request validation errors. ValidationError unwraps to ErrorInvalidArgument.
	ErrorInvalidArgument = errors.New("invalid argument")

	// Anything not classified above.
	ErrorInternal = errors.New("internal error")
)
