package client

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrUnavailable       = errors.New("server unavailable")
	ErrResourceExhausted = errors.New("server busy")
)

// Error is a failed call as reported by the server. Kind is one of the Err*
// sentinels, or nil when the status code has no dedicated kind.
type Error struct {
	Kind    error
	Code    codes.Code
	Message string
	// Fields lists the rejected request fields of an InvalidArgument error.
	Fields []string
}

func (e *Error) Error() string {
	if e.Kind == nil {
		return fmt.Sprintf("rpc error: %s: %s", e.Code, e.Message)
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s (%s): %s", e.Kind, strings.Join(e.Fields, ", "), e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

var kindByCode = map[codes.Code]error{
	codes.NotFound:          ErrNotFound,
	codes.AlreadyExists:     ErrAlreadyExists,
	codes.InvalidArgument:   ErrInvalidArgument,
	codes.Unauthenticated:   ErrUnauthorized,
	codes.PermissionDenied:  ErrPermissionDenied,
	codes.Unavailable:       ErrUnavailable,
	codes.ResourceExhausted: ErrResourceExhausted,
}

func (s *GRPCClient) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	e := &Error{Kind: kindByCode[st.Code()], Code: st.Code(), Message: st.Message()}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, v := range br.GetFieldViolations() {
				e.Fields = append(e.Fields, v.GetField())
			}
		}
	}
	return e
}

// Describe returns a short human-readable message for err.
func Describe(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "Error: Resource not found."
	case errors.Is(err, ErrAlreadyExists):
		return "Error: Resource already exists."
	case errors.Is(err, ErrInvalidArgument):
		var e *Error
		if errors.As(err, &e) && len(e.Fields) > 0 {
			return "Error: Invalid argument provided: " + strings.Join(e.Fields, ", ") + "."
		}
		return "Error: Invalid argument provided."
	case errors.Is(err, ErrUnauthorized):
		return "Error: Authentication failed."
	case errors.Is(err, ErrPermissionDenied):
		return "Error: Permission denied."
	case errors.Is(err, ErrUnavailable):
		return "Error: Server unavailable."
	case errors.Is(err, ErrResourceExhausted):
		return "Error: Server is busy, try again later."
	}

	var e *Error
	if errors.As(err, &e) {
		return "An unexpected error occurred: " + e.Message
	}
	return "An unexpected error occurred: " + err.Error()
}
