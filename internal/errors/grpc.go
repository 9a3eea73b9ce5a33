package errors

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// HandleError converts service errors to a gRPC status for client responses.
// The status carries the human-readable message; an ErrorInfo detail carries
// the machine-readable code and domain.
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		st := status.New(appErr.Code.GRPCCode(), appErr.Message)
		detailed, derr := st.WithDetails(&errdetails.ErrorInfo{
			Reason: string(appErr.Code),
			Domain: Domain,
		})
		if derr != nil {
			// If details cannot be attached, the basic status still carries
			// the code and message.
			return st.Err()
		}
		return detailed.Err()
	}

	// Unknown error - return internal with generic message
	return status.Error(codes.Internal, "an unexpected error occurred")
}

// GetCode extracts the error code from any error.
// Returns CodeUnknown if the error is not a service error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}
