// Package errors provides structured error handling for the characters service.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unexpected failure.
	CodeUnknown Code = "UNKNOWN"

	// CodeValidation indicates client input that violates a field rule.
	CodeValidation Code = "VALIDATION"

	// CodeNotFound indicates a valid request with no matching character.
	CodeNotFound Code = "NOT_FOUND"

	// CodeDuplicateEmail indicates a violation of the unique email index.
	CodeDuplicateEmail Code = "DUPLICATE_EMAIL"

	// CodeStorage indicates an unexpected persistence-layer failure.
	CodeStorage Code = "STORAGE"
)

// GRPCCode maps the error code to its transport status code.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeValidation:
		return codes.InvalidArgument
	case CodeNotFound:
		return codes.NotFound
	case CodeDuplicateEmail:
		return codes.AlreadyExists
	case CodeStorage:
		return codes.Internal
	default:
		return codes.Internal
	}
}
