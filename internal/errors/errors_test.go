package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCCodeMapping(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeValidation, codes.InvalidArgument},
		{CodeNotFound, codes.NotFound},
		{CodeDuplicateEmail, codes.AlreadyExists},
		{CodeStorage, codes.Internal},
		{CodeUnknown, codes.Internal},
		{Code("BOGUS"), codes.Internal},
	}
	for _, tt := range tests {
		if got := tt.code.GRPCCode(); got != tt.want {
			t.Fatalf("code %s: expected %v, got %v", tt.code, tt.want, got)
		}
	}
}

func TestHandleErrorNil(t *testing.T) {
	if err := HandleError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestHandleErrorServiceError(t *testing.T) {
	err := HandleError(New(CodeNotFound, "Character with ID abc not found"))

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if st.Code() != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", st.Code())
	}
	if st.Message() != "Character with ID abc not found" {
		t.Fatalf("unexpected message %q", st.Message())
	}

	var info *errdetails.ErrorInfo
	for _, detail := range st.Details() {
		if ei, ok := detail.(*errdetails.ErrorInfo); ok {
			info = ei
		}
	}
	if info == nil {
		t.Fatal("expected ErrorInfo detail")
	}
	if info.Reason != string(CodeNotFound) {
		t.Fatalf("expected reason %s, got %s", CodeNotFound, info.Reason)
	}
	if info.Domain != Domain {
		t.Fatalf("expected domain %s, got %s", Domain, info.Domain)
	}
}

func TestHandleErrorWrappedCause(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := Wrap(CodeStorage, "Internal error: connection reset", cause)

	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to match")
	}

	st, ok := status.FromError(HandleError(err))
	if !ok || st.Code() != codes.Internal {
		t.Fatalf("expected Internal status, got %v", st)
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	st, ok := status.FromError(HandleError(stderrors.New("boom")))
	if !ok {
		t.Fatal("expected status error")
	}
	if st.Code() != codes.Internal {
		t.Fatalf("expected Internal, got %v", st.Code())
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("handler: %w", New(CodeValidation, "Name is required"))
	if !IsCode(err, CodeValidation) {
		t.Fatal("expected CodeValidation")
	}
	if IsCode(err, CodeNotFound) {
		t.Fatal("did not expect CodeNotFound")
	}
	if GetCode(stderrors.New("plain")) != CodeUnknown {
		t.Fatal("expected CodeUnknown for plain error")
	}
}
