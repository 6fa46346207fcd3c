package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeCellPolicyViolation, "rejected inc"))
	if !stderrors.Is(err, New(CodeCellPolicyViolation, "")) {
		t.Fatal("expected match by code")
	}
	if stderrors.Is(err, New(CodeCellUseAfterDispose, "")) {
		t.Fatal("expected different codes not to match")
	}
	if got := GetCode(err); got != CodeCellPolicyViolation {
		t.Fatalf("GetCode() = %s, want %s", got, CodeCellPolicyViolation)
	}
	if got := GetCode(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("GetCode(plain) = %s, want %s", got, CodeUnknown)
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := stderrors.New("yaml: bad indent")
	err := Wrap(CodePolicyInvalid, "load policy", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
}

func TestGRPCCodeMapping(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeCellPolicyViolation, codes.FailedPrecondition},
		{CodeCellUseAfterDispose, codes.FailedPrecondition},
		{CodeCellDoubleDispose, codes.FailedPrecondition},
		{CodeCellPolicyRejectsInitial, codes.InvalidArgument},
		{CodeCellForeignToken, codes.InvalidArgument},
		{CodeCellTokenAhead, codes.InvalidArgument},
		{CodePolicyUnknown, codes.InvalidArgument},
		{CodeCellValueOverflow, codes.OutOfRange},
		{CodeNotFound, codes.NotFound},
		{CodeUnknown, codes.Internal},
	}
	for _, tt := range tests {
		if got := tt.code.GRPCCode(); got != tt.want {
			t.Fatalf("%s.GRPCCode() = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestToGRPCStatusRoundTrip(t *testing.T) {
	err := WithMetadata(CodeCellPolicyViolation, "policy rejected dec", map[string]string{
		"Policy":    "increment-only",
		"Operation": "dec",
	})
	grpcErr := err.ToGRPCStatus("pt-BR")

	st := status.Convert(grpcErr)
	if st.Code() != codes.FailedPrecondition {
		t.Fatalf("code = %v, want %v", st.Code(), codes.FailedPrecondition)
	}
	var localized *errdetails.LocalizedMessage
	for _, d := range st.Details() {
		if lm, ok := d.(*errdetails.LocalizedMessage); ok {
			localized = lm
		}
	}
	if localized == nil {
		t.Fatal("expected localized message detail")
	}
	if localized.GetLocale() != "pt-BR" {
		t.Fatalf("locale = %q, want pt-BR", localized.GetLocale())
	}
	if want := "A política increment-only rejeitou dec"; localized.GetMessage() != want {
		t.Fatalf("message = %q, want %q", localized.GetMessage(), want)
	}

	back := FromGRPCStatus(grpcErr)
	if back == nil {
		t.Fatal("expected domain error from status")
	}
	if back.Code != CodeCellPolicyViolation {
		t.Fatalf("code = %s, want %s", back.Code, CodeCellPolicyViolation)
	}
	if back.Metadata["Policy"] != "increment-only" {
		t.Fatalf("metadata = %v", back.Metadata)
	}
}

func TestFromGRPCStatusWithoutDetails(t *testing.T) {
	if got := FromGRPCStatus(status.Error(codes.Unavailable, "down")); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestHandleError(t *testing.T) {
	if HandleError(nil, "") != nil {
		t.Fatal("nil error should stay nil")
	}
	err := HandleError(New(CodeNotFound, "cell missing"), "")
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.NotFound)
	}
	if got := status.Code(HandleError(stderrors.New("disk on fire"), "en-US")); got != codes.Internal {
		t.Fatalf("code = %v, want %v", got, codes.Internal)
	}
	if got := status.Code(HandleError(context.Canceled, "en-US")); got != codes.Canceled {
		t.Fatalf("code = %v, want %v", got, codes.Canceled)
	}
}

func TestLocaleFromContext(t *testing.T) {
	if got := LocaleFromContext(context.Background()); got != DefaultLocale {
		t.Fatalf("locale = %q, want %q", got, DefaultLocale)
	}
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("accept-language", "pt-BR"))
	if got := LocaleFromContext(ctx); got != "pt-BR" {
		t.Fatalf("locale = %q, want pt-BR", got)
	}
	if !IsCode(New(CodeNotFound, "x"), CodeNotFound) {
		t.Fatal("expected IsCode match")
	}
}
