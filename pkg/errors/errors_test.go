package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "Without cause",
			err:  New(ErrCodeValidation, "bad input"),
			want: "VALIDATION_ERROR: bad input",
		},
		{
			name: "With cause",
			err:  Wrap(stderrors.New("dial tcp: refused"), ErrCodeStoreUnavailable, "get key"),
			want: "STORE_UNAVAILABLE: get key (dial tcp: refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs_UnwrapsCause(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := fmt.Errorf("outer: %w", Wrap(sentinel, ErrCodeInternalError, "inner"))

	if !Is(err, sentinel) {
		t.Error("Is() = false, want true for wrapped sentinel")
	}

	var appErr *AppError
	if !As(err, &appErr) {
		t.Fatal("As() = false, want true")
	}
	if appErr.Code != ErrCodeInternalError {
		t.Errorf("Code = %q, want %q", appErr.Code, ErrCodeInternalError)
	}
}

func TestHasCode(t *testing.T) {
	inner := New(ErrCodeDecode, "bad json")
	outer := Wrap(inner, ErrCodeStoreUnavailable, "load round")

	tests := []struct {
		name string
		err  error
		code string
		want bool
	}{
		{"Outer code", outer, ErrCodeStoreUnavailable, true},
		{"Inner code", outer, ErrCodeDecode, true},
		{"Absent code", outer, ErrCodeProviderExhausted, false},
		{"Plain error", stderrors.New("plain"), ErrCodeDecode, false},
		{"Nil error", nil, ErrCodeDecode, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}
