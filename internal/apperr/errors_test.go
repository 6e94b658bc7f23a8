package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCode_HTTPStatus(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeConflict, http.StatusConflict},
		{CodeNotFound, http.StatusNotFound},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeInternal, http.StatusInternalServerError},
		{Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.code.HTTPStatus(); got != tc.want {
			t.Errorf("%s.HTTPStatus() = %d; want %d", tc.code, got, tc.want)
		}
	}
}

func TestError_IsByCode(t *testing.T) {
	err := fmt.Errorf("create category: %w", Conflict("category %q already exists", "legs"))

	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected wrapped conflict to match ErrConflict")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("conflict must not match ErrNotFound")
	}
	if GetCode(err) != CodeConflict {
		t.Fatalf("GetCode = %s; want CONFLICT", GetCode(err))
	}
	if PublicMessage(err) != `category "legs" already exists` {
		t.Fatalf("unexpected public message %q", PublicMessage(err))
	}
}

func TestWrap_UnwrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(CodeInternal, "save log", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable through Unwrap")
	}
	if err.Error() != "save log: disk full" {
		t.Fatalf("unexpected Error() %q", err.Error())
	}
	if PublicMessage(err) != "internal server error" {
		t.Fatalf("internal errors must not leak, got %q", PublicMessage(err))
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := GetCode(errors.New("boom")); got != CodeInternal {
		t.Fatalf("GetCode(plain) = %s; want INTERNAL", got)
	}
	if !IsCode(Forbidden("nope"), CodeForbidden) {
		t.Fatalf("IsCode should match forbidden")
	}
}
