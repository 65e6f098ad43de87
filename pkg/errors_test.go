package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestDomainError_IsMatchesWrappedSentinel(t *testing.T) {
	sentinel := NewDomainError(KindStateConflict, "not eligible for release")
	wrapped := WrapDomainError(KindStateConflict, "not eligible for release", errors.New("conditional check failed"))

	if !errors.Is(wrapped, sentinel) {
		t.Fatal("wrapped variant must match its sentinel")
	}
	if errors.Is(wrapped, NewDomainError(KindStateConflict, "different message")) {
		t.Fatal("different message must not match")
	}
	if errors.Is(wrapped, NewDomainError(KindValidation, "not eligible for release")) {
		t.Fatal("different kind must not match")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(NewDomainError(KindNotFound, "booking not found")); got != KindNotFound {
		t.Fatalf("expected not_found, got %s", got)
	}
	if got := KindOf(errors.New("plain")); got != KindInternal {
		t.Fatalf("expected internal, got %s", got)
	}
}

func TestFromError_StatusMapping(t *testing.T) {
	cases := []struct {
		kind   ErrorKind
		status int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindAuthentication, http.StatusUnauthorized},
		{KindAuthorization, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindStateConflict, http.StatusConflict},
		{KindGateway, http.StatusBadGateway},
		{KindIndeterminate, http.StatusGatewayTimeout},
	}
	for _, c := range cases {
		appErr := FromError(NewDomainError(c.kind, "boom"))
		if appErr.HTTPStatus != c.status {
			t.Errorf("%s: got %d, want %d", c.kind, appErr.HTTPStatus, c.status)
		}
		if appErr.ToHTTPError().Error != "boom" {
			t.Errorf("%s: message must be passed through", c.kind)
		}
	}
}

func TestFromError_HidesInternalCause(t *testing.T) {
	appErr := FromError(errors.New("pk violation on table bookings"))
	if appErr.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", appErr.HTTPStatus)
	}
	if appErr.ToHTTPError().Error != "an internal error occurred" {
		t.Fatalf("internal cause leaked: %q", appErr.ToHTTPError().Error)
	}
}
