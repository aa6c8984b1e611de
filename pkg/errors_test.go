package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	cause := errors.New("boom")

	e := NewDomainError("CATALOG_UNAVAILABLE", "Catalog unavailable", cause, http.StatusServiceUnavailable)
	got := e.ToHTTPError()
	if got.Code != "CATALOG_UNAVAILABLE" || got.Detail != "" {
		t.Fatalf("unexpected http error: %+v", got)
	}
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}

	e2 := NewDomainError("INVALID_REQUEST", "Invalid request", cause, http.StatusBadRequest)
	if e2.ToHTTPError().Detail != "boom" {
		t.Fatalf("expected detail for 4xx, got %+v", e2.ToHTTPError())
	}

	e3 := NewDomainErrorSimple("X", "y", 0)
	if e3.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected default 500, got %d", e3.HTTPStatus)
	}
	if e3.Error() != "X: y" {
		t.Fatalf("unexpected message %q", e3.Error())
	}
}
