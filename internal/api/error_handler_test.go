package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mdnotes/notes-api/internal/core/domain"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/notes/n1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrNoteNotFound, http.StatusNotFound},
		// Not-owner collapses into 401, not 403; clients depend on it.
		{domain.ErrNotOwner, http.StatusUnauthorized},
		{domain.ErrMissingFields, http.StatusBadRequest},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
	}

	for _, tc := range cases {
		rec, body := render(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body["error"] == "" {
			t.Fatalf("%v: expected error message in envelope", tc.err)
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("find note"), domain.ErrNoteNotFound)
	rec, _ := render(t, wrapped)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped sentinel, got %d", rec.Code)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := render(t, echo.NewHTTPError(http.StatusUnauthorized, "invalid token"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["error"] != "invalid token" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}

func TestErrorHandler_UnknownErrorIsGeneric500(t *testing.T) {
	rec, body := render(t, errors.New("connection reset by peer"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	// Internal details must never leak to the client.
	if body["error"] != "internal server error" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}
