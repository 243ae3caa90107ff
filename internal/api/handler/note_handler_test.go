package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mdnotes/notes-api/internal/api/middleware"
	"github.com/mdnotes/notes-api/internal/core/domain"
	"github.com/mdnotes/notes-api/internal/core/ports"
)

type stubNoteService struct {
	listFn   func(ctx context.Context, ownerID string) ([]domain.Note, error)
	getFn    func(ctx context.Context, noteID, ownerID string) (*domain.Note, error)
	createFn func(ctx context.Context, input ports.CreateNoteInput) (*domain.Note, error)
	updateFn func(ctx context.Context, input ports.UpdateNoteInput) (*domain.Note, error)
	deleteFn func(ctx context.Context, noteID, ownerID string) error
}

func (s *stubNoteService) List(ctx context.Context, ownerID string) ([]domain.Note, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubNoteService) Get(ctx context.Context, noteID, ownerID string) (*domain.Note, error) {
	return s.getFn(ctx, noteID, ownerID)
}

func (s *stubNoteService) Create(ctx context.Context, input ports.CreateNoteInput) (*domain.Note, error) {
	return s.createFn(ctx, input)
}

func (s *stubNoteService) Update(ctx context.Context, input ports.UpdateNoteInput) (*domain.Note, error) {
	return s.updateFn(ctx, input)
}

func (s *stubNoteService) Delete(ctx context.Context, noteID, ownerID string) error {
	return s.deleteFn(ctx, noteID, ownerID)
}

// newNoteContext builds an echo context with the user id the Auth middleware
// would have injected.
func newNoteContext(t *testing.T, method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set(middleware.UserIDKey, userID)
	}
	return c, rec
}

func TestNoteHandler_List(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	stub := &stubNoteService{
		listFn: func(_ context.Context, ownerID string) ([]domain.Note, error) {
			if ownerID != "u1" {
				t.Fatalf("expected owner u1, got %s", ownerID)
			}
			return []domain.Note{
				{ID: "n2", Title: "newer", OwnerID: "u1", CreatedAt: now, UpdatedAt: now.Add(time.Hour)},
				{ID: "n1", Title: "older", OwnerID: "u1", CreatedAt: now, UpdatedAt: now},
			}, nil
		},
	}
	handler := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodGet, "/notes", "", "u1")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var notes []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &notes); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(notes) != 2 || notes[0]["id"] != "n2" || notes[1]["id"] != "n1" {
		t.Fatalf("unexpected order: %+v", notes)
	}
}

func TestNoteHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubNoteService{
		listFn: func(context.Context, string) ([]domain.Note, error) {
			return []domain.Note{}, nil
		},
	}
	handler := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodGet, "/notes", "", "u1")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty JSON array, got %s", body)
	}
}

func TestNoteHandler_MissingGuardContext(t *testing.T) {
	handler := NewNoteHandler(&stubNoteService{})

	c, _ := newNoteContext(t, http.MethodGet, "/notes", "", "")
	err := handler.List(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestNoteHandler_Create(t *testing.T) {
	stub := &stubNoteService{
		createFn: func(_ context.Context, input ports.CreateNoteInput) (*domain.Note, error) {
			if input.OwnerID != "u1" || input.Title != "A" || input.Content != "B" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Note{ID: "n1", Title: "A", Content: "B", OwnerID: "u1"}, nil
		},
	}
	handler := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodPost, "/notes", `{"title":"A","content":"B"}`, "u1")
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "n1" || resp["owner"] != "u1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestNoteHandler_Create_EmptyFields(t *testing.T) {
	stub := &stubNoteService{
		createFn: func(context.Context, ports.CreateNoteInput) (*domain.Note, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil
		},
	}
	handler := NewNoteHandler(stub)

	for _, body := range []string{`{"title":"","content":"B"}`, `{"title":"A"}`, `{}`} {
		c, _ := newNoteContext(t, http.MethodPost, "/notes", body, "u1")
		err := handler.Create(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 HTTPError for %s, got %v", body, err)
		}
	}
}

func TestNoteHandler_Update(t *testing.T) {
	stub := &stubNoteService{
		updateFn: func(_ context.Context, input ports.UpdateNoteInput) (*domain.Note, error) {
			if input.NoteID != "n1" || input.OwnerID != "u1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.Title != "A2" || input.Content != "" {
				t.Fatalf("expected partial update with title only, got %+v", input)
			}
			return &domain.Note{ID: "n1", Title: "A2", Content: "B", OwnerID: "u1"}, nil
		},
	}
	handler := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodPut, "/notes/n1", `{"title":"A2"}`, "u1")
	c.SetParamNames("id")
	c.SetParamValues("n1")
	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["title"] != "A2" || resp["content"] != "B" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestNoteHandler_Update_NotOwner(t *testing.T) {
	stub := &stubNoteService{
		updateFn: func(context.Context, ports.UpdateNoteInput) (*domain.Note, error) {
			return nil, domain.ErrNotOwner
		},
	}
	handler := NewNoteHandler(stub)

	c, _ := newNoteContext(t, http.MethodPut, "/notes/n1", `{"title":"x"}`, "u2")
	c.SetParamNames("id")
	c.SetParamValues("n1")

	if err := handler.Update(c); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner to propagate, got %v", err)
	}
}

func TestNoteHandler_Delete(t *testing.T) {
	stub := &stubNoteService{
		deleteFn: func(_ context.Context, noteID, ownerID string) error {
			if noteID != "n1" || ownerID != "u1" {
				t.Fatalf("unexpected args: %s %s", noteID, ownerID)
			}
			return nil
		},
	}
	handler := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodDelete, "/notes/n1", "", "u1")
	c.SetParamNames("id")
	c.SetParamValues("n1")
	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] == "" {
		t.Fatalf("expected confirmation message, got %+v", resp)
	}
}

func TestNoteHandler_Delete_NotFound(t *testing.T) {
	stub := &stubNoteService{
		deleteFn: func(context.Context, string, string) error {
			return domain.ErrNoteNotFound
		},
	}
	handler := NewNoteHandler(stub)

	c, _ := newNoteContext(t, http.MethodDelete, "/notes/ghost", "", "u1")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := handler.Delete(c); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound to propagate, got %v", err)
	}
}

func TestNoteHandler_Get(t *testing.T) {
	stub := &stubNoteService{
		getFn: func(_ context.Context, noteID, ownerID string) (*domain.Note, error) {
			if noteID != "n1" || ownerID != "u1" {
				t.Fatalf("unexpected args: %s %s", noteID, ownerID)
			}
			return &domain.Note{ID: "n1", Title: "A", Content: "B", OwnerID: "u1"}, nil
		},
	}
	handler := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodGet, "/notes/n1", "", "u1")
	c.SetParamNames("id")
	c.SetParamValues("n1")
	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
