package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mdnotes/notes-api/internal/api/metrics"
	"github.com/mdnotes/notes-api/internal/core/ports"
)

// NoteHandler handles HTTP requests for note operations. Every route is
// behind the Auth middleware; the owner id always comes from the verified
// token, never from the payload.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// List handles GET /notes.
//
// @Summary      List the caller's notes, most recently updated first
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   noteResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	notes, err := h.service.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toNoteResponses(notes))
}

// Get handles GET /notes/:id.
//
// @Summary      Get a single note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note id"
// @Success      200  {object}  noteResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /notes/{id} [get]
func (h *NoteHandler) Get(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	note, err := h.service.Get(c.Request().Context(), c.Param("id"), ownerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toNoteResponse(*note))
}

// Create handles POST /notes.
//
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNoteRequest  true  "Note title and markdown content"
// @Success      201   {object}  noteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.service.Create(c.Request().Context(), ports.CreateNoteInput{
		OwnerID: ownerID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	metrics.NotesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toNoteResponse(*note))
}

// Update handles PUT /notes/:id.
//
// @Summary      Update a note's title and/or content
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Note id"
// @Param        body  body      updateNoteRequest  true  "Fields to replace; empty fields are left unchanged"
// @Success      200   {object}  noteResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /notes/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	note, err := h.service.Update(c.Request().Context(), ports.UpdateNoteInput{
		NoteID:  c.Param("id"),
		OwnerID: ownerID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	metrics.NotesUpdatedTotal.Inc()
	return c.JSON(http.StatusOK, toNoteResponse(*note))
}

// Delete handles DELETE /notes/:id.
//
// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note id"
// @Success      200  {object}  deleteNoteResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), ownerID); err != nil {
		return err
	}

	metrics.NotesDeletedTotal.Inc()
	return c.JSON(http.StatusOK, deleteNoteResponse{Message: "note removed"})
}
