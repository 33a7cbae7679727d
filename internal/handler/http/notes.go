// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-chi/chi/v5"
)

// listNotes serves GET /api/notes?order=created_at.desc|created_at.asc.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), models.ListNotesRequest{
		UserID: userID,
		Order:  models.SortOrder(r.URL.Query().Get("order")),
	})
	if err != nil {
		status := writeServiceError(w, err)
		log.Err(err).Str("func", "*Handler.listNotes").Int("status", status).Msg("listing notes failed")
		return
	}

	_, _ = utils.WriteJSON(w, notes, http.StatusOK)
}

// createNote serves POST /api/notes.
func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	var newNote models.NewNote
	if err := json.NewDecoder(r.Body).Decode(&newNote); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.NoteService.CreateNote(r.Context(), userID, newNote)
	if err != nil {
		status := writeServiceError(w, err)
		log.Err(err).Str("func", "*Handler.createNote").Int("status", status).Msg("note creation failed")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

// updateNote serves PATCH /api/notes/{id}. The body carries title and
// content; the id comes from the path and the owner from the token.
func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	var update models.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	update.ID = chi.URLParam(r, "id")
	update.UserID = userID

	updated, err := h.services.NoteService.UpdateNote(r.Context(), update)
	if err != nil {
		status := writeServiceError(w, err)
		log.Err(err).Str("func", "*Handler.updateNote").Int("status", status).Msg("note update failed")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteNote serves DELETE /api/notes/{id}.
func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	key := models.NoteKey{ID: chi.URLParam(r, "id"), UserID: userID}
	if err := h.services.NoteService.DeleteNote(r.Context(), key); err != nil {
		status := writeServiceError(w, err)
		log.Err(err).Str("func", "*Handler.deleteNote").Int("status", status).Msg("note deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// renderNote serves GET /api/notes/{id}/html.
func (h *Handler) renderNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	key := models.NoteKey{ID: chi.URLParam(r, "id"), UserID: userID}
	page, err := h.services.NoteService.RenderNoteHTML(r.Context(), key)
	if err != nil {
		status := writeServiceError(w, err)
		log.Err(err).Str("func", "*Handler.renderNote").Int("status", status).Msg("rendering note failed")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func (h *Handler) requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg(app.MsgNoUserIDProvided)
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
	}
	return userID, ok
}
