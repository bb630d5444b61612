package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/promptdeck/promptdeck/internal/app"
	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/utils"
	"github.com/promptdeck/promptdeck/models"
)

func (h *Handler) listCommands(w http.ResponseWriter, r *http.Request) {
	records, err := h.services.CommandService.ListActive(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) getCommand(w http.ResponseWriter, r *http.Request) {
	record, err := h.services.CommandService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) createCommand(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var input models.NewCommand
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user id in context on an authorized route")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	record, err := h.services.CommandService.Create(r.Context(), input, userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) patchCommand(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var patch models.CommandPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	record, err := h.services.CommandService.Patch(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) deleteCommand(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CommandService.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) recordView(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CommandService.RecordView(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) recordCopy(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CommandService.RecordCopy(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
