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

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	commandIDs, err := h.services.FavoriteService.ListCommandIDs(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, commandIDs, http.StatusOK)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var favorite models.Favorite
	if err := json.NewDecoder(r.Body).Decode(&favorite); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.FavoriteService.Add(r.Context(), userID, favorite.CommandID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	err := h.services.FavoriteService.Remove(r.Context(), userID, chi.URLParam(r, "commandID"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
