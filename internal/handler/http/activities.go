package http

import (
	"encoding/json"
	"net/http"

	"github.com/promptdeck/promptdeck/internal/app"
	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/utils"
	"github.com/promptdeck/promptdeck/models"
)

// logActivity accepts one analytics entry. The user id always comes from the
// validated token, never from the body; anonymous visitors produce rows with
// a NULL user.
func (h *Handler) logActivity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var entry models.ActivityEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	entry.UserID = 0
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		entry.UserID = userID
	}

	if err := h.services.ActivityService.Log(r.Context(), entry); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
