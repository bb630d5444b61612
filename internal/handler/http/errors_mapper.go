package http

import (
	"errors"
	"net/http"

	"github.com/promptdeck/promptdeck/internal/app"
	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/service"
	"github.com/promptdeck/promptdeck/internal/store"
)

// errorResponse pairs the HTTP status with the canonical body the client
// gateway classifies on.
type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, app.MsgInvalidDataProvided},
	store.ErrMissingRequiredField:  {http.StatusBadRequest, app.MsgMissingRequiredField},

	service.ErrWrongPassword:           {http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	store.ErrNoUserWasFound:            {http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	store.ErrPermissionDenied: {http.StatusForbidden, app.MsgPermissionDenied},

	store.ErrCommandNotFound:  {http.StatusNotFound, app.MsgCommandNotFound},
	store.ErrFavoriteNotFound: {http.StatusNotFound, app.MsgFavoriteNotFound},

	store.ErrEmailAlreadyExists: {http.StatusConflict, app.MsgEmailAlreadyExists},
	store.ErrDuplicateTitle:     {http.StatusConflict, app.MsgDuplicateTitle},
	store.ErrAlreadyFavorite:    {http.StatusConflict, app.MsgAlreadyFavorite},
}

// respondError writes the canonical response for err. Unknown errors become
// an opaque 500; the detail stays in the server log only.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	for target, response := range errorResponseMap {
		if errors.Is(err, target) {
			log.Warn().Err(err).Int("status", response.status).Msg("request rejected")
			http.Error(w, response.message, response.status)
			return
		}
	}

	log.Err(err).Msg("unexpected error")
	http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
}
