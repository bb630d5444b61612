package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptdeck/promptdeck/internal/app"
	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/models"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) Gateway {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	gw, err := NewHTTPGateway(config.Client{
		ServerURL:      srv.URL,
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return gw
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestHTTPGateway_LoginStoresToken(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		require.Equal(t, "ada@example.com", user.Email)

		writeJSON(t, w, http.StatusOK, map[string]any{
			"token":   "signed-token",
			"user_id": 7,
			"email":   "ada@example.com",
		})
	})

	identity, err := gw.Login(context.Background(), models.User{Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), identity.UserID)
	assert.Equal(t, "ada@example.com", identity.Email)
	assert.Equal(t, "signed-token", gw.Token())
}

func TestHTTPGateway_LoginRejected(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, app.MsgInvalidEmailPassword, http.StatusUnauthorized)
	})

	_, err := gw.Login(context.Background(), models.User{Email: "ada@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, gw.Token())
}

func TestHTTPGateway_FetchCommands(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/commands/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.CommandRecord{
			{ID: "cmd-2", Title: "Newer"},
			{ID: "cmd-1", Title: "Older"},
		})
	})

	records, err := gw.FetchCommands(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "cmd-2", records[0].ID)
}

func TestHTTPGateway_CreateCommandSendsToken(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer signed-token", r.Header.Get("Authorization"))

		var input models.NewCommand
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))

		writeJSON(t, w, http.StatusCreated, models.CommandRecord{ID: "cmd-1", Title: input.Title})
	})
	gw.SetToken("signed-token")

	record, err := gw.CreateCommand(context.Background(), models.NewCommand{Title: "Summarize"})
	require.NoError(t, err)
	assert.Equal(t, "cmd-1", record.ID)
}

func TestHTTPGateway_CreateCommandDuplicate(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, app.MsgDuplicateTitle, http.StatusConflict)
	})
	gw.SetToken("signed-token")

	_, err := gw.CreateCommand(context.Background(), models.NewCommand{Title: "Summarize"})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestHTTPGateway_GetCommandNotFound(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, app.MsgCommandNotFound, http.StatusNotFound)
	})

	_, err := gw.GetCommand(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPGateway_Counters(t *testing.T) {
	var paths []string
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, gw.RecordView(context.Background(), "cmd-1"))
	require.NoError(t, gw.RecordCopy(context.Background(), "cmd-1"))

	assert.Equal(t, []string{"/api/commands/cmd-1/views", "/api/commands/cmd-1/copies"}, paths)
}

func TestHTTPGateway_Favorites(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			writeJSON(t, w, http.StatusOK, []string{"cmd-1"})
		case r.Method == http.MethodPost:
			http.Error(w, app.MsgAlreadyFavorite, http.StatusConflict)
		case r.Method == http.MethodDelete:
			http.Error(w, app.MsgFavoriteNotFound, http.StatusNotFound)
		}
	})
	gw.SetToken("signed-token")

	ids, err := gw.ListFavorites(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"cmd-1"}, ids)

	_, err = gw.AddFavorite(context.Background(), "cmd-1")
	require.ErrorIs(t, err, ErrDuplicate)

	err = gw.RemoveFavorite(context.Background(), "cmd-1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPGateway_LogActivity(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		var entry models.ActivityEntry
		require.NoError(t, json.NewDecoder(r.Body).Decode(&entry))
		require.Equal(t, models.ActivityCopy, entry.ActivityType)
		w.WriteHeader(http.StatusAccepted)
	})

	err := gw.LogActivity(context.Background(), models.ActivityEntry{
		CommandID:    "cmd-1",
		ActivityType: models.ActivityCopy,
	})
	require.NoError(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain host", in: "localhost:8080", want: "http://localhost:8080"},
		{name: "scheme kept", in: "https://api.example.com/", want: "https://api.example.com"},
		{name: "whitespace trimmed", in: "  localhost:8080  ", want: "http://localhost:8080"},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapHTTPError_MissingRequiredField(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, app.MsgMissingRequiredField, http.StatusBadRequest)
	})
	gw.SetToken("signed-token")

	_, err := gw.CreateCommand(context.Background(), models.NewCommand{})
	require.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestMapHTTPError_OtherBadRequestPassesThrough(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
	})
	gw.SetToken("signed-token")

	_, err := gw.CreateCommand(context.Background(), models.NewCommand{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingRequiredField)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}
