package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/promptdeck/promptdeck/internal/app"
	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/mock"
	"github.com/promptdeck/promptdeck/internal/service"
	"github.com/promptdeck/promptdeck/internal/store"
	"github.com/promptdeck/promptdeck/internal/validators"
	"github.com/promptdeck/promptdeck/models"
)

// testRepos bundles the repository mocks behind a fully wired handler, so
// tests exercise the real router, middleware, and service layer.
type testRepos struct {
	users      *mock.MockUserRepository
	commands   *mock.MockCommandRepository
	favorites  *mock.MockFavoriteRepository
	activities *mock.MockActivityRepository
}

func newTestRouter(t *testing.T) (*chi.Mux, *service.Services, testRepos) {
	t.Helper()
	return newTestRouterWithKey(t, "test-sign-key")
}

func newTestRouterWithKey(t *testing.T, signKey string) (*chi.Mux, *service.Services, testRepos) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repos := testRepos{
		users:      mock.NewMockUserRepository(ctrl),
		commands:   mock.NewMockCommandRepository(ctrl),
		favorites:  mock.NewMockFavoriteRepository(ctrl),
		activities: mock.NewMockActivityRepository(ctrl),
	}

	log := logger.Nop()
	cfg := config.App{
		TokenSignKey:  signKey,
		TokenIssuer:   "promptdeck-test",
		TokenDuration: time.Hour,
	}

	services := &service.Services{
		AuthService:     service.NewAuthService(repos.users, cfg, log),
		CommandService:  service.NewCommandService(repos.commands, validators.NewCommandValidator(), log),
		FavoriteService: service.NewFavoriteService(repos.favorites, log),
		ActivityService: service.NewActivityService(repos.activities, log),
	}

	return NewHandler(services, log).Init(), services, repos
}

func bearerFor(t *testing.T, services *service.Services, userID int64) string {
	t.Helper()

	token, err := services.AuthService.CreateToken(context.Background(), models.User{UserID: userID})
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

func doRequest(router *chi.Mux, method, target, body, authorization string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	request := httptest.NewRequest(method, target, reader)
	if authorization != "" {
		request.Header.Set("Authorization", authorization)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestHandler_Register(t *testing.T) {
	t.Run("returns a token for a new user", func(t *testing.T) {
		router, _, repos := newTestRouter(t)

		repos.users.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
				user.UserID = 42
				return user, nil
			})

		resp := doRequest(router, http.MethodPost, "/api/auth/register",
			`{"email":"ada@example.com","password":"secret","name":"Ada"}`, "")

		require.Equal(t, http.StatusCreated, resp.Code)
		require.True(t, strings.HasPrefix(resp.Header().Get("Authorization"), "Bearer "))

		var body authResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		require.Equal(t, int64(42), body.UserID)
		require.NotEmpty(t, body.Token)
	})

	t.Run("duplicate email", func(t *testing.T) {
		router, _, repos := newTestRouter(t)

		repos.users.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			Return(models.User{}, store.ErrEmailAlreadyExists)

		resp := doRequest(router, http.MethodPost, "/api/auth/register",
			`{"email":"ada@example.com","password":"secret"}`, "")

		require.Equal(t, http.StatusConflict, resp.Code)
		require.Equal(t, app.MsgEmailAlreadyExists, strings.TrimSpace(resp.Body.String()))
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		resp := doRequest(router, http.MethodPost, "/api/auth/register", `{"email":`, "")

		require.Equal(t, http.StatusBadRequest, resp.Code)
		require.Equal(t, app.MsgInvalidDataProvided, strings.TrimSpace(resp.Body.String()))
	})
}

func TestHandler_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := models.User{UserID: 7, Email: "ada@example.com", PasswordHash: string(hash)}

	t.Run("valid credentials", func(t *testing.T) {
		router, _, repos := newTestRouter(t)

		repos.users.EXPECT().
			FindUserByEmail(gomock.Any(), "ada@example.com").
			Return(stored, nil)

		resp := doRequest(router, http.MethodPost, "/api/auth/login",
			`{"email":"ada@example.com","password":"secret"}`, "")

		require.Equal(t, http.StatusOK, resp.Code)

		var body authResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		require.Equal(t, int64(7), body.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		router, _, repos := newTestRouter(t)

		repos.users.EXPECT().
			FindUserByEmail(gomock.Any(), "ada@example.com").
			Return(stored, nil)

		resp := doRequest(router, http.MethodPost, "/api/auth/login",
			`{"email":"ada@example.com","password":"not it"}`, "")

		require.Equal(t, http.StatusUnauthorized, resp.Code)
		require.Equal(t, app.MsgInvalidEmailPassword, strings.TrimSpace(resp.Body.String()))
	})

	t.Run("unknown email", func(t *testing.T) {
		router, _, repos := newTestRouter(t)

		repos.users.EXPECT().
			FindUserByEmail(gomock.Any(), "ghost@example.com").
			Return(models.User{}, store.ErrNoUserWasFound)

		resp := doRequest(router, http.MethodPost, "/api/auth/login",
			`{"email":"ghost@example.com","password":"secret"}`, "")

		require.Equal(t, http.StatusUnauthorized, resp.Code)
		require.Equal(t, app.MsgInvalidEmailPassword, strings.TrimSpace(resp.Body.String()))
	})
}

func TestHandler_ListCommands(t *testing.T) {
	router, _, repos := newTestRouter(t)

	records := []models.CommandRecord{
		{ID: "cmd-2", Title: "Newer"},
		{ID: "cmd-1", Title: "Older"},
	}
	repos.commands.EXPECT().ListActive(gomock.Any()).Return(records, nil)

	resp := doRequest(router, http.MethodGet, "/api/commands/", "", "")

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "application/json", resp.Header().Get("Content-Type"))

	var body []models.CommandRecord
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body, 2)
	require.Equal(t, "cmd-2", body[0].ID)
}

func TestHandler_GetCommand(t *testing.T) {
	router, _, repos := newTestRouter(t)

	repos.commands.EXPECT().
		GetByID(gomock.Any(), "ghost").
		Return(models.CommandRecord{}, store.ErrCommandNotFound)

	resp := doRequest(router, http.MethodGet, "/api/commands/ghost", "", "")

	require.Equal(t, http.StatusNotFound, resp.Code)
	require.Equal(t, app.MsgCommandNotFound, strings.TrimSpace(resp.Body.String()))
}

func TestHandler_CreateCommand(t *testing.T) {
	const validBody = `{
		"title": "Summarize a document",
		"description": "Condenses a long document",
		"category": "writing",
		"level": "beginner",
		"prompt": "Summarize the following text:"
	}`

	t.Run("requires a token", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		resp := doRequest(router, http.MethodPost, "/api/commands/", validBody, "")

		require.Equal(t, http.StatusUnauthorized, resp.Code)
		require.Equal(t, app.MsgTokenIsExpiredOrInvalid, strings.TrimSpace(resp.Body.String()))
	})

	t.Run("creates with the token's user id", func(t *testing.T) {
		router, services, repos := newTestRouter(t)

		repos.commands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record *models.CommandRecord) error {
				require.Equal(t, int64(42), record.CreatedBy)
				return nil
			})

		resp := doRequest(router, http.MethodPost, "/api/commands/", validBody, bearerFor(t, services, 42))

		require.Equal(t, http.StatusCreated, resp.Code)

		var body models.CommandRecord
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		require.NotEmpty(t, body.ID)
	})

	t.Run("duplicate title", func(t *testing.T) {
		router, services, repos := newTestRouter(t)

		repos.commands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(store.ErrDuplicateTitle)

		resp := doRequest(router, http.MethodPost, "/api/commands/", validBody, bearerFor(t, services, 42))

		require.Equal(t, http.StatusConflict, resp.Code)
		require.Equal(t, app.MsgDuplicateTitle, strings.TrimSpace(resp.Body.String()))
	})

	t.Run("validation failure", func(t *testing.T) {
		router, services, _ := newTestRouter(t)

		resp := doRequest(router, http.MethodPost, "/api/commands/",
			`{"title":"   "}`, bearerFor(t, services, 42))

		require.Equal(t, http.StatusBadRequest, resp.Code)
		require.Equal(t, app.MsgInvalidDataProvided, strings.TrimSpace(resp.Body.String()))
	})
}

func TestHandler_PatchCommand(t *testing.T) {
	t.Run("applies the patch", func(t *testing.T) {
		router, services, repos := newTestRouter(t)

		repos.commands.EXPECT().
			Patch(gomock.Any(), "cmd-1", gomock.Any()).
			Return(models.CommandRecord{ID: "cmd-1", Title: "Renamed"}, nil)

		resp := doRequest(router, http.MethodPatch, "/api/commands/cmd-1",
			`{"title":"Renamed"}`, bearerFor(t, services, 42))

		require.Equal(t, http.StatusOK, resp.Code)

		var body models.CommandRecord
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		require.Equal(t, "Renamed", body.Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		router, services, repos := newTestRouter(t)

		repos.commands.EXPECT().
			Patch(gomock.Any(), "ghost", gomock.Any()).
			Return(models.CommandRecord{}, store.ErrCommandNotFound)

		resp := doRequest(router, http.MethodPatch, "/api/commands/ghost",
			`{"title":"Renamed"}`, bearerFor(t, services, 42))

		require.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestHandler_DeleteCommand(t *testing.T) {
	router, services, repos := newTestRouter(t)

	repos.commands.EXPECT().Deactivate(gomock.Any(), "cmd-1").Return(nil)

	resp := doRequest(router, http.MethodDelete, "/api/commands/cmd-1", "", bearerFor(t, services, 42))

	require.Equal(t, http.StatusNoContent, resp.Code)
}

func TestHandler_Counters(t *testing.T) {
	router, _, repos := newTestRouter(t)

	repos.commands.EXPECT().IncrementViews(gomock.Any(), "cmd-1").Return(nil)
	repos.commands.EXPECT().IncrementCopies(gomock.Any(), "cmd-1").Return(nil)

	resp := doRequest(router, http.MethodPost, "/api/commands/cmd-1/views", "", "")
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doRequest(router, http.MethodPost, "/api/commands/cmd-1/copies", "", "")
	require.Equal(t, http.StatusNoContent, resp.Code)
}

func TestHandler_Favorites(t *testing.T) {
	t.Run("list returns command ids", func(t *testing.T) {
		router, services, repos := newTestRouter(t)

		repos.favorites.EXPECT().
			ListCommandIDs(gomock.Any(), int64(7)).
			Return([]string{"cmd-1", "cmd-2"}, nil)

		resp := doRequest(router, http.MethodGet, "/api/favorites/", "", bearerFor(t, services, 7))

		require.Equal(t, http.StatusOK, resp.Code)

		var ids []string
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &ids))
		require.Equal(t, []string{"cmd-1", "cmd-2"}, ids)
	})

	t.Run("add", func(t *testing.T) {
		router, services, repos := newTestRouter(t)

		repos.favorites.EXPECT().
			Add(gomock.Any(), int64(7), "cmd-1").
			Return(models.Favorite{ID: 1, UserID: 7, CommandID: "cmd-1"}, nil)

		resp := doRequest(router, http.MethodPost, "/api/favorites/",
			`{"command_id":"cmd-1"}`, bearerFor(t, services, 7))

		require.Equal(t, http.StatusCreated, resp.Code)
	})

	t.Run("add twice", func(t *testing.T) {
		router, services, repos := newTestRouter(t)

		repos.favorites.EXPECT().
			Add(gomock.Any(), int64(7), "cmd-1").
			Return(models.Favorite{}, store.ErrAlreadyFavorite)

		resp := doRequest(router, http.MethodPost, "/api/favorites/",
			`{"command_id":"cmd-1"}`, bearerFor(t, services, 7))

		require.Equal(t, http.StatusConflict, resp.Code)
		require.Equal(t, app.MsgAlreadyFavorite, strings.TrimSpace(resp.Body.String()))
	})

	t.Run("remove missing", func(t *testing.T) {
		router, services, repos := newTestRouter(t)

		repos.favorites.EXPECT().
			Remove(gomock.Any(), int64(7), "cmd-1").
			Return(store.ErrFavoriteNotFound)

		resp := doRequest(router, http.MethodDelete, "/api/favorites/cmd-1", "", bearerFor(t, services, 7))

		require.Equal(t, http.StatusNotFound, resp.Code)
		require.Equal(t, app.MsgFavoriteNotFound, strings.TrimSpace(resp.Body.String()))
	})

	t.Run("requires a token", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		resp := doRequest(router, http.MethodGet, "/api/favorites/", "", "")

		require.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}

func TestHandler_LogActivity(t *testing.T) {
	t.Run("anonymous entries get a zero user id", func(t *testing.T) {
		router, _, repos := newTestRouter(t)

		repos.activities.EXPECT().
			Log(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry models.ActivityEntry) error {
				require.Zero(t, entry.UserID)
				require.Equal(t, models.ActivityView, entry.ActivityType)
				return nil
			})

		resp := doRequest(router, http.MethodPost, "/api/activities/",
			`{"command_id":"cmd-1","activity_type":"view","user_id":999}`, "")

		require.Equal(t, http.StatusAccepted, resp.Code)
	})

	t.Run("token overrides the body's user id", func(t *testing.T) {
		router, services, repos := newTestRouter(t)

		repos.activities.EXPECT().
			Log(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry models.ActivityEntry) error {
				require.Equal(t, int64(7), entry.UserID)
				return nil
			})

		resp := doRequest(router, http.MethodPost, "/api/activities/",
			`{"command_id":"cmd-1","activity_type":"copy","user_id":999}`, bearerFor(t, services, 7))

		require.Equal(t, http.StatusAccepted, resp.Code)
	})

	t.Run("unknown activity type", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		resp := doRequest(router, http.MethodPost, "/api/activities/",
			`{"command_id":"cmd-1","activity_type":"share"}`, "")

		require.Equal(t, http.StatusBadRequest, resp.Code)
		require.Equal(t, app.MsgInvalidDataProvided, strings.TrimSpace(resp.Body.String()))
	})
}

func TestHandler_TraceIDHeader(t *testing.T) {
	router, _, repos := newTestRouter(t)

	repos.commands.EXPECT().ListActive(gomock.Any()).Return([]models.CommandRecord{}, nil).Times(2)

	resp := doRequest(router, http.MethodGet, "/api/commands/", "", "")
	require.NotEmpty(t, resp.Header().Get(traceIDHeader))

	request := httptest.NewRequest(http.MethodGet, "/api/commands/", nil)
	request.Header.Set(traceIDHeader, "trace-123")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, "trace-123", recorder.Header().Get(traceIDHeader))
}
