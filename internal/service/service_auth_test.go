package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/mock"
	"github.com/promptdeck/promptdeck/internal/store"
	"github.com/promptdeck/promptdeck/internal/utils"
	"github.com/promptdeck/promptdeck/models"
)

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)

	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "promptdeck-test",
		TokenDuration: time.Hour,
	}
	log := logger.Nop()

	return NewAuthService(userRepo, cfg, log), userRepo
}

func TestAuthService_RegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes password and persists user", func(t *testing.T) {
		auth, userRepo := newTestAuthService(t)

		var persisted models.User
		userRepo.EXPECT().
			CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
				persisted = user
				user.UserID = 42
				return user, nil
			})

		registered, err := auth.RegisterUser(ctx, models.User{
			Email:    "ada@example.com",
			Password: "correct horse",
			Name:     "Ada",
		})
		require.NoError(t, err)
		require.Equal(t, int64(42), registered.UserID)

		require.Empty(t, persisted.Password, "plaintext password must not reach the repository")
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("correct horse")))
	})

	t.Run("rejects empty credentials", func(t *testing.T) {
		auth, _ := newTestAuthService(t)

		_, err := auth.RegisterUser(ctx, models.User{Email: "ada@example.com"})
		require.ErrorIs(t, err, ErrInvalidDataProvided)

		_, err = auth.RegisterUser(ctx, models.User{Password: "secret"})
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("propagates duplicate email", func(t *testing.T) {
		auth, userRepo := newTestAuthService(t)

		userRepo.EXPECT().
			CreateUser(ctx, gomock.Any()).
			Return(models.User{}, store.ErrEmailAlreadyExists)

		_, err := auth.RegisterUser(ctx, models.User{Email: "ada@example.com", Password: "secret"})
		require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := models.User{
		UserID:       7,
		Email:        "ada@example.com",
		PasswordHash: string(hash),
		Name:         "Ada",
	}

	t.Run("returns the user on matching password", func(t *testing.T) {
		auth, userRepo := newTestAuthService(t)

		userRepo.EXPECT().
			FindUserByEmail(ctx, "ada@example.com").
			Return(stored, nil)

		user, err := auth.Login(ctx, models.User{Email: "ada@example.com", Password: "secret"})
		require.NoError(t, err)
		require.Equal(t, int64(7), user.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		auth, userRepo := newTestAuthService(t)

		userRepo.EXPECT().
			FindUserByEmail(ctx, "ada@example.com").
			Return(stored, nil)

		_, err := auth.Login(ctx, models.User{Email: "ada@example.com", Password: "not it"})
		require.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		auth, userRepo := newTestAuthService(t)

		userRepo.EXPECT().
			FindUserByEmail(ctx, "ghost@example.com").
			Return(models.User{}, store.ErrNoUserWasFound)

		_, err := auth.Login(ctx, models.User{Email: "ghost@example.com", Password: "secret"})
		require.ErrorIs(t, err, store.ErrNoUserWasFound)
	})

	t.Run("rejects empty credentials without a lookup", func(t *testing.T) {
		auth, _ := newTestAuthService(t)

		_, err := auth.Login(ctx, models.User{Email: "ada@example.com"})
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	auth, _ := newTestAuthService(t)

	issued, err := auth.CreateToken(ctx, models.User{UserID: 7})
	require.NoError(t, err)
	require.NotEmpty(t, issued.SignedString)

	parsed, err := auth.ParseToken(ctx, issued.SignedString)
	require.NoError(t, err)
	require.Equal(t, int64(7), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctx := context.Background()
	auth, _ := newTestAuthService(t)

	_, err := auth.ParseToken(ctx, "definitely-not-a-jwt")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	// Signed with a key the service does not trust.
	foreign, err := utils.GenerateJWTToken("promptdeck-test", 7, time.Hour, "other-key")
	require.NoError(t, err)

	_, err = auth.ParseToken(ctx, foreign.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
