package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hifzapp/hifz-api/internal/domain"
	"github.com/hifzapp/hifz-api/internal/store"
)

func newTestUserService(t *testing.T, kv store.KeyValue) *UserService {
	t.Helper()
	jwtService, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	service := NewUserService(
		context.Background(),
		kv,
		jwtService,
		NewBcryptHasher(4), // minimum cost keeps tests fast
		NewBcryptVerifier(),
		nil,
	)
	require.NotNil(t, service)
	return service
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	service := newTestUserService(t, store.NewMemoryStore())

	user, tokens, err := service.Register(ctx, "reader@example.com", "Reader", "password123")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, tokens)

	assert.Equal(t, "reader@example.com", user.Email)
	assert.Empty(t, user.Password, "plaintext must not survive registration")
	assert.NotEmpty(t, user.HashedPassword)
	assert.NotEqual(t, "password123", user.HashedPassword)
	assert.Equal(t, domain.DefaultUserSettings(), user.Settings)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	service := newTestUserService(t, store.NewMemoryStore())

	_, _, err := service.Register(ctx, "reader@example.com", "Reader", "password123")
	require.NoError(t, err)

	// Case differences do not create a second account.
	_, _, err = service.Register(ctx, "Reader@Example.com", "Other", "password456")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUserService_Register_InvalidInput(t *testing.T) {
	ctx := context.Background()
	service := newTestUserService(t, store.NewMemoryStore())

	_, _, err := service.Register(ctx, "reader@example.com", "Reader", "short")
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)

	_, _, err = service.Register(ctx, "not-an-email", "Reader", "password123")
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, _, err = service.Register(ctx, "reader@example.com", "", "password123")
	assert.ErrorIs(t, err, domain.ErrEmptyUserName)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	service := newTestUserService(t, store.NewMemoryStore())

	registered, _, err := service.Register(ctx, "reader@example.com", "Reader", "password123")
	require.NoError(t, err)

	user, tokens, err := service.Login(ctx, "reader@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, tokens.AccessToken)

	// Unknown email and wrong password both yield the same error.
	_, _, err = service.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = service.Login(ctx, "reader@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Refresh(t *testing.T) {
	ctx := context.Background()
	service := newTestUserService(t, store.NewMemoryStore())

	_, tokens, err := service.Register(ctx, "reader@example.com", "Reader", "password123")
	require.NoError(t, err)

	fresh, err := service.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
	assert.NotEmpty(t, fresh.RefreshToken)

	// An access token is not accepted on the refresh path.
	_, err = service.Refresh(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestUserService_GetUser(t *testing.T) {
	ctx := context.Background()
	service := newTestUserService(t, store.NewMemoryStore())

	registered, _, err := service.Register(ctx, "reader@example.com", "Reader", "password123")
	require.NoError(t, err)

	user, err := service.GetUser(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Reader", user.Name)

	_, err = service.GetUser(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	service := newTestUserService(t, store.NewMemoryStore())

	registered, _, err := service.Register(ctx, "reader@example.com", "Reader", "password123")
	require.NoError(t, err)

	settings := registered.Settings
	settings.Theme = "dark"
	settings.ReminderTime = "21:30"

	updated, err := service.UpdateSettings(ctx, registered.ID, settings)
	require.NoError(t, err)
	assert.Equal(t, "dark", updated.Settings.Theme)

	stored, err := service.GetUser(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "21:30", stored.Settings.ReminderTime)

	_, err = service.UpdateSettings(ctx, uuid.New(), settings)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_PersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	service := newTestUserService(t, kv)

	registered, _, err := service.Register(ctx, "reader@example.com", "Reader", "password123")
	require.NoError(t, err)

	reloaded := newTestUserService(t, kv)
	user, err := reloaded.GetUser(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", user.Email)

	// Credentials still work against the reloaded account list.
	_, _, err = reloaded.Login(ctx, "reader@example.com", "password123")
	assert.NoError(t, err)
}
