package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hifzapp/hifz-api/internal/domain"
	"github.com/hifzapp/hifz-api/internal/platform/logger"
	"github.com/hifzapp/hifz-api/internal/store"
)

// TokenPair bundles the access and refresh tokens issued on registration,
// login, and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserService manages account registration, authentication and settings. The
// account list lives in the durable store as a single JSON document; the
// in-memory copy is authoritative for the process lifetime.
type UserService struct {
	kv       store.KeyValue
	jwt      JWTService
	hasher   PasswordHasher
	verifier PasswordVerifier
	logger   *slog.Logger

	mu    sync.Mutex
	users []domain.User
}

// NewUserService creates a UserService and loads the persisted account list.
// A load failure is logged and the service starts empty.
func NewUserService(
	ctx context.Context,
	kv store.KeyValue,
	jwt JWTService,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	log *slog.Logger,
) *UserService {
	if log == nil {
		log = slog.Default()
	}

	s := &UserService{
		kv:       kv,
		jwt:      jwt,
		hasher:   hasher,
		verifier: verifier,
		logger:   log.With(slog.String("component", "user_service")),
	}
	s.load(ctx)
	return s
}

// Register creates a new account and returns the user together with a fresh
// token pair. Returns ErrEmailExists when the email is already taken and the
// domain validation errors for malformed input.
func (s *UserService) Register(ctx context.Context, email, name, password string) (*domain.User, *TokenPair, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(email, name, password)
	if err != nil {
		return nil, nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, nil, err
	}
	user.HashedPassword = hashed
	user.Password = ""

	s.mu.Lock()
	if s.findByEmailLocked(email) != nil {
		s.mu.Unlock()
		log.Warn("registration with existing email", "email", email)
		return nil, nil, ErrEmailExists
	}
	s.users = append(s.users, *user)
	s.mu.Unlock()

	s.persist(ctx)

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	log.Info("user registered", "user_id", user.ID.String())
	return user, tokens, nil
}

// Login authenticates an email/password pair and returns the user with a
// fresh token pair. Returns ErrInvalidCredentials for an unknown email or a
// wrong password; the two cases are deliberately indistinguishable.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	found := s.findByEmailLocked(email)
	var user domain.User
	if found != nil {
		user = *found
	}
	s.mu.Unlock()

	if found == nil {
		log.Debug("login with unknown email")
		return nil, nil, ErrInvalidCredentials
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login with wrong password", "user_id", user.ID.String())
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	log.Info("user logged in", "user_id", user.ID.String())
	return &user, tokens, nil
}

// Refresh validates a refresh token and issues a new token pair for its user.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if _, err := s.GetUser(ctx, claims.UserID); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, claims.UserID)
}

// GetUser returns a copy of the account with the given ID.
// Returns ErrUserNotFound when no such account exists.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// UpdateSettings replaces the user's settings and persists the account list.
// Returns ErrUserNotFound when no such account exists.
func (s *UserService) UpdateSettings(ctx context.Context, id uuid.UUID, settings domain.UserSettings) (*domain.User, error) {
	s.mu.Lock()
	var updated *domain.User
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Settings = settings
			user := s.users[i]
			updated = &user
			break
		}
	}
	s.mu.Unlock()

	if updated == nil {
		return nil, ErrUserNotFound
	}

	s.persist(ctx)
	return updated, nil
}

func (s *UserService) issueTokens(ctx context.Context, userID uuid.UUID) (*TokenPair, error) {
	access, err := s.jwt.GenerateToken(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.jwt.GenerateRefreshToken(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// findByEmailLocked matches emails case-insensitively. Callers must hold s.mu.
func (s *UserService) findByEmailLocked(email string) *domain.User {
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			return &s.users[i]
		}
	}
	return nil
}

func (s *UserService) persist(ctx context.Context) {
	s.mu.Lock()
	payload, err := json.Marshal(s.users)
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("failed to marshal user list", "error", err)
		return
	}
	if err := s.kv.Set(ctx, store.KeyUsers, string(payload)); err != nil {
		s.logger.Error("failed to persist user list", "error", err)
	}
}

func (s *UserService) load(ctx context.Context) {
	value, err := s.kv.Get(ctx, store.KeyUsers)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			s.logger.Error("failed to load user list", "error", err)
		}
		return
	}

	if err := json.Unmarshal([]byte(value), &s.users); err != nil {
		s.logger.Error("failed to decode user list", "error", err)
		s.users = nil
	}
}
