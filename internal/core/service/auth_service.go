package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/farmlink/marketplace-api/internal/core/domain"
	"github.com/farmlink/marketplace-api/internal/core/policy"
	"github.com/farmlink/marketplace-api/internal/core/ports"
)

// AuthOptions tunes AuthService behaviour.
type AuthOptions struct {
	// AllowAdminRegistration lets the public register endpoint create admins.
	AllowAdminRegistration bool
	// Limiter throttles failed logins per email. Nil disables throttling.
	Limiter ports.LoginLimiter
}

// AuthService implements registration, login and session resolution.
type AuthService struct {
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	sessions *SessionManager
	opts     AuthOptions
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	sessions *SessionManager,
	log zerolog.Logger,
	opts AuthOptions,
) *AuthService {
	return &AuthService{users: users, hasher: hasher, sessions: sessions, opts: opts, log: log}
}

// Register creates an account and returns a session for it. The email
// existence check and the insert are not atomic; the store's unique index on
// email is the backstop.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if err := policy.Authorize(domain.Actor{}, policy.Register, policy.Resource{}); err != nil {
		return nil, err
	}
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleAdmin && !s.opts.AllowAdminRegistration {
		return nil, fmt.Errorf("register admin: %w", domain.ErrForbidden)
	}
	return s.register(ctx, in, role)
}

// SeedAdmin creates an admin account unless one with email already exists.
// It reports whether an account was created.
func (s *AuthService) SeedAdmin(ctx context.Context, email, password, name string) (bool, error) {
	_, err := s.register(ctx, ports.RegisterInput{Email: email, Password: password, Name: name}, domain.RoleAdmin)
	if errors.Is(err, domain.ErrDuplicateEmail) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *AuthService) register(ctx context.Context, in ports.RegisterInput, role domain.Role) (*ports.AuthResult, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: email, password and name are required", domain.ErrValidation)
	}

	_, err := s.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, domain.ErrDuplicateEmail
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Name:         in.Name,
		Role:         role,
		Phone:        in.Phone,
		Location:     in.Location,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	token, err := s.sessions.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	return &ports.AuthResult{Token: token, User: user}, nil
}

// Login verifies credentials. Unknown email and wrong password both yield
// domain.ErrInvalidCredentials so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.opts.Limiter != nil {
		ok, err := s.opts.Limiter.Allow(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login limiter check failed, continuing")
		} else if !ok {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if s.opts.Limiter != nil {
		if err := s.opts.Limiter.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("failed to reset login limiter")
		}
	}

	token, err := s.sessions.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.opts.Limiter == nil {
		return
	}
	if err := s.opts.Limiter.Fail(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login failure")
	}
}

// Authenticate validates token and resolves its subject to a live user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	sess, err := s.sessions.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, sess.SubjectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnknownSubject
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return user, nil
}

// Profile returns the account userID, which only its own subject may read.
func (s *AuthService) Profile(ctx context.Context, actor domain.Actor, userID string) (*domain.User, error) {
	if err := policy.Authorize(actor, policy.ReadProfile, policy.Owned(userID)); err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	return user, nil
}
