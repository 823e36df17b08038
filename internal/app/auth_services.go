package app

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenBytes = 32

// hashPassword hashes a plain password with bcrypt
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// hashToken returns the hex sha256 of a session token, the only form that is stored
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// authService implements the AuthService interface
type authService struct {
	userRepo    users.UserRepository
	sessionRepo users.SessionRepository
	settings    *config.AuthSettings
	logger      logger.Logger
	now         func() time.Time
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userRepo users.UserRepository, sessionRepo users.SessionRepository, settings *config.AuthSettings, logger logger.Logger) (users.AuthService, error) {
	if settings == nil {
		settings = &config.AuthSettings{}
	}
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		settings:    settings,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *authService) Login(ctx context.Context, identifier, password string) (*users.LoginResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, apperror.Validation("identifier and password are required")
	}

	var (
		user *users.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.userRepo.GetByEmail(ctx, identifier)
	} else {
		user, err = s.userRepo.GetByPhone(ctx, identifier)
	}
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, apperror.Unauthorized("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperror.Unauthorized("invalid credentials")
		}
		return nil, fmt.Errorf("failed to compare password: %w", err)
	}
	if !user.Active {
		return nil, apperror.Forbidden("account is inactive")
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}
	now := s.now()
	session := &users.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		TokenHash: hashToken(token),
		ExpiresAt: now.Add(s.settings.TTL()),
		CreatedAt: now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "userId", user.ID, "role", string(user.Role))
	return &users.LoginResult{Token: token, ExpiresAt: session.ExpiresAt, User: user}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*users.Principal, error) {
	if token == "" {
		return nil, apperror.Unauthorized("missing bearer token")
	}

	tokenHash := hashToken(token)
	session, err := s.sessionRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, apperror.Unauthorized("invalid or expired session")
		}
		return nil, err
	}

	if session.Expired(s.now()) {
		if err := s.sessionRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
			s.logger.Warn("failed to delete expired session", "sessionId", session.ID, "error", err)
		}
		return nil, apperror.Unauthorized("invalid or expired session")
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, apperror.Unauthorized("invalid or expired session")
		}
		return nil, err
	}
	if !user.Active {
		return nil, apperror.Forbidden("account is inactive")
	}

	return user.Principal(), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return apperror.Unauthorized("missing bearer token")
	}
	return s.sessionRepo.DeleteByTokenHash(ctx, hashToken(token))
}

func (s *authService) Me(ctx context.Context, actor *users.Principal) (*users.User, error) {
	if actor == nil {
		return nil, apperror.Unauthorized("not authenticated")
	}
	return s.userRepo.GetByID(ctx, actor.UserID)
}

func (s *authService) CreateAdmin(ctx context.Context, actor *users.Principal, input *users.CreateAdminInput) (*users.User, error) {
	if actor == nil || actor.Role != users.RoleSuperAdmin {
		return nil, apperror.Forbidden("only a super admin may create admin accounts")
	}

	user, err := s.createAdmin(ctx, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info("admin account created", "userId", user.ID, "role", string(user.Role), "createdBy", actor.UserID)
	return user, nil
}

func (s *authService) BootstrapSuperAdmin(ctx context.Context, input *users.CreateAdminInput) (*users.User, error) {
	count, err := s.userRepo.CountByRole(ctx, users.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		s.logger.Info("super admin already exists, skipping bootstrap")
		return nil, nil
	}

	input.Super = true
	user, err := s.createAdmin(ctx, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info("bootstrap super admin created", "userId", user.ID)
	return user, nil
}

func (s *authService) createAdmin(ctx context.Context, input *users.CreateAdminInput) (*users.User, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	if exists, err := s.userRepo.ExistsByPhone(ctx, input.Phone); err != nil {
		return nil, err
	} else if exists {
		return nil, apperror.Duplicate("phone already registered")
	}
	if exists, err := s.userRepo.ExistsByEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, apperror.Duplicate("email already registered")
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role := users.RoleAdmin
	if input.Super {
		role = users.RoleSuperAdmin
	}
	user := users.NewUser(input.Name, input.Email, input.Phone, hash, role)
	user.Active = true
	user.EmailVerified = true
	user.PhoneVerified = true

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
