package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/karinaconstandache/PhotoBooker/internal/models"
	"github.com/karinaconstandache/PhotoBooker/internal/repository"
	"github.com/karinaconstandache/PhotoBooker/pkg/bcrypt"
	"github.com/karinaconstandache/PhotoBooker/pkg/email"
	jwtPkg "github.com/karinaconstandache/PhotoBooker/pkg/jwt"
	"github.com/karinaconstandache/PhotoBooker/pkg/utils"
	"go.uber.org/zap"
)

const (
	msgInvalidCredentials = "Invalid username or password"
	msgUsernameTaken      = "Username already exists"

	welcomeEmailTimeout = 5 * time.Second
)

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// dummyPasswordHash is compared against on failed lookups so unknown
// usernames cost the same bcrypt work as wrong passwords.
func dummyPasswordHash() string {
	dummyHashOnce.Do(func() {
		hash, err := bcrypt.HashPassword("photobooker-unknown-user")
		if err == nil && bcrypt.VerifyHash(hash) {
			dummyHash = hash
		}
	})
	return dummyHash
}

type AuthService struct {
	userRepo  repository.UserRepository
	tokens    *jwtPkg.Manager
	mailer    email.Sender
	validator *utils.Validator
	logger    *zap.Logger
	compare   func(hash, password string) error
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens *jwtPkg.Manager,
	mailer email.Sender,
	validator *utils.Validator,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokens:    tokens,
		mailer:    mailer,
		validator: validator,
		logger:    logger.Named("auth"),
		compare:   bcrypt.ComparePassword,
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, NewValidationError(err.Error())
	}

	exists, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, NewConflictError(msgUsernameTaken)
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost the race against a concurrent registration.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewConflictError(msgUsernameTaken)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
		zap.Stringer("role", user.Role),
	)

	s.sendWelcome(ctx, user)

	return s.authResponse(user)
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, NewValidationError(err.Error())
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if errors.Is(err, repository.ErrNotFound) {
		_ = s.compare(dummyPasswordHash(), req.Password)
		s.logger.Info("login failed", zap.String("username", req.Username), zap.String("reason", "unknown user"))
		return nil, NewAuthenticationError(msgInvalidCredentials)
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !bcrypt.VerifyHash(user.PasswordHash) {
		_ = s.compare(dummyPasswordHash(), req.Password)
		s.logger.Error("stored password hash is malformed", zap.Uint("user_id", user.ID))
		return nil, NewAuthenticationError(msgInvalidCredentials)
	}
	if err := s.compare(user.PasswordHash, req.Password); err != nil {
		s.logger.Info("login failed", zap.String("username", req.Username), zap.String("reason", "wrong password"))
		return nil, NewAuthenticationError(msgInvalidCredentials)
	}

	return s.authResponse(user)
}

func (s *AuthService) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, err := s.tokens.GenerateToken(jwtPkg.Subject{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &models.AuthResponse{
		UserID:    user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Token:     token,
	}, nil
}

// sendWelcome mails users whose username is an email address. Failures are
// only logged.
func (s *AuthService) sendWelcome(ctx context.Context, user *models.User) {
	if s.validator.Var(user.Username, "email") != nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, welcomeEmailTimeout)
	defer cancel()

	if err := s.mailer.SendWelcome(ctx, user.Username, user.FullName(), user.IsPhotographer()); err != nil {
		s.logger.Warn("welcome email failed", zap.Uint("user_id", user.ID), zap.Error(err))
	}
}
