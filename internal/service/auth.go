// Package service implements the credential verification and token issuance
// logic for the auth service.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yasirmarwat09/wp-assign/internal/logger"
	"github.com/yasirmarwat09/wp-assign/internal/models"
	"github.com/yasirmarwat09/wp-assign/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when the supplied password does not
	// match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is returned when no account exists for the email.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when signup collides with an existing
	// email or username.
	ErrUserExists = errors.New("user already exists")
)

// SignupInput carries the fields required to register a new account.
type SignupInput struct {
	Name     string
	Email    string
	Username string
	Password string
}

// AuthService defines the credential operations exposed to the HTTP layer.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*models.User, error)
	Signin(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService JWTService
	bcryptCost int
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, jwtService JWTService, bcryptCost int) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		bcryptCost: bcryptCost,
	}
}

// Signup hashes the password and persists a new user record.
func (s *authService) Signup(ctx context.Context, input SignupInput) (*models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			log.Warn().Str("email", input.Email).Msg("signup rejected: user already exists")
			return nil, ErrUserExists
		}
		log.Err(err).Str("email", input.Email).Msg("user creation failed")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Signin verifies the credentials and issues a signed token. The sequence
// short-circuits: lookup by email, then password comparison, then signing.
func (s *authService) Signin(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn().Str("email", email).Msg("signin rejected: user not found")
			return "", ErrUserNotFound
		}
		log.Err(err).Str("email", email).Msg("user lookup failed")
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("signin rejected: password mismatch")
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("token generation failed")
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}
