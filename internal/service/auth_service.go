package service

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"taskboard-be/internal/apperrors"
	"taskboard-be/internal/entities"
	"taskboard-be/internal/jwt"
	"taskboard-be/internal/models"
	"taskboard-be/internal/repository"
	"taskboard-be/internal/validation"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.SignupRequest) (*models.AuthResponse, error)
	Login(req *models.LoginRequest) (*models.AuthResponse, error)
	ResolveToken(token string) (*entities.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user account. The password is hashed here,
// before persistence, and only the hash is ever stored.
func (s *authService) Register(req *models.SignupRequest) (*models.AuthResponse, error) {
	if fields := validation.ValidateSignup(req.Name, req.Email, req.Password); len(fields) > 0 {
		return nil, apperrors.NewValidation(fields)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(strings.TrimSpace(req.Name), strings.TrimSpace(req.Email), string(hashedPassword))
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return nil, apperrors.NewConflict("Email address already in use")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Generate JWT token for automatic login after signup
	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Message: "User created successfully",
		User:    userResponse(user),
		Token:   token,
	}, nil
}

// Login authenticates a user and returns user info with a JWT token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *authService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	if fields := validation.ValidateLogin(req.Email, req.Password); len(fields) > 0 {
		return nil, apperrors.NewValidation(fields)
	}

	user, err := s.userRepo.FindByEmail(strings.TrimSpace(req.Email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewUnauthorized("Invalid email or password")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.NewUnauthorized("Invalid email or password")
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Message: "Login successful",
		User:    userResponse(user),
		Token:   token,
	}, nil
}

// ResolveToken verifies a bearer token and resolves it to the user it
// encodes. Every protected request passes through here; the returned
// user is the sole authorization context for downstream calls.
func (s *authService) ResolveToken(token string) (*entities.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, apperrors.NewUnauthorized("Invalid or expired token")
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewUnauthorized("Invalid token - user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

func userResponse(user *entities.User) models.UserResponse {
	return models.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
