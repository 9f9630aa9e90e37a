package service

import (
	"context"
	"errors"

	"bbdap/backend/internal/api/models"
	"bbdap/backend/internal/api/repository"
	"bbdap/backend/internal/auth"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrDuplicateUsername is returned when registering an already-taken name.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrBadCredentials is returned for both unknown users and wrong
	// passwords; the two cases are indistinguishable on the wire.
	ErrBadCredentials = errors.New("invalid username or password")
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) error
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
}

type userService struct {
	userRepo repository.UserRepository
	tokens   *auth.Manager
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, tokens *auth.Manager) UserService {
	return &userService{userRepo: userRepo, tokens: tokens}
}

// Register handles user registration.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) error {
	existingUser, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return err
	}
	if existingUser != nil {
		return ErrDuplicateUsername
	}

	user := &models.User{
		Username: req.Username,
	}

	return s.userRepo.CreateUser(ctx, user, req.Password)
}

// Login checks the credentials and returns a signed bearer token on success.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrBadCredentials
	}

	return s.tokens.Issue(user.ID, user.Username)
}
