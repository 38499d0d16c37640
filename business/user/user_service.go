package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bobTheBar/domain"
	"bobTheBar/pkg/logger"
	"bobTheBar/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type userService struct {
	userRepo  UserRepository
	validate  *validator.Validate
	jwtSecret string
	jwtTTL    time.Duration
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, jwtSecret string, jwtTTL time.Duration) *userService {
	return &userService{
		userRepo:  userRepo,
		validate:  validate,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

func (s *userService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when register user")
		return domain.User{}, fmt.Errorf("context error: %w", err)
	}

	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if err := s.validate.Var(user.Username, "required,min=3,max=50"); err != nil {
		logger.Error("Invalid username", err)
		return domain.User{}, fmt.Errorf("%w: username must be between 3 and 50 characters", domain.ErrInvalidInput)
	}

	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return domain.User{}, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}

	if err := s.validate.Var(user.Password, "required,min=8"); err != nil {
		logger.Error("Invalid user password", err)
		return domain.User{}, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrInvalidInput)
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, user.Email)
	switch {
	case err == nil && existingUser.ID > 0:
		logger.Warn("Email already exists", "email", user.Email)
		return domain.User{}, domain.ErrEmailTaken
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		logger.Error("Failed to look up user by email", err)
		return domain.User{}, fmt.Errorf("%w: %w", domain.ErrUpstreamFailure, err)
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		Username: user.Username,
		Email:    user.Email,
		Password: string(passwordHash),
		Role:     domain.RoleMember,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, fmt.Errorf("%w: %w", domain.ErrUpstreamFailure, err)
	}

	logger.Info("user registered", "id", newUser.ID)

	newUser.Password = ""
	return newUser, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when login")
		return "", domain.User{}, fmt.Errorf("context error: %w", err)
	}

	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.User{}, domain.ErrInvalidCredentials
		}
		logger.Error("Failed to look up user by email", err)
		return "", domain.User{}, fmt.Errorf("%w: %w", domain.ErrUpstreamFailure, err)
	}

	if !utils.CheckPassword(password, user.Password) {
		logger.Warn("User password incorrect", "user_id", user.ID)
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(s.jwtSecret, strconv.FormatUint(uint64(user.ID), 10), user.Role, s.jwtTTL)
	if err != nil {
		logger.Error("Failed to generated token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	user.Password = ""
	return token, user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			logger.Error("Failed to get user by ID", err)
		}
		return domain.User{}, err
	}

	user.Password = ""
	return user, nil
}
