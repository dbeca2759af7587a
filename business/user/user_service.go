package user

import (
	"context"
	"errors"
	"quickBite/domain"
	redisRepo "quickBite/internal/repository/redis"
	"quickBite/pkg/logger"
	"quickBite/pkg/utils"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
}

// SessionRepository contract interface
type SessionRepository interface {
	StoreSession(ctx context.Context, userID, token string, data redisRepo.SessionData, ttl time.Duration) error
	ValidateToken(ctx context.Context, token string) (string, error)
	DeleteSession(ctx context.Context, userID, token string) error
}

type userService struct {
	userRepo    UserRepository
	sessionRepo SessionRepository
	validate    *validator.Validate
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"

	sessionTTL = 24 * time.Hour
)

func NewUserService(userRepo UserRepository, sessionRepo SessionRepository, validate *validator.Validate) *userService {
	return &userService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		validate:    validate,
	}
}

type RegisterInput struct {
	Username        string
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	if err := s.validate.Var(in.Username, "required,min=3"); err != nil {
		logger.Error("Invalid username", err)
		return domain.User{}, errors.New("username must be at least 3 characters")
	}

	if err := s.validate.Var(in.Password, "required,min=6"); err != nil {
		logger.Error("Invalid user password", err)
		return domain.User{}, errors.New("password must be at least 6 characters")
	}

	// Mismatched passwords never create an account
	if in.Password != in.ConfirmPassword {
		return domain.User{}, errors.New("passwords do not match")
	}

	if in.Email != "" {
		if err := s.validate.Var(in.Email, "email"); err != nil {
			logger.Error("Invalid email format", err)
			return domain.User{}, errors.New("invalid email format")
		}
	}

	// Check if username already exists, the existing account stays untouched
	existingUser, err := s.userRepo.FindByUsername(ctx, in.Username)
	if err == nil && existingUser.ID > 0 {
		logger.Error("Username already exists")
		return domain.User{}, errors.New("username already exists")
	}

	passwordHash, err := utils.HashPassword(in.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  passwordHash,
		Role:      RoleCustomer,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, errors.New("failed to create user")
	}

	newUser.Password = ""
	return newUser, nil
}

// Login never reveals whether the username or the password was wrong.
func (s *userService) Login(ctx context.Context, username, password, ipAddress, userAgent string) (string, domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		logger.Error("Invalid user credentials", err)
		return "", domain.User{}, errors.New("invalid username or password")
	}

	if ok := utils.CheckPassword(password, user.Password); !ok {
		logger.Error("User password incorrect")
		return "", domain.User{}, errors.New("invalid username or password")
	}

	userIDStr := strconv.FormatUint(uint64(user.ID), 10)
	token, err := utils.GenerateJWT(userIDStr, user.Role)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	now := time.Now()
	err = s.sessionRepo.StoreSession(ctx, userIDStr, token, redisRepo.SessionData{
		UserID:    userIDStr,
		Role:      user.Role,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(sessionTTL),
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}, sessionTTL)
	if err != nil {
		logger.Error("Failed to store session", err)
		return "", domain.User{}, errors.New("failed to establish session")
	}

	user.Password = ""
	return token, user, nil
}

func (s *userService) Logout(ctx context.Context, userID uint, token string) error {
	userIDStr := strconv.FormatUint(uint64(userID), 10)

	if err := s.sessionRepo.DeleteSession(ctx, userIDStr, token); err != nil {
		logger.Error("Failed to delete session", err)
		return errors.New("failed to logout")
	}

	return nil
}

// ValidateTokenFromRedis is consumed by the auth middleware.
func (s *userService) ValidateTokenFromRedis(ctx context.Context, token string) (string, error) {
	return s.sessionRepo.ValidateToken(ctx, token)
}
