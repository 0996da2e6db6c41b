package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	appErrors "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error)
}

type userService struct {
	repo          repository.UserRepository
	rateLimitRepo repository.RateLimitRepository
	jwtKey        []byte
	tokenTTL      time.Duration
}

func NewUserService(repo repository.UserRepository, rateLimitRepo repository.RateLimitRepository, jwtKey []byte, tokenTTL time.Duration) UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}

	return &userService{
		repo:          repo,
		rateLimitRepo: rateLimitRepo,
		jwtKey:        jwtKey,
		tokenTTL:      tokenTTL,
	}
}

func normalizeUsername(username string) (string, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if strings.ContainsAny(username, " \t\r\n") {
		return "", appErrors.ValidationError("Validation failed").WithDetail("Field username must not contain spaces")
	}

	return username, nil
}

func duplicateUserError(err error) *appErrors.AppError {
	var dupErr *repository.DuplicateError
	if errors.As(err, &dupErr) {
		switch {
		case strings.Contains(dupErr.Constraint, "email"):
			return appErrors.DuplicateEntryError("Email already registered").WithError(err)
		case strings.Contains(dupErr.Constraint, "username"):
			return appErrors.DuplicateEntryError("Username already taken").WithError(err)
		}
	}

	return appErrors.DuplicateEntryError("User already exists").WithError(err)
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {

	username, err := normalizeUsername(req.Username)
	if err != nil {
		return nil, err
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		FullName: strings.TrimSpace(req.FullName),
		Username: username,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashedPassword),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, duplicateUserError(err)
		}

		return nil, appErrors.DatabaseError("Failed to create user").WithError(err)
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	identifier := strings.ToLower(strings.TrimSpace(req.Identifier))

	// check rate limit
	allowed, _, retryAfter, err := s.rateLimitRepo.CheckLoginRateLimit(ctx, identifier)
	if err != nil {
		return nil, appErrors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return nil, appErrors.TooManyRequestsError("Too many login attempts. Please try again later.").
			WithDetail("Retry after " + strconv.Itoa(retryAfter) + " seconds")
	}

	user, err := s.repo.GetUserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.UnauthorizedError("Invalid credentials")
		}

		return nil, appErrors.DatabaseError("Failed to look up user").WithError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, appErrors.UnauthorizedError("Invalid credentials")
	}

	now := time.Now()
	claims := &models.Claims{
		UserID:   user.ID,
		Username: user.Username,
		FullName: user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	// Generate Token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, appErrors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{
		Token:     tokenString,
		ExpiresIn: int(s.tokenTTL.Seconds()),
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {

	user, err := s.repo.GetUserById(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("User not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {

	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Username != nil {
		username, err := normalizeUsername(*req.Username)
		if err != nil {
			return nil, err
		}
		user.Username = username
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, duplicateUserError(err)
		case errors.Is(err, repository.ErrNotFound):
			return nil, appErrors.NotFoundError("User not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to update profile").WithError(err)
	}

	return user, nil
}
