package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/utils"
	"github.com/google/uuid"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	GetUserById(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO users (full_name, username, email, password, profile_image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, user.FullName, user.Username, user.Email, user.Password, user.ProfileImage).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	return mapPQError(err)
}

// GetUserByIdentifier matches either the email address or the username.
func (r *userRepository) GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, full_name, username, email, password, profile_image, created_at, updated_at
		FROM users
		WHERE email = $1 OR username = LOWER($1)
		LIMIT 1`

	return scanUser(r.DB.QueryRowContext(dbCtx, query, identifier))
}

func (r *userRepository) GetUserById(ctx context.Context, id uuid.UUID) (*models.User, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, full_name, username, email, password, profile_image, created_at, updated_at
		FROM users
		WHERE id = $1`

	return scanUser(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *userRepository) UpdateUser(ctx context.Context, user *models.User) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE users
		SET full_name = $1, username = $2, profile_image = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, user.FullName, user.Username, user.ProfileImage, user.ID).Scan(&user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	return mapPQError(err)
}

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}

	err := row.Scan(&user.ID, &user.FullName, &user.Username, &user.Email, &user.Password, &user.ProfileImage, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return user, nil
}
