package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*repository.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return repository.NewWithDB(db), mock
}

var userColumns = []string{"id", "full_name", "username", "email", "password", "profile_image", "created_at", "updated_at"}

func TestNewWithDB(t *testing.T) {
	repos, _ := newMockDB(t)

	assert.NotNil(t, repos.Users)
	assert.NotNil(t, repos.Products)
	assert.NotNil(t, repos.Cart)
	assert.NotNil(t, repos.Orders)
}

func TestUserRepository(t *testing.T) {
	repos, mock := newMockDB(t)
	repo := repos.Users
	ctx := context.Background()

	insertSQL := regexp.QuoteMeta(`
		INSERT INTO users (full_name, username, email, password, profile_image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`)

	selectByIdentifierSQL := regexp.QuoteMeta(`
		SELECT id, full_name, username, email, password, profile_image, created_at, updated_at
		FROM users
		WHERE email = $1 OR username = LOWER($1)
		LIMIT 1`)

	t.Run("CreateUser_Success", func(t *testing.T) {
		user := &models.User{FullName: "Jane Doe", Username: "jane", Email: "jane@example.com", Password: "hashed"}
		newID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(insertSQL).
			WithArgs(user.FullName, user.Username, user.Email, user.Password, user.ProfileImage).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(newID, now, now))

		err := repo.CreateUser(ctx, user)

		require.NoError(t, err)
		assert.Equal(t, newID, user.ID)
		assert.WithinDuration(t, now, user.CreatedAt, time.Second)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CreateUser_Duplicate", func(t *testing.T) {
		user := &models.User{FullName: "Jane Doe", Username: "jane", Email: "jane@example.com", Password: "hashed"}

		mock.ExpectQuery(insertSQL).
			WithArgs(user.FullName, user.Username, user.Email, user.Password, user.ProfileImage).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

		err := repo.CreateUser(ctx, user)

		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrDuplicate)

		var dup *repository.DuplicateError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "users_username_key", dup.Constraint)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUserByIdentifier_Success", func(t *testing.T) {
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(selectByIdentifierSQL).
			WithArgs("jane").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(id, "Jane Doe", "jane", "jane@example.com", "hashed", "", now, now))

		user, err := repo.GetUserByIdentifier(ctx, "jane")

		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, "hashed", user.Password)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUserByIdentifier_NotFound", func(t *testing.T) {
		mock.ExpectQuery(selectByIdentifierSQL).
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns))

		user, err := repo.GetUserByIdentifier(ctx, "ghost@example.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUserById_DBError", func(t *testing.T) {
		id := uuid.New()
		dbErr := errors.New("connection refused")

		mock.ExpectQuery(regexp.QuoteMeta(`FROM users
		WHERE id = $1`)).
			WithArgs(id).
			WillReturnError(dbErr)

		user, err := repo.GetUserById(ctx, id)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateUser_NotFound", func(t *testing.T) {
		user := &models.User{ID: uuid.New(), FullName: "Jane", Username: "jane"}

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE users`)).
			WithArgs(user.FullName, user.Username, user.ProfileImage, user.ID).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

		err := repo.UpdateUser(ctx, user)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateUser_DuplicateUsername", func(t *testing.T) {
		user := &models.User{ID: uuid.New(), FullName: "Jane", Username: "taken"}

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE users`)).
			WithArgs(user.FullName, user.Username, user.ProfileImage, user.ID).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

		err := repo.UpdateUser(ctx, user)

		assert.ErrorIs(t, err, repository.ErrDuplicate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
