package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atapsolar/authhub/internal/pkg/models"
	"github.com/atapsolar/authhub/services/auth"
)

func setupIdentityRepoTest(t *testing.T) (*AuthRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &AuthRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

const identityQueryPattern = `SELECT u.id, u.access_level, a.name, a.contact`

func TestGetUserByLocalPhone_Success(t *testing.T) {
	repo, mock, cleanup := setupIdentityRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "access_level", "name", "contact"}).
		AddRow("usr_1689x", "{admin}", "Aina Rahman", "0123456789")

	mock.ExpectQuery(regexp.QuoteMeta(identityQueryPattern)).
		WithArgs("0123456789").
		WillReturnRows(rows)

	user, err := repo.GetUserByLocalPhone(context.Background(), "0123456789")

	require.NoError(t, err)
	assert.Equal(t, "usr_1689x", user.ID)
	assert.Equal(t, "Aina Rahman", user.Name)
	assert.Equal(t, "0123456789", user.Contact)
	assert.True(t, user.IsAdmin())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByLocalPhone_NotFound(t *testing.T) {
	repo, mock, cleanup := setupIdentityRepoTest(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(identityQueryPattern)).
		WithArgs("0999999999").
		WillReturnRows(sqlmock.NewRows([]string{"id", "access_level", "name", "contact"}))

	user, err := repo.GetUserByLocalPhone(context.Background(), "0999999999")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, auth.ErrIdentityNotFound)
}

func TestGetUserByLocalPhone_AmbiguousContact(t *testing.T) {
	repo, mock, cleanup := setupIdentityRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "access_level", "name", "contact"}).
		AddRow("usr_1689x", "{}", "Aina Rahman", "0123456789").
		AddRow("usr_2201k", "{}", "Farid Osman", "0123456789")

	mock.ExpectQuery(regexp.QuoteMeta(identityQueryPattern)).
		WithArgs("0123456789").
		WillReturnRows(rows)

	user, err := repo.GetUserByLocalPhone(context.Background(), "0123456789")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, auth.ErrAmbiguousIdentity)
}

func TestGetUserByLocalPhone_QueryError(t *testing.T) {
	repo, mock, cleanup := setupIdentityRepoTest(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(identityQueryPattern)).
		WithArgs("0123456789").
		WillReturnError(errors.New("connection reset"))

	user, err := repo.GetUserByLocalPhone(context.Background(), "0123456789")

	assert.Nil(t, user)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrIdentityNotFound)
}

func TestUserIsAdmin(t *testing.T) {
	tests := []struct {
		name        string
		accessLevel []string
		expected    bool
	}{
		{"admin", []string{"admin"}, true},
		{"superadmin", []string{"superadmin"}, true},
		{"both with extras", []string{"viewer", "superadmin"}, true},
		{"plain user", []string{"viewer"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := models.User{AccessLevel: tt.accessLevel}
			assert.Equal(t, tt.expected, user.IsAdmin())
		})
	}
}
