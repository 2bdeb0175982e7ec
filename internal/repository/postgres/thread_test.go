package postgres

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/domain"
)

func TestThreadRepository_Add(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewThreadRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "threads"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.Add(context.Background(), domain.AddThread{Title: "sebuah thread", Body: "sebuah body", Owner: "user-123"})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got.ID, "thread-"))
	assert.Equal(t, "sebuah thread", got.Title)
	assert.Equal(t, "user-123", got.Owner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestThreadRepository_GetByID(t *testing.T) {
	date := time.Date(2021, 8, 8, 7, 19, 9, 775000000, time.UTC)
	query := regexp.QuoteMeta(`LEFT JOIN users ON users.id = threads.owner WHERE threads.id = $1`)

	tests := []struct {
		name         string
		mockBehavior func(mock sqlmock.Sqlmock)
		expected     domain.Thread
		expectedErr  error
	}{
		{
			name: "found",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "owner", "date", "username"}).
						AddRow("thread-123", "sebuah thread", "sebuah body", "user-123", date, "dicoding"))
			},
			expected: domain.Thread{
				ID: "thread-123", Title: "sebuah thread", Body: "sebuah body",
				Owner: "user-123", Username: "dicoding", Date: date,
			},
		},
		{
			name: "owner row missing",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "owner", "date", "username"}).
						AddRow("thread-123", "sebuah thread", "sebuah body", "user-123", date, nil))
			},
			expected: domain.Thread{
				ID: "thread-123", Title: "sebuah thread", Body: "sebuah body",
				Owner: "user-123", Date: date,
			},
		},
		{
			name: "not found",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "owner", "date", "username"}))
			},
			expectedErr: domain.ErrThreadNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewThreadRepository(db)
			tt.mockBehavior(mock)

			got, err := repo.GetByID(context.Background(), "thread-123")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestThreadRepository_GetByID_DBError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewThreadRepository(db)
	boom := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "threads"`)).WillReturnError(boom)

	_, err := repo.GetByID(context.Background(), "thread-123")

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestThreadRepository_FetchIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewThreadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "threads" WHERE id > $1 ORDER BY id ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("thread-a").AddRow("thread-b"))

	ids, err := repo.FetchIDs(context.Background(), "", 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"thread-a", "thread-b"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
