package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"podium/pkg/domain"
	"podium/pkg/storage/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Counts_Mock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	for table, n := range map[string]int64{"members": 5, "speakers": 3, "organizations": 2, "opportunities": 7} {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM "` + table + `"`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(n))
	}
	mock.MatchExpectationsInOrder(false)

	stats, err := postgres.NewFromDB(db).Counts(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.Stats{Members: 5, Speakers: 3, Organizations: 2, Opportunities: 7}, stats)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_Counts_Mock_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM "members"`)).
		WillReturnError(errors.New("connection reset"))

	_, err = postgres.NewFromDB(db).Counts(context.Background())
	require.ErrorContains(t, err, "could not count members")
}

func TestPgSQL_MemberByEmail_Mock_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "members" WHERE ("email" = 'nobody@example.com')`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "user_type", "plan_id", "created_at"}))

	member, err := postgres.NewFromDB(db).MemberByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, member)
	require.NoError(t, mock.ExpectationsWereMet())
}
