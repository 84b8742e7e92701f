package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"podium/pkg/domain"
	"podium/pkg/storage"
	"podium/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newOrganizationMember(email string) domain.Member {
	return domain.Member{
		ID:       domain.MemberID(uuid.New()),
		Email:    email,
		Name:     "Acme Events",
		UserType: domain.UserTypeOrganization,
	}
}

func TestPgSQL_Begin(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	committed := newOrganizationMember("committed@example.com")
	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.StoreMember(ctx, committed, domain.Profile{})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	got, err := pg.MemberByID(ctx, committed.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	rolledBack := newOrganizationMember("rolled-back@example.com")
	tx, err = pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.StoreMember(ctx, rolledBack, domain.Profile{})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	got, err = pg.MemberByID(ctx, rolledBack.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	ok := newOrganizationMember("ok@example.com")
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.StoreMember(ctx, ok, domain.Profile{})

		return err //nolint: wrapcheck
	})
	require.NoError(t, err)

	got, err := pg.MemberByEmail(ctx, "ok@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)

	failed := newOrganizationMember("failed@example.com")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.StoreMember(ctx, failed, domain.Profile{}); err != nil {
			return err //nolint: wrapcheck
		}

		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")

	got, err = pg.MemberByEmail(ctx, "failed@example.com")
	require.NoError(t, err)
	require.Nil(t, got)
}
