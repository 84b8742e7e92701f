package postgres

import (
	"context"
	"errors"
	"fmt"
	"podium/pkg/domain"
	"podium/pkg/serrors"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	membersTable       = "members"
	speakersTable      = "speakers"
	organizationsTable = "organizations"

	uniqueViolation = "23505"
)

// StoreMember inserts the member row and its profile row. Callers wanting
// both rows or neither must run it inside WithTx.
func (p *PgSQL) StoreMember(ctx context.Context, member domain.Member, profile domain.Profile) (*domain.Member, error) {
	var row PgMember
	row.FromDomain(member)

	var stored PgMember
	if _, err := p.Builder.Insert(membersTable).
		Rows(row).
		Returning(&PgMember{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		if isUniqueViolation(err) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "member %s already exists", member.Email)
		}

		return nil, fmt.Errorf("could not store member into pg: %w", err)
	}

	switch member.UserType {
	case domain.UserTypeSpeaker:
		var speaker domain.Speaker
		if profile.Speaker != nil {
			speaker = *profile.Speaker
		}
		speaker.MemberID = member.ID
		if speaker.Name == "" {
			speaker.Name = member.Name
		}

		var pgSpeaker PgSpeaker
		pgSpeaker.FromDomain(speaker)
		if _, err := p.Builder.Insert(speakersTable).Rows(pgSpeaker).Executor().ExecContext(ctx); err != nil {
			return nil, fmt.Errorf("could not store speaker profile into pg: %w", err)
		}
	case domain.UserTypeOrganization:
		var org domain.Organization
		if profile.Organization != nil {
			org = *profile.Organization
		}
		org.MemberID = member.ID
		if org.Name == "" {
			org.Name = member.Name
		}

		var pgOrg PgOrganization
		pgOrg.FromDomain(org)
		if _, err := p.Builder.Insert(organizationsTable).Rows(pgOrg).Executor().ExecContext(ctx); err != nil {
			return nil, fmt.Errorf("could not store organization profile into pg: %w", err)
		}
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unknown user type %q", member.UserType)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) MemberByEmail(ctx context.Context, email string) (*domain.Member, error) {
	var row PgMember
	found, err := p.Builder.From(membersTable).
		Where(goqu.I("email").Eq(email)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch member by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) MemberByID(ctx context.Context, id domain.MemberID) (*domain.Member, error) {
	var row PgMember
	found, err := p.Builder.From(membersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch member by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteMember(ctx context.Context, id domain.MemberID) (bool, error) {
	res, err := p.Builder.Delete(membersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete member: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read deleted rows: %w", err)
	}

	return n > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
