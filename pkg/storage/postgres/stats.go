package postgres

import (
	"context"
	"fmt"
	"podium/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

// Counts returns the row count of each member and content table.
func (p *PgSQL) Counts(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	for _, c := range []struct {
		table string
		dst   *int64
	}{
		{membersTable, &stats.Members},
		{speakersTable, &stats.Speakers},
		{organizationsTable, &stats.Organizations},
		{opportunitiesTable, &stats.Opportunities},
	} {
		if _, err := p.Builder.From(c.table).
			Select(goqu.COUNT(goqu.Star())).
			Executor().ScanValContext(ctx, c.dst); err != nil {
			return domain.Stats{}, fmt.Errorf("could not count %s: %w", c.table, err)
		}
	}

	return stats, nil
}
