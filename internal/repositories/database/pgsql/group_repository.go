package pgsql

import (
	"context"

	"github.com/meetmate/meetmate_backend/internal/apperrors"
	"github.com/meetmate/meetmate_backend/internal/core/domain"
	portsrepo "github.com/meetmate/meetmate_backend/internal/core/ports/repositories"
	"github.com/meetmate/meetmate_backend/internal/models"
	"github.com/meetmate/meetmate_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGroupRepository struct {
	BaseRepository
}

// newPgxGroupRepository creates a new repository for the group read model.
func newPgxGroupRepository(pool *pgxpool.Pool) portsrepo.GroupRepositoryFacade {
	return &PgxGroupRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxGroupRepository implements portsrepo.GroupRepositoryFacade
var _ portsrepo.GroupRepositoryFacade = (*PgxGroupRepository)(nil)

// ListGroupSummaries aggregates group cards in one round trip: member count
// and avatar list from the membership join (avatars ordered by join time),
// the earliest upcoming confirmed/pending plan via a lateral subquery, and
// the host joined in for display.
func (r *PgxGroupRepository) ListGroupSummaries(ctx context.Context, opts portsrepo.GroupListOptions) ([]domain.GroupSummary, error) {
	baseQuery := `
		SELECT g.id, g.name, g.activity, g.category, g.max_members, g.location,
		       g.budget_per_person, g.status, g.host_id, g.created_at,
		       u.name AS host_name,
		       u.avatar_url AS host_avatar,
		       COUNT(gm.user_id) AS member_count,
		       ARRAY_AGG(u2.avatar_url ORDER BY gm.joined_at) AS member_avatars,
		       np.planned_date AS next_meetup_date
		FROM groups g
		LEFT JOIN users u ON g.host_id = u.id
		LEFT JOIN group_members gm ON g.id = gm.group_id
		LEFT JOIN users u2 ON gm.user_id = u2.id
		LEFT JOIN LATERAL (
		    SELECT mp.planned_date
		    FROM meetup_plans mp
		    WHERE mp.group_id = g.id
		      AND mp.status IN ('confirmed', 'pending')
		      AND mp.planned_date >= CURRENT_TIMESTAMP
		    ORDER BY mp.planned_date ASC
		    LIMIT 1
		) np ON TRUE
	`

	filterClause := `WHERE 1=1`
	havingClause := ``
	args := []interface{}{}

	switch opts.Filter {
	case domain.GroupFilterMyGroups:
		filterClause += ` AND g.id IN (SELECT group_id FROM group_members WHERE user_id = $1)`
		args = append(args, opts.UserID)
	case domain.GroupFilterActive:
		filterClause += ` AND g.status = 'active'`
	case domain.GroupFilterAvailable:
		filterClause += ` AND g.status = 'active'`
		if opts.StrictAvailable {
			havingClause = ` HAVING COUNT(gm.user_id) < g.max_members`
		}
	}

	groupByClause := `
		GROUP BY g.id, g.name, g.activity, g.category, g.max_members, g.location,
		         g.budget_per_person, g.status, g.host_id, g.created_at,
		         u.name, u.avatar_url, np.planned_date
	`
	orderByClause := `ORDER BY g.created_at DESC`

	query := baseQuery + " " + filterClause + groupByClause + havingClause + " " + orderByClause + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query group summaries", err)
	}
	defer rows.Close()

	summaries := []models.GroupSummaryRow{}
	for rows.Next() {
		var m models.GroupSummaryRow
		err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Activity,
			&m.Category,
			&m.MaxMembers,
			&m.Location,
			&m.BudgetPerPerson,
			&m.Status,
			&m.HostID,
			&m.CreatedAt,
			&m.HostName,
			&m.HostAvatar,
			&m.MemberCount,
			&m.MemberAvatars,
			&m.NextMeetupDate,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan group summary row", err)
		}
		summaries = append(summaries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating group summary rows", err)
	}

	return mapping.ToDomainGroupSummarySlice(summaries), nil
}
