package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupStatus mirrors the groups.status column.
type GroupStatus string

const (
	GroupStatusActive GroupStatus = "active"
	GroupStatusFull   GroupStatus = "full"
)

// Group mirrors a row of the groups table.
type Group struct {
	ID              int64           `db:"id"`
	Name            string          `db:"name"`
	Activity        string          `db:"activity"`
	Category        string          `db:"category"`
	MaxMembers      int             `db:"max_members"`
	Location        string          `db:"location"`
	BudgetPerPerson decimal.Decimal `db:"budget_per_person"`
	Status          GroupStatus     `db:"status"`
	HostID          int64           `db:"host_id"`
	CreatedAt       time.Time       `db:"created_at"`
}

// GroupSummaryRow is the aggregated projection produced by the group listing
// query. MemberAvatars may contain NULL slots from the outer join and is
// cleaned up by the service layer.
type GroupSummaryRow struct {
	Group
	HostName       *string    `db:"host_name"`
	HostAvatar     *string    `db:"host_avatar"`
	MemberCount    int        `db:"member_count"`
	MemberAvatars  []*string  `db:"member_avatars"`
	NextMeetupDate *time.Time `db:"next_meetup_date"`
}
