package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupStatus represents the lifecycle state of a group.
type GroupStatus string

const (
	GroupStatusActive GroupStatus = "active"
	GroupStatusFull   GroupStatus = "full"
)

// GroupFilter selects which groups a listing returns.
type GroupFilter string

const (
	GroupFilterAll       GroupFilter = "all"
	GroupFilterMyGroups  GroupFilter = "my-groups"
	GroupFilterActive    GroupFilter = "active"
	GroupFilterAvailable GroupFilter = "available"
)

// Valid reports whether the filter is one of the recognised values.
func (f GroupFilter) Valid() bool {
	switch f {
	case GroupFilterAll, GroupFilterMyGroups, GroupFilterActive, GroupFilterAvailable:
		return true
	}
	return false
}

// Group represents a meetup group.
type Group struct {
	GroupID         int64
	Name            string
	Activity        string
	Category        string
	MaxMembers      int
	Location        string
	BudgetPerPerson decimal.Decimal
	Status          GroupStatus
	HostID          int64
	CreatedAt       time.Time
}

// GroupSummary is the derived, query-time view of a group used by the read
// model: member counts and avatar lists are never stored, they reflect the
// group_members rows at query time.
type GroupSummary struct {
	Group
	HostName       string
	HostAvatar     string
	MemberCount    int
	MemberAvatars  []string
	NextMeetupDate *time.Time
}
