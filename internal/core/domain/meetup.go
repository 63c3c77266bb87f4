package domain

import "time"

// PlanStatus represents the confirmation state of a meetup plan.
type PlanStatus string

const (
	PlanStatusConfirmed PlanStatus = "confirmed"
	PlanStatusPending   PlanStatus = "pending"
)

// MeetupPlan is a scheduled meetup for a group. The read model only uses it
// to derive the "next meetup" display text and to count participants for
// plan-linked wallet transactions.
type MeetupPlan struct {
	PlanID      int64
	GroupID     int64
	Title       string
	PlannedDate time.Time
	Status      PlanStatus
	CreatedAt   time.Time
}
