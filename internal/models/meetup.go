package models

import "time"

// PlanStatus mirrors the meetup_plans.status column.
type PlanStatus string

const (
	PlanStatusConfirmed PlanStatus = "confirmed"
	PlanStatusPending   PlanStatus = "pending"
)

// MeetupPlan mirrors a row of the meetup_plans table.
type MeetupPlan struct {
	ID          int64      `db:"id"`
	GroupID     int64      `db:"group_id"`
	Title       string     `db:"title"`
	PlannedDate time.Time  `db:"planned_date"`
	Status      PlanStatus `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
}
