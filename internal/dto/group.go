package dto

import (
	"time"

	"github.com/meetmate/meetmate_backend/internal/core/domain"
	"github.com/meetmate/meetmate_backend/internal/utils/display"
)

// ListGroupsParams defines query parameters for the group listing.
// UserID is optional except for the my-groups filter.
type ListGroupsParams struct {
	UserID int64  `form:"userId"`
	Filter string `form:"filter,default=all"`
}

// GroupHost identifies the host shown on a group card.
type GroupHost struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// GroupSummaryResponse is a display-ready group card: derived member counts,
// up to five member avatars, a formatted next-meetup label and a whole-Rand
// budget string.
type GroupSummaryResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Activity      string    `json:"activity"`
	Category      string    `json:"category"`
	Members       int       `json:"members"`
	MaxMembers    int       `json:"maxMembers"`
	NextMeetup    string    `json:"nextMeetup"`
	Location      string    `json:"location"`
	Budget        string    `json:"budget"`
	Host          GroupHost `json:"host"`
	MemberAvatars []string  `json:"memberAvatars"`
	Status        string    `json:"status"`
}

// maxMemberAvatars caps the avatar strip shown on a group card.
const maxMemberAvatars = 5

// ToGroupSummaryResponse converts a domain group summary to its display view.
func ToGroupSummaryResponse(now time.Time, s domain.GroupSummary) GroupSummaryResponse {
	avatars := s.MemberAvatars
	if len(avatars) > maxMemberAvatars {
		avatars = avatars[:maxMemberAvatars]
	}
	return GroupSummaryResponse{
		ID:            s.GroupID,
		Name:          s.Name,
		Activity:      s.Activity,
		Category:      s.Category,
		Members:       s.MemberCount,
		MaxMembers:    s.MaxMembers,
		NextMeetup:    display.NextMeetup(now, s.NextMeetupDate),
		Location:      s.Location,
		Budget:        display.Budget(s.BudgetPerPerson),
		Host:          GroupHost{Name: s.HostName, Avatar: s.HostAvatar},
		MemberAvatars: avatars,
		Status:        string(s.Status),
	}
}

// ToGroupSummaryResponseSlice converts a slice of domain group summaries.
func ToGroupSummaryResponseSlice(now time.Time, ss []domain.GroupSummary) []GroupSummaryResponse {
	out := make([]GroupSummaryResponse, len(ss))
	for i, s := range ss {
		out[i] = ToGroupSummaryResponse(now, s)
	}
	return out
}
