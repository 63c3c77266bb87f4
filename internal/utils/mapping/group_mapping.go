package mapping

import (
	"github.com/meetmate/meetmate_backend/internal/core/domain"
	"github.com/meetmate/meetmate_backend/internal/models"
)

// ToDomainGroup converts a model Group to a domain Group.
func ToDomainGroup(m models.Group) domain.Group {
	return domain.Group{
		GroupID:         m.ID,
		Name:            m.Name,
		Activity:        m.Activity,
		Category:        m.Category,
		MaxMembers:      m.MaxMembers,
		Location:        m.Location,
		BudgetPerPerson: m.BudgetPerPerson,
		Status:          domain.GroupStatus(m.Status),
		HostID:          m.HostID,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainGroupSummary converts an aggregated group row to a domain summary,
// dropping NULL avatar slots produced by the outer join.
func ToDomainGroupSummary(m models.GroupSummaryRow) domain.GroupSummary {
	s := domain.GroupSummary{
		Group:          ToDomainGroup(m.Group),
		MemberCount:    m.MemberCount,
		NextMeetupDate: m.NextMeetupDate,
	}
	if m.HostName != nil {
		s.HostName = *m.HostName
	}
	if m.HostAvatar != nil {
		s.HostAvatar = *m.HostAvatar
	}
	avatars := make([]string, 0, len(m.MemberAvatars))
	for _, a := range m.MemberAvatars {
		if a != nil && *a != "" {
			avatars = append(avatars, *a)
		}
	}
	s.MemberAvatars = avatars
	return s
}

// ToDomainGroupSummarySlice converts a slice of aggregated group rows.
func ToDomainGroupSummarySlice(ms []models.GroupSummaryRow) []domain.GroupSummary {
	ds := make([]domain.GroupSummary, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGroupSummary(m)
	}
	return ds
}
