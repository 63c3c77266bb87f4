package mapping

import (
	"github.com/meetmate/meetmate_backend/internal/core/domain"
	"github.com/meetmate/meetmate_backend/internal/models"
)

// ToDomainUser converts a model User to a domain User.
func ToDomainUser(m models.User) domain.User {
	u := domain.User{
		UserID:        m.ID,
		Name:          m.Name,
		Age:           m.Age,
		Interests:     m.Interests,
		WalletBalance: m.WalletBalance,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.AvatarURL != nil {
		u.AvatarURL = *m.AvatarURL
	}
	if m.Bio != nil {
		u.Bio = *m.Bio
	}
	if m.Location != nil {
		u.Location = *m.Location
	}
	return u
}

// ToDomainDiscoveryCandidate converts a discovery projection row to its
// domain counterpart.
func ToDomainDiscoveryCandidate(m models.DiscoveryRow) domain.DiscoveryCandidate {
	u := ToDomainUser(m.User)
	return domain.DiscoveryCandidate{
		UserID:     u.UserID,
		Name:       u.Name,
		Age:        u.Age,
		AvatarURL:  u.AvatarURL,
		Bio:        u.Bio,
		Interests:  u.Interests,
		Location:   u.Location,
		GroupCount: m.GroupCount,
	}
}

// ToDomainDiscoveryCandidateSlice converts a slice of discovery rows.
func ToDomainDiscoveryCandidateSlice(ms []models.DiscoveryRow) []domain.DiscoveryCandidate {
	ds := make([]domain.DiscoveryCandidate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDiscoveryCandidate(m)
	}
	return ds
}
