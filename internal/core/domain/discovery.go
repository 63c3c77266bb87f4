package domain

// ConnectionStatus represents the state of a connection between two users.
type ConnectionStatus string

const (
	ConnectionStatusConnected ConnectionStatus = "connected"
	ConnectionStatusPending   ConnectionStatus = "pending"
)

// DiscoveryCandidate is a user eligible to appear in the discovery feed:
// not the caller, and not already connected or pending-connected to them.
type DiscoveryCandidate struct {
	UserID     int64
	Name       string
	Age        int
	AvatarURL  string
	Bio        string
	Interests  []string
	Location   string
	GroupCount int
}
