package dto

// DiscoverUsersParams defines query parameters for the discovery feed.
// UserID is optional; anonymous callers get an unfiltered feed.
type DiscoverUsersParams struct {
	UserID int64 `form:"userId"`
	Limit  int   `form:"limit,default=10"`
}

// DiscoveryUserResponse is a candidate card for the swipe feed. Distance,
// GroupSize, Activity and Budget are generated at read time and are not
// stable between calls.
type DiscoveryUserResponse struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Distance  string   `json:"distance"`
	Image     string   `json:"image"`
	Interests []string `json:"interests"`
	GroupSize int      `json:"groupSize"`
	Activity  string   `json:"activity"`
	Location  string   `json:"location"`
	Budget    string   `json:"budget"`
}
