package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User mirrors a row of the users table.
type User struct {
	ID            int64           `db:"id"`
	Name          string          `db:"name"`
	Age           int             `db:"age"`
	AvatarURL     *string         `db:"avatar_url"`
	Bio           *string         `db:"bio"`
	Interests     []string        `db:"interests"`
	Location      *string         `db:"location"`
	WalletBalance decimal.Decimal `db:"wallet_balance"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// DiscoveryRow is the projection returned by the discovery feed query:
// a user plus their membership count, both read-only.
type DiscoveryRow struct {
	User
	GroupCount int `db:"group_count"`
}
