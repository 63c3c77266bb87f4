package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a member of the platform in the domain.
// WalletBalance is denormalized from the wallet transaction log and is
// mutated only by the wallet service.
type User struct {
	UserID        int64
	Name          string
	Age           int
	AvatarURL     string
	Bio           string
	Interests     []string
	Location      string
	WalletBalance decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
