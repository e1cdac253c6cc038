package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceToken is a push-notification registration for one of a user's
// devices. Tokens are upserted on registration and pruned when the push
// provider reports them stale.
type DeviceToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string // The FCM registration token.
	Platform  string // "ios", "android" or "web".
	CreatedAt time.Time
	UpdatedAt time.Time
}
