package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel mirrors the 'device_tokens' table. Tokens are unique across
// users; re-registering a token moves it to the new user.
type DeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:varchar(512);unique;not null"`
	Platform  string    `gorm:"type:varchar(20)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "device_tokens"
}
