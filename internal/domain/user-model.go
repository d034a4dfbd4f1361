package domain

import "time"

type UserStatus string

const (
	StatusOnline  UserStatus = "Online"
	StatusOffline UserStatus = "Offline"
	StatusAway    UserStatus = "Away"
)

func (s UserStatus) Valid() bool {
	switch s {
	case StatusOnline, StatusOffline, StatusAway:
		return true
	}
	return false
}

type User struct {
	UserID       uint       `gorm:"primaryKey;column:user_id" json:"user_id"`
	Username     string     `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	Status       UserStatus `gorm:"type:varchar(10);not null;default:Offline" json:"status"`
	// Single slot per user: a new login or refresh overwrites the
	// previous value, revoking the old session.
	RefreshToken *string   `gorm:"uniqueIndex" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
