package models

import "time"

// Profile roles. Role gates the admin area; everything else is a plain user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether v is one of the accepted role values.
func ValidRole(v string) bool { return v == RoleUser || v == RoleAdmin }

// ProfileModel is a site account. The password hash lives here because this
// server owns its credentials instead of delegating to a hosted auth service.
type ProfileModel struct {
	Base
	Email        string     `json:"email"      gorm:"uniqueIndex;not null"`
	FullName     string     `json:"full_name"`
	AvatarURL    string     `json:"avatar_url"`
	Role         string     `json:"role"       gorm:"default:user;index"`
	PasswordHash string     `json:"-"          gorm:"not null"`
	LastLoginAt  *time.Time `json:"last_login_at"`
}

func (ProfileModel) TableName() string { return "profiles" }

// SessionModel is an admin login session. A JWT carries the session id; the
// row is the authoritative source for revocation and expiry.
type SessionModel struct {
	Base
	ProfileID string     `json:"-"          gorm:"index;not null"`
	IP        string     `json:"ip"`
	UA        string     `json:"ua"         gorm:"type:text"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"index;not null"`
	RevokedAt *time.Time `json:"revoked_at"`
}

func (SessionModel) TableName() string { return "sessions" }
