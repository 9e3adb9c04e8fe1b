package session

import (
	"strings"
	"time"

	"github.com/rohitgunthal18/pixico-core/internal/models"
	jwtpkg "github.com/rohitgunthal18/pixico-core/internal/pkg/jwt"
	"gorm.io/gorm"
)

const DefaultTTL = 7 * 24 * time.Hour

// Issue creates a DB session row and signs a JWT bound to it. The row is the
// single authoritative session source; revoking it invalidates the token.
func Issue(db *gorm.DB, profileID, ip, ua string, ttl time.Duration) (string, *models.SessionModel, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := time.Now()
	s := &models.SessionModel{
		ProfileID: profileID,
		IP:        strings.TrimSpace(ip),
		UA:        strings.TrimSpace(ua),
		ExpiresAt: now.Add(ttl),
	}
	if err := db.Create(s).Error; err != nil {
		return "", nil, err
	}

	token, err := jwtpkg.Sign(profileID, s.ID, ttl)
	if err != nil {
		_ = db.Delete(s).Error
		return "", nil, err
	}
	return token, s, nil
}

// IsActive reports whether a session row is live (not revoked, not expired).
func IsActive(db *gorm.DB, profileID, sessionID string) (bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return false, nil
	}

	var count int64
	err := db.Model(&models.SessionModel{}).
		Where("id = ? AND profile_id = ? AND revoked_at IS NULL AND expires_at > ?", sessionID, profileID, time.Now()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Revoke marks a session as revoked.
func Revoke(db *gorm.DB, profileID, sessionID string) error {
	now := time.Now()
	return db.Model(&models.SessionModel{}).
		Where("id = ? AND profile_id = ? AND revoked_at IS NULL", sessionID, profileID).
		Update("revoked_at", now).Error
}

// PurgeExpired deletes sessions past expiry. Run from cron.
func PurgeExpired(db *gorm.DB) (int64, error) {
	result := db.Unscoped().
		Where("expires_at < ? OR revoked_at IS NOT NULL", time.Now().Add(-24*time.Hour)).
		Delete(&models.SessionModel{})
	return result.RowsAffected, result.Error
}
