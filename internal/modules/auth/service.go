package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/rohitgunthal18/pixico-core/internal/gateway"
	"github.com/rohitgunthal18/pixico-core/internal/models"
	sessionpkg "github.com/rohitgunthal18/pixico-core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrBadCredentials covers unknown email and wrong password alike, so the
	// response cannot be used to enumerate which accounts exist.
	ErrBadCredentials = errors.New("invalid email or password")
	// ErrNotAdmin is returned when a valid account without the admin role
	// attempts to log in. No session survives this path.
	ErrNotAdmin = errors.New("unauthorized")
)

type LoginDTO struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	Token   string               `json:"token"`
	Profile *models.ProfileModel `json:"profile"`
}

type Service struct {
	gw *gateway.Gateway
}

func NewService(gw *gateway.Gateway) *Service { return &Service{gw: gw} }

// Login authenticates email+password, then requires the admin role before any
// session is issued. A non-admin account never gets a live session to sign
// back out of.
func (s *Service) Login(dto *LoginDTO, ip, ua string) (*LoginResult, error) {
	db, err := s.gw.Writer()
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	profile, err := gateway.First[models.ProfileModel](db, "email = ?", email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(dto.Password)) != nil {
		return nil, ErrBadCredentials
	}
	if profile.Role != models.RoleAdmin {
		return nil, ErrNotAdmin
	}

	token, _, err := sessionpkg.Issue(db, profile.ID, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	db.Model(profile).Update("last_login_at", now)
	profile.LastLoginAt = &now

	return &LoginResult{Token: token, Profile: profile}, nil
}

// Logout revokes the session behind the presented token.
func (s *Service) Logout(profileID, sessionID string) error {
	db, err := s.gw.Writer()
	if err != nil {
		return err
	}
	return sessionpkg.Revoke(db, profileID, sessionID)
}

func (s *Service) GetProfile(id string) (*models.ProfileModel, error) {
	db, err := s.gw.Reader()
	if err != nil {
		return nil, err
	}
	return gateway.First[models.ProfileModel](db, "id = ?", id)
}

// HashPassword is used by seeding and account management paths.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
