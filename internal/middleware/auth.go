package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rohitgunthal18/pixico-core/internal/gateway"
	"github.com/rohitgunthal18/pixico-core/internal/models"
	jwtpkg "github.com/rohitgunthal18/pixico-core/internal/pkg/jwt"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/response"
	sessionpkg "github.com/rohitgunthal18/pixico-core/internal/pkg/session"
)

const (
	ContextKeyProfileID = "profile_id"
	ContextKeySID       = "session_id"
	ContextKeyRole      = "role"
)

// AdminAuth enforces a valid session belonging to a profile with the admin
// role. An authenticated non-admin gets 403 and no request-scoped identity;
// there is no authenticated-but-unauthorized state.
func AdminAuth(gw *gateway.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, claims, err := validate(gw, extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		if profile.Role != models.RoleAdmin {
			response.ForbiddenMsg(c, "unauthorized")
			return
		}
		c.Set(ContextKeyProfileID, profile.ID)
		c.Set(ContextKeySID, claims.SessionID)
		c.Set(ContextKeyRole, profile.Role)
		c.Next()
	}
}

// OptionalAuth sets the request identity if a valid token is present, but does
// not block the request. Used so caches treat authenticated traffic as private.
func OptionalAuth(gw *gateway.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		if profile, claims, err := validate(gw, extractToken(c)); err == nil {
			c.Set(ContextKeyProfileID, profile.ID)
			c.Set(ContextKeySID, claims.SessionID)
			c.Set(ContextKeyRole, profile.Role)
		}
		c.Next()
	}
}

func validate(gw *gateway.Gateway, rawToken string) (*models.ProfileModel, *jwtpkg.Claims, error) {
	token := NormalizeToken(rawToken)
	if token == "" {
		return nil, nil, errors.New("token is required")
	}

	claims, err := jwtpkg.Parse(token)
	if err != nil {
		return nil, nil, err
	}

	db, err := gw.Reader()
	if err != nil {
		return nil, nil, err
	}

	active, err := sessionpkg.IsActive(db, claims.ProfileID, claims.SessionID)
	if err != nil {
		return nil, nil, err
	}
	if !active {
		return nil, nil, errors.New("session expired or revoked")
	}

	profile, err := gateway.First[models.ProfileModel](db, "id = ?", claims.ProfileID)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, errors.New("profile not found")
	}
	return profile, claims, nil
}

// CurrentProfileID extracts the authenticated profile ID from context.
func CurrentProfileID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyProfileID)
	id, _ := v.(string)
	return id
}

// CurrentSessionID extracts the authenticated session ID from context.
func CurrentSessionID(c *gin.Context) string {
	v, _ := c.Get(ContextKeySID)
	id, _ := v.(string)
	return id
}

// IsAuthenticated returns true if the request carries a valid identity.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentProfileID(c) != ""
}

func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth != "" {
		return NormalizeToken(auth)
	}
	if cookie, err := c.Cookie("pixico_token"); err == nil && cookie != "" {
		return NormalizeToken(cookie)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
