package profile

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rohitgunthal18/pixico-core/internal/gateway"
	"github.com/rohitgunthal18/pixico-core/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(NewService(gateway.NewInert()))
	noop := func(c *gin.Context) { c.Next() }
	h.RegisterRoutes(r.Group("/api/v2"), noop)
	return r
}

// The role enumeration is closed. Anything outside it is rejected before the
// database sees the request, which the inert gateway would turn into a 500.
func TestUpdateRoleRejectsUnknownRoles(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{name: "made-up role", body: `{"role": "superadmin"}`},
		{name: "empty role", body: `{"role": ""}`},
		{name: "cased role", body: `{"role": "Admin"}`},
		{name: "no body", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/api/v2/admin/users/u1/role", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d (body %s)", w.Code, http.StatusBadRequest, w.Body.String())
			}
		})
	}
}

func TestValidRole(t *testing.T) {
	tests := []struct {
		role  string
		valid bool
	}{
		{models.RoleUser, true},
		{models.RoleAdmin, true},
		{"superadmin", false},
		{"", false},
		{"ADMIN", false},
	}
	for _, tt := range tests {
		if got := models.ValidRole(tt.role); got != tt.valid {
			t.Errorf("ValidRole(%q) = %v, want %v", tt.role, got, tt.valid)
		}
	}
}

func TestUpdateRoleRejectsInvalidAtService(t *testing.T) {
	svc := NewService(gateway.NewInert())
	if _, err := svc.UpdateRole("u1", "owner"); err == nil {
		t.Error("UpdateRole accepted a role outside the enumeration")
	}
}

func openStoreService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.ProfileModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(gateway.NewWithDB(db)), db
}

// Promoting a user writes once; repeating the same update settles without
// touching the row again.
func TestUpdateRoleIsIdempotent(t *testing.T) {
	svc, db := openStoreService(t)
	p := models.ProfileModel{Email: "ada@example.com", Role: models.RoleUser, PasswordHash: "x"}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := svc.UpdateRole(p.ID, models.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
	if got.Role != models.RoleAdmin {
		t.Fatalf("Role = %q, want admin", got.Role)
	}

	sentinel := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := db.Model(&models.ProfileModel{}).Where("id = ?", p.ID).
		UpdateColumn("updated_at", sentinel).Error; err != nil {
		t.Fatalf("set sentinel: %v", err)
	}

	got, err = svc.UpdateRole(p.ID, models.RoleAdmin)
	if err != nil {
		t.Fatalf("repeat UpdateRole: %v", err)
	}
	if got.Role != models.RoleAdmin {
		t.Errorf("Role = %q after repeat, want admin", got.Role)
	}

	var stored models.ProfileModel
	if err := db.First(&stored, "id = ?", p.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !stored.UpdatedAt.Equal(sentinel) {
		t.Errorf("UpdatedAt = %v, a same-role update wrote the row", stored.UpdatedAt)
	}
	if stored.Role != models.RoleAdmin {
		t.Errorf("stored Role = %q, want admin", stored.Role)
	}
}

func TestUpdateRoleUnknownUserIsNotFound(t *testing.T) {
	svc, _ := openStoreService(t)
	p, err := svc.UpdateRole("no-such-id", models.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
	if p != nil {
		t.Errorf("UpdateRole(unknown) = %+v, want nil", p)
	}
}
