package gateway

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rohitgunthal18/pixico-core/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens a per-test in-memory store with the content schema
// migrated. The named DSN keeps the database alive across pooled connections.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.CategoryModel{},
		&models.AiModelModel{},
		&models.PromptModel{},
		&models.BlogModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestPublishedScopeExcludesDrafts(t *testing.T) {
	db := openTestDB(t)
	rows := []models.PromptModel{
		{Slug: "live", Title: "Live", Status: models.StatusPublished},
		{Slug: "wip", Title: "WIP", Status: models.StatusDraft},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := Find[models.PromptModel](Published(db.Model(&models.PromptModel{})))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "live" {
		t.Errorf("published list = %+v, want only the live row", got)
	}

	draft, err := First[models.PromptModel](Published(db), "slug = ?", "wip")
	if err != nil {
		t.Fatalf("First: %v", err)
	}
	if draft != nil {
		t.Error("draft row resolved through the published scope")
	}
}

func TestFirstDistinguishesNotFound(t *testing.T) {
	db := openTestDB(t)
	if err := db.Create(&models.BlogModel{Slug: "hello", Title: "Hello"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	row, err := First[models.BlogModel](db, "slug = ?", "hello")
	if err != nil || row == nil {
		t.Fatalf("First(existing) = (%v, %v), want row", row, err)
	}

	missing, err := First[models.BlogModel](db, "slug = ?", "nope")
	if err != nil {
		t.Errorf("First(missing) err = %v, want nil", err)
	}
	if missing != nil {
		t.Errorf("First(missing) = %+v, want nil", missing)
	}
}

func TestFindNeverNil(t *testing.T) {
	db := openTestDB(t)
	got, err := Find[models.CategoryModel](db.Model(&models.CategoryModel{}))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got == nil {
		t.Error("Find returned nil for an empty table, want empty slice")
	}
}

func TestNewWithDBServesBothScopes(t *testing.T) {
	gw := NewWithDB(openTestDB(t))
	if gw.Inert() {
		t.Fatal("wrapped handle reported inert")
	}
	r, err := gw.Reader()
	if err != nil || r == nil {
		t.Fatalf("Reader = (%v, %v)", r, err)
	}
	w, err := gw.Writer()
	if err != nil || w == nil {
		t.Fatalf("Writer = (%v, %v)", w, err)
	}
	if r != w {
		t.Error("single-handle gateway should serve the same handle to both scopes")
	}
}
