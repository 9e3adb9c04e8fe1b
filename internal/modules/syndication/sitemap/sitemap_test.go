package sitemap

import (
	"encoding/xml"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rohitgunthal18/pixico-core/internal/gateway"
	"github.com/rohitgunthal18/pixico-core/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestEntriesInertGateway(t *testing.T) {
	svc := NewService(gateway.NewInert(), "https://pixico.example.com/")

	urls, err := svc.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(urls) != len(staticRoutes) {
		t.Fatalf("got %d entries, want %d static routes", len(urls), len(staticRoutes))
	}
	if urls[0].Loc != "https://pixico.example.com/" {
		t.Errorf("root loc = %q", urls[0].Loc)
	}
	for _, u := range urls {
		if !strings.HasPrefix(u.Loc, "https://pixico.example.com/") {
			t.Errorf("loc %q is not absolute under the base URL", u.Loc)
		}
	}
}

func TestRenderProducesValidXML(t *testing.T) {
	svc := NewService(gateway.NewInert(), "https://pixico.example.com")

	body, err := svc.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(string(body), xml.Header) {
		t.Error("output missing XML declaration")
	}

	var parsed urlSet
	if err := xml.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("output is not valid XML: %v", err)
	}
	if parsed.Xmlns != xmlns {
		t.Errorf("xmlns = %q, want %q", parsed.Xmlns, xmlns)
	}
	if len(parsed.URLs) != len(staticRoutes) {
		t.Errorf("parsed %d urls, want %d", len(parsed.URLs), len(staticRoutes))
	}
}

func TestLastMod(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	if got := lastMod(ts); got != "2026-03-14" {
		t.Errorf("lastMod = %q, want 2026-03-14", got)
	}
	if got := lastMod(time.Time{}); got != "" {
		t.Errorf("lastMod(zero) = %q, want empty", got)
	}
}

func openStoreService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.CategoryModel{}, &models.PromptModel{}, &models.BlogModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(gateway.NewWithDB(db), "https://pixico.example.com"), db
}

// Draft rows must never produce a sitemap entry.
func TestEntriesListPublishedRowsOnly(t *testing.T) {
	svc, db := openStoreService(t)
	for _, row := range []interface{}{
		&models.PromptModel{Slug: "sunset", Title: "Sunset", Status: models.StatusPublished},
		&models.PromptModel{Slug: "wip", Title: "WIP", Status: models.StatusDraft},
		&models.BlogModel{Slug: "launch", Title: "Launch", Status: models.StatusPublished},
		&models.BlogModel{Slug: "unfinished", Title: "Unfinished", Status: models.StatusDraft},
		&models.CategoryModel{Name: "Art", Slug: "art"},
	} {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	urls, err := svc.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}

	locs := make(map[string]bool, len(urls))
	for _, u := range urls {
		locs[u.Loc] = true
	}
	for _, want := range []string{
		"https://pixico.example.com/prompts/sunset",
		"https://pixico.example.com/blogs/launch",
		"https://pixico.example.com/categories/art",
	} {
		if !locs[want] {
			t.Errorf("missing entry %s", want)
		}
	}
	for _, missing := range []string{
		"https://pixico.example.com/prompts/wip",
		"https://pixico.example.com/blogs/unfinished",
	} {
		if locs[missing] {
			t.Errorf("draft row produced entry %s", missing)
		}
	}
	if len(urls) != len(staticRoutes)+3 {
		t.Errorf("got %d entries, want %d", len(urls), len(staticRoutes)+3)
	}
}

func TestStaticRoutePriorities(t *testing.T) {
	if staticRoutes[0].Loc != "/" || staticRoutes[0].Priority != "1.0" {
		t.Errorf("root route = %+v, want / with priority 1.0", staticRoutes[0])
	}
	for _, r := range staticRoutes {
		if r.Priority == "" || r.ChangeFreq == "" {
			t.Errorf("static route %q missing priority or changefreq", r.Loc)
		}
	}
}
