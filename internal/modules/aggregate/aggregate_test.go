package aggregate

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rohitgunthal18/pixico-core/internal/gateway"
	"github.com/rohitgunthal18/pixico-core/internal/models"
	"github.com/rohitgunthal18/pixico-core/internal/modules/content/category"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newInertService() *Service {
	gw := gateway.NewInert()
	return NewService(gw, category.NewService(gw), zap.NewNop())
}

func openStoreService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.CategoryModel{}, &models.AiModelModel{}, &models.PromptModel{}, &models.BlogModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	gw := gateway.NewWithDB(db)
	return NewService(gw, category.NewService(gw), zap.NewNop()), db
}

func TestHomeDegradesToEmptySections(t *testing.T) {
	data := newInertService().Home()

	if data.HeaderCategories == nil {
		t.Error("HeaderCategories is nil, want empty slice")
	}
	if data.FooterCategories == nil {
		t.Error("FooterCategories is nil, want empty slice")
	}
	if data.ShowcaseCategories == nil {
		t.Error("ShowcaseCategories is nil, want empty slice")
	}
	if data.FeaturedPrompts == nil {
		t.Error("FeaturedPrompts is nil, want empty slice")
	}
	if data.LatestBlogs == nil {
		t.Error("LatestBlogs is nil, want empty slice")
	}
	if len(data.FeaturedPrompts) != 0 {
		t.Errorf("FeaturedPrompts has %d rows, want 0", len(data.FeaturedPrompts))
	}
}

// A slug with no row is a soft 404 with its own title, served as data.
func TestCategoryPageMissingSlugIsSoftNotFound(t *testing.T) {
	svc, _ := openStoreService(t)

	data, err := svc.CategoryPage("nonexistent-slug")
	if err != nil {
		t.Fatalf("CategoryPage: %v", err)
	}
	if data.Found {
		t.Error("Found = true, want false")
	}
	if data.Title != "Category Not Found" {
		t.Errorf("Title = %q, want %q", data.Title, "Category Not Found")
	}
	if data.Category != nil {
		t.Error("Category is set on a not-found page")
	}
	if data.Prompts == nil || len(data.Prompts) != 0 {
		t.Errorf("Prompts = %v, want empty slice", data.Prompts)
	}
}

// A failing lookup is an error, not a not-found page.
func TestCategoryPageLookupFailureIsError(t *testing.T) {
	_, err := newInertService().CategoryPage("art")
	if err == nil {
		t.Fatal("CategoryPage on an unreachable store returned data, want error")
	}
}

func TestCategoryPageShowsPublishedPromptsOnly(t *testing.T) {
	svc, db := openStoreService(t)
	cat := models.CategoryModel{Name: "Art", Slug: "art"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	for _, p := range []models.PromptModel{
		{Slug: "sunset", Title: "Sunset", Status: models.StatusPublished, CategoryID: &cat.ID},
		{Slug: "wip", Title: "WIP", Status: models.StatusDraft, CategoryID: &cat.ID},
	} {
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed prompt: %v", err)
		}
	}

	data, err := svc.CategoryPage("art")
	if err != nil {
		t.Fatalf("CategoryPage: %v", err)
	}
	if !data.Found || data.Title != "Art" {
		t.Errorf("Found = %v, Title = %q, want found page titled Art", data.Found, data.Title)
	}
	if len(data.Prompts) != 1 || data.Prompts[0].Slug != "sunset" {
		t.Errorf("Prompts = %+v, want only the published prompt", data.Prompts)
	}
	if data.Prompts[0].ImageURL != PlaceholderImage {
		t.Errorf("ImageURL = %q, want placeholder substituted", data.Prompts[0].ImageURL)
	}
}

func TestLayoutNeverNil(t *testing.T) {
	data := newInertService().Layout()
	if data.HeaderCategories == nil || data.FooterCategories == nil {
		t.Error("layout sections must be empty slices, not nil")
	}
}

// Two sections block on a barrier only both can pass. Sequential execution
// would deadlock, so completion proves the fetches run concurrently.
func TestSectionsRunInParallel(t *testing.T) {
	svc := newInertService()

	var barrier sync.WaitGroup
	barrier.Add(2)
	fetch := func() ([]models.CategoryModel, error) {
		barrier.Done()
		barrier.Wait()
		return []models.CategoryModel{{Name: "art"}}, nil
	}

	var a, b []models.CategoryModel
	var g errgroup.Group
	g.Go(section(svc, "a", &a, fetch))
	g.Go(section(svc, "b", &b, fetch))

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sections did not run in parallel")
	}

	if len(a) != 1 || len(b) != 1 {
		t.Errorf("sections returned %d and %d rows, want 1 and 1", len(a), len(b))
	}
}

func TestSectionSubstitutesEmptyOnError(t *testing.T) {
	svc := newInertService()

	var out []models.PromptModel
	fn := section(svc, "prompts", &out, func() ([]models.PromptModel, error) {
		return nil, gateway.ErrUnavailable
	})
	if err := fn(); err != nil {
		t.Fatalf("section returned error %v, want nil", err)
	}
	if out == nil || len(out) != 0 {
		t.Errorf("out = %v, want empty slice", out)
	}
}

func TestFillPromptImages(t *testing.T) {
	prompts := []models.PromptModel{
		{ImageURL: ""},
		{ImageURL: "https://cdn.example.com/a.png"},
	}
	fillPromptImages(prompts)

	if prompts[0].ImageURL != PlaceholderImage {
		t.Errorf("missing image = %q, want placeholder", prompts[0].ImageURL)
	}
	if prompts[1].ImageURL != "https://cdn.example.com/a.png" {
		t.Errorf("existing image was overwritten: %q", prompts[1].ImageURL)
	}
}
