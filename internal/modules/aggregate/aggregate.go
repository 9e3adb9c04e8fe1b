// Package aggregate assembles per-route view-models from independent reads
// issued in parallel, so a page's data latency is bounded by its slowest
// single query. Secondary sections degrade to an empty list instead of failing
// the whole page; only the primary lookup of a detail page propagates its error.
package aggregate

import (
	"github.com/gin-gonic/gin"
	"github.com/rohitgunthal18/pixico-core/internal/gateway"
	"github.com/rohitgunthal18/pixico-core/internal/models"
	"github.com/rohitgunthal18/pixico-core/internal/modules/content/category"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/pagination"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/response"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PlaceholderImage replaces a missing image URL so clients never render a
// broken reference.
const PlaceholderImage = "/images/placeholder.svg"

// LayoutData is the navigation data every page shares.
type LayoutData struct {
	HeaderCategories []models.CategoryModel `json:"header_categories"`
	FooterCategories []models.CategoryModel `json:"footer_categories"`
}

// HomeData is the landing page view-model.
type HomeData struct {
	LayoutData
	ShowcaseCategories []models.CategoryModel `json:"showcase_categories"`
	FeaturedPrompts    []models.PromptModel   `json:"featured_prompts"`
	LatestBlogs        []models.BlogModel     `json:"latest_blogs"`
}

// CategoryPageData is the category detail view-model. Found is false for a
// soft 404: the route renders a not-found view with its own title instead of
// surfacing an error.
type CategoryPageData struct {
	LayoutData
	Found    bool                  `json:"found"`
	Title    string                `json:"title"`
	Category *models.CategoryModel `json:"category,omitempty"`
	Prompts  []models.PromptModel  `json:"prompts"`
}

type Service struct {
	gw     *gateway.Gateway
	cats   *category.Service
	logger *zap.Logger
}

func NewService(gw *gateway.Gateway, cats *category.Service, logger *zap.Logger) *Service {
	return &Service{gw: gw, cats: cats, logger: logger}
}

// section runs one independent read and substitutes an empty result on any
// failure, logging it once. An unreachable database empties every section
// rather than breaking the page.
func section[T any](s *Service, name string, out *[]T, fetch func() ([]T, error)) func() error {
	return func() error {
		rows, err := fetch()
		if err != nil {
			s.logger.Warn("page section degraded to empty", zap.String("section", name), zap.Error(err))
			rows = nil
		}
		if rows == nil {
			rows = make([]T, 0)
		}
		*out = rows
		return nil
	}
}

// Layout fetches the shared navigation data, header and footer in parallel.
func (s *Service) Layout() LayoutData {
	var data LayoutData
	var g errgroup.Group
	g.Go(section(s, "header-categories", &data.HeaderCategories, func() ([]models.CategoryModel, error) {
		return s.cats.List(category.FilterHeader)
	}))
	g.Go(section(s, "footer-categories", &data.FooterCategories, func() ([]models.CategoryModel, error) {
		return s.cats.List(category.FilterFooter)
	}))
	_ = g.Wait()
	return data
}

// Home builds the landing page view-model with all five reads in flight at
// once.
func (s *Service) Home() HomeData {
	var data HomeData
	var g errgroup.Group
	g.Go(section(s, "header-categories", &data.HeaderCategories, func() ([]models.CategoryModel, error) {
		return s.cats.List(category.FilterHeader)
	}))
	g.Go(section(s, "footer-categories", &data.FooterCategories, func() ([]models.CategoryModel, error) {
		return s.cats.List(category.FilterFooter)
	}))
	g.Go(section(s, "showcase-categories", &data.ShowcaseCategories, func() ([]models.CategoryModel, error) {
		return s.cats.List(category.FilterShowcase)
	}))
	g.Go(section(s, "featured-prompts", &data.FeaturedPrompts, s.featuredPrompts))
	g.Go(section(s, "latest-blogs", &data.LatestBlogs, s.latestBlogs))
	_ = g.Wait()

	fillPromptImages(data.FeaturedPrompts)
	return data
}

// CategoryPage builds a category detail view-model. A missing slug yields the
// not-found view-model; a failing lookup is an error, never mistaken for a
// miss.
func (s *Service) CategoryPage(slug string) (CategoryPageData, error) {
	data := CategoryPageData{Prompts: make([]models.PromptModel, 0)}

	var g errgroup.Group
	var cat *models.CategoryModel
	var lookupErr error
	g.Go(section(s, "header-categories", &data.HeaderCategories, func() ([]models.CategoryModel, error) {
		return s.cats.List(category.FilterHeader)
	}))
	g.Go(section(s, "footer-categories", &data.FooterCategories, func() ([]models.CategoryModel, error) {
		return s.cats.List(category.FilterFooter)
	}))
	g.Go(func() error {
		cat, lookupErr = s.cats.GetBySlug(slug)
		return nil
	})
	_ = g.Wait()

	if lookupErr != nil {
		s.logger.Warn("category lookup failed", zap.String("slug", slug), zap.Error(lookupErr))
		return data, lookupErr
	}
	if cat == nil {
		data.Title = "Category Not Found"
		return data, nil
	}

	data.Found = true
	data.Title = cat.Name
	data.Category = cat
	if prompts, err := s.cats.PublishedPrompts(cat.ID); err == nil {
		data.Prompts = prompts
	} else {
		s.logger.Warn("category prompts degraded to empty", zap.String("slug", slug), zap.Error(err))
	}
	fillPromptImages(data.Prompts)
	return data, nil
}

func (s *Service) featuredPrompts() ([]models.PromptModel, error) {
	db, err := s.gw.Reader()
	if err != nil {
		return nil, err
	}
	return gateway.Find[models.PromptModel](
		gateway.Published(db.Preload("Category").Preload("Model")).
			Order("view_count DESC").
			Limit(pagination.DefaultSize))
}

func (s *Service) latestBlogs() ([]models.BlogModel, error) {
	db, err := s.gw.Reader()
	if err != nil {
		return nil, err
	}
	return gateway.Find[models.BlogModel](
		gateway.Published(db.Preload("Category")).
			Order("created_at DESC").
			Limit(6))
}

func fillPromptImages(prompts []models.PromptModel) {
	for i := range prompts {
		if prompts[i].ImageURL == "" {
			prompts[i].ImageURL = PlaceholderImage
		}
	}
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	agg := rg.Group("/aggregate")
	agg.GET("/layout", h.layout)
	agg.GET("/home", h.home)
	agg.GET("/category/:slug", h.categoryPage)
}

func (h *Handler) layout(c *gin.Context) {
	response.OK(c, h.svc.Layout())
}

func (h *Handler) home(c *gin.Context) {
	response.OK(c, h.svc.Home())
}

func (h *Handler) categoryPage(c *gin.Context) {
	data, err := h.svc.CategoryPage(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, data)
}
