package blog

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rohitgunthal18/pixico-core/internal/gateway"
	"github.com/rohitgunthal18/pixico-core/internal/models"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/pagination"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/response"
)

type CreateBlogDTO struct {
	Slug          string  `json:"slug"    binding:"required"`
	Title         string  `json:"title"   binding:"required"`
	Excerpt       string  `json:"excerpt"`
	Content       string  `json:"content" binding:"required"`
	FeaturedImage string  `json:"featured_image"`
	CategoryID    *string `json:"category_id"`
	Status        string  `json:"status"`
}

type UpdateBlogDTO struct {
	Slug          *string `json:"slug"`
	Title         *string `json:"title"`
	Excerpt       *string `json:"excerpt"`
	Content       *string `json:"content"`
	FeaturedImage *string `json:"featured_image"`
	CategoryID    *string `json:"category_id"`
	Status        *string `json:"status"`
}

type blogResponse struct {
	models.BlogModel
	// ContentHTML is set when the client asks for rendered markdown.
	ContentHTML string `json:"content_html,omitempty"`
}

// errInvalidStatus marks a status value outside the draft/published
// enumeration. Caller input, so handlers answer it with a 400.
var errInvalidStatus = fmt.Errorf("status must be %q or %q", models.StatusDraft, models.StatusPublished)

type Service struct {
	gw *gateway.Gateway
}

func NewService(gw *gateway.Gateway) *Service { return &Service{gw: gw} }

// List returns published blogs, newest first, optionally narrowed by category
// slug and a case-insensitive substring over title and excerpt.
func (s *Service) List(categorySlug, search string, page pagination.Query) ([]models.BlogModel, response.Pagination, error) {
	db, err := s.gw.Reader()
	if err != nil {
		return nil, response.Pagination{}, err
	}

	tx := gateway.Published(db.Model(&models.BlogModel{})).
		Preload("Category").
		Order("created_at DESC")
	if categorySlug != "" {
		tx = tx.Where("category_id IN (?)",
			db.Model(&models.CategoryModel{}).Select("id").Where("slug = ?", categorySlug))
	}
	if search != "" {
		like := "%" + search + "%"
		tx = tx.Where("LOWER(title) LIKE LOWER(?) OR LOWER(excerpt) LIKE LOWER(?)", like, like)
	}

	var blogs []models.BlogModel
	pag, err := pagination.Paginate(tx, page, &blogs)
	return blogs, pag, err
}

// GetBySlug resolves a published blog; (nil, nil) when missing or draft.
func (s *Service) GetBySlug(slug string) (*models.BlogModel, error) {
	db, err := s.gw.Reader()
	if err != nil {
		return nil, err
	}
	return gateway.First[models.BlogModel](gateway.Published(db.Preload("Category")), "slug = ?", slug)
}

func (s *Service) GetByID(id string) (*models.BlogModel, error) {
	db, err := s.gw.Writer()
	if err != nil {
		return nil, err
	}
	return gateway.First[models.BlogModel](db, "id = ?", id)
}

func (s *Service) Create(dto *CreateBlogDTO) (*models.BlogModel, error) {
	status := dto.Status
	if status == "" {
		status = models.StatusDraft
	}
	if status != models.StatusDraft && status != models.StatusPublished {
		return nil, errInvalidStatus
	}

	db, err := s.gw.Writer()
	if err != nil {
		return nil, err
	}

	var count int64
	db.Model(&models.BlogModel{}).Where("slug = ?", dto.Slug).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("slug already exists")
	}

	b := models.BlogModel{
		Slug:          dto.Slug,
		Title:         dto.Title,
		Excerpt:       dto.Excerpt,
		Content:       dto.Content,
		FeaturedImage: dto.FeaturedImage,
		CategoryID:    dto.CategoryID,
		Status:        status,
	}
	if err := db.Create(&b).Error; err != nil {
		if gateway.IsDuplicateKey(err) {
			return nil, fmt.Errorf("slug already exists")
		}
		return nil, err
	}
	return &b, nil
}

func (s *Service) Update(id string, dto *UpdateBlogDTO) (*models.BlogModel, error) {
	if dto.Status != nil && *dto.Status != models.StatusDraft && *dto.Status != models.StatusPublished {
		return nil, errInvalidStatus
	}

	b, err := s.GetByID(id)
	if err != nil || b == nil {
		return b, err
	}

	db, err := s.gw.Writer()
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Slug != nil {
		updates["slug"] = *dto.Slug
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Excerpt != nil {
		updates["excerpt"] = *dto.Excerpt
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.FeaturedImage != nil {
		updates["featured_image"] = *dto.FeaturedImage
	}
	if dto.CategoryID != nil {
		updates["category_id"] = *dto.CategoryID
	}
	if dto.Status != nil {
		updates["status"] = *dto.Status
	}
	return b, db.Model(b).Updates(updates).Error
}

func (s *Service) Delete(id string) error {
	db, err := s.gw.Writer()
	if err != nil {
		return err
	}
	return db.Delete(&models.BlogModel{}, "id = ?", id).Error
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	blogs := rg.Group("/blogs")
	blogs.GET("", h.list)
	blogs.GET("/:slug", h.getBySlug)

	authed := rg.Group("/admin/blogs", adminMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	blogs, pag, err := h.svc.List(c.Query("category"), c.Query("q"), pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, blogs, pag)
}

func (h *Handler) getBySlug(c *gin.Context) {
	b, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if b == nil {
		response.NotFoundMsg(c, "blog not found")
		return
	}
	out := blogResponse{BlogModel: *b}
	if c.Query("format") == "html" {
		out.ContentHTML = RenderMarkdown(b.Content)
	}
	response.OK(c, out)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	b, err := h.svc.Create(&dto)
	if err != nil {
		switch {
		case errors.Is(err, errInvalidStatus):
			response.BadRequest(c, err.Error())
		case err.Error() == "slug already exists":
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, b)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	b, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, errInvalidStatus) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if b == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, b)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
