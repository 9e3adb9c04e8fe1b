package sitepage

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rohitgunthal18/pixico-core/internal/gateway"
	"github.com/rohitgunthal18/pixico-core/internal/models"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/response"
)

type UpsertPageDTO struct {
	Slug            string                  `json:"slug"  binding:"required"`
	Title           string                  `json:"title" binding:"required"`
	MetaTitle       string                  `json:"meta_title"`
	MetaDescription string                  `json:"meta_description"`
	Content         *models.SitePageContent `json:"content"`
}

type UpdatePageDTO struct {
	Slug            *string                 `json:"slug"`
	Title           *string                 `json:"title"`
	MetaTitle       *string                 `json:"meta_title"`
	MetaDescription *string                 `json:"meta_description"`
	Content         *models.SitePageContent `json:"content"`
}

type Service struct {
	gw *gateway.Gateway
}

func NewService(gw *gateway.Gateway) *Service { return &Service{gw: gw} }

// List returns every page ordered by slug. Site pages are few and always
// public once they exist, so there is no published gate here.
func (s *Service) List() ([]models.SitePageModel, error) {
	db, err := s.gw.Reader()
	if err != nil {
		return nil, err
	}
	return gateway.Find[models.SitePageModel](db.Order("slug ASC"))
}

func (s *Service) GetBySlug(slug string) (*models.SitePageModel, error) {
	db, err := s.gw.Reader()
	if err != nil {
		return nil, err
	}
	return gateway.First[models.SitePageModel](db, "slug = ?", slug)
}

func (s *Service) Create(dto *UpsertPageDTO) (*models.SitePageModel, error) {
	db, err := s.gw.Writer()
	if err != nil {
		return nil, err
	}

	var count int64
	db.Model(&models.SitePageModel{}).Where("slug = ?", dto.Slug).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("slug already exists")
	}

	p := models.SitePageModel{
		Slug:            dto.Slug,
		Title:           dto.Title,
		MetaTitle:       dto.MetaTitle,
		MetaDescription: dto.MetaDescription,
	}
	if dto.Content != nil {
		p.Content = *dto.Content
	}
	if err := db.Create(&p).Error; err != nil {
		if gateway.IsDuplicateKey(err) {
			return nil, fmt.Errorf("slug already exists")
		}
		return nil, err
	}
	return &p, nil
}

func (s *Service) Update(id string, dto *UpdatePageDTO) (*models.SitePageModel, error) {
	db, err := s.gw.Writer()
	if err != nil {
		return nil, err
	}

	p, err := gateway.First[models.SitePageModel](db, "id = ?", id)
	if err != nil || p == nil {
		return p, err
	}

	updates := map[string]interface{}{}
	if dto.Slug != nil {
		updates["slug"] = *dto.Slug
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.MetaTitle != nil {
		updates["meta_title"] = *dto.MetaTitle
	}
	if dto.MetaDescription != nil {
		updates["meta_description"] = *dto.MetaDescription
	}
	if err := db.Model(p).Updates(updates).Error; err != nil {
		return nil, err
	}
	// Content is a serialized blob, updated whole rather than per column.
	if dto.Content != nil {
		p.Content = *dto.Content
		if err := db.Model(p).Update("content", p.Content).Error; err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *Service) Delete(id string) error {
	db, err := s.gw.Writer()
	if err != nil {
		return err
	}
	return db.Delete(&models.SitePageModel{}, "id = ?", id).Error
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	pages := rg.Group("/pages")
	pages.GET("", h.list)
	pages.GET("/:slug", h.getBySlug)

	authed := rg.Group("/admin/pages", adminMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	pages, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, pages)
}

func (h *Handler) getBySlug(c *gin.Context) {
	p, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFoundMsg(c, "page not found")
		return
	}
	response.OK(c, p)
}

func (h *Handler) create(c *gin.Context) {
	var dto UpsertPageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Create(&dto)
	if err != nil {
		if err.Error() == "slug already exists" {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, p)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdatePageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, p)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
