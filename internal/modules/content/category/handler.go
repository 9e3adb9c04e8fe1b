package category

import (
	"github.com/gin-gonic/gin"
	"github.com/rohitgunthal18/pixico-core/internal/models"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	cats := rg.Group("/categories")
	cats.GET("", h.list)
	cats.GET("/:slug", h.getBySlug)

	authed := rg.Group("/admin/categories", adminMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	var (
		cats []models.CategoryModel
		err  error
	)
	if q := c.Query("q"); q != "" {
		cats, err = h.svc.Search(q)
	} else {
		cats, err = h.svc.List(ListFilter(c.Query("filter")))
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cats == nil {
		cats = []models.CategoryModel{}
	}
	response.OK(c, gin.H{"data": cats})
}

func (h *Handler) getBySlug(c *gin.Context) {
	cat, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cat == nil {
		response.NotFoundMsg(c, "category not found")
		return
	}
	prompts, err := h.svc.PublishedPrompts(cat.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	c.JSON(200, gin.H{"category": cat, "prompts": prompts})
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.Create(&dto)
	if err != nil {
		if err.Error() == "name or slug already exists" {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, cat)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cat == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, cat)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
