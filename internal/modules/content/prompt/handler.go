package prompt

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/pagination"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	prompts := rg.Group("/prompts")
	prompts.GET("", h.list)
	prompts.GET("/:slug", h.getBySlug)
	prompts.POST("/:slug/view", h.recordView)
	prompts.POST("/:slug/like", h.recordLike)

	rg.GET("/ai-models", h.listModels)

	// Admin surface lives under /admin to keep the public wildcard tree clean.
	authed := rg.Group("/admin/prompts", adminMW)
	authed.GET("", h.adminList)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	q := ListQuery{
		CategorySlug: c.Query("category"),
		ModelName:    c.Query("model"),
		Search:       c.Query("q"),
	}
	prompts, pag, err := h.svc.List(q, pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, prompts, pag)
}

func (h *Handler) getBySlug(c *gin.Context) {
	p, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFoundMsg(c, "prompt not found")
		return
	}
	response.OK(c, p)
}

func (h *Handler) recordView(c *gin.Context) {
	h.recordCount(c, h.svc.RecordView)
}

func (h *Handler) recordLike(c *gin.Context) {
	h.recordCount(c, h.svc.RecordLike)
}

func (h *Handler) recordCount(c *gin.Context, record func(ctx context.Context, slug, ip string) error) {
	err := record(c.Request.Context(), c.Param("slug"), c.ClientIP())
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, errAlreadyCounted):
		// Repeats are not an error the client needs to act on.
		c.Status(http.StatusNoContent)
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFoundMsg(c, "prompt not found")
	default:
		response.InternalError(c, err)
	}
}

func (h *Handler) listModels(c *gin.Context) {
	ms, err := h.svc.Models()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"data": ms})
}

func (h *Handler) adminList(c *gin.Context) {
	prompts, pag, err := h.svc.AdminList(pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, prompts, pag)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreatePromptDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Create(&dto)
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
	response.Created(c, p)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdatePromptDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, errInvalidStatus) {
			response.BadRequest(c, err.Error())
			return
		}
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
