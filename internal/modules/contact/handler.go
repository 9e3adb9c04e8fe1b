package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	rg.POST("/contact", h.submit)

	authed := rg.Group("/admin/contacts", adminMW)
	authed.GET("", h.list)
	authed.PATCH("", h.update)
	authed.DELETE("", h.delete)
}

func (h *Handler) submit(c *gin.Context) {
	var dto SubmitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	q, err := h.svc.Submit(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, q)
}

// The admin triage endpoints keep a flat {success, ...} envelope that the
// admin panel consumes directly.

func (h *Handler) list(c *gin.Context) {
	queries, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to load contact queries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": queries})
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	// Validate before touching the database.
	if dto.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "id is required"})
		return
	}
	if err := h.svc.Update(&dto); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to update contact query"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "id is required"})
		return
	}
	if err := h.svc.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to delete contact query"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
