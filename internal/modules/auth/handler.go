package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rohitgunthal18/pixico-core/internal/middleware"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	auth := rg.Group("/auth")
	auth.POST("/login", h.login)

	authed := auth.Group("", adminMW)
	authed.POST("/logout", h.logout)
	authed.GET("/me", h.me)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.svc.Login(&dto, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		switch {
		case errors.Is(err, ErrBadCredentials):
			response.Unauthorized(c)
		case errors.Is(err, ErrNotAdmin):
			response.ForbiddenMsg(c, "unauthorized")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, result)
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.svc.Logout(middleware.CurrentProfileID(c), middleware.CurrentSessionID(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) me(c *gin.Context) {
	profile, err := h.svc.GetProfile(middleware.CurrentProfileID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if profile == nil {
		response.Unauthorized(c)
		return
	}
	response.OK(c, profile)
}
