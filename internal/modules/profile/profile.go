package profile

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rohitgunthal18/pixico-core/internal/gateway"
	"github.com/rohitgunthal18/pixico-core/internal/models"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/response"
)

type UpdateRoleDTO struct {
	Role string `json:"role" binding:"required"`
}

type Service struct {
	gw *gateway.Gateway
}

func NewService(gw *gateway.Gateway) *Service { return &Service{gw: gw} }

// List returns all profiles, newest first. Admin-only data, so it goes
// through the elevated handle.
func (s *Service) List() ([]models.ProfileModel, error) {
	db, err := s.gw.Writer()
	if err != nil {
		return nil, err
	}
	return gateway.Find[models.ProfileModel](db.Order("created_at DESC"))
}

func (s *Service) GetByID(id string) (*models.ProfileModel, error) {
	db, err := s.gw.Writer()
	if err != nil {
		return nil, err
	}
	return gateway.First[models.ProfileModel](db, "id = ?", id)
}

// UpdateRole sets a profile's role. Writing the role it already has is a
// no-op that still succeeds, so repeated calls settle on the same state.
func (s *Service) UpdateRole(id, role string) (*models.ProfileModel, error) {
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	p, err := s.GetByID(id)
	if err != nil || p == nil {
		return p, err
	}
	if p.Role == role {
		return p, nil
	}

	db, err := s.gw.Writer()
	if err != nil {
		return nil, err
	}
	if err := db.Model(p).Update("role", role).Error; err != nil {
		return nil, err
	}
	p.Role = role
	return p, nil
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	authed := rg.Group("/admin/users", adminMW)
	authed.GET("", h.list)
	authed.PATCH("/:id/role", h.updateRole)
}

func (h *Handler) list(c *gin.Context) {
	profiles, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, profiles)
}

func (h *Handler) updateRole(c *gin.Context) {
	var dto UpdateRoleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !models.ValidRole(dto.Role) {
		response.BadRequest(c, "role must be one of: user, admin")
		return
	}
	p, err := h.svc.UpdateRole(c.Param("id"), dto.Role)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFoundMsg(c, "user not found")
		return
	}
	response.OK(c, p)
}
