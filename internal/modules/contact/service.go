package contact

import (
	"time"

	"github.com/rohitgunthal18/pixico-core/internal/gateway"
	"github.com/rohitgunthal18/pixico-core/internal/models"
)

type SubmitDTO struct {
	Name    string `json:"name"    binding:"required"`
	Email   string `json:"email"   binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// UpdateDTO carries a partial triage update. Only fields present in the
// request body are written; absent fields never overwrite stored values.
type UpdateDTO struct {
	ID         string     `json:"id"`
	Status     *string    `json:"status"`
	AdminNotes *string    `json:"admin_notes"`
	RepliedAt  *time.Time `json:"replied_at"`
}

type Service struct {
	gw *gateway.Gateway
}

func NewService(gw *gateway.Gateway) *Service { return &Service{gw: gw} }

func (s *Service) Submit(dto *SubmitDTO) (*models.ContactQueryModel, error) {
	db, err := s.gw.Writer()
	if err != nil {
		return nil, err
	}
	q := models.ContactQueryModel{
		Name:    dto.Name,
		Email:   dto.Email,
		Subject: dto.Subject,
		Message: dto.Message,
		Status:  models.ContactStatusNew,
	}
	return &q, db.Create(&q).Error
}

// List returns every contact query, newest first.
func (s *Service) List() ([]models.ContactQueryModel, error) {
	db, err := s.gw.Writer()
	if err != nil {
		return nil, err
	}
	return gateway.Find[models.ContactQueryModel](db.Order("created_at DESC"))
}

// Update applies the provided fields only, per the partial-update contract.
func (s *Service) Update(dto *UpdateDTO) error {
	db, err := s.gw.Writer()
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if dto.Status != nil {
		updates["status"] = *dto.Status
	}
	if dto.AdminNotes != nil {
		updates["admin_notes"] = *dto.AdminNotes
	}
	if dto.RepliedAt != nil {
		updates["replied_at"] = *dto.RepliedAt
	}
	if len(updates) == 0 {
		return nil
	}
	return db.Model(&models.ContactQueryModel{}).Where("id = ?", dto.ID).Updates(updates).Error
}

func (s *Service) Delete(id string) error {
	db, err := s.gw.Writer()
	if err != nil {
		return err
	}
	return db.Delete(&models.ContactQueryModel{}, "id = ?", id).Error
}
