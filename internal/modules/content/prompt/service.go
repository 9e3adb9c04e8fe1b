package prompt

import (
	"context"
	"fmt"
	"time"

	"github.com/rohitgunthal18/pixico-core/internal/gateway"
	"github.com/rohitgunthal18/pixico-core/internal/models"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/pagination"
	redispkg "github.com/rohitgunthal18/pixico-core/internal/pkg/redis"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/response"
	"gorm.io/gorm"
)

type Service struct {
	gw *gateway.Gateway
	rc *redispkg.Client
}

func NewService(gw *gateway.Gateway, rc *redispkg.Client) *Service {
	return &Service{gw: gw, rc: rc}
}

// List returns published prompts, newest first, optionally narrowed by
// category slug, model name, and a case-insensitive title substring.
func (s *Service) List(q ListQuery, page pagination.Query) ([]models.PromptModel, response.Pagination, error) {
	db, err := s.gw.Reader()
	if err != nil {
		return nil, response.Pagination{}, err
	}

	tx := gateway.Published(db.Model(&models.PromptModel{})).
		Preload("Category").
		Preload("Model").
		Order("created_at DESC")

	if q.CategorySlug != "" {
		tx = tx.Where("category_id IN (?)",
			db.Model(&models.CategoryModel{}).Select("id").Where("slug = ?", q.CategorySlug))
	}
	if q.ModelName != "" {
		tx = tx.Where("model_id IN (?)",
			db.Model(&models.AiModelModel{}).Select("id").Where("name = ?", q.ModelName))
	}
	if q.Search != "" {
		tx = tx.Where("LOWER(title) LIKE LOWER(?)", "%"+q.Search+"%")
	}

	var prompts []models.PromptModel
	pag, err := pagination.Paginate(tx, page, &prompts)
	return prompts, pag, err
}

// GetBySlug resolves a published prompt; (nil, nil) when missing or draft.
func (s *Service) GetBySlug(slug string) (*models.PromptModel, error) {
	db, err := s.gw.Reader()
	if err != nil {
		return nil, err
	}
	tx := gateway.Published(db.Preload("Category").Preload("Model"))
	return gateway.First[models.PromptModel](tx, "slug = ?", slug)
}

// Models lists the static AI model reference data.
func (s *Service) Models() ([]models.AiModelModel, error) {
	db, err := s.gw.Reader()
	if err != nil {
		return nil, err
	}
	return gateway.Find[models.AiModelModel](db.Model(&models.AiModelModel{}).Order("name ASC"))
}

// RecordView bumps the view counter once per IP per day.
func (s *Service) RecordView(ctx context.Context, slug, ip string) error {
	return s.bumpCount(ctx, slug, ip, "view", "view_count")
}

// RecordLike bumps the like counter once per IP per day.
func (s *Service) RecordLike(ctx context.Context, slug, ip string) error {
	return s.bumpCount(ctx, slug, ip, "like", "like_count")
}

// errAlreadyCounted marks a deduplicated repeat; callers treat it as success.
var errAlreadyCounted = fmt.Errorf("already counted today")

// errInvalidStatus marks a status value outside the draft/published
// enumeration. Caller input, so handlers answer it with a 400.
var errInvalidStatus = fmt.Errorf("status must be %q or %q", models.StatusDraft, models.StatusPublished)

func (s *Service) bumpCount(ctx context.Context, slug, ip, kind, column string) error {
	p, err := s.GetBySlug(slug)
	if err != nil {
		return err
	}
	if p == nil {
		return gorm.ErrRecordNotFound
	}

	if s.rc != nil && ip != "" {
		key := fmt.Sprintf("pixico:%s:%s:%s:%s", kind, time.Now().Format("2006-01-02"), p.ID, ip)
		first, err := s.rc.Once(ctx, key, 24*time.Hour)
		if err == nil && !first {
			return errAlreadyCounted
		}
	}

	db, err := s.gw.Writer()
	if err != nil {
		return err
	}
	return db.Model(&models.PromptModel{}).
		Where("id = ?", p.ID).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
}

// Admin-scope queries below run on the elevated handle and see drafts.

func (s *Service) AdminList(page pagination.Query) ([]models.PromptModel, response.Pagination, error) {
	db, err := s.gw.Writer()
	if err != nil {
		return nil, response.Pagination{}, err
	}
	tx := db.Model(&models.PromptModel{}).
		Preload("Category").
		Preload("Model").
		Order("created_at DESC")
	var prompts []models.PromptModel
	pag, err := pagination.Paginate(tx, page, &prompts)
	return prompts, pag, err
}

func (s *Service) GetByID(id string) (*models.PromptModel, error) {
	db, err := s.gw.Writer()
	if err != nil {
		return nil, err
	}
	return gateway.First[models.PromptModel](db, "id = ?", id)
}

func (s *Service) Create(dto *CreatePromptDTO) (*models.PromptModel, error) {
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
	db.Model(&models.PromptModel{}).Where("slug = ?", dto.Slug).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("slug already exists")
	}

	p := models.PromptModel{
		Slug:        dto.Slug,
		Title:       dto.Title,
		Description: dto.Description,
		ImageURL:    dto.ImageURL,
		PromptCode:  dto.PromptCode,
		CategoryID:  dto.CategoryID,
		ModelID:     dto.ModelID,
		Status:      status,
	}
	if err := db.Create(&p).Error; err != nil {
		if gateway.IsDuplicateKey(err) {
			return nil, fmt.Errorf("slug already exists")
		}
		return nil, err
	}
	return &p, nil
}

func (s *Service) Update(id string, dto *UpdatePromptDTO) (*models.PromptModel, error) {
	if dto.Status != nil && *dto.Status != models.StatusDraft && *dto.Status != models.StatusPublished {
		return nil, errInvalidStatus
	}

	p, err := s.GetByID(id)
	if err != nil || p == nil {
		return p, err
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
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.ImageURL != nil {
		updates["image_url"] = *dto.ImageURL
	}
	if dto.PromptCode != nil {
		updates["prompt_code"] = *dto.PromptCode
	}
	if dto.CategoryID != nil {
		updates["category_id"] = *dto.CategoryID
	}
	if dto.ModelID != nil {
		updates["model_id"] = *dto.ModelID
	}
	if dto.Status != nil {
		updates["status"] = *dto.Status
	}
	return p, db.Model(p).Updates(updates).Error
}

func (s *Service) Delete(id string) error {
	db, err := s.gw.Writer()
	if err != nil {
		return err
	}
	return db.Delete(&models.PromptModel{}, "id = ?", id).Error
}
