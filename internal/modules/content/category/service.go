package category

import (
	"fmt"

	"github.com/rohitgunthal18/pixico-core/internal/gateway"
	"github.com/rohitgunthal18/pixico-core/internal/models"
)

type CreateCategoryDTO struct {
	Name           string `json:"name" binding:"required"`
	Slug           string `json:"slug" binding:"required"`
	Description    string `json:"description"`
	ImageURL       string `json:"image_url"`
	SortOrder      *int   `json:"sort_order"`
	ShowInHeader   *bool  `json:"show_in_header"`
	ShowInFooter   *bool  `json:"show_in_footer"`
	ShowInShowcase *bool  `json:"show_in_showcase"`
}

type UpdateCategoryDTO struct {
	Name           *string `json:"name"`
	Slug           *string `json:"slug"`
	Description    *string `json:"description"`
	ImageURL       *string `json:"image_url"`
	SortOrder      *int    `json:"sort_order"`
	ShowInHeader   *bool   `json:"show_in_header"`
	ShowInFooter   *bool   `json:"show_in_footer"`
	ShowInShowcase *bool   `json:"show_in_showcase"`
}

// ListFilter selects which navigation surface the categories are for.
type ListFilter string

const (
	FilterAll      ListFilter = ""
	FilterHeader   ListFilter = "header"
	FilterFooter   ListFilter = "footer"
	FilterShowcase ListFilter = "showcase"
)

type Service struct {
	gw *gateway.Gateway
}

func NewService(gw *gateway.Gateway) *Service {
	return &Service{gw: gw}
}

// List returns categories ordered for navigation. An unknown filter behaves
// like FilterAll.
func (s *Service) List(filter ListFilter) ([]models.CategoryModel, error) {
	db, err := s.gw.Reader()
	if err != nil {
		return nil, err
	}
	tx := db.Model(&models.CategoryModel{}).Order("sort_order ASC, name ASC")
	switch filter {
	case FilterHeader:
		tx = tx.Where("show_in_header = ?", true)
	case FilterFooter:
		tx = tx.Where("show_in_footer = ?", true)
	case FilterShowcase:
		tx = tx.Where("show_in_showcase = ?", true)
	}
	return gateway.Find[models.CategoryModel](tx)
}

// Search does a case-insensitive substring match on category names.
func (s *Service) Search(q string) ([]models.CategoryModel, error) {
	db, err := s.gw.Reader()
	if err != nil {
		return nil, err
	}
	tx := db.Model(&models.CategoryModel{}).
		Where("LOWER(name) LIKE LOWER(?)", "%"+q+"%").
		Order("sort_order ASC, name ASC")
	return gateway.Find[models.CategoryModel](tx)
}

// GetBySlug resolves a category by slug; (nil, nil) when it does not exist.
func (s *Service) GetBySlug(slug string) (*models.CategoryModel, error) {
	db, err := s.gw.Reader()
	if err != nil {
		return nil, err
	}
	return gateway.First[models.CategoryModel](db, "slug = ?", slug)
}

// PublishedPrompts returns the category's publicly visible prompts.
func (s *Service) PublishedPrompts(categoryID string) ([]models.PromptModel, error) {
	db, err := s.gw.Reader()
	if err != nil {
		return nil, err
	}
	tx := gateway.Published(db.Model(&models.PromptModel{})).
		Where("category_id = ?", categoryID).
		Preload("Model").
		Order("created_at DESC")
	return gateway.Find[models.PromptModel](tx)
}

// GetByID resolves by primary key first, then slug (admin tooling passes
// either).
func (s *Service) GetByID(id string) (*models.CategoryModel, error) {
	db, err := s.gw.Writer()
	if err != nil {
		return nil, err
	}
	cat, err := gateway.First[models.CategoryModel](db, "id = ?", id)
	if err != nil || cat != nil {
		return cat, err
	}
	return gateway.First[models.CategoryModel](db, "slug = ?", id)
}

func (s *Service) Create(dto *CreateCategoryDTO) (*models.CategoryModel, error) {
	db, err := s.gw.Writer()
	if err != nil {
		return nil, err
	}

	var count int64
	db.Model(&models.CategoryModel{}).Where("slug = ? OR name = ?", dto.Slug, dto.Name).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("name or slug already exists")
	}

	cat := models.CategoryModel{
		Name:        dto.Name,
		Slug:        dto.Slug,
		Description: dto.Description,
		ImageURL:    dto.ImageURL,
	}
	if dto.SortOrder != nil {
		cat.SortOrder = *dto.SortOrder
	}
	if dto.ShowInHeader != nil {
		cat.ShowInHeader = *dto.ShowInHeader
	}
	if dto.ShowInFooter != nil {
		cat.ShowInFooter = *dto.ShowInFooter
	}
	if dto.ShowInShowcase != nil {
		cat.ShowInShowcase = *dto.ShowInShowcase
	}
	if err := db.Create(&cat).Error; err != nil {
		if gateway.IsDuplicateKey(err) {
			return nil, fmt.Errorf("name or slug already exists")
		}
		return nil, err
	}
	return &cat, nil
}

func (s *Service) Update(id string, dto *UpdateCategoryDTO) (*models.CategoryModel, error) {
	cat, err := s.GetByID(id)
	if err != nil || cat == nil {
		return cat, err
	}

	db, err := s.gw.Writer()
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Slug != nil {
		updates["slug"] = *dto.Slug
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.ImageURL != nil {
		updates["image_url"] = *dto.ImageURL
	}
	if dto.SortOrder != nil {
		updates["sort_order"] = *dto.SortOrder
	}
	if dto.ShowInHeader != nil {
		updates["show_in_header"] = *dto.ShowInHeader
	}
	if dto.ShowInFooter != nil {
		updates["show_in_footer"] = *dto.ShowInFooter
	}
	if dto.ShowInShowcase != nil {
		updates["show_in_showcase"] = *dto.ShowInShowcase
	}
	return cat, db.Model(cat).Updates(updates).Error
}

func (s *Service) Delete(id string) error {
	cat, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if cat == nil {
		return nil
	}
	db, err := s.gw.Writer()
	if err != nil {
		return err
	}
	db.Model(&models.PromptModel{}).Where("category_id = ?", cat.ID).Update("category_id", nil)
	db.Model(&models.BlogModel{}).Where("category_id = ?", cat.ID).Update("category_id", nil)
	return db.Delete(&models.CategoryModel{}, "id = ?", cat.ID).Error
}
