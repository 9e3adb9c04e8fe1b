package models

// AiModelModel is static reference data naming the image generator a prompt
// targets (Midjourney, DALL-E, ...).
type AiModelModel struct {
	Base
	Name string `json:"name" gorm:"uniqueIndex;not null"`

	Prompts []PromptModel `json:"prompts,omitempty" gorm:"foreignKey:ModelID"`
}

func (AiModelModel) TableName() string { return "ai_models" }

// PromptModel is a single AI image-generation prompt card.
type PromptModel struct {
	Base
	Slug        string  `json:"slug"         gorm:"uniqueIndex;not null"`
	Title       string  `json:"title"        gorm:"not null"`
	Description string  `json:"description"  gorm:"type:text"`
	ImageURL    string  `json:"image_url"`
	PromptCode  string  `json:"prompt_code"  gorm:"type:longtext"`
	CategoryID  *string `json:"category_id"  gorm:"index"`
	ModelID     *string `json:"model_id"     gorm:"index"`
	ViewCount   int     `json:"view_count"   gorm:"default:0"`
	LikeCount   int     `json:"like_count"   gorm:"default:0"`
	Status      string  `json:"status"       gorm:"default:draft;index"`

	Category *CategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Model    *AiModelModel  `json:"model,omitempty"    gorm:"foreignKey:ModelID"`
}

func (PromptModel) TableName() string { return "prompts" }

func (p PromptModel) IsPublished() bool { return p.Status == StatusPublished }
