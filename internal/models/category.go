package models

// CategoryModel groups prompts and blogs and drives site navigation.
type CategoryModel struct {
	Base
	Name        string `json:"name"         gorm:"uniqueIndex;not null"`
	Slug        string `json:"slug"         gorm:"uniqueIndex;not null"`
	Description string `json:"description"  gorm:"type:text"`
	ImageURL    string `json:"image_url"`
	SortOrder   int    `json:"sort_order"   gorm:"default:0;index"`

	// Navigation placement flags. Showcase marks the homepage category grid,
	// distinct from the header/footer nav flags.
	ShowInHeader   bool `json:"show_in_header"   gorm:"default:false"`
	ShowInFooter   bool `json:"show_in_footer"   gorm:"default:false"`
	ShowInShowcase bool `json:"show_in_showcase" gorm:"default:false"`

	Prompts []PromptModel `json:"prompts,omitempty" gorm:"foreignKey:CategoryID"`
	Blogs   []BlogModel   `json:"blogs,omitempty"   gorm:"foreignKey:CategoryID"`
}

func (CategoryModel) TableName() string { return "categories" }
