package models

// BlogModel is an editorial post.
type BlogModel struct {
	Base
	Slug          string  `json:"slug"           gorm:"uniqueIndex;not null"`
	Title         string  `json:"title"          gorm:"not null"`
	Excerpt       string  `json:"excerpt"        gorm:"type:text"`
	Content       string  `json:"content"        gorm:"type:longtext"`
	FeaturedImage string  `json:"featured_image"`
	CategoryID    *string `json:"category_id"    gorm:"index"`
	ViewCount     int     `json:"view_count"     gorm:"default:0"`
	Status        string  `json:"status"         gorm:"default:draft;index"`

	Category *CategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

func (BlogModel) TableName() string { return "blogs" }

func (b BlogModel) IsPublished() bool { return b.Status == StatusPublished }
