package models

// SitePageSection is one structural block of a generic content page.
type SitePageSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Image   string `json:"image,omitempty"`
}

// SitePageFAQ is a question/answer pair rendered in a page's FAQ block.
type SitePageFAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SitePageContent is the structured content blob of a SitePage.
type SitePageContent struct {
	Intro    string            `json:"intro,omitempty"`
	Sections []SitePageSection `json:"sections,omitempty"`
	FAQs     []SitePageFAQ     `json:"faqs,omitempty"`
}

// SitePageModel is a fully generic content page (about, privacy, ...) rendered
// structurally from its content blob.
type SitePageModel struct {
	Base
	Slug            string          `json:"slug"             gorm:"uniqueIndex;not null"`
	Title           string          `json:"title"            gorm:"not null"`
	MetaTitle       string          `json:"meta_title"`
	MetaDescription string          `json:"meta_description" gorm:"type:text"`
	Content         SitePageContent `json:"content"          gorm:"type:longtext;serializer:json"`
}

func (SitePageModel) TableName() string { return "site_pages" }
