package models

import "time"

// Contact query triage states.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
	ContactStatusClosed  = "closed"
)

// ContactQueryModel is a message submitted through the public contact form,
// triaged from the admin area.
type ContactQueryModel struct {
	Base
	Name       string     `json:"name"        gorm:"not null"`
	Email      string     `json:"email"       gorm:"not null"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"     gorm:"type:longtext;not null"`
	Status     string     `json:"status"      gorm:"default:new;index"`
	AdminNotes string     `json:"admin_notes" gorm:"type:text"`
	RepliedAt  *time.Time `json:"replied_at"`
}

func (ContactQueryModel) TableName() string { return "contact_queries" }
