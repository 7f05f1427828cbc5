package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SavedLink is a bookmarked external recipe URL. Ownership is tracked by
// the owner's auth subject only; there is no join to the users table.
type SavedLink struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OwnerSubject string    `gorm:"index" json:"owner_subject"`

	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail,omitempty"`

	Platform  string         `gorm:"index" json:"platform"`
	Tags      []string       `gorm:"serializer:json;type:text" json:"tags"`
	UserNotes string         `json:"user_notes,omitempty"`
	Metadata  datatypes.JSON `gorm:"type:json" json:"metadata,omitempty"`

	VisitCount int  `json:"visit_count"`
	IsPublic   bool `json:"is_public"`

	Timestamp
}
