package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Subject     string    `gorm:"uniqueIndex" json:"subject"`
	Email       string    `gorm:"uniqueIndex" json:"email"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	IsVerified  bool      `json:"is_verified"`
	Providers   []string  `gorm:"serializer:json;type:text" json:"providers"`

	Bio                 string   `json:"bio,omitempty"`
	Location            string   `json:"location,omitempty"`
	Website             string   `json:"website,omitempty"`
	SkillLevel          string   `json:"skill_level"`
	DietaryRestrictions []string `gorm:"serializer:json;type:text" json:"dietary_restrictions"`
	CuisinePreferences  []string `gorm:"serializer:json;type:text" json:"cuisine_preferences"`

	RecipesCreated int `json:"recipes_created"`
	RecipesLiked   int `json:"recipes_liked"`
	Followers      int `json:"followers"`
	Following      int `json:"following"`

	ProfilePublic      bool `json:"profile_public"`
	EmailNotifications bool `json:"email_notifications"`

	IsActive    bool      `json:"is_active"`
	LastLoginAt time.Time `gorm:"type:timestamp" json:"last_login_at"`

	Timestamp
}
