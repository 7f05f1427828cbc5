package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessResolveIdentity = "identity resolved successfully"
	MessageSuccessGetProfile      = "profile retrieved successfully"
	MessageSuccessUpdateProfile   = "profile updated successfully"
	MessageSuccessDeactivateUser  = "user deactivated successfully"

	MessageFailedResolveIdentity = "failed to resolve identity"
	MessageFailedGetProfile      = "failed to retrieve profile"
	MessageFailedUpdateProfile   = "failed to update profile"
	MessageFailedDeactivateUser  = "failed to deactivate user"

	ErrMissingSubject     = errors.New("auth subject is required")
	ErrMissingEmail       = errors.New("email is required")
	ErrUserNotFound       = errors.New("user not found")
	ErrSubjectTaken       = errors.New("a user with this subject already exists")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidSkillLevel  = errors.New("invalid skill level")
	ErrBioTooLong         = errors.New("bio must be at most 1000 characters")
	ErrDisplayNameTooLong = errors.New("display name must be at most 200 characters")
)

type (
	ResolveIdentityRequest struct {
		Subject     string   `json:"subject" validate:"required"`
		Email       string   `json:"email" validate:"required,email"`
		DisplayName string   `json:"display_name" validate:"omitempty,max=200"`
		AvatarURL   string   `json:"avatar_url" validate:"omitempty,url"`
		IsVerified  bool     `json:"is_verified"`
		Providers   []string `json:"providers"`
	}

	UpdateProfileRequest struct {
		DisplayName         *string   `json:"display_name" validate:"omitempty,max=200"`
		Bio                 *string   `json:"bio" validate:"omitempty,max=1000"`
		Location            *string   `json:"location" validate:"omitempty,max=200"`
		Website             *string   `json:"website" validate:"omitempty,url"`
		SkillLevel          *string   `json:"skill_level" validate:"omitempty,oneof=beginner intermediate advanced"`
		DietaryRestrictions *[]string `json:"dietary_restrictions"`
		CuisinePreferences  *[]string `json:"cuisine_preferences"`
		ProfilePublic       *bool     `json:"profile_public"`
		EmailNotifications  *bool     `json:"email_notifications"`
	}

	UserStats struct {
		RecipesCreated int `json:"recipes_created"`
		RecipesLiked   int `json:"recipes_liked"`
		Followers      int `json:"followers"`
		Following      int `json:"following"`
	}

	UserSummary struct {
		ID          string `json:"id"`
		Subject     string `json:"subject"`
		DisplayName string `json:"display_name"`
		AvatarURL   string `json:"avatar_url,omitempty"`
	}

	UserResponse struct {
		ID                  string    `json:"id"`
		Subject             string    `json:"subject"`
		Email               string    `json:"email"`
		DisplayName         string    `json:"display_name"`
		AvatarURL           string    `json:"avatar_url,omitempty"`
		IsVerified          bool      `json:"is_verified"`
		Providers           []string  `json:"providers"`
		Bio                 string    `json:"bio,omitempty"`
		Location            string    `json:"location,omitempty"`
		Website             string    `json:"website,omitempty"`
		SkillLevel          string    `json:"skill_level"`
		DietaryRestrictions []string  `json:"dietary_restrictions"`
		CuisinePreferences  []string  `json:"cuisine_preferences"`
		Stats               UserStats `json:"stats"`
		ProfilePublic       bool      `json:"profile_public"`
		EmailNotifications  bool      `json:"email_notifications"`
		IsActive            bool      `json:"is_active"`
		LastLoginAt         time.Time `json:"last_login_at"`
		CreatedAt           time.Time `json:"created_at"`
	}
)
