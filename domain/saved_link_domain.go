package domain

import (
	"errors"
	"time"
)

const (
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformPinterest = "pinterest"
	PlatformWebsite   = "website"
	PlatformOther     = "other"
)

var (
	MessageSuccessGetLinks       = "saved links retrieved successfully"
	MessageSuccessGetLink        = "saved link retrieved successfully"
	MessageSuccessCreateLink     = "link saved successfully"
	MessageSuccessUpdateLink     = "saved link updated successfully"
	MessageSuccessDeleteLink     = "saved link deleted successfully"
	MessageSuccessBulkDeleteLink = "saved links deleted successfully"
	MessageSuccessVisitLink      = "visit recorded successfully"
	MessageSuccessGetLinkStats   = "saved link statistics retrieved successfully"

	MessageFailedGetLinks       = "failed to retrieve saved links"
	MessageFailedGetLink        = "failed to retrieve saved link"
	MessageFailedCreateLink     = "failed to save link"
	MessageFailedUpdateLink     = "failed to update saved link"
	MessageFailedDeleteLink     = "failed to delete saved link"
	MessageFailedBulkDeleteLink = "failed to delete saved links"
	MessageFailedVisitLink      = "failed to record visit"
	MessageFailedGetLinkStats   = "failed to retrieve saved link statistics"

	ErrSavedLinkNotFound  = errors.New("saved link not found")
	ErrInvalidURL         = errors.New("url must be a valid absolute URL")
	ErrInvalidPlatform    = errors.New("invalid platform")
	ErrLinkTitleRequired  = errors.New("link title is required")
	ErrLinkTitleTooLong   = errors.New("link title must be at most 200 characters")
	ErrLinkDescTooLong    = errors.New("link description must be at most 1000 characters")
	ErrUserNotesTooLong   = errors.New("user notes must be at most 500 characters")
	ErrLinkTagTooLong     = errors.New("tags must be at most 30 characters each")
	ErrEmptyBulkDeleteIDs = errors.New("no link ids provided")
)

var SavedLinkPlatforms = []string{
	PlatformInstagram, PlatformTikTok, PlatformYouTube,
	PlatformPinterest, PlatformWebsite, PlatformOther,
}

type (
	LinkMetadata struct {
		Author     string `json:"author,omitempty"`
		Duration   string `json:"duration,omitempty"`
		Difficulty string `json:"difficulty,omitempty"`
		Servings   string `json:"servings,omitempty"`
	}

	CreateSavedLinkRequest struct {
		URL         string        `json:"url" validate:"required"`
		Title       string        `json:"title" validate:"required,max=200"`
		Description string        `json:"description" validate:"omitempty,max=1000"`
		Thumbnail   string        `json:"thumbnail" validate:"omitempty,url"`
		Platform    string        `json:"platform" validate:"omitempty,oneof=instagram tiktok youtube pinterest website other"`
		Tags        []string      `json:"tags" validate:"omitempty,dive,max=30"`
		UserNotes   string        `json:"user_notes" validate:"omitempty,max=500"`
		IsPublic    bool          `json:"is_public"`
		Metadata    *LinkMetadata `json:"metadata"`
	}

	// UpdateSavedLinkRequest is a partial update; id, owner and timestamps
	// are immutable and have no place in the payload.
	UpdateSavedLinkRequest struct {
		URL         *string       `json:"url"`
		Title       *string       `json:"title" validate:"omitempty,max=200"`
		Description *string       `json:"description" validate:"omitempty,max=1000"`
		Thumbnail   *string       `json:"thumbnail" validate:"omitempty,url"`
		Platform    *string       `json:"platform" validate:"omitempty,oneof=instagram tiktok youtube pinterest website other"`
		Tags        *[]string     `json:"tags" validate:"omitempty,dive,max=30"`
		UserNotes   *string       `json:"user_notes" validate:"omitempty,max=500"`
		IsPublic    *bool         `json:"is_public"`
		Metadata    *LinkMetadata `json:"metadata"`
	}

	BulkDeleteLinksRequest struct {
		IDs []string `json:"ids" validate:"required,min=1"`
	}

	BulkDeleteLinksResponse struct {
		Requested int   `json:"requested"`
		Deleted   int64 `json:"deleted"`
	}

	SavedLinkQuery struct {
		OwnerSubject string `json:"-"`
		Platform     string `json:"platform"`
		Tag          string `json:"tag"`
		Search       string `json:"search"`
		PageQuery
	}

	SavedLinkResponse struct {
		ID           string        `json:"id"`
		OwnerSubject string        `json:"owner_subject"`
		URL          string        `json:"url"`
		Title        string        `json:"title"`
		Description  string        `json:"description"`
		Thumbnail    string        `json:"thumbnail,omitempty"`
		Platform     string        `json:"platform"`
		Tags         []string      `json:"tags"`
		UserNotes    string        `json:"user_notes,omitempty"`
		Metadata     *LinkMetadata `json:"metadata,omitempty"`
		VisitCount   int           `json:"visit_count"`
		IsPublic     bool          `json:"is_public"`
		CreatedAt    time.Time     `json:"created_at"`
		UpdatedAt    time.Time     `json:"updated_at"`
	}

	SavedLinkListResponse struct {
		Links      []SavedLinkResponse `json:"links"`
		Pagination Pagination          `json:"pagination"`
	}

	SavedLinkStatsResponse struct {
		TotalLinks  int64            `json:"total_links"`
		TotalVisits int64            `json:"total_visits"`
		ByPlatform  map[string]int64 `json:"by_platform"`
		ByTag       map[string]int64 `json:"by_tag"`
	}
)
