package domain

import (
	"context"
	"errors"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
)

var (
	MessageFailedBodyRequest  = "failed to parse request body"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "failed to token invalid"

	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")

	ErrStorageTimeout     = errors.New("storage did not respond in time")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// StorageError maps a context deadline hit at the storage boundary to the
// retryable timeout sentinel. Everything else passes through unchanged.
func StorageError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrStorageTimeout
	}
	return err
}

type (
	PageQuery struct {
		Page  int `json:"page"`
		Limit int `json:"limit"`
	}

	Pagination struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"total_pages"`
	}
)

// Normalize clamps pagination input to a 1-indexed page and a bounded
// page size.
func (p *PageQuery) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// NewPagination computes total_pages = ceil(total/limit), with 0 pages for
// an empty result set. A page past the end is not an error; it simply pairs
// with an empty item list.
func NewPagination(page, limit int, total int64) Pagination {
	var totalPages int64
	if total > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
