package savedlink

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/stats"
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	SavedLinkService interface {
		CreateLink(ctx context.Context, req domain.CreateSavedLinkRequest, ownerSubject string) (domain.SavedLinkResponse, error)
		GetLink(ctx context.Context, linkID, ownerSubject string) (domain.SavedLinkResponse, error)
		UpdateLink(ctx context.Context, linkID string, req domain.UpdateSavedLinkRequest, ownerSubject string) (domain.SavedLinkResponse, error)
		DeleteLink(ctx context.Context, linkID, ownerSubject string) error
		BulkDeleteLinks(ctx context.Context, req domain.BulkDeleteLinksRequest, ownerSubject string) (domain.BulkDeleteLinksResponse, error)
		VisitLink(ctx context.Context, linkID, ownerSubject string) error
		GetLinkStats(ctx context.Context, ownerSubject string) (domain.SavedLinkStatsResponse, error)
		ListLinks(ctx context.Context, ownerSubject string, q domain.SavedLinkQuery) (domain.SavedLinkListResponse, error)
	}

	savedLinkService struct {
		savedLinkRepository SavedLinkRepository
		statsRepository     stats.StatsRepository
	}
)

func NewSavedLinkService(savedLinkRepository SavedLinkRepository, statsRepository stats.StatsRepository) SavedLinkService {
	return &savedLinkService{
		savedLinkRepository: savedLinkRepository,
		statsRepository:     statsRepository,
	}
}

func (s *savedLinkService) CreateLink(ctx context.Context, req domain.CreateSavedLinkRequest, ownerSubject string) (domain.SavedLinkResponse, error) {
	if err := validateLinkURL(req.URL); err != nil {
		return domain.SavedLinkResponse{}, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return domain.SavedLinkResponse{}, domain.ErrLinkTitleRequired
	}
	if len(req.Title) > 200 {
		return domain.SavedLinkResponse{}, domain.ErrLinkTitleTooLong
	}
	if len(req.Description) > 1000 {
		return domain.SavedLinkResponse{}, domain.ErrLinkDescTooLong
	}
	if len(req.UserNotes) > 500 {
		return domain.SavedLinkResponse{}, domain.ErrUserNotesTooLong
	}
	if err := validateTags(req.Tags); err != nil {
		return domain.SavedLinkResponse{}, err
	}

	platform := req.Platform
	if platform == "" || platform == domain.PlatformOther {
		platform = DetectPlatform(req.URL)
	} else if !validPlatform(platform) {
		return domain.SavedLinkResponse{}, domain.ErrInvalidPlatform
	}

	metadata, err := marshalMetadata(req.Metadata)
	if err != nil {
		return domain.SavedLinkResponse{}, err
	}

	link := &entities.SavedLink{
		ID:           uuid.New(),
		OwnerSubject: ownerSubject,
		URL:          req.URL,
		Title:        req.Title,
		Description:  req.Description,
		Thumbnail:    req.Thumbnail,
		Platform:     platform,
		Tags:         req.Tags,
		UserNotes:    req.UserNotes,
		Metadata:     metadata,
		IsPublic:     req.IsPublic,
	}
	if link.Tags == nil {
		link.Tags = []string{}
	}

	if err := s.savedLinkRepository.CreateSavedLink(ctx, link); err != nil {
		return domain.SavedLinkResponse{}, domain.StorageError(err)
	}
	return toSavedLinkResponse(link), nil
}

func (s *savedLinkService) GetLink(ctx context.Context, linkID, ownerSubject string) (domain.SavedLinkResponse, error) {
	link, err := s.getOwned(ctx, linkID, ownerSubject)
	if err != nil {
		return domain.SavedLinkResponse{}, err
	}
	return toSavedLinkResponse(link), nil
}

func (s *savedLinkService) UpdateLink(ctx context.Context, linkID string, req domain.UpdateSavedLinkRequest, ownerSubject string) (domain.SavedLinkResponse, error) {
	link, err := s.getOwned(ctx, linkID, ownerSubject)
	if err != nil {
		return domain.SavedLinkResponse{}, err
	}

	if req.URL != nil {
		if err := validateLinkURL(*req.URL); err != nil {
			return domain.SavedLinkResponse{}, err
		}
		link.URL = *req.URL
	}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return domain.SavedLinkResponse{}, domain.ErrLinkTitleRequired
		}
		if len(*req.Title) > 200 {
			return domain.SavedLinkResponse{}, domain.ErrLinkTitleTooLong
		}
		link.Title = *req.Title
	}
	if req.Description != nil {
		if len(*req.Description) > 1000 {
			return domain.SavedLinkResponse{}, domain.ErrLinkDescTooLong
		}
		link.Description = *req.Description
	}
	if req.Thumbnail != nil {
		link.Thumbnail = *req.Thumbnail
	}
	if req.Platform != nil {
		if !validPlatform(*req.Platform) {
			return domain.SavedLinkResponse{}, domain.ErrInvalidPlatform
		}
		link.Platform = *req.Platform
	}
	if req.Tags != nil {
		if err := validateTags(*req.Tags); err != nil {
			return domain.SavedLinkResponse{}, err
		}
		link.Tags = *req.Tags
	}
	if req.UserNotes != nil {
		if len(*req.UserNotes) > 500 {
			return domain.SavedLinkResponse{}, domain.ErrUserNotesTooLong
		}
		link.UserNotes = *req.UserNotes
	}
	if req.IsPublic != nil {
		link.IsPublic = *req.IsPublic
	}
	if req.Metadata != nil {
		metadata, err := marshalMetadata(req.Metadata)
		if err != nil {
			return domain.SavedLinkResponse{}, err
		}
		link.Metadata = metadata
	}
	link.UpdatedAt = time.Now()

	// The repository writes content columns only; id, owner and created_at
	// stay immutable no matter what the payload carried.
	if err := s.savedLinkRepository.UpdateSavedLink(ctx, link); err != nil {
		return domain.SavedLinkResponse{}, domain.StorageError(err)
	}
	return toSavedLinkResponse(link), nil
}

func (s *savedLinkService) DeleteLink(ctx context.Context, linkID, ownerSubject string) error {
	deleted, err := s.savedLinkRepository.DeleteSavedLink(ctx, linkID, ownerSubject)
	if err != nil {
		return domain.StorageError(err)
	}
	if deleted == 0 {
		return domain.ErrSavedLinkNotFound
	}
	return nil
}

func (s *savedLinkService) BulkDeleteLinks(ctx context.Context, req domain.BulkDeleteLinksRequest, ownerSubject string) (domain.BulkDeleteLinksResponse, error) {
	if len(req.IDs) == 0 {
		return domain.BulkDeleteLinksResponse{}, domain.ErrEmptyBulkDeleteIDs
	}

	deleted, err := s.savedLinkRepository.BulkDeleteSavedLinks(ctx, req.IDs, ownerSubject)
	if err != nil {
		return domain.BulkDeleteLinksResponse{}, domain.StorageError(err)
	}

	return domain.BulkDeleteLinksResponse{
		Requested: len(req.IDs),
		Deleted:   deleted,
	}, nil
}

func (s *savedLinkService) VisitLink(ctx context.Context, linkID, ownerSubject string) error {
	touched, err := s.statsRepository.AddLinkVisit(ctx, linkID, ownerSubject)
	if err != nil {
		return err
	}
	if !touched {
		return domain.ErrSavedLinkNotFound
	}
	return nil
}

func (s *savedLinkService) GetLinkStats(ctx context.Context, ownerSubject string) (domain.SavedLinkStatsResponse, error) {
	byPlatform, err := s.savedLinkRepository.CountByPlatform(ctx, ownerSubject)
	if err != nil {
		return domain.SavedLinkStatsResponse{}, domain.StorageError(err)
	}

	var totalLinks int64
	for _, count := range byPlatform {
		totalLinks += count
	}

	totalVisits, err := s.savedLinkRepository.SumVisits(ctx, ownerSubject)
	if err != nil {
		return domain.SavedLinkStatsResponse{}, domain.StorageError(err)
	}

	tagLists, err := s.savedLinkRepository.GetAllTags(ctx, ownerSubject)
	if err != nil {
		return domain.SavedLinkStatsResponse{}, domain.StorageError(err)
	}
	byTag := make(map[string]int64)
	for _, tags := range tagLists {
		for _, tag := range tags {
			byTag[tag]++
		}
	}

	return domain.SavedLinkStatsResponse{
		TotalLinks:  totalLinks,
		TotalVisits: totalVisits,
		ByPlatform:  byPlatform,
		ByTag:       byTag,
	}, nil
}

func (s *savedLinkService) ListLinks(ctx context.Context, ownerSubject string, q domain.SavedLinkQuery) (domain.SavedLinkListResponse, error) {
	q.Normalize()
	q.OwnerSubject = ownerSubject

	links, count, err := s.savedLinkRepository.ListSavedLinks(ctx, q)
	if err != nil {
		return domain.SavedLinkListResponse{}, domain.StorageError(err)
	}

	result := make([]domain.SavedLinkResponse, 0, len(links))
	for _, link := range links {
		result = append(result, toSavedLinkResponse(link))
	}

	return domain.SavedLinkListResponse{
		Links:      result,
		Pagination: domain.NewPagination(q.Page, q.Limit, count),
	}, nil
}

func (s *savedLinkService) getOwned(ctx context.Context, linkID, ownerSubject string) (*entities.SavedLink, error) {
	link, err := s.savedLinkRepository.GetSavedLinkByID(ctx, linkID, ownerSubject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSavedLinkNotFound
		}
		return nil, domain.StorageError(err)
	}
	return link, nil
}

func validateLinkURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Hostname() == "" {
		return domain.ErrInvalidURL
	}
	return nil
}

func validateTags(tags []string) error {
	for _, tag := range tags {
		if len(tag) > 30 {
			return domain.ErrLinkTagTooLong
		}
	}
	return nil
}

func validPlatform(platform string) bool {
	for _, p := range domain.SavedLinkPlatforms {
		if p == platform {
			return true
		}
	}
	return false
}

func marshalMetadata(metadata *domain.LinkMetadata) (datatypes.JSON, error) {
	if metadata == nil {
		return nil, nil
	}
	raw, err := json.Marshal(metadata)
	return datatypes.JSON(raw), err
}

func toSavedLinkResponse(link *entities.SavedLink) domain.SavedLinkResponse {
	var metadata *domain.LinkMetadata
	if len(link.Metadata) > 0 {
		var m domain.LinkMetadata
		if err := json.Unmarshal(link.Metadata, &m); err == nil {
			metadata = &m
		}
	}

	return domain.SavedLinkResponse{
		ID:           link.ID.String(),
		OwnerSubject: link.OwnerSubject,
		URL:          link.URL,
		Title:        link.Title,
		Description:  link.Description,
		Thumbnail:    link.Thumbnail,
		Platform:     link.Platform,
		Tags:         link.Tags,
		UserNotes:    link.UserNotes,
		Metadata:     metadata,
		VisitCount:   link.VisitCount,
		IsPublic:     link.IsPublic,
		CreatedAt:    link.CreatedAt,
		UpdatedAt:    link.UpdatedAt,
	}
}
