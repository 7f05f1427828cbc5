package savedlink

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	SavedLinkRepository interface {
		CreateSavedLink(ctx context.Context, link *entities.SavedLink) error
		GetSavedLinkByID(ctx context.Context, id, ownerSubject string) (*entities.SavedLink, error)
		UpdateSavedLink(ctx context.Context, link *entities.SavedLink) error
		DeleteSavedLink(ctx context.Context, id, ownerSubject string) (int64, error)
		BulkDeleteSavedLinks(ctx context.Context, ids []string, ownerSubject string) (int64, error)
		ListSavedLinks(ctx context.Context, q domain.SavedLinkQuery) ([]*entities.SavedLink, int64, error)
		CountByPlatform(ctx context.Context, ownerSubject string) (map[string]int64, error)
		SumVisits(ctx context.Context, ownerSubject string) (int64, error)
		GetAllTags(ctx context.Context, ownerSubject string) ([][]string, error)
	}

	savedLinkRepository struct {
		db *gorm.DB
	}
)

func NewSavedLinkRepository(db *gorm.DB) SavedLinkRepository {
	return &savedLinkRepository{db: db}
}

func (r *savedLinkRepository) CreateSavedLink(ctx context.Context, link *entities.SavedLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// Every read and write here is scoped by owner_subject, so a link owned by
// someone else behaves exactly like a missing one.
func (r *savedLinkRepository) GetSavedLinkByID(ctx context.Context, id, ownerSubject string) (*entities.SavedLink, error) {
	var link entities.SavedLink
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_subject = ?", id, ownerSubject).
		First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// linkContentColumns: id, owner_subject and created_at are immutable;
// visit_count belongs to the stats repository.
var linkContentColumns = []string{
	"url", "title", "description", "thumbnail", "platform",
	"tags", "user_notes", "metadata", "is_public", "updated_at",
}

func (r *savedLinkRepository) UpdateSavedLink(ctx context.Context, link *entities.SavedLink) error {
	return r.db.WithContext(ctx).
		Model(link).
		Select(linkContentColumns).
		Updates(link).Error
}

func (r *savedLinkRepository) DeleteSavedLink(ctx context.Context, id, ownerSubject string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_subject = ?", id, ownerSubject).
		Delete(&entities.SavedLink{})
	return res.RowsAffected, res.Error
}

// BulkDeleteSavedLinks removes the owned subset of ids and reports how many
// rows actually went away; foreign ids in the list are simply ignored.
func (r *savedLinkRepository) BulkDeleteSavedLinks(ctx context.Context, ids []string, ownerSubject string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id IN ? AND owner_subject = ?", ids, ownerSubject).
		Delete(&entities.SavedLink{})
	return res.RowsAffected, res.Error
}

func (r *savedLinkRepository) ListSavedLinks(ctx context.Context, q domain.SavedLinkQuery) ([]*entities.SavedLink, int64, error) {
	var links []*entities.SavedLink
	var count int64
	offset := (q.Page - 1) * q.Limit

	if err := applyLinkFilters(r.db.WithContext(ctx).Model(&entities.SavedLink{}), q).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := applyLinkFilters(r.db.WithContext(ctx), q).
		Order("created_at desc").
		Offset(offset).
		Limit(q.Limit).
		Find(&links).Error; err != nil {
		return nil, 0, err
	}

	return links, count, nil
}

func applyLinkFilters(query *gorm.DB, q domain.SavedLinkQuery) *gorm.DB {
	query = query.Where("owner_subject = ?", q.OwnerSubject)
	if q.Platform != "" {
		query = query.Where("platform = ?", q.Platform)
	}
	if q.Tag != "" {
		query = query.Where("tags LIKE ?", `%"`+q.Tag+`"%`)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ? OR user_notes LIKE ?", like, like, like)
	}
	return query
}

func (r *savedLinkRepository) CountByPlatform(ctx context.Context, ownerSubject string) (map[string]int64, error) {
	var rows []struct {
		Platform string
		Count    int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.SavedLink{}).
		Select("platform, count(*) as count").
		Where("owner_subject = ?", ownerSubject).
		Group("platform").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Platform] = row.Count
	}
	return counts, nil
}

func (r *savedLinkRepository) SumVisits(ctx context.Context, ownerSubject string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entities.SavedLink{}).
		Where("owner_subject = ?", ownerSubject).
		Select("coalesce(sum(visit_count), 0)").
		Scan(&total).Error
	return total, err
}

// GetAllTags returns the tag list of every link the owner has; per-tag
// counting happens in the service since tags live in a JSON column.
func (r *savedLinkRepository) GetAllTags(ctx context.Context, ownerSubject string) ([][]string, error) {
	var links []*entities.SavedLink
	if err := r.db.WithContext(ctx).
		Select("tags").
		Where("owner_subject = ?", ownerSubject).
		Find(&links).Error; err != nil {
		return nil, err
	}

	tags := make([][]string, 0, len(links))
	for _, link := range links {
		tags = append(tags, link.Tags)
	}
	return tags, nil
}
