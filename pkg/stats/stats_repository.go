package stats

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUnknownStatColumn = errors.New("unknown stat column")

	recipeStatColumns = map[string]bool{
		"views":          true,
		"likes":          true,
		"saves":          true,
		"comments_count": true,
	}

	userStatColumns = map[string]bool{
		"recipes_created": true,
		"recipes_liked":   true,
		"followers":       true,
		"following":       true,
	}
)

type (
	// StatsRepository applies counter mutations as single SQL statements so
	// concurrent callers never lose an increment. Decrements clamp at zero
	// inside the statement; clamping is expected behavior, not an error.
	StatsRepository interface {
		AddRecipeStat(ctx context.Context, recipeID string, column string, delta int) error
		AddUserStat(ctx context.Context, userID string, column string, delta int) error
		AddLinkVisit(ctx context.Context, linkID, ownerSubject string) (bool, error)
		ApplyRating(ctx context.Context, recipeID string, rating float64) error
	}

	statsRepository struct {
		db *gorm.DB
	}
)

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// flooredDelta builds "column = max(column + delta, 0)" portably.
func flooredDelta(column string, delta int) clause.Expr {
	return gorm.Expr(
		fmt.Sprintf("CASE WHEN %s + ? >= 0 THEN %s + ? ELSE 0 END", column, column),
		delta, delta,
	)
}

func (r *statsRepository) AddRecipeStat(ctx context.Context, recipeID string, column string, delta int) error {
	if !recipeStatColumns[column] {
		return ErrUnknownStatColumn
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		UpdateColumn(column, flooredDelta(column, delta)).Error
	return domain.StorageError(err)
}

func (r *statsRepository) AddUserStat(ctx context.Context, userID string, column string, delta int) error {
	if !userStatColumns[column] {
		return ErrUnknownStatColumn
	}
	err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		UpdateColumn(column, flooredDelta(column, delta)).Error
	return domain.StorageError(err)
}

// AddLinkVisit is owner-scoped: a foreign-owned id matches no row, which is
// indistinguishable from an absent one. Returns whether a row was touched.
func (r *statsRepository) AddLinkVisit(ctx context.Context, linkID, ownerSubject string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.SavedLink{}).
		Where("id = ? AND owner_subject = ?", linkID, ownerSubject).
		UpdateColumn("visit_count", gorm.Expr("visit_count + 1"))
	if res.Error != nil {
		return false, domain.StorageError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ApplyRating folds one rating into the running average and count in a
// single statement; both right-hand sides read the pre-update row.
func (r *statsRepository) ApplyRating(ctx context.Context, recipeID string, rating float64) error {
	err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		UpdateColumns(map[string]interface{}{
			"rating_average": gorm.Expr("(rating_average * rating_count + ?) / (rating_count + 1)", rating),
			"rating_count":   gorm.Expr("rating_count + 1"),
		}).Error
	return domain.StorageError(err)
}
