package recipe

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		UpdateRecipeContent(ctx context.Context, recipe *entities.Recipe) error
		SetRecipeStatus(ctx context.Context, id, status string, publishedAt *time.Time) error
		DeleteRecipe(ctx context.Context, id string) error
		ListRecipes(ctx context.Context, q domain.RecipeQuery) ([]*entities.Recipe, int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// contentColumns are the only columns a recipe edit may touch. Status,
// owner and counter columns each have their own write path.
var contentColumns = []string{
	"title", "description", "ingredients", "instructions", "images", "tags",
	"category", "cuisine", "difficulty",
	"prep_time_minutes", "cook_time_minutes", "total_time_minutes", "servings",
	"is_vegetarian", "is_vegan", "is_gluten_free", "is_dairy_free",
	"is_nut_free", "is_keto", "is_paleo",
	"nutrition", "is_public", "updated_at",
}

func (r *recipeRepository) UpdateRecipeContent(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).
		Model(recipe).
		Select(contentColumns).
		Updates(recipe).Error
}

// SetRecipeStatus writes the status transition. published_at is write-once
// at the SQL level: COALESCE keeps whatever timestamp got there first, so
// racing publishers cannot overwrite each other.
func (r *recipeRepository) SetRecipeStatus(ctx context.Context, id, status string, publishedAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if publishedAt != nil {
		updates["published_at"] = gorm.Expr("COALESCE(published_at, ?)", *publishedAt)
	}
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) ListRecipes(ctx context.Context, q domain.RecipeQuery) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (q.Page - 1) * q.Limit

	base := applyRecipeFilters(r.db.WithContext(ctx).Model(&entities.Recipe{}), q)
	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	query := applyRecipeFilters(r.db.WithContext(ctx).Preload("User"), q)
	query = applyRecipeOrder(query, q)

	if err := query.Offset(offset).Limit(q.Limit).Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func applyRecipeFilters(query *gorm.DB, q domain.RecipeQuery) *gorm.DB {
	if q.OwnerSubject != "" {
		query = query.Where("owner_subject = ?", q.OwnerSubject)
	}
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.PublicOnly {
		query = query.Where("is_public = ?", true)
	}
	if q.Category != "" {
		query = query.Where("category = ?", q.Category)
	}
	if q.Cuisine != "" {
		query = query.Where("cuisine = ?", q.Cuisine)
	}
	if q.Difficulty != "" {
		query = query.Where("difficulty = ?", q.Difficulty)
	}
	if q.Tag != "" {
		// Tags live in a JSON text column; containment of the quoted tag
		// is the match contract.
		query = query.Where("tags LIKE ?", `%"`+q.Tag+`"%`)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ? OR tags LIKE ?", like, like, like)
	}
	return query
}

// applyRecipeOrder ranks title hits above description/tag hits when a text
// search is present; recency is always the final key.
func applyRecipeOrder(query *gorm.DB, q domain.RecipeQuery) *gorm.DB {
	if q.Search != "" {
		like := "%" + q.Search + "%"
		return query.Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN title LIKE ? THEN 0 WHEN description LIKE ? THEN 1 ELSE 2 END, created_at desc",
			Vars:               []interface{}{like, like},
			WithoutParentheses: true,
		}})
	}
	return query.Order("created_at desc")
}
