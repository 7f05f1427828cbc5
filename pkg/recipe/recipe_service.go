package recipe

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/stats"
	"RecipeShare-Backend/pkg/user"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, ownerSubject string) (domain.RecipeResponse, error)
		GetRecipe(ctx context.Context, recipeID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, callerSubject string) (domain.RecipeResponse, error)
		PublishRecipe(ctx context.Context, recipeID, callerSubject string) (domain.RecipeResponse, error)
		UnpublishRecipe(ctx context.Context, recipeID, callerSubject string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID, callerSubject string) error
		LikeRecipe(ctx context.Context, recipeID, callerSubject string) error
		UnlikeRecipe(ctx context.Context, recipeID, callerSubject string) error
		SaveRecipe(ctx context.Context, recipeID, callerSubject string) error
		UnsaveRecipe(ctx context.Context, recipeID, callerSubject string) error
		RateRecipe(ctx context.Context, recipeID string, req domain.RateRecipeRequest) error
		ListRecipes(ctx context.Context, q domain.RecipeQuery) (domain.RecipeListResponse, error)
		ListMyRecipes(ctx context.Context, ownerSubject string, q domain.RecipeQuery) (domain.RecipeListResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		userRepository   user.UserRepository
		statsRepository  stats.StatsRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, userRepository user.UserRepository, statsRepository stats.StatsRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		userRepository:   userRepository,
		statsRepository:  statsRepository,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, ownerSubject string) (domain.RecipeResponse, error) {
	owner, err := s.userRepository.GetUserBySubject(ctx, ownerSubject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrUserNotFound
		}
		return domain.RecipeResponse{}, domain.StorageError(err)
	}

	if err := validateCreateRequest(req); err != nil {
		return domain.RecipeResponse{}, err
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyMedium
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	recipe := &entities.Recipe{
		ID:           uuid.New(),
		UserID:       owner.ID,
		OwnerSubject: owner.Subject,
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  toIngredients(req.Ingredients),
		Instructions: toInstructions(req.Instructions),
		Images:       toImages(req.Images),
		Tags:         req.Tags,
		Category:     req.Category,
		Cuisine:      req.Cuisine,
		Difficulty:   difficulty,
		// Total time is derived, never trusted from the caller.
		PrepTimeMinutes:  req.PrepTimeMinutes,
		CookTimeMinutes:  req.CookTimeMinutes,
		TotalTimeMinutes: req.PrepTimeMinutes + req.CookTimeMinutes,
		Servings:         req.Servings,
		DietaryInfo:      toDietaryInfo(req.DietaryInfo),
		Nutrition:        toNutrition(req.Nutrition),
		Status:           domain.StatusDraft,
		IsPublic:         isPublic,
	}
	if recipe.Tags == nil {
		recipe.Tags = []string{}
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, domain.StorageError(err)
	}

	if err := s.statsRepository.AddUserStat(ctx, owner.ID.String(), "recipes_created", 1); err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe.User = owner
	return toRecipeResponse(recipe), nil
}

// GetRecipe bumps the view counter on every successful fetch. There is no
// per-viewer dedup; repeated fetches count repeatedly.
func (s *recipeService) GetRecipe(ctx context.Context, recipeID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, domain.StorageError(err)
	}

	if err := s.statsRepository.AddRecipeStat(ctx, recipeID, "views", 1); err != nil {
		return domain.RecipeResponse{}, err
	}
	recipe.Views++

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, callerSubject string) (domain.RecipeResponse, error) {
	recipe, err := s.getOwned(ctx, recipeID, callerSubject)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if err := applyUpdateRequest(recipe, req); err != nil {
		return domain.RecipeResponse{}, err
	}
	recipe.TotalTimeMinutes = recipe.PrepTimeMinutes + recipe.CookTimeMinutes
	recipe.UpdatedAt = time.Now()

	if err := s.recipeRepository.UpdateRecipeContent(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, domain.StorageError(err)
	}
	return toRecipeResponse(recipe), nil
}

// PublishRecipe is idempotent. published_at is set exactly once, on the
// first transition into published, and survives later unpublishes.
func (s *recipeService) PublishRecipe(ctx context.Context, recipeID, callerSubject string) (domain.RecipeResponse, error) {
	recipe, err := s.getOwned(ctx, recipeID, callerSubject)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if recipe.Status == domain.StatusPublished {
		return toRecipeResponse(recipe), nil
	}

	now := time.Now()
	if err := s.recipeRepository.SetRecipeStatus(ctx, recipeID, domain.StatusPublished, &now); err != nil {
		return domain.RecipeResponse{}, domain.StorageError(err)
	}

	recipe.Status = domain.StatusPublished
	if recipe.PublishedAt == nil {
		recipe.PublishedAt = &now
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) UnpublishRecipe(ctx context.Context, recipeID, callerSubject string) (domain.RecipeResponse, error) {
	recipe, err := s.getOwned(ctx, recipeID, callerSubject)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if err := s.recipeRepository.SetRecipeStatus(ctx, recipeID, domain.StatusDraft, nil); err != nil {
		return domain.RecipeResponse{}, domain.StorageError(err)
	}

	recipe.Status = domain.StatusDraft
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID, callerSubject string) error {
	recipe, err := s.getOwned(ctx, recipeID, callerSubject)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipeID); err != nil {
		return domain.StorageError(err)
	}

	return s.statsRepository.AddUserStat(ctx, recipe.UserID.String(), "recipes_created", -1)
}

func (s *recipeService) LikeRecipe(ctx context.Context, recipeID, callerSubject string) error {
	return s.adjustSocialStat(ctx, recipeID, callerSubject, "likes", "recipes_liked", 1)
}

func (s *recipeService) UnlikeRecipe(ctx context.Context, recipeID, callerSubject string) error {
	return s.adjustSocialStat(ctx, recipeID, callerSubject, "likes", "recipes_liked", -1)
}

func (s *recipeService) SaveRecipe(ctx context.Context, recipeID, callerSubject string) error {
	return s.adjustSocialStat(ctx, recipeID, callerSubject, "saves", "", 1)
}

func (s *recipeService) UnsaveRecipe(ctx context.Context, recipeID, callerSubject string) error {
	return s.adjustSocialStat(ctx, recipeID, callerSubject, "saves", "", -1)
}

// adjustSocialStat checks existence first so a miss changes nothing, then
// applies the floored atomic delta. The caller's mirror counter, when one
// exists, follows the same floor.
func (s *recipeService) adjustSocialStat(ctx context.Context, recipeID, callerSubject, recipeColumn, userColumn string, delta int) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return domain.StorageError(err)
	}

	if err := s.statsRepository.AddRecipeStat(ctx, recipeID, recipeColumn, delta); err != nil {
		return err
	}

	if userColumn == "" {
		return nil
	}
	caller, err := s.userRepository.GetUserBySubject(ctx, callerSubject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return domain.StorageError(err)
	}
	return s.statsRepository.AddUserStat(ctx, caller.ID.String(), userColumn, delta)
}

func (s *recipeService) RateRecipe(ctx context.Context, recipeID string, req domain.RateRecipeRequest) error {
	if req.Rating < 0 || req.Rating > 5 {
		return domain.ErrInvalidRating
	}
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return domain.StorageError(err)
	}
	return s.statsRepository.ApplyRating(ctx, recipeID, req.Rating)
}

// ListRecipes is the public listing: unless the caller narrows it, only
// published, public recipes are visible.
func (s *recipeService) ListRecipes(ctx context.Context, q domain.RecipeQuery) (domain.RecipeListResponse, error) {
	q.Normalize()
	if q.Status == "" {
		q.Status = domain.StatusPublished
	}
	q.PublicOnly = true
	q.OwnerSubject = ""
	return s.list(ctx, q)
}

// ListMyRecipes is the owner listing: no default status filter, so drafts
// and archived recipes show up alongside published ones. The asymmetry
// with the public listing is deliberate.
func (s *recipeService) ListMyRecipes(ctx context.Context, ownerSubject string, q domain.RecipeQuery) (domain.RecipeListResponse, error) {
	q.Normalize()
	q.OwnerSubject = ownerSubject
	q.PublicOnly = false
	return s.list(ctx, q)
}

func (s *recipeService) list(ctx context.Context, q domain.RecipeQuery) (domain.RecipeListResponse, error) {
	recipes, count, err := s.recipeRepository.ListRecipes(ctx, q)
	if err != nil {
		return domain.RecipeListResponse{}, domain.StorageError(err)
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, toRecipeResponse(recipe))
	}

	return domain.RecipeListResponse{
		Recipes:    result,
		Pagination: domain.NewPagination(q.Page, q.Limit, count),
	}, nil
}

// getOwned re-checks ownership on every call rather than trusting any
// earlier read.
func (s *recipeService) getOwned(ctx context.Context, recipeID, callerSubject string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, domain.StorageError(err)
	}
	if recipe.OwnerSubject != callerSubject {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}
	return recipe, nil
}
