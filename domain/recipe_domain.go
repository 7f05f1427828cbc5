package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes     = "success get recipes"
	MessageSuccessGetRecipe      = "success get recipe detail"
	MessageSuccessCreateRecipe   = "recipe created successfully"
	MessageSuccessUpdateRecipe   = "recipe updated successfully"
	MessageSuccessDeleteRecipe   = "recipe deleted successfully"
	MessageSuccessPublishRecipe  = "recipe published successfully"
	MessageSuccessUnpublish      = "recipe unpublished successfully"
	MessageSuccessLikeRecipe     = "recipe liked successfully"
	MessageSuccessUnlikeRecipe   = "recipe unliked successfully"
	MessageSuccessSaveRecipe     = "recipe saved successfully"
	MessageSuccessUnsaveRecipe   = "recipe unsaved successfully"
	MessageSuccessRateRecipe     = "recipe rated successfully"

	MessageFailedGetRecipes    = "failed to get recipes"
	MessageFailedGetRecipe     = "failed to get recipe detail"
	MessageFailedCreateRecipe  = "failed to create recipe"
	MessageFailedUpdateRecipe  = "failed to update recipe"
	MessageFailedDeleteRecipe  = "failed to delete recipe"
	MessageFailedPublishRecipe = "failed to publish recipe"
	MessageFailedUnpublish     = "failed to unpublish recipe"
	MessageFailedLikeRecipe    = "failed to like recipe"
	MessageFailedSaveRecipe    = "failed to save recipe"
	MessageFailedRateRecipe    = "failed to rate recipe"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrMissingTitle             = errors.New("title is required")
	ErrMissingDescription       = errors.New("description is required")
	ErrNoIngredients            = errors.New("at least one ingredient is required")
	ErrNoInstructions           = errors.New("at least one instruction is required")
	ErrTitleTooLong             = errors.New("title must be at most 200 characters")
	ErrDescriptionTooLong       = errors.New("description must be at most 1000 characters")
	ErrNotesTooLong             = errors.New("notes must be at most 1000 characters")
	ErrInvalidServings          = errors.New("servings must be between 1 and 50")
	ErrInvalidCookingTime       = errors.New("prep and cook minutes must be non-negative")
	ErrInvalidCategory          = errors.New("invalid recipe category")
	ErrInvalidCuisine           = errors.New("invalid recipe cuisine")
	ErrInvalidDifficulty        = errors.New("invalid recipe difficulty")
	ErrInvalidNutrition         = errors.New("nutrition values must be non-negative")
	ErrInvalidRating            = errors.New("rating must be between 0 and 5")
	ErrMultiplePrimaryImages    = errors.New("at most one image can be primary")
)

var RecipeCategories = []string{
	"appetizer", "main-course", "dessert", "beverage", "snack",
	"breakfast", "lunch", "dinner", "side-dish",
}

var RecipeCuisines = []string{
	"italian", "mexican", "chinese", "japanese", "indian", "thai",
	"french", "mediterranean", "american", "korean", "vietnamese", "other",
}

type (
	IngredientRequest struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
		Notes    string  `json:"notes" validate:"omitempty,max=1000"`
	}

	InstructionRequest struct {
		Text            string `json:"text" validate:"required"`
		DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=0"`
		ImageURL        string `json:"image_url" validate:"omitempty,url"`
	}

	RecipeImageRequest struct {
		URL       string `json:"url" validate:"required,url"`
		Alt       string `json:"alt"`
		IsPrimary bool   `json:"is_primary"`
	}

	DietaryInfoRequest struct {
		IsVegetarian bool `json:"is_vegetarian"`
		IsVegan      bool `json:"is_vegan"`
		IsGlutenFree bool `json:"is_gluten_free"`
		IsDairyFree  bool `json:"is_dairy_free"`
		IsNutFree    bool `json:"is_nut_free"`
		IsKeto       bool `json:"is_keto"`
		IsPaleo      bool `json:"is_paleo"`
	}

	NutritionRequest struct {
		Calories      int `json:"calories" validate:"min=0"`
		Protein       int `json:"protein" validate:"min=0"`
		Carbohydrates int `json:"carbohydrates" validate:"min=0"`
		Fat           int `json:"fat" validate:"min=0"`
		Fiber         int `json:"fiber" validate:"min=0"`
		Sugar         int `json:"sugar" validate:"min=0"`
	}

	CreateRecipeRequest struct {
		Title           string               `json:"title" validate:"required,max=200"`
		Description     string               `json:"description" validate:"required,max=1000"`
		Ingredients     []IngredientRequest  `json:"ingredients" validate:"required,min=1,dive"`
		Instructions    []InstructionRequest `json:"instructions" validate:"required,min=1,dive"`
		Images          []RecipeImageRequest `json:"images" validate:"omitempty,dive"`
		Tags            []string             `json:"tags"`
		Category        string               `json:"category" validate:"required"`
		Cuisine         string               `json:"cuisine" validate:"required"`
		Difficulty      string               `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
		PrepTimeMinutes int                  `json:"prep_time_minutes" validate:"min=0"`
		CookTimeMinutes int                  `json:"cook_time_minutes" validate:"min=0"`
		Servings        int                  `json:"servings" validate:"required,min=1,max=50"`
		DietaryInfo     *DietaryInfoRequest  `json:"dietary_info"`
		Nutrition       *NutritionRequest    `json:"nutrition"`
		IsPublic        *bool                `json:"is_public"`
	}

	// UpdateRecipeRequest is a partial update. Owner, status and counter
	// fields are never part of the payload; they have their own operations.
	UpdateRecipeRequest struct {
		Title           *string               `json:"title" validate:"omitempty,max=200"`
		Description     *string               `json:"description" validate:"omitempty,max=1000"`
		Ingredients     *[]IngredientRequest  `json:"ingredients" validate:"omitempty,min=1,dive"`
		Instructions    *[]InstructionRequest `json:"instructions" validate:"omitempty,min=1,dive"`
		Images          *[]RecipeImageRequest `json:"images" validate:"omitempty,dive"`
		Tags            *[]string             `json:"tags"`
		Category        *string               `json:"category"`
		Cuisine         *string               `json:"cuisine"`
		Difficulty      *string               `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
		PrepTimeMinutes *int                  `json:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes *int                  `json:"cook_time_minutes" validate:"omitempty,min=0"`
		Servings        *int                  `json:"servings" validate:"omitempty,min=1,max=50"`
		DietaryInfo     *DietaryInfoRequest   `json:"dietary_info"`
		Nutrition       *NutritionRequest     `json:"nutrition"`
		IsPublic        *bool                 `json:"is_public"`
	}

	RateRecipeRequest struct {
		Rating float64 `json:"rating" validate:"min=0,max=5"`
	}

	RecipeQuery struct {
		OwnerSubject string `json:"-"`
		Status       string `json:"status" validate:"omitempty,oneof=draft published archived"`
		PublicOnly   bool   `json:"-"`
		Category     string `json:"category"`
		Cuisine      string `json:"cuisine"`
		Difficulty   string `json:"difficulty"`
		Tag          string `json:"tag"`
		Search       string `json:"search"`
		PageQuery
	}

	RecipeStats struct {
		Views         int     `json:"views"`
		Likes         int     `json:"likes"`
		Saves         int     `json:"saves"`
		CommentsCount int     `json:"comments_count"`
		RatingAverage float64 `json:"rating_average"`
		RatingCount   int     `json:"rating_count"`
	}

	RecipeResponse struct {
		ID               string               `json:"id"`
		Owner            UserSummary          `json:"owner"`
		Title            string               `json:"title"`
		Description      string               `json:"description"`
		Ingredients      []IngredientRequest  `json:"ingredients"`
		Instructions     []InstructionRequest `json:"instructions"`
		Images           []RecipeImageRequest `json:"images"`
		Tags             []string             `json:"tags"`
		Category         string               `json:"category"`
		Cuisine          string               `json:"cuisine"`
		Difficulty       string               `json:"difficulty"`
		PrepTimeMinutes  int                  `json:"prep_time_minutes"`
		CookTimeMinutes  int                  `json:"cook_time_minutes"`
		TotalTimeMinutes int                  `json:"total_time_minutes"`
		Servings         int                  `json:"servings"`
		DietaryInfo      DietaryInfoRequest   `json:"dietary_info"`
		Nutrition        *NutritionRequest    `json:"nutrition,omitempty"`
		Stats            RecipeStats          `json:"stats"`
		Status           string               `json:"status"`
		PublishedAt      *time.Time           `json:"published_at,omitempty"`
		IsPublic         bool                 `json:"is_public"`
		CreatedAt        time.Time            `json:"created_at"`
		UpdatedAt        time.Time            `json:"updated_at"`
	}

	RecipeListResponse struct {
		Recipes    []RecipeResponse `json:"recipes"`
		Pagination Pagination       `json:"pagination"`
	}
)
