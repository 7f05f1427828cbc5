package recipe

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"strings"
)

func validCategory(category string) bool {
	for _, c := range domain.RecipeCategories {
		if c == category {
			return true
		}
	}
	return false
}

func validCuisine(cuisine string) bool {
	for _, c := range domain.RecipeCuisines {
		if c == cuisine {
			return true
		}
	}
	return false
}

func validDifficulty(difficulty string) bool {
	switch difficulty {
	case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
		return true
	}
	return false
}

func validateCreateRequest(req domain.CreateRecipeRequest) error {
	switch {
	case strings.TrimSpace(req.Title) == "":
		return domain.ErrMissingTitle
	case len(req.Title) > 200:
		return domain.ErrTitleTooLong
	case strings.TrimSpace(req.Description) == "":
		return domain.ErrMissingDescription
	case len(req.Description) > 1000:
		return domain.ErrDescriptionTooLong
	case len(req.Ingredients) == 0:
		return domain.ErrNoIngredients
	case len(req.Instructions) == 0:
		return domain.ErrNoInstructions
	case req.PrepTimeMinutes < 0 || req.CookTimeMinutes < 0:
		return domain.ErrInvalidCookingTime
	case req.Servings < 1 || req.Servings > 50:
		return domain.ErrInvalidServings
	case !validCategory(req.Category):
		return domain.ErrInvalidCategory
	case !validCuisine(req.Cuisine):
		return domain.ErrInvalidCuisine
	case req.Difficulty != "" && !validDifficulty(req.Difficulty):
		return domain.ErrInvalidDifficulty
	}

	for _, ing := range req.Ingredients {
		if len(ing.Notes) > 1000 {
			return domain.ErrNotesTooLong
		}
	}
	if err := validateImages(req.Images); err != nil {
		return err
	}
	return validateNutrition(req.Nutrition)
}

func validateImages(images []domain.RecipeImageRequest) error {
	primaries := 0
	for _, img := range images {
		if img.IsPrimary {
			primaries++
		}
	}
	if primaries > 1 {
		return domain.ErrMultiplePrimaryImages
	}
	return nil
}

func validateNutrition(n *domain.NutritionRequest) error {
	if n == nil {
		return nil
	}
	if n.Calories < 0 || n.Protein < 0 || n.Carbohydrates < 0 ||
		n.Fat < 0 || n.Fiber < 0 || n.Sugar < 0 {
		return domain.ErrInvalidNutrition
	}
	return nil
}

func applyUpdateRequest(recipe *entities.Recipe, req domain.UpdateRecipeRequest) error {
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return domain.ErrMissingTitle
		}
		if len(*req.Title) > 200 {
			return domain.ErrTitleTooLong
		}
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		if len(*req.Description) > 1000 {
			return domain.ErrDescriptionTooLong
		}
		recipe.Description = *req.Description
	}
	if req.Ingredients != nil {
		if len(*req.Ingredients) == 0 {
			return domain.ErrNoIngredients
		}
		for _, ing := range *req.Ingredients {
			if len(ing.Notes) > 1000 {
				return domain.ErrNotesTooLong
			}
		}
		recipe.Ingredients = toIngredients(*req.Ingredients)
	}
	if req.Instructions != nil {
		if len(*req.Instructions) == 0 {
			return domain.ErrNoInstructions
		}
		recipe.Instructions = toInstructions(*req.Instructions)
	}
	if req.Images != nil {
		if err := validateImages(*req.Images); err != nil {
			return err
		}
		recipe.Images = toImages(*req.Images)
	}
	if req.Tags != nil {
		recipe.Tags = *req.Tags
	}
	if req.Category != nil {
		if !validCategory(*req.Category) {
			return domain.ErrInvalidCategory
		}
		recipe.Category = *req.Category
	}
	if req.Cuisine != nil {
		if !validCuisine(*req.Cuisine) {
			return domain.ErrInvalidCuisine
		}
		recipe.Cuisine = *req.Cuisine
	}
	if req.Difficulty != nil {
		if !validDifficulty(*req.Difficulty) {
			return domain.ErrInvalidDifficulty
		}
		recipe.Difficulty = *req.Difficulty
	}
	if req.PrepTimeMinutes != nil {
		if *req.PrepTimeMinutes < 0 {
			return domain.ErrInvalidCookingTime
		}
		recipe.PrepTimeMinutes = *req.PrepTimeMinutes
	}
	if req.CookTimeMinutes != nil {
		if *req.CookTimeMinutes < 0 {
			return domain.ErrInvalidCookingTime
		}
		recipe.CookTimeMinutes = *req.CookTimeMinutes
	}
	if req.Servings != nil {
		if *req.Servings < 1 || *req.Servings > 50 {
			return domain.ErrInvalidServings
		}
		recipe.Servings = *req.Servings
	}
	if req.DietaryInfo != nil {
		recipe.DietaryInfo = toDietaryInfo(req.DietaryInfo)
	}
	if req.Nutrition != nil {
		if err := validateNutrition(req.Nutrition); err != nil {
			return err
		}
		recipe.Nutrition = toNutrition(req.Nutrition)
	}
	if req.IsPublic != nil {
		recipe.IsPublic = *req.IsPublic
	}
	return nil
}

func toIngredients(in []domain.IngredientRequest) []entities.Ingredient {
	out := make([]entities.Ingredient, 0, len(in))
	for _, ing := range in {
		out = append(out, entities.Ingredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Notes:    ing.Notes,
		})
	}
	return out
}

// toInstructions renumbers steps 1..n in list order; caller-supplied
// numbering is ignored.
func toInstructions(in []domain.InstructionRequest) []entities.Instruction {
	out := make([]entities.Instruction, 0, len(in))
	for i, ins := range in {
		out = append(out, entities.Instruction{
			Step:            i + 1,
			Text:            ins.Text,
			DurationMinutes: ins.DurationMinutes,
			ImageURL:        ins.ImageURL,
		})
	}
	return out
}

func toImages(in []domain.RecipeImageRequest) []entities.RecipeImage {
	out := make([]entities.RecipeImage, 0, len(in))
	for _, img := range in {
		out = append(out, entities.RecipeImage{
			URL:       img.URL,
			Alt:       img.Alt,
			IsPrimary: img.IsPrimary,
		})
	}
	return out
}

func toDietaryInfo(in *domain.DietaryInfoRequest) entities.DietaryInfo {
	if in == nil {
		return entities.DietaryInfo{}
	}
	return entities.DietaryInfo{
		IsVegetarian: in.IsVegetarian,
		IsVegan:      in.IsVegan,
		IsGlutenFree: in.IsGlutenFree,
		IsDairyFree:  in.IsDairyFree,
		IsNutFree:    in.IsNutFree,
		IsKeto:       in.IsKeto,
		IsPaleo:      in.IsPaleo,
	}
}

func toNutrition(in *domain.NutritionRequest) *entities.NutritionFacts {
	if in == nil {
		return nil
	}
	return &entities.NutritionFacts{
		Calories:      in.Calories,
		Protein:       in.Protein,
		Carbohydrates: in.Carbohydrates,
		Fat:           in.Fat,
		Fiber:         in.Fiber,
		Sugar:         in.Sugar,
	}
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	ingredients := make([]domain.IngredientRequest, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ingredients = append(ingredients, domain.IngredientRequest{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Notes:    ing.Notes,
		})
	}

	instructions := make([]domain.InstructionRequest, 0, len(recipe.Instructions))
	for _, ins := range recipe.Instructions {
		instructions = append(instructions, domain.InstructionRequest{
			Text:            ins.Text,
			DurationMinutes: ins.DurationMinutes,
			ImageURL:        ins.ImageURL,
		})
	}

	images := make([]domain.RecipeImageRequest, 0, len(recipe.Images))
	for _, img := range recipe.Images {
		images = append(images, domain.RecipeImageRequest{
			URL:       img.URL,
			Alt:       img.Alt,
			IsPrimary: img.IsPrimary,
		})
	}

	var nutrition *domain.NutritionRequest
	if recipe.Nutrition != nil {
		nutrition = &domain.NutritionRequest{
			Calories:      recipe.Nutrition.Calories,
			Protein:       recipe.Nutrition.Protein,
			Carbohydrates: recipe.Nutrition.Carbohydrates,
			Fat:           recipe.Nutrition.Fat,
			Fiber:         recipe.Nutrition.Fiber,
			Sugar:         recipe.Nutrition.Sugar,
		}
	}

	var owner domain.UserSummary
	if recipe.User != nil {
		owner = domain.UserSummary{
			ID:          recipe.User.ID.String(),
			Subject:     recipe.User.Subject,
			DisplayName: recipe.User.DisplayName,
			AvatarURL:   recipe.User.AvatarURL,
		}
	} else {
		owner = domain.UserSummary{ID: recipe.UserID.String(), Subject: recipe.OwnerSubject}
	}

	return domain.RecipeResponse{
		ID:               recipe.ID.String(),
		Owner:            owner,
		Title:            recipe.Title,
		Description:      recipe.Description,
		Ingredients:      ingredients,
		Instructions:     instructions,
		Images:           images,
		Tags:             recipe.Tags,
		Category:         recipe.Category,
		Cuisine:          recipe.Cuisine,
		Difficulty:       recipe.Difficulty,
		PrepTimeMinutes:  recipe.PrepTimeMinutes,
		CookTimeMinutes:  recipe.CookTimeMinutes,
		TotalTimeMinutes: recipe.TotalTimeMinutes,
		Servings:         recipe.Servings,
		DietaryInfo: domain.DietaryInfoRequest{
			IsVegetarian: recipe.DietaryInfo.IsVegetarian,
			IsVegan:      recipe.DietaryInfo.IsVegan,
			IsGlutenFree: recipe.DietaryInfo.IsGlutenFree,
			IsDairyFree:  recipe.DietaryInfo.IsDairyFree,
			IsNutFree:    recipe.DietaryInfo.IsNutFree,
			IsKeto:       recipe.DietaryInfo.IsKeto,
			IsPaleo:      recipe.DietaryInfo.IsPaleo,
		},
		Nutrition: nutrition,
		Stats: domain.RecipeStats{
			Views:         recipe.Views,
			Likes:         recipe.Likes,
			Saves:         recipe.Saves,
			CommentsCount: recipe.CommentsCount,
			RatingAverage: recipe.RatingAverage,
			RatingCount:   recipe.RatingCount,
		},
		Status:      recipe.Status,
		PublishedAt: recipe.PublishedAt,
		IsPublic:    recipe.IsPublic,
		CreatedAt:   recipe.CreatedAt,
		UpdatedAt:   recipe.UpdatedAt,
	}
}
