package handlers

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/internal/api/presenters"
	"RecipeShare-Backend/pkg/recipe"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		PublishRecipe(c *fiber.Ctx) error
		UnpublishRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		LikeRecipe(c *fiber.Ctx) error
		UnlikeRecipe(c *fiber.Ctx) error
		SaveRecipe(c *fiber.Ctx) error
		UnsaveRecipe(c *fiber.Ctx) error
		RateRecipe(c *fiber.Ctx) error
		ListRecipes(c *fiber.Ctx) error
		ListMyRecipes(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.UserContext(), *req, subject)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) GetRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	if recipeID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipe, domain.ErrRecipeNotFound)
	}

	res, err := h.recipeService.GetRecipe(c.UserContext(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)
	recipeID := c.Params("id")
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.UserContext(), recipeID, *req, subject)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) PublishRecipe(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)
	recipeID := c.Params("id")

	res, err := h.recipeService.PublishRecipe(c.UserContext(), recipeID, subject)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedPublishRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPublishRecipe)
}

func (h *recipeHandler) UnpublishRecipe(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)
	recipeID := c.Params("id")

	res, err := h.recipeService.UnpublishRecipe(c.UserContext(), recipeID, subject)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUnpublish, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUnpublish)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)
	recipeID := c.Params("id")

	if err := h.recipeService.DeleteRecipe(c.UserContext(), recipeID, subject); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) LikeRecipe(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)
	recipeID := c.Params("id")

	if err := h.recipeService.LikeRecipe(c.UserContext(), recipeID, subject); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedLikeRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLikeRecipe)
}

func (h *recipeHandler) UnlikeRecipe(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)
	recipeID := c.Params("id")

	if err := h.recipeService.UnlikeRecipe(c.UserContext(), recipeID, subject); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedLikeRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnlikeRecipe)
}

func (h *recipeHandler) SaveRecipe(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)
	recipeID := c.Params("id")

	if err := h.recipeService.SaveRecipe(c.UserContext(), recipeID, subject); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSaveRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSaveRecipe)
}

func (h *recipeHandler) UnsaveRecipe(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)
	recipeID := c.Params("id")

	if err := h.recipeService.UnsaveRecipe(c.UserContext(), recipeID, subject); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSaveRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnsaveRecipe)
}

func (h *recipeHandler) RateRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.RateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRateRecipe, err)
	}

	if err := h.recipeService.RateRecipe(c.UserContext(), recipeID, *req); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedRateRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRateRecipe)
}

func (h *recipeHandler) ListRecipes(c *fiber.Ctx) error {
	q := parseRecipeQuery(c)

	res, err := h.recipeService.ListRecipes(c.UserContext(), q)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) ListMyRecipes(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)
	q := parseRecipeQuery(c)

	res, err := h.recipeService.ListMyRecipes(c.UserContext(), subject, q)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func parseRecipeQuery(c *fiber.Ctx) domain.RecipeQuery {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	return domain.RecipeQuery{
		Status:     c.Query("status", ""),
		Category:   c.Query("category", ""),
		Cuisine:    c.Query("cuisine", ""),
		Difficulty: c.Query("difficulty", ""),
		Tag:        c.Query("tag", ""),
		Search:     c.Query("search", ""),
		PageQuery:  domain.PageQuery{Page: page, Limit: limit},
	}
}
