package handlers

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/internal/api/presenters"
	"RecipeShare-Backend/pkg/savedlink"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SavedLinkHandler interface {
		CreateLink(c *fiber.Ctx) error
		GetLink(c *fiber.Ctx) error
		UpdateLink(c *fiber.Ctx) error
		DeleteLink(c *fiber.Ctx) error
		BulkDeleteLinks(c *fiber.Ctx) error
		VisitLink(c *fiber.Ctx) error
		GetLinkStats(c *fiber.Ctx) error
		ListLinks(c *fiber.Ctx) error
	}

	savedLinkHandler struct {
		savedLinkService savedlink.SavedLinkService
		validator        *validator.Validate
	}
)

func NewSavedLinkHandler(savedLinkService savedlink.SavedLinkService, validator *validator.Validate) SavedLinkHandler {
	return &savedLinkHandler{
		savedLinkService: savedLinkService,
		validator:        validator,
	}
}

func (h *savedLinkHandler) CreateLink(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)
	req := new(domain.CreateSavedLinkRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateLink, err)
	}

	res, err := h.savedLinkService.CreateLink(c.UserContext(), *req, subject)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreateLink, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateLink)
}

func (h *savedLinkHandler) GetLink(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)
	linkID := c.Params("id")

	res, err := h.savedLinkService.GetLink(c.UserContext(), linkID, subject)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetLink, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLink)
}

func (h *savedLinkHandler) UpdateLink(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)
	linkID := c.Params("id")
	req := new(domain.UpdateSavedLinkRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateLink, err)
	}

	res, err := h.savedLinkService.UpdateLink(c.UserContext(), linkID, *req, subject)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateLink, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateLink)
}

func (h *savedLinkHandler) DeleteLink(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)
	linkID := c.Params("id")

	if err := h.savedLinkService.DeleteLink(c.UserContext(), linkID, subject); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteLink, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteLink)
}

func (h *savedLinkHandler) BulkDeleteLinks(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)
	req := new(domain.BulkDeleteLinksRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBulkDeleteLink, err)
	}

	res, err := h.savedLinkService.BulkDeleteLinks(c.UserContext(), *req, subject)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedBulkDeleteLink, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessBulkDeleteLink)
}

func (h *savedLinkHandler) VisitLink(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)
	linkID := c.Params("id")

	if err := h.savedLinkService.VisitLink(c.UserContext(), linkID, subject); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedVisitLink, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessVisitLink)
}

func (h *savedLinkHandler) GetLinkStats(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)

	res, err := h.savedLinkService.GetLinkStats(c.UserContext(), subject)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetLinkStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLinkStats)
}

func (h *savedLinkHandler) ListLinks(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	q := domain.SavedLinkQuery{
		Platform:  c.Query("platform", ""),
		Tag:       c.Query("tag", ""),
		Search:    c.Query("search", ""),
		PageQuery: domain.PageQuery{Page: page, Limit: limit},
	}

	res, err := h.savedLinkService.ListLinks(c.UserContext(), subject, q)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetLinks, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLinks)
}
