package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Fco200/UES-Academic-Helper/domain/dto"
	"github.com/Fco200/UES-Academic-Helper/domain/services"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
	"github.com/Fco200/UES-Academic-Helper/pkg/utils"
)

type NewsHandler struct {
	newsService services.NewsService
}

func NewNewsHandler(newsService services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

func (h *NewsHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.NewsListRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}
	if req.Limit == 0 {
		req.Limit = 20
	}

	items, total, err := h.newsService.ListNews(ctx, req.Offset, req.Limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list news", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]*dto.NewsResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, dto.NewsToNewsResponse(item))
	}

	return utils.SuccessResponse(c, fiber.Map{
		"items": responses,
		"meta": dto.PaginationMeta{
			Total:  total,
			Offset: req.Offset,
			Limit:  req.Limit,
		},
	})
}

func (h *NewsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateNewsRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	news, err := h.newsService.CreateNews(c.UserContext(), &req)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}
	return utils.CreatedResponse(c, dto.NewsToNewsResponse(news))
}

func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid news ID")
	}

	if err := h.newsService.DeleteNews(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			return utils.NotFoundResponse(c, "News not found")
		}
		return utils.InternalServerErrorResponse(c)
	}
	return utils.NoContentResponse(c)
}
