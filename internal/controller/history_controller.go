package controller

import (
	"context"
	"time"

	"maum-baedal-be/internal/constant"
	"maum-baedal-be/internal/dto"
	"maum-baedal-be/internal/pkg/serverutils"
	"maum-baedal-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IHistoryController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Archive(ctx *fiber.Ctx) error
	Favorite(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type historyController struct {
	historyService service.IHistoryService
}

func NewHistoryController(historyService service.IHistoryService) IHistoryController {
	return &historyController{
		historyService: historyService,
	}
}

func (c *historyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/history/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("conversations", c.List)
	h.Get("stats", c.Stats)
	h.Put("conversations/:id/archive", c.Archive)
	h.Put("conversations/:id/favorite", c.Favorite)
}

func (c *historyController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	filter := dto.HistoryFilter{
		Status:   constant.ConversationStatus(ctx.Query("status")),
		Category: constant.QuestionCategory(ctx.Query("category")),
		Query:    ctx.Query("q"),
		Page:     ctx.QueryInt("page", 1),
		PageSize: ctx.QueryInt("page_size", 20),
	}

	if raw := ctx.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid from date, want YYYY-MM-DD"))
		}
		filter.From = &from
	}
	if raw := ctx.Query("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid to date, want YYYY-MM-DD"))
		}
		// Inclusive end of day.
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &to
	}
	if raw := ctx.Query("archived"); raw != "" {
		archived := raw == "true"
		filter.Archived = &archived
	}
	if raw := ctx.Query("favorite"); raw != "" {
		favorite := raw == "true"
		filter.Favorite = &favorite
	}

	res, err := c.historyService.List(ctx.Context(), userId, filter)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list history", res))
}

func (c *historyController) Archive(ctx *fiber.Ctx) error {
	return c.setFlag(ctx, c.historyService.SetArchived, "Success update archive flag")
}

func (c *historyController) Favorite(ctx *fiber.Ctx) error {
	return c.setFlag(ctx, c.historyService.SetFavorite, "Success update favorite flag")
}

func (c *historyController) setFlag(
	ctx *fiber.Ctx,
	set func(c context.Context, userId, id uuid.UUID, value bool) error,
	message string,
) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid history id"))
	}

	var req struct {
		Value bool `json:"value"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := set(ctx.Context(), userId, id, req.Value); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any](message, nil))
}

func (c *historyController) Stats(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.historyService.Stats(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get history stats", res))
}
