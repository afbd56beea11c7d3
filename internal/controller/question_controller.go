package controller

import (
	"time"

	"maum-baedal-be/internal/pkg/serverutils"
	"maum-baedal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuestionController interface {
	RegisterRoutes(r fiber.Router)
	Today(ctx *fiber.Ctx) error
}

type questionController struct {
	questionService service.IQuestionService
}

func NewQuestionController(questionService service.IQuestionService) IQuestionController {
	return &questionController{
		questionService: questionService,
	}
}

func (c *questionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/question/v1")
	h.Get("today", c.Today)
}

func (c *questionController) Today(ctx *fiber.Ctx) error {
	// Optional ?date=YYYY-MM-DD override, mainly for client-side previews.
	date := c.questionService.ServiceDate(time.Now())
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid date format, want YYYY-MM-DD"))
		}
		date = parsed
	}

	res, err := c.questionService.GetTodaysQuestion(ctx.Context(), date)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get today's question", res))
}
