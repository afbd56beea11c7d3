package controller

import (
	"maum-baedal-be/internal/dto"
	"maum-baedal-be/internal/pkg/serverutils"
	"maum-baedal-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IShareController interface {
	RegisterRoutes(r fiber.Router)
	IssueToken(ctx *fiber.Ctx) error
	ResolveToken(ctx *fiber.Ctx) error
	SubmitAnswer(ctx *fiber.Ctx) error
}

type shareController struct {
	shareService  service.IShareService
	answerService service.IAnswerService
}

func NewShareController(shareService service.IShareService, answerService service.IAnswerService) IShareController {
	return &shareController{
		shareService:  shareService,
		answerService: answerService,
	}
}

func (c *shareController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/share/v1")

	// Recipients follow the link without an account: resolution and answer
	// submission stay public, issuance requires login.
	h.Get("tokens/:token", c.ResolveToken)
	h.Post("tokens/:token/answers", c.SubmitAnswer)

	protected := h.Group("")
	protected.Use(serverutils.JwtMiddleware)
	protected.Post("tokens", c.IssueToken)
}

func (c *shareController) IssueToken(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.IssueTokenRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.shareService.IssueToken(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success issue share token", res))
}

func (c *shareController) ResolveToken(ctx *fiber.Ctx) error {
	res, err := c.shareService.ResolveToken(ctx.Context(), ctx.Params("token"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success resolve share token", res))
}

func (c *shareController) SubmitAnswer(ctx *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.answerService.SubmitByToken(ctx.Context(), ctx.Params("token"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit answer", res))
}
