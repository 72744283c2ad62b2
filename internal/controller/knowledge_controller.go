package controller

import (
	"venture-advisory-be/internal/pkg/serverutils"
	"venture-advisory-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IKnowledgeController interface {
	RegisterRoutes(r fiber.Router)
	Snapshot(ctx *fiber.Ctx) error
	InvalidateSnapshot(ctx *fiber.Ctx) error
}

type knowledgeController struct {
	knowledgeService service.IKnowledgeService
}

func NewKnowledgeController(knowledgeService service.IKnowledgeService) IKnowledgeController {
	return &knowledgeController{
		knowledgeService: knowledgeService,
	}
}

func (c *knowledgeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/knowledge/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("venture/:id/snapshot", c.Snapshot)
	h.Delete("venture/:id/snapshot", c.InvalidateSnapshot)
}

func (c *knowledgeController) Snapshot(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	ventureId, _ := uuid.Parse(idParam)

	res, err := c.knowledgeService.Snapshot(ctx.Context(), userId, ventureId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get knowledge snapshot", res))
}

func (c *knowledgeController) InvalidateSnapshot(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	ventureId, _ := uuid.Parse(idParam)

	if err := c.knowledgeService.InvalidateSnapshot(ctx.Context(), userId, ventureId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success invalidate knowledge snapshot", nil))
}
