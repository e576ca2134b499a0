package plannerHandler

import (
	"ExpensePlannerGolang/internal/api/expense_planner"
	contextPkg "ExpensePlannerGolang/pkg/context"
	"ExpensePlannerGolang/pkg/handlerUtil"
	"ExpensePlannerGolang/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

// FetchTips triggers a new tip fetch and waits for it. The response is always
// 200: failures come back as a one-element tip list, not as an HTTP error.
func (h *PlannerHandler) FetchTips(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing fetch budget tips request")

	tips := h.plannerService.FetchBudgetTips(c)

	_, isLoading := h.plannerService.BudgetTips()

	response := expense_planner.TipListResponse{
		Tips:      tips,
		IsLoading: isLoading,
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
}

func (h *PlannerHandler) GetTips(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get budget tips request")

	tips, isLoading := h.plannerService.BudgetTips()

	response := expense_planner.TipListResponse{
		Tips:      tips,
		IsLoading: isLoading,
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
}
