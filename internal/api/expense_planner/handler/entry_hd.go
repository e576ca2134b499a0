package plannerHandler

import (
	"ExpensePlannerGolang/internal/api/expense_planner"
	plannerService "ExpensePlannerGolang/internal/api/expense_planner/service"
	"ExpensePlannerGolang/internal/entity"
	contextPkg "ExpensePlannerGolang/pkg/context"
	"ExpensePlannerGolang/pkg/handlerUtil"
	"ExpensePlannerGolang/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *PlannerHandler) CreateEntry(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create entry request")

	var req expense_planner.CreateEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	entry, err := h.plannerService.AddEntry(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_entry")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, toEntryResponse(entry))
	}
}

func (h *PlannerHandler) GetEntries(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get entries request")

	entries, err := h.plannerService.GetEntries(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_entries")
	}

	entryResponses := make([]expense_planner.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		entryResponses = append(entryResponses, toEntryResponse(entry))
	}

	totalIncome := plannerService.TotalIncome(entries)
	totalExpenses := plannerService.TotalExpenses(entries)

	response := expense_planner.EntryListResponse{
		Entries:       entryResponses,
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Balance:       totalIncome - totalExpenses,
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *PlannerHandler) GetSummary(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get summary request")

	snapshot, err := h.plannerService.GetSummary(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_summary")
	}

	response := expense_planner.SummaryResponse{
		TotalIncome:   snapshot.TotalIncome,
		TotalExpenses: snapshot.TotalExpenses,
		Savings:       snapshot.Savings,
		Distribution:  snapshot.Distribution,
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func toEntryResponse(entry entity.LedgerEntry) expense_planner.EntryResponse {
	return expense_planner.EntryResponse{
		ID:          entry.ID,
		Date:        entry.Date.Format(time.RFC3339),
		Category:    entry.Category,
		Description: entry.Description,
		Amount:      entry.Amount,
		IsIncome:    entry.IsIncome,
	}
}
