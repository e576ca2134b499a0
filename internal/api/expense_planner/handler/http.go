package plannerHandler

import (
	plannerService "ExpensePlannerGolang/internal/api/expense_planner/service"
	"ExpensePlannerGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PlannerHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	plannerService plannerService.IPlannerService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	plannerService plannerService.IPlannerService,
) *PlannerHandler {
	return &PlannerHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		plannerService: plannerService,
	}
}

func (h *PlannerHandler) Start(srv fiber.Router) {
	planner := srv.Group("/planner")

	planner.Post("/entries", h.CreateEntry)
	planner.Get("/entries", h.GetEntries)
	planner.Get("/summary", h.GetSummary)
	planner.Post("/tips", h.middleware.NewRateLimiter, h.FetchTips)
	planner.Get("/tips", h.GetTips)
}
