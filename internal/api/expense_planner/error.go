package expense_planner

import "ExpensePlannerGolang/pkg/response"

var (
	ErrInvalidAmount   = response.NewError(400, "invalid entry amount")
	ErrInvalidCategory = response.NewError(400, "invalid entry category")
	ErrInvalidDate     = response.NewError(400, "invalid entry date")
	ErrCreateEntry     = response.NewError(500, "failed to create entry")
)
