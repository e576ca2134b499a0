package entity

import (
	"ExpensePlannerGolang/internal/api/expense_planner"
	"time"
)

const (
	// IncomeCategory is the reserved category every income entry carries.
	IncomeCategory = "Income"
	// IncomeDefaultDescription is used when an income entry has no description.
	IncomeDefaultDescription = "Salary"
)

type ExpenseCategory string

const (
	ExpenseCategoryFood      ExpenseCategory = "Food"
	ExpenseCategoryTransport ExpenseCategory = "Transport"
	ExpenseCategoryHousing   ExpenseCategory = "Housing"
	ExpenseCategoryShopping  ExpenseCategory = "Shopping"
	ExpenseCategoryOthers    ExpenseCategory = "Others"
)

func IsValidExpenseCategory(category string) bool {
	switch ExpenseCategory(category) {
	case ExpenseCategoryFood, ExpenseCategoryTransport, ExpenseCategoryHousing,
		ExpenseCategoryShopping, ExpenseCategoryOthers:
		return true
	default:
		return false
	}
}

func IsValidCategory(isIncome bool, category string) bool {
	if isIncome {
		return category == IncomeCategory
	}
	return IsValidExpenseCategory(category)
}

// LedgerEntry is one recorded income or expense transaction. Entries are
// immutable once created; the ledger only ever appends. The json tags double
// as the durable storage format, so they must not change.
type LedgerEntry struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	IsIncome    bool      `json:"isIncome"`
}

func (e *LedgerEntry) Validate() error {
	if e.Amount <= 0 {
		return expense_planner.ErrInvalidAmount
	}

	if !IsValidCategory(e.IsIncome, e.Category) {
		return expense_planner.ErrInvalidCategory
	}

	return nil
}
