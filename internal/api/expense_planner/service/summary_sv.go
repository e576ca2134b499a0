package plannerService

import (
	"ExpensePlannerGolang/internal/entity"

	"golang.org/x/net/context"
)

// FinancialSnapshot is the aggregated view of the ledger the tip pipeline
// feeds to the prompt builder.
type FinancialSnapshot struct {
	TotalIncome   float64
	TotalExpenses float64
	Savings       float64
	Distribution  map[string]float64
}

func TotalIncome(entries []entity.LedgerEntry) float64 {
	var total float64
	for _, entry := range entries {
		if entry.IsIncome {
			total += entry.Amount
		}
	}
	return total
}

func TotalExpenses(entries []entity.LedgerEntry) float64 {
	var total float64
	for _, entry := range entries {
		if !entry.IsIncome {
			total += entry.Amount
		}
	}
	return total
}

// ExpenseDistribution maps each expense category to its percentage share of
// total expenses. Categories without expenses are absent; when there are no
// expenses at all the map is empty.
func ExpenseDistribution(entries []entity.LedgerEntry) map[string]float64 {
	distribution := make(map[string]float64)

	total := TotalExpenses(entries)
	if total == 0 {
		return distribution
	}

	for _, entry := range entries {
		if !entry.IsIncome {
			distribution[entry.Category] += entry.Amount
		}
	}

	for category, sum := range distribution {
		distribution[category] = sum / total * 100
	}

	return distribution
}

func Snapshot(entries []entity.LedgerEntry) FinancialSnapshot {
	totalIncome := TotalIncome(entries)
	totalExpenses := TotalExpenses(entries)

	return FinancialSnapshot{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Savings:       totalIncome - totalExpenses,
		Distribution:  ExpenseDistribution(entries),
	}
}

func (s *plannerService) GetSummary(ctx context.Context) (FinancialSnapshot, error) {
	entries, err := s.GetEntries(ctx)
	if err != nil {
		return FinancialSnapshot{}, err
	}

	return Snapshot(entries), nil
}
