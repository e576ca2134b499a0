package plannerService

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTipsPrompt(t *testing.T) {
	snapshot := FinancialSnapshot{
		TotalIncome:   1000,
		TotalExpenses: 400,
		Savings:       600,
		Distribution:  map[string]float64{"Food": 75, "Transport": 25},
	}

	prompt := BuildTipsPrompt(snapshot)

	assert.Contains(t, prompt, "- Total Income: $1000")
	assert.Contains(t, prompt, "- Total Expenses: $400")
	assert.Contains(t, prompt, "- Savings: $600")
	assert.Contains(t, prompt, "Food: 75%")
	assert.Contains(t, prompt, "Transport: 25%")
	assert.Contains(t, prompt, "without using Markdown formatting")
	assert.Contains(t, prompt, "one per line")
}

func TestBuildTipsPrompt_EmptyDistribution(t *testing.T) {
	prompt := BuildTipsPrompt(FinancialSnapshot{})

	assert.Contains(t, prompt, "- Total Income: $0")
	assert.Contains(t, prompt, "- Expense Distribution: ")
}

func TestBuildTipsPrompt_FractionalAmounts(t *testing.T) {
	snapshot := FinancialSnapshot{
		TotalIncome:   1234.56,
		TotalExpenses: 234.56,
		Savings:       1000,
		Distribution:  map[string]float64{"Others": 100},
	}

	prompt := BuildTipsPrompt(snapshot)

	assert.Contains(t, prompt, "$1234.56")
	assert.Contains(t, prompt, "Others: 100%")
}
