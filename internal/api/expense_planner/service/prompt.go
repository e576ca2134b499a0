package plannerService

import (
	"fmt"
	"strconv"
	"strings"
)

const tipsPromptTemplate = `Based on the following financial summary, provide concise financial tips as plain text sentences, one per line, without using Markdown formatting. Include a mix of budget tips and investment suggestions:

- Budget Tips: Focus on high-spending categories, mention the percentage of total income spent on that category, and provide a practical suggestion for reducing expenses. Format like: "Housing Dominates: your housing costs 47%% of your income are excessively high, you can explore other housing options, cheaper house, a roommate".

- Investment Tips: Based on the savings or financial surplus, suggest ways to grow wealth or save for the future. Tailor the advice to the data, e.g., "With $X in savings, consider allocating Y%% to a low-risk investment like a savings account or bonds".

Use the data provided to make the tips specific and actionable:
- Total Income: $%s
- Total Expenses: $%s
- Savings: $%s
- Expense Distribution: %s`

// BuildTipsPrompt renders the snapshot into the instruction block the
// generative API receives. Distribution pairs follow map iteration order;
// the order carries no meaning.
func BuildTipsPrompt(snapshot FinancialSnapshot) string {
	pairs := make([]string, 0, len(snapshot.Distribution))
	for category, pct := range snapshot.Distribution {
		pairs = append(pairs, fmt.Sprintf("%s: %s%%", category, formatAmount(pct)))
	}
	distributionText := strings.Join(pairs, ", ")

	return fmt.Sprintf(tipsPromptTemplate,
		formatAmount(snapshot.TotalIncome),
		formatAmount(snapshot.TotalExpenses),
		formatAmount(snapshot.Savings),
		distributionText,
	)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
