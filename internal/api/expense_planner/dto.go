package expense_planner

type CreateEntryRequest struct {
	Date        string  `json:"date" validate:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	IsIncome    bool    `json:"is_income"`
}

type EntryResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	IsIncome    bool    `json:"is_income"`
}

type EntryListResponse struct {
	Entries       []EntryResponse `json:"entries"`
	TotalIncome   float64         `json:"total_income"`
	TotalExpenses float64         `json:"total_expenses"`
	Balance       float64         `json:"balance"`
}

type SummaryResponse struct {
	TotalIncome   float64            `json:"total_income"`
	TotalExpenses float64            `json:"total_expenses"`
	Savings       float64            `json:"savings"`
	Distribution  map[string]float64 `json:"expense_distribution"`
}

type TipListResponse struct {
	Tips      []string `json:"tips"`
	IsLoading bool     `json:"is_loading"`
}
