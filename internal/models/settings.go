package models

// Settings holds the application settings persisted in storage.
type Settings struct {
	Owner                string  `json:"owner"`
	Timezone             string  `json:"timezone"`
	Currency             string  `json:"currency"`
	MonthlyBudget        float64 `json:"monthly_budget"`
	CompletionWindowDays int     `json:"completion_window_days"`
}
