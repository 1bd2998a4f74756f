package model

// DashboardMetric is one headline card on the dashboard.
type DashboardMetric struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

// CategoryShare is one slice of the sale-share pie chart.
type CategoryShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// MonthlySale is one bar of the monthly sales chart.
type MonthlySale struct {
	Month    string  `json:"month"`
	ThisYear float64 `json:"this_year"`
	LastYear float64 `json:"last_year"`
}

type DashboardSummary struct {
	Metrics      []DashboardMetric `json:"metrics"`
	SaleShare    []CategoryShare   `json:"sale_share"`
	MonthlySales []MonthlySale     `json:"monthly_sales"`
}
