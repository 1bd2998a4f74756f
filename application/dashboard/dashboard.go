package dashboard

import (
	"context"

	"github.com/ernitinjai/meenicode-pos/model"
)

// DashboardApp serves the sales dashboard. The charts are placeholder
// series for now; real aggregation will come with the sales service.
type DashboardApp interface {
	Summary(ctx context.Context) *model.DashboardSummary
}

type dashboardAppImpl struct {
}

func NewDashboardApp() DashboardApp {
	return &dashboardAppImpl{}
}

func (s *dashboardAppImpl) Summary(_ context.Context) *model.DashboardSummary {
	return &model.DashboardSummary{
		Metrics: []model.DashboardMetric{
			{Title: "Day Sales", Value: "714K", Change: "+2.6%"},
			{Title: "Week Sales", Value: "1.35M", Change: "-0.1%"},
			{Title: "Total Inventory", Value: "1.72M", Change: "+2.8%"},
			{Title: "Credit", Value: "234", Change: "+3.6%"},
		},
		SaleShare: []model.CategoryShare{
			{Name: "Category A", Value: 43.8},
			{Name: "Category B", Value: 31.3},
			{Name: "Category C", Value: 18.8},
			{Name: "Category D", Value: 6.3},
		},
		MonthlySales: []model.MonthlySale{
			{Month: "Jan", ThisYear: 40, LastYear: 30},
			{Month: "Feb", ThisYear: 65, LastYear: 70},
			{Month: "Mar", ThisYear: 45, LastYear: 20},
			{Month: "Apr", ThisYear: 65, LastYear: 40},
			{Month: "May", ThisYear: 58, LastYear: 38},
			{Month: "Jun", ThisYear: 68, LastYear: 35},
			{Month: "Jul", ThisYear: 30, LastYear: 40},
			{Month: "Aug", ThisYear: 25, LastYear: 70},
			{Month: "Sep", ThisYear: 68, LastYear: 25},
			{Month: "Oct", ThisYear: 40, LastYear: 60},
			{Month: "Nov", ThisYear: 50, LastYear: 45},
			{Month: "Dec", ThisYear: 60, LastYear: 55},
		},
	}
}
