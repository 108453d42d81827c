package analytics

import "context"

type AnalyticsService interface {
	Overview(ctx context.Context) (OverviewResponse, error)
	Dashboard(ctx context.Context) (DashboardResponse, error)
}
