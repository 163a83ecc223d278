package reporting

import (
	"context"

	"github.com/arizon-automation/sales-dashboard/internal/domain"
	"github.com/arizon-automation/sales-dashboard/internal/period"
)

// Reporter builds the dashboard sections for a comparison mode.
type Reporter interface {
	// Summary returns the headline totals for both windows.
	Summary(ctx context.Context, mode period.Mode) (*domain.Summary, error)

	// Customers returns top customers, the full comparison and the
	// growth/decline split.
	Customers(ctx context.Context, mode period.Mode) (*domain.CustomerReport, error)

	// Products returns top products by revenue and by margin plus the
	// comparison.
	Products(ctx context.Context, mode period.Mode) (*domain.ProductReport, error)

	// SalesPersons returns the per-salesperson comparison.
	SalesPersons(ctx context.Context, mode period.Mode) (*domain.SalespersonReport, error)

	// Refresh drops every cached vendor response so the next report is
	// rebuilt from live data.
	Refresh(ctx context.Context) error
}
