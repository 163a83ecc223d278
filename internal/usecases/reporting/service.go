package reporting

import (
	"context"
	"time"

	"github.com/arizon-automation/sales-dashboard/infrastructure/integrator/unleashed"
	unleasheddomain "github.com/arizon-automation/sales-dashboard/infrastructure/integrator/unleashed/domain"
	"github.com/arizon-automation/sales-dashboard/internal/domain"
	"github.com/arizon-automation/sales-dashboard/internal/period"
	"github.com/arizon-automation/sales-dashboard/pkg/log"
	"github.com/arizon-automation/sales-dashboard/pkg/utils"
)

type Service struct {
	unleashedService  unleashed.UnleashedIntegrator
	excludedCustomers []string
	now               func() time.Time
}

func NewService(unleashedService unleashed.UnleashedIntegrator, excludedCustomers []string) Reporter {
	return &Service{
		unleashedService:  unleashedService,
		excludedCustomers: excludedCustomers,
		now:               time.Now,
	}
}

// orderWindows fetches and filters the order lists for both comparison
// windows. Any fetch failure aborts the whole report.
func (s *Service) orderWindows(ctx context.Context, mode period.Mode) (current, previous []unleasheddomain.Order, currentPeriod, previousPeriod period.Period, err error) {
	currentPeriod, previousPeriod, err = period.Ranges(mode, s.now())
	if err != nil {
		return nil, nil, period.Period{}, period.Period{}, err
	}

	current, err = s.unleashedService.GetSalesOrders(ctx, currentPeriod.Start, currentPeriod.End)
	if err != nil {
		return nil, nil, period.Period{}, period.Period{}, err
	}

	previous, err = s.unleashedService.GetSalesOrders(ctx, previousPeriod.Start, previousPeriod.End)
	if err != nil {
		return nil, nil, period.Period{}, period.Period{}, err
	}

	current = ExcludeCustomers(current, s.excludedCustomers)
	previous = ExcludeCustomers(previous, s.excludedCustomers)

	return current, previous, currentPeriod, previousPeriod, nil
}

func (s *Service) Summary(ctx context.Context, mode period.Mode) (*domain.Summary, error) {
	current, previous, currentPeriod, previousPeriod, err := s.orderWindows(ctx, mode)
	if err != nil {
		return nil, err
	}

	currentNotes, err := s.unleashedService.GetCreditNotes(ctx, currentPeriod.Start, currentPeriod.End)
	if err != nil {
		return nil, err
	}

	previousNotes, err := s.unleashedService.GetCreditNotes(ctx, previousPeriod.Start, previousPeriod.End)
	if err != nil {
		return nil, err
	}

	currentNotes = ExcludeCreditNoteCustomers(currentNotes, s.excludedCustomers)
	previousNotes = ExcludeCreditNoteCustomers(previousNotes, s.excludedCustomers)

	currentTotals := periodTotals(current, currentNotes)
	previousTotals := periodTotals(previous, previousNotes)

	return &domain.Summary{
		Mode:           string(mode),
		Current:        currentTotals,
		Previous:       previousTotals,
		CurrentPeriod:  currentPeriod,
		PreviousPeriod: previousPeriod,
		Change:         currentTotals.Revenue - previousTotals.Revenue,
		ChangePct:      ChangePct(currentTotals.Revenue, previousTotals.Revenue),
	}, nil
}

func (s *Service) Customers(ctx context.Context, mode period.Mode) (*domain.CustomerReport, error) {
	current, previous, _, _, err := s.orderWindows(ctx, mode)
	if err != nil {
		return nil, err
	}

	comparison := CompareCustomers(current, previous)
	growing, declining := GrowthDecline(comparison, TopLimit)

	return &domain.CustomerReport{
		Mode:       string(mode),
		Top:        TopCustomers(current, TopLimit),
		Comparison: comparison,
		Growing:    growing,
		Declining:  declining,
	}, nil
}

func (s *Service) Products(ctx context.Context, mode period.Mode) (*domain.ProductReport, error) {
	current, previous, _, _, err := s.orderWindows(ctx, mode)
	if err != nil {
		return nil, err
	}

	catalog, err := s.unleashedService.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.ProductReport{
		Mode:       string(mode),
		Top:        TopProducts(current, TopLimit),
		TopMargin:  TopProductsByMargin(current, catalog, TopLimit),
		Comparison: CompareProducts(current, previous),
	}, nil
}

func (s *Service) SalesPersons(ctx context.Context, mode period.Mode) (*domain.SalespersonReport, error) {
	current, previous, _, _, err := s.orderWindows(ctx, mode)
	if err != nil {
		return nil, err
	}

	salesPersons, err := s.unleashedService.GetSalesPersons(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(salesPersons))
	for _, sp := range salesPersons {
		names[sp.Guid] = sp.FullName
	}

	return &domain.SalespersonReport{
		Mode:       string(mode),
		Comparison: CompareSalesPersons(current, previous, names),
	}, nil
}

func (s *Service) Refresh(ctx context.Context) error {
	log.ForContext(ctx).Info("clearing the report cache")
	return s.unleashedService.ClearCache(ctx)
}

func periodTotals(orders []unleasheddomain.Order, notes []unleasheddomain.CreditNote) domain.PeriodTotals {
	revenue := TotalSales(orders)
	creditTotal := TotalCreditNotes(notes)

	avgOrderValue := 0.0
	if len(orders) > 0 {
		avgOrderValue = utils.RoundWithTwoDecimalPlace(revenue / float64(len(orders)))
	}

	return domain.PeriodTotals{
		Revenue:       revenue,
		Orders:        len(orders),
		AvgOrderValue: avgOrderValue,
		CreditTotal:   creditTotal,
		CreditCount:   len(notes),
		NetRevenue:    revenue - creditTotal,
	}
}
