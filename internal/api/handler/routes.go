package handler

import (
	"net/http"

	"github.com/arizon-automation/sales-dashboard/internal/api/handler/router"
	"github.com/arizon-automation/sales-dashboard/internal/usecases/authenticating"
	"github.com/arizon-automation/sales-dashboard/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(),
		},
	}
}

func Cron(warmup WarmupScheduler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/warmup",
			Method:  http.MethodPost,
			Handler: RunWarmupJob(warmup),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(warmup),
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
		{
			Path:    "/v1/dashboard/customers",
			Method:  http.MethodGet,
			Handler: GetCustomerReport(service),
		},
		{
			Path:    "/v1/dashboard/products",
			Method:  http.MethodGet,
			Handler: GetProductReport(service),
		},
		{
			Path:    "/v1/dashboard/salespersons",
			Method:  http.MethodGet,
			Handler: GetSalespersonReport(service),
		},
		{
			Path:    "/v1/dashboard/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDashboard(service),
		},
	}
}
