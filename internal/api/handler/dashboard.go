package handler

import (
	"encoding/json"
	"net/http"

	"github.com/arizon-automation/sales-dashboard/internal/period"
	"github.com/arizon-automation/sales-dashboard/internal/usecases/reporting"
	"github.com/arizon-automation/sales-dashboard/pkg/apiErrors"
	"github.com/arizon-automation/sales-dashboard/pkg/log"
)

// GetSummary returns the headline totals for the selected period mode.
func GetSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode, ok := periodMode(w, r)
		if !ok {
			return
		}

		summary, err := service.Summary(r.Context(), mode)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, summary)
	}
}

func GetCustomerReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode, ok := periodMode(w, r)
		if !ok {
			return
		}

		report, err := service.Customers(r.Context(), mode)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, report)
	}
}

func GetProductReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode, ok := periodMode(w, r)
		if !ok {
			return
		}

		report, err := service.Products(r.Context(), mode)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, report)
	}
}

func GetSalespersonReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode, ok := periodMode(w, r)
		if !ok {
			return
		}

		report, err := service.SalesPersons(r.Context(), mode)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, report)
	}
}

// RefreshDashboard drops the vendor response cache so the next report
// is rebuilt from live data.
func RefreshDashboard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Refresh(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("cache refresh failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "could not clear the report cache", nil)
			return
		}

		writeJSON(w, r, map[string]string{"status": "refreshed"})
	}
}

func periodMode(w http.ResponseWriter, r *http.Request) (period.Mode, bool) {
	mode, err := period.ParseMode(r.URL.Query().Get("period"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
		return "", false
	}
	return mode, true
}

// writeReportError maps a report failure to the API error taxonomy. A
// failed vendor fetch is a bad gateway, everything else is internal.
func writeReportError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Error("report build failed")
	apiErrors.WriteError(w, apiErrors.ErrExternalService, "could not load data from the inventory API", nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("error writing response")
	}
}
