package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arizon-automation/sales-dashboard/internal/domain"
	"github.com/arizon-automation/sales-dashboard/internal/period"
	"github.com/arizon-automation/sales-dashboard/internal/usecases/reporting/mocks"
	"github.com/arizon-automation/sales-dashboard/pkg/apiErrors"
	"github.com/arizon-automation/sales-dashboard/pkg/log"
)

func TestGetSummary(t *testing.T) {
	log.SetupTestLogger()

	t.Run("returns the summary for the requested mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := mocks.NewMockReporter(ctrl)
		reporter.EXPECT().
			Summary(gomock.Any(), period.Quarterly).
			Return(&domain.Summary{
				Mode:      "quarterly",
				Current:   domain.PeriodTotals{Revenue: 150},
				Previous:  domain.PeriodTotals{Revenue: 100},
				Change:    50,
				ChangePct: 50,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary?period=quarterly", nil)
		rec := httptest.NewRecorder()

		GetSummary(reporter)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var summary domain.Summary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
		assert.Equal(t, "quarterly", summary.Mode)
		assert.Equal(t, 150.0, summary.Current.Revenue)
		assert.Equal(t, 50.0, summary.ChangePct)
	})

	t.Run("missing period defaults to monthly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := mocks.NewMockReporter(ctrl)
		reporter.EXPECT().
			Summary(gomock.Any(), period.Monthly).
			Return(&domain.Summary{Mode: "monthly"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary", nil)
		rec := httptest.NewRecorder()

		GetSummary(reporter)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown period is a 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := mocks.NewMockReporter(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary?period=weekly", nil)
		rec := httptest.NewRecorder()

		GetSummary(reporter)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInvalidPeriod, apiErr.Code)
	})

	t.Run("vendor failure is a 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := mocks.NewMockReporter(ctrl)
		reporter.EXPECT().
			Summary(gomock.Any(), period.Monthly).
			Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary", nil)
		rec := httptest.NewRecorder()

		GetSummary(reporter)(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrExternalService, apiErr.Code)
	})
}

func TestGetCustomerReport(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().
		Customers(gomock.Any(), period.Monthly).
		Return(&domain.CustomerReport{
			Mode: "monthly",
			Top:  []domain.CustomerRow{{Code: "A", Name: "Acme", Revenue: 150, Orders: 2}},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/customers", nil)
	rec := httptest.NewRecorder()

	GetCustomerReport(reporter)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var report domain.CustomerReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Top, 1)
	assert.Equal(t, "Acme", report.Top[0].Name)
}

func TestRefreshDashboard(t *testing.T) {
	log.SetupTestLogger()

	t.Run("clears the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := mocks.NewMockReporter(ctrl)
		reporter.EXPECT().Refresh(gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/refresh", nil)
		rec := httptest.NewRecorder()

		RefreshDashboard(reporter)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("clear failure is a 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := mocks.NewMockReporter(ctrl)
		reporter.EXPECT().Refresh(gomock.Any()).Return(assert.AnError)

		req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/refresh", nil)
		rec := httptest.NewRecorder()

		RefreshDashboard(reporter)(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
