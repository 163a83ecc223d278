package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arizon-automation/sales-dashboard/pkg/log"
)

type stubWarmupScheduler struct {
	triggered int
	status    map[string]any
}

func (s *stubWarmupScheduler) TriggerWarmup() {
	s.triggered++
}

func (s *stubWarmupScheduler) GetStatus() map[string]any {
	return s.status
}

func TestRunWarmupJob(t *testing.T) {
	log.SetupTestLogger()

	warmup := &stubWarmupScheduler{}

	req := httptest.NewRequest(http.MethodPost, "/v1/cron/warmup", nil)
	rec := httptest.NewRecorder()

	RunWarmupJob(warmup)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, warmup.triggered)
}

func TestGetCronStatus(t *testing.T) {
	log.SetupTestLogger()

	warmup := &stubWarmupScheduler{
		status: map[string]any{
			"warmup_enabled":      true,
			"warmup_cron":         "0 */2 * * *",
			"last_run_started_at": time.Date(2024, time.May, 16, 12, 0, 0, 0, time.UTC),
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	rec := httptest.NewRecorder()

	GetCronStatus(warmup)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var status map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, true, status["warmup_enabled"])
	assert.Equal(t, "0 */2 * * *", status["warmup_cron"])
}
