package handler

import (
	"net/http"
)

// WarmupScheduler is the scheduler surface exposed on the cron routes.
type WarmupScheduler interface {
	TriggerWarmup()
	GetStatus() map[string]any
}

// RunWarmupJob starts a warmup run outside the cron schedule.
func RunWarmupJob(warmup WarmupScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		warmup.TriggerWarmup()

		writeJSON(w, r, map[string]string{"message": "warmup started"})
	}
}

// GetCronStatus reports the warmup scheduler state.
func GetCronStatus(warmup WarmupScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, warmup.GetStatus())
	}
}
