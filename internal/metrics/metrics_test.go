package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestMetricsExposure(t *testing.T) {
	IncMutation("like")
	IncRollback("like")
	NotifyPolls.Inc()
	NotifyPollErrors.Inc()
	IncCommandRun("feed")
	IncCommandError("feed")
	ObserveAPICall("home_feed", "2xx", time.Now().Add(-150*time.Millisecond))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, m := range []string{
		"warbler_mutations_total",
		"warbler_mutation_rollbacks_total",
		"warbler_notify_polls_total",
		"warbler_notify_poll_errors_total",
		"warbler_api_requests_total",
		"warbler_api_duration_seconds",
		"warbler_command_runs_total",
		"warbler_command_errors_total",
	} {
		if !strings.Contains(body, m) {
			t.Fatalf("expected metric %s in body", m)
		}
	}
}
