package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMetricPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/records", "/api/records"},
		{"/api/records/", "/api/records"},
		{"/api/records/1b4e28ba-2fa1-11d2-883f-0016d3cca427", "/api/records/{id}"},
		{"/api/users/alice/summary", "/api/users/{user}/summary"},
		{"/health", "/health"},
		{"/metrics", "/metrics"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := metricPath(tt.path); got != tt.want {
				t.Errorf("metricPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestMetrics_PassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	handler := Metrics(next)

	req := httptest.NewRequest(http.MethodPost, "/api/records", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("handler returned wrong status code: got %d want %d", rr.Code, http.StatusCreated)
	}
}
