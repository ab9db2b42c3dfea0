package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHostAllowed(t *testing.T) {
	tests := []struct {
		name         string
		host         string
		allowedHosts []string
		want         bool
	}{
		{"EmptyListAllowsAll", "anything.example.com", nil, true},
		{"ExactMatch", "ledger.example.com", []string{"ledger.example.com"}, true},
		{"MatchIgnoresPort", "ledger.example.com:8443", []string{"ledger.example.com"}, true},
		{"MatchIgnoresCase", "Ledger.Example.COM", []string{"ledger.example.com"}, true},
		{"NoMatch", "evil.example.com", []string{"ledger.example.com"}, false},
		{"AllowedHostWithPort", "ledger.example.com", []string{"ledger.example.com:443"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsHostAllowed(tt.host, tt.allowedHosts)
			if got != tt.want {
				t.Errorf("IsHostAllowed(%q, %v) = %v, want %v", tt.host, tt.allowedHosts, got, tt.want)
			}
		})
	}
}

func TestHSTS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := HSTS(next)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	want := "max-age=31536000; includeSubDomains"
	if got := rr.Header().Get("Strict-Transport-Security"); got != want {
		t.Errorf("Strict-Transport-Security = %q, want %q", got, want)
	}
}
