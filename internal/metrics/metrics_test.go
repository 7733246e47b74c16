package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chainsafe/wifi-whitelist/pkg/whitelist"
)

func TestResult(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ResultSuccess},
		{whitelist.ErrEmptyInput, ResultInvalid},
		{fmt.Errorf("wrapped: %w", whitelist.ErrInvalidMAC), ResultInvalid},
		{whitelist.ErrDuplicateSSID, ResultDuplicate},
		{whitelist.ErrStoreInsert, ResultStoreError},
		{errors.New("boom"), ResultError},
	}
	for _, tt := range tests {
		if got := Result(tt.err); got != tt.want {
			t.Errorf("Result(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestHandler_ExposesCollectors(t *testing.T) {
	SubmissionsTotal.WithLabelValues("test", ResultSuccess).Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `whitelist_submissions_total{result="success",surface="test"}`) {
		t.Fatal("expected whitelist_submissions_total in metrics output")
	}
}
