package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/dashboard/support", "/dashboard/support"},
		{"/dashboard/support/12345", "/dashboard/support/{id}"},
		{"/tickets/0f8fad5b-d9cb-469f-a165-70867728950e/replies", "/tickets/{id}/replies"},
		{"/" + string(make([]byte, 80)), "other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizePath(tt.path))
	}
}

func TestMiddleware_RecordsStatus(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/brew", "418"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/brew", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/brew", "418")))
}

func TestPageJump(t *testing.T) {
	before := testutil.ToFloat64(PageJumpsTotal.WithLabelValues("rejected"))
	PageJump(false)
	assert.Equal(t, before+1, testutil.ToFloat64(PageJumpsTotal.WithLabelValues("rejected")))
}
