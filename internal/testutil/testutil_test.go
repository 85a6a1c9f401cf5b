package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	r := NewRequest(http.MethodGet, "/books?seed=1", map[string]string{"Accept-Language": "de"})
	assert.Equal(t, "de", r.Header.Get("Accept-Language"))
	assert.Equal(t, "1", r.URL.Query().Get("seed"))
}

func TestRecordHTTPResponse(t *testing.T) {
	w := httptest.NewRecorder()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.WriteString(`{"success":false,"error":{"code":"INVALID_ARGUMENT"},"meta":{"request_id":"abc"}}`)

	resp := RecordHTTPResponse(w)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "INVALID_ARGUMENT", resp.ErrorCode())
	assert.Equal(t, "abc", resp.Meta()["request_id"])
}

func TestRecordHTTPResponse_NonJSON(t *testing.T) {
	w := httptest.NewRecorder()
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	_, _ = w.WriteString("Index,ISBN\n")

	resp := RecordHTTPResponse(w)
	assert.Nil(t, resp.Body)
	assert.Equal(t, "Index,ISBN\n", string(resp.Raw))
	assert.Empty(t, resp.ErrorCode())
}
