package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, http.StatusConflict, "insufficient_balance", "insufficient balance", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "insufficient_balance", body.Code)
	assert.Nil(t, body.Details)
}

func TestDecodeJSON(t *testing.T) {
	type req struct {
		Amount int64 `json:"amount"`
	}
	tests := []struct {
		name    string
		body    string
		wantErr bool
		want    int64
	}{
		{"ok", `{"amount":100}`, false, 100},
		{"unknown field", `{"amount":100,"x":1}`, true, 0},
		{"trailing data", `{"amount":100}{}`, true, 0},
		{"not json", `amount=100`, true, 0},
		{"too large", `{"amount":` + strings.Repeat("1", maxBodyBytes) + `}`, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(tt.body))
			var got req
			err := DecodeJSON(httptest.NewRecorder(), r, &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Amount)
		})
	}
}
