package adaptor_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"listacrosseu/internal/adaptor"
	"listacrosseu/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	config := &utils.Config{App: utils.AppConfig{Version: "1.2.3"}}
	h := adaptor.NewHealthHandler(config)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "1.2.3", body["version"])
	assert.NotEmpty(t, body["timestamp"])
}
