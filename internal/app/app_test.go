package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes(t *testing.T) {
	t.Setenv("APP_BASE_PATH", "/api")
	t.Setenv("PATROL_WORKERS", "2")
	t.Setenv("PATROL_MAX_CELLS", "")
	t.Setenv("WS_READ_LIMIT", "")

	logger, _ := test.NewNullLogger()
	handler, err := New(logger).Handler()
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	defer server.Close()

	res, err := http.Get(server.URL + "/api/status")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, err = http.Post(server.URL+"/api/patrol", "text/plain", strings.NewReader(".#.\n...\n^..\n"))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.EqualValues(t, 3, body["visited"])
	assert.EqualValues(t, 0, body["loop_placements"])

	res, err = http.Get(server.URL + "/api/patrol")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("PATROL_WORKERS", "-3")

	logger, _ := test.NewNullLogger()
	_, err := New(logger).Handler()
	assert.Error(t, err)
}
