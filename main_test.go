package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videothingy/zoom-editor/config"
	"videothingy/zoom-editor/handlers"
	"videothingy/zoom-editor/internal/session"
	"videothingy/zoom-editor/internal/zoom"
)

func TestNewAppRoutes(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{Port: "0", CORSAllowOrigins: "*", Zoom: zoom.DefaultSettings()}
	h := handlers.NewApplicationHandler(session.NewManager(cfg.Zoom, time.Hour, logger), logger)
	app := NewApp(cfg, h)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, h.Sessions.Len())

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
