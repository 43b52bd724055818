package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videothingy/zoom-editor/internal/zoom"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "CORS_ALLOW_ORIGINS", "SESSION_TTL", "SESSION_SWEEP_INTERVAL",
		"EDITOR_CONFIG", "ZOOM_ADD_POLICY", "ZOOM_DEFAULT_SCALE",
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "editor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, time.Minute, cfg.SessionSweepInterval)
	assert.Equal(t, zoom.DefaultSettings(), cfg.Zoom)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("ZOOM_ADD_POLICY", "lenient")
	t.Setenv("ZOOM_DEFAULT_SCALE", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, zoom.AddPolicyLenient, cfg.Zoom.AddPolicy)
	assert.Equal(t, 2.0, cfg.Zoom.DefaultScale)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"SESSION_TTL":        "soon",
		"ZOOM_ADD_POLICY":    "sometimes",
		"ZOOM_DEFAULT_SCALE": "big",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadEditorConfigOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "zoom:\n  default_scale: 2.5\n  add_policy: lenient\n")

	cfg, err := LoadEditorConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Zoom.DefaultScale)
	assert.Equal(t, zoom.AddPolicyLenient, cfg.Zoom.AddPolicy)
	assert.Equal(t, 5.0, cfg.Zoom.DefaultDuration)
	assert.Equal(t, 5.0, cfg.Zoom.ShiftIncrement)
}

func TestLoadUsesEditorConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("EDITOR_CONFIG", writeFile(t, "zoom:\n  shift_increment: 2\n"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Zoom.ShiftIncrement)
}

func TestLoadEditorConfigErrors(t *testing.T) {
	_, err := LoadEditorConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadEditorConfig(writeFile(t, "zoom: [not, a, map]\n"))
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("EDITOR_CONFIG", writeFile(t, "zoom:\n  shift_increment: -1\n"))
	_, err = Load()
	assert.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	l := InitLogger("debug")
	assert.Same(t, Log, l)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	assert.Equal(t, logrus.InfoLevel, InitLogger("loud").GetLevel())
}
