package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"videothingy/zoom-editor/internal/zoom"
)

// Config is the service configuration assembled from the environment and the
// optional editor defaults file.
type Config struct {
	Port                 string
	LogLevel             string
	CORSAllowOrigins     string
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	EditorConfigPath     string
	Zoom                 zoom.Settings
}

// Load reads a .env file if one exists, then the environment, then the YAML
// file named by EDITOR_CONFIG.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[WARN] No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		EditorConfigPath: os.Getenv("EDITOR_CONFIG"),
		Zoom:             zoom.DefaultSettings(),
	}

	var err error
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.SessionSweepInterval, err = getDuration("SESSION_SWEEP_INTERVAL", time.Minute); err != nil {
		return nil, err
	}

	if cfg.EditorConfigPath != "" {
		editor, err := LoadEditorConfig(cfg.EditorConfigPath)
		if err != nil {
			return nil, err
		}
		cfg.Zoom = editor.Zoom
	}

	if v := os.Getenv("ZOOM_ADD_POLICY"); v != "" {
		cfg.Zoom.AddPolicy = zoom.AddPolicy(v)
	}
	if v := os.Getenv("ZOOM_DEFAULT_SCALE"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ZOOM_DEFAULT_SCALE %q: %w", v, err)
		}
		cfg.Zoom.DefaultScale = scale
	}

	if err := validateZoomSettings(cfg.Zoom); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
