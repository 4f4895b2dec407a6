package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	restgateway "github.com/aitaprogrammer/blogify-cli/internal/adapters/gateway/rest"
	filestore "github.com/aitaprogrammer/blogify-cli/internal/adapters/identity/file"
	"github.com/aitaprogrammer/blogify-cli/internal/application"
	"github.com/aitaprogrammer/blogify-cli/internal/logging"
	"github.com/aitaprogrammer/blogify-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	configDirName   = "blogify"
	baseURLKey      = "api.base_url"
	timeoutKey      = "api.timeout_seconds"
	identityPathKey = "identity.path"

	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 15

	configFileMode = 0o600
	configDirMode  = 0o700
)

var errNotLoggedIn = errors.New("not logged in: run 'blogify login'")

type app struct {
	session      *application.Session
	engine       *application.Engine
	guard        *application.Guard
	gateway      ports.Gateway
	identityPath string
	now          func() time.Time
}

type configSchema struct {
	API struct {
		BaseURL        string `toml:"base_url"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
	} `toml:"api"`
	Identity struct {
		Path string `toml:"path"`
	} `toml:"identity"`
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", configDirName)

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(configDir)
	cfg.SetDefault(baseURLKey, envOrDefault("BLOGIFY_API_BASE_URL", defaultBaseURL))
	cfg.SetDefault(timeoutKey, defaultTimeout)
	cfg.SetDefault(identityPathKey, filepath.Join(configDir, "identity.json"))

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := writeDefaultConfig(configDir, cfg); err != nil {
			return nil, err
		}
	}

	baseURL := envOrDefault("BLOGIFY_API_BASE_URL", cfg.GetString(baseURLKey))
	timeout := time.Duration(cfg.GetInt(timeoutKey)) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout * time.Second
	}

	gatewayOpts := []restgateway.Option{restgateway.WithTimeout(timeout)}
	if os.Getenv("BLOGIFY_DEBUG") != "" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		gatewayOpts = append(gatewayOpts, restgateway.WithLogger(logging.NewSlogLogger(slog.New(handler))))
	}

	gateway, err := restgateway.NewClient(baseURL, gatewayOpts...)
	if err != nil {
		return nil, fmt.Errorf("wire gateway: %w", err)
	}

	identityPath := cfg.GetString(identityPathKey)
	store, err := filestore.NewStore(identityPath, ports.SystemClock{})
	if err != nil {
		return nil, fmt.Errorf("wire identity store: %w", err)
	}

	session := application.NewSession(gateway, store)

	return &app{
		session:      session,
		engine:       application.NewEngine(session, gateway),
		guard:        application.NewGuard(session),
		gateway:      gateway,
		identityPath: identityPath,
		now:          time.Now,
	}, nil
}

// writeDefaultConfig materializes the defaults so users have a file to edit.
// Written atomically; a concurrent first run loses the race harmlessly.
func writeDefaultConfig(configDir string, cfg *viper.Viper) error {
	var file configSchema
	file.API.BaseURL = cfg.GetString(baseURLKey)
	file.API.TimeoutSeconds = cfg.GetInt(timeoutKey)
	file.Identity.Path = cfg.GetString(identityPathKey)

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode default config: %w", err)
	}

	if err := os.MkdirAll(configDir, configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(configDir, ".config-*.toml.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, filepath.Join(configDir, configName+"."+configType)); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false

	return nil
}

// requireAuth maps a redirect decision to a CLI error. Resolve has already
// run by the time the guard is consulted, so the pending state never shows
// up here.
func requireAuth(app *app) error {
	admission := app.guard.Admit(true)
	if admission.Decision == application.DecisionRedirect {
		return errNotLoggedIn
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
