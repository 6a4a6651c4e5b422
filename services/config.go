package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvProvider abstracts environment variable access for testing
type EnvProvider interface {
	Getenv(key string) string
	UserHomeDir() (string, error)
}

// DefaultEnvProvider implements EnvProvider using real OS functions
type DefaultEnvProvider struct{}

func (p *DefaultEnvProvider) Getenv(key string) string {
	return os.Getenv(key)
}

func (p *DefaultEnvProvider) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// GetDefaultDataDir returns the default Skiff data directory following XDG Base Directory specification
func GetDefaultDataDir() string {
	return getDefaultDataDirWithEnv(&DefaultEnvProvider{})
}

// getDefaultDataDirWithEnv allows dependency injection for testing
func getDefaultDataDirWithEnv(env EnvProvider) string {
	// Use XDG_DATA_HOME if set, otherwise fallback to ~/.local/share
	xdgDataHome := env.Getenv("XDG_DATA_HOME")
	if xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "skiff")
	}

	homeDir, _ := env.UserHomeDir()
	return filepath.Join(homeDir, ".local", "share", "skiff")
}

// Config holds configuration for all services
type Config struct {
	// Core paths
	DataDir      string
	DatabasePath string
	SiteDir      string

	// Logging
	LogLevel     string
	ColorEnabled bool

	// HTTP preview server
	HTTPHost string
	HTTPPort int

	// Deployment control plane
	DeployCommand  string
	StagingTarget  string
	DeployTokenEnv string
	CommandTimeout time.Duration

	// Container image
	ImageRepository string
	BaseImage       string

	// Encryption
	EncryptionKey string

	// Environment provider for testing
	env EnvProvider
}

// NewConfigForCLI creates a new configuration for CLI usage with optional overrides
func NewConfigForCLI(cliDataDir, cliSiteDir string) (*Config, error) {
	return newConfigWithEnv(&DefaultEnvProvider{}, cliDataDir, cliSiteDir)
}

// NewConfigForCLIWithEnv creates a new configuration with custom environment provider (for testing)
func NewConfigForCLIWithEnv(env EnvProvider, cliDataDir, cliSiteDir string) (*Config, error) {
	return newConfigWithEnv(env, cliDataDir, cliSiteDir)
}

func newConfigWithEnv(env EnvProvider, cliDataDir, cliSiteDir string) (*Config, error) {
	c := &Config{env: env}

	// Set defaults first
	c.setDefaults()

	// Override with environment variables
	c.loadFromEnv()

	// Override with CLI flags (if provided)
	if cliDataDir != "" {
		c.DataDir = cliDataDir
	}
	if cliSiteDir != "" {
		c.SiteDir = cliSiteDir
	}

	// Derive dependent paths
	c.derivePaths()

	// Try to read encryption key from .env file as fallback (after data dir is finalized)
	if c.EncryptionKey == "" {
		if key := c.readEncryptionKeyFromEnvFile(); key != "" {
			c.EncryptionKey = key
		}
	}

	return c, nil
}

func (c *Config) setDefaults() {
	c.DataDir = getDefaultDataDirWithEnv(c.env)
	c.SiteDir = "."
	c.LogLevel = "info"
	c.ColorEnabled = true
	c.HTTPHost = "127.0.0.1"
	c.HTTPPort = 8080
	c.DeployCommand = "captain"
	c.StagingTarget = "staging"
	c.DeployTokenEnv = "DEPLOY_TOKEN"
	c.CommandTimeout = 5 * time.Minute
	c.ImageRepository = "blog"
	c.BaseImage = "nginx:1.27-alpine"
}

func (c *Config) loadFromEnv() {
	if v := c.env.Getenv("SKIFF_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := c.env.Getenv("SKIFF_SITE_DIR"); v != "" {
		c.SiteDir = v
	}
	if v := c.env.Getenv("SKIFF_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := c.env.Getenv("SKIFF_COLOR"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.ColorEnabled = enabled
		}
	}
	if v := c.env.Getenv("SKIFF_HTTP_HOST"); v != "" {
		c.HTTPHost = v
	}
	if v := c.env.Getenv("SKIFF_HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 && port < 65536 {
			c.HTTPPort = port
		}
	}
	if v := c.env.Getenv("SKIFF_DEPLOY_COMMAND"); v != "" {
		c.DeployCommand = v
	}
	if v := c.env.Getenv("SKIFF_STAGING_TARGET"); v != "" {
		c.StagingTarget = v
	}
	if v := c.env.Getenv("SKIFF_DEPLOY_TOKEN_ENV"); v != "" {
		c.DeployTokenEnv = v
	}
	if v := c.env.Getenv("SKIFF_COMMAND_TIMEOUT"); v != "" {
		if timeout, err := time.ParseDuration(v); err == nil && timeout > 0 {
			c.CommandTimeout = timeout
		}
	}
	if v := c.env.Getenv("SKIFF_IMAGE_REPOSITORY"); v != "" {
		c.ImageRepository = v
	}
	if v := c.env.Getenv("SKIFF_BASE_IMAGE"); v != "" {
		c.BaseImage = v
	}
	if v := c.env.Getenv("SKIFF_ENCRYPTION_KEY"); v != "" {
		c.EncryptionKey = v
	}
}

func (c *Config) derivePaths() {
	c.DatabasePath = filepath.Join(c.DataDir, "skiff.db")
}

// readEncryptionKeyFromEnvFile reads SKIFF_ENCRYPTION_KEY from a .env file in the data directory
func (c *Config) readEncryptionKeyFromEnvFile() string {
	envFile := filepath.Join(c.DataDir, ".env")
	if _, err := os.Stat(envFile); err != nil {
		return ""
	}

	values, err := godotenv.Read(envFile)
	if err != nil {
		return ""
	}

	return values["SKIFF_ENCRYPTION_KEY"]
}

// EnsureDataDir creates the data directory if it does not exist
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", c.DataDir, err)
	}
	return nil
}

func (c *Config) GetLogLevel() string {
	return c.LogLevel
}
