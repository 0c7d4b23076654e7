package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-kit/log/level"
	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envConfigPath        = "CONFIG_PATH"
	envRegistryURL       = "REGISTRY_URL"
	envTargetsFile       = "TARGETS_FILE"
	envPollIntervalMs    = "POLL_INTERVAL_MS"
	envFetchTimeoutMs    = "FETCH_TIMEOUT_MS"
	envInternalHostAlias = "INTERNAL_HOST_ALIAS"
	envAllowOverlap      = "ALLOW_OVERLAP"
	envHTTPPort          = "SERVICE_PORT_HTTP"
	envRedisAddr         = "REDIS_ADDR"
	envLogLevel          = "LOG_LEVEL"
)

// Defaults.
const (
	defaultRegistryURL       = "http://host.docker.internal:8091/gateway"
	defaultTargetsFile       = "/etc/prometheus/targets/rest-servers.json"
	defaultPollIntervalMs    = 10000
	defaultFetchTimeoutMs    = 10000
	defaultInternalHostAlias = "host.docker.internal"
	defaultLogLevel          = "info"
)

// Config holds the adapter configuration loaded by LoadConfig.
// HTTPPort 0 disables the status API; an empty RedisAddr disables snapshot publishing.
type Config struct {
	RegistryURL       string
	TargetsFile       string
	PollInterval      time.Duration
	FetchTimeout      time.Duration
	InternalHostAlias string
	AllowOverlap      bool
	HTTPPort          int
	RedisAddr         string
	LogLevel          string
}

// yamlConfig is the root struct of the optional file at CONFIG_PATH. Pointers tell "absent" from zero.
type yamlConfig struct {
	RegistryURL       string `yaml:"registry_url"`
	TargetsFile       string `yaml:"targets_file"`
	PollIntervalMs    *int   `yaml:"poll_interval_ms"`
	FetchTimeoutMs    *int   `yaml:"fetch_timeout_ms"`
	InternalHostAlias string `yaml:"internal_host_alias"`
	AllowOverlap      *bool  `yaml:"allow_overlap"`
	HTTPPort          *int   `yaml:"http_port"`
	RedisAddr         string `yaml:"redis_addr"`
	LogLevel          string `yaml:"log_level"`
}

func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the configuration from environment variables, the optional YAML file at CONFIG_PATH
// and defaults, in that order of precedence.
//
// Returns: (nil, error) on an unreadable or unparsable file and on any invalid value.
func LoadConfig() (*Config, error) {
	raw := &yamlConfig{}
	if configPath := strings.TrimSpace(os.Getenv(envConfigPath)); configPath != "" {
		if !filepath.IsAbs(configPath) {
			abs, err := filepath.Abs(configPath)
			if err != nil {
				return nil, err
			}
			configPath = abs
		}
		loaded, err := loadYAMLConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
		raw = loaded
	}

	cfg := &Config{
		RegistryURL:       pickString(envRegistryURL, raw.RegistryURL, defaultRegistryURL),
		TargetsFile:       pickString(envTargetsFile, raw.TargetsFile, defaultTargetsFile),
		InternalHostAlias: pickString(envInternalHostAlias, raw.InternalHostAlias, defaultInternalHostAlias),
		RedisAddr:         pickString(envRedisAddr, raw.RedisAddr, ""),
		LogLevel:          strings.ToLower(pickString(envLogLevel, raw.LogLevel, defaultLogLevel)),
	}

	registryURL, err := url.Parse(cfg.RegistryURL)
	if err != nil || (registryURL.Scheme != "http" && registryURL.Scheme != "https") || registryURL.Host == "" {
		return nil, fmt.Errorf("%s must be an absolute http(s) URL, got %q", envRegistryURL, cfg.RegistryURL)
	}
	cfg.RegistryURL = strings.TrimRight(cfg.RegistryURL, "/")

	pollMs, err := pickInt(envPollIntervalMs, raw.PollIntervalMs, defaultPollIntervalMs)
	if err != nil {
		return nil, err
	}
	if pollMs <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", envPollIntervalMs, pollMs)
	}
	cfg.PollInterval = time.Duration(pollMs) * time.Millisecond

	fetchMs, err := pickInt(envFetchTimeoutMs, raw.FetchTimeoutMs, defaultFetchTimeoutMs)
	if err != nil {
		return nil, err
	}
	if fetchMs <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", envFetchTimeoutMs, fetchMs)
	}
	cfg.FetchTimeout = time.Duration(fetchMs) * time.Millisecond

	cfg.HTTPPort, err = pickInt(envHTTPPort, raw.HTTPPort, 0)
	if err != nil {
		return nil, err
	}
	if cfg.HTTPPort < 0 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("%s must be 0-65535, got %d", envHTTPPort, cfg.HTTPPort)
	}

	cfg.AllowOverlap = raw.AllowOverlap != nil && *raw.AllowOverlap
	if v := strings.TrimSpace(os.Getenv(envAllowOverlap)); v != "" {
		cfg.AllowOverlap, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envAllowOverlap, err)
		}
	}

	if _, err := levelOption(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

// levelOption maps LOG_LEVEL to a go-kit level filter.
func levelOption(name string) (level.Option, error) {
	switch name {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("%s must be debug|info|warn|error, got %q", envLogLevel, name)
	}
}

func pickString(env string, fromFile string, def string) string {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		return v
	}
	if v := strings.TrimSpace(fromFile); v != "" {
		return v
	}
	return def
}

func pickInt(env string, fromFile *int, def int) (int, error) {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", env, err)
		}
		return n, nil
	}
	if fromFile != nil {
		return *fromFile, nil
	}
	return def, nil
}
