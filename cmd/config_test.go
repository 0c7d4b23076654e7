package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{
		envConfigPath, envRegistryURL, envTargetsFile, envPollIntervalMs, envFetchTimeoutMs,
		envInternalHostAlias, envAllowOverlap, envHTTPPort, envRedisAddr, envLogLevel,
	} {
		t.Setenv(env, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mytargets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		RegistryURL:       "http://host.docker.internal:8091/gateway",
		TargetsFile:       "/etc/prometheus/targets/rest-servers.json",
		PollInterval:      10 * time.Second,
		FetchTimeout:      10 * time.Second,
		InternalHostAlias: "host.docker.internal",
		AllowOverlap:      false,
		HTTPPort:          0,
		RedisAddr:         "",
		LogLevel:          "info",
	}, cfg)
}

func TestLoadConfig_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv(envRegistryURL, "https://gateway.internal:8443/gw/")
	t.Setenv(envTargetsFile, "/tmp/targets/rest.json")
	t.Setenv(envPollIntervalMs, "2500")
	t.Setenv(envFetchTimeoutMs, "1500")
	t.Setenv(envInternalHostAlias, "gateway-host")
	t.Setenv(envAllowOverlap, "true")
	t.Setenv(envHTTPPort, "9091")
	t.Setenv(envRedisAddr, "redis://redis:6379/1")
	t.Setenv(envLogLevel, "DEBUG")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.internal:8443/gw", cfg.RegistryURL)
	assert.Equal(t, "/tmp/targets/rest.json", cfg.TargetsFile)
	assert.Equal(t, 2500*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 1500*time.Millisecond, cfg.FetchTimeout)
	assert.Equal(t, "gateway-host", cfg.InternalHostAlias)
	assert.True(t, cfg.AllowOverlap)
	assert.Equal(t, 9091, cfg.HTTPPort)
	assert.Equal(t, "redis://redis:6379/1", cfg.RedisAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_YAML(t *testing.T) {
	clearEnv(t)
	t.Setenv(envConfigPath, writeConfig(t, `
registry_url: http://gateway:8091/gateway
targets_file: /srv/targets.json
poll_interval_ms: 5000
fetch_timeout_ms: 3000
internal_host_alias: docker-host
allow_overlap: true
http_port: 8080
redis_addr: redis://localhost:6379
log_level: warn
`))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://gateway:8091/gateway", cfg.RegistryURL)
	assert.Equal(t, "/srv/targets.json", cfg.TargetsFile)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "docker-host", cfg.InternalHostAlias)
	assert.True(t, cfg.AllowOverlap)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv(envConfigPath, writeConfig(t, `
poll_interval_ms: 5000
allow_overlap: true
targets_file: /srv/targets.json
`))
	t.Setenv(envPollIntervalMs, "1000")
	t.Setenv(envAllowOverlap, "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.PollInterval)
	assert.False(t, cfg.AllowOverlap)
	assert.Equal(t, "/srv/targets.json", cfg.TargetsFile)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		yaml    string
		wantErr string
	}{
		{name: "relative_registry_url", env: map[string]string{envRegistryURL: "gateway:8091"}, wantErr: envRegistryURL},
		{name: "non_http_registry_url", env: map[string]string{envRegistryURL: "ftp://gateway/"}, wantErr: envRegistryURL},
		{name: "interval_not_a_number", env: map[string]string{envPollIntervalMs: "ten"}, wantErr: envPollIntervalMs},
		{name: "interval_zero", env: map[string]string{envPollIntervalMs: "0"}, wantErr: envPollIntervalMs},
		{name: "timeout_negative", env: map[string]string{envFetchTimeoutMs: "-1"}, wantErr: envFetchTimeoutMs},
		{name: "port_out_of_range", env: map[string]string{envHTTPPort: "70000"}, wantErr: envHTTPPort},
		{name: "overlap_not_bool", env: map[string]string{envAllowOverlap: "sometimes"}, wantErr: envAllowOverlap},
		{name: "unknown_log_level", env: map[string]string{envLogLevel: "trace"}, wantErr: envLogLevel},
		{name: "yaml_interval_zero", yaml: "poll_interval_ms: 0\n", wantErr: envPollIntervalMs},
		{name: "yaml_invalid", yaml: "poll_interval_ms: [1, 2\n", wantErr: "load config"},
		{name: "config_path_missing", env: map[string]string{envConfigPath: "/nonexistent/mytargets.yaml"}, wantErr: "load config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if tt.yaml != "" {
				t.Setenv(envConfigPath, writeConfig(t, tt.yaml))
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLevelOption(t *testing.T) {
	for _, name := range []string{"debug", "info", "warn", "error"} {
		opt, err := levelOption(name)
		require.NoError(t, err, name)
		assert.NotNil(t, opt)
	}
	_, err := levelOption("verbose")
	assert.Error(t, err)
}
