package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(limit, burst int, window time.Duration) *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
		EndpointConfigs: []EndpointConfig{
			{Path: "/auth/login", Method: "POST", Limit: limit, Window: window, Burst: burst},
		},
	}
}

func TestAllow_WithinBurst(t *testing.T) {
	l := NewLimiter(testConfig(10, 3, time.Minute))
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("1.2.3.4", "/auth/login", "POST")
		assert.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 10, info.Limit)
	}
}

func TestAllow_BurstExhausted(t *testing.T) {
	l := NewLimiter(testConfig(10, 2, time.Hour))
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/auth/login", "POST")
		require.True(t, allowed)
	}

	allowed, info := l.Allow("1.2.3.4", "/auth/login", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsIndependent(t *testing.T) {
	l := NewLimiter(testConfig(10, 1, time.Hour))
	defer l.Stop()

	allowed, _ := l.Allow("1.1.1.1", "/auth/login", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.1.1.1", "/auth/login", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("2.2.2.2", "/auth/login", "POST")
	assert.True(t, allowed, "a different client has its own bucket")
}

func TestAllow_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/auth/login", "POST")
		require.True(t, allowed)
	}
}

func TestAllow_Whitelist(t *testing.T) {
	cfg := testConfig(10, 1, time.Hour)
	cfg.Whitelist["9.9.9.9"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("9.9.9.9", "/auth/login", "POST")
		require.True(t, allowed)
	}
}

func TestAllow_Blacklist(t *testing.T) {
	cfg := testConfig(10, 5, time.Minute)
	cfg.Blacklist["6.6.6.6"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	allowed, _ := l.Allow("6.6.6.6", "/auth/login", "POST")
	assert.False(t, allowed)
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	config := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, config)
	assert.Equal(t, 0, config.Limit)
}

func TestMatchEndpoint_ExactAndPrefix(t *testing.T) {
	configs := DefaultEndpointConfigs()

	login := MatchEndpoint("/auth/login", "POST", configs)
	require.NotNil(t, login)
	assert.Equal(t, 10, login.Limit)

	update := MatchEndpoint("/vacancies/7", "PUT", configs)
	require.NotNil(t, update)
	assert.Equal(t, 60, update.Limit)

	// Plain reads fall through to the default
	assert.Nil(t, MatchEndpoint("/vacancies", "GET", configs))
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.NotEmpty(t, cfg.EndpointConfigs)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}
