package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific
// endpoint. Paths ending in "/" match by prefix.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int // Maximum requests per window
	Window time.Duration
	Burst  int // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{
			Enabled: false,
		}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific
// configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Login is the abuse magnet: strict limit, tiny burst
		{Path: "/auth/login", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},

		// Mutations against the legacy backend (moderate limits)
		{Path: "/vacancies", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/vacancies/", Method: "PUT", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/vacancies/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/applications/", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/applications/", Method: "PUT", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/candidates/", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/candidates/", Method: "DELETE", Limit: 120, Window: time.Minute, Burst: 20},

		// PDF export proxies a slow upstream report job
		{Path: "/vacancies/", Method: "GET", Limit: 300, Window: time.Minute, Burst: 50},

		// Reads fall through to the default limit; /health is unlimited
		// via a special case in the matcher.
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	if list == "" {
		return result
	}

	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
