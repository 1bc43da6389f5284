// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds server knobs and upstream API credentials. Credentials are
// read once at startup and passed into the adapters, never from ambient
// globals inside provider logic.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	ComputeTimeout  time.Duration
	ProviderTimeout time.Duration
	HitsPerSource   int
	StaticDir       string

	RakutenAppID       string
	RakutenAffiliateID string
	YahooAppID         string
	ValueCommerceSID   string
	ValueCommercePID   string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", addr),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 15),
		ComputeTimeout:  durenvs("COMPUTE_TIMEOUT", 8),
		ProviderTimeout: durenvs("PROVIDER_TIMEOUT", 5),
		HitsPerSource:   atoienv("HITS_PER_SOURCE", 10),
		StaticDir:       getenv("STATIC_DIR", "static"),

		RakutenAppID:       os.Getenv("RAKUTEN_APP_ID"),
		RakutenAffiliateID: os.Getenv("RAKUTEN_AFFILIATE_ID"),
		YahooAppID:         os.Getenv("YAHOO_APP_ID"),
		ValueCommerceSID:   os.Getenv("VC_SID"),
		ValueCommercePID:   os.Getenv("VC_PID"),
	}
}
