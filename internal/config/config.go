package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultCatalogReplicas = "http://catalog-service-1:3001,http://catalog-service-2:3001"
	defaultOrderReplicas   = "http://order-service-1:3003,http://order-service-2:3003"
)

type Replicas struct {
	Catalog []string
	Order   []string
}

// Backend configures the sandbox replicas started by cmd/backend.
type Backend struct {
	CatalogAddrs []string
	OrderAddrs   []string
}

type Config struct {
	Replicas    Replicas
	CacheCap    int
	HTTPTimeout time.Duration
	LogLevel    string
	MetricsAddr string

	Backend Backend
}

// Load keeps the original API and fatals on error for simplicity in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load("env/.env")

	cfg := Config{
		Replicas: Replicas{
			Catalog: splitCSV(envDefault("CATALOG_REPLICAS", defaultCatalogReplicas)),
			Order:   splitCSV(envDefault("ORDER_REPLICAS", defaultOrderReplicas)),
		},
		CacheCap:    envInt("CACHE_CAP", 0),
		HTTPTimeout: envDurationMS("HTTP_TIMEOUT", 0),
		LogLevel:    strings.ToLower(envDefault("LOG_LEVEL", "info")),
		MetricsAddr: strings.TrimSpace(os.Getenv("METRICS_ADDR")),

		Backend: Backend{
			CatalogAddrs: splitCSV(envDefault("BACKEND_CATALOG_ADDRS", ":3001,:3002")),
			OrderAddrs:   splitCSV(envDefault("BACKEND_ORDER_ADDRS", ":3003,:3004")),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var missing []string
	if len(c.Replicas.Catalog) == 0 {
		missing = append(missing, "CATALOG_REPLICAS")
	}
	if len(c.Replicas.Order) == 0 {
		missing = append(missing, "ORDER_REPLICAS")
	}
	if len(missing) > 0 {
		return &missingEnvError{Keys: missing}
	}

	for _, addr := range append(append([]string{}, c.Replicas.Catalog...), c.Replicas.Order...) {
		if err := validateReplicaURL(addr); err != nil {
			return err
		}
	}

	if c.CacheCap < 0 {
		log.Printf("CACHE_CAP is %d, treating it as unbounded", c.CacheCap)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("HTTP_TIMEOUT must not be negative, got %v", c.HTTPTimeout)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

type invalidReplicaError struct {
	Addr   string
	Reason string
}

func (e *invalidReplicaError) Error() string {
	return fmt.Sprintf("invalid replica address %q: %s", e.Addr, e.Reason)
}

func validateReplicaURL(addr string) error {
	u, err := url.Parse(addr)
	if err != nil {
		return &invalidReplicaError{Addr: addr, Reason: err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &invalidReplicaError{Addr: addr, Reason: "scheme must be http or https"}
	}
	if u.Host == "" {
		return &invalidReplicaError{Addr: addr, Reason: "host is empty"}
	}
	return nil
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	// If it looks like a duration with units, try ParseDuration first.
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	// Otherwise treat as milliseconds.
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
