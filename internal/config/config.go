package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Mongo struct {
	URI    string
	DBName string
}

type HTTP struct {
	Port            string
	ShutdownTimeout time.Duration
}

type Config struct {
	HTTP     HTTP
	Mongo    Mongo
	ImageDir string

	// CORSOrigins holds allowed origins; ["*"] allows everyone. The storefront
	// is served from a separate host, so CORS stays permissive by default.
	CORSOrigins []string

	ConnectTimeout time.Duration
}

// Load fatals on error for simplicity in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTP: HTTP{
			Port:            envDefault("PORT", "3000"),
			ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Mongo: Mongo{
			URI:    strings.TrimSpace(os.Getenv("MONGODB_URI")),
			DBName: envDefault("DB_NAME", "after_school_app"),
		},
		ImageDir:       envDefault("IMAGE_DIR", "images"),
		CORSOrigins:    splitCSV(envDefault("CORS_ORIGINS", "*")),
		ConnectTimeout: envDuration("MONGO_CONNECT_TIMEOUT", 5*time.Second),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var missing []string
	if c.Mongo.URI == "" {
		missing = append(missing, "MONGODB_URI")
	}
	if len(missing) > 0 {
		return &missingEnvError{Keys: missing}
	}
	if _, err := strconv.Atoi(c.HTTP.Port); err != nil {
		return &invalidEnvError{Key: "PORT", Value: c.HTTP.Port}
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.HTTP.Port
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

type invalidEnvError struct{ Key, Value string }

func (e *invalidEnvError) Error() string {
	return "invalid " + e.Key + "=" + e.Value
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

// envDuration accepts Go duration strings ("10s", "250ms") or plain integer
// seconds ("10").
func envDuration(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	sec, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(sec) * time.Second
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
