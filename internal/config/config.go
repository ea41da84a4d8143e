package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DBDSN        string
	LogFile      string
	AllowOrigins string
	RateLimit    int // requests per minute per IP; 0 disables
	BodyLimit    int // bytes
	Seed         bool

	// Admin gate for write routes; disabled unless both are set.
	AdminUser         string
	AdminPasswordHash string
}

// AdminEnabled reports whether write routes require basic auth.
func (c Config) AdminEnabled() bool {
	return c.AdminUser != "" && c.AdminPasswordHash != ""
}

// LoadEnvFile merges a dotenv file into the process environment without
// overriding variables that are already set. A missing file is fine.
func LoadEnvFile(path string) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[warn] could not read env file %s: %v", path, err)
	}
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "essencia.db"
	} // sqlite file in project root
	logFile, ok := os.LookupEnv("LOG_FILE")
	if !ok {
		logFile = "./essencia.log"
	}
	origins := os.Getenv("ALLOW_ORIGINS")
	if strings.TrimSpace(origins) == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	cfg := Config{
		Port:              port,
		DBDSN:             dsn,
		LogFile:           logFile,
		AllowOrigins:      origins,
		RateLimit:         envInt("RATE_LIMIT", 120),
		BodyLimit:         envInt("BODY_LIMIT", 1<<20),
		Seed:              envBool("SEED", true),
		AdminUser:         os.Getenv("ADMIN_USER"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s RATE_LIMIT=%d BODY_LIMIT=%d SEED=%t ADMIN_GATE=%t",
		cfg.Port, redactDSN(cfg.DBDSN), cfg.LogFile, cfg.RateLimit, cfg.BodyLimit, cfg.Seed, cfg.AdminEnabled())
	return cfg
}

func envInt(key string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return b
}

// redactDSN hides the password of a URL-style DSN before it is logged.
func redactDSN(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	scheme := strings.Index(dsn, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return dsn
	}
	creds := dsn[scheme+3 : at]
	if i := strings.Index(creds, ":"); i >= 0 {
		return dsn[:scheme+3] + creds[:i] + ":***" + dsn[at:]
	}
	return dsn
}
