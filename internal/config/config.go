package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vytor/fergusquiz/internal/logger"
)

type Config struct {
	DBPath       string
	SubjectsPath string
	LogLevel     string
	LogFile      string
	ReportPath   string
	BcryptCost   int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		DBPath:       envOr("DB_PATH", "file:quiz.db"),
		SubjectsPath: envOr("SUBJECTS_PATH", "subjects.yaml"),
		LogLevel:     envOr("LOG_LEVEL", "WARN"),
		LogFile:      envOr("LOG_FILE", ""),
		ReportPath:   envOr("REPORT_PATH", "out.txt"),
		BcryptCost:   envIntOr("BCRYPT_COST", 10),
	}
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.DBPath) == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	if strings.TrimSpace(c.SubjectsPath) == "" {
		problems = append(problems, "SUBJECTS_PATH cannot be empty")
	}
	if strings.TrimSpace(c.ReportPath) == "" {
		problems = append(problems, "REPORT_PATH cannot be empty")
	}
	if !logger.ValidLevel(c.LogLevel) {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}
	// bcrypt.MinCost / bcrypt.MaxCost
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		problems = append(problems, fmt.Sprintf("BCRYPT_COST must be between 4 and 31, got %d", c.BcryptCost))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
