package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/fergusquiz/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		DBPath:       "file:quiz.db",
		SubjectsPath: "subjects.yaml",
		LogLevel:     "WARN",
		ReportPath:   "out.txt",
		BcryptCost:   10,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_EmptySubjectsPath(t *testing.T) {
	cfg := validConfig()
	cfg.SubjectsPath = "  "

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SUBJECTS_PATH cannot be empty")
}

func TestValidate_BcryptCost(t *testing.T) {
	tests := []struct {
		name    string
		cost    int
		wantErr bool
	}{
		{name: "too low", cost: 3, wantErr: true},
		{name: "minimum", cost: 4, wantErr: false},
		{name: "default", cost: 10, wantErr: false},
		{name: "maximum", cost: 31, wantErr: false},
		{name: "too high", cost: 32, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.BcryptCost = tt.cost

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "BCRYPT_COST")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		LogLevel:   "INVALID",
		BcryptCost: 0,
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "SUBJECTS_PATH cannot be empty")
	assert.Contains(t, errStr, "REPORT_PATH cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "BCRYPT_COST")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("SUBJECTS_PATH", "catalog/subjects.yaml")
	t.Setenv("BCRYPT_COST", "12")

	cfg := config.Load()

	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, "catalog/subjects.yaml", cfg.SubjectsPath)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("BCRYPT_COST", "twelve")
	t.Setenv("REPORT_PATH", "")

	cfg := config.Load()

	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "out.txt", cfg.ReportPath)
}
