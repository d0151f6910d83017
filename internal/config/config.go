package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ledgerworks/txn-generator/internal/generator"
)

type Config struct {
	Port            string
	LogLevel        string
	MinMonthlyUnits float64
	MaxMonthlyUnits float64
	MaxUploadBytes  int64
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults cover the docker compose setup
	env := Config{
		Port:            "9446",
		LogLevel:        "info",
		MinMonthlyUnits: generator.DefaultMinMonthlyUnits,
		MaxMonthlyUnits: generator.DefaultMaxMonthlyUnits,
		MaxUploadBytes:  10 << 20,
	}

	if v := os.Getenv("PORT"); len(v) != 0 {
		env.Port = v
	}

	if v := os.Getenv("LOG_LEVEL"); len(v) != 0 {
		env.LogLevel = v
	}

	if v := os.Getenv("MIN_MONTHLY_UNITS"); len(v) != 0 {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("config: MIN_MONTHLY_UNITS: %w", err)
		}
		env.MinMonthlyUnits = parsed
	}

	if v := os.Getenv("MAX_MONTHLY_UNITS"); len(v) != 0 {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("config: MAX_MONTHLY_UNITS: %w", err)
		}
		env.MaxMonthlyUnits = parsed
	}

	if v := os.Getenv("MAX_UPLOAD_BYTES"); len(v) != 0 {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config: MAX_UPLOAD_BYTES: %w", err)
		}
		env.MaxUploadBytes = parsed
	}

	if env.MaxMonthlyUnits < env.MinMonthlyUnits {
		return nil, fmt.Errorf("config: MAX_MONTHLY_UNITS %v below MIN_MONTHLY_UNITS %v",
			env.MaxMonthlyUnits, env.MinMonthlyUnits)
	}

	return &env, nil
}
