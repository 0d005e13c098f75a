package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// envFile is loaded before the environment is read. Variables already set in
// the process environment win over the file.
var envFile = ".env"

const (
	envBaseURL           = "COS_BASE_URL"
	envRequestTimeout    = "COS_REQUEST_TIMEOUT"
	envDataDir           = "COS_DATA_DIR"
	envDatabaseFile      = "COS_DATABASE_FILE"
	envOTPResendInterval = "COS_OTP_RESEND_INTERVAL"
	envLogLevel          = "COS_LOG_LEVEL"
)

// parseEnv overlays cfg with COS_* environment variables. A missing env file
// is ignored; a malformed one or an unparsable duration panics.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Errorf("load %s: %w", envFile, err))
	}

	lookupString(envBaseURL, &cfg.BaseURL)
	lookupString(envDataDir, &cfg.DataDir)
	lookupString(envDatabaseFile, &cfg.DatabaseFile)
	lookupString(envLogLevel, &cfg.LogLevel)
	lookupDuration(envRequestTimeout, &cfg.RequestTimeout)
	lookupDuration(envOTPResendInterval, &cfg.OTPResendInterval)
}

func lookupString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func lookupDuration(key string, dst *time.Duration) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", key, err))
	}
	*dst = d
}
