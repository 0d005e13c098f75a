// Package config loads runtime configuration for the Community OS CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (see parseFile) selected via flags: -c or -config.
//     Files ending in .yaml or .yml are read as YAML, anything else as JSON.
//  3. Environment variables (see parseEnv), optionally seeded from a .env
//     file in the working directory.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Environment variables
//
//	COS_BASE_URL             backend base URL
//	COS_REQUEST_TIMEOUT      request timeout, Go duration syntax
//	COS_DATA_DIR             data directory
//	COS_DATABASE_FILE        session database file
//	COS_OTP_RESEND_INTERVAL  minimum gap between OTP sends
//	COS_LOG_LEVEL            log level
//
// Supported flags
//
//	-a string   backend base URL, including the /api prefix
//	-t int      request timeout (seconds)
//	-d string   data directory for the local session database
//	-l string   log level: debug, info, warn or error
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "30s" or integer
// nanoseconds. Absent keys keep their earlier value. The JSON form:
//
//	{
//	  "base_url": "https://community.example/api",
//	  "request_timeout": "15s",
//	  "data_dir": "/var/lib/communityos",
//	  "database_file": "session.db",
//	  "otp_resend_interval": "1m",
//	  "log_level": "info"
//	}
package config
