package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/communityos/internal/flagx"
	"github.com/dmitrijs2005/communityos/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file unmarshalling. Pointer
// fields distinguish "absent" from "zero".
type FileConfig struct {
	BaseURL           *string         `json:"base_url" yaml:"base_url"`
	RequestTimeout    *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	DataDir           *string         `json:"data_dir" yaml:"data_dir"`
	DatabaseFile      *string         `json:"database_file" yaml:"database_file"`
	OTPResendInterval *timex.Duration `json:"otp_resend_interval" yaml:"otp_resend_interval"`
	LogLevel          *string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config, if any. Files
// ending in .yaml or .yml are read as YAML, anything else as JSON.
// It panics on read or unmarshal errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc, err := decodeFile(path, data)
	if err != nil {
		panic(err)
	}
	fc.apply(cfg)
}

func decodeFile(path string, data []byte) (*FileConfig, error) {
	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}
	return &fc, nil
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.BaseURL != nil {
		cfg.BaseURL = *fc.BaseURL
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.DataDir != nil {
		cfg.DataDir = *fc.DataDir
	}
	if fc.DatabaseFile != nil {
		cfg.DatabaseFile = *fc.DatabaseFile
	}
	if fc.OTPResendInterval != nil {
		cfg.OTPResendInterval = fc.OTPResendInterval.Duration
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
}
