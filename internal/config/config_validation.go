package config

import (
	"strings"
	"time"
)

// Defaults applied when no source provided a value.
const (
	DefaultHTTPAddress    = ":8080"
	DefaultDSN            = "caltrack.db"
	DefaultRequestTimeout = 30 * time.Second
	DefaultAppVersion     = "dev"
)

// applyDefaults fills unset fields of the merged [StructuredConfig] with
// defaults, so a bare `caltrack-server` invocation works out of the box.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultAppVersion
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if !strings.Contains(cfg.Server.HTTPAddress, ":") {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
