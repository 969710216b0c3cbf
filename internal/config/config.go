// Package config holds the runtime settings of the dashboard: where the local
// database lives, the binary-inlining thresholds, and the session signing
// parameters. Values are layered defaults → JSON file → command-line flags,
// later sources winning.
package config

import "time"

// Config holds runtime settings for the dashboard.
//
// The two inlining thresholds are intentionally distinct knobs:
// UploadInlineThreshold gates whether a preview-capable payload is produced
// at upload time, RetainInlineThreshold gates whether that payload is kept
// when the containing collection is persisted. They look redundant but are
// not interchangeable; do not collapse them.
type Config struct {
	DatabasePath string
	ArtifactsDir string

	UploadInlineThreshold int64
	RetainInlineThreshold int64

	// UploadHardLimit is the absolute cap on an uploaded file, independent of
	// the inlining thresholds. Files above it are rejected outright.
	UploadHardLimit int64

	// MaxRecordBytes caps a single serialized record, standing in for the
	// storage quota of the hosting environment. Zero disables the cap.
	MaxRecordBytes int

	SessionKey      string
	SessionValidity time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "dashboard.db"
	c.ArtifactsDir = "exports"
	c.UploadInlineThreshold = 2 * 1024 * 1024
	c.RetainInlineThreshold = 1 * 1024 * 1024
	c.UploadHardLimit = 10 * 1024 * 1024
	c.MaxRecordBytes = 5 * 1024 * 1024
	c.SessionKey = "springing-stars-local-dev-key"
	c.SessionValidity = 12 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
