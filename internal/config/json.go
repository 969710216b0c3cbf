package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/springingstars/schooldash/internal/flagx"
	"github.com/springingstars/schooldash/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the session validity either as a string
// like "12h" or as integer nanoseconds. Zero values mean "not set" and leave
// the corresponding Config field alone.
type JsonConfig struct {
	DatabasePath          string         `json:"database_path"`
	ArtifactsDir          string         `json:"artifacts_dir"`
	UploadInlineThreshold int64          `json:"upload_inline_threshold"`
	RetainInlineThreshold int64          `json:"retain_inline_threshold"`
	UploadHardLimit       int64          `json:"upload_hard_limit"`
	MaxRecordBytes        int            `json:"max_record_bytes"`
	SessionKey            string         `json:"session_key"`
	SessionValidity       timex.Duration `json:"session_validity"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; without them no JSON is loaded.
// Read or unmarshal errors panic (caller may recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ArtifactsDir != "" {
		cfg.ArtifactsDir = jc.ArtifactsDir
	}
	if jc.UploadInlineThreshold > 0 {
		cfg.UploadInlineThreshold = jc.UploadInlineThreshold
	}
	if jc.RetainInlineThreshold > 0 {
		cfg.RetainInlineThreshold = jc.RetainInlineThreshold
	}
	if jc.UploadHardLimit > 0 {
		cfg.UploadHardLimit = jc.UploadHardLimit
	}
	if jc.MaxRecordBytes > 0 {
		cfg.MaxRecordBytes = jc.MaxRecordBytes
	}
	if jc.SessionKey != "" {
		cfg.SessionKey = jc.SessionKey
	}
	if jc.SessionValidity.Duration > 0 {
		cfg.SessionValidity = time.Duration(jc.SessionValidity.Duration)
	}
}
