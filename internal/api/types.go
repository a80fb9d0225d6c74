package api

import (
	"github.com/MasonSBrown/NeXtSRGAN/internal/schedule"
)

// DataResponse wraps successful API responses.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// FieldError describes a single configuration validation failure.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationReport is the result of validating a submitted document.
type ValidationReport struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// ScheduleResponse describes the full learning rate schedule.
type ScheduleResponse struct {
	Segments []schedule.Segment `json:"segments"`
}

// ScheduleStepResponse describes the learning rate at a single step.
type ScheduleStepResponse struct {
	Step int     `json:"step"`
	LR   float64 `json:"lr"`
}

// StatusResponse describes the server and configuration file state.
type StatusResponse struct {
	Version    VersionInfo `json:"version"`
	ConfigPath string      `json:"config_path"`
	Valid      bool        `json:"valid"`
	// CurrentHash is the fingerprint of the configuration file on disk.
	CurrentHash string `json:"current_hash,omitempty"`
	// LoadedHash is the fingerprint of the configuration loaded at startup.
	LoadedHash string `json:"loaded_hash,omitempty"`
	// Changed reports whether the file differs from what was loaded.
	Changed bool   `json:"changed"`
	Error   string `json:"error,omitempty"`
}

// VersionInfo carries build version information.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
