package api

import (
	"net/http"

	"github.com/MasonSBrown/NeXtSRGAN/internal/artifacts"
	"github.com/MasonSBrown/NeXtSRGAN/internal/log"
)

var (
	// Version information set via ldflags at build time
	Version = "dev"
	Date    = "n/a"
	Commit  = "n/a"
)

// GetStatus reports whether the configuration file is valid and whether it
// changed on disk since the server loaded it.
// GET /api/v1/status
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	response := StatusResponse{
		Version: VersionInfo{
			Version: Version,
			Date:    Date,
			Commit:  Commit,
		},
		ConfigPath: h.configPath,
	}

	currentHash, err := h.configHasher.GetCurrentConfigHash()
	if err != nil {
		log.Warnf("Failed to get current config hash: %v", err)
		response.Valid = false
		response.Error = err.Error()
	} else {
		response.Valid = true
		response.CurrentHash = currentHash
	}

	loadedHash := h.configHasher.GetLoadedConfigHash()
	response.LoadedHash = loadedHash
	response.Changed = loadedHash != "" && currentHash != "" && loadedHash != currentHash

	writeJSONData(w, response)
}

// GetArtifacts returns the resolved artifact directories for the configured
// experiment.
// GET /api/v1/artifacts
func (h *Handler) GetArtifacts(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loadConfig()
	if err != nil {
		writeLoadError(w, err)
		return
	}

	writeJSONData(w, artifacts.Resolve(cfg))
}
