package api

import (
	"errors"
	"net/http"

	"github.com/MasonSBrown/NeXtSRGAN/internal/config"
	"github.com/MasonSBrown/NeXtSRGAN/internal/utils"
)

// GetConfig returns the loaded configuration.
// GET /api/v1/config
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loadConfig()
	if err != nil {
		writeLoadError(w, err)
		return
	}

	writeJSONData(w, cfg)
}

// GetConfigYAML returns the loaded configuration in document form.
// GET /api/v1/config/yaml
func (h *Handler) GetConfigYAML(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loadConfig()
	if err != nil {
		writeLoadError(w, err)
		return
	}

	buf, err := cfg.SerializeConfig()
	if err != nil {
		WriteInternalError(w, "Failed to serialize configuration: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// ValidateDocument validates a configuration document from the request body
// without touching the configuration file.
// POST /api/v1/validate
func (h *Handler) ValidateDocument(w http.ResponseWriter, r *http.Request) {
	defer utils.CloseOrWarn(r.Body)

	_, err := config.ParseConfig(r.Body)
	if err == nil {
		writeJSONData(w, ValidationReport{Valid: true})
		return
	}

	var validationErrs config.ValidationErrors
	if errors.As(err, &validationErrs) {
		report := ValidationReport{Valid: false}
		for _, ve := range validationErrs {
			report.Errors = append(report.Errors, FieldError{Field: ve.FieldPath, Reason: ve.Message})
		}
		writeJSONData(w, report)
		return
	}

	var parseErr *config.ParseError
	if errors.As(err, &parseErr) {
		WriteInvalidRequest(w, "Malformed document: "+parseErr.Error())
		return
	}

	WriteInternalError(w, "Failed to validate document: "+err.Error())
}
