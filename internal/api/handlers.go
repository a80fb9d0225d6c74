package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MasonSBrown/NeXtSRGAN/internal/config"
)

// Handler manages all API endpoints and dependencies.
type Handler struct {
	configPath   string
	configHasher *config.ConfigHasher
}

// NewHandler creates a new API handler for the given configuration path.
func NewHandler(configPath string, configHasher *config.ConfigHasher) *Handler {
	return &Handler{
		configPath:   configPath,
		configHasher: configHasher,
	}
}

// loadConfig loads the configuration from disk.
func (h *Handler) loadConfig() (*config.Config, error) {
	return config.LoadConfig(h.configPath)
}

// writeLoadError maps configuration loading failures to API errors.
func writeLoadError(w http.ResponseWriter, err error) {
	var notFound *config.NotFoundError
	if errors.As(err, &notFound) {
		WriteNotFound(w, "Configuration file")
		return
	}

	var validationErrs config.ValidationErrors
	if errors.As(err, &validationErrs) {
		WriteValidationError(w, "Configuration is invalid", validationDetails(validationErrs))
		return
	}

	WriteInternalError(w, "Failed to load configuration: "+err.Error())
}

// validationDetails converts validation errors to the details payload.
func validationDetails(validationErrs config.ValidationErrors) map[string]interface{} {
	fieldErrors := make([]FieldError, 0, len(validationErrs))
	for _, ve := range validationErrs {
		fieldErrors = append(fieldErrors, FieldError{Field: ve.FieldPath, Reason: ve.Message})
	}
	return map[string]interface{}{"errors": fieldErrors}
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(DataResponse{Data: data})
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}
