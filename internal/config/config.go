package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/MasonSBrown/NeXtSRGAN/internal/log"
)

const (
	// ARTIFACT_TMPL_SUB_NAME is the placeholder for the experiment name in artifact directory templates
	ARTIFACT_TMPL_SUB_NAME = "sub_name"

	// DefaultCheckpointDirTemplate is used when save.checkpoint_dir is omitted
	DefaultCheckpointDirTemplate = "./checkpoints/{{sub_name}}"
	// DefaultLogDirTemplate is used when save.log_dir is omitted
	DefaultLogDirTemplate = "./logs/{{sub_name}}"
)

// unknownFieldRegexp matches the strict-decoding error produced for unknown document keys
var unknownFieldRegexp = regexp.MustCompile(`field (\S+) not found in type config\.(\w+)`)

// sectionPathByType maps schema struct names to their dotted document paths
var sectionPathByType = map[string]string{
	"Config":               "",
	"GeneralConfig":        "general",
	"NetworkConfig":        "network",
	"DatasetConfig":        "dataset",
	"TrainDatasetConfig":   "dataset.train",
	"TestDatasetConfig":    "dataset.test",
	"TrainingConfig":       "training",
	"LearningRateSchedule": "training.learning_rate",
	"AdamBetaConfig":       "training.adam_beta",
	"LossConfig":           "loss",
	"LossTermConfig":       "loss",
	"GANLossConfig":        "loss.gan",
	"SaveConfig":           "save",
}

// LoadConfig reads, parses and validates the configuration file at the given path.
// It returns a NotFoundError if the file does not exist, a ParseError if the
// document is malformed, and ValidationErrors if the document violates the schema.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)
	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			log.Errorf("Failed to resolve absolute path of configuration file: %v", err)
			return nil, fmt.Errorf("failed to resolve absolute path of configuration file: %v", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, &NotFoundError{Path: configPath}
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		log.Errorf("Failed to read configuration file: %v", err)
		return nil, fmt.Errorf("failed to read configuration file: %v", err)
	}

	cfg, err := parseDocument(bytes.NewReader(content), configPath)
	if err != nil {
		return nil, err
	}
	cfg._absConfigFilePath = configFile

	log.Debugf("Loaded configuration from %s", configFile)

	if err := cfg.ValidateConfig(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseConfig parses and validates a configuration document from the given reader
func ParseConfig(r io.Reader) (*Config, error) {
	cfg, err := parseDocument(r, "")
	if err != nil {
		return nil, err
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseDocument(r io.Reader, path string) (*Config, error) {
	cfg := &Config{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("document is empty")}
		}

		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, convertTypeError(typeErr)
		}

		log.Errorf("Failed to parse configuration document: %v", err)
		return nil, &ParseError{Path: path, Err: err}
	}

	return cfg, nil
}

// convertTypeError maps strict-decoding errors onto schema validation errors
// so that unknown keys and mistyped values report a document path.
func convertTypeError(typeErr *yaml.TypeError) ValidationErrors {
	var validationErrors ValidationErrors

	for _, msg := range typeErr.Errors {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: typeErrorFieldPath(msg),
			Message:   msg,
		})
	}

	return validationErrors
}

func typeErrorFieldPath(msg string) string {
	if m := unknownFieldRegexp.FindStringSubmatch(msg); m != nil {
		if section, ok := sectionPathByType[m[2]]; ok {
			if section == "" {
				return m[1]
			}
			return section + "." + m[1]
		}
		return m[1]
	}
	return "document"
}

// SerializeConfig renders the configuration back to its document form
func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to serialize configuration: %v", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to serialize configuration: %v", err)
	}

	return &buf, nil
}
