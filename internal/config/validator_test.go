package config

import (
	"errors"
	"strings"
	"testing"
)

func validConfig(t *testing.T) *Config {
	t.Helper()

	cfg, err := ParseConfig(strings.NewReader(validConfigDocument))
	if err != nil {
		t.Fatalf("Failed to parse valid config: %v", err)
	}
	return cfg
}

func fieldPaths(t *testing.T, err error) []string {
	t.Helper()

	if err == nil {
		t.Fatal("Expected validation errors, got nil")
	}

	var validationErrs ValidationErrors
	if !errors.As(err, &validationErrs) {
		t.Fatalf("Expected ValidationErrors, got %T: %v", err, err)
	}

	paths := make([]string, 0, len(validationErrs))
	for _, ve := range validationErrs {
		paths = append(paths, ve.FieldPath)
	}
	return paths
}

func hasFieldError(paths []string, want string) bool {
	for _, p := range paths {
		if p == want {
			return true
		}
	}
	return false
}

func TestValidateConfigValid(t *testing.T) {
	cfg := validConfig(t)
	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected valid config, got: %v", err)
	}
}

func TestValidateConfigMissingSections(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{"general", func(c *Config) { c.General = nil }, "general"},
		{"network", func(c *Config) { c.Network = nil }, "network"},
		{"dataset", func(c *Config) { c.Dataset = nil }, "dataset"},
		{"training", func(c *Config) { c.Training = nil }, "training"},
		{"loss", func(c *Config) { c.Loss = nil }, "loss"},
		{"save", func(c *Config) { c.Save = nil }, "save"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			paths := fieldPaths(t, cfg.ValidateConfig())
			if !hasFieldError(paths, tt.wantField) {
				t.Errorf("Expected error for %q, got %v", tt.wantField, paths)
			}
		})
	}
}

func TestValidateConfigFieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{"zero batch size", func(c *Config) { c.General.BatchSize = 0 }, "general.batch_size"},
		{"negative batch size", func(c *Config) { c.General.BatchSize = -4 }, "general.batch_size"},
		{"invalid channel count", func(c *Config) { c.General.ChSize = 2 }, "general.ch_size"},
		{"bad experiment name", func(c *Config) { c.General.SubName = "bad name!" }, "general.sub_name"},
		{"zero nf", func(c *Config) { c.Network.NF = 0 }, "network.nf"},
		{"missing train path", func(c *Config) { c.Dataset.Train.Path = "" }, "dataset.train.path"},
		{"missing set5 path", func(c *Config) { c.Dataset.Test.Set5Path = "" }, "dataset.test.set5_path"},
		{"zero niter", func(c *Config) { c.Training.NIter = 0 }, "training.niter"},
		{"zero initial lr", func(c *Config) { c.Training.LearningRate.Initial = 0 }, "training.learning_rate.initial"},
		{"rate above one", func(c *Config) { c.Training.LearningRate.Rate = 1.5 }, "training.learning_rate.rate"},
		{"empty steps", func(c *Config) { c.Training.LearningRate.Steps = []int{} }, "training.learning_rate.steps"},
		{"non-increasing steps", func(c *Config) { c.Training.LearningRate.Steps = []int{40000, 20000} }, "training.learning_rate.steps"},
		{"repeated steps", func(c *Config) { c.Training.LearningRate.Steps = []int{40000, 40000} }, "training.learning_rate.steps"},
		{"beta1 out of range", func(c *Config) { c.Training.AdamBeta.Beta1 = 1.0 }, "training.adam_beta.beta1"},
		{"beta2 out of range", func(c *Config) { c.Training.AdamBeta.Beta2 = 0 }, "training.adam_beta.beta2"},
		{"bad pixel criterion", func(c *Config) { c.Loss.Pixel.Criterion = "huber" }, "loss.pixel.criterion"},
		{"negative feature weight", func(c *Config) { c.Loss.Feature.Weight = -1 }, "loss.feature.weight"},
		{"bad gan type", func(c *Config) { c.Loss.GAN.Type = "wgan" }, "loss.gan.type"},
		{"zero save steps", func(c *Config) { c.Save.Steps = 0 }, "save.steps"},
		{"unknown template placeholder", func(c *Config) { c.Save.CheckpointDir = "./out/{{run_id}}" }, "save.checkpoint_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			paths := fieldPaths(t, cfg.ValidateConfig())
			if !hasFieldError(paths, tt.wantField) {
				t.Errorf("Expected error for %q, got %v", tt.wantField, paths)
			}
		})
	}
}

func TestValidateConfigMissingSubsections(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{"train dataset", func(c *Config) { c.Dataset.Train = nil }, "dataset.train"},
		{"test dataset", func(c *Config) { c.Dataset.Test = nil }, "dataset.test"},
		{"learning rate", func(c *Config) { c.Training.LearningRate = nil }, "training.learning_rate"},
		{"adam beta", func(c *Config) { c.Training.AdamBeta = nil }, "training.adam_beta"},
		{"pixel loss", func(c *Config) { c.Loss.Pixel = nil }, "loss.pixel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			paths := fieldPaths(t, cfg.ValidateConfig())
			if !hasFieldError(paths, tt.wantField) {
				t.Errorf("Expected error for %q, got %v", tt.wantField, paths)
			}
		})
	}
}

func TestValidateConfigOptionalLossTerms(t *testing.T) {
	cfg := validConfig(t)
	cfg.Loss.Feature = nil
	cfg.Loss.GAN = nil

	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected config without optional loss terms to be valid, got: %v", err)
	}
}

func TestValidateConfigGeometry(t *testing.T) {
	t.Run("gt_size not divisible by scale", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.General.GtSize = 130

		paths := fieldPaths(t, cfg.ValidateConfig())
		if !hasFieldError(paths, "general.gt_size") {
			t.Errorf("Expected error for 'general.gt_size', got %v", paths)
		}
	})

	t.Run("gt_size does not match input_size * scale", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.General.InputSize = 24

		paths := fieldPaths(t, cfg.ValidateConfig())
		if !hasFieldError(paths, "general.gt_size") {
			t.Errorf("Expected error for 'general.gt_size', got %v", paths)
		}
	})
}

func TestValidateConfigAccumulatesErrors(t *testing.T) {
	cfg := validConfig(t)
	cfg.General.BatchSize = 0
	cfg.Training.LearningRate.Rate = 1.5
	cfg.Save.Steps = 0

	paths := fieldPaths(t, cfg.ValidateConfig())
	for _, want := range []string{"general.batch_size", "training.learning_rate.rate", "save.steps"} {
		if !hasFieldError(paths, want) {
			t.Errorf("Expected error for %q, got %v", want, paths)
		}
	}
}

func TestValidateConfigErrorMessage(t *testing.T) {
	cfg := validConfig(t)
	cfg.Training.LearningRate.Rate = 1.5

	err := cfg.ValidateConfig()
	if err == nil {
		t.Fatal("Expected validation error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "validation failed with 1 error(s)") {
		t.Errorf("Unexpected error header: %q", msg)
	}
	if !strings.Contains(msg, "training.learning_rate.rate") {
		t.Errorf("Expected field path in message, got %q", msg)
	}
}
