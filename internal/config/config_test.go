package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validConfigDocument = `# NeXtSRGAN training configuration
general:
  batch_size: 16
  input_size: 32
  gt_size: 128
  ch_size: 3
  scale: 4
  sub_name: 'nextsrgan'
  pretrain_name: 'psnr_pretrain'

network:
  nf: 64
  nb: 16

dataset:
  train:
    path: './data/DIV2K800_sub_bin.tfrecord'
    num_samples: 32208
    using_bin: true
    using_flip: true
    using_rot: true
  test:
    set5_path: './data/Set5'
    set14_path: './data/Set14'

training:
  niter: 200000
  learning_rate:
    initial: 2e-4
    steps: [40000, 80000, 120000, 160000]
    rate: 0.5
  adam_beta:
    beta1: 0.9
    beta2: 0.99

loss:
  pixel:
    weight: 1e-2
    criterion: l1
  feature:
    weight: 1.0
    criterion: l1
  gan:
    weight: 5e-3
    type: ragan

save:
  steps: 5000
`

func createTempConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "train_nextsrgan.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigNonExistentFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err == nil {
		t.Fatal("Expected error for non-existent file")
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Expected NotFoundError, got %T: %v", err, err)
	}
}

func TestLoadConfigMalformedDocument(t *testing.T) {
	path := createTempConfig(t, "general: [\n")

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("Expected error for malformed document")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("Expected ParseError, got %T: %v", err, err)
	}
}

func TestLoadConfigEmptyDocument(t *testing.T) {
	path := createTempConfig(t, "# nothing but comments\n")

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("Expected error for empty document")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("Expected ParseError, got %T: %v", err, err)
	}
}

func TestLoadConfigValid(t *testing.T) {
	path := createTempConfig(t, validConfigDocument)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.General.BatchSize != 16 {
		t.Errorf("Expected batch_size 16, got %d", cfg.General.BatchSize)
	}
	if cfg.General.Scale != 4 {
		t.Errorf("Expected scale 4, got %d", cfg.General.Scale)
	}
	if cfg.General.PretrainName == nil || *cfg.General.PretrainName != "psnr_pretrain" {
		t.Errorf("Expected pretrain_name 'psnr_pretrain', got %v", cfg.General.PretrainName)
	}
	if cfg.Network.NF != 64 || cfg.Network.NB != 16 {
		t.Errorf("Expected nf=64 nb=16, got nf=%d nb=%d", cfg.Network.NF, cfg.Network.NB)
	}
	if cfg.Dataset.Train.NumSamples != 32208 {
		t.Errorf("Expected num_samples 32208, got %d", cfg.Dataset.Train.NumSamples)
	}
	if !cfg.Dataset.Train.UsingBin {
		t.Error("Expected using_bin to be true")
	}
	if cfg.Training.NIter != 200000 {
		t.Errorf("Expected niter 200000, got %d", cfg.Training.NIter)
	}
	if cfg.Training.LearningRate.Initial != 2e-4 {
		t.Errorf("Expected initial learning rate 2e-4, got %g", cfg.Training.LearningRate.Initial)
	}
	expectedSteps := []int{40000, 80000, 120000, 160000}
	if len(cfg.Training.LearningRate.Steps) != len(expectedSteps) {
		t.Fatalf("Expected %d decay steps, got %d", len(expectedSteps), len(cfg.Training.LearningRate.Steps))
	}
	for i, step := range expectedSteps {
		if cfg.Training.LearningRate.Steps[i] != step {
			t.Errorf("Expected step %d at index %d, got %d", step, i, cfg.Training.LearningRate.Steps[i])
		}
	}
	if cfg.Loss.GAN.Type != "ragan" {
		t.Errorf("Expected gan type 'ragan', got %q", cfg.Loss.GAN.Type)
	}
	if cfg.Save.Steps != 5000 {
		t.Errorf("Expected save steps 5000, got %d", cfg.Save.Steps)
	}

	if !filepath.IsAbs(cfg.GetConfigPath()) {
		t.Errorf("Expected absolute config path, got %q", cfg.GetConfigPath())
	}
	if cfg.GetConfigDir() != filepath.Dir(path) {
		t.Errorf("Expected config dir %q, got %q", filepath.Dir(path), cfg.GetConfigDir())
	}
}

func TestLoadConfigUnknownField(t *testing.T) {
	doc := strings.Replace(validConfigDocument, "batch_size: 16", "batch_sizee: 16", 1)
	path := createTempConfig(t, doc)

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("Expected error for unknown field")
	}

	var validationErrs ValidationErrors
	if !errors.As(err, &validationErrs) {
		t.Fatalf("Expected ValidationErrors, got %T: %v", err, err)
	}

	found := false
	for _, ve := range validationErrs {
		if ve.FieldPath == "general.batch_sizee" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected error for 'general.batch_sizee', got %v", validationErrs)
	}
}

func TestLoadConfigTypeMismatch(t *testing.T) {
	doc := strings.Replace(validConfigDocument, "batch_size: 16", "batch_size: sixteen", 1)
	path := createTempConfig(t, doc)

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("Expected error for mistyped field")
	}

	var validationErrs ValidationErrors
	if !errors.As(err, &validationErrs) {
		t.Fatalf("Expected ValidationErrors, got %T: %v", err, err)
	}
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := createTempConfig(t, validConfigDocument)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Save.CheckpointDir != DefaultCheckpointDirTemplate {
		t.Errorf("Expected default checkpoint_dir %q, got %q", DefaultCheckpointDirTemplate, cfg.Save.CheckpointDir)
	}
	if cfg.Save.LogDir != DefaultLogDirTemplate {
		t.Errorf("Expected default log_dir %q, got %q", DefaultLogDirTemplate, cfg.Save.LogDir)
	}
}

func TestLoadConfigRelativePath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "train.yml"), []byte(validConfigDocument), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	defer func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	}()

	cfg, err := LoadConfig("train.yml")
	if err != nil {
		t.Fatalf("Failed to load config via relative path: %v", err)
	}
	if !filepath.IsAbs(cfg.GetConfigPath()) {
		t.Errorf("Expected absolute config path, got %q", cfg.GetConfigPath())
	}
}

func TestParseConfigStream(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(validConfigDocument))
	if err != nil {
		t.Fatalf("Failed to parse config from stream: %v", err)
	}

	if cfg.General.SubName != "nextsrgan" {
		t.Errorf("Expected sub_name 'nextsrgan', got %q", cfg.General.SubName)
	}
	if cfg.GetConfigPath() != "" {
		t.Errorf("Expected empty config path for stream, got %q", cfg.GetConfigPath())
	}
}

func TestParseConfigStreamInvalid(t *testing.T) {
	doc := strings.Replace(validConfigDocument, "rate: 0.5", "rate: 1.5", 1)

	_, err := ParseConfig(strings.NewReader(doc))
	if err == nil {
		t.Fatal("Expected validation error for rate > 1")
	}

	var validationErrs ValidationErrors
	if !errors.As(err, &validationErrs) {
		t.Fatalf("Expected ValidationErrors, got %T: %v", err, err)
	}
	found := false
	for _, ve := range validationErrs {
		if ve.FieldPath == "training.learning_rate.rate" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected error for 'training.learning_rate.rate', got %v", validationErrs)
	}
}

func TestSerializeConfigRoundTrip(t *testing.T) {
	path := createTempConfig(t, validConfigDocument)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	buf, err := cfg.SerializeConfig()
	if err != nil {
		t.Fatalf("Failed to serialize config: %v", err)
	}

	reparsed, err := ParseConfig(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("Failed to reparse serialized config: %v", err)
	}

	equal, err := cfg.Equal(reparsed)
	if err != nil {
		t.Fatalf("Failed to compare configs: %v", err)
	}
	if !equal {
		t.Error("Round-tripped config differs from the original")
	}
}

func TestLoadConfigIdempotent(t *testing.T) {
	path := createTempConfig(t, validConfigDocument)

	first, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	second, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config again: %v", err)
	}

	equal, err := first.Equal(second)
	if err != nil {
		t.Fatalf("Failed to compare configs: %v", err)
	}
	if !equal {
		t.Error("Loading the same file twice produced different configs")
	}
}

func TestLoadExampleConfig(t *testing.T) {
	cfg, err := LoadConfig("../../configs/train_nextsrgan.yml")
	if err != nil {
		t.Fatalf("Failed to load example config: %v", err)
	}

	if cfg.General.BatchSize != 16 {
		t.Errorf("Expected batch_size 16, got %d", cfg.General.BatchSize)
	}
	if cfg.General.Scale != 4 {
		t.Errorf("Expected scale 4, got %d", cfg.General.Scale)
	}
	if cfg.Training.NIter != 200000 {
		t.Errorf("Expected niter 200000, got %d", cfg.Training.NIter)
	}
	if len(cfg.Training.LearningRate.Steps) != 4 || cfg.Training.LearningRate.Steps[0] != 40000 {
		t.Errorf("Unexpected decay steps: %v", cfg.Training.LearningRate.Steps)
	}
	if cfg.Save.Steps != 5000 {
		t.Errorf("Expected save steps 5000, got %d", cfg.Save.Steps)
	}
}

func TestLoadExamplePSNRConfig(t *testing.T) {
	cfg, err := LoadConfig("../../configs/train_psnr.yml")
	if err != nil {
		t.Fatalf("Failed to load PSNR example config: %v", err)
	}

	if cfg.General.PretrainName != nil {
		t.Errorf("Expected no pretrain_name, got %q", *cfg.General.PretrainName)
	}
	if cfg.Loss.Feature != nil {
		t.Error("Expected no feature loss term in PSNR config")
	}
	if cfg.Loss.GAN != nil {
		t.Error("Expected no gan loss term in PSNR config")
	}
	if cfg.Loss.Pixel == nil || cfg.Loss.Pixel.Weight != 1.0 {
		t.Error("Expected pixel loss with weight 1.0 in PSNR config")
	}
}
