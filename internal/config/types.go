package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MasonSBrown/NeXtSRGAN/internal/utils"
)

type Config struct {
	// General holds experiment identity and sample geometry.
	General *GeneralConfig `yaml:"general" json:"general" toml:"general"`
	// Network holds generator architecture hyperparameters.
	Network *NetworkConfig `yaml:"network" json:"network" toml:"network"`
	// Dataset holds train and test dataset locations.
	Dataset *DatasetConfig `yaml:"dataset" json:"dataset" toml:"dataset"`
	// Training holds the iteration count, learning-rate schedule and optimizer settings.
	Training *TrainingConfig `yaml:"training" json:"training" toml:"training"`
	// Loss holds the per-term loss weighting.
	Loss *LossConfig `yaml:"loss" json:"loss" toml:"loss"`
	// Save holds the checkpoint cadence and artifact directories.
	Save *SaveConfig `yaml:"save" json:"save" toml:"save"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// BatchSize is the number of LR/HR patch pairs per training batch.
	BatchSize int `yaml:"batch_size" json:"batch_size" toml:"batch_size" validate:"required,gt=0"`
	// InputSize is the low-resolution patch edge length in pixels.
	InputSize int `yaml:"input_size" json:"input_size" toml:"input_size" validate:"required,gt=0"`
	// GtSize is the ground-truth patch edge length in pixels. Must equal input_size * scale.
	GtSize int `yaml:"gt_size" json:"gt_size" toml:"gt_size" validate:"required,gt=0"`
	// ChSize is the image channel count (1 = grayscale, 3 = RGB, 4 = RGBA).
	ChSize int `yaml:"ch_size" json:"ch_size" toml:"ch_size" validate:"required,oneof=1 3 4"`
	// Scale is the upsampling factor between LR input and HR ground truth.
	Scale int `yaml:"scale" json:"scale" toml:"scale" validate:"required,gt=0"`
	// SubName is the experiment name. Checkpoints and logs are stored under it.
	SubName string `yaml:"sub_name" json:"sub_name" toml:"sub_name" validate:"required,experiment_name"`
	// PretrainName is the experiment to warm-start generator weights from (null = train from scratch).
	PretrainName *string `yaml:"pretrain_name" json:"pretrain_name" toml:"pretrain_name" validate:"omitempty,experiment_name"`
}

type NetworkConfig struct {
	// NF is the feature channel width of the generator.
	NF int `yaml:"nf" json:"nf" toml:"nf" validate:"required,gt=0"`
	// NB is the number of residual-in-residual dense blocks in the generator trunk.
	NB int `yaml:"nb" json:"nb" toml:"nb" validate:"required,gt=0"`
}

type DatasetConfig struct {
	// Train describes the training split.
	Train *TrainDatasetConfig `yaml:"train" json:"train" toml:"train" validate:"-"`
	// Test describes the benchmark splits used for evaluation.
	Test *TestDatasetConfig `yaml:"test" json:"test" toml:"test" validate:"-"`
}

type TrainDatasetConfig struct {
	// Path is the training dataset file. Relative paths resolve against the config file directory.
	Path string `yaml:"path" json:"path" toml:"path" validate:"required"`
	// NumSamples is the number of samples in the training dataset.
	NumSamples int `yaml:"num_samples" json:"num_samples" toml:"num_samples" validate:"gte=0"`
	// UsingBin indicates the dataset stores pre-decoded binary images.
	UsingBin bool `yaml:"using_bin" json:"using_bin" toml:"using_bin"`
	// UsingFlip enables random horizontal flip augmentation.
	UsingFlip bool `yaml:"using_flip" json:"using_flip" toml:"using_flip"`
	// UsingRot enables random rotation augmentation.
	UsingRot bool `yaml:"using_rot" json:"using_rot" toml:"using_rot"`
}

type TestDatasetConfig struct {
	// Set5Path is the Set5 benchmark directory.
	Set5Path string `yaml:"set5_path" json:"set5_path" toml:"set5_path" validate:"required"`
	// Set14Path is the Set14 benchmark directory.
	Set14Path string `yaml:"set14_path" json:"set14_path" toml:"set14_path" validate:"required"`
}

type TrainingConfig struct {
	// NIter is the total number of training iterations.
	NIter int `yaml:"niter" json:"niter" toml:"niter" validate:"required,gt=0"`
	// LearningRate is the multi-step decay schedule shared by both optimizers.
	LearningRate *LearningRateSchedule `yaml:"learning_rate" json:"learning_rate" toml:"learning_rate" validate:"-"`
	// AdamBeta holds the Adam optimizer moment decay rates.
	AdamBeta *AdamBetaConfig `yaml:"adam_beta" json:"adam_beta" toml:"adam_beta" validate:"-"`
}

type LearningRateSchedule struct {
	// Initial is the learning rate before the first decay boundary.
	Initial float64 `yaml:"initial" json:"initial" toml:"initial" validate:"required,gt=0"`
	// Steps are the iterations at which the learning rate decays. Must be strictly increasing.
	Steps []int `yaml:"steps" json:"steps" toml:"steps" validate:"required,min=1,increasing,dive,gt=0"`
	// Rate is the multiplicative decay factor applied at each step.
	Rate float64 `yaml:"rate" json:"rate" toml:"rate" validate:"required,gt=0,lte=1"`
}

type AdamBetaConfig struct {
	// Beta1 is the exponential decay rate for the first moment estimates.
	Beta1 float64 `yaml:"beta1" json:"beta1" toml:"beta1" validate:"required,gt=0,lt=1"`
	// Beta2 is the exponential decay rate for the second moment estimates.
	Beta2 float64 `yaml:"beta2" json:"beta2" toml:"beta2" validate:"required,gt=0,lt=1"`
}

type LossConfig struct {
	// Pixel is the pixel-wise reconstruction loss term.
	Pixel *LossTermConfig `yaml:"pixel" json:"pixel" toml:"pixel" validate:"-"`
	// Feature is the perceptual loss term computed in feature space (optional).
	Feature *LossTermConfig `yaml:"feature,omitempty" json:"feature,omitempty" toml:"feature,omitempty" validate:"-"`
	// GAN is the adversarial loss term (optional, absent for PSNR pretraining).
	GAN *GANLossConfig `yaml:"gan,omitempty" json:"gan,omitempty" toml:"gan,omitempty" validate:"-"`
}

type LossTermConfig struct {
	// Weight is the scalar multiplier of this term in the total loss (0 disables the term).
	Weight float64 `yaml:"weight" json:"weight" toml:"weight" validate:"gte=0"`
	// Criterion is the distance function ("l1" = mean absolute error, "l2" = mean squared error).
	Criterion string `yaml:"criterion" json:"criterion" toml:"criterion" validate:"required,oneof=l1 l2"`
}

type GANLossConfig struct {
	// Weight is the scalar multiplier of the adversarial term in the total loss.
	Weight float64 `yaml:"weight" json:"weight" toml:"weight" validate:"gte=0"`
	// Type selects the adversarial formulation ("gan" = standard, "ragan" = relativistic average).
	Type string `yaml:"type" json:"type" toml:"type" validate:"required,oneof=gan ragan"`
}

type SaveConfig struct {
	// Steps is the checkpoint interval in training iterations.
	Steps int `yaml:"steps" json:"steps" toml:"steps" validate:"required,gt=0"`
	// CheckpointDir is the checkpoint directory template. Supports {{sub_name}}.
	CheckpointDir string `yaml:"checkpoint_dir,omitempty" json:"checkpoint_dir,omitempty" toml:"checkpoint_dir,omitempty" validate:"required,artifact_template"`
	// LogDir is the training summary directory template. Supports {{sub_name}}.
	LogDir string `yaml:"log_dir,omitempty" json:"log_dir,omitempty" toml:"log_dir,omitempty" validate:"required,artifact_template"`
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

func (c *Config) GetConfigPath() string {
	return c._absConfigFilePath
}

func (d *TrainDatasetConfig) GetAbsolutePath(cfg *Config) string {
	return utils.GetAbsolutePath(d.Path, cfg.GetConfigDir())
}

func (d *TrainDatasetConfig) GetAbsolutePathAndCheckExists(cfg *Config) (string, error) {
	path := d.GetAbsolutePath(cfg)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("train dataset file does not exist: %s", path)
	}
	return path, nil
}

func (d *TestDatasetConfig) GetAbsSet5Path(cfg *Config) string {
	return utils.GetAbsolutePath(d.Set5Path, cfg.GetConfigDir())
}

func (d *TestDatasetConfig) GetAbsSet14Path(cfg *Config) string {
	return utils.GetAbsolutePath(d.Set14Path, cfg.GetConfigDir())
}
