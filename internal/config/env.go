package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// envOverrides mirrors the configuration fields that may be overridden from
// the environment. Pointer fields stay nil when the variable is unset.
type envOverrides struct {
	BatchSize     *int     `env:"NEXTSRGAN_BATCH_SIZE"`
	SubName       *string  `env:"NEXTSRGAN_SUB_NAME"`
	PretrainName  *string  `env:"NEXTSRGAN_PRETRAIN_NAME"`
	NIter         *int     `env:"NEXTSRGAN_NITER"`
	InitialLR     *float64 `env:"NEXTSRGAN_INITIAL_LR"`
	SaveSteps     *int     `env:"NEXTSRGAN_SAVE_STEPS"`
	CheckpointDir *string  `env:"NEXTSRGAN_CHECKPOINT_DIR"`
	LogDir        *string  `env:"NEXTSRGAN_LOG_DIR"`
	TrainPath     *string  `env:"NEXTSRGAN_TRAIN_PATH"`
}

// FromEnv collects NEXTSRGAN_* environment variables as an override map
// suitable for WithOverrides. Unset variables are omitted.
func FromEnv() (map[string]interface{}, error) {
	var vars envOverrides
	if err := env.Parse(&vars); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %v", err)
	}

	overrides := map[string]interface{}{}
	if vars.BatchSize != nil {
		overrides["general.batch_size"] = *vars.BatchSize
	}
	if vars.SubName != nil {
		overrides["general.sub_name"] = *vars.SubName
	}
	if vars.PretrainName != nil {
		overrides["general.pretrain_name"] = *vars.PretrainName
	}
	if vars.NIter != nil {
		overrides["training.niter"] = *vars.NIter
	}
	if vars.InitialLR != nil {
		overrides["training.learning_rate.initial"] = *vars.InitialLR
	}
	if vars.SaveSteps != nil {
		overrides["save.steps"] = *vars.SaveSteps
	}
	if vars.CheckpointDir != nil {
		overrides["save.checkpoint_dir"] = *vars.CheckpointDir
	}
	if vars.LogDir != nil {
		overrides["save.log_dir"] = *vars.LogDir
	}
	if vars.TrainPath != nil {
		overrides["dataset.train.path"] = *vars.TrainPath
	}

	return overrides, nil
}
