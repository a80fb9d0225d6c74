package config

import (
	"fmt"

	"github.com/MasonSBrown/NeXtSRGAN/internal/log"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	validationErrors = append(validationErrors, c.validateGeneral()...)
	validationErrors = append(validationErrors, c.validateNetwork()...)
	validationErrors = append(validationErrors, c.validateDataset()...)
	validationErrors = append(validationErrors, c.validateTraining()...)
	validationErrors = append(validationErrors, c.validateLoss()...)
	validationErrors = append(validationErrors, c.validateSave()...)

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validateGeneral() ValidationErrors {
	var validationErrors ValidationErrors

	if c.General == nil {
		return ValidationErrors{{
			FieldPath: "general",
			Message:   "configuration must contain 'general' section",
		}}
	}

	if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general")...)
	}

	// Patch geometry must be consistent with the upsampling factor
	g := c.General
	if g.Scale > 0 && g.GtSize > 0 {
		if g.GtSize%g.Scale != 0 {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: "general.gt_size",
				Message:   fmt.Sprintf("must be divisible by scale (%d is not divisible by %d)", g.GtSize, g.Scale),
			})
		}
		if g.InputSize > 0 && g.GtSize != g.InputSize*g.Scale {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: "general.gt_size",
				Message:   fmt.Sprintf("must equal input_size * scale (%d != %d * %d)", g.GtSize, g.InputSize, g.Scale),
			})
		}
	}

	return validationErrors
}

func (c *Config) validateNetwork() ValidationErrors {
	var validationErrors ValidationErrors

	if c.Network == nil {
		return ValidationErrors{{
			FieldPath: "network",
			Message:   "configuration must contain 'network' section",
		}}
	}

	if err := validate.Struct(c.Network); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "network")...)
	}

	return validationErrors
}

func (c *Config) validateDataset() ValidationErrors {
	var validationErrors ValidationErrors

	if c.Dataset == nil {
		return ValidationErrors{{
			FieldPath: "dataset",
			Message:   "configuration must contain 'dataset' section",
		}}
	}

	if c.Dataset.Train == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "dataset.train",
			Message:   "train dataset configuration is required",
		})
	} else if err := validate.Struct(c.Dataset.Train); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "dataset.train")...)
	}

	if c.Dataset.Test == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "dataset.test",
			Message:   "test dataset configuration is required",
		})
	} else if err := validate.Struct(c.Dataset.Test); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "dataset.test")...)
	}

	return validationErrors
}

func (c *Config) validateTraining() ValidationErrors {
	var validationErrors ValidationErrors

	if c.Training == nil {
		return ValidationErrors{{
			FieldPath: "training",
			Message:   "configuration must contain 'training' section",
		}}
	}

	if err := validate.Struct(c.Training); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "training")...)
	}

	if c.Training.LearningRate == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "training.learning_rate",
			Message:   "learning rate schedule is required",
		})
	} else {
		if err := validate.Struct(c.Training.LearningRate); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "training.learning_rate")...)
		}

		// A decay boundary at or beyond niter never fires
		lr := c.Training.LearningRate
		if c.Training.NIter > 0 && len(lr.Steps) > 0 && lr.Steps[len(lr.Steps)-1] >= c.Training.NIter {
			log.Warnf("Last decay step %d is not below niter %d and will never fire", lr.Steps[len(lr.Steps)-1], c.Training.NIter)
		}
	}

	if c.Training.AdamBeta == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "training.adam_beta",
			Message:   "adam beta configuration is required",
		})
	} else if err := validate.Struct(c.Training.AdamBeta); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "training.adam_beta")...)
	}

	return validationErrors
}

func (c *Config) validateLoss() ValidationErrors {
	var validationErrors ValidationErrors

	if c.Loss == nil {
		return ValidationErrors{{
			FieldPath: "loss",
			Message:   "configuration must contain 'loss' section",
		}}
	}

	if c.Loss.Pixel == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "loss.pixel",
			Message:   "pixel loss term is required",
		})
	} else if err := validate.Struct(c.Loss.Pixel); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "loss.pixel")...)
	}

	if c.Loss.Feature != nil {
		if err := validate.Struct(c.Loss.Feature); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "loss.feature")...)
		}
	}

	if c.Loss.GAN != nil {
		if err := validate.Struct(c.Loss.GAN); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "loss.gan")...)
		}
	}

	return validationErrors
}

func (c *Config) validateSave() ValidationErrors {
	var validationErrors ValidationErrors

	if c.Save == nil {
		return ValidationErrors{{
			FieldPath: "save",
			Message:   "configuration must contain 'save' section",
		}}
	}

	// Prefill artifact directory templates before validating them
	if c.Save.CheckpointDir == "" {
		c.Save.CheckpointDir = DefaultCheckpointDirTemplate
	}
	if c.Save.LogDir == "" {
		c.Save.LogDir = DefaultLogDirTemplate
	}

	if err := validate.Struct(c.Save); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "save")...)
	}

	return validationErrors
}
