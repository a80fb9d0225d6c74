// Package artifacts resolves the on-disk locations of training outputs
// (checkpoints and summary logs) from the configured directory templates.
package artifacts

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/MasonSBrown/NeXtSRGAN/internal/config"
	"github.com/MasonSBrown/NeXtSRGAN/internal/utils"
)

// Layout holds the resolved artifact directories for an experiment.
type Layout struct {
	// CheckpointDir is where model checkpoints for this experiment are written.
	CheckpointDir string `json:"checkpoint_dir"`
	// LogDir is where training summaries for this experiment are written.
	LogDir string `json:"log_dir"`
	// PretrainCheckpointDir is where warm-start generator weights are read from.
	PretrainCheckpointDir string `json:"pretrain_checkpoint_dir,omitempty"`
}

// Resolve renders the artifact directory templates for the configured
// experiment. Relative directories resolve against the config file directory.
func Resolve(cfg *config.Config) Layout {
	layout := Layout{
		CheckpointDir: resolveDir(cfg, cfg.Save.CheckpointDir, cfg.General.SubName),
		LogDir:        resolveDir(cfg, cfg.Save.LogDir, cfg.General.SubName),
	}

	if cfg.General.PretrainName != nil && *cfg.General.PretrainName != "" {
		layout.PretrainCheckpointDir = resolveDir(cfg, cfg.Save.CheckpointDir, *cfg.General.PretrainName)
	}

	return layout
}

func resolveDir(cfg *config.Config, template, subName string) string {
	return utils.GetAbsolutePath(renderTemplate(template, subName), cfg.GetConfigDir())
}

func renderTemplate(template, subName string) string {
	if !strings.Contains(template, "{{") {
		return template
	}

	return fasttemplate.New(template, "{{", "}}").ExecuteString(map[string]interface{}{
		config.ARTIFACT_TMPL_SUB_NAME: subName,
	})
}

// CheckpointName returns the checkpoint file name written at the given step.
func CheckpointName(step int) string {
	return fmt.Sprintf("ckpt-%d", step)
}

// CheckpointPath returns the absolute path of the checkpoint written at the
// given step.
func CheckpointPath(cfg *config.Config, step int) string {
	layout := Resolve(cfg)
	return filepath.Join(layout.CheckpointDir, CheckpointName(step))
}
