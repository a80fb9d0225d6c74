package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MasonSBrown/NeXtSRGAN/internal/config"
	"github.com/MasonSBrown/NeXtSRGAN/internal/log"
)

func CreateValidateCommand() *ValidateCommand {
	gc := &ValidateCommand{
		fs: flag.NewFlagSet("validate", flag.ExitOnError),
	}
	gc.fs.BoolVar(&gc.checkPaths, "check-paths", false, "Also check that dataset paths exist on disk")
	return gc
}

type ValidateCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	checkPaths bool
}

func (g *ValidateCommand) Name() string {
	return g.fs.Name()
}

func (g *ValidateCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	return g.fs.Parse(args)
}

func (g *ValidateCommand) Run() error {
	cfg, err := config.LoadConfig(g.ctx.ConfigPath)
	if err != nil {
		return err
	}

	if g.checkPaths {
		if _, err := cfg.Dataset.Train.GetAbsolutePathAndCheckExists(cfg); err != nil {
			return err
		}
		for _, dir := range []string{cfg.Dataset.Test.GetAbsSet5Path(cfg), cfg.Dataset.Test.GetAbsSet14Path(cfg)} {
			if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("test dataset directory does not exist: %s", dir)
			}
		}
	}

	log.Infof("Configuration %s is valid", cfg.GetConfigPath())
	return nil
}
