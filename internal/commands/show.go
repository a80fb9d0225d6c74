package commands

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/MasonSBrown/NeXtSRGAN/internal/config"
	"github.com/MasonSBrown/NeXtSRGAN/internal/log"
)

func CreateShowCommand() *ShowCommand {
	gc := &ShowCommand{
		fs: flag.NewFlagSet("show", flag.ExitOnError),
	}
	gc.fs.StringVar(&gc.format, "format", "yaml", "Output format: yaml, json or toml")
	gc.fs.StringVar(&gc.outputPath, "o", "", "Write output to file instead of stdout")
	gc.fs.BoolVar(&gc.fromEnv, "env", false, "Apply NEXTSRGAN_* environment variable overrides")
	return gc
}

type ShowCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	format     string
	outputPath string
	fromEnv    bool
}

func (g *ShowCommand) Name() string {
	return g.fs.Name()
}

func (g *ShowCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	if g.fromEnv {
		overrides, err := config.FromEnv()
		if err != nil {
			return fmt.Errorf("failed to apply environment overrides: %v", err)
		}
		if len(overrides) > 0 {
			cfg, err := config.WithOverrides(g.cfg, overrides)
			if err != nil {
				return fmt.Errorf("failed to apply environment overrides: %v", err)
			}
			g.cfg = cfg
		}
	}

	return nil
}

func (g *ShowCommand) Run() error {
	output, err := g.serialize()
	if err != nil {
		return err
	}

	if g.outputPath == "" {
		fmt.Print(string(output))
		return nil
	}

	if err := os.WriteFile(g.outputPath, output, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %v", err)
	}
	log.Infof("Configuration written to %s", g.outputPath)
	return nil
}

func (g *ShowCommand) serialize() ([]byte, error) {
	switch g.format {
	case "yaml":
		buf, err := g.cfg.SerializeConfig()
		if err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "json":
		output, err := json.MarshalIndent(g.cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to serialize configuration: %v", err)
		}
		return append(output, '\n'), nil
	case "toml":
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(g.cfg); err != nil {
			return nil, fmt.Errorf("failed to serialize configuration: %v", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: yaml, json, toml)", g.format)
	}
}
