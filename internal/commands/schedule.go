package commands

import (
	"flag"
	"fmt"

	"github.com/MasonSBrown/NeXtSRGAN/internal/config"
	"github.com/MasonSBrown/NeXtSRGAN/internal/schedule"
)

func CreateScheduleCommand() *ScheduleCommand {
	gc := &ScheduleCommand{
		fs: flag.NewFlagSet("schedule", flag.ExitOnError),
	}
	gc.fs.IntVar(&gc.step, "step", -1, "Print the learning rate at this step instead of the full schedule")
	return gc
}

type ScheduleCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	step int
}

func (g *ScheduleCommand) Name() string {
	return g.fs.Name()
}

func (g *ScheduleCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *ScheduleCommand) Run() error {
	sched := schedule.FromConfig(g.cfg.Training.LearningRate)

	if g.step >= 0 {
		fmt.Printf("step %d: lr=%.3e\n", g.step, sched.LRAt(g.step))
		return nil
	}

	for _, seg := range sched.Segments(g.cfg.Training.NIter) {
		fmt.Printf("[%7d, %7d) lr=%.3e\n", seg.From, seg.To, seg.LR)
	}
	return nil
}
