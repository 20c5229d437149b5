package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/decker502/neonswitch/pkg/config"
	"github.com/decker502/neonswitch/pkg/transition"
)

// NewCheckCommand returns the check subcommand.
func NewCheckCommand() *cli.Command {
	return &cli.Command{
		Name:   "check",
		Usage:  "Validate a resume config and report values that will fall back to defaults",
		Action: runCheck,
	}
}

func runCheck(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	w := output(cmd)
	modes := cfg.Global.AnimationModes.Normalize()
	fmt.Fprintf(w, "initialMode: %s\n", transition.ParseMode(cfg.Global.InitialMode))
	fmt.Fprintf(w, "animationModes: logo=%s kunai=%s (transition %dms)\n",
		modes.Logo, modes.Kunai, transition.ResolveDurations(modes).Total().Milliseconds())

	warnings := config.ValidateResumeConfig(cfg)
	if len(warnings) == 0 {
		fmt.Fprintln(w, "ok")
		return nil
	}
	for _, warning := range warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	return fmt.Errorf("%d warning(s)", len(warnings))
}
