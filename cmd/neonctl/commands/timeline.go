package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/decker502/neonswitch/pkg/config"
	"github.com/decker502/neonswitch/pkg/transition"
)

// NewTimelineCommand returns the timeline subcommand.
func NewTimelineCommand() *cli.Command {
	return &cli.Command{
		Name:  "timeline",
		Usage: "Dry-run one transition and print every view call with its offset",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "logo",
				Usage: "Override global.animationModes.logo (pop, morph)",
			},
			&cli.StringFlag{
				Name:  "kunai",
				Usage: "Override global.animationModes.kunai (fade, drop)",
			},
			&cli.BoolFlag{
				Name:  "reverse",
				Usage: "Print the neon → normal transition instead",
			},
		},
		Action: runTimeline,
	}
}

func runTimeline(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	modes := cfg.Global.AnimationModes
	if v := cmd.String("logo"); v != "" {
		modes.Logo = config.LogoVariant(v)
	}
	if v := cmd.String("kunai"); v != "" {
		modes.Kunai = config.KunaiVariant(v)
	}

	report := DryRun(modes, cmd.Bool("reverse"))
	_, err = fmt.Fprint(output(cmd), report)
	return err
}

// DryRun 在离线调度器上执行一次转场，返回可读的调用轨迹
//
// 参数：
//   - modes: 动画模式（reverse 时被忽略）
//   - reverse: true 时从 neon 出发执行返回转场
//
// 返回：
//   - string: 标题行 + 每次视觉调用一行
func DryRun(modes config.AnimationModes, reverse bool) string {
	scheduler := transition.NewScheduler()
	recorder := transition.NewRecordingPresenter(scheduler)

	from := transition.ModeNormal
	if reverse {
		from = transition.ModeNeon
	}
	controller := transition.NewModeController(from, transition.StaticModes(modes), recorder, scheduler)

	var committedAt string
	controller.SetModeChangedCallback(func(to transition.Mode) {
		committedAt = fmt.Sprintf("%s @ %dms", to, scheduler.Now().Milliseconds())
	})

	recorder.Reset()
	controller.RequestToggle()
	scheduler.RunUntilIdle()

	var header string
	if reverse {
		header = fmt.Sprintf("%s (committed %s)\n", transition.TimelineReverse, committedAt)
	} else {
		normalized := modes.Normalize()
		header = fmt.Sprintf("%s logo=%s kunai=%s total=%dms (committed %s)\n",
			transition.TimelineForward, normalized.Logo, normalized.Kunai,
			transition.ResolveDurations(normalized).Total().Milliseconds(), committedAt)
	}
	return header + recorder.String()
}
