// Package commands neonctl 的子命令
package commands

import (
	"context"
	"io"
	"log"

	"github.com/urfave/cli/v3"

	"github.com/decker502/neonswitch/pkg/config"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "neonctl",
		Usage: "Inspect and run the dual-mode resume outside the window",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a resume config file (.yaml, .yml, .json, .jsonc)",
			},
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "Built-in profile to use when --config is empty",
				Value:   config.DefaultProfile,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if !cmd.Bool("verbose") {
				log.SetOutput(io.Discard)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			NewTimelineCommand(),
			NewCheckCommand(),
			NewProfilesCommand(),
			NewTUICommand(),
		},
	}
}

// loadConfig 按全局 --config / --profile 加载配置
func loadConfig(cmd *cli.Command) (*config.ResumeConfig, error) {
	return config.Load(cmd.String("config"), cmd.String("profile"))
}

// output 返回根命令的输出流，测试中可替换
func output(cmd *cli.Command) io.Writer {
	return cmd.Root().Writer
}
