package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/decker502/neonswitch/pkg/config"
)

// NewProfilesCommand returns the profiles subcommand.
func NewProfilesCommand() *cli.Command {
	return &cli.Command{
		Name:  "profiles",
		Usage: "List built-in profiles",
		Action: func(_ context.Context, cmd *cli.Command) error {
			names, err := config.ListEmbeddedProfiles()
			if err != nil {
				return fmt.Errorf("list profiles: %w", err)
			}

			w := output(cmd)
			for _, name := range names {
				if name == config.DefaultProfile {
					fmt.Fprintf(w, "%s (default)\n", name)
					continue
				}
				fmt.Fprintln(w, name)
			}
			return nil
		},
	}
}
