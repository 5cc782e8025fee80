package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cmd.Root().Name(), build.Version)
			if repo := build.Repository(); repo != "" {
				fmt.Fprintln(out, "releases:", repo)
			}
		},
	}
}
