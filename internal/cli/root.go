package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Exit codes
const (
	exitSuccess = 0
	exitError   = 1
)

// BuildInfo carries values injected at build time
type BuildInfo struct {
	Version string
	Owner   string
	Repo    string
	Binary  string
}

// Repository returns the owner/repo slug, or an empty string when unset
func (b BuildInfo) Repository() string {
	if b.Owner == "" || b.Repo == "" {
		return ""
	}
	return b.Owner + "/" + b.Repo
}

// NewRootCommand builds the command tree. runGUI is invoked when no
// subcommand is given.
func NewRootCommand(build BuildInfo, runGUI func() error) *cobra.Command {
	root := &cobra.Command{
		Use:           build.Binary,
		Short:         "Desktop application with spreadsheet export and self-update",
		Version:       build.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI()
		},
	}
	if root.Use == "" {
		root.Use = "desktop-app"
	}

	root.AddCommand(newVersionCommand(build))
	root.AddCommand(newUpdateCommand(build))
	return root
}

// Execute runs the command and returns the process exit code
func Execute(root *cobra.Command, stderr io.Writer) int {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}
	return exitSuccess
}
