package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/desktop-app/internal/updater"
)

// EnvGitHubToken is read when --token is not given
const EnvGitHubToken = "GITHUB_TOKEN"

// updateFlags are shared by the update subcommands
type updateFlags struct {
	owner  string
	repo   string
	binary string
	policy string
	token  string
	apiURL string
	target string
}

func newUpdateCommand(build BuildInfo) *cobra.Command {
	flags := &updateFlags{}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Check for and apply application updates",
	}
	cmd.PersistentFlags().StringVar(&flags.owner, "owner", build.Owner, "release repository owner")
	cmd.PersistentFlags().StringVar(&flags.repo, "repo", build.Repo, "release repository name")
	cmd.PersistentFlags().StringVar(&flags.binary, "binary", build.Binary, "binary name inside release assets")
	cmd.PersistentFlags().StringVar(&flags.policy, "policy", string(updater.DefaultPolicy), "version policy (differs, newer)")
	cmd.PersistentFlags().StringVar(&flags.token, "token", "", "GitHub token (default: $"+EnvGitHubToken+")")
	cmd.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "GitHub API base URL")
	cmd.PersistentFlags().StringVar(&flags.target, "target", "", "executable to replace (default: this binary)")
	_ = cmd.PersistentFlags().MarkHidden("api-url")
	_ = cmd.PersistentFlags().MarkHidden("target")

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Report whether a new release is available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.client(build.Version)
			if err != nil {
				return err
			}
			outcome, err := client.Check(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if outcome.Available {
				fmt.Fprintf(out, "Update available: %s (running %s)\n", outcome.Version, build.Version)
			} else {
				fmt.Fprintf(out, "Up to date: %s\n", build.Version)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "apply",
		Short: "Download the newest release and replace this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.client(build.Version)
			if err != nil {
				return err
			}
			errOut := cmd.ErrOrStderr()
			outcome, err := client.Apply(cmd.Context(), "", func(done, total int64) {
				if total > 0 {
					fmt.Fprintf(errOut, "\rDownloading... %d%%", done*100/total)
				}
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !outcome.Applied {
				fmt.Fprintf(out, "Up to date: %s\n", build.Version)
				return nil
			}
			fmt.Fprintf(out, "\nUpdated to %s (%s). Restart to run the new version.\n", outcome.Version, outcome.AssetName)
			return nil
		},
	})

	return cmd
}

// client builds an update client from the flags
func (f *updateFlags) client(version string) (*updater.Client, error) {
	policy, err := updater.ParsePolicy(f.policy)
	if err != nil {
		return nil, err
	}

	token := f.token
	if token == "" {
		token = os.Getenv(EnvGitHubToken)
	}
	var opts []updater.GitHubOption
	if token != "" {
		opts = append(opts, updater.WithToken(token))
	}
	if f.apiURL != "" {
		opts = append(opts, updater.WithBaseURL(f.apiURL))
	}

	cfg := updater.Config{
		CurrentVersion: version,
		BinaryName:     f.binary,
		Policy:         policy,
		ExecutablePath: f.target,
	}
	return updater.NewGitHubClient(cfg, f.owner, f.repo, opts...)
}
