package ui

import (
	"context"

	"github.com/ytget/desktop-app/internal/config"
	"github.com/ytget/desktop-app/internal/updater"
)

// SettingsUpdater builds a GitHub update client from the current settings on
// every call, so edits on the Settings page apply to the next check.
type SettingsUpdater struct {
	settings *config.Settings
	version  string
	opts     []updater.GitHubOption
}

// NewSettingsUpdater creates an updater for the running version
func NewSettingsUpdater(settings *config.Settings, version string, opts ...updater.GitHubOption) *SettingsUpdater {
	return &SettingsUpdater{settings: settings, version: version, opts: opts}
}

func (s *SettingsUpdater) client() (*updater.Client, error) {
	src := s.settings.GetUpdateSource()
	cfg := updater.Config{
		CurrentVersion: s.version,
		BinaryName:     src.Binary,
		Policy:         s.settings.GetVersionPolicy(),
	}
	return updater.NewGitHubClient(cfg, src.Owner, src.Repo, s.opts...)
}

// Check implements updater.Updater
func (s *SettingsUpdater) Check(ctx context.Context) (updater.Outcome, error) {
	client, err := s.client()
	if err != nil {
		return updater.Outcome{}, &updater.CheckError{Err: err}
	}
	return client.Check(ctx)
}

// Apply implements updater.Updater
func (s *SettingsUpdater) Apply(ctx context.Context, version string, progress updater.ProgressFunc) (updater.Outcome, error) {
	client, err := s.client()
	if err != nil {
		return updater.Outcome{}, &updater.ApplyError{Version: version, Err: err}
	}
	return client.Apply(ctx, version, progress)
}
