package updater

import (
	"context"
	"io"
	"time"
)

// Release is a published version with its downloadable assets.
type Release struct {
	Version     string // tag as published, e.g. "v1.2.0"
	Name        string
	Notes       string
	URL         string
	PublishedAt time.Time
	Assets      []Asset
}

// Asset is a single downloadable file attached to a release.
type Asset struct {
	ID   int64
	Name string
	Size int64
	URL  string
}

// ReleaseSource lists releases for one repository, newest first, and opens
// asset downloads.
type ReleaseSource interface {
	ListReleases(ctx context.Context) ([]Release, error)
	DownloadAsset(ctx context.Context, asset Asset) (io.ReadCloser, error)
}

// Applier replaces the executable at targetPath with binary.
type Applier interface {
	Apply(ctx context.Context, binary io.Reader, targetPath string) error
}

// Updater is the check/apply surface used by Controller and the CLI.
// Apply installs the release with the given normalized version; an empty
// version means the newest release.
type Updater interface {
	Check(ctx context.Context) (Outcome, error)
	Apply(ctx context.Context, version string, progress ProgressFunc) (Outcome, error)
}

// ProgressFunc receives downloaded and total bytes; total is 0 when unknown.
type ProgressFunc func(done, total int64)
