package updater

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"runtime"

	"github.com/ytget/desktop-app/internal/platform"
)

// Config describes the running build and where its releases live
type Config struct {
	CurrentVersion string
	BinaryName     string
	Policy         VersionPolicy

	// ExecutablePath is replaced on apply; the running binary when empty
	ExecutablePath string

	// GOOS/GOARCH select the asset; runtime values when empty
	GOOS   string
	GOARCH string
}

// Outcome is the result of a check or apply
type Outcome struct {
	Available bool   // Version should replace the running build
	Applied   bool   // the executable was replaced
	Version   string // latest published version, without "v"
	Notes     string
	AssetName string
}

// Client checks for and applies updates from a release source
type Client struct {
	cfg     Config
	source  ReleaseSource
	applier Applier
}

// NewClient creates an update client
func NewClient(cfg Config, source ReleaseSource, applier Applier) *Client {
	if cfg.Policy == "" {
		cfg.Policy = DefaultPolicy
	}
	if cfg.GOOS == "" {
		cfg.GOOS = runtime.GOOS
	}
	if cfg.GOARCH == "" {
		cfg.GOARCH = runtime.GOARCH
	}
	if applier == nil {
		applier = NewSelfUpdateApplier()
	}
	return &Client{cfg: cfg, source: source, applier: applier}
}

// CurrentVersion returns the running build's version
func (c *Client) CurrentVersion() string {
	return c.cfg.CurrentVersion
}

// latest fetches the newest release and its normalized version
func (c *Client) latest(ctx context.Context) (Release, string, error) {
	releases, err := c.source.ListReleases(ctx)
	if err != nil {
		return Release{}, "", err
	}
	if len(releases) == 0 {
		return Release{}, "", ErrNoReleases
	}
	release := releases[0]
	version := NormalizeVersion(release.Version)
	if version == "" {
		return Release{}, "", ErrMalformedRelease
	}
	return release, version, nil
}

// release finds the published release with the given normalized version,
// or the newest one when version is empty
func (c *Client) release(ctx context.Context, version string) (Release, string, error) {
	if version == "" {
		return c.latest(ctx)
	}
	releases, err := c.source.ListReleases(ctx)
	if err != nil {
		return Release{}, "", err
	}
	for _, r := range releases {
		if NormalizeVersion(r.Version) == version {
			return r, version, nil
		}
	}
	return Release{}, "", fmt.Errorf("%w: %s", ErrReleaseNotFound, version)
}

// Check reports whether the newest release should replace the running build
func (c *Client) Check(ctx context.Context) (Outcome, error) {
	release, version, err := c.latest(ctx)
	if err != nil {
		return Outcome{}, &CheckError{Err: err}
	}

	outcome := Outcome{Version: version, Notes: release.Notes}
	if c.cfg.Policy.IsUpdate(c.cfg.CurrentVersion, version) {
		outcome.Available = true
		log.Printf("New version available: %s (running %s)", version, c.cfg.CurrentVersion)
	} else {
		log.Printf("No update: latest %s, running %s", version, c.cfg.CurrentVersion)
	}
	return outcome, nil
}

// Apply downloads the platform asset of the release with the given version
// (the newest when empty) and replaces the executable. When that release is
// not an update, nothing is changed.
func (c *Client) Apply(ctx context.Context, version string, progress ProgressFunc) (Outcome, error) {
	release, version, err := c.release(ctx, version)
	if err != nil {
		return Outcome{}, &ApplyError{Version: version, Err: err}
	}

	outcome := Outcome{Version: version, Notes: release.Notes}
	if !c.cfg.Policy.IsUpdate(c.cfg.CurrentVersion, version) {
		log.Printf("Already up to date: %s", version)
		return outcome, nil
	}
	outcome.Available = true

	fail := func(err error) (Outcome, error) {
		return outcome, &ApplyError{Version: version, Err: err}
	}

	asset, err := SelectAsset(release, c.cfg.BinaryName, c.cfg.GOOS, c.cfg.GOARCH)
	if err != nil {
		return fail(err)
	}
	outcome.AssetName = asset.Name

	target := c.cfg.ExecutablePath
	if target == "" {
		if target, err = platform.ExecutablePath(); err != nil {
			return fail(err)
		}
	}

	log.Printf("Downloading %s (%d bytes)", asset.Name, asset.Size)
	payload, err := c.download(ctx, asset, progress)
	if err != nil {
		return fail(err)
	}

	if sumAsset, ok := checksumAsset(release, asset); ok {
		if err := c.verify(ctx, sumAsset, asset.Name, payload); err != nil {
			return fail(err)
		}
	}

	binary, err := ExtractBinary(asset.Name, payload, c.cfg.BinaryName)
	if err != nil {
		return fail(err)
	}
	if !LooksExecutable(binary) {
		return fail(ErrNotExecutable)
	}

	if err := c.applier.Apply(ctx, bytes.NewReader(binary), target); err != nil {
		return fail(err)
	}

	outcome.Applied = true
	log.Printf("Update applied: %s -> %s (%s)", c.cfg.CurrentVersion, version, target)
	return outcome, nil
}

// download reads the whole asset, reporting progress as bytes arrive
func (c *Client) download(ctx context.Context, asset Asset, progress ProgressFunc) ([]byte, error) {
	rc, err := c.source.DownloadAsset(ctx, asset)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var r io.Reader = rc
	if progress != nil {
		progress(0, asset.Size)
		r = &progressReader{r: rc, total: asset.Size, report: progress}
	}
	return readLimited(r)
}

// verify checks payload against the release's published checksum
func (c *Client) verify(ctx context.Context, sumAsset Asset, assetName string, payload []byte) error {
	rc, err := c.source.DownloadAsset(ctx, sumAsset)
	if err != nil {
		return fmt.Errorf("download checksum: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, 1<<20))
	if err != nil {
		return fmt.Errorf("read checksum: %w", err)
	}
	expected, err := ParseChecksum(data, assetName)
	if err != nil {
		return err
	}
	return VerifyChecksum(payload, expected)
}

type progressReader struct {
	r      io.Reader
	done   int64
	total  int64
	report ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.done += int64(n)
		p.report(p.done, p.total)
	}
	return n, err
}
