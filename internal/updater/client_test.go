package updater

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(current string) Config {
	return Config{
		CurrentVersion: current,
		BinaryName:     "desktop-app",
		ExecutablePath: "/opt/desktop-app/desktop-app",
		GOOS:           "linux",
		GOARCH:         "amd64",
	}
}

func TestCheck_Scenarios(t *testing.T) {
	tests := []struct {
		name          string
		current       string
		latest        string
		wantAvailable bool
	}{
		{"same version", "1.0.0", "1.0.0", false},
		{"same version with tag prefix", "1.0.0", "v1.0.0", false},
		{"newer version", "1.0.0", "1.2.0", true},
		// inequality, not ordering: an older release is reported as available
		{"older version", "1.0.0", "0.9.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{releases: []Release{release(tt.latest), release("0.1.0")}}
			client := NewClient(testConfig(tt.current), src, &fakeApplier{})

			outcome, err := client.Check(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, outcome.Available)
			assert.Equal(t, NormalizeVersion(tt.latest), outcome.Version)
			assert.False(t, outcome.Applied)
		})
	}
}

func TestCheck_NewerPolicy(t *testing.T) {
	cfg := testConfig("1.0.0")
	cfg.Policy = PolicyNewer
	client := NewClient(cfg, &fakeSource{releases: []Release{release("0.9.0")}}, nil)

	outcome, err := client.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, outcome.Available)
}

func TestCheck_Errors(t *testing.T) {
	tests := []struct {
		name    string
		source  *fakeSource
		wantErr error
	}{
		{"empty list", &fakeSource{}, ErrNoReleases},
		{"network failure", &fakeSource{listErr: errNetwork}, errNetwork},
		{"missing tag", &fakeSource{releases: []Release{release(" ")}}, ErrMalformedRelease},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(testConfig("1.0.0"), tt.source, &fakeApplier{})

			_, err := client.Check(context.Background())
			require.Error(t, err)

			var checkErr *CheckError
			assert.True(t, errors.As(err, &checkErr))
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestApply_ReplacesExecutable(t *testing.T) {
	asset := Asset{ID: 7, Name: "desktop-app-linux-amd64", Size: int64(len(fakeELF))}
	src := &fakeSource{
		releases: []Release{release("v1.2.0", Asset{ID: 6, Name: "desktop-app-darwin-arm64"}, asset)},
		bodies:   map[int64][]byte{7: fakeELF},
	}
	applier := &fakeApplier{}
	client := NewClient(testConfig("1.0.0"), src, applier)

	var lastDone, lastTotal int64
	outcome, err := client.Apply(context.Background(), "1.2.0", func(done, total int64) {
		lastDone, lastTotal = done, total
	})
	require.NoError(t, err)

	assert.True(t, outcome.Applied)
	assert.Equal(t, "1.2.0", outcome.Version)
	assert.Equal(t, asset.Name, outcome.AssetName)
	assert.Equal(t, "/opt/desktop-app/desktop-app", applier.target)
	assert.Equal(t, fakeELF, applier.written)
	assert.Equal(t, int64(len(fakeELF)), lastDone)
	assert.Equal(t, int64(len(fakeELF)), lastTotal)
}

func TestApply_InstallsAcceptedVersion(t *testing.T) {
	src := &fakeSource{
		releases: []Release{
			release("v1.3.0", Asset{ID: 9, Name: "desktop-app-linux-amd64"}),
			release("v1.2.0", Asset{ID: 7, Name: "desktop-app-linux-amd64"}),
		},
		bodies: map[int64][]byte{7: fakeELF, 9: fakeELF},
	}
	applier := &fakeApplier{}

	outcome, err := NewClient(testConfig("1.0.0"), src, applier).Apply(context.Background(), "1.2.0", nil)
	require.NoError(t, err)
	assert.True(t, outcome.Applied)
	assert.Equal(t, "1.2.0", outcome.Version)
	assert.Equal(t, 1, applier.calls)
}

func TestApply_AcceptedVersionWithdrawn(t *testing.T) {
	src := &fakeSource{releases: []Release{release("v1.3.0", Asset{ID: 9, Name: "desktop-app-linux-amd64"})}}
	applier := &fakeApplier{}

	_, err := NewClient(testConfig("1.0.0"), src, applier).Apply(context.Background(), "1.2.0", nil)
	require.Error(t, err)

	var applyErr *ApplyError
	assert.True(t, errors.As(err, &applyErr))
	assert.True(t, errors.Is(err, ErrReleaseNotFound))
	assert.Equal(t, 0, applier.calls)
}

func TestApply_ArchiveWithChecksum(t *testing.T) {
	archive := tarGz(t, map[string][]byte{"desktop-app": fakeELF})
	sum := sha256.Sum256(archive)
	checksums := []byte(hex.EncodeToString(sum[:]) + "  desktop-app_1.2.0_linux_amd64.tar.gz\n")

	src := &fakeSource{
		releases: []Release{release("v1.2.0",
			Asset{ID: 1, Name: "checksums.txt"},
			Asset{ID: 2, Name: "desktop-app_1.2.0_linux_amd64.tar.gz"},
		)},
		bodies: map[int64][]byte{1: checksums, 2: archive},
	}
	applier := &fakeApplier{}

	outcome, err := NewClient(testConfig("1.0.0"), src, applier).Apply(context.Background(), "", nil)
	require.NoError(t, err)
	assert.True(t, outcome.Applied)
	assert.Equal(t, fakeELF, applier.written)
}

func TestApply_ChecksumMismatch(t *testing.T) {
	src := &fakeSource{
		releases: []Release{release("v1.2.0",
			Asset{ID: 1, Name: "desktop-app-linux-amd64"},
			Asset{ID: 2, Name: "desktop-app-linux-amd64.sha256"},
		)},
		bodies: map[int64][]byte{1: fakeELF, 2: []byte("deadbeef\n")},
	}
	applier := &fakeApplier{}

	_, err := NewClient(testConfig("1.0.0"), src, applier).Apply(context.Background(), "", nil)
	assert.True(t, errors.Is(err, ErrChecksumMismatch))
	assert.Equal(t, 0, applier.calls)
}

func TestApply_NotAnUpdate(t *testing.T) {
	src := &fakeSource{releases: []Release{release("v1.0.0")}}
	applier := &fakeApplier{}

	outcome, err := NewClient(testConfig("1.0.0"), src, applier).Apply(context.Background(), "", nil)
	require.NoError(t, err)
	assert.False(t, outcome.Available)
	assert.False(t, outcome.Applied)
	assert.Equal(t, 0, applier.calls)
}

func TestApply_Errors(t *testing.T) {
	html := []byte("<html>rate limited</html>")
	tests := []struct {
		name    string
		source  *fakeSource
		applier *fakeApplier
		wantErr error
	}{
		{
			name:    "no releases",
			source:  &fakeSource{},
			applier: &fakeApplier{},
			wantErr: ErrNoReleases,
		},
		{
			name:    "no asset for platform",
			source:  &fakeSource{releases: []Release{release("v1.2.0", Asset{ID: 1, Name: "desktop-app-windows-amd64.exe"})}},
			applier: &fakeApplier{},
			wantErr: ErrNoAsset,
		},
		{
			name: "payload is not executable",
			source: &fakeSource{
				releases: []Release{release("v1.2.0", Asset{ID: 1, Name: "desktop-app-linux-amd64"})},
				bodies:   map[int64][]byte{1: html},
			},
			applier: &fakeApplier{},
			wantErr: ErrNotExecutable,
		},
		{
			name: "replace fails",
			source: &fakeSource{
				releases: []Release{release("v1.2.0", Asset{ID: 1, Name: "desktop-app-linux-amd64"})},
				bodies:   map[int64][]byte{1: fakeELF},
			},
			applier: &fakeApplier{err: errNetwork},
			wantErr: errNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(testConfig("1.0.0"), tt.source, tt.applier).Apply(context.Background(), "", nil)
			require.Error(t, err)

			var applyErr *ApplyError
			assert.True(t, errors.As(err, &applyErr))
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{CurrentVersion: "1.0.0"}, &fakeSource{}, nil)

	assert.Equal(t, DefaultPolicy, client.cfg.Policy)
	assert.NotEmpty(t, client.cfg.GOOS)
	assert.NotEmpty(t, client.cfg.GOARCH)
	assert.IsType(t, &SelfUpdateApplier{}, client.applier)
	assert.Equal(t, "1.0.0", client.CurrentVersion())
}
