package updater

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

// fakeSource serves releases and asset bodies from memory
type fakeSource struct {
	mu        sync.Mutex
	releases  []Release
	listErr   error
	bodies    map[int64][]byte
	listCalls int
	block     chan struct{}
}

func (f *fakeSource) ListReleases(ctx context.Context) ([]Release, error) {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.releases, nil
}

func (f *fakeSource) DownloadAsset(ctx context.Context, asset Asset) (io.ReadCloser, error) {
	body, ok := f.bodies[asset.ID]
	if !ok {
		return nil, fmt.Errorf("asset %d not found", asset.ID)
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

// fakeApplier records what would have been written
type fakeApplier struct {
	err     error
	target  string
	written []byte
	calls   int
}

func (f *fakeApplier) Apply(ctx context.Context, binary io.Reader, targetPath string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	data, err := io.ReadAll(binary)
	if err != nil {
		return err
	}
	f.target = targetPath
	f.written = data
	return nil
}

var errNetwork = errors.New("dial tcp: connection refused")

func release(version string, assets ...Asset) Release {
	return Release{Version: version, Assets: assets}
}
