package cli

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBuild = BuildInfo{Version: "1.0.0", Owner: "acme", Repo: "desktop-app", Binary: "desktop-app"}

var newBinary = append([]byte{0x7f, 'E', 'L', 'F'}, []byte("new build")...)

func assetName() string {
	return fmt.Sprintf("desktop-app-%s-%s", runtime.GOOS, runtime.GOARCH)
}

func newReleaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/desktop-app/releases", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `[{"tag_name": %q, "assets": [{"id": 7, "name": %q, "size": %d}]}]`,
			tag, assetName(), len(newBinary))
	})
	mux.HandleFunc("/repos/acme/desktop-app/releases/assets/7", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(newBinary)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, runGUI func() error, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(testBuild, runGUI)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func noGUI() error {
	return errors.New("GUI must not start")
}

func TestRootCommand_LaunchesGUI(t *testing.T) {
	started := false
	_, err := run(t, func() error {
		started = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, started)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, noGUI, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "desktop-app 1.0.0")
	assert.Contains(t, out, "releases: acme/desktop-app")
}

func TestUpdateCheck(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		policy   string
		expected string
	}{
		{"newer release", "v1.1.0", "differs", "Update available: 1.1.0 (running 1.0.0)"},
		{"same release", "v1.0.0", "differs", "Up to date: 1.0.0"},
		{"older release differs", "v0.9.0", "differs", "Update available: 0.9.0"},
		{"older release newer policy", "v0.9.0", "newer", "Up to date: 1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newReleaseServer(t, tt.tag)
			out, err := run(t, noGUI, "update", "check", "--api-url", srv.URL, "--policy", tt.policy)
			require.NoError(t, err)
			assert.Contains(t, out, tt.expected)
		})
	}
}

func TestUpdateCheck_Errors(t *testing.T) {
	_, err := run(t, noGUI, "update", "check", "--policy", "sideways")
	assert.Error(t, err)

	_, err = run(t, noGUI, "update", "check", "--owner", "")
	assert.Error(t, err)
}

func TestUpdateApply(t *testing.T) {
	srv := newReleaseServer(t, "v1.1.0")
	target := filepath.Join(t.TempDir(), "desktop-app")
	require.NoError(t, os.WriteFile(target, []byte("old build"), 0o755))

	out, err := run(t, noGUI, "update", "apply", "--api-url", srv.URL, "--target", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Updated to 1.1.0")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newBinary, data)
}

func TestUpdateApply_UpToDate(t *testing.T) {
	srv := newReleaseServer(t, "v1.0.0")
	target := filepath.Join(t.TempDir(), "desktop-app")
	require.NoError(t, os.WriteFile(target, []byte("old build"), 0o755))

	out, err := run(t, noGUI, "update", "apply", "--api-url", srv.URL, "--target", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Up to date: 1.0.0")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("old build"), data)
}

func TestExecute_ExitCodes(t *testing.T) {
	var stderr bytes.Buffer

	root := NewRootCommand(testBuild, func() error { return nil })
	root.SetArgs([]string{"version"})
	root.SetOut(&bytes.Buffer{})
	assert.Equal(t, exitSuccess, Execute(root, &stderr))

	root = NewRootCommand(testBuild, noGUI)
	root.SetArgs([]string{})
	assert.Equal(t, exitError, Execute(root, &stderr))
	assert.Contains(t, stderr.String(), "GUI must not start")
}
