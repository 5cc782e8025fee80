package export

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ytget/desktop-app/internal/model"
)

var exportTime = time.Date(2026, 10, 17, 9, 8, 7, 0, time.Local)

func newTestExporter(t *testing.T, dir string) *Exporter {
	t.Helper()
	return NewExporter(WithDirectory(dir), WithClock(func() time.Time { return exportTime }))
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	return rows
}

func TestOutputPath(t *testing.T) {
	e := newTestExporter(t, "/data/out")

	assert.Equal(t, filepath.Join("/data/out", "export_20261017_090807.xlsx"), e.OutputPath(exportTime))
}

func TestOutputPath_EmptyDirFallsBackToCurrent(t *testing.T) {
	e := NewExporter(WithDirectoryFunc(func() string { return "" }))

	assert.Equal(t, filepath.Join(".", "export_20261017_090807.xlsx"), e.OutputPath(exportTime))
}

func TestExport_EmptyRowsWritesHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	path, err := newTestExporter(t, dir).Export(nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "export_20261017_090807.xlsx"), path)

	rows := readRows(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, Header, rows[0])
}

func TestExport_RowsInOrder(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local)
	input := []model.Row{
		{ID: 1, Name: "Alpha", Value: 123.456, Date: created},
		{ID: 2, Name: "Beta", Value: 7.891, Date: created},
		{ID: 3, Name: "Gamma", Value: 999.994, Date: created},
	}

	path, err := newTestExporter(t, t.TempDir()).Export(input)
	require.NoError(t, err)

	rows := readRows(t, path)
	require.Len(t, rows, len(input)+1)

	twoDecimals := regexp.MustCompile(`^\d+\.\d{2}$`)
	expected := [][]string{
		{"1", "Alpha", "123.46", "2026-01-02 03:04:05"},
		{"2", "Beta", "7.89", "2026-01-02 03:04:05"},
		{"3", "Gamma", "999.99", "2026-01-02 03:04:05"},
	}
	for i, want := range expected {
		got := rows[i+1]
		require.Len(t, got, len(Header))
		assert.Equal(t, want, got)
		assert.Regexp(t, twoDecimals, got[2])
	}
}

func TestExport_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")

	path, err := newTestExporter(t, dir).Export([]model.Row{{ID: 1, Name: "Alpha"}})
	require.Error(t, err)
	assert.Empty(t, path)

	var exportErr *Error
	require.True(t, errors.As(err, &exportErr))
	assert.Equal(t, filepath.Join(dir, "export_20261017_090807.xlsx"), exportErr.Path)
	assert.Contains(t, err.Error(), "export to")
}

func TestExport_DefaultDirectoryFallsBackToCurrent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("home directory comes from USERPROFILE on windows")
	}
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DOWNLOAD_DIR", "")
	workDir := t.TempDir()
	t.Chdir(workDir)

	e := NewExporter(WithClock(func() time.Time { return exportTime }))
	path, err := e.Export([]model.Row{{ID: 1, Name: "Alpha", Value: 1.25, Date: exportTime}})
	require.NoError(t, err)
	assert.Equal(t, "export_20261017_090807.xlsx", path)

	_, err = os.Stat(filepath.Join(workDir, path))
	assert.NoError(t, err)
}

func TestRoundToCents(t *testing.T) {
	assert.Equal(t, 123.46, roundToCents(123.456))
	assert.Equal(t, 0.0, roundToCents(0.004))
	assert.Equal(t, 10.0, roundToCents(9.999))
}
