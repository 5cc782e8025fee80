package export

import (
	"fmt"
	"log"
	"math"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/ytget/desktop-app/internal/model"
	"github.com/ytget/desktop-app/internal/platform"
)

// Workbook layout constants
const (
	FilePrefix       = "export_"
	FileExtension    = ".xlsx"
	FileTimeLayout   = "20060102_150405"
	HeaderFillColor  = "D3D3D3"
	NumFmtTwoDecimal = 2 // built-in "0.00"
	MinColumnWidth   = 8.0
	MaxColumnWidth   = 60.0
	ColumnPadding    = 2.0
)

// Header lists the fixed column titles
var Header = []string{"ID", "Name", "Value", "Date"}

// Exporter writes rows to spreadsheet files
type Exporter struct {
	dir func() string
	now func() time.Time
}

// Option configures an Exporter
type Option func(*Exporter)

// WithDirectory fixes the output directory
func WithDirectory(dir string) Option {
	return func(e *Exporter) {
		e.dir = func() string { return dir }
	}
}

// WithDirectoryFunc resolves the output directory on each export
func WithDirectoryFunc(dir func() string) Option {
	return func(e *Exporter) {
		e.dir = dir
	}
}

// WithClock sets the time source used for the file name
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// NewExporter creates an exporter writing to the Downloads folder by default
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		dir: platform.DownloadsDirOrCurrent,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OutputPath returns the file path an export started at t would use
func (e *Exporter) OutputPath(t time.Time) string {
	dir := e.dir()
	if dir == "" {
		dir = platform.FallbackDir
	}
	return filepath.Join(dir, FilePrefix+t.Format(FileTimeLayout)+FileExtension)
}

// Export writes rows in order below a header row and returns the file path
func (e *Exporter) Export(rows []model.Row) (string, error) {
	path := e.OutputPath(e.now())

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Failed to close workbook %s: %v", path, err)
		}
	}()

	if err := writeSheet(f, f.GetSheetName(0), rows); err != nil {
		return "", &Error{Path: path, Err: err}
	}

	if err := f.SaveAs(path); err != nil {
		return "", &Error{Path: path, Err: err}
	}

	log.Printf("Exported %d rows to %s", len(rows), path)
	return path, nil
}

// writeSheet fills the sheet with the header and one line per row
func writeSheet(f *excelize.File, sheet string, rows []model.Row) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{HeaderFillColor}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	valueStyle, err := f.NewStyle(&excelize.Style{NumFmt: NumFmtTwoDecimal})
	if err != nil {
		return fmt.Errorf("value style: %w", err)
	}

	header := make([]interface{}, len(Header))
	widths := make([]int, len(Header))
	for i, title := range Header {
		header[i] = title
		widths[i] = utf8.RuneCountInString(title)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeaderCell(), headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, row := range rows {
		line := i + 2
		cell, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return err
		}
		values := []interface{}{
			row.ID,
			row.Name,
			roundToCents(row.Value),
			row.FormattedTimestamp(),
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", row.ID, err)
		}

		valueCell, err := excelize.CoordinatesToCellName(3, line)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, valueCell, valueCell, valueStyle); err != nil {
			return fmt.Errorf("style row %d: %w", row.ID, err)
		}

		cells := []string{fmt.Sprint(row.ID), row.Name, row.FormattedValue(), row.FormattedTimestamp()}
		for col, text := range cells {
			if n := utf8.RuneCountInString(text); n > widths[col] {
				widths[col] = n
			}
		}
	}

	return fitColumns(f, sheet, widths)
}

// fitColumns approximates autofit from the longest text per column
func fitColumns(f *excelize.File, sheet string, widths []int) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := math.Min(math.Max(float64(w)+ColumnPadding, MinColumnWidth), MaxColumnWidth)
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("column width %s: %w", col, err)
		}
	}
	return nil
}

func lastHeaderCell() string {
	col, _ := excelize.ColumnNumberToName(len(Header))
	return col + "1"
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
