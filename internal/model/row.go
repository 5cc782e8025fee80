package model

import (
	"fmt"
	"time"
)

// Display layouts for row timestamps
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

// Row represents a single record in the data table
type Row struct {
	ID    int
	Name  string
	Value float64
	Date  time.Time // local time of creation
}

// FormattedValue returns the value rendered with two decimals
func (r Row) FormattedValue() string {
	return fmt.Sprintf("%.2f", r.Value)
}

// FormattedTimestamp returns the creation time as YYYY-MM-DD HH:MM:SS
func (r Row) FormattedTimestamp() string {
	return r.Date.Format(TimestampLayout)
}

// FormattedDate returns the creation date only, as shown in the table view
func (r Row) FormattedDate() string {
	return r.Date.Format(DateLayout)
}

// Page selects which central panel the window shows
type Page int

const (
	PageHome Page = iota
	PageDataTable
	PageSettings
	PageAbout
)

// String returns the page name
func (p Page) String() string {
	switch p {
	case PageHome:
		return "Home"
	case PageDataTable:
		return "Data Table"
	case PageSettings:
		return "Settings"
	case PageAbout:
		return "About"
	default:
		return "Unknown"
	}
}
