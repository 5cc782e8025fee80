package export

// Package export writes the table rows to an .xlsx workbook in the user's
// Downloads folder (or a configured directory) using excelize.
