package export

import "fmt"

// Error reports that a workbook could not be produced
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("export failed: %v", e.Err)
	}
	return fmt.Sprintf("export to %s failed: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
