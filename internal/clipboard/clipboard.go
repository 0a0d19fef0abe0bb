// Package clipboard is the write-only clipboard used by the copy actions.
package clipboard

import (
	"fmt"

	sysclip "github.com/atotto/clipboard"
)

// Writer places text on a clipboard. Callers do not read it back.
type Writer interface {
	WriteText(text string) error
}

// writeAll is a package-level variable to allow mocking in tests
var writeAll = sysclip.WriteAll

// System writes to the operating system clipboard
type System struct{}

// NewSystem returns the OS clipboard writer
func NewSystem() System {
	return System{}
}

// WriteText copies text to the system clipboard
func (System) WriteText(text string) error {
	if sysclip.Unsupported {
		return fmt.Errorf("clipboard not supported on this system")
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// Recorder keeps copied text in memory
type Recorder struct {
	Writes []string
}

// WriteText records text
func (r *Recorder) WriteText(text string) error {
	r.Writes = append(r.Writes, text)
	return nil
}

// Last returns the most recently copied text
func (r *Recorder) Last() string {
	if len(r.Writes) == 0 {
		return ""
	}
	return r.Writes[len(r.Writes)-1]
}
