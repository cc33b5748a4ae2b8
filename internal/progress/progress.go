// Package progress provides a stderr spinner for the CLI stages.
package progress

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Spinner indicates an in-flight stage with an unknown duration.
type Spinner struct {
	bar   *progressbar.ProgressBar
	label string
}

// NewSpinner creates a spinner labeled with the stage name.
func NewSpinner(label string) *Spinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	return &Spinner{bar: bar, label: label}
}

// Finish clears the spinner without output.
func (s *Spinner) Finish() {
	s.bar.Finish()
	s.bar.Clear()
}

// Fail clears the spinner and reports the stage failure to stderr.
func (s *Spinner) Fail(err error) {
	s.bar.Finish()
	s.bar.Clear()
	fmt.Fprintf(os.Stderr, "  %s failed: %v\n", s.label, err)
}
