package progress

import (
	"errors"
	"testing"
)

func TestSpinnerLifecycle(t *testing.T) {
	s := NewSpinner("loading dataset...")
	if s == nil || s.bar == nil {
		t.Fatal("NewSpinner returned incomplete spinner")
	}
	if s.label != "loading dataset..." {
		t.Errorf("label = %q", s.label)
	}

	// Finish and Fail must not panic after each other.
	s.Finish()

	s = NewSpinner("analyzing...")
	s.Fail(errors.New("boom"))
}
