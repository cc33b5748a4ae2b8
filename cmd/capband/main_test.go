package main

import (
	"testing"

	"github.com/urfave/cli/v2"
)

// TestDatasetPath verifies dataset argument handling.
func TestDatasetPath(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "no args defaults to salaries.csv",
			args:     []string{},
			expected: "salaries.csv",
		},
		{
			name:     "explicit path",
			args:     []string{"data/benchmarks.csv"},
			expected: "data/benchmarks.csv",
		},
		{
			name:     "first of several",
			args:     []string{"a.csv", "b.csv"},
			expected: "a.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &cli.App{
				Action: func(c *cli.Context) error {
					if got := datasetPath(c); got != tt.expected {
						t.Errorf("datasetPath() = %q, want %q", got, tt.expected)
					}
					return nil
				},
			}
			args := append([]string{"test"}, tt.args...)
			_ = app.Run(args)
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, want := range []string{"report", "table", "plot", "rows", "init"} {
		t.Run(want, func(t *testing.T) {
			var cmd *cli.Command
			switch want {
			case "report":
				cmd = reportCmd()
			case "table":
				cmd = tableCmd()
			case "plot":
				cmd = plotCmd()
			case "rows":
				cmd = rowsCmd()
			case "init":
				cmd = initCmd()
			}
			if cmd.Name != want {
				t.Errorf("command Name = %q, want %q", cmd.Name, want)
			}
			if cmd.Action == nil {
				t.Errorf("command %q has no action", want)
			}
		})
	}
}

func TestShortFingerprint(t *testing.T) {
	if got := shortFingerprint("0123456789abcdef"); got != "0123456789ab" {
		t.Errorf("shortFingerprint() = %q", got)
	}
	if got := shortFingerprint("abc"); got != "abc" {
		t.Errorf("shortFingerprint() = %q", got)
	}
}
