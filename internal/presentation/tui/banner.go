package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the flowsuite banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.NewOutput(w).Profile
	lines := []struct {
		text  string
		color string
	}{
		{"   __ _                       _ _       ", "#34d399"},
		{"  / _| | _____      _____ _  _(_) |_ ___ ", "#2dd4bf"},
		{" |  _| |/ _ \\ \\ /\\ / (_-<| || | |  _/ -_)", "#22d3ee"},
		{" |_| |_|\\___/\\_/\\_/  /__/ \\_,_|_|\\__\\___|", "#38bdf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, p.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
