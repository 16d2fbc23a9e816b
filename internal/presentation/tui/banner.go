package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{" __  __                 _", "#818cf8"},
	{"|  \\/  | __ _ _ ____   _(_)_ __", "#a78bfa"},
	{"| |\\/| |/ _` | '__\\ \\ / / | '_ \\", "#c084fc"},
	{"| |  | | (_| | |   \\ V /| | | | |", "#e879f9"},
	{"|_|  |_|\\__,_|_|    \\_/ |_|_| |_|", "#f472b6"},
}

// PrintBanner writes the Marvin ASCII banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()

	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
