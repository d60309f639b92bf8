package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

var stdoutColor = detectColor(os.Stdout)

func detectColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isInteractive(f)
}

func isInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func ansi(code, s string) string {
	if !stdoutColor {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

func bold(s string) string  { return ansi("1", s) }
func green(s string) string { return ansi("32", s) }
func red(s string) string   { return ansi("31", s) }
func dim(s string) string   { return ansi("2", s) }
