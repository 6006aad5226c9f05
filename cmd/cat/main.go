// Command cat concatenates files and prints them on the standard output.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/bitfield/cat/internal/config"
)

// version can be overridden at build time via -ldflags.
var version = "0.1.0-dev"

// errFailed means diagnostics have already been printed and only the exit
// status is left to set.
var errFailed = errors.New("one or more sources failed")

func main() {
	os.Exit(Main())
}

// Main runs the command with the process's arguments and standard streams,
// and returns the exit status.
func Main() int {
	a := &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	cfg, err := config.Load(os.Getenv)
	if err != nil {
		a.setColor(config.ColorAuto)
		a.warn("%v", err)
		return 1
	}
	a.cfg = cfg
	a.setColor(cfg.Color)
	return a.run(append(cfg.Args, os.Args[1:]...))
}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	cfg    config.Config
	prefix *color.Color
}

// setColor decides whether diagnostics get a coloured program name. In auto
// mode that is only when stderr is a terminal.
func (a *app) setColor(mode config.ColorMode) {
	a.prefix = color.New(color.FgRed, color.Bold)
	switch mode {
	case config.ColorAlways:
		a.prefix.EnableColor()
	case config.ColorNever:
		a.prefix.DisableColor()
	default:
		if f, ok := a.stderr.(*os.File); ok && isTerminal(f) {
			a.prefix.EnableColor()
		} else {
			a.prefix.DisableColor()
		}
	}
}

// warn prints one diagnostic line on stderr.
func (a *app) warn(format string, args ...any) {
	fmt.Fprintf(a.stderr, "%s: %s\n", a.prefix.Sprint(programName), fmt.Sprintf(format, args...))
}

// run parses args, runs the concatenation and returns the exit status.
func (a *app) run(args []string) int {
	cmd := newRootCmd(a)
	if args == nil {
		// cobra reads os.Args when given nil
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errFailed):
		return 1
	default:
		a.warn("%v", err)
		fmt.Fprintf(a.stderr, "Try '%s --help' for more information.\n", programName)
		return 1
	}
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
