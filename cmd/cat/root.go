package main

import (
	"github.com/spf13/cobra"

	"github.com/bitfield/cat"
)

const programName = "cat"

// flags holds the raw command-line switches. Several are shorthands for
// combinations of others, which options resolves.
type flags struct {
	showAll         bool
	numberNonblank  bool
	nonprintingEnds bool
	showEnds        bool
	number          bool
	squeezeBlank    bool
	nonprintingTabs bool
	showTabs        bool
	unbuffered      bool
	showNonprinting bool
}

// options turns the switches into the format the library applies. Numbering
// non-blank lines wins over numbering all lines, whichever came first.
func (f flags) options() cat.Options {
	opts := cat.Options{
		ShowNonprinting: f.showNonprinting || f.showAll || f.nonprintingEnds || f.nonprintingTabs,
		ShowTabs:        f.showTabs || f.showAll || f.nonprintingTabs,
		ShowEnds:        f.showEnds || f.showAll || f.nonprintingEnds,
		SqueezeBlank:    f.squeezeBlank,
	}
	switch {
	case f.numberNonblank:
		opts.Number = cat.NumberNonBlank
	case f.number:
		opts.Number = cat.NumberAll
	}
	return opts
}

func newRootCmd(a *app) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   programName + " [OPTION]... [FILE]...",
		Short: "Concatenate FILE(s) to standard output",
		Long: `Concatenate FILE(s) to standard output.

With no FILE, or when FILE is -, read standard input.

  -e  equivalent to -vE
  -t  equivalent to -vT`,
		Example: `  cat f - g  Output f's contents, then standard input, then g's contents.
  cat        Copy standard input to standard output.`,
		Version:               version,
		Args:                  cobra.ArbitraryArgs,
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cat.New(f.options()).
				WithStdin(a.stdin).
				WithStdout(a.stdout).
				WithBufferSize(a.cfg.BufferSize).
				WithReporter(func(fl cat.Failure) {
					a.warn("%v", fl.Err)
				})
			out, err := c.Run(cat.Sources(args))
			if err != nil {
				a.warn("%v", err)
				return errFailed
			}
			if out.Failed() {
				return errFailed
			}
			return nil
		},
	}
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	fs := cmd.Flags()
	fs.SortFlags = false
	fs.BoolVarP(&f.showAll, "show-all", "A", false, "equivalent to -vET")
	fs.BoolVarP(&f.numberNonblank, "number-nonblank", "b", false, "number nonempty output lines, overrides -n")
	fs.BoolVarP(&f.nonprintingEnds, "nonprinting-ends", "e", false, "equivalent to -vE")
	fs.BoolVarP(&f.showEnds, "show-ends", "E", false, "display $ at end of each line")
	fs.BoolVarP(&f.number, "number", "n", false, "number all output lines")
	fs.BoolVarP(&f.squeezeBlank, "squeeze-blank", "s", false, "suppress repeated empty output lines")
	fs.BoolVarP(&f.nonprintingTabs, "nonprinting-tabs", "t", false, "equivalent to -vT")
	fs.BoolVarP(&f.showTabs, "show-tabs", "T", false, "display TAB characters as ^I")
	fs.BoolVarP(&f.unbuffered, "unbuffered", "u", false, "(ignored)")
	fs.BoolVarP(&f.showNonprinting, "show-nonprinting", "v", false, "use ^ and M- notation, except for LFD and TAB")
	// -e and -t have no long forms of their own.
	for _, name := range []string{"nonprinting-ends", "nonprinting-tabs"} {
		if err := fs.MarkHidden(name); err != nil {
			panic(err)
		}
	}
	return cmd
}
