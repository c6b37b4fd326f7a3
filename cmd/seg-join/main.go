// Package main is the seg-join command: read two sorted SEG files,
// and write their join.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/mcfrith/seg-suite/config"
	"github.com/mcfrith/seg-suite/internal/segio"
	"github.com/mcfrith/seg-suite/internal/segjoin"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// rootCmd is the whole seg-join command line.
var rootCmd = &cobra.Command{
	Use:   "seg-join [options] file1.seg file2.seg",
	Short: "Read two SEG files, and write their join",
	Long: `Read two SEG files, and write their join.

Both files must be sorted by sequence name, then start coordinate, of
their first segment. "-" means standard input.`,
	Version:       config.Version,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runJoin,
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolP("version", "V", false, "show version number and exit")
	flags.StringSliceP("complete", "c", nil, "only use complete/contained records of file `FILENUM`")
	flags.StringP("overlapping", "f", "", "write complete records of file `FILENUM`, that overlap anything in the other file")
	flags.StringP("min-cover", "n", "", "write each record of file 2, if at least `PERCENT` of it is covered by file 1")
	flags.StringP("max-cover", "x", "", "write each record of file 2, if at most `PERCENT` of it is covered by file 1")
	flags.StringP("unjoinable", "v", "", "only write unjoinable parts of file `FILENUM`")
	flags.BoolP("whole", "w", false, "join on whole segment-tuples, not just first segments")

	rootCmd.SetVersionTemplate(`{{printf "%s %s\n" .Name .Version}}`)
}

// fileNumber parses a -c/-f/-v style argument.
func fileNumber(option, arg string) (int, error) {
	switch arg {
	case "1":
		return 1, nil
	case "2":
		return 2, nil
	}
	return 0, fmt.Errorf("option -%s: should be 1 or 2", option)
}

func parseOptions(cmd *cobra.Command) (segjoin.Options, error) {
	var opts segjoin.Options
	flags := cmd.Flags()

	completes, _ := flags.GetStringSlice("complete")
	for _, arg := range completes {
		n, err := fileNumber("c", arg)
		if err != nil {
			return opts, err
		}
		if n == 1 {
			opts.IsComplete1 = true
		} else {
			opts.IsComplete2 = true
		}
	}

	if arg, _ := flags.GetString("overlapping"); arg != "" {
		n, err := fileNumber("f", arg)
		if err != nil {
			return opts, err
		}
		opts.OverlappingFile = n
	}

	minCover, _ := flags.GetString("min-cover")
	maxCover, _ := flags.GetString("max-cover")
	if minCover != "" && maxCover != "" {
		return opts, fmt.Errorf("option -n/-x: cannot use twice")
	}
	if minCover != "" {
		f, err := segjoin.ParseFraction(minCover)
		if err != nil {
			return opts, fmt.Errorf("option -n: %v", err)
		}
		opts.MinOverlap = f
	}
	if maxCover != "" {
		f, err := segjoin.ParseFraction(maxCover)
		if err != nil {
			return opts, fmt.Errorf("option -x: %v", err)
		}
		f.Numer *= -1
		f.Denom *= -1
		opts.MinOverlap = f
	}

	if arg, _ := flags.GetString("unjoinable"); arg != "" {
		n, err := fileNumber("v", arg)
		if err != nil {
			return opts, err
		}
		opts.UnjoinableFile = n
	}

	opts.JoinOnAllSegments, _ = flags.GetBool("whole")
	return opts, nil
}

func runJoin(cmd *cobra.Command, args []string) error {
	opts, err := parseOptions(cmd)
	if err != nil {
		return err
	}

	in1, err := segio.Open(args[0])
	if err != nil {
		return err
	}
	defer in1.Close()
	in2, err := segio.Open(args[1])
	if err != nil {
		return err
	}
	defer in2.Close()

	return segjoin.Run(opts, in1, in2, os.Stdout)
}

func main() {
	c := config.New()
	switch c.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	}

	if err := rootCmd.Execute(); err != nil {
		stderr.Fatalf("seg-join: %v", err)
	}
}
