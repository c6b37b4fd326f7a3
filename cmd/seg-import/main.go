// Package main is the seg-import command: read segments or alignments
// in various formats, and write them in SEG format.
package main

import (
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcfrith/seg-suite/config"
	"github.com/mcfrith/seg-suite/internal/segimport"
	"github.com/mcfrith/seg-suite/internal/segio"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// rootCmd is the whole seg-import command line.
var rootCmd = &cobra.Command{
	Use:   "seg-import [options] format inputFile(s)",
	Short: "Read segments or alignments in various formats, and write them in SEG format",
	Long: `Read segments or alignments in various formats, and write them in SEG format.

Formats (case-insensitive):
  bed, chain, genePred, gff, gtf, lastTab, maf, psl, rmsk, sam

Input files default to standard input; "-" means standard input.`,
	Version:       config.Version,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runImport,
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolP("version", "V", false, "show version number and exit")
	flags.IntP("forward", "f", 0, "segment number to make forward-stranded (0 = off)")
	flags.BoolP("alignments", "a", false, "write alignment number/position columns (lastTab, maf, psl)")
	flags.BoolP("cds", "c", false, "get CDS (coding regions)")
	flags.BoolP("utr5", "5", false, "get 5' untranslated regions (UTRs)")
	flags.BoolP("utr3", "3", false, "get 3' untranslated regions (UTRs)")
	flags.BoolP("introns", "i", false, "get introns")
	flags.BoolP("primary", "p", false, "get primary transcripts (exons plus introns)")

	viper.BindPFlag("forward", flags.Lookup("forward"))
	viper.BindPFlag("alignments", flags.Lookup("alignments"))

	rootCmd.SetVersionTemplate(`{{printf "%s %s\n" .Name .Version}}`)
}

func runImport(cmd *cobra.Command, args []string) error {
	c := config.New()

	format, err := segimport.ParseFormat(args[0])
	if err != nil {
		return err
	}

	opts := segimport.Options{
		Forward:    c.Forward,
		Alignments: c.Alignments,
	}
	flags := cmd.Flags()
	opts.CDS, _ = flags.GetBool("cds")
	opts.UTR5, _ = flags.GetBool("utr5")
	opts.UTR3, _ = flags.GetBool("utr3")
	opts.Introns, _ = flags.GetBool("introns")
	opts.Primary, _ = flags.GetBool("primary")

	im, err := segimport.New(opts, os.Stdout)
	if err != nil {
		return err
	}

	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, name := range files {
		in, err := segio.Open(name)
		if err != nil {
			return err
		}
		err = im.File(format, in)
		in.Close()
		if err != nil {
			return err
		}
	}
	return im.Flush()
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
		stderr.Fatalf("seg-import: %v", err)
	}
}
