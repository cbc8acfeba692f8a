package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all restdown command-line flags.
type cliFlags struct {
	verbose   bool
	quiet     bool
	mediaDest string
	brandDir  string
	config    string
	version   bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("restdown", flag.ContinueOnError)
	f := &cliFlags{}

	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show warnings and errors")
	fs.StringVarP(&f.mediaDest, "copy-brand-media-to", "m", "", "copy brand media into DIR after conversion")
	fs.StringVarP(&f.brandDir, "brand-dir", "b", "", "override brand directory resolution")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the command usage to w.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: restdown [options] <file>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert restdown-flavored Markdown API docs to branded HTML + JSON.")
	fmt.Fprintln(w, "For each input file, <base>.html and <base>.json are written next to it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
}
