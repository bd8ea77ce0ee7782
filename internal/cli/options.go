package cli

import "github.com/spf13/pflag"

// Options holds the command-line options shared across commands
type Options struct {
	// Verbose lowers the log level to debug. Logs are written to stderr
	// and never interleave with command output.
	Verbose bool
}

func addGlobalFlags(flags *pflag.FlagSet, opts *Options) {
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging on stderr")
}
