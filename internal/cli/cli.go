// Package cli provides the command-line interface for bytesize.
package cli

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/umwelt-studio/bytesize/internal/logging"
)

var (
	// Default version for development/non-release builds
	// GoReleaser overrides this for release builds with the git tag.
	version = "dev"
)

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:          `bytesize "<quantity> <unit_type>"`,
		Short:        "Decimal storage unit converter",
		Version:      version,
		SilenceUsage: true,
		// NB: ArbitraryArgs is required to avoid interpreting the first argument
		// as a subcommand. This is necessary for the use case `bytesize "5 kb"`,
		// where the quantity would otherwise be interpreted as a subcommand and fail.
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logging.New(opts.Verbose)
			if err != nil {
				return errors.Wrap(err, "unable to create logger")
			}
			cmd.SetContext(logging.WithContext(cmd.Context(), log))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			_ = logging.FromContext(cmd.Context()).Sync()
		},
		// When no subcommand is supplied, execute the convert command
		RunE: newConvertCmd().RunE,
	}

	addGlobalFlags(rootCmd.PersistentFlags(), opts)

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Mark(err, errUsage)
	})

	rootCmd.AddCommand(
		newConvertCmd(),
		newFormatCmd(),
	)

	return rootCmd
}

// Run executes the root command with args and returns the process exit code.
// Errors are printed by cobra; any hints attached to them follow.
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(guardSignedArgs(args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		for _, hint := range errors.GetAllHints(err) {
			rootCmd.PrintErrln("Hint:", hint)
		}
	}
	return ExitCode(err)
}

// Execute runs bytesize against the process arguments.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// guardSignedArgs inserts "--" ahead of the first argument that starts like a
// negative number ("-5 kb"), so pflag hands it to the command instead of
// reading it as shorthand flags. Arguments after an existing "--" are left
// alone.
func guardSignedArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if len(arg) > 1 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9' {
			guarded := make([]string, 0, len(args)+1)
			guarded = append(guarded, args[:i]...)
			guarded = append(guarded, "--")
			return append(guarded, args[i:]...)
		}
	}
	return args
}
