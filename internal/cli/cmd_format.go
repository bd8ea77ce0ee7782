package cli

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/umwelt-studio/bytesize/internal/logging"
	"github.com/umwelt-studio/bytesize/internal/units"
	"github.com/umwelt-studio/bytesize/internal/util"
	"go.uber.org/zap"
)

// newFormatCmd creates the format command
func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "format <bytes>...",
		Short:   "Print byte counts in the most readable unit",
		Example: "  bytesize format 6888837399",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.WithHint(
					errors.WithStack(units.ErrMissingArgument),
					"usage: bytesize format <bytes>...",
				)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args)
		},
	}

	return cmd
}

func runFormat(cmd *cobra.Command, args []string) error {
	log := logging.FromContext(cmd.Context())

	// Validate everything before printing anything
	counts := make([]uint64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return errors.Mark(
				errors.Newf("bytes '%s' is not a valid number", arg),
				units.ErrInvalidQuantity,
			)
		}
		counts = append(counts, n)
	}

	for _, n := range counts {
		size := util.Classify(n)
		log.Debug("formatted", zap.Uint64("input", n), zap.Object("size", size))
		fmt.Fprintln(cmd.OutOrStdout(), size)
	}

	return nil
}
