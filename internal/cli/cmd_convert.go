package cli

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/umwelt-studio/bytesize/internal/logging"
	"github.com/umwelt-studio/bytesize/internal/units"
	"go.uber.org/zap"
)

// newConvertCmd creates the convert command
func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   `convert "<quantity> <unit_type>"`,
		Short: "Express a quantity of kb, mb or gb in every unit",
		Example: `  bytesize convert "5 kb"
  bytesize 12 GB`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args)
		},
		ValidArgsFunction: func(
			_ *cobra.Command,
			args []string,
			_ string,
		) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return []string{"kb", "mb", "gb"}, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	log := logging.FromContext(cmd.Context())

	if len(args) == 0 {
		return errors.WithHint(
			errors.WithStack(units.ErrMissingArgument),
			`usage: bytesize "<quantity> <unit_type>", e.g. bytesize "5 kb"`,
		)
	}

	// "5 kb" and 5 kb are the same request
	input := strings.Join(args, " ")
	log.Debug("parsing quantity", zap.String("input", input))

	q, err := units.Parse(input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "units: %d, unit_type: %s\n", q.Value, q.UnitToken())

	b, err := q.Breakdown()
	if err != nil {
		return err
	}
	log.Debug("converted", zap.Stringer("quantity", q), zap.Object("breakdown", b))

	fmt.Fprintln(out, b)
	return nil
}
