package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/umwelt-studio/bytesize/internal/units"
)

// errUsage marks command-line misuse that is not about the quantity itself,
// such as an unknown flag.
var errUsage = errors.New("usage error")

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// ExitCode maps an error returned by a command to a process exit status:
// 0 for success, 2 for bad input or flags and 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case units.IsInputError(err), errors.Is(err, errUsage):
		return exitUsage
	default:
		return exitFailure
	}
}
