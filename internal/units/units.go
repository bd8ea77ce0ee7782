// Package units describes the decimal storage units bytesize works with and
// converts a quantity expressed in one of them into all the others.
//
// Scaling is decimal: 1 KB = 1000 bytes, 1 MB = 1000 KB, 1 GB = 1000 MB.
package units

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Unit is a decimal storage unit.
type Unit int

const (
	Byte Unit = iota
	Kilobyte
	Megabyte
	Gigabyte
)

var unitInfo = [...]struct {
	factor uint64
	token  string
	symbol string
	name   string
}{
	Byte:     {1, "b", "bytes", "bytes"},
	Kilobyte: {1_000, "kb", "KB", "kilobytes"},
	Megabyte: {1_000_000, "mb", "MB", "megabytes"},
	Gigabyte: {1_000_000_000, "gb", "GB", "gigabytes"},
}

// All lists every unit from smallest to largest.
var All = []Unit{Byte, Kilobyte, Megabyte, Gigabyte}

// Factor returns the number of bytes in one u.
func (u Unit) Factor() uint64 { return unitInfo[u].factor }

// Token returns the lowercase token accepted on the command line ("kb").
func (u Unit) Token() string { return unitInfo[u].token }

// Symbol returns the short suffix used by the size formatter ("KB").
func (u Unit) Symbol() string { return unitInfo[u].symbol }

// Name returns the long plural name ("kilobytes").
func (u Unit) Name() string { return unitInfo[u].name }

func (u Unit) String() string { return u.Symbol() }

// ParseUnit matches token case-insensitively against "kb", "mb" and "gb".
// Bytes are not accepted as a source unit.
func ParseUnit(token string) (Unit, error) {
	switch strings.ToLower(token) {
	case "kb":
		return Kilobyte, nil
	case "mb":
		return Megabyte, nil
	case "gb":
		return Gigabyte, nil
	}
	err := errors.Mark(errors.Newf("unknown unit type '%s'", token), ErrInvalidUnit)
	return 0, errors.WithHint(err, "supported unit types are kb, mb and gb")
}
