// Package util provides utility functions for presenting sizes to users.
package util

import (
	"fmt"

	"github.com/umwelt-studio/bytesize/internal/units"
	"go.uber.org/zap/zapcore"
)

// FormattedSize is a byte count expressed in the single unit that suits its
// magnitude. Bytes is set for the Byte unit, Value for every other unit.
type FormattedSize struct {
	Unit  units.Unit
	Bytes uint64
	Value float64
}

// Classify picks the largest unit whose factor does not exceed bytes:
//
//   - 0 to 999 -> bytes
//   - 1,000 to 999,999 -> KB
//   - 1,000,000 to 999,999,999 -> MB
//   - 1,000,000,000 and above -> GB
func Classify(bytes uint64) FormattedSize {
	for i := len(units.All) - 1; i > 0; i-- {
		u := units.All[i]
		if bytes >= u.Factor() {
			return FormattedSize{Unit: u, Value: float64(bytes) / float64(u.Factor())}
		}
	}
	return FormattedSize{Unit: units.Byte, Bytes: bytes}
}

func (s FormattedSize) String() string {
	if s.Unit == units.Byte {
		return fmt.Sprintf("%d %s", s.Bytes, s.Unit.Symbol())
	}
	return fmt.Sprintf("%.2f %s", s.Value, s.Unit.Symbol())
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s FormattedSize) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("unit", s.Unit.Symbol())
	if s.Unit == units.Byte {
		enc.AddUint64("bytes", s.Bytes)
	} else {
		enc.AddFloat64("value", s.Value)
	}
	return nil
}

// FormatSize converts a byte count into a human-readable string using the
// decimal bands of Classify. Anything above bytes gets two decimal places.
// For example:
//
//   - 999 bytes -> "999 bytes"
//   - 1000 bytes -> "1.00 KB"
//   - 999999 bytes -> "1000.00 KB"
//   - 6888837399 bytes -> "6.89 GB"
func FormatSize(bytes uint64) string {
	return Classify(bytes).String()
}
