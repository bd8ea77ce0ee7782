package units

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

const usage = "expected a quantity followed by a unit type, e.g. '5 kb'"

// Quantity is an unsigned count of some unit. Token keeps the unit as the
// caller typed it ("KB", "Mb") and is empty when built directly.
type Quantity struct {
	Value uint64
	Unit  Unit
	Token string
}

// Parse reads a "<quantity> <unit_type>" string. Tokens are separated by
// any run of whitespace and there must be exactly two of them.
func Parse(input string) (Quantity, error) {
	parts := strings.Fields(input)
	if len(parts) != 2 {
		err := errors.Mark(
			errors.New("Invalid number of arguments. Expected 'units unit_type'"),
			ErrMalformedInput,
		)
		return Quantity{}, errors.WithHint(err, usage)
	}

	value, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return Quantity{}, errors.Mark(
			errors.Newf("units '%s' is not a valid number", parts[0]),
			ErrInvalidQuantity,
		)
	}

	unit, err := ParseUnit(parts[1])
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{Value: value, Unit: unit, Token: parts[1]}, nil
}

// UnitToken returns the unit as typed, falling back to the canonical token.
func (q Quantity) UnitToken() string {
	if q.Token != "" {
		return q.Token
	}
	return q.Unit.Token()
}

func (q Quantity) String() string {
	return fmt.Sprintf("%d %s", q.Value, q.Unit.Token())
}

// Breakdown converts q. See Convert.
func (q Quantity) Breakdown() (Breakdown, error) {
	return Convert(q.Value, q.Unit)
}

// Breakdown is one quantity expressed in every unit at once. Bytes is exact;
// the fractional fields are float64 approximations of Bytes / factor and
// lose precision past 2^53. Whole, Fraction and String work from Bytes.
type Breakdown struct {
	Bytes     uint64
	Kilobytes float64
	Megabytes float64
	Gigabytes float64
}

// Convert expresses quantity of unit in bytes, kilobytes, megabytes and
// gigabytes. It fails with ErrOverflow when the byte count does not fit in
// a uint64.
func Convert(quantity uint64, unit Unit) (Breakdown, error) {
	hi, lo := bits.Mul64(quantity, unit.Factor())
	if hi != 0 {
		err := errors.Mark(
			errors.Newf("%d %s is more than %d bytes", quantity, unit.Token(), uint64(math.MaxUint64)),
			ErrOverflow,
		)
		return Breakdown{}, errors.WithHint(err, "use a smaller quantity or a smaller unit")
	}

	return Breakdown{
		Bytes:     lo,
		Kilobytes: scale(quantity, unit, Kilobyte),
		Megabytes: scale(quantity, unit, Megabyte),
		Gigabytes: scale(quantity, unit, Gigabyte),
	}, nil
}

// scale does a single multiplication or division so the field matching the
// source unit is float64(quantity) exactly.
func scale(quantity uint64, from, to Unit) float64 {
	if from >= to {
		return float64(quantity) * float64(from.Factor()/to.Factor())
	}
	return float64(quantity) / float64(to.Factor()/from.Factor())
}

// In returns the breakdown field for u.
func (b Breakdown) In(u Unit) float64 {
	switch u {
	case Kilobyte:
		return b.Kilobytes
	case Megabyte:
		return b.Megabytes
	case Gigabyte:
		return b.Gigabytes
	}
	return float64(b.Bytes)
}

// Whole returns the number of complete u in the breakdown. For the unit a
// quantity was converted from this is the quantity itself.
func (b Breakdown) Whole(u Unit) uint64 {
	return b.Bytes / u.Factor()
}

// Fraction returns the bytes left over after Whole(u).
func (b Breakdown) Fraction(u Unit) uint64 {
	return b.Bytes % u.Factor()
}

// Decimal renders the breakdown in u with two decimal places, rounding half
// up. It uses integer arithmetic only, so large quantities render exactly.
func (b Breakdown) Decimal(u Unit) string {
	whole, rest := b.Whole(u), b.Fraction(u)
	// rest < factor <= 1e9, so rest*100 cannot overflow
	cents := (rest*100 + u.Factor()/2) / u.Factor()
	if cents == 100 {
		whole, cents = whole+1, 0
	}
	return fmt.Sprintf("%d.%02d", whole, cents)
}

// String renders one line per unit. Fractional units use two decimal places.
func (b Breakdown) String() string {
	return fmt.Sprintf("%d %s\n%s %s\n%s %s\n%s %s",
		b.Bytes, Byte.Name(),
		b.Decimal(Kilobyte), Kilobyte.Name(),
		b.Decimal(Megabyte), Megabyte.Name(),
		b.Decimal(Gigabyte), Gigabyte.Name(),
	)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (b Breakdown) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("bytes", b.Bytes)
	enc.AddFloat64("kilobytes", b.Kilobytes)
	enc.AddFloat64("megabytes", b.Megabytes)
	enc.AddFloat64("gigabytes", b.Gigabytes)
	return nil
}
