package units

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		token string
		want  Unit
	}{
		{"kb", Kilobyte},
		{"KB", Kilobyte},
		{"Kb", Kilobyte},
		{"mb", Megabyte},
		{"mB", Megabyte},
		{"gb", Gigabyte},
		{"GB", Gigabyte},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseUnit(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnit_Invalid(t *testing.T) {
	for _, token := range []string{"", "tb", "b", "bytes", "kib", " kb"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseUnit(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidUnit), "got %v", err)
			assert.Contains(t, errors.GetAllHints(err), "supported unit types are kb, mb and gb")
		})
	}
}

func TestUnitFactors(t *testing.T) {
	assert.Equal(t, uint64(1), Byte.Factor())
	for i := 1; i < len(All); i++ {
		assert.Equal(t, All[i-1].Factor()*1000, All[i].Factor(), "%s", All[i])
	}
}

func TestIsInputError(t *testing.T) {
	_, err := ParseUnit("tb")
	assert.True(t, IsInputError(err))
	assert.True(t, IsInputError(errors.Wrap(ErrMissingArgument, "reading input")))
	assert.False(t, IsInputError(errors.New("disk on fire")))
	assert.False(t, IsInputError(nil))
}
