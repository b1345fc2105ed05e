package object

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertArgLossless(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		target reflect.Type
		want   any
	}{
		{"float64 whole to int", float64(7), reflect.TypeOf(int(0)), int(7)},
		{"float32 whole to int64", float32(3), reflect.TypeOf(int64(0)), int64(3)},
		{"int to float64", int(5), reflect.TypeOf(float64(0)), float64(5)},
		{"int64 to float32", int64(2), reflect.TypeOf(float32(0)), float32(2)},
		{"uint64 in range to int", uint64(9), reflect.TypeOf(int(0)), int(9)},
		{"string passthrough", "hi", reflect.TypeOf(""), "hi"},
		{"bool passthrough", true, reflect.TypeOf(false), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convertArg(tt.value, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Interface())
		})
	}
}

func TestConvertArgRejectsLossyNumbers(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		target reflect.Type
	}{
		{"fractional float64 to int", float64(2.5), reflect.TypeOf(int(0))},
		{"fractional float32 to int64", float32(1.5), reflect.TypeOf(int64(0))},
		{"uint64 beyond MaxInt64", uint64(math.MaxUint64), reflect.TypeOf(int(0))},
		{"string to int", "seven", reflect.TypeOf(int(0))},
		{"nil to int", nil, reflect.TypeOf(int(0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := convertArg(tt.value, tt.target)
			require.ErrorIs(t, err, ErrArgumentTypeMismatch)
		})
	}
}

func TestConvertArgNilForNilableTypes(t *testing.T) {
	got, err := convertArg(nil, reflect.TypeOf((*int)(nil)))
	require.NoError(t, err)
	assert.True(t, got.IsNil())
}
