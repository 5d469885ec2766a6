package jtdinfer_test

import (
	"testing"

	jtd "github.com/jsontypedef/json-typedef-go"
	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/jtdinfer/jtdinfer"
)

func TestInferredNumberDefaultAlwaysHonoredWhenEmpty(t *testing.T) {
	t.Parallel()

	n := jtdinfer.NewInferredNumber()

	tcs := map[string]struct {
		def  jtdinfer.NumType
		want jtd.Type
	}{
		"uint8": {
			def:  jtdinfer.NumUint8,
			want: jtd.TypeUint8,
		},
		"int8": {
			def:  jtdinfer.NumInt8,
			want: jtd.TypeInt8,
		},
		"uint16": {
			def:  jtdinfer.NumUint16,
			want: jtd.TypeUint16,
		},
		"int16": {
			def:  jtdinfer.NumInt16,
			want: jtd.TypeInt16,
		},
		"uint32": {
			def:  jtdinfer.NumUint32,
			want: jtd.TypeUint32,
		},
		"int32": {
			def:  jtdinfer.NumInt32,
			want: jtd.TypeInt32,
		},
		"float32": {
			def:  jtdinfer.NumFloat32,
			want: jtd.TypeFloat32,
		},
		"float64": {
			def:  jtdinfer.NumFloat64,
			want: jtd.TypeFloat64,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, n.Project(tc.def))
		})
	}
}

func TestInferredNumberUint8Range(t *testing.T) {
	t.Parallel()

	n := jtdinfer.NewInferredNumber().Observe(0).Observe(255)

	tcs := map[string]struct {
		def  jtdinfer.NumType
		want jtd.Type
	}{
		"uint8 default fits": {
			def:  jtdinfer.NumUint8,
			want: jtd.TypeUint8,
		},
		"int8 default too narrow, falls to candidate scan": {
			def:  jtdinfer.NumInt8,
			want: jtd.TypeUint8,
		},
		"uint16 default fits": {
			def:  jtdinfer.NumUint16,
			want: jtd.TypeUint16,
		},
		"int16 default fits": {
			def:  jtdinfer.NumInt16,
			want: jtd.TypeInt16,
		},
		"uint32 default fits": {
			def:  jtdinfer.NumUint32,
			want: jtd.TypeUint32,
		},
		"int32 default fits": {
			def:  jtdinfer.NumInt32,
			want: jtd.TypeInt32,
		},
		"float32 default": {
			def:  jtdinfer.NumFloat32,
			want: jtd.TypeFloat32,
		},
		"float64 default": {
			def:  jtdinfer.NumFloat64,
			want: jtd.TypeFloat64,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, n.Project(tc.def))
		})
	}
}

func TestInferredNumberInt8Range(t *testing.T) {
	t.Parallel()

	n := jtdinfer.NewInferredNumber().Observe(-128).Observe(127)

	tcs := map[string]struct {
		def  jtdinfer.NumType
		want jtd.Type
	}{
		"uint8 default cannot hold negatives, scan finds int8": {
			def:  jtdinfer.NumUint8,
			want: jtd.TypeInt8,
		},
		"int8 default fits": {
			def:  jtdinfer.NumInt8,
			want: jtd.TypeInt8,
		},
		"uint16 default cannot hold negatives, scan finds int8": {
			def:  jtdinfer.NumUint16,
			want: jtd.TypeInt8,
		},
		"int16 default fits": {
			def:  jtdinfer.NumInt16,
			want: jtd.TypeInt16,
		},
		"uint32 default cannot hold negatives, scan finds int8": {
			def:  jtdinfer.NumUint32,
			want: jtd.TypeInt8,
		},
		"int32 default fits": {
			def:  jtdinfer.NumInt32,
			want: jtd.TypeInt32,
		},
		"float32 default": {
			def:  jtdinfer.NumFloat32,
			want: jtd.TypeFloat32,
		},
		"float64 default": {
			def:  jtdinfer.NumFloat64,
			want: jtd.TypeFloat64,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, n.Project(tc.def))
		})
	}
}

func TestInferredNumberNonIntegralForcesFloat(t *testing.T) {
	t.Parallel()

	n := jtdinfer.NewInferredNumber().Observe(0.5)

	tcs := map[string]struct {
		def  jtdinfer.NumType
		want jtd.Type
	}{
		"uint8": {
			def:  jtdinfer.NumUint8,
			want: jtd.TypeFloat64,
		},
		"int8": {
			def:  jtdinfer.NumInt8,
			want: jtd.TypeFloat64,
		},
		"uint16": {
			def:  jtdinfer.NumUint16,
			want: jtd.TypeFloat64,
		},
		"int16": {
			def:  jtdinfer.NumInt16,
			want: jtd.TypeFloat64,
		},
		"uint32": {
			def:  jtdinfer.NumUint32,
			want: jtd.TypeFloat64,
		},
		"int32": {
			def:  jtdinfer.NumInt32,
			want: jtd.TypeFloat64,
		},
		"float32": {
			def:  jtdinfer.NumFloat32,
			want: jtd.TypeFloat32,
		},
		"float64": {
			def:  jtdinfer.NumFloat64,
			want: jtd.TypeFloat64,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, n.Project(tc.def))
		})
	}
}

// TestInferredNumberBoundaries walks the exact two's-complement boundary
// values, each observed alone against the default Uint8 preference, and
// checks the projected type is the narrowest type containing it.
func TestInferredNumberBoundaries(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		value float64
		want  jtd.Type
	}{
		"0": {
			value: 0,
			want:  jtd.TypeUint8,
		},
		"127": {
			value: 127,
			want:  jtd.TypeUint8,
		},
		"128": {
			value: 128,
			want:  jtd.TypeUint8,
		},
		"255": {
			value: 255,
			want:  jtd.TypeUint8,
		},
		"256": {
			value: 256,
			want:  jtd.TypeUint16,
		},
		"-1": {
			value: -1,
			want:  jtd.TypeInt8,
		},
		"-128": {
			value: -128,
			want:  jtd.TypeInt8,
		},
		"-129": {
			value: -129,
			want:  jtd.TypeInt16,
		},
		"65535": {
			value: 65535,
			want:  jtd.TypeUint16,
		},
		"65536": {
			value: 65536,
			want:  jtd.TypeUint32,
		},
		"2^31-1": {
			value: 2147483647,
			want:  jtd.TypeUint32,
		},
		"2^31": {
			value: 2147483648,
			want:  jtd.TypeUint32,
		},
		"2^32-1": {
			value: 4294967295,
			want:  jtd.TypeUint32,
		},
		"2^32": {
			value: 4294967296,
			want:  jtd.TypeFloat64,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			n := jtdinfer.NewInferredNumber().Observe(tc.value)
			assert.Equal(t, tc.want, n.Project(jtdinfer.NumUint8))
		})
	}
}
