package crypto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedUint32 struct {
	values []uint32
	pos    int
}

func (f *fixedUint32) Uint32() uint32 {
	v := f.values[f.pos]
	f.pos++
	return v
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name   string
		values []uint32
		n      int
		want   int
	}{
		{name: "zero bound", values: []uint32{7}, n: 0, want: 0},
		{name: "negative bound", values: []uint32{7}, n: -3, want: 0},
		{name: "modulo", values: []uint32{17}, n: 5, want: 2},
		{name: "max draw", values: []uint32{math.MaxUint32}, n: 10, want: 5},
		{name: "bound of one", values: []uint32{123456}, n: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fixedUint32{values: tt.values}
			assert.Equal(t, tt.want, Reduce(src, tt.n))
		})
	}
}

func TestReduce_ZeroBoundDoesNotDraw(t *testing.T) {
	src := &fixedUint32{values: []uint32{1}}
	Reduce(src, 0)
	assert.Equal(t, 0, src.pos)
}

func TestOSRandomSource_IntnStaysInRange(t *testing.T) {
	src := NewRandomSource()
	for _, n := range []int{1, 2, 10, 26, 94, 1000} {
		for range 500 {
			v := src.Intn(n)
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, n)
		}
	}
}

func TestOSRandomSource_CoversSmallRange(t *testing.T) {
	src := NewRandomSource()
	seen := make(map[int]bool)
	for range 2000 {
		seen[src.Intn(4)] = true
	}
	assert.Len(t, seen, 4)
}
