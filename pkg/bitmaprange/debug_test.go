package bitmaprange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugRoaringMatchesForEach(t *testing.T) {
	a := assert.New(t)
	r := NewWithBase[uint64](1000)
	r.Add(1000)
	r.Add(1005)
	r.Add(1255)

	rb := r.DebugRoaring()
	a.EqualValues(3, rb.GetCardinality())
	a.True(rb.Contains(0))
	a.True(rb.Contains(5))
	a.True(rb.Contains(255))
	a.False(rb.Contains(1))
}
