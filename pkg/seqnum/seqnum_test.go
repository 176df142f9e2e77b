package seqnum

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighLowRoundTrip(t *testing.T) {
	a := assert.New(t)
	s := FromHighLow(7, 42)
	high, low := s.HighLow()
	a.EqualValues(7, high)
	a.EqualValues(42, low)
}

func TestDiff(t *testing.T) {
	a := assert.New(t)
	base := FromHighLow(0, 1000)
	a.EqualValues(5, Diff(FromHighLow(0, 1005), base))
	a.EqualValues(0, Diff(base, base))
}

func TestDiffPanicsWhenDescending(t *testing.T) {
	a := assert.New(t)
	a.Panics(func() {
		Diff(FromHighLow(0, 10), FromHighLow(0, 20))
	})
}

func TestWireRoundTrip(t *testing.T) {
	a := assert.New(t)
	s := FromHighLow(-1, 123456)
	var buf bytes.Buffer
	a.NoError(WriteSequenceNumber(&buf, s))
	got, err := ReadSequenceNumber(&buf)
	a.NoError(err)
	a.Equal(s, got)
}
