package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Al3x4n/Fast-DDS/pkg/bitmaprange"
	"github.com/Al3x4n/Fast-DDS/pkg/seqnum"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	a := assert.New(t)

	r := bitmaprange.NewWithBase[seqnum.SequenceNumber](1000, bitmaprange.WithDiff[seqnum.SequenceNumber](seqnum.Diff))
	r.Add(1000)
	r.Add(1005)
	r.Add(1255)

	var buf bytes.Buffer
	a.NoError(Marshal(&buf, r))

	base, numBits, words, err := Unmarshal(&buf)
	a.NoError(err)
	a.EqualValues(1000, base)
	a.EqualValues(256, numBits)

	r2 := bitmaprange.NewWithBase[seqnum.SequenceNumber](0, bitmaprange.WithDiff[seqnum.SequenceNumber](seqnum.Diff))
	ApplyTo(r2, base, numBits, words)

	var got []seqnum.SequenceNumber
	r2.ForEach(func(item seqnum.SequenceNumber) {
		got = append(got, item)
	})
	a.Equal([]seqnum.SequenceNumber{1000, 1005, 1255}, got)
}

func TestUnmarshalTruncated(t *testing.T) {
	a := assert.New(t)
	_, _, _, err := Unmarshal(bytes.NewReader([]byte{1, 2, 3}))
	a.Error(err)
}
