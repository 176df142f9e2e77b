// Package seqnum provides the RTPS SequenceNumber type: the canonical
// instantiation of bitmaprange.Item used to track ACK/NACK and heartbeat
// state for a reader or writer.
package seqnum

import (
	"encoding/binary"
	"fmt"
	"io"
)

// SequenceNumber is a 64-bit RTPS sequence number. On the wire it is
// split into a signed 32-bit high word and an unsigned 32-bit low word
// (the RTPS SequenceNumber_t); this type combines the two into a single
// uint64 for ordering and arithmetic, the same way the original
// implementation's to64long() convention does.
type SequenceNumber uint64

// Unknown is the RTPS SEQUENCENUMBER_UNKNOWN sentinel: high = -1, low = 0.
const Unknown SequenceNumber = SequenceNumber(uint64(0xFFFFFFFF) << 32)

// FromHighLow combines the wire representation into a SequenceNumber.
func FromHighLow(high int32, low uint32) SequenceNumber {
	return SequenceNumber(uint64(uint32(high))<<32 | uint64(low))
}

// HighLow splits a SequenceNumber back into its wire representation.
func (s SequenceNumber) HighLow() (high int32, low uint32) {
	return int32(uint32(uint64(s) >> 32)), uint32(s)
}

func (s SequenceNumber) String() string {
	high, low := s.HighLow()
	return fmt.Sprintf("%d:%d", high, low)
}

// Diff is the canonical bitmaprange.DiffFunc for SequenceNumber: the
// number of unit steps from b to a. It panics if a < b or if the
// distance does not fit in 32 bits -- both are documented precondition
// violations (the caller guaranteed no overflow within the window), not
// runtime faults to recover from.
func Diff(a, b SequenceNumber) uint32 {
	if a < b {
		panic("seqnum: Diff called with a < b")
	}
	d := uint64(a - b)
	if d > 0xFFFFFFFF {
		panic("seqnum: Diff overflows uint32")
	}
	return uint32(d)
}

// WriteSequenceNumber writes s as two big-endian 32-bit words (high then
// low), matching the RTPS wire layout.
func WriteSequenceNumber(w io.Writer, s SequenceNumber) error {
	high, low := s.HighLow()
	var buf [8]byte
	binary.BigEndian.PutUint32(buf[0:4], uint32(high))
	binary.BigEndian.PutUint32(buf[4:8], low)
	_, err := w.Write(buf[:])
	return err
}

// ReadSequenceNumber reads a SequenceNumber from its RTPS wire layout.
func ReadSequenceNumber(r io.Reader) (SequenceNumber, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	high := int32(binary.BigEndian.Uint32(buf[0:4]))
	low := binary.BigEndian.Uint32(buf[4:8])
	return FromHighLow(high, low), nil
}
