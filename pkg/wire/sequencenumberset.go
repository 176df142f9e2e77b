// Package wire marshals a bitmaprange.BitmapRange[seqnum.SequenceNumber]
// to and from the RTPS SequenceNumberSet submessage element: a leading
// base, a 32-bit numBits field, and ceil(numBits/32) 32-bit words, all
// big-endian at the wire boundary. Endian swapping beyond that boundary
// -- into whatever the surrounding submessage framing expects -- is the
// caller's responsibility, per the bitmap's own wire contract.
package wire

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/Al3x4n/Fast-DDS/pkg/bitmaprange"
	"github.com/Al3x4n/Fast-DDS/pkg/seqnum"
)

// Marshal writes r's current state as a SequenceNumberSet: base, then
// numBits, then its significant words.
func Marshal(w io.Writer, r *bitmaprange.BitmapRange[seqnum.SequenceNumber]) error {
	if err := seqnum.WriteSequenceNumber(w, r.Base()); err != nil {
		return errors.Wrap(err, "write base")
	}
	numBits, words, numWordsUsed := r.BitmapGet()
	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], numBits)
	if _, err := w.Write(hdr[:]); err != nil {
		return errors.Wrap(err, "write numBits")
	}
	for i := uint32(0); i < numWordsUsed; i++ {
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], words[i])
		if _, err := w.Write(buf[:]); err != nil {
			return errors.Wrap(err, "write word")
		}
	}
	return nil
}

// Unmarshal reads a SequenceNumberSet and returns its fields uninterpreted
// -- callers apply them via BitmapRange.SetBase and BitmapRange.BitmapSet,
// since the destination window's capacity is a construction-time choice
// this package has no opinion on.
func Unmarshal(r io.Reader) (base seqnum.SequenceNumber, numBits uint32, words []uint32, err error) {
	base, err = seqnum.ReadSequenceNumber(r)
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "read base")
	}
	var hdr [4]byte
	if _, err = io.ReadFull(r, hdr[:]); err != nil {
		return 0, 0, nil, errors.Wrap(err, "read numBits")
	}
	numBits = binary.BigEndian.Uint32(hdr[:])
	numWords := (numBits + 31) / 32
	words = make([]uint32, numWords)
	for i := uint32(0); i < numWords; i++ {
		var buf [4]byte
		if _, err = io.ReadFull(r, buf[:]); err != nil {
			return 0, 0, nil, errors.Wrap(err, "read word")
		}
		words[i] = binary.BigEndian.Uint32(buf[:])
	}
	return base, numBits, words, nil
}

// ApplyTo resets dst to base and numBits/words read from Unmarshal, in
// one call -- the common case for a reader/writer applying an inbound
// SequenceNumberSet to its tracking window.
func ApplyTo(dst *bitmaprange.BitmapRange[seqnum.SequenceNumber], base seqnum.SequenceNumber, numBits uint32, words []uint32) {
	dst.SetBase(base)
	dst.BitmapSet(numBits, words)
}
