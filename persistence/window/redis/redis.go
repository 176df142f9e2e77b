// Package redis is the Redis-backed window.Store, using
// github.com/gomodule/redigo for the connection pool and
// github.com/klauspost/compress/zstd to shrink the snapshot blob before
// writing it -- the word array re-zeroes on every rebase, which
// compresses well at scale.
package redis

import (
	"bytes"
	"encoding/binary"

	"github.com/gomodule/redigo/redis"
	"github.com/klauspost/compress/zstd"

	"github.com/Al3x4n/Fast-DDS/persistence/window"
	"github.com/Al3x4n/Fast-DDS/pkg/seqnum"
)

const keyPrefix = "bitmaprange:window:"

var _ window.Store = (*Store)(nil)

// Store persists window snapshots as a single compressed blob per owner.
type Store struct {
	pool *redis.Pool
}

// Options configures a Store.
type Options struct {
	Pool *redis.Pool
}

// New returns a Store backed by opts.Pool.
func New(opts Options) *Store {
	return &Store{pool: opts.Pool}
}

func key(ownerID string) string {
	return keyPrefix + ownerID
}

func (s *Store) Load(ownerID string) (window.Snapshot, bool, error) {
	c := s.pool.Get()
	defer c.Close()

	blob, err := redis.Bytes(c.Do("GET", key(ownerID)))
	if err == redis.ErrNil {
		return window.Snapshot{}, false, nil
	}
	if err != nil {
		return window.Snapshot{}, false, err
	}
	snap, err := decodeSnapshot(blob)
	if err != nil {
		return window.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (s *Store) Save(ownerID string, snap window.Snapshot) error {
	blob, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}
	c := s.pool.Get()
	defer c.Close()
	_, err = c.Do("SET", key(ownerID), blob)
	return err
}

func (s *Store) Delete(ownerID string) error {
	c := s.pool.Get()
	defer c.Close()
	_, err := c.Do("DEL", key(ownerID))
	return err
}

func encodeSnapshot(snap window.Snapshot) ([]byte, error) {
	var raw bytes.Buffer
	var hdr [12]byte
	binary.BigEndian.PutUint64(hdr[0:8], uint64(snap.Base))
	binary.BigEndian.PutUint32(hdr[8:12], snap.NumBits)
	raw.Write(hdr[:])
	for _, w := range snap.Words {
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], w)
		raw.Write(buf[:])
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(raw.Bytes(), nil), nil
}

func decodeSnapshot(blob []byte) (window.Snapshot, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return window.Snapshot{}, err
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(blob, nil)
	if err != nil {
		return window.Snapshot{}, err
	}
	if len(raw) < 12 {
		return window.Snapshot{}, redis.ErrNil
	}
	snap := window.Snapshot{
		Base:    seqnum.SequenceNumber(binary.BigEndian.Uint64(raw[0:8])),
		NumBits: binary.BigEndian.Uint32(raw[8:12]),
	}
	wordBytes := raw[12:]
	snap.Words = make([]uint32, len(wordBytes)/4)
	for i := range snap.Words {
		snap.Words[i] = binary.BigEndian.Uint32(wordBytes[i*4 : i*4+4])
	}
	return snap, nil
}
