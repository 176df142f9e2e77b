// Package test exercises a window.Store implementation generically, so
// the mem and redis backends can share one behavioural test.
package test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Al3x4n/Fast-DDS/persistence/window"
	"github.com/Al3x4n/Fast-DDS/pkg/seqnum"
)

const TestOwnerID = "reader-1"

// TestSuite drives store through load/save/delete and checks the
// snapshot comes back exactly as saved.
func TestSuite(t *testing.T, store window.Store) {
	a := assert.New(t)

	_, ok, err := store.Load(TestOwnerID)
	a.NoError(err)
	a.False(ok)

	snap := window.Snapshot{
		Base:    seqnum.FromHighLow(0, 1000),
		NumBits: 64,
		Words:   []uint32{0xFFFF0000, 0x0000FFFF},
	}
	a.NoError(store.Save(TestOwnerID, snap))

	got, ok, err := store.Load(TestOwnerID)
	a.NoError(err)
	a.True(ok)
	a.Equal(snap, got)

	snap.NumBits = 32
	snap.Words = []uint32{0xAAAAAAAA}
	a.NoError(store.Save(TestOwnerID, snap))
	got, ok, err = store.Load(TestOwnerID)
	a.NoError(err)
	a.True(ok)
	a.Equal(snap, got)

	a.NoError(store.Delete(TestOwnerID))
	_, ok, err = store.Load(TestOwnerID)
	a.NoError(err)
	a.False(ok)
}
