package dirty

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	data []byte
}

func (f *fakeTarget) Bytes() []byte { return f.data }
func (f *fakeTarget) FD() int       { return -1 }

func TestTracker_AddAndPending(t *testing.T) {
	tr := NewTracker(&fakeTarget{})
	tr.Add(10, 20)
	tr.Add(100, 1)

	p := tr.Pending()
	require.Len(t, p, 2)
	assert.Equal(t, Range{Off: 10, Len: 20}, p[0])
	assert.Equal(t, Range{Off: 100, Len: 1}, p[1])
}

func TestTracker_CoalescePageAligns(t *testing.T) {
	tr := NewTracker(&fakeTarget{})
	tr.Add(10, 20)

	c := tr.Coalesced()
	require.Len(t, c, 1)
	assert.Equal(t, Range{Off: 0, Len: 4096}, c[0])
}

func TestTracker_CoalesceMergesSamePage(t *testing.T) {
	tr := NewTracker(&fakeTarget{})
	tr.Add(10, 20)
	tr.Add(3000, 50)
	tr.Add(4000, 200) // crosses into the second page

	c := tr.Coalesced()
	require.Len(t, c, 1)
	assert.Equal(t, Range{Off: 0, Len: 8192}, c[0])
}

func TestTracker_CoalesceKeepsDistantRangesApart(t *testing.T) {
	tr := NewTracker(&fakeTarget{})
	tr.Add(100_000, 10)
	tr.Add(10, 20) // out of order on purpose

	c := tr.Coalesced()
	require.Len(t, c, 2)
	assert.Equal(t, Range{Off: 0, Len: 4096}, c[0])
	assert.Equal(t, Range{Off: 98304, Len: 4096}, c[1])
}

func TestTracker_CoalesceMergesAdjacentPages(t *testing.T) {
	tr := NewTracker(&fakeTarget{})
	tr.Add(0, 100)
	tr.Add(4096, 100)

	c := tr.Coalesced()
	require.Len(t, c, 1)
	assert.Equal(t, Range{Off: 0, Len: 8192}, c[0])
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker(&fakeTarget{})
	tr.Add(0, 10)
	tr.Reset()
	assert.Empty(t, tr.Pending())
	assert.Nil(t, tr.Coalesced())
}

func TestTracker_FlushNothingIsNoop(t *testing.T) {
	tr := NewTracker(&fakeTarget{})
	require.NoError(t, tr.Flush(context.Background()))
	require.NoError(t, tr.Commit(context.Background(), FlushAuto))
}

func TestTracker_FlushCancelled(t *testing.T) {
	tr := NewTracker(&fakeTarget{data: make([]byte, 8192)})
	tr.Add(0, 100)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, tr.Flush(ctx), context.Canceled)
	assert.NotEmpty(t, tr.Pending(), "a cancelled flush keeps its ranges")
}

func TestTracker_FlushEmptyTargetDrainsRanges(t *testing.T) {
	tr := NewTracker(&fakeTarget{})
	tr.Add(0, 100)
	require.NoError(t, tr.Flush(context.Background()))
	assert.Empty(t, tr.Pending())
}
