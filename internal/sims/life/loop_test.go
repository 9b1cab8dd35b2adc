package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopDetectorBucketsByLiveCount(t *testing.T) {
	d := NewLoopDetector()

	states := []BoardState{
		NewBoardState([]Coord{{0, 0}}, 0),
		NewBoardState([]Coord{{0, 0}, {1, 1}}, 1),
		NewBoardState([]Coord{{2, 2}}, 2),
	}
	for _, s := range states {
		_, looped := d.Observe(s)
		require.False(t, looped)
	}

	assert.Equal(t, 3, d.Snapshots())
	assert.Equal(t, 2, d.Buckets())
	assert.Len(t, d.Bucket(1), 2)
	assert.Len(t, d.Bucket(2), 1)
	assert.Empty(t, d.Bucket(5))
}

func TestLoopDetectorReportsEarliestMatch(t *testing.T) {
	d := NewLoopDetector()
	a := []Coord{{0, 0}, {0, 1}}
	b := []Coord{{1, 0}, {1, 1}}

	d.Observe(NewBoardState(a, 0))
	d.Observe(NewBoardState(b, 1))

	loop, looped := d.Observe(NewBoardState(a, 2))
	require.True(t, looped)
	assert.Equal(t, Loop{First: 0, Repeat: 2}, loop)
	assert.Equal(t, 2, loop.Period())
	assert.Equal(t, 2, d.Snapshots(), "a repeated state is not archived")

	seen, ok := d.Find(NewBoardState(b, 99))
	require.True(t, ok)
	assert.Equal(t, 1, seen.Turn())
}

func TestLoopDetectorBucketIsCopy(t *testing.T) {
	d := NewLoopDetector()
	d.Observe(NewBoardState([]Coord{{0, 0}}, 0))

	bucket := d.Bucket(1)
	bucket[0] = NewBoardState([]Coord{{5, 5}}, 3)

	_, ok := d.Find(NewBoardState([]Coord{{0, 0}}, 8))
	assert.True(t, ok)
}
