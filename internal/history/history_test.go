package history

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is an originator whose state is a list of ints.
type counter struct {
	values []int
}

func (c *counter) Snapshot() Memento[int] {
	v := make([]int, len(c.values))
	copy(v, c.values)
	return NewMemento(v)
}

func (c *counter) Restore(m Memento[int]) {
	c.values = append([]int(nil), m.Items()...)
}

func (c *counter) push(v int) { c.values = append(c.values, v) }

func TestUndoRedoRoundTrip(t *testing.T) {
	c := &counter{}
	h := New[int](c)
	assert.False(t, h.CanUndo())

	h.Record()
	c.push(1)
	h.Record()
	c.push(2)

	require.NoError(t, h.Undo())
	assert.Equal(t, []int{1}, c.values)
	assert.True(t, h.CanRedo())

	require.NoError(t, h.Redo())
	assert.Equal(t, []int{1, 2}, c.values)

	require.NoError(t, h.Undo())
	require.NoError(t, h.Undo())
	assert.Empty(t, c.values)
	assert.True(t, errors.Is(h.Undo(), ErrEmptyHistory))

	require.NoError(t, h.Redo())
	require.NoError(t, h.Redo())
	assert.Equal(t, []int{1, 2}, c.values)
	assert.Equal(t, ErrEmptyHistory, h.Redo())
}

func TestRecordClearsRedo(t *testing.T) {
	c := &counter{}
	h := New[int](c)
	h.Record()
	c.push(1)
	require.NoError(t, h.Undo())
	require.True(t, h.CanRedo())

	h.Record()
	c.push(7)
	assert.False(t, h.CanRedo())
}

func TestCapacityEvictsOldest(t *testing.T) {
	c := &counter{}
	h := New[int](c)
	for i := 0; i < 40; i++ {
		h.Record()
		c.push(i)
	}
	undo, _ := h.Depth()
	assert.Equal(t, DefaultCapacity, undo)

	for i := 0; i < DefaultCapacity; i++ {
		require.NoError(t, h.Undo())
	}
	assert.False(t, h.CanUndo())
	// The eight oldest states were evicted: the earliest reachable state
	// holds the first eight values.
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, c.values)
	assert.Equal(t, ErrEmptyHistory, h.Undo())
	assert.Len(t, c.values, 8)
}

func TestCustomCapacity(t *testing.T) {
	c := &counter{}
	h := New[int](c, WithCapacity[int](2))
	for i := 0; i < 3; i++ {
		h.Record()
		c.push(i)
	}
	undo, _ := h.Depth()
	assert.Equal(t, 2, undo)
}

func TestDiscardAndRollback(t *testing.T) {
	c := &counter{}
	h := New[int](c)

	h.Record()
	c.push(1)
	require.NoError(t, h.Discard())
	assert.Equal(t, []int{1}, c.values, "discard keeps the current state")
	assert.False(t, h.CanUndo())

	h.Record()
	c.push(2)
	require.NoError(t, h.Rollback())
	assert.Equal(t, []int{1}, c.values)
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	assert.Equal(t, ErrEmptyHistory, h.Discard())
	assert.Equal(t, ErrEmptyHistory, h.Rollback())
}

func TestDroppedRecordKeepsRedo(t *testing.T) {
	c := &counter{}
	h := New[int](c)
	h.Record()
	c.push(1)
	h.Record()
	c.push(2)
	require.NoError(t, h.Undo())
	require.NoError(t, h.Undo())

	h.Record()
	c.push(9)
	assert.False(t, h.CanRedo())
	require.NoError(t, h.Discard())
	c.values = nil
	_, redo := h.Depth()
	assert.Equal(t, 2, redo, "a discarded record leaves redo intact")

	h.Record()
	c.push(9)
	require.NoError(t, h.Rollback())
	assert.Empty(t, c.values)
	require.NoError(t, h.Redo())
	require.NoError(t, h.Redo())
	assert.Equal(t, []int{1, 2}, c.values)

	require.NoError(t, h.Undo())
	h.Record()
	require.NoError(t, h.Undo())
	_, redo = h.Depth()
	assert.Equal(t, 1, redo, "an undo commits the cleared redo entries")
}

func TestClearReleasesSnapshots(t *testing.T) {
	c := &counter{values: []int{1}}
	h := New[int](c)
	h.Record()
	h.Record()
	backing := h.undo.items[:2]
	h.Clear()
	for _, m := range backing {
		assert.Zero(t, m.Len())
	}
}

func TestSnapshotIsolation(t *testing.T) {
	c := &counter{values: []int{1}}
	h := New[int](c)
	h.Record()
	c.values[0] = 99
	require.NoError(t, h.Undo())
	assert.Equal(t, []int{1}, c.values)
}

func TestOnChange(t *testing.T) {
	c := &counter{}
	h := New[int](c)
	calls := 0
	h.OnChange(func() { calls++ })
	h.Record()
	_ = h.Undo()
	_ = h.Undo()
	assert.Equal(t, 2, calls, "a failed undo does not notify")
}
