package live

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type msg struct {
	ID     uint
	Text   string
	SentAt time.Time
}

func msgConfig() Config[uint, msg] {
	return Config[uint, msg]{
		IDOf: func(m msg) uint { return m.ID },
		Less: func(a, b msg) bool { return a.SentAt.Before(b.SentAt) },
	}
}

func at(sec int) time.Time {
	return time.Date(2026, 3, 1, 10, 0, sec, 0, time.UTC)
}

func ids(items []msg) []uint {
	out := make([]uint, 0, len(items))
	for _, m := range items {
		out = append(out, m.ID)
	}
	return out
}

func TestCollection_RequiresIDOf(t *testing.T) {
	_, err := NewCollection(Config[uint, msg]{})
	assert.Error(t, err)
}

func TestCollection_InsertKeepsChronologicalOrder(t *testing.T) {
	c, err := NewCollection(msgConfig())
	require.NoError(t, err)

	c.ApplyInsert(msg{ID: 2, SentAt: at(20)})
	c.ApplyInsert(msg{ID: 1, SentAt: at(10)})
	c.ApplyInsert(msg{ID: 3, SentAt: at(30)})

	assert.Equal(t, []uint{1, 2, 3}, ids(c.Items()))
}

func TestCollection_InsertIsIdempotent(t *testing.T) {
	c, err := NewCollection(msgConfig())
	require.NoError(t, err)

	// Optimistic insert followed by the redelivered feed event for the
	// same row must not duplicate it.
	row := msg{ID: 1, Text: "hello", SentAt: at(10)}
	c.ApplyInsert(row)
	c.ApplyInsert(row)
	c.ApplyInsert(msg{ID: 1, Text: "stale copy", SentAt: at(10)})

	require.Equal(t, 1, c.Len())
	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "hello", got.Text)
}

func TestCollection_UpdateReplacesInPlace(t *testing.T) {
	c, err := NewCollection(msgConfig())
	require.NoError(t, err)

	c.Replace([]msg{
		{ID: 1, Text: "first", SentAt: at(10)},
		{ID: 2, Text: "second", SentAt: at(20)},
	})

	c.ApplyUpdate(msg{ID: 2, Text: "edited", SentAt: at(20)})

	require.Equal(t, 2, c.Len())
	got, ok := c.Get(2)
	require.True(t, ok)
	assert.Equal(t, "edited", got.Text)
	assert.Equal(t, []uint{1, 2}, ids(c.Items()))
}

func TestCollection_UpdateAbsentDoesNotResurrect(t *testing.T) {
	c, err := NewCollection(msgConfig())
	require.NoError(t, err)

	c.ApplyInsert(msg{ID: 1, SentAt: at(10)})
	c.ApplyDelete(1)

	// A stale update arriving after the delete must stay a no-op.
	c.ApplyUpdate(msg{ID: 1, Text: "ghost", SentAt: at(10)})

	assert.Equal(t, 0, c.Len())
}

func TestCollection_DeleteAbsentIsNoOp(t *testing.T) {
	c, err := NewCollection(msgConfig())
	require.NoError(t, err)

	c.ApplyInsert(msg{ID: 1, SentAt: at(10)})

	c.ApplyDelete(99)
	c.ApplyDelete(1)
	c.ApplyDelete(1)

	assert.Equal(t, 0, c.Len())
}

func TestCollection_TerminalUpdateRemovesRow(t *testing.T) {
	type suggestion struct {
		ID     uint
		Status string
	}
	c, err := NewCollection(Config[uint, suggestion]{
		IDOf:     func(s suggestion) uint { return s.ID },
		Terminal: func(s suggestion) bool { return s.Status != "pending" },
	})
	require.NoError(t, err)

	c.Replace([]suggestion{{ID: 1, Status: "pending"}, {ID: 2, Status: "pending"}})

	c.ApplyUpdate(suggestion{ID: 1, Status: "accepted"})

	require.Equal(t, 1, c.Len())
	_, ok := c.Get(1)
	assert.False(t, ok)
}

func TestCollection_NilLessPrependsInserts(t *testing.T) {
	c, err := NewCollection(Config[uint, msg]{
		IDOf: func(m msg) uint { return m.ID },
	})
	require.NoError(t, err)

	c.Replace([]msg{{ID: 1}, {ID: 2}})
	c.ApplyInsert(msg{ID: 3})

	assert.Equal(t, []uint{3, 1, 2}, ids(c.Items()))
}

func TestCollection_NilLessUpdateKeepsPosition(t *testing.T) {
	c, err := NewCollection(Config[uint, msg]{
		IDOf: func(m msg) uint { return m.ID },
	})
	require.NoError(t, err)

	c.Replace([]msg{{ID: 1}, {ID: 2}, {ID: 3}})

	// An unordered collection preserves fetch order across updates;
	// only inserts prepend.
	c.ApplyUpdate(msg{ID: 3, Text: "edited"})

	assert.Equal(t, []uint{1, 2, 3}, ids(c.Items()))
	got, ok := c.Get(3)
	require.True(t, ok)
	assert.Equal(t, "edited", got.Text)
}

func TestCollection_UpdateResorts(t *testing.T) {
	c, err := NewCollection(msgConfig())
	require.NoError(t, err)

	c.Replace([]msg{
		{ID: 1, SentAt: at(10)},
		{ID: 2, SentAt: at(20)},
		{ID: 3, SentAt: at(30)},
	})

	c.ApplyUpdate(msg{ID: 1, SentAt: at(40)})

	assert.Equal(t, []uint{2, 3, 1}, ids(c.Items()))
}

func TestCollection_ItemsReturnsCopy(t *testing.T) {
	c, err := NewCollection(msgConfig())
	require.NoError(t, err)

	c.ApplyInsert(msg{ID: 1, Text: "original", SentAt: at(10)})

	items := c.Items()
	items[0].Text = "mutated"

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "original", got.Text)
}
