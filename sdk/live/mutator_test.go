package live

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutator_CreateAppliesOnSuccess(t *testing.T) {
	c, err := NewCollection(msgConfig())
	require.NoError(t, err)
	m := NewMutator(c)

	row, err := m.Create(context.Background(), func(ctx context.Context) (msg, error) {
		return msg{ID: 1, Text: "hello", SentAt: at(10)}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), row.ID)
	assert.Equal(t, 1, c.Len())
}

func TestMutator_CreateFailureLeavesStateUntouched(t *testing.T) {
	c, err := NewCollection(msgConfig())
	require.NoError(t, err)
	m := NewMutator(c)

	_, err = m.Create(context.Background(), func(ctx context.Context) (msg, error) {
		return msg{}, errors.New("server rejected")
	})

	assert.Error(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestMutator_UpdateAppliesOnSuccess(t *testing.T) {
	c, err := NewCollection(msgConfig())
	require.NoError(t, err)
	c.Replace([]msg{{ID: 1, Text: "old", SentAt: at(10)}})
	m := NewMutator(c)

	_, err = m.Update(context.Background(), func(ctx context.Context) (msg, error) {
		return msg{ID: 1, Text: "edited", SentAt: at(10)}, nil
	})

	require.NoError(t, err)
	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "edited", got.Text)
}

func TestMutator_UpdateFailureLeavesStateUntouched(t *testing.T) {
	c, err := NewCollection(msgConfig())
	require.NoError(t, err)
	c.Replace([]msg{{ID: 1, Text: "old", SentAt: at(10)}})
	m := NewMutator(c)

	_, err = m.Update(context.Background(), func(ctx context.Context) (msg, error) {
		return msg{}, errors.New("conflict")
	})

	assert.Error(t, err)
	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "old", got.Text)
}

func TestMutator_DeleteAppliesOnSuccess(t *testing.T) {
	c, err := NewCollection(msgConfig())
	require.NoError(t, err)
	c.Replace([]msg{{ID: 1, SentAt: at(10)}})
	m := NewMutator(c)

	err = m.Delete(context.Background(), 1, func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestMutator_DeleteFailureLeavesStateUntouched(t *testing.T) {
	c, err := NewCollection(msgConfig())
	require.NoError(t, err)
	c.Replace([]msg{{ID: 1, SentAt: at(10)}})
	m := NewMutator(c)

	err = m.Delete(context.Background(), 1, func(ctx context.Context) error {
		return errors.New("forbidden")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, c.Len())
}
