package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAfterCommit_RunsImmediatelyOutsideTransaction(t *testing.T) {
	ran := false
	AfterCommit(context.Background(), func() { ran = true })
	assert.True(t, ran)
}

func TestAfterCommit_DefersInsideTransaction(t *testing.T) {
	hooks := &afterCommitHooks{}
	ctx := context.WithValue(context.Background(), afterCommitKey{}, hooks)

	calls := 0
	AfterCommit(ctx, func() { calls++ })
	AfterCommit(ctx, func() { calls++ })

	// Nothing fires until the transaction commits.
	assert.Equal(t, 0, calls)

	hooks.run()
	assert.Equal(t, 2, calls)

	// A second flush does not replay the hooks.
	hooks.run()
	assert.Equal(t, 2, calls)
}

func TestAfterCommit_RollbackDiscardsHooks(t *testing.T) {
	hooks := &afterCommitHooks{}
	ctx := context.WithValue(context.Background(), afterCommitKey{}, hooks)

	ran := false
	AfterCommit(ctx, func() { ran = true })

	// RunInTransaction only flushes on success; a failed transaction
	// drops the collected hooks with the context.
	assert.False(t, ran)
}
