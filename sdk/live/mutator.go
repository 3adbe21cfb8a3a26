package live

import "context"

// Mutator applies optimistic writes: the remote write runs first and the
// local collection is only touched on success, so a failed write leaves
// local state exactly as it was. The later feed event for the same row
// reconciles as a no-op under the collection's idempotent rules.
type Mutator[ID comparable, T any] struct {
	collection *Collection[ID, T]
}

func NewMutator[ID comparable, T any](collection *Collection[ID, T]) *Mutator[ID, T] {
	return &Mutator[ID, T]{collection: collection}
}

// Create runs the remote create and inserts the returned row locally.
func (m *Mutator[ID, T]) Create(ctx context.Context, write func(ctx context.Context) (T, error)) (T, error) {
	row, err := write(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	m.collection.ApplyInsert(row)
	return row, nil
}

// Update runs the remote update and replaces the local copy.
func (m *Mutator[ID, T]) Update(ctx context.Context, write func(ctx context.Context) (T, error)) (T, error) {
	row, err := write(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	m.collection.ApplyUpdate(row)
	return row, nil
}

// Delete runs the remote delete and removes the local copy.
func (m *Mutator[ID, T]) Delete(ctx context.Context, id ID, write func(ctx context.Context) error) error {
	if err := write(ctx); err != nil {
		return err
	}
	m.collection.ApplyDelete(id)
	return nil
}
