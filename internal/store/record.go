package store

import (
	"context"
	"fmt"

	"github.com/kavitha/econ101/ent"
	"github.com/kavitha/econ101/ent/record"
)

// recordRepo implements RecordRepo using the ent client.
type recordRepo struct {
	client *ent.Client
}

func (r *recordRepo) Get(ctx context.Context, key string) ([]byte, error) {
	rec, err := r.client.Record.Query().
		Where(record.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get record %q: %w", key, err)
	}
	return rec.Data, nil
}

func (r *recordRepo) Put(ctx context.Context, key string, data []byte) error {
	n, err := r.client.Record.Update().
		Where(record.Key(key)).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update record %q: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	// First write for this key. Single-user app: no writer can appear
	// between the update and the create.
	_, err = r.client.Record.Create().
		SetKey(key).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create record %q: %w", key, err)
	}
	return nil
}

func (r *recordRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.Record.Delete().
		Where(record.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}
