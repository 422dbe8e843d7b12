package cursorstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const badgerPrefix = "cursor:"

// Badger persists cursors in an embedded badger database. Entries expire
// after ttl when it is positive.
type Badger struct {
	db  *badger.DB
	ttl time.Duration
}

// OpenBadger opens the database at path, or an in-memory one when path is
// empty.
func OpenBadger(path string, ttl time.Duration) (*Badger, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Badger{db: db, ttl: ttl}, nil
}

func (b *Badger) Put(_ context.Context, e Entry) (string, error) {
	stamp(&e)
	data, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("failed to serialize cursor: %w", err)
	}
	id := newID()
	err = b.db.Update(func(txn *badger.Txn) error {
		ent := badger.NewEntry([]byte(badgerPrefix+id), data)
		if b.ttl > 0 {
			ent = ent.WithTTL(b.ttl)
		}
		return txn.SetEntry(ent)
	})
	if err != nil {
		return "", fmt.Errorf("failed to write cursor: %w", err)
	}
	return id, nil
}

func (b *Badger) Get(_ context.Context, id string) (Entry, error) {
	var e Entry
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &e)
		})
	})
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (b *Badger) Close() error { return b.db.Close() }
