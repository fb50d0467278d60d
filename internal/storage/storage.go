// Package storage persists games in BadgerDB.
package storage

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/plyboard/internal/errors"
)

// Keys are gamePrefix + game id.
const gamePrefix = "game/"

func gameKey(id string) []byte {
	return []byte(gamePrefix + id)
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// Open opens the database in dir. An empty dir keeps everything in memory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", dir, err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save writes rec, replacing any record with the same id. Created is kept
// from the earlier record when there is one.
func (s *Storage) Save(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec.ID == "" {
		return errors.Wrap(errors.ErrInvalidGameID, "save: empty id")
	}

	return s.db.Update(func(txn *badger.Txn) error {
		prev, err := getRecord(txn, rec.ID)
		switch {
		case err == nil:
			rec.Created = prev.Created
		case !stderrors.Is(err, errors.ErrGameNotFound):
			return err
		}
		rec.Updated = time.Now().UTC()

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return txn.Set(gameKey(rec.ID), data)
	})
}

// Load reads the record for id, or returns ErrGameNotFound.
func (s *Storage) Load(ctx context.Context, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		rec, err = getRecord(txn, id)
		return err
	})
	return rec, err
}

// List returns the ids of all stored games, sorted.
func (s *Storage) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().KeyCopy(nil))
			ids = append(ids, strings.TrimPrefix(key, gamePrefix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(ids)
	return ids, nil
}

// LoadAll returns every stored record in key order, which is id order.
func (s *Storage) LoadAll(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var records []Record
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec Record
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes the record for id. Deleting an unknown id is not an error.
func (s *Storage) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(gameKey(id))
	})
}

func getRecord(txn *badger.Txn, id string) (Record, error) {
	var rec Record
	item, err := txn.Get(gameKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return rec, fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}
	if err != nil {
		return rec, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	})
	return rec, err
}
