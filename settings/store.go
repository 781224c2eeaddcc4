// Package settings persists the user's export preferences in a local
// key-value store. Reads always succeed from the caller's point of view: a
// missing key or an unreadable store falls back to defaults so an export is
// never blocked on preferences.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"

	"cunycal/calendar"
)

const exportKey = "settings:export"

// Store is a badger-backed settings store.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the settings database at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening settings store: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a store that lives only for the process lifetime.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening in-memory settings store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Get returns the stored export settings, or the defaults when the key is
// absent or the read fails.
func (s *Store) Get(ctx context.Context) calendar.ExportSettings {
	out := calendar.ExportSettings{ReminderMinutes: calendar.DefaultReminderMinutes}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(exportKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &out)
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			log.Warn().Err(err).Msg("settings read failed, using defaults")
		}
		return calendar.ExportSettings{ReminderMinutes: calendar.DefaultReminderMinutes}
	}
	return out
}

// Put persists the export settings.
func (s *Store) Put(ctx context.Context, settings calendar.ExportSettings) error {
	buf, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(exportKey), buf)
	})
	if err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
