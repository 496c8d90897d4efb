// Package store persists full-fidelity game snapshots and win tallies in a
// BadgerDB database. Saving and scoring are driver responsibilities; the
// rule engine itself only provides the snapshot bytes.
package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"kingsiege/game"

	"github.com/dgraph-io/badger/v4"
)

const (
	slotPrefix = "save/"
	keyTally   = "tally"
)

// Tally counts finished games per winning side.
type Tally struct {
	GamesPlayed int `json:"games_played"`
	KingWins    int `json:"king_wins"`
	KnightWins  int `json:"knight_wins"`
}

type Store struct {
	db *badger.DB
}

// Open opens (or creates) the database under dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable badger's own logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame stores the complete state (board, scalars, move history) under a
// named slot, overwriting any previous save in that slot.
func (s *Store) SaveGame(slot string, gs *game.GameState) error {
	data, err := gs.Snapshot()
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(slotPrefix+slot), data)
	})
}

// LoadGame restores the state saved under slot. The caller supplies the
// rules and options again; they are wiring, not serialized state.
func (s *Store) LoadGame(slot string, rules game.Rules, opts ...game.Option) (*game.GameState, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(slotPrefix + slot))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, fmt.Errorf("no saved game in slot %q", slot)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load slot %q: %w", slot, err)
	}

	return game.RestoreSnapshot(data, rules, opts...)
}

func (s *Store) DeleteGame(slot string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(slotPrefix + slot))
	})
}

// Slots lists the names of every saved game.
func (s *Store) Slots() ([]string, error) {
	var slots []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(slotPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			slots = append(slots, strings.TrimPrefix(key, slotPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	return slots, nil
}

// LoadTally returns the win counters, zeroed when none were recorded yet.
func (s *Store) LoadTally() (*Tally, error) {
	tally := &Tally{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyTally))
		if err == badger.ErrKeyNotFound {
			return nil // Use zero tally
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, tally)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load tally: %w", err)
	}

	return tally, nil
}

// RecordResult bumps the tally for a finished game.
func (s *Store) RecordResult(winner int) error {
	tally, err := s.LoadTally()
	if err != nil {
		return err
	}

	tally.GamesPlayed++
	switch winner {
	case game.KingWinner:
		tally.KingWins++
	case game.KnightWinner:
		tally.KnightWins++
	}

	data, err := json.Marshal(tally)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyTally), data)
	})
}
