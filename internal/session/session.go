// Package session keeps per-user ephemeral interaction state: the chosen
// language and the pending content mode set when a calendar is opened. State
// lives only for the process lifetime; the store runs Badger in memory so a
// restart wipes everything by construction.
package session

import (
	"encoding/json"
	"fmt"
	"strconv"

	badger "github.com/dgraph-io/badger/v4"
)

// Mode records which content type the user intends to fetch once a calendar
// date is chosen.
type Mode string

const (
	ModeNone   Mode = ""
	ModeCipher Mode = "cipher"
	ModeCombo  Mode = "combo"
)

// State is one user's session record.
type State struct {
	Lang string `json:"lang"`
	Mode Mode   `json:"mode"`
}

// Default is the state of a user who has not interacted yet.
var Default = State{Lang: "en", Mode: ModeNone}

// Store is a keyed session store. Safe for concurrent use across distinct
// user IDs; one user's updates never touch another's record.
type Store struct {
	db *badger.DB
}

// Open creates the in-memory backing database.
func Open() (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the backing database.
func (s *Store) Close() error {
	return s.db.Close()
}

func sessionKey(userID int64) []byte {
	return []byte(strconv.FormatInt(userID, 10))
}

// Get returns the user's state, or the default for unknown users.
func (s *Store) Get(userID int64) (State, error) {
	state := Default
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(userID))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &state)
		})
	})
	if err != nil {
		return Default, fmt.Errorf("reading session for %d: %w", userID, err)
	}
	return state, nil
}

// SetLanguage overwrites the user's language, creating the record if needed.
func (s *Store) SetLanguage(userID int64, lang string) error {
	return s.update(userID, func(state *State) { state.Lang = lang })
}

// SetMode overwrites the user's pending content mode.
func (s *Store) SetMode(userID int64, mode Mode) error {
	return s.update(userID, func(state *State) { state.Mode = mode })
}

func (s *Store) update(userID int64, apply func(*State)) error {
	key := sessionKey(userID)
	err := s.db.Update(func(txn *badger.Txn) error {
		state := Default
		item, err := txn.Get(key)
		if err == nil {
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &state)
			}); err != nil {
				return err
			}
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		apply(&state)

		data, err := json.Marshal(state)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return fmt.Errorf("updating session for %d: %w", userID, err)
	}
	return nil
}
