package db

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"newschat/models"
)

const chatPrefix = "chat:"

// DB keeps the /chat exchange log in badger.
type DB struct {
	badgerDB *badger.DB
	now      func() time.Time
}

func New(dbPath string) (*DB, error) {
	return open(badger.DefaultOptions(dbPath))
}

func open(opts badger.Options) (*DB, error) {
	opts.Logger = nil // badger's own logger is noisy at INFO

	badgerDB, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{badgerDB: badgerDB, now: time.Now}, nil
}

func (d *DB) Close() error {
	return d.badgerDB.Close()
}

// userPrefix escapes the user id so one user's prefix never matches another's keys.
func userPrefix(userID string) string {
	return chatPrefix + url.QueryEscape(userID) + ":"
}

// chatKey sorts by time within a user; the nanosecond stamp is zero padded
// so byte order matches chronological order.
func chatKey(userID string, at time.Time, id string) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", userPrefix(userID), at.UnixNano(), id))
}

// StoreChatHistory appends one exchange and returns it with ID and Timestamp set.
func (d *DB) StoreChatHistory(record models.ChatHistory) (models.ChatHistory, error) {
	at := d.now().UTC()
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.Timestamp = at.Format(time.RFC3339Nano)

	data, err := json.Marshal(record)
	if err != nil {
		return record, err
	}

	err = d.badgerDB.Update(func(txn *badger.Txn) error {
		return txn.Set(chatKey(record.UserID, at, record.ID), data)
	})
	if err != nil {
		return record, fmt.Errorf("failed to store chat history: %w", err)
	}
	return record, nil
}

// ListChatHistory returns up to limit exchanges for userID, newest first.
func (d *DB) ListChatHistory(userID string, limit int) ([]models.ChatHistory, error) {
	history := make([]models.ChatHistory, 0)
	if limit <= 0 {
		return history, nil
	}

	prefix := []byte(userPrefix(userID))
	err := d.badgerDB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		// In reverse mode Seek lands on the last key <= the seek key.
		seek := append(append([]byte{}, prefix...), 0xFF)
		for it.Seek(seek); it.ValidForPrefix(prefix) && len(history) < limit; it.Next() {
			var record models.ChatHistory
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			})
			if err != nil {
				return err
			}
			history = append(history, record)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read chat history: %w", err)
	}

	return history, nil
}
