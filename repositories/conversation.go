//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
package repositories

import (
	"chat-relay/errors"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type IConversationRepository interface {
	Get(chatID string) (string, error)
	Put(chatID, conversationID string) error
}

// ConversationRepository persists the chatID -> conversationID mapping in
// BadgerDB. A cache hit is trusted without revalidation against the
// platform; at most one entry exists per chatID.
type ConversationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewConversationRepository(db *badger.DB, log *slog.Logger) ConversationRepository {
	return ConversationRepository{db: db, log: log}
}

// conversationRecord is the stored value. CreatedAt is kept for
// operational inspection only; lookups never filter on it.
type conversationRecord struct {
	ConversationID string    `json:"conversation_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// Keys live under a per-user subtree so unrelated user state can share
// the store later without key collisions.
func conversationKey(chatID string) []byte {
	return []byte(fmt.Sprintf("user:%s:1on1", chatID))
}

// Get returns the cached conversation id for chatID, or
// errors.ErrConversationNotCached when no entry exists.
func (r ConversationRepository) Get(chatID string) (string, error) {
	var record conversationRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(conversationKey(chatID))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &record)
		})
	})
	if err == badger.ErrKeyNotFound {
		return "", errors.ErrConversationNotCached
	}
	if err != nil {
		return "", fmt.Errorf("conversation cache read for %s: %w", chatID, err)
	}
	return record.ConversationID, nil
}

// Put writes the mapping and flushes it to disk. The flush must complete
// before the conversation id is used, so a crash cannot leave a
// provisioned conversation unknown to the cache.
func (r ConversationRepository) Put(chatID, conversationID string) error {
	value, err := json.Marshal(conversationRecord{
		ConversationID: conversationID,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(conversationKey(chatID), value)
	})
	if err != nil {
		return fmt.Errorf("conversation cache write for %s: %w", chatID, err)
	}
	if err = r.db.Sync(); err != nil {
		return fmt.Errorf("conversation cache flush for %s: %w", chatID, err)
	}
	r.log.Debug("Conversation cached", "chat_id", chatID, "conversation_id", conversationID)
	return nil
}
