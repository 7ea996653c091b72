// Package cache keeps single messages in Redis so repeated reads by id do not
// hit PostgreSQL.
//
// Reads fill the cache with SETNX. Writers call Invalidate before touching
// the database, which overwrites the entry with a tombstone for one TTL. A
// fill can never replace a tombstone, so a reader that loaded a row before a
// concurrent update or delete cannot put the old row back, and every read
// during the tombstone's lifetime goes to the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/deppfellow/go-socialmedia/internal/model"
	"github.com/redis/go-redis/v9"
)

const (
	messageKeyPrefix = "socialmedia:message:"

	// tombstone is never valid JSON for a message.
	tombstone = "-"
)

// MessageCache stores messages keyed by message_id.
type MessageCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewMessageCache(client redis.Cmdable, ttl time.Duration) *MessageCache {
	return &MessageCache{client: client, ttl: ttl}
}

func messageKey(messageID int) string {
	return messageKeyPrefix + strconv.Itoa(messageID)
}

// Get returns the cached message. A miss or a tombstone is (nil, false, nil).
func (c *MessageCache) Get(ctx context.Context, messageID int) (*model.Message, bool, error) {
	raw, err := c.client.Get(ctx, messageKey(messageID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get message %d: %w", messageID, err)
	}
	if string(raw) == tombstone {
		return nil, false, nil
	}

	var m model.Message
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false, fmt.Errorf("cache decode message %d: %w", messageID, err)
	}
	return &m, true, nil
}

// Fill stores a message read from the database, unless the key already holds
// a value or a tombstone.
func (c *MessageCache) Fill(ctx context.Context, message *model.Message) error {
	raw, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("cache encode message %d: %w", message.MessageID, err)
	}

	if err := c.client.SetNX(ctx, messageKey(message.MessageID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache fill message %d: %w", message.MessageID, err)
	}
	return nil
}

// Invalidate replaces whatever is cached for messageID with a tombstone.
// Callers must not write the row if it fails.
func (c *MessageCache) Invalidate(ctx context.Context, messageID int) error {
	if err := c.client.Set(ctx, messageKey(messageID), tombstone, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache invalidate message %d: %w", messageID, err)
	}
	return nil
}
