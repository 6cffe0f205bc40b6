// Package state tracks per-session conversation memory for the clerk.
package state

import (
	"sync"
	"time"

	"TrendZone/app/services/clerk/internal/agent/catalog"

	"github.com/zeromicro/go-zero/core/collection"
	"github.com/zeromicro/go-zero/core/logx"
)

const maxTopics = 5

// Conversation is one session's memory. Callers must hold the lock via
// Lock/Unlock for the duration of a turn; a session handles one turn at a
// time.
type Conversation struct {
	mu sync.Mutex

	// PendingSize is set when the clerk has asked which size to add.
	PendingSize *catalog.Product
	// LastShown are the products from the most recent search or filter,
	// in display order. Referential adds index into this slice.
	LastShown    []catalog.Product
	LastQuery    string
	LastCategory string
	Topics       []string
}

func (c *Conversation) Lock()   { c.mu.Lock() }
func (c *Conversation) Unlock() { c.mu.Unlock() }

// PushTopic appends the intent type to the rolling topic history,
// keeping only the most recent entries.
func (c *Conversation) PushTopic(topic string) {
	c.Topics = append(c.Topics, topic)
	if len(c.Topics) > maxTopics {
		c.Topics = c.Topics[len(c.Topics)-maxTopics:]
	}
}

// Reset clears all memory in place so existing references stay valid.
func (c *Conversation) Reset() {
	c.PendingSize = nil
	c.LastShown = nil
	c.LastQuery = ""
	c.LastCategory = ""
	c.Topics = nil
}

// Snapshot is a copy-out view for the context endpoint.
type Snapshot struct {
	PendingSizeProduct string
	LastShownNames     []string
	LastQuery          string
	LastCategory       string
	Topics             []string
}

func (c *Conversation) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Snapshot{
		LastQuery:    c.LastQuery,
		LastCategory: c.LastCategory,
		Topics:       append([]string(nil), c.Topics...),
	}
	if c.PendingSize != nil {
		s.PendingSizeProduct = c.PendingSize.Name
	}
	for _, p := range c.LastShown {
		s.LastShownNames = append(s.LastShownNames, p.Name)
	}
	return s
}

// Sessions stores conversations keyed by session id with an idle TTL.
type Sessions struct {
	cache *collection.Cache
}

func NewSessions(ttl time.Duration) *Sessions {
	cache, err := collection.NewCache(ttl, collection.WithName("clerk-sessions"))
	if err != nil {
		logx.Must(err)
	}
	return &Sessions{cache: cache}
}

// Get returns the session's conversation, creating it on first use.
func (s *Sessions) Get(sessionId string) *Conversation {
	val, err := s.cache.Take(sessionId, func() (any, error) {
		return &Conversation{}, nil
	})
	if err != nil {
		return &Conversation{}
	}
	return val.(*Conversation)
}

// Drop discards the session entirely.
func (s *Sessions) Drop(sessionId string) {
	s.cache.Del(sessionId)
}
