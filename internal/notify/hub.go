package notify

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultTTL is how long most notices stay visible.
	DefaultTTL = 3 * time.Second
	// ShortTTL is used for clipboard confirmations.
	ShortTTL = 2 * time.Second

	sendBufferSize = 16
)

// Message is a transient notice about a change in household state.
type Message struct {
	Type      string    `json:"type"`
	Entity    string    `json:"entity"`
	Action    string    `json:"action"`
	ID        string    `json:"id,omitempty"`
	Text      string    `json:"text"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewMessage creates a Message with the Type field derived from entity and action.
func NewMessage(entity, action, id, text string) Message {
	return Message{
		Type:   fmt.Sprintf("%s_%s", entity, action),
		Entity: entity,
		Action: action,
		ID:     id,
		Text:   text,
	}
}

// Subscriber receives every published message on C until unsubscribed.
type Subscriber struct {
	C    <-chan Message
	send chan Message
}

// Hub keeps the notices that have not yet expired and fans new ones out to
// subscribers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*Subscriber]struct{}
	active      []Message
	now         func() time.Time
	logger      *slog.Logger
}

// NewHub creates a Hub. A nil clock uses time.Now.
func NewHub(logger *slog.Logger, now func() time.Time) *Hub {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		subscribers: make(map[*Subscriber]struct{}),
		now:         now,
		logger:      logger,
	}
}

func (h *Hub) Subscribe() *Subscriber {
	ch := make(chan Message, sendBufferSize)
	s := &Subscriber{C: ch, send: ch}
	h.mu.Lock()
	h.subscribers[s] = struct{}{}
	h.mu.Unlock()
	return s
}

// Unsubscribe removes the subscriber and closes its channel. Calling it twice
// is safe.
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	if _, ok := h.subscribers[s]; ok {
		delete(h.subscribers, s)
		close(s.send)
	}
	h.mu.Unlock()
}

// Publish stamps the message with its expiry, keeps it until then, and sends
// it to every subscriber.
func (h *Hub) Publish(msg Message, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	msg.ExpiresAt = h.now().Add(ttl)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.active = append(h.prune(h.active), msg)
	h.logger.Debug("notice", "type", msg.Type, "text", msg.Text)

	for s := range h.subscribers {
		select {
		case s.send <- msg:
		default:
			// Subscriber buffer full, drop rather than block the caller.
		}
	}
}

// Active returns the notices that have not expired, oldest first.
func (h *Hub) Active() []Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.active = h.prune(h.active)
	return append([]Message(nil), h.active...)
}

func (h *Hub) prune(msgs []Message) []Message {
	now := h.now()
	kept := msgs[:0]
	for _, m := range msgs {
		if now.Before(m.ExpiresAt) {
			kept = append(kept, m)
		}
	}
	return kept
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
