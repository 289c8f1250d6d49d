// Package notify delivers the short-lived toast messages the storefront shows
// after favorites, history and session actions.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DisplayDuration is how long a notification stays visible.
const DisplayDuration = 3 * time.Second

type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindDanger  Kind = "danger"
)

type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier shows a message to one client.
type Notifier interface {
	Notify(message string, kind Kind)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(message string, kind Kind)

func (f NotifierFunc) Notify(message string, kind Kind) {
	f(message, kind)
}

// Discard drops every notification.
var Discard Notifier = NotifierFunc(func(string, Kind) {})

// Center keeps the currently visible notifications of every client scope and
// pushes new ones to connected websocket clients.
type Center struct {
	mu    sync.Mutex
	feeds map[string][]Notification
	ttl   time.Duration
	hub   *Hub
	log   *zap.Logger
}

func NewCenter(ttl time.Duration, hub *Hub, log *zap.Logger) *Center {
	if ttl <= 0 {
		ttl = DisplayDuration
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Center{
		feeds: make(map[string][]Notification),
		ttl:   ttl,
		hub:   hub,
		log:   log,
	}
}

// For returns a Notifier bound to scope.
func (c *Center) For(scope string) Notifier {
	return NotifierFunc(func(message string, kind Kind) {
		c.Push(scope, message, kind)
	})
}

// Push makes a notification visible for the configured duration. Removal
// is a one-shot timer and cannot be cancelled.
func (c *Center) Push(scope, message string, kind Kind) Notification {
	if kind == "" {
		kind = KindSuccess
	}
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	c.feeds[scope] = append(c.feeds[scope], n)
	c.mu.Unlock()

	time.AfterFunc(c.ttl, func() { c.dismiss(scope, n.ID) })

	if c.hub != nil {
		c.hub.Send(scope, n)
	}
	c.log.Debug("notification", zap.String("scope", scope), zap.String("type", string(kind)), zap.String("message", message))
	return n
}

// Active returns the notifications still visible for scope, oldest first.
func (c *Center) Active(scope string) []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, len(c.feeds[scope]))
	copy(out, c.feeds[scope])
	return out
}

func (c *Center) dismiss(scope, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	feed := c.feeds[scope]
	for i, n := range feed {
		if n.ID == id {
			feed = append(feed[:i], feed[i+1:]...)
			break
		}
	}
	if len(feed) == 0 {
		delete(c.feeds, scope)
		return
	}
	c.feeds[scope] = feed
}
