// Package notify collects the transient notifications a view produces
// while serving one request. A Notifier is created per request and handed
// to the views explicitly.
package notify

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notifier is safe for use by concurrent fetches of the same view
type Notifier struct {
	mu    sync.Mutex
	items []Notification
}

func New() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Info(msg string)    { n.add(LevelInfo, msg) }
func (n *Notifier) Success(msg string) { n.add(LevelSuccess, msg) }
func (n *Notifier) Warning(msg string) { n.add(LevelWarning, msg) }
func (n *Notifier) Error(msg string)   { n.add(LevelError, msg) }

// Drain returns pending notifications and clears them
func (n *Notifier) Drain() []Notification {
	if n == nil {
		return nil
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	out := n.items
	n.items = nil
	return out
}

// add tolerates a nil receiver so views can run without a notifier
func (n *Notifier) add(level Level, msg string) {
	log.Debug().Str("level", string(level)).Str("message", msg).Msg("notification")
	if n == nil {
		return
	}
	n.mu.Lock()
	n.items = append(n.items, Notification{Level: level, Message: msg, At: time.Now()})
	n.mu.Unlock()
}
