// Package notify is the process-wide channel for transient user-facing
// messages. Mutation failures land here instead of being handled ad hoc
// at each call site.
package notify

import "sync"

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Notifier fans notifications out to its subscribers in subscription
// order. A Notifier with no subscribers drops messages silently.
type Notifier struct {
	mu     sync.Mutex
	subs   []subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func(Notification)
}

func New() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Publish(note Notification) {
	n.mu.Lock()
	subs := make([]subscriber, len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, sub := range subs {
		sub.fn(note)
	}
}

func (n *Notifier) Success(message string) {
	n.Publish(Notification{Level: LevelSuccess, Message: message})
}

func (n *Notifier) Error(message string) {
	n.Publish(Notification{Level: LevelError, Message: message})
}

func (n *Notifier) Subscribe(fn func(Notification)) (cancel func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs = append(n.subs, subscriber{id: id, fn: fn})
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, sub := range n.subs {
			if sub.id == id {
				n.subs = append(n.subs[:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// Default is the shared notifier used by code without an injected one.
// Tests construct their own instances.
var Default = New()

func Success(message string) { Default.Success(message) }

func Error(message string) { Default.Error(message) }
