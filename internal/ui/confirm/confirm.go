// Package confirm lets any caller request a blocking confirmation without
// mounting a dialog locally. One slot holds the pending request; a second
// request while one is open overwrites it, last writer wins.
package confirm

import "github.com/nutridash/backend/internal/ui/store"

// Config is the one-shot payload for a confirmation request. Callbacks
// are optional.
type Config struct {
	Title        string
	Description  string
	ConfirmLabel string
	CancelLabel  string
	OnConfirm    func()
	OnCancel     func()
}

// State holds the slot. Config is nil whenever the dialog is closed;
// closing by any path clears it so a stale payload never leaks into the
// next open. Callbacks make the state unserializable, so the backing
// store never persists.
type State struct {
	Open   bool
	Config *Config
}

type Confirmer struct {
	store *store.Store[State]
}

func New() *Confirmer {
	return &Confirmer{store: store.New(State{}, store.Config{SkipPersist: true})}
}

// Request fills the slot and opens the dialog. Usable from any context;
// it goes through the store's synchronous accessor, not a render cycle.
func (c *Confirmer) Request(cfg Config) {
	c.store.Set(func(st *State) {
		st.Open = true
		st.Config = &cfg
	})
}

// Pending returns the open request, if any.
func (c *Confirmer) Pending() (Config, bool) {
	st := c.store.Get()
	if !st.Open || st.Config == nil {
		return Config{}, false
	}
	return *st.Config, true
}

// Subscribe notifies the single mounted renderer of slot changes.
func (c *Confirmer) Subscribe(fn func(State)) (cancel func()) {
	return c.store.Subscribe(fn)
}

// take closes the dialog and returns the config that was pending.
func (c *Confirmer) take() *Config {
	var taken *Config
	c.store.Set(func(st *State) {
		taken = st.Config
		st.Open = false
		st.Config = nil
	})
	return taken
}

// Confirm resolves the pending request positively: the slot is cleared
// first, then OnConfirm runs. A request issued from within the callback
// lands in an empty slot.
func (c *Confirmer) Confirm() {
	if cfg := c.take(); cfg != nil && cfg.OnConfirm != nil {
		cfg.OnConfirm()
	}
}

// Cancel resolves the pending request negatively, running OnCancel.
func (c *Confirmer) Cancel() {
	if cfg := c.take(); cfg != nil && cfg.OnCancel != nil {
		cfg.OnCancel()
	}
}

// Dismiss is closing by any other path (escape, backdrop click). It
// behaves exactly like Cancel.
func (c *Confirmer) Dismiss() {
	c.Cancel()
}

// Default is the process-wide instance behind the package-level Request.
// Tests construct fresh Confirmers instead.
var Default = New()

func Request(cfg Config) { Default.Request(cfg) }
