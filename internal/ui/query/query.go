// Package query is the async read/write facade between UI state and the
// data services. Reads are cached by (entity, params) key and refreshed
// when a mutation invalidates the entity family; writes validate first,
// invalidate on success and route failures to the notification channel.
package query

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/goccy/go-json"

	"github.com/nutridash/backend/internal/ui/notify"
	"github.com/nutridash/backend/internal/validation"
)

type cacheEntry struct {
	value any
	gen   uint64
}

// Client holds the query cache. Entries are addressed by entity name plus
// the JSON encoding of the query's params; invalidating an entity bumps
// its generation, which orphans every cached entry for that entity.
type Client struct {
	mu    sync.Mutex
	cache map[string]cacheEntry
	gens  map[string]uint64
}

func NewClient() *Client {
	return &Client{
		cache: make(map[string]cacheEntry),
		gens:  make(map[string]uint64),
	}
}

// Invalidate marks every cached query for entity stale. The next Fetch
// with any params re-executes against the data source.
func (c *Client) Invalidate(entity string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[entity]++
}

func (c *Client) generation(entity string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[entity]
}

func (c *Client) lookup(key string, gen uint64) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.cache[key]
	if !ok || entry.gen != gen {
		return nil, false
	}
	return entry.value, true
}

// storeIfCurrent caches value unless the entity was invalidated while the
// fetch was in flight. Stale responses are discarded, not cancelled.
func (c *Client) storeIfCurrent(entity, key string, gen uint64, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[entity] != gen {
		return
	}
	c.cache[key] = cacheEntry{value: value, gen: gen}
}

func queryKey(entity string, params any) (string, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	return entity + "?" + string(data), nil
}

// Query is a cached read for one entity. Params supplies the key
// component; when it returns a different value the next Fetch misses the
// cache and re-executes. Enabled, when set, gates execution entirely;
// a disabled query reports ok=false without touching the data source.
type Query[T any] struct {
	client  *Client
	entity  string
	run     func(ctx context.Context, params any) (T, error)
	Params  func() any
	Enabled func() bool
}

func NewQuery[T any](client *Client, entity string, run func(ctx context.Context, params any) (T, error)) *Query[T] {
	return &Query[T]{client: client, entity: entity, run: run}
}

// Fetch returns the cached value for the current key, executing the
// underlying read on a miss. ok is false when the query is disabled.
func (q *Query[T]) Fetch(ctx context.Context) (result T, ok bool, err error) {
	if q.Enabled != nil && !q.Enabled() {
		return result, false, nil
	}

	var params any
	if q.Params != nil {
		params = q.Params()
	}
	key, err := queryKey(q.entity, params)
	if err != nil {
		return result, false, err
	}

	gen := q.client.generation(q.entity)
	if cached, hit := q.client.lookup(key, gen); hit {
		return cached.(T), true, nil
	}

	result, err = q.run(ctx, params)
	if err != nil {
		return result, false, err
	}
	q.client.storeIfCurrent(q.entity, key, gen, result)
	return result, true, nil
}

// Mutation is a validated write against one entity family.
type Mutation[In validation.Validatable, Out any] struct {
	client      *Client
	entities    []string
	run         func(ctx context.Context, in In) (Out, error)
	notifier    *notify.Notifier
	pending     atomic.Bool
	SuccessText string
	OnSuccess   func(Out)
}

// NewMutation builds a mutation that invalidates the named entity
// families on success. A nil notifier falls back to the package default.
func NewMutation[In validation.Validatable, Out any](
	client *Client,
	notifier *notify.Notifier,
	run func(ctx context.Context, in In) (Out, error),
	entities ...string,
) *Mutation[In, Out] {
	if notifier == nil {
		notifier = notify.Default
	}
	return &Mutation[In, Out]{client: client, entities: entities, run: run, notifier: notifier}
}

// Pending reports whether an Execute call is in flight.
func (m *Mutation[In, Out]) Pending() bool {
	return m.pending.Load()
}

// Execute validates in, aborting before any remote call on failure, then
// runs the write. On success the entity families are invalidated, the
// success notification is published and OnSuccess runs. On failure the
// error message goes to the notification channel and the caller's state
// is left for them to retry with.
func (m *Mutation[In, Out]) Execute(ctx context.Context, in In) (Out, error) {
	var zero Out
	if errs := in.Validate(); len(errs) > 0 {
		return zero, errs
	}

	m.pending.Store(true)
	defer m.pending.Store(false)

	out, err := m.run(ctx, in)
	if err != nil {
		m.notifier.Error(err.Error())
		return zero, err
	}

	for _, entity := range m.entities {
		m.client.Invalidate(entity)
	}
	if m.SuccessText != "" {
		m.notifier.Success(m.SuccessText)
	}
	if m.OnSuccess != nil {
		m.OnSuccess(out)
	}
	return out, nil
}
