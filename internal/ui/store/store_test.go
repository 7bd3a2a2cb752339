package store

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type panelState struct {
	SelectedID *uint  `json:"selectedId"`
	DialogOpen bool   `json:"dialogOpen"`
	Draft      string `json:"draft"`
}

func TestSetPublishesSnapshots(t *testing.T) {
	s := New(panelState{}, Config{SkipPersist: true})

	var seen []panelState
	cancel := s.Subscribe(func(st panelState) {
		seen = append(seen, st)
	})
	defer cancel()

	id := uint(3)
	s.Set(func(st *panelState) {
		st.SelectedID = &id
		st.DialogOpen = true
	})

	require.Len(t, seen, 1)
	assert.True(t, seen[0].DialogOpen)
	require.NotNil(t, seen[0].SelectedID)
	assert.Equal(t, uint(3), *seen[0].SelectedID)

	got := s.Get()
	assert.True(t, got.DialogOpen)
}

func TestSubscribeCancelStopsDelivery(t *testing.T) {
	s := New(panelState{}, Config{SkipPersist: true})

	count := 0
	cancel := s.Subscribe(func(panelState) { count++ })

	s.Set(func(st *panelState) { st.DialogOpen = true })
	cancel()
	s.Set(func(st *panelState) { st.DialogOpen = false })

	assert.Equal(t, 1, count)
}

func TestPersistRoundTrip(t *testing.T) {
	backend := NewMemoryBackend()
	cfg := Config{
		Name:               "panel",
		Backend:            backend,
		ExcludeFromPersist: []string{"draft"},
	}

	first := New(panelState{Draft: "initial"}, cfg)
	id := uint(9)
	first.Set(func(st *panelState) {
		st.SelectedID = &id
		st.DialogOpen = true
		st.Draft = "typed but never saved"
	})

	second := New(panelState{Draft: "initial"}, cfg)
	got := second.Get()
	require.NotNil(t, got.SelectedID)
	assert.Equal(t, uint(9), *got.SelectedID)
	assert.True(t, got.DialogOpen)
	// Excluded fields come back as their initial values.
	assert.Equal(t, "initial", got.Draft)
}

func TestRehydrateIgnoresCorruptData(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.SetItem("panel", []byte("{not json")))

	s := New(panelState{Draft: "default"}, Config{Name: "panel", Backend: backend})
	assert.Equal(t, "default", s.Get().Draft)
	assert.Nil(t, s.Get().SelectedID)
}

func TestRehydrateIgnoresWrongTypes(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.SetItem("panel", []byte(`{"dialogOpen":"yes"}`)))

	s := New(panelState{Draft: "default"}, Config{Name: "panel", Backend: backend})
	assert.False(t, s.Get().DialogOpen)
	assert.Equal(t, "default", s.Get().Draft)
}

type counterState struct {
	N int `json:"n"`
}

func TestConcurrentSetsPersistInCommitOrder(t *testing.T) {
	backend := NewMemoryBackend()
	cfg := Config{Name: "counter", Backend: backend}
	s := New(counterState{}, cfg)

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			s.Set(func(st *counterState) { st.N++ })
		}()
	}
	wg.Wait()

	require.Equal(t, workers, s.Get().N)

	// The last persisted snapshot must be the last committed one, so a
	// fresh store rehydrates to the final count.
	second := New(counterState{}, cfg)
	assert.Equal(t, workers, second.Get().N)
}

type failingBackend struct{}

func (failingBackend) GetItem(string) ([]byte, error) { return nil, errors.New("backend down") }
func (failingBackend) SetItem(string, []byte) error   { return errors.New("backend down") }

func TestBackendFailureIsNonFatal(t *testing.T) {
	s := New(panelState{Draft: "default"}, Config{Name: "panel", Backend: failingBackend{}})
	assert.Equal(t, "default", s.Get().Draft)

	s.Set(func(st *panelState) { st.DialogOpen = true })
	assert.True(t, s.Get().DialogOpen)
}

func TestFileBackendRoundTrip(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(filepath.Join(dir, "state"))
	require.NoError(t, err)

	missing, err := backend.GetItem("nothing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, backend.SetItem("panel", []byte(`{"dialogOpen":true}`)))
	data, err := backend.GetItem("panel")
	require.NoError(t, err)
	assert.JSONEq(t, `{"dialogOpen":true}`, string(data))
}
