package compositions

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ivlev/promoclip/internal/config"
	"github.com/ivlev/promoclip/internal/timeline"
)

var ErrUnknownComposition = errors.New("unknown composition")

// Factory builds a composition from the event copy.
type Factory func(ev config.Event) (*Composition, error)

var (
	mu       sync.RWMutex
	registry = map[string]Factory{
		FundraisingID: NewFundraising,
		BackdropID:    NewBackdrop,
	}
)

// Register adds or replaces a composition factory.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	registry[id] = f
}

// Lookup returns the factory registered under id.
func Lookup(id string) (Factory, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := registry[id]
	return f, ok
}

// New creates the composition registered under id.
func New(id string, ev config.Event) (*Composition, error) {
	f, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownComposition, id)
	}
	return f(ev)
}

// IDs lists the registered compositions in a stable order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Manifest builds the manifest of every registered composition.
func Manifest(ev config.Event) (*timeline.Manifest, error) {
	m := &timeline.Manifest{Version: "1.0"}
	for _, id := range IDs() {
		c, err := New(id, ev)
		if err != nil {
			return nil, err
		}
		m.Compositions = append(m.Compositions, c.Entry())
	}
	return m, nil
}
