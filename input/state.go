package input

import "sync"

// State holds the set of logical keys currently held down.
//
// OnKeyDown and OnKeyUp may be called from any goroutine (they are the
// host's event callbacks); IsDown is read by the frame step. A single mutex
// makes each mutation atomic with respect to readers.
type State struct {
	mu   sync.RWMutex
	held [keyCount]bool
}

// NewState returns an empty held-set.
func NewState() *State {
	return &State{}
}

// OnKeyDown marks the key behind name as held. Unknown names are ignored and
// pressing an already held key changes nothing.
func (s *State) OnKeyDown(name string) {
	s.set(name, true)
}

// OnKeyUp clears the key behind name. Releasing a key that is not held is a
// no-op.
func (s *State) OnKeyUp(name string) {
	s.set(name, false)
}

func (s *State) set(name string, down bool) {
	k, ok := KeyFromName(name)
	if !ok {
		return
	}
	s.mu.Lock()
	s.held[k] = down
	s.mu.Unlock()
}

// IsDown reports whether k is currently held.
func (s *State) IsDown(k Key) bool {
	if k >= keyCount {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.held[k]
}

// Held returns the held keys in declaration order.
func (s *State) Held() []Key {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Key
	for _, k := range Keys {
		if s.held[k] {
			out = append(out, k)
		}
	}
	return out
}

// Reset releases every key, e.g. when the window loses focus and the
// matching key-up events will never arrive.
func (s *State) Reset() {
	s.mu.Lock()
	s.held = [keyCount]bool{}
	s.mu.Unlock()
}
