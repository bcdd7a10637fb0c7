package league

import "sync"

// FilterState is a generic multi-select toggle set. Every mutation invokes
// the registered listener with the selection in insertion order; the order
// is not part of the contract, membership is. State lives for the session
// only.
type FilterState struct {
	mu       sync.Mutex
	active   map[string]struct{}
	order    []string
	onChange func(active []string)
}

// NewFilterState builds an empty filter with an optional change listener.
func NewFilterState(onChange func(active []string)) *FilterState {
	return &FilterState{
		active:   make(map[string]struct{}),
		onChange: onChange,
	}
}

// Toggle adds the key if absent, removes it if present, then notifies the
// listener with the new selection.
func (f *FilterState) Toggle(key string) {
	f.mu.Lock()
	if _, ok := f.active[key]; ok {
		delete(f.active, key)
		f.order = remove(f.order, key)
	} else {
		f.active[key] = struct{}{}
		f.order = append(f.order, key)
	}
	snapshot := f.snapshotLocked()
	f.mu.Unlock()
	f.notify(snapshot)
}

// Clear empties the selection and notifies the listener.
func (f *FilterState) Clear() {
	f.mu.Lock()
	f.active = make(map[string]struct{})
	f.order = nil
	f.mu.Unlock()
	f.notify([]string{})
}

// IsActive reports membership without side effects.
func (f *FilterState) IsActive(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.active[key]
	return ok
}

// Active returns the current selection without side effects.
func (f *FilterState) Active() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *FilterState) snapshotLocked() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

func (f *FilterState) notify(active []string) {
	if f.onChange != nil {
		f.onChange(active)
	}
}

func remove(values []string, key string) []string {
	out := values[:0]
	for _, v := range values {
		if v != key {
			out = append(out, v)
		}
	}
	return out
}
