package logger

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
)

// Slot holds the Logger of one owner. Embed it in a struct for a
// per-instance logger or declare a package-level Slot for a shared one.
// The zero value is an empty slot ready to use. A Slot must not be
// copied after first use.
type Slot struct {
	logger atomic.Pointer[Logger]
}

// Logger returns the slot's Logger.
//
// Called without arguments it returns the current Logger, creating one
// that wraps no backend if the slot is empty. Called with a backend,
// including an explicit nil, it always stores and returns a new Logger
// wrapping exactly that backend. Arguments after the first are ignored.
//
// Concurrent replacements are last-write-wins.
func (s *Slot) Logger(b ...Backend) *Logger {
	if len(b) > 0 {
		l := New(b[0])
		s.logger.Store(l)
		return l
	}

	if l := s.logger.Load(); l != nil {
		return l
	}
	l := New(nil)
	if s.logger.CompareAndSwap(nil, l) {
		return l
	}
	return s.logger.Load()
}

// Registry hands out one Slot per owner key, for owners that cannot
// carry a Slot field themselves. The zero value is ready to use.
//
// Owner keys must be comparable, as map keys are. Pointers and plain
// values work; a slice, map or func owner, or a struct holding one,
// makes Slot and Logger panic. Prefer embedding a Slot when the owner
// is not comparable.
type Registry struct {
	mu    sync.Mutex
	slots map[any]*Slot
}

// Slot returns the Slot for owner, creating it on first use. It panics
// if owner is not comparable.
func (r *Registry) Slot(owner any) *Slot {
	if owner != nil && !reflect.ValueOf(owner).Comparable() {
		panic(fmt.Sprintf("logger: Registry owner of type %T is not comparable", owner))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.slots == nil {
		r.slots = make(map[any]*Slot)
	}
	s, ok := r.slots[owner]
	if !ok {
		s = &Slot{}
		r.slots[owner] = s
	}
	return s
}

// Logger is shorthand for r.Slot(owner).Logger(b...)
func (r *Registry) Logger(owner any, b ...Backend) *Logger {
	return r.Slot(owner).Logger(b...)
}
