package services

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/dkravets/internhub/internal/client/repositories/uistate"
	"github.com/dkravets/internhub/internal/common"
	"github.com/dkravets/internhub/internal/logging"
)

// Signal is a broadcast command for collapsible sections. Signals carry no
// per-section payload: a section reacts by re-reading its own persisted
// value, not by obeying the signal directly.
type Signal int

const (
	SignalExpandAll Signal = iota
	SignalCollapseAll
)

// Bus is a process-wide broadcast channel for section signals. Handlers run
// synchronously on the publishing goroutine, matching the single-threaded
// event model of the UI.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Signal)
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Signal))}
}

// Subscribe registers fn and returns a handle for Unsubscribe.
func (b *Bus) Subscribe(fn func(Signal)) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.subs[b.nextID] = fn
	return b.nextID
}

func (b *Bus) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, id)
}

// Publish delivers sig to every subscriber.
func (b *Bus) Publish(sig Signal) {
	b.mu.Lock()
	fns := make([]func(Signal), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(sig)
	}
}

// Section is one collapsible UI section. Its expanded flag is initialized
// from persisted storage (falling back to defaultExpanded when absent),
// written through on every user-driven toggle, and reconciled with storage
// on broadcast signals.
//
// On SignalExpandAll a section expands only if its persisted value is
// "true"; on SignalCollapseAll it collapses only if its persisted value is
// "false". The signal itself never writes storage. Callers wanting to force
// every section open must write first and broadcast second — see
// ForceExpandAll.
type Section struct {
	key        string
	storageKey string
	store      uistate.Store
	bus        *Bus
	log        logging.Logger
	subID      int

	mu       sync.Mutex
	expanded bool
	closed   bool
}

// NewSection mounts a section: reads its persisted state and subscribes it
// to the bus. Close must be called on unmount to release the subscription.
func NewSection(ctx context.Context, bus *Bus, store uistate.Store, log logging.Logger, key string, defaultExpanded bool) *Section {
	if log == nil {
		log = logging.NewNop()
	}
	s := &Section{
		key:        key,
		storageKey: common.SectionKeyPrefix + key,
		store:      store,
		bus:        bus,
		log:        log.With("component", "section", "key", key),
		expanded:   defaultExpanded,
	}

	value, ok, err := store.Get(ctx, s.storageKey)
	if err != nil {
		s.log.Warn(ctx, "reading persisted state failed, using default", "error", err)
	} else if ok {
		s.expanded = value == "true"
	}

	s.subID = bus.Subscribe(s.onSignal)
	return s
}

func (s *Section) Key() string { return s.key }

func (s *Section) Expanded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expanded
}

// Toggle flips the section by direct user interaction.
func (s *Section) Toggle(ctx context.Context) error {
	return s.SetExpanded(ctx, !s.Expanded())
}

// SetExpanded applies a user-driven change: the in-memory flag and the
// persisted value are both updated, synchronously and unconditionally.
func (s *Section) SetExpanded(ctx context.Context, expanded bool) error {
	s.mu.Lock()
	s.expanded = expanded
	s.mu.Unlock()

	if err := s.store.Set(ctx, s.storageKey, strconv.FormatBool(expanded)); err != nil {
		return err
	}
	return nil
}

// Close deregisters the section from the bus. Further signals are ignored.
func (s *Section) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()
	s.bus.Unsubscribe(s.subID)
}

// onSignal rechecks storage and applies the signal only when the persisted
// value agrees with it. An absent value is a no-op in both directions, and a
// failed read changes nothing.
func (s *Section) onSignal(sig Signal) {
	ctx := context.Background()
	value, ok, err := s.store.Get(ctx, s.storageKey)
	if err != nil {
		s.log.Warn(ctx, "broadcast recheck failed", "error", err)
		return
	}
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch sig {
	case SignalExpandAll:
		if value == "true" {
			s.expanded = true
		}
	case SignalCollapseAll:
		if value == "false" {
			s.expanded = false
		}
	}
}

// ForceExpandAll implements the two-step force-expand protocol: it writes
// "true" under every given key and then broadcasts SignalExpandAll. A bare
// broadcast would silently skip sections whose persisted value is "false".
func ForceExpandAll(ctx context.Context, bus *Bus, store uistate.Store, keys []string) error {
	if err := writeAll(ctx, store, keys, "true"); err != nil {
		return err
	}
	bus.Publish(SignalExpandAll)
	return nil
}

// ForceCollapseAll is the symmetric write-then-broadcast for collapsing.
func ForceCollapseAll(ctx context.Context, bus *Bus, store uistate.Store, keys []string) error {
	if err := writeAll(ctx, store, keys, "false"); err != nil {
		return err
	}
	bus.Publish(SignalCollapseAll)
	return nil
}

func writeAll(ctx context.Context, store uistate.Store, keys []string, value string) error {
	var errs []error
	for _, key := range keys {
		if err := store.Set(ctx, common.SectionKeyPrefix+key, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
