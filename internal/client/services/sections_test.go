package services

import (
	"context"
	"testing"

	"github.com/dkravets/internhub/internal/client/repositories/uistate"
	"github.com/stretchr/testify/require"
)

func newSectionFixture(t *testing.T) (*Bus, *uistate.MemoryStore) {
	t.Helper()
	return NewBus(), uistate.NewMemoryStore()
}

func TestSection_InitFromPersistedState(t *testing.T) {
	bus, store := newSectionFixture(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "collapsible_skills", "false"))

	s := NewSection(ctx, bus, store, nil, "skills", true)
	t.Cleanup(s.Close)

	require.False(t, s.Expanded(), "persisted value overrides the caller default")
}

func TestSection_InitFallsBackToDefault(t *testing.T) {
	bus, store := newSectionFixture(t)
	ctx := context.Background()

	s := NewSection(ctx, bus, store, nil, "education", true)
	t.Cleanup(s.Close)

	require.True(t, s.Expanded())
}

func TestSection_TogglePersistsSynchronously(t *testing.T) {
	bus, store := newSectionFixture(t)
	ctx := context.Background()

	s := NewSection(ctx, bus, store, nil, "projects", false)
	t.Cleanup(s.Close)

	require.NoError(t, s.Toggle(ctx))
	require.True(t, s.Expanded())

	v, ok, err := store.Get(ctx, "collapsible_projects")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "true", v)

	require.NoError(t, s.Toggle(ctx))
	v, _, _ = store.Get(ctx, "collapsible_projects")
	require.Equal(t, "false", v)
}

func TestSection_ExpandAll_ChecksPersistedValue(t *testing.T) {
	bus, store := newSectionFixture(t)
	ctx := context.Background()

	// willExpand: persisted "true" but currently collapsed in memory.
	require.NoError(t, store.Set(ctx, "collapsible_a", "true"))
	willExpand := NewSection(ctx, bus, store, nil, "a", true)
	t.Cleanup(willExpand.Close)
	willExpand.mu.Lock()
	willExpand.expanded = false
	willExpand.mu.Unlock()

	// staysCollapsed: persisted "false".
	require.NoError(t, store.Set(ctx, "collapsible_b", "false"))
	staysCollapsed := NewSection(ctx, bus, store, nil, "b", false)
	t.Cleanup(staysCollapsed.Close)

	// noState: nothing persisted.
	noState := NewSection(ctx, bus, store, nil, "c", false)
	t.Cleanup(noState.Close)

	bus.Publish(SignalExpandAll)

	require.True(t, willExpand.Expanded())
	require.False(t, staysCollapsed.Expanded(),
		"ExpandAll must not expand a section whose persisted value is false")
	require.False(t, noState.Expanded(), "no persisted value means no reaction")
}

func TestSection_CollapseAll_ChecksPersistedValue(t *testing.T) {
	bus, store := newSectionFixture(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "collapsible_a", "false"))
	willCollapse := NewSection(ctx, bus, store, nil, "a", false)
	t.Cleanup(willCollapse.Close)
	willCollapse.mu.Lock()
	willCollapse.expanded = true
	willCollapse.mu.Unlock()

	require.NoError(t, store.Set(ctx, "collapsible_b", "true"))
	staysExpanded := NewSection(ctx, bus, store, nil, "b", true)
	t.Cleanup(staysExpanded.Close)

	bus.Publish(SignalCollapseAll)

	require.False(t, willCollapse.Expanded())
	require.True(t, staysExpanded.Expanded())
}

func TestSection_BroadcastNeverWritesStorage(t *testing.T) {
	bus, store := newSectionFixture(t)
	ctx := context.Background()

	s := NewSection(ctx, bus, store, nil, "summary", true)
	t.Cleanup(s.Close)

	bus.Publish(SignalExpandAll)
	bus.Publish(SignalCollapseAll)

	_, ok, err := store.Get(ctx, "collapsible_summary")
	require.NoError(t, err)
	require.False(t, ok, "broadcast handling must not create persisted state")
}

func TestForceExpandAll_WritesThenBroadcasts(t *testing.T) {
	bus, store := newSectionFixture(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "collapsible_a", "false"))
	a := NewSection(ctx, bus, store, nil, "a", false)
	t.Cleanup(a.Close)
	b := NewSection(ctx, bus, store, nil, "b", false)
	t.Cleanup(b.Close)

	require.NoError(t, ForceExpandAll(ctx, bus, store, []string{"a", "b"}))

	require.True(t, a.Expanded(), "force-expand reaches sections persisted as false")
	require.True(t, b.Expanded(), "force-expand reaches sections with no persisted state")

	v, _, _ := store.Get(ctx, "collapsible_a")
	require.Equal(t, "true", v)
}

func TestForceCollapseAll_WritesThenBroadcasts(t *testing.T) {
	bus, store := newSectionFixture(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "collapsible_a", "true"))
	a := NewSection(ctx, bus, store, nil, "a", true)
	t.Cleanup(a.Close)

	require.NoError(t, ForceCollapseAll(ctx, bus, store, []string{"a"}))
	require.False(t, a.Expanded())
}

func TestSection_CloseDeregisters(t *testing.T) {
	bus, store := newSectionFixture(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "collapsible_a", "true"))
	s := NewSection(ctx, bus, store, nil, "a", false)
	s.mu.Lock()
	s.expanded = false
	s.mu.Unlock()

	s.Close()
	s.Close() // idempotent

	bus.Publish(SignalExpandAll)
	require.False(t, s.Expanded(), "closed sections must not react to broadcasts")
}
