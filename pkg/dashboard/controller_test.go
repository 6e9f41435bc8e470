package dashboard_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/flagdeck/pkg/dashboard"
	"github.com/dmitrymomot/flagdeck/pkg/feature"
)

func seedFlags() []*feature.Flag {
	return []*feature.Flag{
		{ID: "1", Name: "New Dashboard", Description: "Overview page", Enabled: true, Category: "cat1"},
		{ID: "2", Name: "Dark Mode", Description: "Dark color scheme", Enabled: false, Category: "cat1"},
		{ID: "3", Name: "Beta API", Description: "Experimental API", Enabled: true, Category: "cat2"},
	}
}

func newController(t *testing.T, opts ...dashboard.Option) *dashboard.Controller {
	t.Helper()
	opts = append([]dashboard.Option{dashboard.WithFlags(seedFlags()...)}, opts...)
	ctrl, err := dashboard.New(dashboard.Config{}, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctrl.Close() })
	return ctrl
}

// sameRef reports whether two slices share the same backing array, i.e.
// whether a derived value was recomputed or served from the memo cache.
func sameRef[T any](a, b []T) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("starts from the default seed without WithFlags", func(t *testing.T) {
		t.Parallel()
		ctrl, err := dashboard.New(dashboard.Config{})
		require.NoError(t, err)
		defer ctrl.Close()

		assert.Len(t, ctrl.Flags(), len(dashboard.DefaultFlags()))
	})

	t.Run("explicit empty seed", func(t *testing.T) {
		t.Parallel()
		ctrl, err := dashboard.New(dashboard.Config{}, dashboard.WithFlags())
		require.NoError(t, err)
		defer ctrl.Close()

		assert.Empty(t, ctrl.Flags())
		assert.Equal(t, feature.StatusCounts{}, ctrl.Counts())
	})

	t.Run("seed flags are deep-copied", func(t *testing.T) {
		t.Parallel()
		seed := seedFlags()
		ctrl, err := dashboard.New(dashboard.Config{}, dashboard.WithFlags(seed...))
		require.NoError(t, err)
		defer ctrl.Close()

		seed[0].Name = "mutated after construction"
		assert.Equal(t, "New Dashboard", ctrl.Flags()[0].Name)
	})

	t.Run("blank ids are assigned", func(t *testing.T) {
		t.Parallel()
		ctrl, err := dashboard.New(dashboard.Config{}, dashboard.WithFlags(
			&feature.Flag{Name: "Anon", Description: "No id", Category: "misc"},
		))
		require.NoError(t, err)
		defer ctrl.Close()

		require.Len(t, ctrl.Flags(), 1)
		assert.NotEmpty(t, ctrl.Flags()[0].ID)
	})

	t.Run("duplicate ids are rejected", func(t *testing.T) {
		t.Parallel()
		_, err := dashboard.New(dashboard.Config{}, dashboard.WithFlags(
			&feature.Flag{ID: "dup", Name: "A", Category: "x"},
			&feature.Flag{ID: "dup", Name: "B", Category: "x"},
		))
		require.Error(t, err)
		assert.ErrorIs(t, err, feature.ErrDuplicateID)
	})

	t.Run("zero timestamps are stamped", func(t *testing.T) {
		t.Parallel()
		ctrl := newController(t)
		for _, f := range ctrl.Flags() {
			assert.False(t, f.CreatedAt.IsZero())
			assert.False(t, f.UpdatedAt.IsZero())
		}
	})

	t.Run("simulated status flags", func(t *testing.T) {
		t.Parallel()
		ctrl, err := dashboard.New(dashboard.Config{
			SimulateLoading: true,
			SimulateError:   "backend unavailable",
		})
		require.NoError(t, err)
		defer ctrl.Close()

		assert.True(t, ctrl.Loading())
		msg, ok := ctrl.ErrorMessage()
		assert.True(t, ok)
		assert.Equal(t, "backend unavailable", msg)
	})
}

func TestToggle(t *testing.T) {
	t.Parallel()

	t.Run("sets the enabled state of the matching flag", func(t *testing.T) {
		t.Parallel()
		ctrl := newController(t)

		ctrl.Toggle("2", true)

		flags := ctrl.Flags()
		require.Len(t, flags, 3)
		assert.True(t, flags[1].Enabled)
		assert.Equal(t, feature.StatusCounts{Enabled: 3, Disabled: 0, Total: 3}, ctrl.Counts())
	})

	t.Run("untouched flags keep their identity", func(t *testing.T) {
		t.Parallel()
		ctrl := newController(t)
		before := ctrl.Flags()

		ctrl.Toggle("2", true)

		after := ctrl.Flags()
		assert.Same(t, before[0], after[0])
		assert.Same(t, before[2], after[2])
		assert.NotSame(t, before[1], after[1])
		// The untouched records are also value-identical.
		assert.Equal(t, *before[0], *after[0])
		assert.Equal(t, *before[2], *after[2])
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		t.Parallel()
		ctrl := newController(t)
		before := ctrl.Flags()

		ctrl.Toggle("nonexistent", true)

		after := ctrl.Flags()
		assert.True(t, sameRef(before, after), "collection identity must be preserved")
		assert.Equal(t, feature.StatusCounts{Enabled: 2, Disabled: 1, Total: 3}, ctrl.Counts())
	})

	t.Run("toggle is an assignment, not a flip", func(t *testing.T) {
		t.Parallel()
		ctrl := newController(t)

		ctrl.Toggle("1", true) // already enabled
		assert.True(t, ctrl.Flags()[0].Enabled)

		ctrl.Toggle("1", false)
		assert.False(t, ctrl.Flags()[0].Enabled)
	})
}

func TestFilterSetters(t *testing.T) {
	t.Parallel()

	t.Run("each setter replaces exactly one field", func(t *testing.T) {
		t.Parallel()
		ctrl := newController(t)

		ctrl.SetSearch("dark")
		assert.Equal(t, feature.Selection{Search: "dark", Status: feature.StatusAll}, ctrl.Selection())

		ctrl.SetStatus(feature.StatusDisabled)
		assert.Equal(t, feature.Selection{Search: "dark", Status: feature.StatusDisabled}, ctrl.Selection())

		ctrl.SetCategory("cat1")
		assert.Equal(t, feature.Selection{Search: "dark", Status: feature.StatusDisabled, Category: "cat1"}, ctrl.Selection())

		ctrl.SetSearch("")
		assert.Equal(t, feature.Selection{Status: feature.StatusDisabled, Category: "cat1"}, ctrl.Selection())
	})

	t.Run("filtered view follows the selection", func(t *testing.T) {
		t.Parallel()
		ctrl := newController(t)

		ctrl.SetStatus(feature.StatusEnabled)
		ctrl.SetCategory("cat1")

		got := ctrl.Filtered()
		require.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("whitespace search is preserved literally", func(t *testing.T) {
		t.Parallel()
		ctrl := newController(t)

		ctrl.SetSearch("   ")
		assert.Equal(t, "   ", ctrl.Selection().Search)
		assert.Empty(t, ctrl.Filtered())
	})
}

func TestRetry(t *testing.T) {
	t.Parallel()

	ctrl, err := dashboard.New(dashboard.Config{
		SimulateLoading: true,
		SimulateError:   "boom",
	})
	require.NoError(t, err)
	defer ctrl.Close()

	for range 3 {
		ctrl.Retry()
		assert.False(t, ctrl.Loading())
		_, ok := ctrl.ErrorMessage()
		assert.False(t, ok)
	}
}

func TestMemoization(t *testing.T) {
	t.Parallel()

	t.Run("unchanged inputs return the identical reference", func(t *testing.T) {
		t.Parallel()
		ctrl := newController(t)

		first := ctrl.Filtered()
		second := ctrl.Filtered()
		assert.True(t, sameRef(first, second))

		cats1 := ctrl.Categories()
		cats2 := ctrl.Categories()
		assert.True(t, sameRef(cats1, cats2))
	})

	t.Run("selection change yields a new reference", func(t *testing.T) {
		t.Parallel()
		ctrl := newController(t)

		before := ctrl.Filtered()
		ctrl.SetStatus(feature.StatusEnabled)
		after := ctrl.Filtered()
		assert.False(t, sameRef(before, after))
	})

	t.Run("collection change yields a new reference", func(t *testing.T) {
		t.Parallel()
		ctrl := newController(t)

		before := ctrl.Filtered()
		beforeCats := ctrl.Categories()

		ctrl.Toggle("2", true)

		assert.False(t, sameRef(before, ctrl.Filtered()))
		assert.False(t, sameRef(beforeCats, ctrl.Categories()))
	})

	t.Run("no-op mutations keep the memoized reference", func(t *testing.T) {
		t.Parallel()
		ctrl := newController(t)

		before := ctrl.Filtered()
		ctrl.Toggle("nonexistent", true)
		ctrl.SetSearch("") // unchanged field
		assert.True(t, sameRef(before, ctrl.Filtered()))
	})
}

func TestCountsOverFullCollection(t *testing.T) {
	t.Parallel()

	ctrl := newController(t)
	ctrl.SetStatus(feature.StatusDisabled)

	require.Len(t, ctrl.Filtered(), 1)
	// Counts ignore the filter entirely.
	assert.Equal(t, feature.StatusCounts{Enabled: 2, Disabled: 1, Total: 3}, ctrl.Counts())
	assert.Equal(t, []string{"cat1", "cat2"}, ctrl.Categories())
}

func TestEvents(t *testing.T) {
	t.Parallel()

	receive := func(t *testing.T, sub interface{ Receive() <-chan dashboard.Event }) dashboard.Event {
		t.Helper()
		select {
		case e := <-sub.Receive():
			return e
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
			panic("unreachable")
		}
	}

	t.Run("mutations publish events", func(t *testing.T) {
		t.Parallel()
		ctrl, err := dashboard.New(dashboard.Config{SimulateError: "boom"},
			dashboard.WithFlags(seedFlags()...))
		require.NoError(t, err)
		defer ctrl.Close()

		sub := ctrl.Subscribe(context.Background())

		ctrl.Toggle("2", true)
		e := receive(t, sub)
		assert.Equal(t, dashboard.EventToggle, e.Kind)
		assert.Equal(t, "2", e.FlagID)

		ctrl.SetSearch("dark")
		assert.Equal(t, dashboard.EventFilter, receive(t, sub).Kind)

		ctrl.Retry()
		assert.Equal(t, dashboard.EventRetry, receive(t, sub).Kind)
	})

	t.Run("silent no-ops publish nothing", func(t *testing.T) {
		t.Parallel()
		ctrl := newController(t)
		sub := ctrl.Subscribe(context.Background())

		ctrl.Toggle("nonexistent", true)
		ctrl.SetSearch("")
		ctrl.Retry() // nothing to clear

		// A real mutation must be the first thing delivered.
		ctrl.Toggle("1", false)
		e := receive(t, sub)
		assert.Equal(t, dashboard.EventToggle, e.Kind)
		assert.Equal(t, "1", e.FlagID)
	})
}

// The canonical dashboard walkthrough: filter, count, toggle, recount.
func TestDashboardScenario(t *testing.T) {
	t.Parallel()

	ctrl, err := dashboard.New(dashboard.Config{}, dashboard.WithFlags(
		&feature.Flag{ID: "1", Name: "One", Description: "d", Enabled: true, Category: "cat1"},
		&feature.Flag{ID: "2", Name: "Two", Description: "d", Enabled: false, Category: "cat1"},
		&feature.Flag{ID: "3", Name: "Three", Description: "d", Enabled: true, Category: "cat2"},
	))
	require.NoError(t, err)
	defer ctrl.Close()

	ctrl.SetStatus(feature.StatusEnabled)
	ctrl.SetCategory("cat1")

	got := ctrl.Filtered()
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	assert.Equal(t, feature.StatusCounts{Enabled: 2, Disabled: 1, Total: 3}, ctrl.Counts())

	ctrl.Toggle("2", true)
	assert.Equal(t, feature.StatusCounts{Enabled: 3, Disabled: 0, Total: 3}, ctrl.Counts())

	// The newly enabled flag now satisfies the selection as well.
	got = ctrl.Filtered()
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}
