package dashboard

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/flagdeck/pkg/broadcast"
	"github.com/dmitrymomot/flagdeck/pkg/feature"
)

// Controller owns the canonical flag collection and the current filter
// selection for a dashboard session. It derives the filtered view and the
// aggregate summaries lazily and memoizes them: as long as the collection
// and the selection are unchanged, the accessors return the identical
// result reference, letting consumers skip re-render work with a cheap
// identity check.
//
// All methods are safe for concurrent use, though the intended caller is a
// single event loop. State is process-local and is lost when the session
// ends; nothing here touches the network or disk.
type Controller struct {
	mu      sync.Mutex
	flags   []*feature.Flag
	sel     feature.Selection
	loading bool
	errMsg  string

	// version increments on every effective collection mutation and keys
	// the memoized derived values below.
	version uint64

	filtered    []*feature.Flag
	filteredVer uint64
	filteredSel feature.Selection
	filteredOK  bool

	counts     feature.StatusCounts
	categories []string
	aggVer     uint64
	aggOK      bool

	log    *slog.Logger
	events *broadcast.MemoryBroadcaster[Event]
}

// New creates a Controller seeded with cfg and the given options. Without
// WithFlags the controller starts from DefaultFlags(). Seed flags are
// deep-copied, blank IDs are assigned, zero timestamps are stamped, and
// duplicate IDs are rejected with feature.ErrDuplicateID.
func New(cfg Config, opts ...Option) (*Controller, error) {
	s := settings{
		seed:        DefaultFlags(),
		log:         slog.New(slog.DiscardHandler),
		eventBuffer: cfg.EventBuffer,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.eventBuffer <= 0 {
		s.eventBuffer = defaultEventBuffer
	}

	flags, err := copySeed(s.seed)
	if err != nil {
		return nil, err
	}

	return &Controller{
		flags:   flags,
		sel:     feature.Selection{Status: feature.StatusAll},
		loading: cfg.SimulateLoading,
		errMsg:  cfg.SimulateError,
		log:     s.log,
		events:  broadcast.NewMemoryBroadcaster[Event](s.eventBuffer),
	}, nil
}

// copySeed deep-copies the seed collection and enforces the ID uniqueness
// invariant at the boundary.
func copySeed(seed []*feature.Flag) ([]*feature.Flag, error) {
	flags := make([]*feature.Flag, 0, len(seed))
	seen := make(map[string]struct{}, len(seed))

	for _, f := range seed {
		if f == nil {
			continue
		}
		c := f.Clone()
		if c.ID == "" {
			c.ID = feature.NewID()
		}
		if _, dup := seen[c.ID]; dup {
			return nil, duplicateIDError(c.ID)
		}
		seen[c.ID] = struct{}{}

		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now()
		}
		if c.UpdatedAt.IsZero() {
			c.UpdatedAt = c.CreatedAt
		}
		flags = append(flags, c)
	}

	return flags, nil
}

// Toggle sets the enabled state of the flag with the given id. Untouched
// flags keep their pointer identity; only the matching flag is replaced
// with an updated copy. An unknown id is a silent no-op that preserves the
// collection identity entirely.
func (c *Controller) Toggle(id string, enabled bool) {
	c.mu.Lock()

	idx := slices.IndexFunc(c.flags, func(f *feature.Flag) bool { return f.ID == id })
	if idx < 0 {
		c.mu.Unlock()
		c.log.Debug("toggle ignored: unknown flag id", "flag_id", id)
		return
	}

	next := slices.Clone(c.flags)
	updated := next[idx].Clone()
	updated.Enabled = enabled
	updated.UpdatedAt = time.Now()
	next[idx] = updated

	c.flags = next
	c.version++
	c.mu.Unlock()

	c.log.Debug("flag toggled", "flag_id", id, "enabled", enabled)
	c.publish(Event{Kind: EventToggle, FlagID: id})
}

// SetSearch replaces the search text of the filter selection, leaving the
// status and category constraints untouched. The text is used literally;
// whitespace is not trimmed.
func (c *Controller) SetSearch(text string) {
	c.setSelection(func(sel *feature.Selection) { sel.Search = text })
}

// SetStatus replaces the status constraint of the filter selection.
func (c *Controller) SetStatus(status feature.Status) {
	c.setSelection(func(sel *feature.Selection) { sel.Status = status })
}

// SetCategory replaces the category constraint of the filter selection.
// An empty string removes the constraint.
func (c *Controller) SetCategory(category string) {
	c.setSelection(func(sel *feature.Selection) { sel.Category = category })
}

func (c *Controller) setSelection(mutate func(*feature.Selection)) {
	c.mu.Lock()
	next := c.sel
	mutate(&next)
	if next == c.sel {
		c.mu.Unlock()
		return
	}
	c.sel = next
	c.mu.Unlock()

	c.log.Debug("filter selection changed",
		"search", next.Search, "status", string(next.Status), "category", next.Category)
	c.publish(Event{Kind: EventFilter})
}

// Retry unconditionally clears the error message and the loading flag,
// regardless of their current values. It is idempotent; a retry that
// changes nothing publishes no event.
func (c *Controller) Retry() {
	c.mu.Lock()
	changed := c.loading || c.errMsg != ""
	c.loading = false
	c.errMsg = ""
	c.mu.Unlock()

	if !changed {
		return
	}
	c.log.Debug("retry requested, cleared loading and error state")
	c.publish(Event{Kind: EventRetry})
}

// Flags returns the full flag collection. The returned slice is the
// controller's canonical value and must not be mutated by the caller.
func (c *Controller) Flags() []*feature.Flag {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flags
}

// Selection returns the current filter selection.
func (c *Controller) Selection() feature.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel
}

// Loading reports the simulated loading flag.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// ErrorMessage returns the simulated fetch error and whether one is set.
func (c *Controller) ErrorMessage() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg, c.errMsg != ""
}

// Filtered returns the flags matching the current selection. The result is
// memoized on the (collection version, selection) pair: repeated calls with
// unchanged inputs return the identical slice, and any change to either
// input yields a freshly derived one.
func (c *Controller) Filtered() []*feature.Flag {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.filteredOK || c.filteredVer != c.version || c.filteredSel != c.sel {
		c.filtered = feature.Filter(c.flags, c.sel)
		c.filteredVer = c.version
		c.filteredSel = c.sel
		c.filteredOK = true
	}
	return c.filtered
}

// Counts returns the status counts over the entire collection, never the
// filtered subset. Memoized on the collection version.
func (c *Controller) Counts() feature.StatusCounts {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshAggregates()
	return c.counts
}

// Categories returns the sorted distinct category labels present in the
// collection. Memoized on the collection version; unchanged collections
// yield the identical slice.
func (c *Controller) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshAggregates()
	return c.categories
}

func (c *Controller) refreshAggregates() {
	if c.aggOK && c.aggVer == c.version {
		return
	}
	c.counts = feature.CountByStatus(c.flags)
	c.categories = feature.Categories(c.flags)
	c.aggVer = c.version
	c.aggOK = true
}

// Subscribe registers the presentation layer for change events. The
// subscription ends when ctx is cancelled or the controller is closed.
func (c *Controller) Subscribe(ctx context.Context) broadcast.Subscriber[Event] {
	return c.events.Subscribe(ctx)
}

// Close shuts down the event broadcaster. The controller state remains
// readable afterwards, but no further events are delivered.
func (c *Controller) Close() error {
	return c.events.Close()
}

func (c *Controller) publish(e Event) {
	if err := c.events.Publish(context.Background(), e); err != nil {
		c.log.Debug("event dropped", "kind", string(e.Kind), "error", err)
	}
}
