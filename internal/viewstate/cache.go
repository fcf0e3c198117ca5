// Package viewstate keeps per-example viewport state for the diagram viewer:
// pan offset, zoom level, and whether the user has touched the view. Each
// example key gets its own record so switching diagrams restores exactly the
// view the user left behind. Resident records are bounded by LRU eviction,
// with the currently selected key exempt.
//
// A Cache is instance-scoped and single-goroutine: the bubbletea update loop
// is the only writer, and reads between two updates always observe a
// consistent snapshot.
package viewstate

// DefaultCapacity bounds resident records when New is given a
// non-positive capacity.
const DefaultCapacity = 50

// Zoom is clamped to this range on every write.
const (
	MinZoom = 0.25
	MaxZoom = 4.0
)

// record holds the view state for one example key. Records are owned by the
// cache; callers only ever see value copies.
type record struct {
	panX       float64
	panY       float64
	zoom       float64
	interacted bool
}

func defaultRecord() record {
	return record{zoom: 1.0}
}

// Cache maps example keys to view-state records with LRU eviction.
//
// The empty key is reserved: while it is selected, reads address a fresh
// default record and mutations are discarded, so working with no example
// open leaves no trace.
type Cache struct {
	capacity int
	records  map[string]*record
	order    []string // LRU ledger: least recently used first
	current  string

	seq       uint64
	listeners map[int]func()
	nextSub   int
	notifying bool
}

// New returns an empty cache with no current key. A non-positive capacity
// falls back to DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity:  capacity,
		records:   make(map[string]*record, capacity),
		listeners: make(map[int]func()),
	}
}

// ---------------------------------------------------------------------------
// Key selection and eviction
// ---------------------------------------------------------------------------

// SelectExample makes key the current example. A non-empty key lazily gets a
// default record, is promoted to most-recently-used, and overflow beyond
// capacity is evicted. The empty key deselects: reads then address a fresh
// default record that is never persisted.
func (c *Cache) SelectExample(key string) {
	c.guardMutation()
	if key == c.current {
		return
	}
	c.current = key
	if key != "" {
		if _, ok := c.records[key]; !ok {
			r := defaultRecord()
			c.records[key] = &r
		}
		c.promote(key)
		c.prune()
	}
	c.bump()
}

// CurrentKey returns the currently selected example key ("" when none).
func (c *Cache) CurrentKey() string { return c.current }

// Len reports the number of resident records.
func (c *Cache) Len() int { return len(c.records) }

// Contains reports whether key has a resident record. Never creates one.
func (c *Cache) Contains(key string) bool {
	_, ok := c.records[key]
	return ok
}

// promote moves key to the most-recently-used end of the ledger. Each key
// appears in the ledger at most once.
func (c *Cache) promote(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.order = append(c.order, key)
}

// prune evicts least-recently-used records until the ledger is back within
// capacity. The current key is never evicted: the scan skips it and takes the
// next-oldest entry instead. If nothing evictable remains, prune is a no-op.
func (c *Cache) prune() {
	for len(c.order) > c.capacity {
		idx := -1
		for i, k := range c.order {
			if k != c.current {
				idx = i
				break
			}
		}
		if idx < 0 {
			return
		}
		victim := c.order[idx]
		c.order = append(c.order[:idx], c.order[idx+1:]...)
		delete(c.records, victim)
	}
}

// ---------------------------------------------------------------------------
// Mutations on the current record
// ---------------------------------------------------------------------------

// mutate applies f to the record addressed by the current key and bumps the
// change counter when f reports an observable change. With the empty key
// selected, f runs against a throwaway default record: nothing persists and
// no change is signalled.
func (c *Cache) mutate(f func(*record) bool) {
	c.guardMutation()
	if c.current == "" {
		r := defaultRecord()
		f(&r)
		return
	}
	r, ok := c.records[c.current]
	if !ok {
		fresh := defaultRecord()
		r = &fresh
		c.records[c.current] = r
		c.promote(c.current)
		c.prune()
	}
	if f(r) {
		c.bump()
	}
}

// ApplyPanDelta adds (dx, dy) to the current record's pan offset. Deltas
// accumulate, so a sequence of calls equals one call with the summed delta.
// Non-finite inputs are a caller bug; they propagate unchanged rather than
// being clamped, so the break surfaces where it happened.
func (c *Cache) ApplyPanDelta(dx, dy float64) {
	c.mutate(func(r *record) bool {
		r.panX += dx
		r.panY += dy
		return true
	})
}

// SetPanOffset replaces the current record's pan offset wholesale.
func (c *Cache) SetPanOffset(x, y float64) {
	c.mutate(func(r *record) bool {
		r.panX = x
		r.panY = y
		return true
	})
}

// SetZoom sets the current record's zoom, clamped to [MinZoom, MaxZoom].
// Any input that does not compare above MinZoom — NaN, -Inf, zero, negatives —
// clamps to MinZoom; anything above MaxZoom clamps to MaxZoom.
func (c *Cache) SetZoom(z float64) {
	c.mutate(func(r *record) bool {
		r.zoom = clampZoom(z)
		return true
	})
}

func clampZoom(z float64) float64 {
	if !(z > MinZoom) {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// MarkInteraction records that the user has touched the current view.
// Idempotent: repeat calls after the first are no-ops.
func (c *Cache) MarkInteraction() {
	c.mutate(func(r *record) bool {
		if r.interacted {
			return false
		}
		r.interacted = true
		return true
	})
}

// ClearInteraction clears the interaction flag without touching pan or zoom.
func (c *Cache) ClearInteraction() {
	c.mutate(func(r *record) bool {
		if !r.interacted {
			return false
		}
		r.interacted = false
		return true
	})
}

// ResetView restores the current record to defaults: pan (0,0), zoom 1.0,
// interaction cleared. Other records are untouched.
func (c *Cache) ResetView() {
	c.mutate(func(r *record) bool {
		*r = defaultRecord()
		return true
	})
}

// ---------------------------------------------------------------------------
// Reads and the reactive surface
// ---------------------------------------------------------------------------

// PanOffset returns the current record's pan offset.
func (c *Cache) PanOffset() (x, y float64) {
	r := c.read()
	return r.panX, r.panY
}

// Zoom returns the current record's zoom level.
func (c *Cache) Zoom() float64 { return c.read().zoom }

// HasInteracted reports whether the user has touched the current view.
func (c *Cache) HasInteracted() bool { return c.read().interacted }

func (c *Cache) read() record {
	if r, ok := c.records[c.current]; ok && c.current != "" {
		return *r
	}
	return defaultRecord()
}

// View is a value snapshot of the current record, safe to hold across
// updates. Seq identifies the cache generation the snapshot was taken at:
// two snapshots with equal Seq are identical, so render code can key a memo
// on it.
type View struct {
	Key        string
	PanX       float64
	PanY       float64
	Zoom       float64
	Interacted bool
	Seq        uint64
}

// Snapshot returns a consistent copy of the view addressed by the current
// key. Never a live reference: mutating the cache afterwards does not change
// an already-taken snapshot.
func (c *Cache) Snapshot() View {
	r := c.read()
	return View{
		Key:        c.current,
		PanX:       r.panX,
		PanY:       r.panY,
		Zoom:       r.zoom,
		Interacted: r.interacted,
		Seq:        c.seq,
	}
}

// Seq returns the change counter. It increases on every observable change:
// a current-key switch or any field mutation of the addressed record. Field
// mutations happen in place, so Seq is how downstream code notices them
// without comparing records.
func (c *Cache) Seq() uint64 { return c.seq }

// Subscribe registers fn to run synchronously after every observable change.
// The returned cancel removes the subscription. Mutating the cache from
// inside fn is a programming error and panics.
func (c *Cache) Subscribe(fn func()) (cancel func()) {
	id := c.nextSub
	c.nextSub++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

func (c *Cache) bump() {
	c.seq++
	if len(c.listeners) == 0 {
		return
	}
	c.notifying = true
	defer func() { c.notifying = false }()
	for _, fn := range c.listeners {
		fn()
	}
}

func (c *Cache) guardMutation() {
	if c.notifying {
		panic("viewstate: reentrant mutation from inside a change listener")
	}
}
