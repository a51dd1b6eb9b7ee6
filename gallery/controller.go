// Package gallery owns the image carousel: the open/closed session, the
// current index, and the pointer-drag physics (edge resistance,
// velocity-based commit, snap-back).
package gallery

import (
	"math"
	"sync"
	"time"

	"github.com/menulens/menulens-go/tool"
	"github.com/menulens/menulens-go/types"
)

// Drag physics constants. Hand-tuned; changing them changes the feel of
// every swipe, so keep them in sync with the web UI.
const (
	edgeResistance = 0.3   // offset multiplier when dragging past the first/last image
	commitDistance = 100.0 // px, hard page-change threshold
	flickDistance  = 30.0  // px, soft threshold paired with velocity
	flickVelocity  = 0.3   // px per ms
)

// Point is one pointer position, source-agnostic (touch or mouse).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type dragState struct {
	originX   float64
	originY   float64
	offsetX   float64
	startedAt time.Time
}

// EventSink receives every rendered state change.
type EventSink interface {
	GalleryEvent(types.GalleryEvent)
}

// Controller is the carousel state machine. All methods are synchronous;
// events are emitted in call order.
type Controller struct {
	mu     sync.Mutex
	images []string
	index  int
	drag   *dragState
	sink   EventSink
}

func New(sink EventSink) *Controller {
	return &Controller{sink: sink}
}

// Open starts a session over images at startIndex (clamped into range).
// A no-op when images is empty. The first view renders without a transition.
func (c *Controller) Open(images []string, startIndex int) {
	if len(images) == 0 {
		return
	}
	c.mu.Lock()
	c.images = append([]string(nil), images...)
	c.index = clamp(startIndex, 0, len(images)-1)
	c.drag = nil
	ev := c.eventLocked(0, types.TransitionNone)
	c.mu.Unlock()

	tool.DefaultLogger.Debugf("[Gallery] Opened with %d image(s) at index %d", ev.Total, ev.CurrentIndex)
	c.emit(ev)
}

// Close ends the session, discarding any in-progress drag.
func (c *Controller) Close() {
	c.mu.Lock()
	c.images = nil
	c.index = 0
	c.drag = nil
	ev := c.eventLocked(0, types.TransitionNone)
	c.mu.Unlock()
	c.emit(ev)
}

// Next advances one image; a no-op at the last index.
func (c *Controller) Next() {
	c.mu.Lock()
	ev, moved := c.stepLocked(1)
	c.mu.Unlock()
	if moved {
		c.emit(ev)
	}
}

// Prev goes back one image; a no-op at the first index.
func (c *Controller) Prev() {
	c.mu.Lock()
	ev, moved := c.stepLocked(-1)
	c.mu.Unlock()
	if moved {
		c.emit(ev)
	}
}

// DragStart begins a pointer drag. Only meaningful while a session is open;
// the index is frozen until the matching DragEnd commits or snaps back.
func (c *Controller) DragStart(p Point, at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.images) == 0 {
		return
	}
	c.drag = &dragState{originX: p.X, originY: p.Y, startedAt: at}
}

// DragMove updates the live offset. Vertical-dominant moves are ignored so
// page scrolling does not fight the carousel. Past the first or last image
// the offset is damped by the edge-resistance factor.
func (c *Controller) DragMove(p Point) {
	c.mu.Lock()
	if c.drag == nil {
		c.mu.Unlock()
		return
	}
	diffX := c.drag.originX - p.X
	diffY := c.drag.originY - p.Y
	if math.Abs(diffX) <= math.Abs(diffY) {
		c.mu.Unlock()
		return
	}
	offset := diffX
	last := len(c.images) - 1
	if (c.index == 0 && offset < 0) || (c.index == last && offset > 0) {
		offset *= edgeResistance
	}
	c.drag.offsetX = offset
	ev := c.eventLocked(offset, types.TransitionDrag)
	c.mu.Unlock()
	c.emit(ev)
}

// DragEnd settles the drag: commit a page change when the distance clears
// the hard threshold, or when a shorter but fast flick clears the velocity
// threshold; snap back otherwise. The drag state is always cleared.
func (c *Controller) DragEnd(p Point, at time.Time) {
	c.mu.Lock()
	if c.drag == nil {
		c.mu.Unlock()
		return
	}
	diffX := c.drag.originX - p.X
	diffY := c.drag.originY - p.Y
	startedAt := c.drag.startedAt
	c.drag = nil

	commit := false
	if math.Abs(diffX) > math.Abs(diffY) && math.Abs(diffX) > commitDistance {
		commit = true
	} else if math.Abs(diffX) > flickDistance {
		elapsedMs := float64(at.Sub(startedAt)) / float64(time.Millisecond)
		velocity := math.Abs(diffX) / math.Max(elapsedMs, 1)
		commit = velocity > flickVelocity
	}

	var ev types.GalleryEvent
	if commit {
		step := 1
		if diffX < 0 {
			step = -1
		}
		var moved bool
		ev, moved = c.stepLocked(step)
		if !moved {
			// Already at the boundary: rendered as a snap-back.
			ev = c.eventLocked(0, types.TransitionSnapBack)
		}
	} else {
		ev = c.eventLocked(0, types.TransitionSnapBack)
	}
	c.mu.Unlock()
	c.emit(ev)
}

// Snapshot returns the current rendered state.
func (c *Controller) Snapshot() types.GalleryEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.drag != nil {
		return c.eventLocked(c.drag.offsetX, types.TransitionDrag)
	}
	return c.eventLocked(0, types.TransitionNone)
}

// stepLocked moves the index by delta, clamped; reports whether it moved.
func (c *Controller) stepLocked(delta int) (types.GalleryEvent, bool) {
	if len(c.images) == 0 {
		return c.eventLocked(0, types.TransitionNone), false
	}
	next := clamp(c.index+delta, 0, len(c.images)-1)
	if next == c.index {
		return c.eventLocked(0, types.TransitionNone), false
	}
	c.index = next
	return c.eventLocked(0, types.TransitionSlide), true
}

func (c *Controller) eventLocked(offset float64, kind types.TransitionKind) types.GalleryEvent {
	return types.GalleryEvent{
		CurrentIndex:   c.index,
		Total:          len(c.images),
		LiveOffset:     offset,
		TransitionKind: kind,
		PrevEnabled:    len(c.images) > 0 && c.index > 0,
		NextEnabled:    len(c.images) > 0 && c.index < len(c.images)-1,
	}
}

func (c *Controller) emit(ev types.GalleryEvent) {
	if c.sink != nil {
		c.sink.GalleryEvent(ev)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
