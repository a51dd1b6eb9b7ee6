package gallery

import (
	"sync"
	"testing"
	"time"

	"github.com/menulens/menulens-go/types"
)

type sinkRecorder struct {
	mu     sync.Mutex
	events []types.GalleryEvent
}

func (s *sinkRecorder) GalleryEvent(ev types.GalleryEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *sinkRecorder) last(t *testing.T) types.GalleryEvent {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == 0 {
		t.Fatal("Expected at least one event")
	}
	return s.events[len(s.events)-1]
}

func threeImages() []string {
	return []string{"a.jpg", "b.jpg", "c.jpg"}
}

func TestOpenClampsStartIndex(t *testing.T) {
	cases := []struct {
		name  string
		start int
		want  int
	}{
		{"in range", 1, 1},
		{"first", 0, 0},
		{"last", 2, 2},
		{"past the end", 7, 2},
		{"negative", -3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sink := &sinkRecorder{}
			c := New(sink)
			c.Open(threeImages(), tc.start)
			ev := sink.last(t)
			if ev.CurrentIndex != tc.want {
				t.Errorf("Expected index %d, got %d", tc.want, ev.CurrentIndex)
			}
			if ev.TransitionKind != types.TransitionNone {
				t.Errorf("First view should render without a transition, got %s", ev.TransitionKind)
			}
			if ev.Total != 3 {
				t.Errorf("Expected total 3, got %d", ev.Total)
			}
		})
	}
}

func TestOpenEmptyIsNoOp(t *testing.T) {
	sink := &sinkRecorder{}
	c := New(sink)
	c.Open(nil, 0)
	if len(sink.events) != 0 {
		t.Errorf("Open with no images should emit nothing, got %d events", len(sink.events))
	}
	snap := c.Snapshot()
	if snap.Total != 0 {
		t.Errorf("Expected no session, got total %d", snap.Total)
	}
}

func TestNextPrevClampAtBoundaries(t *testing.T) {
	sink := &sinkRecorder{}
	c := New(sink)
	c.Open(threeImages(), 0)

	c.Prev() // already at 0
	if snap := c.Snapshot(); snap.CurrentIndex != 0 {
		t.Errorf("Prev at first index should be a no-op, got %d", snap.CurrentIndex)
	}

	c.Next()
	c.Next()
	c.Next() // already at 2
	snap := c.Snapshot()
	if snap.CurrentIndex != 2 {
		t.Errorf("Expected index 2, got %d", snap.CurrentIndex)
	}
	if snap.NextEnabled {
		t.Error("Next should be disabled at the last index")
	}
	if !snap.PrevEnabled {
		t.Error("Prev should be enabled at the last index")
	}
}

func TestBoundaryReporting(t *testing.T) {
	sink := &sinkRecorder{}
	c := New(sink)
	c.Open(threeImages(), 1)
	snap := c.Snapshot()
	if !snap.PrevEnabled || !snap.NextEnabled {
		t.Errorf("Both directions should be enabled in the middle, got prev=%v next=%v",
			snap.PrevEnabled, snap.NextEnabled)
	}
}

// Drag left 150px at the first image: the live offset is damped to -45 by
// edge resistance, the release still evaluates the commit rule, and the
// resulting Prev is a no-op.
func TestDragPastFirstImage(t *testing.T) {
	sink := &sinkRecorder{}
	c := New(sink)
	c.Open(threeImages(), 0)

	start := time.UnixMilli(1000)
	c.DragStart(Point{X: 200, Y: 100}, start)
	c.DragMove(Point{X: 350, Y: 100}) // diffX = -150
	ev := sink.last(t)
	if ev.TransitionKind != types.TransitionDrag {
		t.Fatalf("Expected a live drag event, got %s", ev.TransitionKind)
	}
	if ev.LiveOffset != -45 {
		t.Errorf("Expected resisted offset -45, got %v", ev.LiveOffset)
	}

	c.DragEnd(Point{X: 350, Y: 100}, start.Add(200*time.Millisecond))
	ev = sink.last(t)
	if ev.CurrentIndex != 0 {
		t.Errorf("Prev at the first index should not move, got %d", ev.CurrentIndex)
	}
	if ev.TransitionKind != types.TransitionSnapBack {
		t.Errorf("Boundary commit should render as snap-back, got %s", ev.TransitionKind)
	}
}

// diffX = 120 clears the hard threshold and commits Next.
func TestDragCommitByDistance(t *testing.T) {
	sink := &sinkRecorder{}
	c := New(sink)
	c.Open(threeImages(), 1)

	start := time.UnixMilli(1000)
	c.DragStart(Point{X: 200, Y: 100}, start)
	c.DragEnd(Point{X: 80, Y: 100}, start.Add(300*time.Millisecond))
	ev := sink.last(t)
	if ev.CurrentIndex != 2 {
		t.Errorf("Expected commit to index 2, got %d", ev.CurrentIndex)
	}
	if ev.TransitionKind != types.TransitionSlide {
		t.Errorf("Expected slide transition, got %s", ev.TransitionKind)
	}
}

// diffX = 40 over 50ms is 0.8 px/ms, past the velocity threshold: a short
// fast flick pages even though it never reached the distance threshold.
func TestDragCommitByVelocity(t *testing.T) {
	sink := &sinkRecorder{}
	c := New(sink)
	c.Open(threeImages(), 0)

	start := time.UnixMilli(1000)
	c.DragStart(Point{X: 200, Y: 100}, start)
	c.DragEnd(Point{X: 160, Y: 100}, start.Add(50*time.Millisecond))
	ev := sink.last(t)
	if ev.CurrentIndex != 1 {
		t.Errorf("Expected flick to commit next, got index %d", ev.CurrentIndex)
	}
}

// diffX = 40 over 200ms is 0.2 px/ms: below the velocity threshold, so the
// view snaps back.
func TestDragSlowReleaseSnapsBack(t *testing.T) {
	sink := &sinkRecorder{}
	c := New(sink)
	c.Open(threeImages(), 0)

	start := time.UnixMilli(1000)
	c.DragStart(Point{X: 200, Y: 100}, start)
	c.DragEnd(Point{X: 160, Y: 100}, start.Add(200*time.Millisecond))
	ev := sink.last(t)
	if ev.CurrentIndex != 0 {
		t.Errorf("Expected snap-back with no index change, got %d", ev.CurrentIndex)
	}
	if ev.TransitionKind != types.TransitionSnapBack {
		t.Errorf("Expected snap-back transition, got %s", ev.TransitionKind)
	}
}

// diffX = 20 is below both thresholds regardless of speed.
func TestDragBelowBothThresholds(t *testing.T) {
	sink := &sinkRecorder{}
	c := New(sink)
	c.Open(threeImages(), 1)

	start := time.UnixMilli(1000)
	c.DragStart(Point{X: 200, Y: 100}, start)
	c.DragEnd(Point{X: 180, Y: 100}, start.Add(5*time.Millisecond))
	ev := sink.last(t)
	if ev.CurrentIndex != 1 {
		t.Errorf("Expected no index change, got %d", ev.CurrentIndex)
	}
	if ev.TransitionKind != types.TransitionSnapBack {
		t.Errorf("Expected snap-back transition, got %s", ev.TransitionKind)
	}
}

// A mostly-vertical move is the page scrolling, not the carousel.
func TestDragVerticalDominantIgnored(t *testing.T) {
	sink := &sinkRecorder{}
	c := New(sink)
	c.Open(threeImages(), 1)

	start := time.UnixMilli(1000)
	c.DragStart(Point{X: 200, Y: 100}, start)
	before := len(sink.events)
	c.DragMove(Point{X: 150, Y: 300}) // |diffX|=50 <= |diffY|=200
	if len(sink.events) != before {
		t.Error("Vertical-dominant move should not emit a drag event")
	}

	// Vertical-dominant and slow: the hard threshold needs horizontal
	// dominance and the release is too slow for the velocity rule.
	c.DragEnd(Point{X: 40, Y: 300}, start.Add(time.Second)) // |diffX|=160, |diffY|=200
	ev := sink.last(t)
	if ev.CurrentIndex != 1 {
		t.Errorf("Slow vertical-dominant release should snap back, got index %d", ev.CurrentIndex)
	}
}

func TestStrayDragEventsAreNoOps(t *testing.T) {
	sink := &sinkRecorder{}
	c := New(sink)
	c.Open(threeImages(), 1)
	before := len(sink.events)

	c.DragMove(Point{X: 10, Y: 10})
	c.DragEnd(Point{X: 10, Y: 10}, time.Now())
	if len(sink.events) != before {
		t.Errorf("Stray drag events without DragStart should emit nothing, got %d new events",
			len(sink.events)-before)
	}
}

func TestDragStartWithoutSessionIsNoOp(t *testing.T) {
	sink := &sinkRecorder{}
	c := New(sink)
	c.DragStart(Point{X: 1, Y: 1}, time.Now())
	c.DragMove(Point{X: 200, Y: 1})
	if len(sink.events) != 0 {
		t.Error("Drag without an open session should emit nothing")
	}
}

func TestCloseDiscardsDragState(t *testing.T) {
	sink := &sinkRecorder{}
	c := New(sink)
	c.Open(threeImages(), 0)
	c.DragStart(Point{X: 200, Y: 100}, time.Now())
	c.Close()

	c.Open(threeImages(), 0)
	before := len(sink.events)
	// Without a fresh DragStart these must be no-ops in the new session.
	c.DragMove(Point{X: 40, Y: 100})
	c.DragEnd(Point{X: 40, Y: 100}, time.Now())
	if len(sink.events) != before {
		t.Error("Drag state leaked across close/open")
	}
	if snap := c.Snapshot(); snap.CurrentIndex != 0 {
		t.Errorf("Expected fresh session at index 0, got %d", snap.CurrentIndex)
	}
}

func TestCloseResetsSession(t *testing.T) {
	sink := &sinkRecorder{}
	c := New(sink)
	c.Open(threeImages(), 2)
	c.Close()
	snap := c.Snapshot()
	if snap.Total != 0 || snap.CurrentIndex != 0 {
		t.Errorf("Expected empty session after close, got total=%d index=%d", snap.Total, snap.CurrentIndex)
	}
	if snap.PrevEnabled || snap.NextEnabled {
		t.Error("No direction should be enabled after close")
	}
}

func TestSnapshotReflectsLiveDrag(t *testing.T) {
	sink := &sinkRecorder{}
	c := New(sink)
	c.Open(threeImages(), 1)

	c.DragStart(Point{X: 200, Y: 100}, time.UnixMilli(1000))
	c.DragMove(Point{X: 160, Y: 100}) // diffX = 40

	snap := c.Snapshot()
	if snap.TransitionKind != types.TransitionDrag {
		t.Errorf("Snapshot during a drag should report %s, got %s", types.TransitionDrag, snap.TransitionKind)
	}
	if snap.LiveOffset != 40 {
		t.Errorf("Expected live offset 40, got %v", snap.LiveOffset)
	}

	c.DragEnd(Point{X: 160, Y: 100}, time.UnixMilli(2000))
	if after := c.Snapshot(); after.TransitionKind != types.TransitionNone {
		t.Errorf("Snapshot after the drag settled should report %s, got %s", types.TransitionNone, after.TransitionKind)
	}
}

func TestImagesCopiedOnOpen(t *testing.T) {
	sink := &sinkRecorder{}
	c := New(sink)
	images := threeImages()
	c.Open(images, 0)
	images[0] = "mutated.jpg"
	c.mu.Lock()
	got := c.images[0]
	c.mu.Unlock()
	if got != "a.jpg" {
		t.Errorf("Session images must be immutable for the session lifetime, got %q", got)
	}
}
