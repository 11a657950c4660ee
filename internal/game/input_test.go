package game

import "testing"

func TestClassifyDrag(t *testing.T) {
	cases := []struct {
		name   string
		dx, dy float64
		dir    Dir
		ok     bool
	}{
		{"right", 80, 5, DirRight, true},
		{"left", -80, -10, DirLeft, true},
		{"down", 3, 60, DirDown, true},
		{"up", -12, -60, DirUp, true},
		{"too short", 10, 10, 0, false},
		{"just under threshold", DragMinDist - 1, 0, 0, false},
		{"exactly threshold", DragMinDist, 0, DirRight, true},
		{"diagonal x wins", 70, 50, DirRight, true},
		{"diagonal y wins", 50, 70, DirDown, true},
	}
	for _, tc := range cases {
		dir, ok := ClassifyDrag(tc.dx, tc.dy)
		if ok != tc.ok || (ok && dir != tc.dir) {
			t.Errorf("%s: ClassifyDrag(%v,%v)=(%v,%v), want (%v,%v)",
				tc.name, tc.dx, tc.dy, dir, ok, tc.dir, tc.ok)
		}
	}
}

func TestDragTrackerGestureLifecycle(t *testing.T) {
	var d DragTracker

	// Press, move past the threshold, release.
	if _, ok := d.Update(true, 100, 100); ok {
		t.Fatal("press must not classify")
	}
	if _, ok := d.Update(true, 140, 102); ok {
		t.Fatal("move must not classify")
	}
	dir, ok := d.Update(false, 140, 102)
	if !ok || dir != DirRight {
		t.Fatalf("release=(%v,%v), want (DirRight,true)", dir, ok)
	}

	// Idle release is a no-op.
	if _, ok := d.Update(false, 0, 0); ok {
		t.Fatal("release without a press classified a gesture")
	}

	// A tap (no travel) classifies nothing.
	d.Update(true, 50, 50)
	if _, ok := d.Update(false, 52, 51); ok {
		t.Fatal("tap classified as a swipe")
	}
}

func TestDirHelpers(t *testing.T) {
	pairs := map[Dir]Dir{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, opp := range pairs {
		if d.Opposite() != opp {
			t.Fatalf("%v.Opposite()=%v, want %v", d, d.Opposite(), opp)
		}
		dx, dy := d.Vector()
		ox, oy := opp.Vector()
		if dx+ox != 0 || dy+oy != 0 {
			t.Fatalf("%v and %v vectors are not opposite", d, opp)
		}
		if abs(dx)+abs(dy) != 1 {
			t.Fatalf("%v vector (%d,%d) is not a unit step", d, dx, dy)
		}
	}
}
