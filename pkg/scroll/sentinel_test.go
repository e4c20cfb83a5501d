package scroll

import (
	"testing"
)

func TestSentinelEdgeTriggered(t *testing.T) {
	s := Sentinel{edge: Top}

	if !s.Observe(3, 5) {
		t.Fatalf("expected fire on entering the margin")
	}
	if s.Observe(2, 5) {
		t.Fatalf("must not fire while continuously inside the margin")
	}
	if s.Observe(0, 5) {
		t.Fatalf("must not fire at the very edge while still inside")
	}
	if s.Observe(10, 5) {
		t.Fatalf("leaving the margin must not fire")
	}
	if !s.Observe(4, 5) {
		t.Fatalf("expected fire on re-entering after leaving")
	}
}

func TestSentinelReset(t *testing.T) {
	s := Sentinel{edge: Bottom}
	s.Observe(0, 5)
	s.Reset()
	if !s.Observe(0, 5) {
		t.Fatalf("expected fire after reset while inside the margin")
	}
}

func TestDetectorBothEdges(t *testing.T) {
	d := NewDetector(5)

	// Tall content, viewport in the middle: nothing near.
	if fired := d.Observe(50, 200, 20); len(fired) != 0 {
		t.Fatalf("expected no edges, got %v", fired)
	}

	// Scrolled to the top.
	fired := d.Observe(2, 200, 20)
	if len(fired) != 1 || fired[0] != Top {
		t.Fatalf("expected top edge, got %v", fired)
	}

	// Jump to the bottom: top re-arms, bottom fires.
	fired = d.Observe(178, 200, 20)
	if len(fired) != 1 || fired[0] != Bottom {
		t.Fatalf("expected bottom edge, got %v", fired)
	}

	// Repeated observation at the bottom stays quiet.
	if fired := d.Observe(179, 200, 20); len(fired) != 0 {
		t.Fatalf("expected no repeat fire, got %v", fired)
	}
}

func TestDetectorShortContentFiresBoth(t *testing.T) {
	// Content no taller than the expanded region: both sentinels fire on
	// the first observation, and the consumer has to cope with both.
	d := NewDetector(10)
	fired := d.Observe(0, 15, 10)
	if len(fired) != 2 || fired[0] != Top || fired[1] != Bottom {
		t.Fatalf("expected top then bottom, got %v", fired)
	}
}

func TestDetectorAutoMargin(t *testing.T) {
	// Margin 0 derives the margin from the viewport height.
	d := NewDetector(0)
	if fired := d.Observe(50, 200, 20); len(fired) != 0 {
		t.Fatalf("expected no edges at distance 50 with margin 20, got %v", fired)
	}
	fired := d.Observe(15, 200, 20)
	if len(fired) != 1 || fired[0] != Top {
		t.Fatalf("expected top edge at distance 15 with margin 20, got %v", fired)
	}
}

func TestEdgeString(t *testing.T) {
	if Top.String() != "top" || Bottom.String() != "bottom" {
		t.Fatalf("unexpected edge names: %s, %s", Top, Bottom)
	}
}
