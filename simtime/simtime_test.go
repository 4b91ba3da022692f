package simtime

import "testing"

func TestSecondsToDurationIsMilliseconds(t *testing.T) {
	if got := SecondsToDuration(1.5); got != 1500 {
		t.Errorf("expected 1500ms, got %v", got)
	}
}

func TestMomentSinceAndAdd(t *testing.T) {
	m := Zero.Add(MillisecondsToDuration(200))
	if m != 200 {
		t.Errorf("expected moment 200, got %v", m)
	}
	if d := m.Since(Zero); d != 200 {
		t.Errorf("expected duration 200, got %v", d)
	}
}

func TestMomentSubRestoresOffset(t *testing.T) {
	now := Moment(1000)
	accum := MillisecondsToDuration(150)
	restored := now.Sub(accum)
	if restored != 850 {
		t.Errorf("expected 850, got %v", restored)
	}
	if got := now.Since(restored); got != accum {
		t.Errorf("expected offset preserved at %v, got %v", accum, got)
	}
}
