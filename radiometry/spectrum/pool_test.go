package spectrum

import "testing"

func TestPoolGetReturnsZeroedCompatible(t *testing.T) {
	p, err := NewPool(400, 720, 4)
	if err != nil {
		t.Fatalf("NewPool error: %v", err)
	}

	s := p.Get()
	if !s.IsCompatible(400, 720, 4) {
		t.Fatalf("pooled spectrum layout mismatch")
	}
	if !s.IsZero() {
		t.Fatalf("pooled spectrum not zeroed")
	}

	// Dirty spectra are zeroed before reuse.
	s.Samples()[0] = 7
	p.Put(s)

	again := p.Get()
	if !again.IsZero() {
		t.Fatalf("reused spectrum not zeroed")
	}
	if !again.IsCompatible(400, 720, 4) {
		t.Fatalf("reused spectrum layout mismatch")
	}
}

func TestPoolRejectsForeignLayout(t *testing.T) {
	p, _ := NewPool(400, 720, 4)

	foreign, _ := New(300, 800, 10)
	foreign.Samples()[0] = 1
	p.Put(foreign) // discarded, not pooled

	s := p.Get()
	if !s.IsCompatible(400, 720, 4) {
		t.Fatalf("pool handed out a foreign-layout spectrum")
	}

	p.Put(nil) // no-op
}

func TestNewPoolValidation(t *testing.T) {
	if _, err := NewPool(720, 400, 4); err == nil {
		t.Fatalf("expected error for inverted range")
	}
	if _, err := NewPool(400, 720, 0); err == nil {
		t.Fatalf("expected error for zero bins")
	}
}
