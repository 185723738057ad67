package rawmem

import "testing"

func TestBufferBasic(t *testing.T) {
	b := New[int](4)
	if b.Cap() != 4 {
		t.Fatalf("expected capacity 4, got %d", b.Cap())
	}
	*b.At(0) = 10
	*b.At(3) = 40
	if *b.At(0) != 10 || *b.At(3) != 40 {
		t.Error("slot writes did not stick")
	}
	if w := b.Slice(1, 4); len(w) != 3 {
		t.Errorf("expected window of 3 slots, got %d", len(w))
	}
	if w := b.Slice(4, 4); len(w) != 0 {
		t.Errorf("expected empty one-past-the-end window, got %d slots", len(w))
	}
}

func TestBufferZeroCapacity(t *testing.T) {
	b := New[int](0)
	if b.Cap() != 0 {
		t.Fatalf("expected capacity 0, got %d", b.Cap())
	}
	var zero Buffer[int]
	if zero.Cap() != 0 {
		t.Error("zero Buffer should be an empty owner")
	}
	if w := zero.Slice(0, 0); len(w) != 0 {
		t.Error("empty owner should still produce the empty window")
	}
}

func TestBufferSwap(t *testing.T) {
	a := New[int](2)
	b := New[int](8)
	*a.At(0) = 1
	*b.At(0) = 2

	a.Swap(&b)
	if a.Cap() != 8 || b.Cap() != 2 {
		t.Fatalf("swap did not exchange capacities: %d, %d", a.Cap(), b.Cap())
	}
	if *a.At(0) != 2 || *b.At(0) != 1 {
		t.Error("swap did not exchange blocks")
	}
}

func TestBufferMove(t *testing.T) {
	src := New[int](3)
	*src.At(1) = 7

	dst := src.Move()
	if src.Cap() != 0 {
		t.Fatalf("moved-from buffer should be empty, capacity %d", src.Cap())
	}
	if dst.Cap() != 3 || *dst.At(1) != 7 {
		t.Error("move did not transfer the block")
	}
}

// --- Contract Violations ---

func TestBufferPanics(t *testing.T) {
	cases := []struct {
		name string
		f    func()
	}{
		{"negative capacity", func() { New[int](-1) }},
		{"slot past capacity", func() { b := New[int](2); b.At(2) }},
		{"negative slot", func() { b := New[int](2); b.At(-1) }},
		{"window past capacity", func() { b := New[int](2); b.Slice(0, 3) }},
		{"inverted window", func() { b := New[int](2); b.Slice(2, 1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", tc.name)
				}
			}()
			tc.f()
		})
	}
}
