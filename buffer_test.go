package vtcore

import "testing"

func TestFrameBufferGetSetRoundTrip(t *testing.T) {
	fb, err := NewFrameBuffer(10, 5)
	if err != nil {
		t.Fatalf("NewFrameBuffer: %v", err)
	}
	c := Cell{Char: 'Z', Fg: RGBColor(255, 0, 0), Bg: DefaultColor(), Style: StyleBold}
	fb.Set(3, 2, c)
	if got := fb.Get(3, 2); got != c {
		t.Errorf("Get(3,2) = %+v, want %+v", got, c)
	}
}

func TestFrameBufferOutOfBounds(t *testing.T) {
	fb, _ := NewFrameBuffer(4, 4)
	if got := fb.Get(100, 100); got != DefaultCell() {
		t.Errorf("out-of-bounds Get should return the default cell, got %+v", got)
	}
	// Must not panic, and must not affect in-bounds state.
	fb.Set(100, 100, Cell{Char: 'Q'})
	fb.SetChar(100, 100, 'Q')
	if fb.GetMut(100, 100) != nil {
		t.Errorf("GetMut out of bounds should return nil")
	}
}

func TestFrameBufferClearAndResize(t *testing.T) {
	fb, _ := NewFrameBuffer(3, 3)
	fb.Set(1, 1, Cell{Char: 'X'})
	fb.Clear()
	if got := fb.Get(1, 1); got != DefaultCell() {
		t.Errorf("after Clear, Get(1,1) = %+v, want default", got)
	}

	fb.Set(0, 0, Cell{Char: 'X'})
	if err := fb.Resize(5, 2); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if fb.Width() != 5 || fb.Height() != 2 {
		t.Errorf("Resize dimensions = %dx%d, want 5x2", fb.Width(), fb.Height())
	}
	if got := fb.Get(0, 0); got != DefaultCell() {
		t.Errorf("Resize must discard prior content, got %+v", got)
	}
}

func TestFrameBufferSetChar(t *testing.T) {
	fb, _ := NewFrameBuffer(4, 4)
	fb.Set(0, 0, Cell{Char: 'A', Fg: IndexedColor(2), Style: StyleItalic})
	fb.SetChar(0, 0, 'B')
	got := fb.Get(0, 0)
	if got.Char != 'B' || got.Fg != IndexedColor(2) || got.Style != StyleItalic {
		t.Errorf("SetChar must preserve colors/style, got %+v", got)
	}
}

func TestFrameBufferGetMut(t *testing.T) {
	fb, _ := NewFrameBuffer(2, 2)
	cell := fb.GetMut(1, 1)
	if cell == nil {
		t.Fatalf("GetMut(1,1) = nil")
	}
	cell.Char = 'M'
	if fb.Get(1, 1).Char != 'M' {
		t.Errorf("mutation through GetMut did not persist")
	}
}

func TestFrameBufferArea(t *testing.T) {
	fb, _ := NewFrameBuffer(80, 24)
	if got := fb.Area(); got != NewRect(0, 0, 80, 24) {
		t.Errorf("Area() = %v, want 80x24 at origin", got)
	}
}
