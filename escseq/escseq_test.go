package escseq

import (
	"testing"

	"github.com/corvanis/vtcore"
	"github.com/corvanis/vtcore/vt"
)

// csiRecorder captures only the final CSI dispatch, so tests can assert a
// generated sequence decodes to the expected final byte and parameters
// when fed back through the real DFSM parser.
type csiRecorder struct {
	vt.BaseHandler
	params []int
	final  byte
	called bool
}

func (r *csiRecorder) CsiDispatch(params []int, intermediates []byte, private []byte, final byte) {
	r.params = params
	r.final = final
	r.called = true
}

func TestCursorPositionDecodesAsCup(t *testing.T) {
	r := &csiRecorder{}
	p := vt.NewParser(r)
	p.Feed([]byte(CursorPosition(5, 10)))

	if !r.called {
		t.Fatal("CursorPosition sequence did not dispatch a CSI event")
	}
	if r.final != 'H' && r.final != 'f' {
		t.Errorf("final byte = %q, want H or f (CUP)", r.final)
	}
}

func TestCursorUpDecodesAsCuu(t *testing.T) {
	r := &csiRecorder{}
	p := vt.NewParser(r)
	p.Feed([]byte(CursorUp(3)))

	if !r.called || r.final != 'A' {
		t.Errorf("CursorUp(3) -> called=%v final=%q, want called=true final='A'", r.called, r.final)
	}
}

func TestSetStyleEmptyForNoAttributesAndDefaultColors(t *testing.T) {
	got := SetStyle(vtcore.DefaultColor(), vtcore.DefaultColor(), 0)
	if got != "" {
		t.Errorf("SetStyle with nothing set = %q, want empty", got)
	}
}

func TestSetStyleDecodesAsSgr(t *testing.T) {
	r := &csiRecorder{}
	p := vt.NewParser(r)
	seq := SetStyle(vtcore.RGBColor(10, 20, 30), vtcore.DefaultColor(), vtcore.StyleBold|vtcore.StyleUnderline)
	p.Feed([]byte(seq))

	if !r.called || r.final != 'm' {
		t.Fatalf("SetStyle sequence -> called=%v final=%q, want called=true final='m'", r.called, r.final)
	}
	want := []int{1, 4, 38, 2, 10, 20, 30}
	if len(r.params) != len(want) {
		t.Fatalf("params = %v, want %v", r.params, want)
	}
	for i := range want {
		if r.params[i] != want[i] {
			t.Errorf("params[%d] = %d, want %d", i, r.params[i], want[i])
		}
	}
}

func TestClearScreenDecodesThroughParser(t *testing.T) {
	r := &csiRecorder{}
	p := vt.NewParser(r)
	p.Feed([]byte(ClearScreen()))

	if !r.called || r.final != 'J' {
		t.Errorf("ClearScreen -> called=%v final=%q, want called=true final='J'", r.called, r.final)
	}
}
