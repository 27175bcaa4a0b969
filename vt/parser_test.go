package vt

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/corvanis/vtcore/internal/vtgen"
)

// recorder captures every Handler call as a string, in order, so tests can
// assert on the exact event sequence a byte run produces.
type recorder struct {
	BaseHandler
	events []string
}

func (r *recorder) Print(b byte)   { r.events = append(r.events, fmt.Sprintf("print(0x%02x)", b)) }
func (r *recorder) Execute(b byte) { r.events = append(r.events, fmt.Sprintf("execute(0x%02x)", b)) }
func (r *recorder) EscDispatch(intermediates []byte, final byte) {
	r.events = append(r.events, fmt.Sprintf("esc_dispatch(intermediates=%v, final=0x%02x)", intermediates, final))
}
func (r *recorder) CsiDispatch(params []int, intermediates []byte, private []byte, final byte) {
	r.events = append(r.events, fmt.Sprintf("csi_dispatch(params=%v, intermediates=%v, private=%v, final=0x%02x)", params, intermediates, private, final))
}
func (r *recorder) Hook(params []int, intermediates []byte, private []byte, final byte) {
	r.events = append(r.events, fmt.Sprintf("hook(params=%v, intermediates=%v, private=%v, final=0x%02x)", params, intermediates, private, final))
}
func (r *recorder) Put(b byte)    { r.events = append(r.events, fmt.Sprintf("put(0x%02x)", b)) }
func (r *recorder) Unhook()       { r.events = append(r.events, "unhook") }
func (r *recorder) OscStart()     { r.events = append(r.events, "osc_start") }
func (r *recorder) OscPut(b byte) { r.events = append(r.events, fmt.Sprintf("osc_put(0x%02x)", b)) }
func (r *recorder) OscEnd()       { r.events = append(r.events, "osc_end") }

// clear/collect/param are not recorded: Handler does not expose them (see
// handler.go). These tests check only the events that cross the Handler
// boundary, which is the externally observable contract this package
// promises.

func TestCsiSGRDispatch(t *testing.T) {
	r := &recorder{}
	p := NewParser(r)
	p.Feed([]byte{0x1b, 0x5b, 0x31, 0x3b, 0x34, 0x6d}) // ESC [ 1 ; 4 m

	want := []string{
		"csi_dispatch(params=[1 4], intermediates=[], private=[], final=0x6d)",
	}
	if !reflect.DeepEqual(r.events, want) {
		t.Errorf("events = %v, want %v", r.events, want)
	}
	if p.State() != "ground" {
		t.Errorf("final state = %s, want ground", p.State())
	}
}

func TestOscStringDispatch(t *testing.T) {
	r := &recorder{}
	p := NewParser(r)
	p.Feed([]byte{0x1b, 0x5d, 0x30, 0x3b, 0x68, 0x69, 0x9c}) // ESC ] 0 ; h i ST

	want := []string{
		"osc_start",
		"osc_put(0x30)",
		"osc_put(0x3b)",
		"osc_put(0x68)",
		"osc_put(0x69)",
		"osc_end",
	}
	if !reflect.DeepEqual(r.events, want) {
		t.Errorf("events = %v, want %v", r.events, want)
	}
	if p.State() != "ground" {
		t.Errorf("final state = %s, want ground", p.State())
	}
}

func TestDcsPassthroughDispatch(t *testing.T) {
	r := &recorder{}
	p := NewParser(r)
	p.Feed([]byte{0x1b, 0x50, 0x71, 0x58, 0x59, 0x9c}) // ESC P q X Y ST

	want := []string{
		"hook(params=[], intermediates=[], private=[], final=0x71)",
		"put(0x58)",
		"put(0x59)",
		"unhook",
	}
	if !reflect.DeepEqual(r.events, want) {
		t.Errorf("events = %v, want %v", r.events, want)
	}
	if p.State() != "ground" {
		t.Errorf("final state = %s, want ground", p.State())
	}
}

func TestPrintableRun(t *testing.T) {
	r := &recorder{}
	p := NewParser(r)
	p.Feed([]byte{'A', 'B', 'C'})

	want := []string{"print(0x41)", "print(0x42)", "print(0x43)"}
	if !reflect.DeepEqual(r.events, want) {
		t.Errorf("events = %v, want %v", r.events, want)
	}
	if p.State() != "ground" {
		t.Errorf("final state = %s, want ground", p.State())
	}
}

func TestEscDispatchNoIntermediates(t *testing.T) {
	r := &recorder{}
	p := NewParser(r)
	p.Feed([]byte{0x1b, 'c'}) // ESC c, RIS

	want := []string{"esc_dispatch(intermediates=[], final=0x63)"}
	if !reflect.DeepEqual(r.events, want) {
		t.Errorf("events = %v, want %v", r.events, want)
	}
}

func TestAnywhereEscFromEveryState(t *testing.T) {
	for _, s := range vtgen.States {
		r := &recorder{}
		p := NewParser(r)
		p.state = stateByName(t, s)
		p.Advance(0x1b)
		if p.State() != "escape" {
			t.Errorf("from %s: ESC landed in %s, want escape", s, p.State())
		}
	}
}

func TestAnywhereCanExecutesAndReturnsToGround(t *testing.T) {
	// CAN is an anywhere rule that always targets ground. From states whose
	// own exit action is non-trivial (oscString -> osc_end, dcsPassthrough
	// -> unhook), that exit event fires before execute, since leaving the
	// state is a real state change; every other state has no exit action
	// and produces only the execute event.
	leadingExitEvent := map[string]string{
		"oscString":      "osc_end",
		"dcsPassthrough": "unhook",
	}

	for _, s := range vtgen.States {
		r := &recorder{}
		p := NewParser(r)
		p.state = stateByName(t, s)
		p.Advance(0x18) // CAN
		if p.State() != "ground" {
			t.Errorf("from %s: CAN landed in %s, want ground", s, p.State())
		}

		want := []string{"execute(0x18)"}
		if exit, ok := leadingExitEvent[s]; ok {
			want = []string{exit, "execute(0x18)"}
		}
		if !reflect.DeepEqual(r.events, want) {
			t.Errorf("from %s: events = %v, want %v", s, r.events, want)
		}
	}
}

func TestAnywhereSelfTransitionSkipsExitEntry(t *testing.T) {
	// 0x9d (OSC) targets oscString via an anywhere rule. Received while
	// already in oscString, that is a self-transition: it must not re-fire
	// oscString's exit/entry actions (osc_end then osc_start), since no
	// state change occurs.
	r := &recorder{}
	p := NewParser(r)
	p.Feed([]byte{0x1b, 0x5d}) // ESC ] -> oscString, firing one osc_start
	p.Advance(0x9d)            // OSC byte while already in oscString

	if p.State() != "oscString" {
		t.Fatalf("state = %s, want oscString", p.State())
	}
	want := []string{"osc_start"}
	if !reflect.DeepEqual(r.events, want) {
		t.Errorf("events = %v, want %v (no spurious osc_end/osc_start pair)", r.events, want)
	}
}

func TestDeterminism(t *testing.T) {
	input := []byte{0x1b, 0x5b, 0x31, 0x3b, 0x34, 0x6d, 'A', 'B', 0x1b, 0x5d, 0x30, 0x3b, 'x', 0x9c}

	run := func() []string {
		r := &recorder{}
		p := NewParser(r)
		p.Feed(input)
		return r.events
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("non-deterministic output:\n%v\n%v", first, second)
	}
}

// stateByName resolves a vtgen state name to its parserState index, failing
// the test if the two state lists have drifted out of sync.
func stateByName(t *testing.T, name string) parserState {
	t.Helper()
	for i, n := range vtgen.States {
		if n == name {
			return parserState(i)
		}
	}
	t.Fatalf("unknown state %q", name)
	return stateGround
}
