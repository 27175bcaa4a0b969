// Package vtgen holds the declarative VT500 state-machine rules that
// cmd/gentable expands into vt's dense transition table. It is the single
// source of truth for the DFSM described in spec §4.4: every anywhere rule
// and every per-state rule is transcribed here exactly as named, and
// cmd/gentable performs the two-pass override (anywhere first, per-state
// second) to produce the generated table.
//
// This package intentionally duplicates the action/state vocabulary as
// plain strings rather than importing vt's unexported constants — the
// generator is a separate build-time program and is not expected to share
// vt's internal types.
package vtgen

// Range is an inclusive byte range [Lo, Hi].
type Range struct {
	Lo, Hi byte
}

// Rule maps a byte range to an action and, optionally, a next state.
type Rule struct {
	Range
	Action string
	Next   string // "" means "stay in the current state"
}

// States lists the fourteen DFSM states in the order cmd/gentable encodes
// them as integer indices. This order must match vt.parserState's iota
// order.
var States = []string{
	"ground",
	"escape",
	"escapeIntermediate",
	"csiEntry",
	"csiParam",
	"csiIntermediate",
	"csiIgnore",
	"dcsEntry",
	"dcsParam",
	"dcsIntermediate",
	"dcsIgnore",
	"dcsPassthrough",
	"oscString",
	"sosPmApcString",
}

// c0Main is the C0 control range minus CAN (0x18), SUB (0x1a), and ESC
// (0x1b), which are handled by Anywhere instead.
var c0Main = []Range{{0x00, 0x17}, {0x19, 0x19}, {0x1c, 0x1f}}

func c0Rules(action, next string) []Rule {
	rules := make([]Rule, len(c0Main))
	for i, r := range c0Main {
		rules[i] = Rule{Range: r, Action: action, Next: next}
	}
	return rules
}

// Anywhere rules apply to every state and are written into the table
// before any per-state rule, so a per-state rule for the same byte wins.
var Anywhere = []Rule{
	{Range{0x18, 0x18}, "execute", "ground"},
	{Range{0x1a, 0x1a}, "execute", "ground"},
	{Range{0x80, 0x8f}, "execute", "ground"},
	{Range{0x91, 0x97}, "execute", "ground"},
	{Range{0x99, 0x99}, "execute", "ground"},
	{Range{0x9a, 0x9a}, "execute", "ground"},
	{Range{0x9c, 0x9c}, "none", "ground"}, // ST
	{Range{0x1b, 0x1b}, "none", "escape"},
	{Range{0x9b, 0x9b}, "none", "csiEntry"},
	{Range{0x9d, 0x9d}, "none", "oscString"},
	{Range{0x90, 0x90}, "none", "dcsEntry"},
	{Range{0x98, 0x98}, "none", "sosPmApcString"},
	{Range{0x9e, 0x9f}, "none", "sosPmApcString"},
}

// PerState returns a state's byte-range rules, which overwrite whatever
// Anywhere already wrote for the same byte. Built in init() rather than as
// literals so the non-contiguous C0 set can be spliced with append.
var PerState = map[string][]Rule{}

func init() {
	add := func(state string, rules ...Rule) {
		PerState[state] = append(PerState[state], rules...)
	}
	addC0 := func(state, action, next string) {
		PerState[state] = append(PerState[state], c0Rules(action, next)...)
	}

	addC0("ground", "execute", "")
	add("ground", Rule{Range{0x20, 0x7f}, "print", ""})

	addC0("escape", "execute", "")
	add("escape",
		Rule{Range{0x7f, 0x7f}, "ignore", ""},
		Rule{Range{0x20, 0x2f}, "collect", "escapeIntermediate"},
		Rule{Range{0x30, 0x4f}, "escDispatch", "ground"},
		Rule{Range{0x51, 0x57}, "escDispatch", "ground"},
		Rule{Range{0x59, 0x59}, "escDispatch", "ground"},
		Rule{Range{0x5a, 0x5a}, "escDispatch", "ground"},
		Rule{Range{0x5c, 0x5c}, "escDispatch", "ground"},
		Rule{Range{0x60, 0x7e}, "escDispatch", "ground"},
		Rule{Range{0x5b, 0x5b}, "none", "csiEntry"},
		Rule{Range{0x5d, 0x5d}, "none", "oscString"},
		Rule{Range{0x50, 0x50}, "none", "dcsEntry"},
		Rule{Range{0x58, 0x58}, "none", "sosPmApcString"},
		Rule{Range{0x5e, 0x5f}, "none", "sosPmApcString"},
	)

	addC0("escapeIntermediate", "execute", "")
	add("escapeIntermediate",
		Rule{Range{0x7f, 0x7f}, "ignore", ""},
		Rule{Range{0x20, 0x2f}, "collect", ""},
		Rule{Range{0x30, 0x7e}, "escDispatch", "ground"},
	)

	addC0("csiEntry", "execute", "")
	add("csiEntry",
		Rule{Range{0x7f, 0x7f}, "ignore", ""},
		Rule{Range{0x20, 0x2f}, "collect", "csiIntermediate"},
		Rule{Range{0x3a, 0x3a}, "none", "csiIgnore"},
		Rule{Range{0x30, 0x39}, "param", "csiParam"},
		Rule{Range{0x3b, 0x3b}, "param", "csiParam"},
		Rule{Range{0x3c, 0x3f}, "collect", "csiParam"},
		Rule{Range{0x40, 0x7e}, "csiDispatch", "ground"},
	)

	addC0("csiParam", "execute", "")
	add("csiParam",
		Rule{Range{0x7f, 0x7f}, "ignore", ""},
		Rule{Range{0x30, 0x39}, "param", ""},
		Rule{Range{0x3b, 0x3b}, "param", ""},
		Rule{Range{0x3a, 0x3a}, "none", "csiIgnore"},
		Rule{Range{0x3c, 0x3f}, "none", "csiIgnore"},
		Rule{Range{0x20, 0x2f}, "collect", "csiIntermediate"},
		Rule{Range{0x40, 0x7e}, "csiDispatch", "ground"},
	)

	addC0("csiIntermediate", "execute", "")
	add("csiIntermediate",
		Rule{Range{0x7f, 0x7f}, "ignore", ""},
		Rule{Range{0x20, 0x2f}, "collect", ""},
		Rule{Range{0x30, 0x3f}, "none", "csiIgnore"},
		Rule{Range{0x40, 0x7e}, "csiDispatch", "ground"},
	)

	addC0("csiIgnore", "execute", "")
	add("csiIgnore",
		Rule{Range{0x20, 0x3f}, "ignore", ""},
		Rule{Range{0x7f, 0x7f}, "ignore", ""},
		Rule{Range{0x40, 0x7e}, "none", "ground"},
	)

	addC0("dcsEntry", "ignore", "")
	add("dcsEntry",
		Rule{Range{0x7f, 0x7f}, "ignore", ""},
		Rule{Range{0x20, 0x2f}, "collect", "dcsIntermediate"},
		Rule{Range{0x3a, 0x3a}, "none", "dcsIgnore"},
		Rule{Range{0x30, 0x39}, "param", "dcsParam"},
		Rule{Range{0x3b, 0x3b}, "param", "dcsParam"},
		Rule{Range{0x3c, 0x3f}, "collect", "dcsParam"},
		Rule{Range{0x40, 0x7e}, "none", "dcsPassthrough"},
	)

	addC0("dcsParam", "ignore", "")
	add("dcsParam",
		Rule{Range{0x7f, 0x7f}, "ignore", ""},
		Rule{Range{0x30, 0x39}, "param", ""},
		Rule{Range{0x3b, 0x3b}, "param", ""},
		Rule{Range{0x3a, 0x3a}, "none", "dcsIgnore"},
		Rule{Range{0x3c, 0x3f}, "none", "dcsIgnore"},
		Rule{Range{0x20, 0x2f}, "collect", "dcsIntermediate"},
		Rule{Range{0x40, 0x7e}, "none", "dcsPassthrough"},
	)

	addC0("dcsIntermediate", "ignore", "")
	add("dcsIntermediate",
		Rule{Range{0x7f, 0x7f}, "ignore", ""},
		Rule{Range{0x20, 0x2f}, "collect", ""},
		Rule{Range{0x30, 0x3f}, "none", "dcsIgnore"},
		Rule{Range{0x40, 0x7e}, "none", "dcsPassthrough"},
	)

	addC0("dcsIgnore", "ignore", "")
	add("dcsIgnore",
		Rule{Range{0x20, 0x7f}, "ignore", ""},
	)

	add("dcsPassthrough",
		Rule{Range{0x00, 0x17}, "put", ""},
		Rule{Range{0x19, 0x19}, "put", ""},
		Rule{Range{0x1c, 0x1f}, "put", ""},
		Rule{Range{0x20, 0x7e}, "put", ""},
		Rule{Range{0x7f, 0x7f}, "ignore", ""},
	)

	addC0("oscString", "ignore", "")
	add("oscString",
		Rule{Range{0x20, 0x7f}, "oscPut", ""},
	)

	addC0("sosPmApcString", "ignore", "")
	add("sosPmApcString",
		Rule{Range{0x20, 0x7f}, "ignore", ""},
	)
}

// EntryAction/ExitAction give the per-state entry/exit side effects; all
// unlisted states default to "none".
var EntryAction = map[string]string{
	"escape":         "clear",
	"csiEntry":       "clear",
	"dcsEntry":       "clear",
	"dcsPassthrough": "hook",
	"oscString":      "oscStart",
}

var ExitAction = map[string]string{
	"dcsPassthrough": "unhook",
	"oscString":      "oscEnd",
}

// Rules returns a state's rule list.
func Rules(state string) []Rule {
	return PerState[state]
}
