package vt

// Parser drives a Handler from a byte stream via the table in
// table_gen.go. Each byte produces exactly one transition lookup; a
// transition that crosses states fires, in order, the old state's exit
// action, the transition's own action, and the new state's entry action
// (spec §4.4 "exit, action, entry" ordering) — a transition that stays in
// the same state (hasNext == false) fires only its own action.
type Parser struct {
	state parserState
	acc   paramStack
	h     Handler
}

// NewParser returns a Parser in the ground state, driving h.
func NewParser(h Handler) *Parser {
	return &Parser{state: stateGround, h: h}
}

// State reports the parser's current DFSM state, for diagnostics and tests.
func (p *Parser) State() string {
	return p.state.String()
}

// Feed advances the parser over every byte of data in order.
func (p *Parser) Feed(data []byte) {
	for _, b := range data {
		p.Advance(b)
	}
}

// Advance processes a single byte, performing at most one state
// transition and dispatching at most three actions (exit/action/entry).
// A transition with no explicit next state, and one whose next state is
// the state already current, both fire only the transition's own action:
// exit/entry are side effects of actually changing state, not of every
// table lookup that happens to name one.
func (p *Parser) Advance(b byte) {
	t := transitionTable[p.state][b]

	// A parameter byte past the accumulator bounds (a 17th parameter or a
	// 7th digit) abandons the sequence: csiParam/dcsParam move straight to
	// their ignore state, neither of which has exit/entry actions.
	if t.action == actionParam && (p.state == stateCsiParam || p.state == stateDcsParam) {
		if (b == ';' && p.acc.numParams >= maxParams) || (b != ';' && p.acc.digits >= maxParamDigits) {
			if p.state == stateCsiParam {
				p.state = stateCsiIgnore
			} else {
				p.state = stateDcsIgnore
			}
			return
		}
	}

	if !t.hasNext || t.next == p.state {
		p.dispatch(t.action, b)
		return
	}

	p.dispatch(exitAction[p.state], b)
	p.dispatch(t.action, b)
	p.state = t.next
	p.dispatch(entryAction[p.state], b)
}

func (p *Parser) dispatch(action parserAction, b byte) {
	switch action {
	case actionNone:
		// no-op
	case actionIgnore:
		p.h.Ignore(b)
	case actionPrint:
		p.h.Print(b)
	case actionExecute:
		p.h.Execute(b)
	case actionClear:
		p.acc.clear()
	case actionCollect:
		p.acc.collect(b)
	case actionParam:
		p.acc.param(b)
	case actionEscDispatch:
		p.h.EscDispatch(p.acc.intermediateSlice(), b)
	case actionCsiDispatch:
		p.h.CsiDispatch(p.acc.paramSlice(), p.acc.intermediateSlice(), p.acc.privateSlice(), b)
	case actionHook:
		p.h.Hook(p.acc.paramSlice(), p.acc.intermediateSlice(), p.acc.privateSlice(), b)
	case actionPut:
		p.h.Put(b)
	case actionUnhook:
		p.h.Unhook()
	case actionOscStart:
		p.h.OscStart()
	case actionOscPut:
		p.h.OscPut(b)
	case actionOscEnd:
		p.h.OscEnd()
	}
}
