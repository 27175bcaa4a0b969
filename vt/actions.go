package vt

// parserAction names one of the 15 dispatchable action kinds the state
// table can fire. clear/collect/param mutate parser-internal accumulators
// only and are never surfaced to a Handler.
type parserAction int

const (
	actionNone parserAction = iota
	actionIgnore
	actionPrint
	actionExecute
	actionClear
	actionCollect
	actionParam
	actionEscDispatch
	actionCsiDispatch
	actionHook
	actionPut
	actionUnhook
	actionOscStart
	actionOscPut
	actionOscEnd
)

// parserState enumerates the fourteen DFSM states. The iota order here
// MUST match internal/vtgen's state list, since cmd/gentable encodes
// table_gen.go's `next` fields as these same integer indices.
type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateEscapeIntermediate
	stateCsiEntry
	stateCsiParam
	stateCsiIntermediate
	stateCsiIgnore
	stateDcsEntry
	stateDcsParam
	stateDcsIntermediate
	stateDcsIgnore
	stateDcsPassthrough
	stateOscString
	stateSosPmApcString
)

// String renders a state for diagnostics/tests.
func (s parserState) String() string {
	if int(s) < 0 || int(s) >= numStates {
		return "invalid"
	}
	return stateNames[s]
}

// stateTransition is a single cell of the dense state table: the action to
// fire and the state to move to. hasNext distinguishes "stay" (false) from
// "move to state 0" (true, next == stateGround) since parserState's zero
// value is itself a valid state.
type stateTransition struct {
	action  parserAction
	next    parserState
	hasNext bool
}
