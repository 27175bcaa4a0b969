package vt

// Handler is the consumer a Parser drives. Each method corresponds to one
// of the DFSM's externally observable actions (spec §6); clear, collect,
// and param mutate only the parser's internal accumulators and are
// deliberately not part of this interface.
type Handler interface {
	// Print delivers a printable glyph byte (the ground-state 0x20-0x7f
	// range). Assembling multi-byte UTF-8 from consecutive Print calls is
	// the handler's responsibility, not the parser's.
	Print(b byte)

	// Execute delivers a C0/C1 control byte.
	Execute(b byte)

	// EscDispatch is the final byte of an ESC + intermediates sequence,
	// along with any collected intermediate bytes.
	EscDispatch(intermediates []byte, final byte)

	// CsiDispatch is the final byte of a CSI sequence, with its
	// accumulated parameters, intermediates, and private-marker bytes.
	CsiDispatch(params []int, intermediates []byte, private []byte, final byte)

	// Hook opens a DCS passthrough region with the sequence's parameters,
	// intermediates, private markers, and final byte.
	Hook(params []int, intermediates []byte, private []byte, final byte)
	// Put delivers one DCS payload byte.
	Put(b byte)
	// Unhook closes the DCS passthrough region.
	Unhook()

	// OscStart opens an OSC string.
	OscStart()
	// OscPut delivers one OSC payload byte.
	OscPut(b byte)
	// OscEnd closes the OSC string.
	OscEnd()

	// Ignore is called for bytes the DFSM consumes without producing any
	// other event (e.g. malformed sequences funneled into an ignore
	// state). Implementations may leave this a no-op.
	Ignore(b byte)
}

// BaseHandler implements Handler with no-op methods, so callers that only
// care about a few events can embed it and override the rest.
type BaseHandler struct{}

func (BaseHandler) Print(b byte)                             {}
func (BaseHandler) Execute(b byte)                            {}
func (BaseHandler) EscDispatch(intermediates []byte, final byte) {}
func (BaseHandler) CsiDispatch(params []int, intermediates []byte, private []byte, final byte) {}
func (BaseHandler) Hook(params []int, intermediates []byte, private []byte, final byte)        {}
func (BaseHandler) Put(b byte)    {}
func (BaseHandler) Unhook()       {}
func (BaseHandler) OscStart()     {}
func (BaseHandler) OscPut(b byte) {}
func (BaseHandler) OscEnd()       {}
func (BaseHandler) Ignore(b byte) {}
