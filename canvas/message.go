package canvas

// msgKind tags the variants of a render-loop message.
type msgKind uint8

const (
	// msgUpdate replaces a region's accumulated content.
	msgUpdate msgKind = iota

	// msgAppend concatenates to a region's accumulated content.
	msgAppend

	// msgClear resets a region's accumulated content.
	msgClear

	// msgRender repaints a region without changing its content.
	msgRender

	// msgDelete removes a region and paints its area blank once.
	msgDelete

	// msgStop is the sentinel that exits the render loop.
	msgStop
)

// String returns the message kind name.
func (k msgKind) String() string {
	switch k {
	case msgUpdate:
		return "update"
	case msgAppend:
		return "append"
	case msgClear:
		return "clear"
	case msgRender:
		return "render"
	case msgDelete:
		return "delete"
	case msgStop:
		return "stop"
	default:
		return "unknown"
	}
}

// message is one unit of work for the render loop. All external
// mutation requests travel through messages; nothing outside the
// render goroutine touches region content.
type message struct {
	kind msgKind
	id   string
	text string
}
