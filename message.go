package ecap

// Caption message actions. See [Message].
type Action uint8

const (
	// Show the overlay and update the caption state.
	ActionAdd Action = iota

	// Hide the overlay. The caption state is retained, so a later
	// [ActionAdd] brings the previous content back (possibly updated
	// by the new message's own fields).
	ActionDelete
)

// Returns a textual representation of the action. Useful for debugging.
func (self Action) String() string {
	switch self {
	case ActionAdd: return "ActionAdd"
	case ActionDelete: return "ActionDelete"
	default:
		return "InvalidAction"
	}
}

// A caption update as delivered by the host application, typically
// decoded from some transport of its choice. Messages are handed to
// [Display.ProcessMessage]() or queued on a [MessageQueue].
//
// All color channels are floats in [0, 1]. Sizes and distances are
// plain pixel counts.
type Message struct {
	Action       Action
	Text         string // may contain '\n' and inline color annotations
	Width        uint   // requested texture width
	Height       uint   // requested texture height
	TextSize     uint   // font size in pixels; 0 keeps the renderer's current font setup
	HorzDistance uint   // horizontal offset for on-screen placement
	VertDistance uint   // vertical offset for on-screen placement
	HorzAlign    HorzAlign
	VertAlign    VertAlign
	FgColor      ColorF
	BgColor      ColorF
	Font         string // font family name; empty selects the library's default face
	LineWidth    uint   // pen stroke width; floored to 1 when drawing
}
