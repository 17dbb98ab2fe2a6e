package ecap

// Screen anchoring for the overlay region along the horizontal axis.
// Not to be confused with text alignment inside the caption texture,
// which is always left; see [Overlay.SetPosition]().
type HorzAlign uint8

const (
	Left       HorzAlign = iota // anchor the left edge of the overlay
	HorzCenter                  // center the overlay horizontally
	Right                       // anchor the right edge of the overlay
)

// Screen anchoring for the overlay region along the vertical axis.
type VertAlign uint8

const (
	Top        VertAlign = iota // anchor the top edge of the overlay
	VertCenter                  // center the overlay vertically
	Bottom                      // anchor the bottom edge of the overlay
)

// Returns a textual representation of the align. Useful for debugging.
func (self HorzAlign) String() string {
	switch self {
	case Left: return "Left"
	case HorzCenter: return "HorzCenter"
	case Right: return "Right"
	default:
		return "InvalidHorzAlign"
	}
}

// Returns a textual representation of the align. Useful for debugging.
func (self VertAlign) String() string {
	switch self {
	case Top: return "Top"
	case VertCenter: return "VertCenter"
	case Bottom: return "Bottom"
	default:
		return "InvalidVertAlign"
	}
}
