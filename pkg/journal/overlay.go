package journal

// Overlay is an image placed on a journal page: position and size in page
// coordinates plus a rotation in degrees. Only the payload is modeled here;
// the gestures that produced it belong to whatever front end saved the entry.
type Overlay struct {
	Source   string  `json:"source"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation,omitempty"`
}

// ClampTo constrains the overlay to a parent box of the given size, the one
// invariant the payload carries: an overlay never escapes its page.
func (o *Overlay) ClampTo(parentWidth, parentHeight float64) {
	if o.Width > parentWidth {
		o.Width = parentWidth
	}
	if o.Height > parentHeight {
		o.Height = parentHeight
	}
	if o.X < 0 {
		o.X = 0
	}
	if o.Y < 0 {
		o.Y = 0
	}
	if o.X+o.Width > parentWidth {
		o.X = parentWidth - o.Width
	}
	if o.Y+o.Height > parentHeight {
		o.Y = parentHeight - o.Height
	}
}
