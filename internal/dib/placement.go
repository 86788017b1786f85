package dib

import "image"

// Placement returns where a w×h bitmap is drawn in a winW×winH window: at
// the top-left corner, enlarged by scale. A scale <= 0 picks the largest
// integer scale that fits, but never less than 1.
func Placement(w, h, scale, winW, winH int) image.Rectangle {
	if scale <= 0 {
		scale = 1
		if w > 0 && h > 0 {
			scale = max(1, min(winW/w, winH/h))
		}
	}
	return image.Rect(0, 0, w*scale, h*scale)
}
