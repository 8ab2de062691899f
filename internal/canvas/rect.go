package canvas

import "math/rand"

// Rect is a half-open axis-aligned rectangle: it spans [XStart, XEnd) and
// [YStart, YEnd). Zero area is legal. Y coordinates are absolute line
// numbers in whatever input stream produced the rect.
type Rect struct {
	XStart, XEnd, YStart, YEnd int
}

// Width returns x_end - x_start.
func (r Rect) Width() int { return r.XEnd - r.XStart }

// Height returns y_end - y_start.
func (r Rect) Height() int { return r.YEnd - r.YStart }

// XAxis returns the (x_start, x_end) projection, used as an identity key
// by the blank-finder's per-line dictionaries.
func (r Rect) XAxis() [2]int { return [2]int{r.XStart, r.XEnd} }

// YAxis returns the (y_start, y_end) projection.
func (r Rect) YAxis() [2]int { return [2]int{r.YStart, r.YEnd} }

// ShiftY returns r translated vertically by dy.
func (r Rect) ShiftY(dy int) Rect {
	r.YStart += dy
	r.YEnd += dy
	return r
}

// ResizeY returns r with its height changed to newHeight. If keepYEnd is
// false (the common case), y_start is kept and only y_end moves; if true,
// y_end is kept and only y_start moves.
func (r Rect) ResizeY(newHeight int, keepYEnd bool) Rect {
	if keepYEnd {
		r.YStart = r.YEnd - newHeight
	} else {
		r.YEnd = r.YStart + newHeight
	}
	return r
}

// Intersect returns the intersection of r and other. The second return
// value is false if the rectangles don't overlap.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	xs := MaxOf(r.XStart, other.XStart)
	xe := MinOf(r.XEnd, other.XEnd)
	ys := MaxOf(r.YStart, other.YStart)
	ye := MinOf(r.YEnd, other.YEnd)
	if xs < xe && ys < ye {
		return Rect{xs, xe, ys, ye}, true
	}
	return Rect{}, false
}

// RandomSubrectangle picks a uniformly random subrectangle of size
// (newWidth, newHeight) that lies entirely within rect.
func RandomSubrectangle(rect Rect, newWidth, newHeight int, rnd *rand.Rand) Rect {
	xStart := rect.XStart + rnd.Intn(rect.XEnd-newWidth-rect.XStart+1)
	yStart := rect.YStart + rnd.Intn(rect.YEnd-newHeight-rect.YStart+1)
	return Rect{xStart, xStart + newWidth, yStart, yStart + newHeight}
}
