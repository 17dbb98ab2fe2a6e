package fract

import "image"

// A pair of [Point] values defining a rectangular region. Like
// [image.Rectangle], the Max point is excluded from the rectangle.
// The behavior for malformed rects is undefined.
type Rect struct {
	Min Point
	Max Point
}

// Creates a rect from a set of four units.
func UnitsToRect(minX, minY, maxX, maxY Unit) Rect {
	return Rect{
		Min: Point{ X: minX, Y: minY },
		Max: Point{ X: maxX, Y: maxY },
	}
}

// Creates a rect from a set of four ints.
func IntsToRect(minX, minY, maxX, maxY int) Rect {
	return Rect{
		Min: Point{ X: FromInt(minX), Y: FromInt(minY) },
		Max: Point{ X: FromInt(maxX), Y: FromInt(maxY) },
	}
}

// Converts the rect to an [image.Rectangle]. The returned rect
// is guaranteed to contain the original one (Min floored, Max
// ceiled).
func (self Rect) ImageRect() image.Rectangle {
	minX, minY, maxX, maxY := self.ToInts()
	return image.Rect(minX, minY, maxX, maxY)
}

// Returns the rect coordinates as four ints. Min coordinates are
// floored and Max coordinates are ceiled, so the returned values
// always contain the original rect.
func (self Rect) ToInts() (minX, minY, maxX, maxY int) {
	return self.Min.X.ToIntFloor(), self.Min.Y.ToIntFloor(), self.Max.X.ToIntCeil(), self.Max.Y.ToIntCeil()
}

// Returns the width of the rect.
func (self Rect) Width() Unit { return self.Max.X - self.Min.X }

// Returns the height of the rect.
func (self Rect) Height() Unit { return self.Max.Y - self.Min.Y }

// Returns the width of the rect as an int, ceiled.
func (self Rect) IntWidth() int { return self.Width().ToIntCeil() }

// Returns the height of the rect as an int, ceiled.
func (self Rect) IntHeight() int { return self.Height().ToIntCeil() }

// Returns the result of displacing the rect by the given point.
func (self Rect) AddPoint(pt Point) Rect {
	self.Min.X += pt.X
	self.Max.X += pt.X
	self.Min.Y += pt.Y
	self.Max.Y += pt.Y
	return self
}

// Returns whether the rect has zero area.
func (self Rect) Empty() bool {
	return self.Min.X >= self.Max.X || self.Min.Y >= self.Max.Y
}
