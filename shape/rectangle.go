// Package shape holds plain geometric records used by the codec examples.
package shape

// Rectangle is a plain data record. Fields are freely mutable, Area always
// reflects their current values.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle makes a rectangle with the given dimensions.
func NewRectangle(width, height float64) *Rectangle {
	return &Rectangle{Width: width, Height: height}
}

// Area computes width * height at call time, nothing is cached.
func (r *Rectangle) Area() float64 {
	return r.Width * r.Height
}
