// Package geometry computes segment lengths for a diagonal element centered
// on a circle.
//
// Two mutually exclusive policies are supported:
//
//   - Interior containment: the segment, including its stroke thickness,
//     stays at least a given gap inside the circular boundary. This produces
//     the empty-set look where the slash never touches the circle.
//   - Cut-through: the segment endpoints extend a given amount past the
//     boundary, producing the prohibition-sign look where the slash crosses
//     the ring.
//
// All functions are pure and total: degenerate inputs floor the result at
// zero instead of going negative or returning an error.
package geometry

// SafeLength returns the maximum full length of a segment of the given
// stroke thickness, centered on a circle of radius r, such that every point
// of the stroked segment stays at least gap inside the boundary.
//
// The usable half-length is r - gap - thickness/2 (the stroke extends
// thickness/2 past the segment's endpoint in every direction with round
// caps), so the full length is twice that. A gap or thickness large enough
// to exceed the radius yields zero.
func SafeLength(r, thickness, gap float64) float64 {
	half := r - gap - thickness/2
	if half <= 0 {
		return 0
	}
	return 2 * half
}

// OvershootLength returns the full length of a segment centered on a circle
// of radius r whose endpoints extend overshoot units past the boundary in
// both directions along the segment's axis.
func OvershootLength(r, overshoot float64) float64 {
	full := 2 * (r + overshoot)
	if full <= 0 {
		return 0
	}
	return full
}
