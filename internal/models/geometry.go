package models

import "math"

// Vec2 is a position or direction on the map, in pixels.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Rect is an axis-aligned bounding box. X,Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAt builds a Rect from a position and a size.
func RectAt(pos Vec2, w, h float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: w, H: h}
}

// Intersects reports whether r and o overlap. Boxes that only touch do not.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Bounds is the playable map area, anchored at the origin.
type Bounds struct {
	Width, Height float64
}

// Clamp keeps a box of size w x h at pos fully inside the bounds.
func (b Bounds) Clamp(pos Vec2, w, h float64) Vec2 {
	return Vec2{
		X: clamp(pos.X, 0, math.Max(0, b.Width-w)),
		Y: clamp(pos.Y, 0, math.Max(0, b.Height-h)),
	}
}

// Fits reports whether a box of size w x h at pos lies inside the bounds.
func (b Bounds) Fits(pos Vec2, w, h float64) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X+w <= b.Width && pos.Y+h <= b.Height
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Rand is the random source used by the models and the engine.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}
