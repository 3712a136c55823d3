// Package gamemath holds the pure geometry shared by combat systems and
// tools. Y grows downward, as on screen.
package gamemath

import "math"

// Vec is a 2D vector.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec) LenSq() float64      { return v.X*v.X + v.Y*v.Y }
func (v Vec) IsZero() bool        { return v.X == 0 && v.Y == 0 }

// Normalized returns the unit vector, or the zero vector for zero input.
func (v Vec) Normalized() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// MirrorX flips the X component to match a facing sign.
func (v Vec) MirrorX(facing float64) Vec {
	if facing < 0 {
		return Vec{-v.X, v.Y}
	}
	return v
}

// Rect is an axis-aligned box by its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// CenteredRect builds a rect of size around centre.
func CenteredRect(centre, size Vec) Rect {
	return Rect{centre.X - size.X/2, centre.Y - size.Y/2, size.X, size.Y}
}

func (r Rect) Center() Vec { return Vec{r.X + r.W/2, r.Y + r.H/2} }

// Overlaps reports whether two rects share any area. Touching edges do not
// count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}
