package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var th = Thresholds{Deadzone: 0.1, Vertical: 0.5, HorizontalTolerance: 0.1, Diagonal: 0.5}

func TestAttackDirection(t *testing.T) {
	cases := []struct {
		name   string
		in     Vec
		facing float64
		want   Vec
	}{
		{"no input uses facing", Vec{}, -1, Vec{-1, 0}},
		{"straight up", Vec{0, -1}, 1, Vec{0, -1}},
		{"straight down", Vec{0.05, 1}, -1, Vec{0, 1}},
		{"down and sideways biases to facing diagonal", Vec{-1, 1}, 1, Vec{math.Sqrt2 / 2, math.Sqrt2 / 2}},
		{"sideways is normalized", Vec{3, 0}, -1, Vec{1, 0}},
		{"up diagonal is normalized", Vec{1, -1}, 1, Vec{math.Sqrt2 / 2, -math.Sqrt2 / 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AttackDirection(tc.in, tc.facing, th)
			assert.InDelta(t, tc.want.X, got.X, 1e-9)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
		})
	}
}

func TestBucketFor(t *testing.T) {
	assert.Equal(t, BucketUp, BucketFor(Vec{0, -1}, th))
	assert.Equal(t, BucketDown, BucketFor(Vec{0, 1}, th))
	assert.Equal(t, BucketDiagonal, BucketFor(Vec{1, -1}, th))
	assert.Equal(t, BucketDiagonal, BucketFor(Vec{-1, 1}, th))
	assert.Equal(t, BucketHorizontal, BucketFor(Vec{1, 0}, th))
	assert.Equal(t, BucketHorizontal, BucketFor(Vec{}, th))
	// between the tolerance and the diagonal threshold nothing special applies
	assert.Equal(t, BucketHorizontal, BucketFor(Vec{0.3, -1}, th))
}

func TestDashDirection(t *testing.T) {
	assert.Equal(t, Vec{-1, 0}, DashDirection(Vec{0.1, 0.1}, -1, 0.1))
	got := DashDirection(Vec{0, -2}, 1, 0.1)
	assert.Equal(t, Vec{0, -1}, got)
	assert.True(t, NearVertical(got, 0.7))
	assert.False(t, NearVertical(Vec{1, 0}, 0.7))
}

func TestRotationTowardClamps(t *testing.T) {
	assert.InDelta(t, 0, RotationToward(Vec{1, 0}, 1, 30), 1e-9)
	assert.InDelta(t, 0, RotationToward(Vec{-1, 0}, -1, 30), 1e-9)
	assert.InDelta(t, -math.Pi/6, RotationToward(Vec{0, -1}, 1, 30), 1e-9)
	assert.InDelta(t, math.Pi/8, RotationToward(Vec{math.Cos(math.Pi / 8), math.Sin(math.Pi / 8)}, 1, 45), 1e-9)
}

func TestClampAngleWraps(t *testing.T) {
	assert.InDelta(t, 0.5, ClampAngle(0.5+2*math.Pi, 1), 1e-9)
	assert.InDelta(t, -1, ClampAngle(-3, 1), 1e-9)
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	assert.True(t, a.Overlaps(Rect{5, 5, 10, 10}))
	assert.False(t, a.Overlaps(Rect{10, 0, 5, 5}))
	assert.Equal(t, Vec{5, 5}, a.Center())
	assert.Equal(t, Rect{-2, -3, 4, 6}, CenteredRect(Vec{}, Vec{4, 6}))
}

func TestLerpAndDrag(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 10.0, Lerp(0, 10, 2))
	assert.InDelta(t, 50, ApplyDrag(100, 5, 0.1), 1e-9)
	assert.Equal(t, 0.0, ApplyDrag(100, 20, 0.1))
	assert.Equal(t, 100.0, ApplyDrag(100, 0, 0.1))
}
