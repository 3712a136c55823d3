package gamemath

import "math"

// Bucket is a coarse attack direction used to pick a hit volume shape.
type Bucket int

const (
	BucketHorizontal Bucket = iota
	BucketUp
	BucketDown
	BucketDiagonal
)

func (b Bucket) String() string {
	switch b {
	case BucketUp:
		return "up"
	case BucketDown:
		return "down"
	case BucketDiagonal:
		return "diagonal"
	default:
		return "horizontal"
	}
}

// Thresholds classifies raw directional input.
type Thresholds struct {
	Deadzone            float64 // magnitude below which input is ignored
	Vertical            float64 // |y| above this is up or down
	HorizontalTolerance float64 // |x| below this is no sideways input
	Diagonal            float64 // |x| above this with vertical input is diagonal
}

// AttackDirection resolves where an attack points. Near-vertical input points
// straight up or down, downward input with sideways drift biases to the
// facing diagonal, anything else is the normalized input. No input falls back
// to facing.
func AttackDirection(in Vec, facing float64, th Thresholds) Vec {
	if in.Len() < th.Deadzone {
		return Vec{Sign(facing), 0}
	}
	if math.Abs(in.X) < th.HorizontalTolerance && math.Abs(in.Y) > th.Vertical {
		return Vec{0, Sign(in.Y)}
	}
	if in.Y > th.Vertical {
		return Vec{Sign(facing), 1}.Normalized()
	}
	return in.Normalized()
}

// BucketFor picks the hit volume table entry for raw input.
func BucketFor(in Vec, th Thresholds) Bucket {
	ax, ay := math.Abs(in.X), math.Abs(in.Y)
	switch {
	case in.Y < -th.Vertical && ax < th.HorizontalTolerance:
		return BucketUp
	case in.Y > th.Vertical && ax < th.HorizontalTolerance:
		return BucketDown
	case ay > th.Vertical && ax > th.Diagonal:
		return BucketDiagonal
	default:
		return BucketHorizontal
	}
}

// DashDirection uses held input when its squared magnitude exceeds
// deadzoneSq, otherwise the facing direction.
func DashDirection(in Vec, facing, deadzoneSq float64) Vec {
	if in.LenSq() > deadzoneSq {
		return in.Normalized()
	}
	return Vec{Sign(facing), 0}
}

// NearVertical reports whether a unit direction is mostly vertical.
func NearVertical(dir Vec, cutoff float64) bool {
	return math.Abs(dir.Y) > cutoff
}

// RotationToward returns the sprite rotation in radians that points an actor
// facing the given way along dir, clamped to maxDeg either side of level.
func RotationToward(dir Vec, facing, maxDeg float64) float64 {
	d := dir.MirrorX(facing)
	if d.X < 0 {
		// pointing behind: rotate relative to the back direction
		d = Vec{-d.X, d.Y}
	}
	return ClampAngle(math.Atan2(d.Y, d.X), maxDeg*math.Pi/180)
}

// ClampAngle wraps a into (-pi, pi] and clamps it to [-max, max].
func ClampAngle(a, max float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return Clamp(a, -max, max)
}
