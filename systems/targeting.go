package systems

import (
	"math"

	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/attackdata"
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/automoto/pillbrawl/shared/sequence"
	"github.com/yohamta/donburi"
)

func thresholds() gamemath.Thresholds {
	return gamemath.Thresholds{
		Deadzone:            cfg.Combat.DirectionDeadzone,
		Vertical:            cfg.Combat.VerticalThreshold,
		HorizontalTolerance: cfg.Combat.HorizontalTolerance,
		Diagonal:            cfg.Combat.DiagonalThreshold,
	}
}

// ResolveAttackDirection is where an attack aimed with raw input in points.
func ResolveAttackDirection(in gamemath.Vec, facing float64) gamemath.Vec {
	return gamemath.AttackDirection(in, facing, thresholds())
}

// HitboxBucket picks the hit volume table entry for raw input.
func HitboxBucket(in gamemath.Vec) gamemath.Bucket {
	return gamemath.BucketFor(in, thresholds())
}

// ResolveDashDirection is the unit direction of a dash.
func ResolveDashDirection(in gamemath.Vec, facing float64) gamemath.Vec {
	return gamemath.DashDirection(in, facing, cfg.Combat.DashInputDeadzone)
}

// Placement is a hit volume placed relative to its owner.
type Placement struct {
	Size   gamemath.Vec
	Offset gamemath.Vec
	Angle  float64 // radians, non-zero for diagonal boxes
}

// PlaceHitbox looks up the box for bucket and mirrors it to facing. Diagonal
// boxes point up or down with the input. Empty entries fall back to the
// horizontal box.
func PlaceHitbox(table attackdata.HitboxTable, bucket gamemath.Bucket, facing float64, in gamemath.Vec) Placement {
	var box attackdata.Box
	switch bucket {
	case gamemath.BucketUp:
		box = table.Up
	case gamemath.BucketDown:
		box = table.Down
	case gamemath.BucketDiagonal:
		box = table.Diagonal
	default:
		box = table.Horizontal
	}
	if box.Size.IsZero() {
		box = table.Horizontal
		bucket = gamemath.BucketHorizontal
	}

	p := Placement{Size: box.Size, Offset: box.Offset.MirrorX(facing)}
	if bucket == gamemath.BucketDiagonal {
		p.Offset.Y = math.Abs(p.Offset.Y) * gamemath.Sign(in.Y)
		p.Angle = math.Atan2(p.Offset.Y, p.Offset.X)
	}
	return p
}

// KnockbackAlong scales the direction of offset to force. A centred box
// pushes the way the owner faces.
func KnockbackAlong(offset gamemath.Vec, facing, force float64) gamemath.Vec {
	dir := offset.Normalized()
	if dir.IsZero() {
		dir = gamemath.Vec{X: gamemath.Sign(facing)}
	}
	return dir.Scale(force)
}

// rotationLock tilts the actor toward an attack for a while. Only the newest
// lock restores the rotation.
type rotationLock struct {
	entry *donburi.Entry
	gen   uint64
	d     float64
	timer sequence.Timer
}

// LockRotation tilts e toward dir for lock.Duration seconds.
func LockRotation(e *donburi.Entry, dir gamemath.Vec, lock attackdata.RotationLockSpec) {
	if !lock.Enabled || !e.HasComponent(components.Combat) {
		return
	}
	cd := components.Combat.Get(e)
	actor := components.Actor.Get(e)
	actor.Rotation = gamemath.RotationToward(dir, actor.Facing, lock.MaxAngle)
	cd.RotationGen++
	cd.Runner.Spawn(&rotationLock{entry: e, gen: cd.RotationGen, d: lock.Duration})
}

func (r *rotationLock) Step(c *sequence.Clock) sequence.Status {
	if !r.timer.Armed() {
		r.timer.Start(c, r.d)
	}
	if r.timer.Expired(c) {
		return sequence.Done
	}
	return sequence.Running
}

func (r *rotationLock) Finalize() {
	if !r.entry.Valid() || components.Combat.Get(r.entry).RotationGen != r.gen {
		return
	}
	components.Actor.Get(r.entry).Rotation = 0
}

// restoreRotation levels e and invalidates running locks.
func restoreRotation(e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Combat) {
		return
	}
	components.Combat.Get(e).RotationGen++
	components.Actor.Get(e).Rotation = 0
}
