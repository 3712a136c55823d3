// Package render draws a combat world for the sandbox. It draws collision
// bodies and hit volumes only; there are no sprites.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/pillbrawl/components"
	"github.com/automoto/pillbrawl/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"golang.org/x/image/colornames"
)

// Options selects the debug layers.
type Options struct {
	Hitboxes bool
	State    bool
}

var teamColors = map[string]color.RGBA{
	"red":  colornames.Tomato,
	"blue": colornames.Cornflowerblue,
}

var variantColors = map[string]color.RGBA{
	"punch":      colornames.Yellow,
	"heavy":      colornames.Orange,
	"dash_slash": colornames.Lime,
}

// Draw renders solids, fighters and, when enabled, hit volumes and the
// per-fighter state line.
func Draw(w donburi.World, screen *ebiten.Image, opts Options) {
	tags.Solid.Each(w, func(e *donburi.Entry) {
		outline(screen, components.Object.Get(e).Object, colornames.Gray)
	})

	tags.Fighter.Each(w, func(e *donburi.Entry) {
		drawFighter(screen, e, opts)
	})

	if opts.Hitboxes {
		tags.Hitbox.Each(w, func(e *donburi.Entry) {
			drawHitbox(screen, e)
		})
	}
}

func drawFighter(screen *ebiten.Image, e *donburi.Entry, opts Options) {
	obj := components.Object.Get(e).Object
	actor := components.Actor.Get(e)

	c, ok := teamColors[actor.Team]
	if !ok {
		c = colornames.White
	}
	if e.HasComponent(components.Dummy) {
		c = colornames.Plum
	}
	outline(screen, obj, c)

	// facing tick at eye height
	cx := float32(obj.X + obj.W/2)
	eye := float32(obj.Y + obj.H/4)
	vector.StrokeLine(screen, cx, eye, cx+float32(actor.Facing*obj.W/2), eye, 1, c, false)

	if !opts.State {
		return
	}
	line := fmt.Sprintf("%s %s %.0f", actor.Name, components.State.Get(e).Current,
		components.Vitality.Get(e).Current)
	if cd := components.Combat.Get(e); cd.Attacking {
		line += " " + cd.Current
	}
	ebitenutil.DebugPrintAt(screen, line, int(obj.X)-8, int(obj.Y)-16)
}

func drawHitbox(screen *ebiten.Image, e *donburi.Entry) {
	hb := components.Hitbox.Get(e)
	obj := components.Object.Get(e).Object

	c, ok := variantColors[hb.Variant]
	if !ok {
		c = colornames.Red
	}
	fill := c
	fill.A = 100
	if hb.HasHit {
		fill.A = 40
	}
	vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), fill, false)

	if hb.Angle != 0 {
		cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
		r := math.Max(obj.W, obj.H) / 2
		vector.StrokeLine(screen, float32(cx), float32(cy),
			float32(cx+r*math.Cos(hb.Angle)), float32(cy+r*math.Sin(hb.Angle)), 1, c, false)
	}
}

func outline(screen *ebiten.Image, o *resolv.Object, c color.Color) {
	x, y, w, h := float32(o.X), float32(o.Y), float32(o.W), float32(o.H)
	vector.FillRect(screen, x, y, w, 1, c, false)
	vector.FillRect(screen, x, y+h-1, w, 1, c, false)
	vector.FillRect(screen, x, y, 1, h, c, false)
	vector.FillRect(screen, x+w-1, y, 1, h, c, false)
}
