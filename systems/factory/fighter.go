package factory

import (
	"errors"
	"fmt"
	"sort"

	"github.com/automoto/pillbrawl/archetypes"
	"github.com/automoto/pillbrawl/components"
	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/attackdata"
	"github.com/automoto/pillbrawl/shared/gamemath"
	"github.com/automoto/pillbrawl/shared/sequence"
	"github.com/automoto/pillbrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ErrUnknownAttack is returned when a loadout names an attack the catalogue
// does not have.
var ErrUnknownAttack = errors.New("unknown attack")

// FighterParams describes one fighter to spawn. X and Y are the top-left of
// its collision body.
type FighterParams struct {
	Name     string
	Index    int
	Team     string
	X, Y     float64
	Facing   float64
	Loadout  map[string]*attackdata.Spec
	Bindings map[cfg.ActionID]string
	Animator components.Animator
	Input    components.InputSource
	Dummy    bool
}

func CreateFighter(w donburi.World, p FighterParams) *donburi.Entry {
	var fighter *donburi.Entry
	if p.Dummy {
		fighter = archetypes.Fighter.Spawn(w, components.Dummy)
	} else {
		fighter = archetypes.Fighter.Spawn(w)
	}

	width, height := cfg.Actor.Width, cfg.Actor.Height
	obj := resolv.NewObject(p.X, p.Y, width, height, tags.ResolvFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})

	facing := 1.0
	if p.Facing < 0 {
		facing = -1
	}
	components.Actor.SetValue(fighter, components.ActorData{
		Name:   p.Name,
		Index:  p.Index,
		Team:   p.Team,
		Facing: facing,
		Spawn:  gamemath.Vec{X: p.X + width/2, Y: p.Y + height/2},
	})
	components.Physics.SetValue(fighter, components.PhysicsData{
		Drag:         cfg.Physics.DefaultDrag,
		GravityScale: 1,
	})
	components.State.SetValue(fighter, components.StateData{
		Current:  cfg.Grounded,
		Previous: cfg.Grounded,
	})
	components.Vitality.SetValue(fighter, components.VitalityData{
		Current: cfg.Actor.MaxVitality,
		Max:     cfg.Actor.MaxVitality,
	})
	components.Animation.SetValue(fighter, components.AnimationData{Animator: p.Animator})
	components.Input.SetValue(fighter, components.InputData{Source: p.Input})

	clock := &sequence.Clock{}
	if c, ok := components.Clock.First(w); ok {
		clock = components.Clock.Get(c).Clock
	}
	components.Combat.SetValue(fighter, components.NewCombatData(clock, p.Loadout, p.Bindings))
	if p.Animator != nil {
		p.Animator.SetBool(cfg.Anim.CanAttack, true)
	}

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return fighter
}

// ResolveLoadout looks up the attack bound to each action and applies the
// difficulty mode to it. It returns the loadout keyed by attack id and the
// bindings from action to attack id.
func ResolveLoadout(cat *attackdata.Catalog, bound map[cfg.ActionID]string, mode attackdata.Mode) (map[string]*attackdata.Spec, map[cfg.ActionID]string, error) {
	actions := make([]cfg.ActionID, 0, len(bound))
	for a := range bound {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	loadout := make(map[string]*attackdata.Spec, len(bound))
	bindings := make(map[cfg.ActionID]string, len(bound))
	for _, a := range actions {
		id := bound[a]
		spec, ok := cat.Get(id)
		if !ok {
			return nil, nil, fmt.Errorf("%s bound to %q: %w", a, id, ErrUnknownAttack)
		}
		if mode != "" && spec.Mode != mode {
			spec = spec.WithMode(mode)
		}
		loadout[id] = spec
		bindings[a] = id
	}
	return loadout, bindings, nil
}
