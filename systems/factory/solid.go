package factory

import (
	"github.com/automoto/pillbrawl/archetypes"
	"github.com/automoto/pillbrawl/components"
	"github.com/automoto/pillbrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSolid(w donburi.World, x, y, width, height float64) *donburi.Entry {
	solid := archetypes.Solid.Spawn(w)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = solid

	components.Object.SetValue(solid, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return solid
}
