package ecs

import (
	"github.com/phanxgames/squares"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// ObjectData attaches a squares.GameObject to an entity.
type ObjectData struct {
	Object *squares.GameObject
}

// Object is the component holding an entity's GameObject.
var Object = donburi.NewComponentType[ObjectData]()

var objectQuery = donburi.NewQuery(filter.Contains(Object))

// AddObject creates an entity carrying obj.
func AddObject(world donburi.World, obj *squares.GameObject) donburi.Entity {
	e := world.Create(Object)
	Object.SetValue(world.Entry(e), ObjectData{Object: obj})
	return e
}

// UpdateObjects advances every entity's GameObject by dt.
func UpdateObjects(world donburi.World, dt float64) {
	objectQuery.Each(world, func(entry *donburi.Entry) {
		Object.Get(entry).Object.Update(dt)
	})
}

// RenderObjects draws every entity's GameObject in entity order.
func RenderObjects(world donburi.World, batch squares.SpriteBatch, shapes squares.ShapeDrawer, cfg squares.RenderConfig) {
	objectQuery.Each(world, func(entry *donburi.Entry) {
		Object.Get(entry).Object.Render(batch, shapes, cfg)
	})
}
