package volume

import (
	"github.com/hanc4-git/B1/geometry"
	"github.com/hanc4-git/B1/material"
)

// Visit is called for each placement with its translation in the world frame
// and its depth below the world.
type Visit func(pv *PhysicalVolume, global geometry.Vec3D, depth int) error

// Walk visits world and all placements below it, parents before daughters.
// Walking stops at the first error returned by fn.
func Walk(world *PhysicalVolume, fn Visit) error {
	if world == nil {
		return nil
	}
	return walk(world, world.Translation, 0, fn)
}

func walk(pv *PhysicalVolume, global geometry.Vec3D, depth int, fn Visit) error {
	if err := fn(pv, global, depth); err != nil {
		return err
	}
	for _, daughter := range pv.Logical.Daughters {
		if err := walk(daughter, global.Add(daughter.Translation), depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// UsedMaterials returns materials of placed volumes in walk order, without repeats.
func UsedMaterials(world *PhysicalVolume) []*material.Material {
	used := []*material.Material{}
	seen := map[*material.Material]bool{}
	_ = Walk(world, func(pv *PhysicalVolume, _ geometry.Vec3D, _ int) error {
		if mat := pv.Logical.Material; !seen[mat] {
			seen[mat] = true
			used = append(used, mat)
		}
		return nil
	})
	return used
}
