package volume

import (
	"github.com/hanc4-git/B1/geometry"
	"github.com/hanc4-git/B1/material"
)

// LogicalVolume binds a solid to a material. Placements of other logical
// volumes inside it are its daughters.
type LogicalVolume struct {
	Name      string
	Solid     Solid
	Material  *material.Material
	Daughters []*PhysicalVolume
}

// PhysicalVolume is a placement of a logical volume inside its mother.
// Mother is nil for the world volume. Rotations are not supported.
type PhysicalVolume struct {
	Name        string
	Logical     *LogicalVolume
	Mother      *LogicalVolume
	Translation geometry.Vec3D
	CopyNo      int
}

// IsWorld reports whether pv is a top level placement.
func (pv *PhysicalVolume) IsWorld() bool {
	return pv.Mother == nil
}

// Extent returns the extent of the placed solid in the mother frame.
func (pv *PhysicalVolume) Extent() geometry.Extent {
	return pv.Logical.Solid.Extent().Translate(pv.Translation)
}

// contains reports whether target is lv or appears anywhere below it.
func (lv *LogicalVolume) contains(target *LogicalVolume) bool {
	if lv == target {
		return true
	}
	for _, daughter := range lv.Daughters {
		if daughter.Logical.contains(target) {
			return true
		}
	}
	return false
}
