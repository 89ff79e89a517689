package volume

import (
	"fmt"

	"github.com/hanc4-git/B1/errors"
	"github.com/hanc4-git/B1/geometry"
	"github.com/hanc4-git/B1/log"
	"github.com/hanc4-git/B1/material"
	"github.com/hanc4-git/B1/units"
	"github.com/hanc4-git/B1/validate"
)

var logger = log.NamedLogger("volume")

// Store keeps logical volumes and placements of one geometry.
// It is not safe for concurrent use.
type Store struct {
	logical  []*LogicalVolume
	physical []*PhysicalVolume
	world    *PhysicalVolume
}

// NewStore constructor.
func NewStore() *Store {
	return &Store{}
}

// NewLogicalVolume creates and registers logical volume.
func (s *Store) NewLogicalVolume(
	solid Solid, mat *material.Material, name string,
) (*LogicalVolume, error) {
	if solid == nil {
		return nil, fmt.Errorf("logical volume %q: nil solid: %w", name, errors.ErrInvalid)
	}
	if mat == nil {
		return nil, fmt.Errorf("logical volume %q: nil material: %w", name, errors.ErrInvalid)
	}
	lv := &LogicalVolume{Name: name, Solid: solid, Material: mat}
	s.logical = append(s.logical, lv)
	return lv, nil
}

// PlacementOptions describe a single placement.
type PlacementOptions struct {
	Name        string
	Logical     *LogicalVolume
	Mother      *LogicalVolume // nil places the world volume
	Translation geometry.Vec3D
	CopyNo      int

	// CheckOverlaps verifies the placement lies inside its mother and does
	// not intersect already placed siblings.
	CheckOverlaps bool
}

// Place creates a placement, attaches it to its mother and registers it.
// A placement failing the overlap check is not attached.
func (s *Store) Place(opts PlacementOptions) (*PhysicalVolume, error) {
	if opts.Logical == nil {
		return nil, fmt.Errorf("placement %q: nil logical volume: %w", opts.Name, errors.ErrInvalid)
	}
	if t := opts.Translation; !validate.Finite(t.X, t.Y, t.Z) {
		return nil, fmt.Errorf("placement %q: translation %+v is not finite: %w",
			opts.Name, t, errors.ErrInvalid)
	}
	pv := &PhysicalVolume{
		Name:        opts.Name,
		Logical:     opts.Logical,
		Mother:      opts.Mother,
		Translation: opts.Translation,
		CopyNo:      opts.CopyNo,
	}

	if pv.IsWorld() {
		if s.world != nil {
			return nil, fmt.Errorf("placement %q: world %q already placed: %w",
				opts.Name, s.world.Name, errors.ErrDuplicate)
		}
		s.world = pv
		s.physical = append(s.physical, pv)
		return pv, nil
	}

	if opts.Logical.contains(opts.Mother) {
		return nil, fmt.Errorf("placement %q: %q cannot be placed inside itself: %w",
			opts.Name, opts.Logical.Name, errors.ErrInvalid)
	}
	if opts.CheckOverlaps {
		if err := checkOverlaps(pv); err != nil {
			return nil, err
		}
	}

	opts.Mother.Daughters = append(opts.Mother.Daughters, pv)
	s.physical = append(s.physical, pv)
	return pv, nil
}

func checkOverlaps(pv *PhysicalVolume) error {
	logger.Infof("Checking overlaps for volume %s:%d ...", pv.Name, pv.CopyNo)

	extent := pv.Extent()
	motherExtent := pv.Mother.Solid.Extent()
	if !motherExtent.Contains(extent, geometry.Tolerance) {
		return fmt.Errorf("placement %q protrudes from mother %q by %g mm: %w",
			pv.Name, pv.Mother.Name,
			units.In(motherExtent.Protrusion(extent), units.Millimeter), errors.ErrOverlap)
	}
	for _, sibling := range pv.Mother.Daughters {
		if extent.Overlaps(sibling.Extent(), geometry.Tolerance) {
			return fmt.Errorf("placement %q overlaps %q:%d in mother %q: %w",
				pv.Name, sibling.Name, sibling.CopyNo, pv.Mother.Name, errors.ErrOverlap)
		}
	}

	logger.Infof("Checking overlaps for volume %s:%d ... OK!", pv.Name, pv.CopyNo)
	return nil
}

// World returns the top level placement, nil before it is placed.
func (s *Store) World() *PhysicalVolume {
	return s.world
}

// Logical returns first logical volume with the given name.
func (s *Store) Logical(name string) (*LogicalVolume, bool) {
	for _, lv := range s.logical {
		if lv.Name == name {
			return lv, true
		}
	}
	return nil, false
}

// Physical returns first placement with the given name.
func (s *Store) Physical(name string) (*PhysicalVolume, bool) {
	for _, pv := range s.physical {
		if pv.Name == name {
			return pv, true
		}
	}
	return nil, false
}

// PhysicalVolumes returns placements in creation order.
func (s *Store) PhysicalVolumes() []*PhysicalVolume {
	return append([]*PhysicalVolume(nil), s.physical...)
}

// LogicalVolumes returns logical volumes in creation order.
func (s *Store) LogicalVolumes() []*LogicalVolume {
	return append([]*LogicalVolume(nil), s.logical...)
}

// Clean drops every registered volume.
func (s *Store) Clean() {
	s.logical = nil
	s.physical = nil
	s.world = nil
}
