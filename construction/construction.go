// Package construction builds the detector geometry: a world box of air
// holding one detector box of a user defined scintillator.
package construction

import (
	"fmt"

	"github.com/hanc4-git/B1/geometry"
	"github.com/hanc4-git/B1/log"
	"github.com/hanc4-git/B1/material"
	"github.com/hanc4-git/B1/units"
	"github.com/hanc4-git/B1/volume"
)

var logger = log.NamedLogger("construction")

// Volume names.
const (
	WorldName    = "World"
	DetectorName = "Detector"
)

// DetectorConstruction builds geometry into the given tables and returns the
// world placement.
type DetectorConstruction interface {
	Construct(materials *material.Manager, store *volume.Store) (*volume.PhysicalVolume, error)
}

// B1 is the single detector geometry.
type B1 struct {
	Params Params
}

// NewB1 constructor.
func NewB1(params Params) *B1 {
	return &B1{Params: params}
}

// Construct builds world and detector. The returned placement is always the world.
func (b *B1) Construct(
	materials *material.Manager, store *volume.Store,
) (*volume.PhysicalVolume, error) {
	if err := b.Params.Validate(); err != nil {
		return nil, fmt.Errorf("construction: %w", err)
	}
	checkOverlaps := b.Params.CheckOverlaps

	//
	// World
	//
	worldSize := float64(b.Params.World.Size)
	worldMat, err := materials.FindOrBuildMaterial(b.Params.World.Material)
	if err != nil {
		return nil, err
	}

	solidWorld, err := volume.NewBox(WorldName, 0.5*worldSize, 0.5*worldSize, 0.5*worldSize)
	if err != nil {
		return nil, err
	}
	logicWorld, err := store.NewLogicalVolume(solidWorld, worldMat, WorldName)
	if err != nil {
		return nil, err
	}
	physWorld, err := store.Place(volume.PlacementOptions{
		Name:          WorldName,
		Logical:       logicWorld,
		CheckOverlaps: checkOverlaps,
	})
	if err != nil {
		return nil, err
	}

	//
	// Detector
	//
	detectorMat, err := b.buildDetectorMaterial(materials)
	if err != nil {
		return nil, err
	}

	detectorSize := float64(b.Params.Detector.Size)
	solidDetector, err := volume.NewBox(
		DetectorName, 0.5*detectorSize, 0.5*detectorSize, 0.5*detectorSize,
	)
	if err != nil {
		return nil, err
	}
	logicDetector, err := store.NewLogicalVolume(solidDetector, detectorMat, DetectorName)
	if err != nil {
		return nil, err
	}
	_, err = store.Place(volume.PlacementOptions{
		Name:          DetectorName,
		Logical:       logicDetector,
		Mother:        logicWorld,
		Translation:   geometry.Vec3D{Z: float64(b.Params.Detector.OffsetZ)},
		CheckOverlaps: checkOverlaps,
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Constructed %s (%g mm, %s) with %s (%g mm, %s) at z=%g mm",
		WorldName, units.In(worldSize, units.Mm), worldMat.Name,
		DetectorName, units.In(detectorSize, units.Mm), detectorMat.Name,
		units.In(float64(b.Params.Detector.OffsetZ), units.Mm))

	return physWorld, nil
}

func (b *B1) buildDetectorMaterial(materials *material.Manager) (*material.Material, error) {
	params := b.Params.Detector.Material

	mat, err := material.NewMaterial(
		params.Name, float64(params.Density), len(params.Elements), params.State,
	)
	if err != nil {
		return nil, err
	}
	for _, elParams := range params.Elements {
		element, err := b.element(materials, elParams)
		if err != nil {
			return nil, err
		}
		if err := mat.AddElementByAtoms(element, elParams.Atoms); err != nil {
			return nil, err
		}
	}
	return materials.RegisterOrReuse(mat)
}

func (b *B1) element(materials *material.Manager, params ElementParams) (*material.Element, error) {
	if params.Z == 0 && params.MolarMass == 0 {
		return materials.FindOrBuildElement(params.Symbol)
	}
	return material.NewElement(params.Name, params.Symbol, params.Z, float64(params.MolarMass))
}
