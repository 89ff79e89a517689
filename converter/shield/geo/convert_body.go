package geo

import (
	"fmt"

	"github.com/hanc4-git/B1/converter"
	"github.com/hanc4-git/B1/errors"
	"github.com/hanc4-git/B1/geometry"
	"github.com/hanc4-git/B1/units"
	"github.com/hanc4-git/B1/validate"
	"github.com/hanc4-git/B1/volume"
)

// ShieldBodyID ...
type ShieldBodyID int64

// Body is a SHIELD-HIT12A body card.
type Body struct {
	ID         ShieldBodyID
	Identifier string
	Arguments  []float64
}

// blackholeSize is the full edge, in cm, of the cube enclosing the world.
const blackholeSize = 500.0

// convertPlacements creates one body per placement, numbered in walk order.
func convertPlacements(
	world *volume.PhysicalVolume,
) ([]Body, map[*volume.PhysicalVolume]ShieldBodyID, error) {
	result := []Body{}
	placementToBody := map[*volume.PhysicalVolume]ShieldBodyID{}

	err := volume.Walk(world, func(pv *volume.PhysicalVolume, global geometry.Vec3D, _ int) error {
		nextShieldID := ShieldBodyID(len(result) + 1)

		body, err := convertSolid(pv.Logical.Solid, global)
		if err != nil {
			return converter.BodyIDError(pv.Name, "%s", err.Error())
		}
		body.ID = nextShieldID
		placementToBody[pv] = nextShieldID
		result = append(result, body)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return result, placementToBody, nil
}

func appendBlackholeBody(bodies []Body) ([]Body, ShieldBodyID, error) {
	newID := ShieldBodyID(1)
	if len(bodies) > 0 {
		newID = bodies[len(bodies)-1].ID + 1
	}

	blackholeBody, err := convertCuboid(
		geometry.Point{X: 0.0, Y: 0.0, Z: 0.0},
		geometry.Vec3D{X: blackholeSize, Y: blackholeSize, Z: blackholeSize},
	)
	if err != nil {
		return nil, 0, err
	}

	blackholeBody.ID = newID
	return append(bodies, blackholeBody), newID, nil
}

// convertSolid places solid at global translation and converts lengths to cm.
func convertSolid(solid volume.Solid, global geometry.Vec3D) (Body, error) {
	switch s := solid.(type) {
	case *volume.Box:
		center := global.Scale(1.0 / units.Cm).ToPoint()
		size := s.HalfLengths().Scale(2.0 / units.Cm)
		return convertCuboid(center, size)
	default:
		return Body{}, fmt.Errorf("solid type %T serializing: %w", solid, errors.ErrNotImplemented)
	}
}

func convertCuboid(center geometry.Point, size geometry.Vec3D) (Body, error) {
	for _, axis := range []struct {
		name string
		size float64
	}{{"x", size.X}, {"y", size.Y}, {"z", size.Z}} {
		if !(axis.size > 0.0) {
			return Body{}, fmt.Errorf("cuboid size in %s axis must be > 0.0", axis.name)
		}
	}
	if !validate.Finite(center.X, center.Y, center.Z, size.X, size.Y, size.Z) {
		return Body{}, fmt.Errorf("cuboid center %+v and size %+v must be finite", center, size)
	}

	minX, maxX := geometry.CenterAndSizeToMinAndMax(center.X, size.X)
	minY, maxY := geometry.CenterAndSizeToMinAndMax(center.Y, size.Y)
	minZ, maxZ := geometry.CenterAndSizeToMinAndMax(center.Z, size.Z)

	return Body{
		Identifier: "RPP",
		Arguments:  []float64{minX, maxX, minY, maxY, minZ, maxZ},
	}, nil
}
