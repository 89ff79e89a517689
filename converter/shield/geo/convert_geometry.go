// Package geo converts placed volumes to geo.dat bodies and zones.
package geo

import (
	"github.com/hanc4-git/B1/converter"
	"github.com/hanc4-git/B1/converter/shield/media"
	"github.com/hanc4-git/B1/geometry"
	"github.com/hanc4-git/B1/units"
	"github.com/hanc4-git/B1/volume"
)

// Geometry represent ready to serialize data for geo.dat file.
type Geometry struct {
	Title               string
	Bodies              []Body
	Zones               []Zone
	ZoneToMaterialPairs []ZoneToMaterial
}

// Mapping recovers volume names from SHIELD-HIT12A numbering.
type Mapping struct {
	BodyToPlacement map[ShieldBodyID]string
	ZoneToPlacement map[ZoneID]string
}

// ConvertGeometry converts world and its daughters. Every placement becomes
// a body and a zone; the world is wrapped in a blackhole zone.
func ConvertGeometry(
	world *volume.PhysicalVolume,
	materialToShield map[string]media.ShieldID,
) (Geometry, Mapping, error) {
	if world == nil {
		return Geometry{}, Mapping{}, converter.GeneralGeoError("world volume is not constructed")
	}
	blackhole := geometry.NewExtent(geometry.Origin, geometry.Vec3D{
		X: blackholeSize / 2, Y: blackholeSize / 2, Z: blackholeSize / 2,
	})
	worldExtent := world.Extent()
	worldExtentCm := geometry.Extent{
		Min: worldExtent.Min.Sub(geometry.Origin).Scale(1.0 / units.Cm).ToPoint(),
		Max: worldExtent.Max.Sub(geometry.Origin).Scale(1.0 / units.Cm).ToPoint(),
	}
	if !blackhole.Contains(worldExtentCm, 0) {
		return Geometry{}, Mapping{}, converter.GeneralGeoError(
			"world %q does not fit in the %g cm blackhole cube", world.Name, blackholeSize)
	}

	bodies, placementToBody, err := convertPlacements(world)
	if err != nil {
		return Geometry{}, Mapping{}, err
	}

	bodiesWithBlackhole, blackholeBodyID, err := appendBlackholeBody(bodies)
	if err != nil {
		return Geometry{}, Mapping{}, err
	}

	worldTree, err := createZoneTree(world, placementToBody, materialToShield)
	if err != nil {
		return Geometry{}, Mapping{}, err
	}
	root := surroundWithBlackholeZone(worldTree, blackholeBodyID)

	zones, zoneToMaterialPairs, zoneToPlacement, err := convertTreeToZones(root)
	if err != nil {
		return Geometry{}, Mapping{}, err
	}

	mapping := Mapping{
		BodyToPlacement: map[ShieldBodyID]string{},
		ZoneToPlacement: map[ZoneID]string{},
	}
	for pv, id := range placementToBody {
		mapping.BodyToPlacement[id] = pv.Name
	}
	for id, pv := range zoneToPlacement {
		mapping.ZoneToPlacement[id] = pv.Name
	}

	return Geometry{
		Title:               world.Name,
		Bodies:              bodiesWithBlackhole,
		Zones:               zones,
		ZoneToMaterialPairs: zoneToMaterialPairs,
	}, mapping, nil
}
