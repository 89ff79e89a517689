package geo

import (
	"fmt"

	"github.com/hanc4-git/B1/converter"
	"github.com/hanc4-git/B1/converter/shield/mapping"
	"github.com/hanc4-git/B1/converter/shield/media"
	"github.com/hanc4-git/B1/volume"
)

// ZoneID ...
type ZoneID int64

// Operation decribe how to construct zone using bodies.
type Operation string

const (
	// Union represent set union.
	Union Operation = "OR"

	// Intersection represent set intersection.
	Intersection Operation = "  "
)

// Sign tells, if complement (-) is used instead of normal area (+).
type Sign string

const (
	// Plus represent normal area of body.
	Plus Sign = "+"

	// Minus represent complement of body.
	Minus Sign = "-"
)

// Construction represent steps to build zone from bodies.
type Construction struct {
	Operation Operation
	Sign      Sign
	BodyID    ShieldBodyID
}

// Zone represent zone in shield files.
type Zone struct {
	ID            ZoneID
	Name          string
	Constructions []Construction
}

// ZoneToMaterial mapping.
type ZoneToMaterial struct {
	ZoneID     ZoneID
	MaterialID media.ShieldID
}

type zoneTree struct {
	childrens []*zoneTree

	placement  *volume.PhysicalVolume
	baseBodyID ShieldBodyID
	materialID media.ShieldID
}

func createZoneTree(
	pv *volume.PhysicalVolume,
	placementToBody map[*volume.PhysicalVolume]ShieldBodyID,
	materialToShield map[string]media.ShieldID,
) (*zoneTree, error) {
	materialID, found := materialToShield[pv.Logical.Material.Name]
	if !found {
		return nil, converter.ZoneIDError(pv.Name, "Cannot find material: %s", pv.Logical.Material.Name)
	}

	childrens := []*zoneTree{}
	for _, daughter := range pv.Logical.Daughters {
		child, err := createZoneTree(daughter, placementToBody, materialToShield)
		if err != nil {
			return nil, err
		}
		childrens = append(childrens, child)
	}

	return &zoneTree{
		childrens:  childrens,
		placement:  pv,
		baseBodyID: placementToBody[pv],
		materialID: materialID,
	}, nil
}

func surroundWithBlackholeZone(world *zoneTree, blackholeBodyID ShieldBodyID) *zoneTree {
	return &zoneTree{
		childrens:  []*zoneTree{world},
		baseBodyID: blackholeBodyID,
		materialID: media.ShieldID(mapping.BlackholeICRU),
	}
}

// convertTreeToZones numbers zones in DFS post-order. Each zone is its base
// body minus the bodies of its children.
func convertTreeToZones(root *zoneTree) ([]Zone, []ZoneToMaterial, map[ZoneID]*volume.PhysicalVolume, error) {
	zones := []Zone{}
	zoneToMaterialPairs := []ZoneToMaterial{}
	zoneToPlacement := map[ZoneID]*volume.PhysicalVolume{}

	for _, t := range traverseTreeUsingDFS(root) {
		constructions := []Construction{
			{Operation: Intersection, Sign: Plus, BodyID: t.baseBodyID},
		}
		for _, children := range t.childrens {
			constructions = append(constructions, Construction{
				Operation: Intersection, Sign: Minus, BodyID: children.baseBodyID,
			})
		}

		id := genNextZoneID(zones)
		name, err := genZoneName(len(zones))
		if err != nil {
			return nil, nil, nil, converter.ZoneIDError(id, "%s", err.Error())
		}
		zones = append(zones, Zone{
			ID:            id,
			Name:          name,
			Constructions: constructions,
		})
		zoneToMaterialPairs = append(zoneToMaterialPairs, ZoneToMaterial{
			ZoneID:     id,
			MaterialID: t.materialID,
		})
		if t.placement != nil {
			zoneToPlacement[id] = t.placement
		}
	}

	return zones, zoneToMaterialPairs, zoneToPlacement, nil
}

func genNextZoneID(zones []Zone) ZoneID {
	return ZoneID(len(zones) + 1)
}

const zoneNameLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// maxZonesNumber is the count of distinct three letter zone names.
const maxZonesNumber = len(zoneNameLetters) * len(zoneNameLetters) * len(zoneNameLetters)

// genZoneName returns AAA, BAA, CAA, ..., ZAA, ABA, ...
func genZoneName(index int) (string, error) {
	if index < 0 || index >= maxZonesNumber {
		return "", fmt.Errorf("only %d zones are permitted in shield", maxZonesNumber)
	}
	n := len(zoneNameLetters)
	return string([]byte{
		zoneNameLetters[index%n],
		zoneNameLetters[(index/n)%n],
		zoneNameLetters[(index/(n*n))%n],
	}), nil
}

func recursiveWalk(tree *zoneTree, visited []*zoneTree) []*zoneTree {
	if tree == nil {
		return visited
	}
	for _, children := range tree.childrens {
		visited = recursiveWalk(children, visited)
	}
	return append(visited, tree)
}

func traverseTreeUsingDFS(tree *zoneTree) []*zoneTree {
	return recursiveWalk(tree, []*zoneTree{})
}
