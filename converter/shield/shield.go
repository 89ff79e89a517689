// Package shield converts constructed geometry into SHIELD-HIT12A input files.
package shield

import (
	"fmt"
	"sort"

	"github.com/hanc4-git/B1/converter/shield/geo"
	"github.com/hanc4-git/B1/converter/shield/media"
	"github.com/hanc4-git/B1/log"
	"github.com/hanc4-git/B1/volume"
)

var logger = log.NamedLogger("shield")

const (
	materialsDatFile = "mat.dat"
	geometryDatFile  = "geo.dat"
)

// RawShieldSetup is input for shield Serialize function.
type RawShieldSetup struct {
	Materials media.Materials
	Geometry  geo.Geometry
}

// SerializationContext is struct used to recover data lost in process of
// serializing simulation data.
type SerializationContext struct {
	MapMaterialID map[media.ShieldID]string
	MapBodyID     map[geo.ShieldBodyID]string
	MapZoneID     map[geo.ZoneID]string
}

// NewSerializationContext constructor.
func NewSerializationContext() SerializationContext {
	return SerializationContext{
		MapMaterialID: map[media.ShieldID]string{},
		MapBodyID:     map[geo.ShieldBodyID]string{},
		MapZoneID:     map[geo.ZoneID]string{},
	}
}

// Lines lists every mapping as "<kind> <id>: <name>", sorted by kind and id.
func (c SerializationContext) Lines() []string {
	lines := []string{}
	for _, id := range sortedIDs(c.MapMaterialID) {
		lines = append(lines, fmt.Sprintf("medium %d: %s", id, c.MapMaterialID[media.ShieldID(id)]))
	}
	for _, id := range sortedIDs(c.MapBodyID) {
		lines = append(lines, fmt.Sprintf("body %d: %s", id, c.MapBodyID[geo.ShieldBodyID(id)]))
	}
	for _, id := range sortedIDs(c.MapZoneID) {
		lines = append(lines, fmt.Sprintf("zone %d: %s", id, c.MapZoneID[geo.ZoneID(id)]))
	}
	return lines
}

func sortedIDs[K ~int | ~int64, V any](m map[K]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, int64(id))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Convert converts world and the materials its volumes use.
func Convert(world *volume.PhysicalVolume) (RawShieldSetup, SerializationContext, error) {
	serializationContext := NewSerializationContext()

	materials, materialToShield, err := media.ConvertMaterials(volume.UsedMaterials(world))
	if err != nil {
		return RawShieldSetup{}, serializationContext, err
	}
	for name, id := range materialToShield {
		serializationContext.MapMaterialID[id] = name
	}

	geoData, mapping, err := geo.ConvertGeometry(world, materialToShield)
	if err != nil {
		return RawShieldSetup{}, serializationContext, err
	}
	serializationContext.MapBodyID = mapping.BodyToPlacement
	serializationContext.MapZoneID = mapping.ZoneToPlacement

	return RawShieldSetup{
		Materials: materials,
		Geometry:  geoData,
	}, serializationContext, nil
}

// Files renders every input file.
func (s RawShieldSetup) Files() map[string]string {
	return SerializeData(s)
}

// SerializeData ...
func SerializeData(data RawShieldSetup) map[string]string {
	logger.Debugf("[Serializer] data %+v", data)
	files := map[string]string{}

	for fileName, serializeFunc := range map[string]func() string{
		materialsDatFile: func() string { return media.Serialize(data.Materials) },
		geometryDatFile:  func() string { return geo.Serialize(data.Geometry) },
	} {
		files[fileName] = serializeFunc()
	}

	for filename, content := range files {
		logger.Debugf("%s:\n%s\n", filename, content)
	}
	return files
}
