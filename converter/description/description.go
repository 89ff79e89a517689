// Package description exports constructed geometry as a JSON document.
// Lengths are in mm, densities in g/cm3 and molar masses in g/mole.
package description

import (
	"encoding/json"
	"fmt"

	"github.com/hanc4-git/B1/errors"
	"github.com/hanc4-git/B1/geometry"
	"github.com/hanc4-git/B1/material"
	"github.com/hanc4-git/B1/units"
	"github.com/hanc4-git/B1/utils"
	"github.com/hanc4-git/B1/volume"
)

// FileName of the exported document.
const FileName = "geometry.json"

var solidType = struct {
	box string
}{
	box: "box",
}

var solidTypeMapping = map[string]func() interface{}{
	solidType.box: func() interface{} { return &BoxSolid{} },
}

// Setup is the whole geometry: materials used and the world volume tree.
type Setup struct {
	Materials []Material `json:"materials"`
	World     Volume     `json:"world"`
}

// Element ...
type Element struct {
	Name      string  `json:"name"`
	Symbol    string  `json:"symbol"`
	Z         int     `json:"z"`
	MolarMass float64 `json:"molarMass"`
}

// Component references an element of the same material by symbol.
type Component struct {
	Symbol       string  `json:"symbol"`
	Atoms        int     `json:"atoms,omitempty"`
	MassFraction float64 `json:"massFraction,omitempty"`
}

// Material ...
type Material struct {
	Name       string         `json:"name"`
	Density    float64        `json:"density"`
	State      material.State `json:"state"`
	IValue     float64        `json:"iValue,omitempty"`
	NIST       bool           `json:"nist,omitempty"`
	Elements   []Element      `json:"elements"`
	Components []Component    `json:"components"`
}

// Volume is a placement with its logical volume inlined.
type Volume struct {
	Name        string         `json:"name"`
	CopyNo      int            `json:"copyNo"`
	Translation geometry.Vec3D `json:"translation"`
	Material    string         `json:"material"`
	Solid       Solid          `json:"solid"`
	Daughters   []Volume       `json:"daughters,omitempty"`
}

// Solid holds one of the solid types.
type Solid struct {
	SolidType
}

// SolidType ...
type SolidType interface{}

// MarshalJSON ...
func (s Solid) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.SolidType)
}

// UnmarshalJSON ...
// SolidType is recognized by solid/type in json.
func (s *Solid) UnmarshalJSON(b []byte) error {
	solid, err := utils.TypeBasedUnmarshallJSON(b, solidTypeMapping)
	if err != nil {
		return err
	}
	s.SolidType = solid
	return nil
}

// BoxSolid represent box of given half-lengths.
type BoxSolid struct {
	Name        string         `json:"name"`
	HalfLengths geometry.Vec3D `json:"halfLengths"`
}

// MarshalJSON json.Marshaller implementaion.
func (b BoxSolid) MarshalJSON() ([]byte, error) {
	type Alias BoxSolid
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  solidType.box,
		Alias: Alias(b),
	})
}

// FromGeometry describes world and materials of its volumes.
func FromGeometry(world *volume.PhysicalVolume) (Setup, error) {
	if world == nil {
		return Setup{}, fmt.Errorf("world volume: %w", errors.ErrNotFound)
	}
	materials := []Material{}
	for _, mat := range volume.UsedMaterials(world) {
		materials = append(materials, convertMaterial(mat))
	}
	worldVolume, err := convertVolume(world)
	if err != nil {
		return Setup{}, err
	}
	return Setup{Materials: materials, World: worldVolume}, nil
}

// Files renders the document.
func Files(world *volume.PhysicalVolume) (map[string]string, error) {
	setup, err := FromGeometry(world)
	if err != nil {
		return nil, err
	}
	content, err := json.MarshalIndent(setup, "", "  ")
	if err != nil {
		return nil, err
	}
	return map[string]string{FileName: string(content) + "\n"}, nil
}

func convertMaterial(mat *material.Material) Material {
	result := Material{
		Name:       mat.Name,
		Density:    units.In(mat.Density, units.GramPerCm3),
		State:      mat.State,
		IValue:     mat.IValue,
		NIST:       mat.NIST,
		Elements:   []Element{},
		Components: []Component{},
	}
	for _, c := range mat.Components {
		result.Elements = append(result.Elements, Element{
			Name:      c.Element.Name,
			Symbol:    c.Element.Symbol,
			Z:         c.Element.Z,
			MolarMass: units.In(c.Element.MolarMass, units.GramPerMole),
		})
		result.Components = append(result.Components, Component{
			Symbol:       c.Element.Symbol,
			Atoms:        c.Atoms,
			MassFraction: c.MassFraction,
		})
	}
	return result
}

func convertVolume(pv *volume.PhysicalVolume) (Volume, error) {
	solid, err := convertSolid(pv.Logical.Solid)
	if err != nil {
		return Volume{}, fmt.Errorf("volume %q: %w", pv.Name, err)
	}
	result := Volume{
		Name:        pv.Name,
		CopyNo:      pv.CopyNo,
		Translation: pv.Translation.Scale(1.0 / units.Mm),
		Material:    pv.Logical.Material.Name,
		Solid:       solid,
	}
	for _, daughter := range pv.Logical.Daughters {
		daughterVolume, err := convertVolume(daughter)
		if err != nil {
			return Volume{}, err
		}
		result.Daughters = append(result.Daughters, daughterVolume)
	}
	return result, nil
}

func convertSolid(solid volume.Solid) (Solid, error) {
	switch s := solid.(type) {
	case *volume.Box:
		return Solid{BoxSolid{
			Name:        s.Name(),
			HalfLengths: s.HalfLengths().Scale(1.0 / units.Mm),
		}}, nil
	default:
		return Solid{}, fmt.Errorf("solid type %T: %w", solid, errors.ErrNotImplemented)
	}
}
