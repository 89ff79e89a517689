package construction

import (
	"fmt"

	"github.com/hanc4-git/B1/errors"
	"github.com/hanc4-git/B1/material"
	"github.com/hanc4-git/B1/units"
	"github.com/hanc4-git/B1/validate"
)

// Params hold every literal used to build the B1 geometry.
type Params struct {
	World         WorldParams    `yaml:"world"`
	Detector      DetectorParams `yaml:"detector"`
	CheckOverlaps bool           `yaml:"checkOverlaps"`
}

// WorldParams describe the cubic world volume.
type WorldParams struct {
	Size     units.Length `yaml:"size"`
	Material string       `yaml:"material"`
}

// DetectorParams describe the cubic detector placed on the z axis.
type DetectorParams struct {
	Size     units.Length           `yaml:"size"`
	OffsetZ  units.Length           `yaml:"offsetZ"`
	Material DetectorMaterialParams `yaml:"material"`
}

// DetectorMaterialParams describe the compound filling the detector.
type DetectorMaterialParams struct {
	Name     string          `yaml:"name"`
	Density  units.Density   `yaml:"density"`
	State    material.State  `yaml:"state"`
	Elements []ElementParams `yaml:"elements"`
}

// ElementParams define one constituent and its atoms per formula unit.
// With Z and MolarMass left zero the element is taken from the predefined table.
type ElementParams struct {
	Name      string          `yaml:"name,omitempty"`
	Symbol    string          `yaml:"symbol"`
	Z         int             `yaml:"z,omitempty"`
	MolarMass units.MolarMass `yaml:"molarMass,omitempty"`
	Atoms     int             `yaml:"atoms"`
}

// DefaultParams returns the B1 geometry: a 100 mm air cube holding a 20 mm
// CsPbBr3 cube shifted by +20 mm along z.
func DefaultParams() Params {
	return Params{
		World: WorldParams{
			Size:     units.Length(100 * units.Mm),
			Material: "G4_AIR",
		},
		Detector: DetectorParams{
			Size:    units.Length(20 * units.Mm),
			OffsetZ: units.Length(20 * units.Mm),
			Material: DetectorMaterialParams{
				Name:    "Detector",
				Density: units.Density(4.42 * units.GramPerCm3),
				State:   material.Solid,
				Elements: []ElementParams{
					{Name: "Caesium", Symbol: "Cs", Z: 55, MolarMass: units.MolarMass(132.90545 * units.GramPerMole), Atoms: 1},
					{Name: "Lead", Symbol: "Pb", Z: 82, MolarMass: units.MolarMass(207.2 * units.GramPerMole), Atoms: 1},
					{Name: "Bromine", Symbol: "Br", Z: 35, MolarMass: units.MolarMass(79.904 * units.GramPerMole), Atoms: 3},
				},
			},
		},
		CheckOverlaps: true,
	}
}

// Validate checks each literal on its own. Whether the detector fits in the
// world is left to the overlap check at placement.
func (p Params) Validate() error {
	fieldErr := errors.NewFieldError()
	if !(p.World.Size > 0) {
		fieldErr.Add("world.size", "must be > 0")
	}
	if p.World.Material == "" {
		fieldErr.Add("world.material", "cannot be empty")
	}
	if !(p.Detector.Size > 0) {
		fieldErr.Add("detector.size", "must be > 0")
	}
	if !validate.Finite(float64(p.Detector.OffsetZ)) {
		fieldErr.Add("detector.offsetZ", "must be finite")
	}
	mat := p.Detector.Material
	if mat.Name == "" {
		fieldErr.Add("detector.material.name", "cannot be empty")
	}
	if !(mat.Density > 0) {
		fieldErr.Add("detector.material.density", "must be > 0")
	}
	if len(mat.Elements) == 0 {
		fieldErr.Add("detector.material.elements", "at least one element required")
	}
	for i, el := range mat.Elements {
		field := fmt.Sprintf("detector.material.elements[%d]", i)
		if el.Symbol == "" {
			fieldErr.Add(field+".symbol", "cannot be empty")
		}
		if el.Atoms < 1 {
			fieldErr.Add(field+".atoms", "cannot be < 1")
		}
		explicit := el.Z != 0 || el.MolarMass != 0
		if explicit && (el.Z < 1 || !(el.MolarMass > 0) || el.Name == "") {
			fieldErr.Add(field, "explicit element needs name, z and molarMass")
		}
	}
	return fieldErr.OrNil()
}
