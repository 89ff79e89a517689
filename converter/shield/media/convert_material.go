// Package media converts the material table to mat.dat media.
package media

import (
	"sort"

	"github.com/hanc4-git/B1/converter"
	"github.com/hanc4-git/B1/converter/shield/mapping"
	"github.com/hanc4-git/B1/material"
	"github.com/hanc4-git/B1/units"
)

// ShieldID ...
type ShieldID int

// Materials contains used materials in a form easily serializable to mat.dat.
type Materials struct {
	Predefined []PredefinedMaterial
	Compound   []CompoundMaterial
}

// PredefinedMaterial is a medium referenced by ICRU number. State and density
// override the engine tables so both sides use the same values.
type PredefinedMaterial struct {
	ID            ShieldID
	ICRUNumber    mapping.MaterialICRU
	StateOfMatter mapping.StateOfMatter
	Density       float64
}

// Element of CompoundMaterial.
type Element struct {
	ID                             mapping.IsotopeNUCLID
	RelativeStoichiometricFraction int64
	AtomicMass                     float64
}

// CompoundMaterial is a medium defined element by element.
// IValue is the mean excitation energy of the medium in eV, 0 if unknown.
type CompoundMaterial struct {
	ID            ShieldID
	StateOfMatter mapping.StateOfMatter
	Density       float64
	IValue        float64
	Elements      []Element
}

const (
	maxMaterialsNumber = 100
	maxElementsNumber  = 13
)

// ConvertMaterials converts used materials. Density is written in g/cm3 and
// molar masses in g/mole. Returned map goes from material name to medium number.
func ConvertMaterials(
	used []*material.Material,
) (Materials, map[string]ShieldID, error) {
	result := Materials{
		Predefined: []PredefinedMaterial{},
		Compound:   []CompoundMaterial{},
	}
	materialToShield := map[string]ShieldID{}

	if len(used) > maxMaterialsNumber {
		return Materials{}, nil, converter.GeneralMatError(
			"Only %d distinct materials are permitted in shield (%d > %d)",
			maxMaterialsNumber, len(used), maxMaterialsNumber,
		)
	}

	byName := map[string]*material.Material{}
	predefNames := []string{}
	compoundNames := []string{}
	for _, mat := range used {
		if seen, found := byName[mat.Name]; found {
			if !seen.Equal(mat) {
				return Materials{}, nil, converter.MaterialIDError(
					mat.Name, "two different materials share this name",
				)
			}
			continue
		}
		byName[mat.Name] = mat

		icru, predefined := predefinedICRU(mat)
		switch {
		case predefined && icru == mapping.VacuumICRU:
			materialToShield[mat.Name] = ShieldID(mapping.VacuumICRU)
		case predefined:
			predefNames = append(predefNames, mat.Name)
		default:
			compoundNames = append(compoundNames, mat.Name)
		}
	}

	nextShieldID := 1
	for _, names := range [][]string{predefNames, compoundNames} {
		sort.Strings(names)
		for _, name := range names {
			materialToShield[name] = ShieldID(nextShieldID)
			nextShieldID++
		}
	}

	for _, name := range predefNames {
		result.Predefined = append(result.Predefined,
			createPredefinedMaterial(byName[name], materialToShield[name]))
	}
	for _, name := range compoundNames {
		compound, err := createCompoundMaterial(byName[name], materialToShield[name])
		if err != nil {
			return Materials{}, nil, err
		}
		result.Compound = append(result.Compound, compound)
	}
	return result, materialToShield, nil
}

func predefinedICRU(mat *material.Material) (mapping.MaterialICRU, bool) {
	if !mat.NIST {
		return 0, false
	}
	icru, found := mapping.PredefinedMaterialsToShieldICRU[mat.Name]
	return icru, found
}

// SerializeStateOfMatter return true, if StateOfMatter should be serialized.
func (p *PredefinedMaterial) SerializeStateOfMatter() bool {
	return p.StateOfMatter != mapping.StateNonDefined
}

// SerializeDensity return true, if Density should be serialized.
func (p *PredefinedMaterial) SerializeDensity() bool {
	return p.Density > 0.0
}

// SerializeAtomicMass return true, if AtomicMass should be serialized.
func (e *Element) SerializeAtomicMass() bool {
	return e.AtomicMass > 0.0
}

// SerializeIValue return true, if IValue should be serialized.
func (c *CompoundMaterial) SerializeIValue() bool {
	return c.IValue > 0.0
}

// createPredefinedMaterial writes state and density of the predefined table.
func createPredefinedMaterial(mat *material.Material, id ShieldID) PredefinedMaterial {
	icru, _ := predefinedICRU(mat)
	return PredefinedMaterial{
		ID:            id,
		ICRUNumber:    icru,
		StateOfMatter: mapping.StateOfMatterToShield[mat.State],
		Density:       units.In(mat.Density, units.GramPerCm3),
	}
}

func createCompoundMaterial(mat *material.Material, id ShieldID) (CompoundMaterial, error) {
	if mat.State == material.Undefined {
		return CompoundMaterial{}, converter.MaterialIDError(
			mat.Name, "StateOfMatter must be defined for Compound material",
		)
	}
	if !(mat.Density > 0.0) {
		return CompoundMaterial{}, converter.MaterialIDError(
			mat.Name, "Density must be specified for Compound material",
		)
	}
	if !mat.ByAtoms() {
		return CompoundMaterial{}, converter.MaterialIDError(
			mat.Name, "Compound material must be defined by number of atoms",
		)
	}
	if len(mat.Components) > maxElementsNumber {
		return CompoundMaterial{}, converter.MaterialIDError(
			mat.Name, "Only %d elements for Compound are permitted in shield (%d > %d)",
			maxElementsNumber, len(mat.Components), maxElementsNumber,
		)
	}

	elements := []Element{}
	for _, component := range mat.Components {
		isotopeNUCLID, err := mapping.ElementToShieldNUCLID(component.Element)
		if err != nil {
			return CompoundMaterial{}, converter.MaterialIDError(mat.Name, "%s", err.Error())
		}
		elements = append(elements, Element{
			ID:                             isotopeNUCLID,
			RelativeStoichiometricFraction: int64(component.Atoms),
			AtomicMass:                     units.In(component.Element.MolarMass, units.GramPerMole),
		})
	}

	return CompoundMaterial{
		ID:            id,
		StateOfMatter: mapping.StateOfMatterToShield[mat.State],
		Density:       units.In(mat.Density, units.GramPerCm3),
		IValue:        mat.IValue,
		Elements:      elements,
	}, nil
}
