// Package mapping translates material identifiers to SHIELD-HIT12A numbering.
package mapping

import (
	"fmt"

	"github.com/hanc4-git/B1/material"
)

// MaterialICRU is the ICRU number of a predefined SHIELD-HIT12A medium.
type MaterialICRU int64

// VacuumICRU is the medium number SHIELD-HIT12A reserves for vacuum.
const VacuumICRU MaterialICRU = 1000

// BlackholeICRU is the medium number of the blackhole zone.
const BlackholeICRU MaterialICRU = 0

// PredefinedMaterialsToShieldICRU maps predefined material names to ICRU numbers.
var PredefinedMaterialsToShieldICRU = map[string]MaterialICRU{
	"G4_Galactic":      VacuumICRU,
	"G4_AIR":           104,
	"G4_WATER":         276,
	"G4_Pb":            82,
	"G4_BGO":           111,
	"G4_CESIUM_IODIDE": 141,
	"G4_SODIUM_IODIDE": 219,
}

// StateOfMatter is the SHIELD-HIT12A STATE code.
type StateOfMatter int64

// Available states.
const (
	StateNonDefined StateOfMatter = -1
	StateSolid      StateOfMatter = 0
	StateGas        StateOfMatter = 1
	StateLiquid     StateOfMatter = 2
)

// StateOfMatterToShield maps material states to STATE codes.
var StateOfMatterToShield = map[material.State]StateOfMatter{
	material.Undefined: StateNonDefined,
	material.Solid:     StateSolid,
	material.Gas:       StateGas,
	material.Liquid:    StateLiquid,
}

// IsotopeNUCLID is the SHIELD-HIT12A NUCLID number.
type IsotopeNUCLID int64

// maxNaturalNUCLID is the highest NUCLID of a natural isotopic composition;
// numbers above it denote single isotopes.
const maxNaturalNUCLID = 98

// ElementToShieldNUCLID returns NUCLID of an element with natural composition,
// which equals its atomic number.
func ElementToShieldNUCLID(element *material.Element) (IsotopeNUCLID, error) {
	if element.Z < 1 || element.Z > maxNaturalNUCLID {
		return 0, fmt.Errorf("%s (Z=%d) has no natural NUCLID", element.Symbol, element.Z)
	}
	return IsotopeNUCLID(element.Z), nil
}
