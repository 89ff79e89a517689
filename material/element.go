package material

import (
	"fmt"

	"github.com/hanc4-git/B1/errors"
	"github.com/hanc4-git/B1/units"
	"github.com/hanc4-git/B1/validate"
)

const maxAtomicNumber = 118

// Element is a chemical element with natural isotopic composition.
type Element struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Z      int    `json:"z"`

	// MolarMass in internal units (see units.GramPerMole).
	MolarMass float64 `json:"molarMass"`
}

// NewElement defines an element by name, symbol, atomic number and molar mass.
func NewElement(name, symbol string, z int, molarMass float64) (*Element, error) {
	fieldErr := errors.NewFieldError()
	if name == "" {
		fieldErr.Add("name", "cannot be empty")
	}
	if symbol == "" {
		fieldErr.Add("symbol", "cannot be empty")
	}
	if !validate.InRange(1, maxAtomicNumber, float64(z)) {
		fieldErr.Add("z", "%d outside [1, %d]", z, maxAtomicNumber)
	}
	if !(molarMass > 0.0) || !validate.Finite(molarMass) {
		fieldErr.Add("molarMass", "must be finite and > 0.0")
	}
	if err := fieldErr.OrNil(); err != nil {
		return nil, fmt.Errorf("element %q: %w", name, err)
	}

	return &Element{
		Name:      name,
		Symbol:    symbol,
		Z:         z,
		MolarMass: molarMass,
	}, nil
}

// String ...
func (e *Element) String() string {
	return fmt.Sprintf("%s (%s, Z=%d, A=%g g/mole)",
		e.Name, e.Symbol, e.Z, units.In(e.MolarMass, units.GramPerMole))
}
