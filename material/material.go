// Package material implements elements, compound materials and the material
// table used when building detector geometry.
package material

import (
	"fmt"
	"reflect"

	"github.com/hanc4-git/B1/errors"
	"github.com/hanc4-git/B1/units"
	"github.com/hanc4-git/B1/validate"
)

// massFractionTolerance bounds |sum(w_i) - 1| for materials given by mass fractions.
const massFractionTolerance = 1e-6

// Component is one element of a material, given either by number of atoms
// in the formula unit or by mass fraction.
type Component struct {
	Element      *Element `json:"element"`
	Atoms        int      `json:"atoms,omitempty"`
	MassFraction float64  `json:"massFraction,omitempty"`
}

type compositionMode int

const (
	modeUnset compositionMode = iota
	modeAtoms
	modeMassFraction
)

// Material is a homogeneous medium of a given density and composition.
type Material struct {
	Name    string  `json:"name"`
	Density float64 `json:"density"`
	State   State   `json:"state"`

	// IValue is the mean excitation energy in eV, 0 if unknown.
	IValue float64 `json:"iValue,omitempty"`

	// NIST is true for materials built from the predefined table.
	NIST bool `json:"nist,omitempty"`

	Components []Component `json:"components"`

	declared int
	mode     compositionMode
}

// NewMaterial starts definition of a material with nComponents elements.
// Components are added with AddElementByAtoms or AddElementByMassFraction.
func NewMaterial(name string, density float64, nComponents int, state State) (*Material, error) {
	fieldErr := errors.NewFieldError()
	if name == "" {
		fieldErr.Add("name", "cannot be empty")
	}
	if !(density > 0.0) || !validate.Finite(density) {
		fieldErr.Add("density", "must be finite and > 0.0")
	}
	if nComponents < 1 {
		fieldErr.Add("components", "at least one component required")
	}
	if err := fieldErr.OrNil(); err != nil {
		return nil, fmt.Errorf("material %q: %w", name, err)
	}
	return &Material{
		Name:       name,
		Density:    density,
		State:      state,
		Components: make([]Component, 0, nComponents),
		declared:   nComponents,
	}, nil
}

// AddElementByAtoms adds element with number of atoms in formula unit.
func (m *Material) AddElementByAtoms(element *Element, atoms int) error {
	if atoms < 1 {
		return m.invalid("%s: number of atoms %d cannot be < 1", symbolOf(element), atoms)
	}
	if err := m.checkAdd(element, modeAtoms); err != nil {
		return err
	}
	m.Components = append(m.Components, Component{Element: element, Atoms: atoms})
	return nil
}

// AddElementByMassFraction adds element with fraction of total mass.
// When the last declared component is added the fractions must sum to 1.
func (m *Material) AddElementByMassFraction(element *Element, fraction float64) error {
	if !validate.InRangeExclusiveStart(0.0, 1.0, fraction) {
		return m.invalid("%s: mass fraction %g outside (0, 1]", symbolOf(element), fraction)
	}
	if err := m.checkAdd(element, modeMassFraction); err != nil {
		return err
	}
	m.Components = append(m.Components, Component{Element: element, MassFraction: fraction})

	if m.Done() {
		sum := 0.0
		for _, c := range m.Components {
			sum += c.MassFraction
		}
		if !validate.CloseTo(1.0, sum, massFractionTolerance) {
			m.Components = m.Components[:len(m.Components)-1]
			return m.invalid("mass fractions sum to %g, expected 1", sum)
		}
	}
	return nil
}

func (m *Material) checkAdd(element *Element, mode compositionMode) error {
	if element == nil {
		return m.invalid("nil element")
	}
	if m.Done() {
		return m.invalid("all %d declared components already added", m.declared)
	}
	if m.mode != modeUnset && m.mode != mode {
		return m.invalid("cannot mix atom counts and mass fractions")
	}
	for _, c := range m.Components {
		if c.Element.Symbol == element.Symbol {
			return m.invalid("element %s added twice", element.Symbol)
		}
	}
	m.mode = mode
	return nil
}

func (m *Material) invalid(message string, values ...interface{}) error {
	return fmt.Errorf("material %q: %s: %w", m.Name, fmt.Sprintf(message, values...), errors.ErrInvalid)
}

func symbolOf(element *Element) string {
	if element == nil {
		return "<nil>"
	}
	return element.Symbol
}

// Done reports whether all declared components were added.
func (m *Material) Done() bool {
	return len(m.Components) == m.declared
}

// DeclaredComponents ...
func (m *Material) DeclaredComponents() int {
	return m.declared
}

// ByAtoms reports whether the composition is given by atom counts.
func (m *Material) ByAtoms() bool {
	return m.mode == modeAtoms
}

// AtomCounts returns atoms per formula unit, or nil for mass fraction materials.
func (m *Material) AtomCounts() []int {
	if !m.ByAtoms() {
		return nil
	}
	counts := make([]int, len(m.Components))
	for i, c := range m.Components {
		counts[i] = c.Atoms
	}
	return counts
}

// MassFractions returns fraction of mass per component, summing to 1.
func (m *Material) MassFractions() []float64 {
	fractions := make([]float64, len(m.Components))
	if !m.ByAtoms() {
		for i, c := range m.Components {
			fractions[i] = c.MassFraction
		}
		return fractions
	}
	total := m.MolarMass()
	for i, c := range m.Components {
		fractions[i] = float64(c.Atoms) * c.Element.MolarMass / total
	}
	return fractions
}

// MolarMass returns mass of formula unit for atom count materials, or the
// mean molar mass 1/sum(w_i/A_i) for mass fraction materials.
func (m *Material) MolarMass() float64 {
	if m.ByAtoms() {
		sum := 0.0
		for _, c := range m.Components {
			sum += float64(c.Atoms) * c.Element.MolarMass
		}
		return sum
	}
	inverse := 0.0
	for _, c := range m.Components {
		inverse += c.MassFraction / c.Element.MolarMass
	}
	if inverse == 0.0 {
		return 0.0
	}
	return 1.0 / inverse
}

// AtomsPerVolume returns number density of each component, rho*N_A*w_i/A_i.
func (m *Material) AtomsPerVolume() []float64 {
	fractions := m.MassFractions()
	densities := make([]float64, len(m.Components))
	for i, c := range m.Components {
		densities[i] = m.Density * units.Avogadro * fractions[i] / c.Element.MolarMass
	}
	return densities
}

// TotalAtomsPerVolume ...
func (m *Material) TotalAtomsPerVolume() float64 {
	total := 0.0
	for _, n := range m.AtomsPerVolume() {
		total += n
	}
	return total
}

// DensityFromComposition rebuilds bulk density from per-element number densities.
func (m *Material) DensityFromComposition() float64 {
	sum := 0.0
	for i, n := range m.AtomsPerVolume() {
		sum += n * m.Components[i].Element.MolarMass
	}
	return sum / units.Avogadro
}

// Equal compares definitions, including element values.
func (m *Material) Equal(other *Material) bool {
	if m == nil || other == nil {
		return m == other
	}
	return reflect.DeepEqual(*m, *other)
}

// String ...
func (m *Material) String() string {
	return fmt.Sprintf("%s (%g g/cm3, %s, %d elements)",
		m.Name, units.In(m.Density, units.GramPerCm3), m.State, len(m.Components))
}
