package material

import (
	"fmt"

	"github.com/hanc4-git/B1/errors"
	"github.com/hanc4-git/B1/log"
	"github.com/hanc4-git/B1/units"
)

var logger = log.NamedLogger("material")

// Manager is the material table: elements and materials known to one geometry.
// It is not safe for concurrent use.
type Manager struct {
	elements        map[string]*Element
	materials       []*Material
	materialsByName map[string]*Material
}

// NewManager constructor.
func NewManager() *Manager {
	return &Manager{
		elements:        map[string]*Element{},
		materialsByName: map[string]*Material{},
	}
}

// FindOrBuildElement returns predefined element with the given symbol.
func (m *Manager) FindOrBuildElement(symbol string) (*Element, error) {
	if element, found := m.elements[symbol]; found {
		return element, nil
	}
	def, found := nistElements[symbol]
	if !found {
		return nil, fmt.Errorf("element %q: %w", symbol, errors.ErrNotFound)
	}
	element, err := NewElement(def.name, symbol, def.z, def.molarMass*units.GramPerMole)
	if err != nil {
		return nil, err
	}
	m.elements[symbol] = element
	return element, nil
}

// FindOrBuildMaterial returns material registered under name, building it
// from the predefined table on first use.
func (m *Manager) FindOrBuildMaterial(name string) (*Material, error) {
	if mat, found := m.materialsByName[name]; found {
		return mat, nil
	}
	def, found := nistMaterials[name]
	if !found {
		return nil, fmt.Errorf("material %q: %w", name, errors.ErrNotFound)
	}

	mat, err := NewMaterial(name, def.density, len(def.components), def.state)
	if err != nil {
		return nil, err
	}
	mat.IValue = def.iValue
	mat.NIST = true
	for _, c := range def.components {
		element, err := m.FindOrBuildElement(c.symbol)
		if err != nil {
			return nil, err
		}
		if c.atoms > 0 {
			err = mat.AddElementByAtoms(element, c.atoms)
		} else {
			err = mat.AddElementByMassFraction(element, c.fraction)
		}
		if err != nil {
			return nil, err
		}
	}

	logger.Debugf("Built predefined material %s", mat)
	m.register(mat)
	return mat, nil
}

// AddMaterial registers a complete user defined material under its name.
func (m *Manager) AddMaterial(mat *Material) error {
	if mat == nil {
		return fmt.Errorf("nil material: %w", errors.ErrInvalid)
	}
	if !mat.Done() {
		return fmt.Errorf("material %q: %d of %d components defined: %w",
			mat.Name, len(mat.Components), mat.DeclaredComponents(), errors.ErrInvalid)
	}
	if _, found := m.materialsByName[mat.Name]; found {
		return fmt.Errorf("material %q: %w", mat.Name, errors.ErrDuplicate)
	}
	if _, found := nistMaterials[mat.Name]; found {
		return fmt.Errorf("material %q shadows predefined material: %w", mat.Name, errors.ErrDuplicate)
	}
	logger.Debugf("Registered material %s", mat)
	m.register(mat)
	return nil
}

// RegisterOrReuse registers mat, or returns the already registered material
// with the same name if both definitions are identical.
func (m *Manager) RegisterOrReuse(mat *Material) (*Material, error) {
	if existing, found := m.materialsByName[mat.Name]; found {
		if !existing.Equal(mat) {
			return nil, fmt.Errorf("material %q redefined with different properties: %w",
				mat.Name, errors.ErrDuplicate)
		}
		return existing, nil
	}
	if err := m.AddMaterial(mat); err != nil {
		return nil, err
	}
	return mat, nil
}

func (m *Manager) register(mat *Material) {
	m.materials = append(m.materials, mat)
	m.materialsByName[mat.Name] = mat
}

// Material returns registered material.
func (m *Manager) Material(name string) (*Material, bool) {
	mat, found := m.materialsByName[name]
	return mat, found
}

// Materials returns registered materials in registration order.
func (m *Manager) Materials() []*Material {
	return append([]*Material(nil), m.materials...)
}
