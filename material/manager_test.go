package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanc4-git/B1/errors"
	"github.com/hanc4-git/B1/units"
)

func TestFindOrBuildMaterial(t *testing.T) {
	t.Run("Air", func(t *testing.T) {
		manager := NewManager()

		air, err := manager.FindOrBuildMaterial("G4_AIR")

		require.NoError(t, err)
		assert.True(t, air.NIST)
		assert.Equal(t, Gas, air.State)
		assert.Equal(t, 85.7, air.IValue)
		assert.InEpsilon(t, 1.20479*units.MilligramPerCm3, air.Density, 1e-12)
		assert.Len(t, air.Components, 4)
		assert.False(t, air.ByAtoms())
		assert.InEpsilon(t, air.Density, air.DensityFromComposition(), 1e-9)

		again, err := manager.FindOrBuildMaterial("G4_AIR")
		require.NoError(t, err)
		assert.Same(t, air, again)
	})

	t.Run("EveryPredefinedMaterialBuilds", func(t *testing.T) {
		manager := NewManager()
		for _, name := range NISTMaterialNames() {
			mat, err := manager.FindOrBuildMaterial(name)
			require.NoError(t, err, name)
			assert.True(t, mat.Done(), name)
		}
		assert.Len(t, manager.Materials(), len(NISTMaterialNames()))
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := NewManager().FindOrBuildMaterial("G4_UNOBTAINIUM")
		assert.True(t, errors.Is(err, errors.ErrNotFound))
	})
}

func TestFindOrBuildElement(t *testing.T) {
	manager := NewManager()

	lead, err := manager.FindOrBuildElement("Pb")
	require.NoError(t, err)
	assert.Equal(t, 82, lead.Z)

	again, err := manager.FindOrBuildElement("Pb")
	require.NoError(t, err)
	assert.Same(t, lead, again)

	_, err = manager.FindOrBuildElement("Xx")
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	for _, symbol := range NISTElementSymbols() {
		element, err := manager.FindOrBuildElement(symbol)
		require.NoError(t, err, symbol)
		assert.Equal(t, symbol, element.Symbol)
	}
}

func TestAddMaterial(t *testing.T) {
	t.Run("RegistrationOrder", func(t *testing.T) {
		manager := NewManager()
		air, err := manager.FindOrBuildMaterial("G4_AIR")
		require.NoError(t, err)
		detector := newCsPbBr3(t)

		require.NoError(t, manager.AddMaterial(detector))

		assert.Equal(t, []*Material{air, detector}, manager.Materials())
		found, ok := manager.Material("Detector")
		assert.True(t, ok)
		assert.Same(t, detector, found)
	})

	t.Run("Duplicate", func(t *testing.T) {
		manager := NewManager()
		require.NoError(t, manager.AddMaterial(newCsPbBr3(t)))

		err := manager.AddMaterial(newCsPbBr3(t))
		assert.True(t, errors.Is(err, errors.ErrDuplicate))
	})

	t.Run("ShadowsPredefined", func(t *testing.T) {
		mat := newCsPbBr3(t)
		mat.Name = "G4_WATER"

		err := NewManager().AddMaterial(mat)
		assert.True(t, errors.Is(err, errors.ErrDuplicate))
	})

	t.Run("Incomplete", func(t *testing.T) {
		mat, err := NewMaterial("Half", 1.0, 2, Solid)
		require.NoError(t, err)

		err = NewManager().AddMaterial(mat)
		assert.True(t, errors.Is(err, errors.ErrInvalid))
	})
}

func TestRegisterOrReuse(t *testing.T) {
	manager := NewManager()
	first, err := manager.RegisterOrReuse(newCsPbBr3(t))
	require.NoError(t, err)

	t.Run("IdenticalDefinition", func(t *testing.T) {
		second, err := manager.RegisterOrReuse(newCsPbBr3(t))

		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Len(t, manager.Materials(), 1)
	})

	t.Run("DifferentDefinition", func(t *testing.T) {
		changed := newCsPbBr3(t)
		changed.Density = 5.0 * units.GramPerCm3

		_, err := manager.RegisterOrReuse(changed)
		assert.True(t, errors.Is(err, errors.ErrDuplicate))
	})
}
