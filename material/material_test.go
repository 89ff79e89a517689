package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanc4-git/B1/errors"
	"github.com/hanc4-git/B1/units"
)

func mustElement(t *testing.T, name, symbol string, z int, molarMass float64) *Element {
	t.Helper()
	element, err := NewElement(name, symbol, z, molarMass*units.GramPerMole)
	require.NoError(t, err)
	return element
}

func newCsPbBr3(t *testing.T) *Material {
	t.Helper()
	mat, err := NewMaterial("Detector", 4.42*units.GramPerCm3, 3, Solid)
	require.NoError(t, err)
	require.NoError(t, mat.AddElementByAtoms(mustElement(t, "Caesium", "Cs", 55, 132.90545), 1))
	require.NoError(t, mat.AddElementByAtoms(mustElement(t, "Lead", "Pb", 82, 207.2), 1))
	require.NoError(t, mat.AddElementByAtoms(mustElement(t, "Bromine", "Br", 35, 79.904), 3))
	return mat
}

func TestNewElement(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		element, err := NewElement("Lead", "Pb", 82, 207.2*units.GramPerMole)

		require.NoError(t, err)
		assert.Equal(t, &Element{Name: "Lead", Symbol: "Pb", Z: 82, MolarMass: 207.2}, element)
		assert.Equal(t, "Lead (Pb, Z=82, A=207.2 g/mole)", element.String())
	})

	for name, args := range map[string]struct {
		z         int
		molarMass float64
	}{
		"ZeroZ":          {0, 1.0},
		"ZTooLarge":      {119, 1.0},
		"ZeroMolarMass":  {1, 0.0},
		"NegativeMolarM": {1, -1.0},
		"NaNMolarMass":   {1, math.NaN()},
		"InfMolarMass":   {1, math.Inf(1)},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewElement("X", "X", args.z, args.molarMass)
			assert.True(t, errors.Is(err, errors.ErrInvalid))
		})
	}
}

func TestMaterialByAtoms(t *testing.T) {
	mat := newCsPbBr3(t)

	t.Run("Composition", func(t *testing.T) {
		assert.True(t, mat.Done())
		assert.True(t, mat.ByAtoms())
		assert.Equal(t, []int{1, 1, 3}, mat.AtomCounts())
		assert.InDelta(t, 132.90545+207.2+3*79.904, mat.MolarMass()/units.GramPerMole, 1e-9)
	})

	t.Run("MassFractionsSumToOne", func(t *testing.T) {
		fractions := mat.MassFractions()
		sum := 0.0
		for _, w := range fractions {
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-12)
		assert.InDelta(t, 207.2/579.81745, fractions[1], 1e-9)
	})

	t.Run("DensityFromComposition", func(t *testing.T) {
		assert.InEpsilon(t, mat.Density, mat.DensityFromComposition(), 1e-9)
	})

	t.Run("AtomsPerVolume", func(t *testing.T) {
		perVolume := mat.AtomsPerVolume()
		// Br atoms are three times as many as Cs atoms.
		assert.InEpsilon(t, 3.0, perVolume[2]/perVolume[0], 1e-12)
		assert.InEpsilon(t, 5*perVolume[0], mat.TotalAtomsPerVolume(), 1e-12)
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "Detector (4.42 g/cm3, solid, 3 elements)", mat.String())
	})
}

func TestMaterialErrors(t *testing.T) {
	lead := mustElement(t, "Lead", "Pb", 82, 207.2)
	bromine := mustElement(t, "Bromine", "Br", 35, 79.904)

	t.Run("InvalidDefinition", func(t *testing.T) {
		_, err := NewMaterial("", 0.0, 0, Solid)
		assert.True(t, errors.Is(err, errors.ErrInvalid))
	})

	t.Run("NonFiniteDensity", func(t *testing.T) {
		for _, density := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := NewMaterial("PbBr", density, 1, Solid)
			assert.True(t, errors.Is(err, errors.ErrInvalid), "density %g", density)
		}
	})

	t.Run("TooManyComponents", func(t *testing.T) {
		mat, err := NewMaterial("PbBr", 1.0, 1, Solid)
		require.NoError(t, err)
		require.NoError(t, mat.AddElementByAtoms(lead, 1))

		err = mat.AddElementByAtoms(bromine, 1)
		assert.True(t, errors.Is(err, errors.ErrInvalid))
		assert.Len(t, mat.Components, 1)
	})

	t.Run("DuplicateElement", func(t *testing.T) {
		mat, err := NewMaterial("PbPb", 1.0, 2, Solid)
		require.NoError(t, err)
		require.NoError(t, mat.AddElementByAtoms(lead, 1))

		assert.True(t, errors.Is(mat.AddElementByAtoms(lead, 1), errors.ErrInvalid))
	})

	t.Run("MixedModes", func(t *testing.T) {
		mat, err := NewMaterial("PbBr", 1.0, 2, Solid)
		require.NoError(t, err)
		require.NoError(t, mat.AddElementByAtoms(lead, 1))

		assert.True(t, errors.Is(mat.AddElementByMassFraction(bromine, 0.5), errors.ErrInvalid))
	})

	t.Run("ZeroAtoms", func(t *testing.T) {
		mat, err := NewMaterial("PbBr", 1.0, 2, Solid)
		require.NoError(t, err)

		assert.True(t, errors.Is(mat.AddElementByAtoms(lead, 0), errors.ErrInvalid))
	})

	t.Run("MassFractionsNotNormalized", func(t *testing.T) {
		mat, err := NewMaterial("PbBr", 1.0, 2, Solid)
		require.NoError(t, err)
		require.NoError(t, mat.AddElementByMassFraction(lead, 0.5))

		err = mat.AddElementByMassFraction(bromine, 0.4)
		assert.True(t, errors.Is(err, errors.ErrInvalid))
		assert.False(t, mat.Done())

		assert.NoError(t, mat.AddElementByMassFraction(bromine, 0.5))
		assert.True(t, mat.Done())
	})
}

func TestMaterialEqual(t *testing.T) {
	assert.True(t, newCsPbBr3(t).Equal(newCsPbBr3(t)))

	denser := newCsPbBr3(t)
	denser.Density *= 2
	assert.False(t, newCsPbBr3(t).Equal(denser))
}

func TestState(t *testing.T) {
	for _, state := range []State{Solid, Liquid, Gas, Undefined} {
		text, err := state.MarshalText()
		require.NoError(t, err)

		var actual State
		require.NoError(t, actual.UnmarshalText(text))
		assert.Equal(t, state, actual)
	}

	var state State
	assert.Error(t, state.UnmarshalText([]byte("plasma")))
	assert.Equal(t, "undefined", Undefined.String())
}
