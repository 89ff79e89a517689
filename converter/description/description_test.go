package description

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanc4-git/B1/construction"
	"github.com/hanc4-git/B1/geometry"
	"github.com/hanc4-git/B1/material"
	"github.com/hanc4-git/B1/test"
	"github.com/hanc4-git/B1/volume"
)

var testCases = test.MarshallingCases{
	{
		&Solid{BoxSolid{Name: "Detector", HalfLengths: geometry.Vec3D{X: 10, Y: 10, Z: 10}}},
		`{"type": "box", "name": "Detector", "halfLengths": {"x": 10, "y": 10, "z": 10}}`,
	},
	{
		&Volume{
			Name:     "World",
			Material: "G4_AIR",
			Solid:    Solid{BoxSolid{Name: "World", HalfLengths: geometry.Vec3D{X: 50, Y: 50, Z: 50}}},
			Daughters: []Volume{{
				Name:        "Detector",
				Translation: geometry.Vec3D{Z: 20},
				Material:    "Detector",
				Solid:       Solid{BoxSolid{Name: "Detector", HalfLengths: geometry.Vec3D{X: 10, Y: 10, Z: 10}}},
			}},
		},
		`{
			"name": "World",
			"copyNo": 0,
			"translation": {"x": 0, "y": 0, "z": 0},
			"material": "G4_AIR",
			"solid": {"type": "box", "name": "World", "halfLengths": {"x": 50, "y": 50, "z": 50}},
			"daughters": [{
				"name": "Detector",
				"copyNo": 0,
				"translation": {"x": 0, "y": 0, "z": 20},
				"material": "Detector",
				"solid": {"type": "box", "name": "Detector", "halfLengths": {"x": 10, "y": 10, "z": 10}}
			}]
		}`,
	},
	{
		&Material{
			Name:    "Detector",
			Density: 4.42,
			State:   material.Solid,
			Elements: []Element{
				{Name: "Lead", Symbol: "Pb", Z: 82, MolarMass: 207.2},
				{Name: "Bromine", Symbol: "Br", Z: 35, MolarMass: 79.904},
			},
			Components: []Component{
				{Symbol: "Pb", Atoms: 1},
				{Symbol: "Br", Atoms: 2},
			},
		},
		`{
			"name": "Detector",
			"density": 4.42,
			"state": "solid",
			"elements": [
				{"name": "Lead", "symbol": "Pb", "z": 82, "molarMass": 207.2},
				{"name": "Bromine", "symbol": "Br", "z": 35, "molarMass": 79.904}
			],
			"components": [
				{"symbol": "Pb", "atoms": 1},
				{"symbol": "Br", "atoms": 2}
			]
		}`,
	},
}

func TestMarshal(t *testing.T) {
	test.Marshal(t, testCases)
}

func TestUnmarshal(t *testing.T) {
	test.Unmarshal(t, testCases)
}

func TestUnmarshalMarshalled(t *testing.T) {
	test.UnmarshalMarshalled(t, testCases)
}

func TestMarshalUnmarshalled(t *testing.T) {
	test.MarshalUnmarshalled(t, testCases)
}

func TestUnknownSolidType(t *testing.T) {
	var solid Solid
	err := json.Unmarshal([]byte(`{"type": "torus", "name": "Donut"}`), &solid)
	assert.Error(t, err)
}

func TestFromGeometry(t *testing.T) {
	world, err := construction.NewB1(construction.DefaultParams()).
		Construct(material.NewManager(), volume.NewStore())
	require.NoError(t, err)

	setup, err := FromGeometry(world)
	require.NoError(t, err)

	t.Run("Materials", func(t *testing.T) {
		require.Len(t, setup.Materials, 2)

		air := setup.Materials[0]
		assert.Equal(t, "G4_AIR", air.Name)
		assert.True(t, air.NIST)
		assert.Equal(t, material.Gas, air.State)
		assert.InEpsilon(t, 0.00120479, air.Density, 1e-9)
		assert.Len(t, air.Components, 4)

		detector := setup.Materials[1]
		assert.Equal(t, Material{
			Name:    "Detector",
			Density: 4.42,
			State:   material.Solid,
			Elements: []Element{
				{Name: "Caesium", Symbol: "Cs", Z: 55, MolarMass: 132.90545},
				{Name: "Lead", Symbol: "Pb", Z: 82, MolarMass: 207.2},
				{Name: "Bromine", Symbol: "Br", Z: 35, MolarMass: 79.904},
			},
			Components: []Component{
				{Symbol: "Cs", Atoms: 1},
				{Symbol: "Pb", Atoms: 1},
				{Symbol: "Br", Atoms: 3},
			},
		}, detector)
	})

	t.Run("World", func(t *testing.T) {
		assert.Equal(t, Volume{
			Name:        "World",
			Translation: geometry.Vec3D{},
			Material:    "G4_AIR",
			Solid:       Solid{BoxSolid{Name: "World", HalfLengths: geometry.Vec3D{X: 50, Y: 50, Z: 50}}},
			Daughters: []Volume{{
				Name:        "Detector",
				Translation: geometry.Vec3D{Z: 20},
				Material:    "Detector",
				Solid:       Solid{BoxSolid{Name: "Detector", HalfLengths: geometry.Vec3D{X: 10, Y: 10, Z: 10}}},
			}},
		}, setup.World)
	})

	t.Run("Files", func(t *testing.T) {
		files, err := Files(world)
		require.NoError(t, err)

		var decoded Setup
		require.NoError(t, json.Unmarshal([]byte(files[FileName]), &decoded))
		if diff := test.DiffModel(t, setup, decoded); diff != "" {
			t.Errorf("actual != expected\n%s", diff)
		}
	})

	t.Run("NoWorld", func(t *testing.T) {
		_, err := FromGeometry(nil)
		assert.Error(t, err)
	})
}
