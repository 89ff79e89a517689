package volume

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanc4-git/B1/errors"
	"github.com/hanc4-git/B1/geometry"
	"github.com/hanc4-git/B1/material"
	"github.com/hanc4-git/B1/units"
)

type fixture struct {
	store    *Store
	air      *material.Material
	lead     *material.Material
	world    *PhysicalVolume
	logWorld *LogicalVolume
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	materials := material.NewManager()
	air, err := materials.FindOrBuildMaterial("G4_AIR")
	require.NoError(t, err)
	lead, err := materials.FindOrBuildMaterial("G4_Pb")
	require.NoError(t, err)

	store := NewStore()
	logWorld := newCube(t, store, "World", 100*units.Mm, air)
	world, err := store.Place(PlacementOptions{Name: "World", Logical: logWorld, CheckOverlaps: true})
	require.NoError(t, err)

	return fixture{store: store, air: air, lead: lead, world: world, logWorld: logWorld}
}

func newCube(t *testing.T, store *Store, name string, size float64, mat *material.Material) *LogicalVolume {
	t.Helper()
	box, err := NewBox(name, size/2, size/2, size/2)
	require.NoError(t, err)
	lv, err := store.NewLogicalVolume(box, mat, name)
	require.NoError(t, err)
	return lv
}

func TestNewBox(t *testing.T) {
	box, err := NewBox("Detector", 10, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, "Detector", box.Name())
	assert.Equal(t, 8000.0, box.CubicVolume())
	assert.Equal(t, geometry.Extent{
		Min: geometry.Point{X: -10, Y: -10, Z: -10},
		Max: geometry.Point{X: 10, Y: 10, Z: 10},
	}, box.Extent())

	_, err = NewBox("Flat", 10, 0, 10)
	assert.True(t, errors.Is(err, errors.ErrInvalid))

	_, err = NewBox("NaN", math.NaN(), 10, 10)
	assert.True(t, errors.Is(err, errors.ErrInvalid))

	_, err = NewBox("Infinite", 10, 10, math.Inf(1))
	assert.True(t, errors.Is(err, errors.ErrInvalid))
}

func TestNewLogicalVolumeRequiresSolidAndMaterial(t *testing.T) {
	store := NewStore()
	box, err := NewBox("Box", 1, 1, 1)
	require.NoError(t, err)

	_, err = store.NewLogicalVolume(nil, &material.Material{}, "NoSolid")
	assert.True(t, errors.Is(err, errors.ErrInvalid))

	_, err = store.NewLogicalVolume(box, nil, "NoMaterial")
	assert.True(t, errors.Is(err, errors.ErrInvalid))
}

func TestPlace(t *testing.T) {
	t.Run("Contained", func(t *testing.T) {
		f := newFixture(t)
		detector := newCube(t, f.store, "Detector", 20*units.Mm, f.lead)

		pv, err := f.store.Place(PlacementOptions{
			Name: "Detector", Logical: detector, Mother: f.logWorld,
			Translation: geometry.Vec3D{Z: 20 * units.Mm}, CheckOverlaps: true,
		})

		require.NoError(t, err)
		assert.False(t, pv.IsWorld())
		assert.Equal(t, []*PhysicalVolume{pv}, f.logWorld.Daughters)
		assert.Same(t, f.world, f.store.World())
		assert.Len(t, f.store.PhysicalVolumes(), 2)
		assert.Len(t, f.store.LogicalVolumes(), 2)
	})

	t.Run("Protrudes", func(t *testing.T) {
		f := newFixture(t)
		detector := newCube(t, f.store, "Detector", 20*units.Mm, f.lead)

		_, err := f.store.Place(PlacementOptions{
			Name: "Detector", Logical: detector, Mother: f.logWorld,
			Translation: geometry.Vec3D{Z: 45 * units.Mm}, CheckOverlaps: true,
		})

		assert.True(t, errors.Is(err, errors.ErrOverlap))
		assert.Contains(t, err.Error(), "by 5 mm")
		assert.Empty(t, f.logWorld.Daughters)
	})

	t.Run("ProtrudesWithoutCheck", func(t *testing.T) {
		f := newFixture(t)
		detector := newCube(t, f.store, "Detector", 200*units.Mm, f.lead)

		_, err := f.store.Place(PlacementOptions{
			Name: "Detector", Logical: detector, Mother: f.logWorld,
		})

		assert.NoError(t, err)
		assert.Len(t, f.logWorld.Daughters, 1)
	})

	t.Run("SiblingOverlap", func(t *testing.T) {
		f := newFixture(t)
		detector := newCube(t, f.store, "Detector", 20*units.Mm, f.lead)
		place := func(copyNo int, x float64) error {
			_, err := f.store.Place(PlacementOptions{
				Name: "Detector", Logical: detector, Mother: f.logWorld, CopyNo: copyNo,
				Translation: geometry.Vec3D{X: x}, CheckOverlaps: true,
			})
			return err
		}

		require.NoError(t, place(0, 0))
		assert.NoError(t, place(1, 20*units.Mm), "touching faces")
		assert.True(t, errors.Is(place(2, 30*units.Mm), errors.ErrOverlap))
		assert.Len(t, f.logWorld.Daughters, 2)
	})

	t.Run("NaNTranslation", func(t *testing.T) {
		f := newFixture(t)
		detector := newCube(t, f.store, "Detector", 20*units.Mm, f.lead)

		for _, check := range []bool{true, false} {
			_, err := f.store.Place(PlacementOptions{
				Name: "Detector", Logical: detector, Mother: f.logWorld,
				Translation: geometry.Vec3D{Z: math.NaN()}, CheckOverlaps: check,
			})
			assert.True(t, errors.Is(err, errors.ErrInvalid))
		}
		assert.Empty(t, f.logWorld.Daughters)
	})

	t.Run("SecondWorld", func(t *testing.T) {
		f := newFixture(t)
		other := newCube(t, f.store, "Other", 10*units.Mm, f.air)

		_, err := f.store.Place(PlacementOptions{Name: "Other", Logical: other})
		assert.True(t, errors.Is(err, errors.ErrDuplicate))
	})

	t.Run("InsideItself", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.store.Place(PlacementOptions{Name: "Loop", Logical: f.logWorld, Mother: f.logWorld})
		assert.True(t, errors.Is(err, errors.ErrInvalid))
	})
}

func TestStoreLookupAndClean(t *testing.T) {
	f := newFixture(t)

	pv, found := f.store.Physical("World")
	assert.True(t, found)
	assert.Same(t, f.world, pv)
	lv, found := f.store.Logical("World")
	assert.True(t, found)
	assert.Same(t, f.logWorld, lv)
	_, found = f.store.Physical("Detector")
	assert.False(t, found)

	f.store.Clean()

	assert.Nil(t, f.store.World())
	assert.Empty(t, f.store.PhysicalVolumes())
	assert.Empty(t, f.store.LogicalVolumes())
}

func TestWalk(t *testing.T) {
	f := newFixture(t)
	shell := newCube(t, f.store, "Shell", 40*units.Mm, f.air)
	core := newCube(t, f.store, "Core", 10*units.Mm, f.lead)
	_, err := f.store.Place(PlacementOptions{
		Name: "Shell", Logical: shell, Mother: f.logWorld,
		Translation: geometry.Vec3D{Z: 5 * units.Mm}, CheckOverlaps: true,
	})
	require.NoError(t, err)
	_, err = f.store.Place(PlacementOptions{
		Name: "Core", Logical: core, Mother: shell,
		Translation: geometry.Vec3D{X: 5 * units.Mm}, CheckOverlaps: true,
	})
	require.NoError(t, err)

	type visit struct {
		Name   string
		Global geometry.Vec3D
		Depth  int
	}
	visits := []visit{}
	err = Walk(f.world, func(pv *PhysicalVolume, global geometry.Vec3D, depth int) error {
		visits = append(visits, visit{pv.Name, global, depth})
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []visit{
		{"World", geometry.Vec3D{}, 0},
		{"Shell", geometry.Vec3D{Z: 5}, 1},
		{"Core", geometry.Vec3D{X: 5, Z: 5}, 2},
	}, visits)
	assert.Equal(t, []*material.Material{f.air, f.lead}, UsedMaterials(f.world))
}
