// Package run drives detector construction and hands the finished geometry
// to export backends.
package run

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hanc4-git/B1/construction"
	"github.com/hanc4-git/B1/errors"
	"github.com/hanc4-git/B1/geometry"
	"github.com/hanc4-git/B1/log"
	"github.com/hanc4-git/B1/material"
	"github.com/hanc4-git/B1/units"
	"github.com/hanc4-git/B1/volume"
)

var logger = log.NamedLogger("run")

// Manager owns the material table and volume store for the whole run.
type Manager struct {
	detectorConstruction construction.DetectorConstruction

	materials *material.Manager
	store     *volume.Store
	world     *volume.PhysicalVolume
}

// NewManager constructor.
func NewManager() *Manager {
	return &Manager{
		materials: material.NewManager(),
		store:     volume.NewStore(),
	}
}

// SetUserInitialization sets the detector construction used by Initialize.
func (m *Manager) SetUserInitialization(dc construction.DetectorConstruction) {
	m.detectorConstruction = dc
}

// Initialize builds geometry. Calling it again rebuilds geometry into a clean
// volume store, keeping already defined materials. A failed build leaves the
// store empty.
func (m *Manager) Initialize() error {
	if m.detectorConstruction == nil {
		return fmt.Errorf("detector construction not set: %w", errors.ErrNotFound)
	}
	logger.Debug("Cleaning geometry store before building")
	m.store.Clean()
	m.world = nil

	world, err := m.detectorConstruction.Construct(m.materials, m.store)
	if err != nil {
		m.store.Clean()
		return fmt.Errorf("construct geometry: %w", err)
	}
	if world == nil || !world.IsWorld() {
		m.store.Clean()
		return fmt.Errorf("construction must return the world placement: %w", errors.ErrInvalid)
	}
	m.world = world

	for _, line := range Summary(world) {
		logger.Info(line)
	}
	return nil
}

// World returns constructed world, nil before Initialize.
func (m *Manager) World() *volume.PhysicalVolume {
	return m.world
}

// Materials ...
func (m *Manager) Materials() *material.Manager {
	return m.materials
}

// Store ...
func (m *Manager) Store() *volume.Store {
	return m.store
}

// Export renders files with the named backend and writes them to dir.
// Returns written paths in sorted order.
func (m *Manager) Export(backendName, dir string) ([]string, error) {
	if m.world == nil {
		return nil, fmt.Errorf("geometry not initialized: %w", errors.ErrNotFound)
	}
	backend, err := findBackend(backendName)
	if err != nil {
		return nil, err
	}

	files, err := backend.Files(m.world)
	if err != nil {
		return nil, fmt.Errorf("%s backend: %w", backend.Name(), err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	written := []string{}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0o644); err != nil {
			return written, err
		}
		logger.Infof("Written %s", path)
		written = append(written, path)
	}
	return written, nil
}

func findBackend(name string) (Backend, error) {
	for _, backend := range supportedBackends {
		if backend.Name() == name {
			return backend, nil
		}
	}
	return nil, fmt.Errorf("backend %q: %w", name, errors.ErrNotFound)
}

// Summary describes each placement on one line, indented by depth.
func Summary(world *volume.PhysicalVolume) []string {
	lines := []string{}
	_ = volume.Walk(world, func(pv *volume.PhysicalVolume, global geometry.Vec3D, depth int) error {
		extent := pv.Logical.Solid.Extent()
		size := extent.Size().Scale(1.0 / units.Mm)
		lines = append(lines, fmt.Sprintf("%*s%s:%d %gx%gx%g mm at (%g, %g, %g) mm, %s",
			2*depth, "", pv.Name, pv.CopyNo,
			size.X, size.Y, size.Z,
			units.In(global.X, units.Mm), units.In(global.Y, units.Mm), units.In(global.Z, units.Mm),
			pv.Logical.Material))
		return nil
	})
	return lines
}
