// Package volume implements solids, logical volumes and their placements.
package volume

import (
	"fmt"

	"github.com/hanc4-git/B1/errors"
	"github.com/hanc4-git/B1/geometry"
	"github.com/hanc4-git/B1/validate"
)

// Solid is a shape defined in its own frame, centered at the origin.
type Solid interface {
	Name() string
	Extent() geometry.Extent
	CubicVolume() float64
}

// Box is a cuboid given by half-lengths along x, y and z.
type Box struct {
	name string
	half geometry.Vec3D
}

// NewBox creates box with the given half-lengths.
func NewBox(name string, halfX, halfY, halfZ float64) (*Box, error) {
	fieldErr := errors.NewFieldError()
	for axis, half := range map[string]float64{"x": halfX, "y": halfY, "z": halfZ} {
		if !(half > 0.0) || !validate.Finite(half) {
			fieldErr.Add(axis, "half-length must be finite and > 0.0")
		}
	}
	if err := fieldErr.OrNil(); err != nil {
		return nil, fmt.Errorf("box %q: %w", name, err)
	}
	return &Box{name: name, half: geometry.Vec3D{X: halfX, Y: halfY, Z: halfZ}}, nil
}

// Name ...
func (b *Box) Name() string {
	return b.name
}

// HalfLengths ...
func (b *Box) HalfLengths() geometry.Vec3D {
	return b.half
}

// Extent ...
func (b *Box) Extent() geometry.Extent {
	return geometry.NewExtent(geometry.Origin, b.half)
}

// CubicVolume ...
func (b *Box) CubicVolume() float64 {
	return 8.0 * b.half.X * b.half.Y * b.half.Z
}
