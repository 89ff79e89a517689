package run

import (
	"github.com/hanc4-git/B1/converter/description"
	"github.com/hanc4-git/B1/converter/shield"
	"github.com/hanc4-git/B1/volume"
)

// Backend renders constructed geometry into input files of one consumer.
type Backend interface {
	Name() string

	Files(world *volume.PhysicalVolume) (map[string]string, error)
}

var supportedBackends = []Backend{shieldHIT12A{}, jsonDescription{}}

// BackendNames lists supported backends.
func BackendNames() []string {
	names := []string{}
	for _, backend := range supportedBackends {
		names = append(names, backend.Name())
	}
	return names
}

type shieldHIT12A struct{}

func (shieldHIT12A) Name() string {
	return "shield"
}

func (shieldHIT12A) Files(world *volume.PhysicalVolume) (map[string]string, error) {
	setup, context, err := shield.Convert(world)
	if err != nil {
		return nil, err
	}
	for _, line := range context.Lines() {
		logger.Debugf("SHIELD-HIT12A %s", line)
	}
	return setup.Files(), nil
}

type jsonDescription struct{}

func (jsonDescription) Name() string {
	return "json"
}

func (jsonDescription) Files(world *volume.PhysicalVolume) (map[string]string, error) {
	return description.Files(world)
}
