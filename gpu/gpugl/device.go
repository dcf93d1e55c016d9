// Package gpugl implements the gpu interfaces on OpenGL 4.1 core.
//
// All calls must happen on the thread that owns the current GL context.
// Command buffers record closures and run them on Commit.
package gpugl

import (
	"github.com/bloeys/texcube/buffers"
	"github.com/bloeys/texcube/gpu"
	"github.com/bloeys/texcube/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

const (
	minMajorVersion = 4
	minMinorVersion = 1
)

var logger = logging.New("gpugl")

var _ gpu.Device = &Device{}

type Device struct {
	name     string
	released bool
}

// NewDevice loads the GL function pointers of the current context.
// A GL context must be current on the calling thread.
func NewDevice() (*Device, error) {

	if err := gl.Init(); err != nil {
		return nil, errors.Wrapf(gpu.ErrNoDevice, "initializing OpenGL: %v", err)
	}

	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	if major < minMajorVersion || (major == minMajorVersion && minor < minMinorVersion) {
		return nil, errors.Wrapf(gpu.ErrNoDevice, "OpenGL %d.%d is required but the context is %d.%d", minMajorVersion, minMinorVersion, major, minor)
	}

	d := &Device{
		name: gl.GoStr(gl.GetString(gl.RENDERER)),
	}

	logger.Infof("Using device '%s' (OpenGL %s)", d.name, gl.GoStr(gl.GetString(gl.VERSION)))
	return d, nil
}

// DefaultDevice is NewDevice for callers that want the interface
func DefaultDevice() (gpu.Device, error) {

	d, err := NewDevice()
	if err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Device) Name() string {
	return d.name
}

func (d *Device) NewCommandQueue() (gpu.CommandQueue, error) {
	return &CommandQueue{uniformBufs: map[int]*buffers.UniformBuffer{}}, nil
}

func (d *Device) Release() {

	if d.released {
		return
	}

	d.released = true
	logger.Debugf("Released device '%s'", d.name)
}
