package renderer

import (
	"fmt"

	"github.com/bloeys/texcube/assets"
	"github.com/bloeys/texcube/meshes"
	"github.com/bloeys/texcube/res"
	"github.com/bloeys/texcube/timing"
)

type Timestep int

const (
	// TimestepFixed advances the animation by 1/PreferredFramesPerSecond every frame
	TimestepFixed Timestep = iota
	// TimestepMeasured advances the animation by the measured frame time
	TimestepMeasured
)

func (t Timestep) String() string {

	switch t {
	case TimestepFixed:
		return "fixed"
	case TimestepMeasured:
		return "measured"
	}

	return "unknown"
}

func ParseTimestep(s string) (Timestep, error) {

	switch s {
	case "fixed", "":
		return TimestepFixed, nil
	case "measured":
		return TimestepMeasured, nil
	}

	return TimestepFixed, fmt.Errorf("unknown timestep '%s'. Must be 'fixed' or 'measured'", s)
}

type Options struct {
	TextureName    string
	TextureOptions assets.TextureLoadOptions

	// Geometry replaces the unit cube if set
	Geometry *meshes.Geometry
	MeshName string

	// ShaderLibrary is the GLSL library holding the vertex_transform and fragment_lit_textured entry points
	ShaderLibrary []byte

	Timestep Timestep
	// MeasuredDT returns the last frame time in seconds. Only used with TimestepMeasured.
	MeasuredDT func() float64
}

func DefaultOptions() Options {
	return Options{
		TextureName:   "checkerboard",
		MeshName:      "cube",
		ShaderLibrary: res.TexturedMeshShader,
		Timestep:      TimestepFixed,
		MeasuredDT:    timing.DT,
	}
}

// withDefaults fills unset fields from DefaultOptions
func (o Options) withDefaults() Options {

	def := DefaultOptions()

	if o.TextureName == "" {
		o.TextureName = def.TextureName
	}

	if o.MeshName == "" {
		o.MeshName = def.MeshName
	}

	if len(o.ShaderLibrary) == 0 {
		o.ShaderLibrary = def.ShaderLibrary
	}

	if o.MeasuredDT == nil {
		o.MeasuredDT = def.MeasuredDT
	}

	return o
}
