package gpu

import "errors"

var (
	// ErrNoDevice is returned when no device supporting the required API version exists.
	ErrNoDevice = errors.New("gpu: no compatible device available")

	// ErrUnsupportedFormat is returned when a pixel or vertex format can't be used for the requested purpose.
	ErrUnsupportedFormat = errors.New("gpu: unsupported format")

	// ErrShaderCompile is returned when a shader stage fails to compile.
	ErrShaderCompile = errors.New("gpu: shader compilation failed")

	// ErrPipelineLink is returned when compiled stages fail to link into a pipeline.
	ErrPipelineLink = errors.New("gpu: pipeline link failed")
)
