package gpugl

import (
	"strings"

	"github.com/bloeys/texcube/gpu"
	"github.com/bloeys/texcube/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

type shaderProgram struct {
	Id           uint32
	VertShaderId uint32
	FragShaderId uint32
	GeomShaderId uint32
}

func (sp *shaderProgram) attachShader(shaderId uint32, stage shaders.Stage) {

	gl.AttachShader(sp.Id, shaderId)
	switch stage {
	case shaders.Stage_Vertex:
		sp.VertShaderId = shaderId
	case shaders.Stage_Fragment:
		sp.FragShaderId = shaderId
	case shaders.Stage_Geometry:
		sp.GeomShaderId = shaderId
	}
}

// link links the attached shaders and deletes them, since the program keeps what it needs
func (sp *shaderProgram) link() error {

	gl.LinkProgram(sp.Id)

	if sp.VertShaderId != 0 {
		gl.DeleteShader(sp.VertShaderId)
	}

	if sp.FragShaderId != 0 {
		gl.DeleteShader(sp.FragShaderId)
	}

	if sp.GeomShaderId != 0 {
		gl.DeleteShader(sp.GeomShaderId)
	}

	var linkedSuccessfully int32
	gl.GetProgramiv(sp.Id, gl.LINK_STATUS, &linkedSuccessfully)
	if linkedSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetProgramiv(sp.Id, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength+1)))
	gl.GetProgramInfoLog(sp.Id, logLength, nil, log)

	return errors.Wrap(gpu.ErrPipelineLink, gl.GoStr(log))
}

func (sp *shaderProgram) delete() {

	if sp.Id == 0 {
		return
	}

	gl.DeleteProgram(sp.Id)
	sp.Id = 0
}

func newShaderProgram(funcs ...*shaders.Function) (shaderProgram, error) {

	sp := shaderProgram{Id: gl.CreateProgram()}
	if sp.Id == 0 {
		return sp, errors.Errorf("failed to create OpenGL program. OpenGL Error=%d", gl.GetError())
	}

	for _, f := range funcs {

		shaderId, err := compileFunction(f)
		if err != nil {
			// Shaders attached so far are only flagged until the program goes away
			sp.delete()
			return shaderProgram{}, err
		}

		sp.attachShader(shaderId, f.Stage)
	}

	if err := sp.link(); err != nil {
		sp.delete()
		return shaderProgram{}, err
	}

	return sp, nil
}

func compileFunction(f *shaders.Function) (uint32, error) {

	shaderType, ok := stageToGL(f.Stage)
	if !ok {
		return 0, errors.Wrapf(gpu.ErrShaderCompile, "function '%s' has unknown stage %s", f.Name, f.Stage)
	}

	shaderId := gl.CreateShader(shaderType)
	if shaderId == 0 {
		return 0, errors.Errorf("failed to create OpenGL shader. OpenGL Error=%d", gl.GetError())
	}

	//Load shader source and compile
	shaderCStr, shaderFree := gl.Strs(string(f.Source) + "\x00")
	defer shaderFree()
	gl.ShaderSource(shaderId, 1, shaderCStr, nil)

	gl.CompileShader(shaderId)
	if err := getShaderCompileErrors(shaderId); err != nil {
		gl.DeleteShader(shaderId)
		return 0, errors.Wrapf(err, "compiling %s function '%s'", f.Stage, f.Name)
	}

	return shaderId, nil
}

func getShaderCompileErrors(shaderId uint32) error {

	var compiledSuccessfully int32
	gl.GetShaderiv(shaderId, gl.COMPILE_STATUS, &compiledSuccessfully)
	if compiledSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetShaderiv(shaderId, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength+1)))
	gl.GetShaderInfoLog(shaderId, logLength, nil, log)

	errMsg := gl.GoStr(log)
	logger.Errorf("Compilation of shader with id %d failed. Err: %s", shaderId, errMsg)
	return errors.Wrap(gpu.ErrShaderCompile, errMsg)
}
