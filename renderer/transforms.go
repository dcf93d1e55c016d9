package renderer

import (
	"github.com/bloeys/gglm/gglm"
)

const (
	// rotationSpeed is in radians per second
	rotationSpeed  = 0.5
	verticalFovDeg = 65
	nearZ          = 0.1
	farZ           = 100
)

var (
	rotationAxis = [3]float32{0.7, 1, 0}

	eyePos    = gglm.NewVec3(0, 0, 2.5)
	eyeTarget = gglm.NewVec3(0, 0, 0)
	eyeUp     = gglm.NewVec3(0, 1, 0)
)

// ModelMatrix rotates about (0.7, 1, 0) by rotationSpeed*elapsed radians
func ModelMatrix(elapsed float64) gglm.Mat4 {

	axis := gglm.NewVec3(rotationAxis[0], rotationAxis[1], rotationAxis[2])
	axis.Normalize()

	m := gglm.NewTrMatId()
	m.Rotate(float32(elapsed*rotationSpeed), axis.X(), axis.Y(), axis.Z())
	return m.Mat4
}

// ProjectionMatrix maps the view frustum to clip space where the near plane is at z=-1 and the far plane at z=1
func ProjectionMatrix(aspect float32) gglm.Mat4 {
	proj := gglm.Perspective(verticalFovDeg*gglm.Deg2Rad, aspect, nearZ, farZ)
	return *proj.Clone()
}

func ViewMatrix() gglm.Mat4 {
	pos, target, up := eyePos, eyeTarget, eyeUp
	return gglm.LookAtRH(&pos, &target, &up).Mat4
}

// NormalMatrix is the inverse transpose of the upper-left 3x3 of modelView.
// modelView must be affine.
func NormalMatrix(modelView *gglm.Mat4) gglm.Mat3 {

	tr := gglm.TrMat{Mat4: *modelView.Clone()}
	tr.InvertAndTranspose()

	d := &tr.Data
	return gglm.Mat3{
		Data: [3][3]float32{
			{d[0][0], d[0][1], d[0][2]},
			{d[1][0], d[1][1], d[1][2]},
			{d[2][0], d[2][1], d[2][2]},
		},
	}
}

// ComputeConstants has no state: the same elapsed time and aspect always give the same result
func ComputeConstants(elapsed float64, aspect float32) Constants {

	model := ModelMatrix(elapsed)
	view := ViewMatrix()
	proj := ProjectionMatrix(aspect)

	modelView := *view.Clone().Mul(&model)

	return Constants{
		ModelViewProjectionMatrix: *proj.Clone().Mul(&modelView),
		NormalMatrix:              NormalMatrix(&modelView),
	}
}
