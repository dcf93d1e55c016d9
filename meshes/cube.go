package meshes

import "github.com/bloeys/gglm/gglm"

type cubeFace struct {
	normal [3]float32
	// right and up span the face such that right x up = normal, which makes
	// bottom-left, bottom-right, top-right, top-left a counter-clockwise walk
	// when looking at the face from outside.
	right [3]float32
	up    [3]float32
}

var cubeFaces = [6]cubeFace{
	{normal: [3]float32{1, 0, 0}, right: [3]float32{0, 0, -1}, up: [3]float32{0, 1, 0}},
	{normal: [3]float32{-1, 0, 0}, right: [3]float32{0, 0, 1}, up: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 1, 0}, right: [3]float32{1, 0, 0}, up: [3]float32{0, 0, -1}},
	{normal: [3]float32{0, -1, 0}, right: [3]float32{1, 0, 0}, up: [3]float32{0, 0, 1}},
	{normal: [3]float32{0, 0, 1}, right: [3]float32{1, 0, 0}, up: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 0, -1}, right: [3]float32{-1, 0, 0}, up: [3]float32{0, 1, 0}},
}

// NewCubeGeometry returns an axis aligned cube centered on the origin with edges of length size.
// Each face has its own 4 vertices so normals stay flat and the full texture maps onto every face.
func NewCubeGeometry(size float32) *Geometry {

	const vertsPerFace = 4
	g := &Geometry{
		Positions: make([]gglm.Vec3, 0, len(cubeFaces)*vertsPerFace),
		Normals:   make([]gglm.Vec3, 0, len(cubeFaces)*vertsPerFace),
		UV0s:      make([]gglm.Vec2, 0, len(cubeFaces)*vertsPerFace),
		Indices:   make([]uint32, 0, len(cubeFaces)*6),
	}

	half := size * 0.5
	corners := [vertsPerFace][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	uvs := [vertsPerFace][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, face := range cubeFaces {

		base := uint32(len(g.Positions))
		for i := 0; i < vertsPerFace; i++ {

			var pos [3]float32
			for axis := 0; axis < 3; axis++ {
				pos[axis] = half * (face.normal[axis] + corners[i][0]*face.right[axis] + corners[i][1]*face.up[axis])
			}

			g.Positions = append(g.Positions, gglm.Vec3{Data: pos})
			g.Normals = append(g.Normals, gglm.Vec3{Data: face.normal})
			g.UV0s = append(g.UV0s, gglm.Vec2{Data: uvs[i]})
		}

		g.Indices = append(g.Indices,
			base+0, base+1, base+2,
			base+0, base+2, base+3,
		)
	}

	return g
}
